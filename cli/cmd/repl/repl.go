package repl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/odatauri/grammar"
	"github.com/ardnew/odatauri/log"
	"github.com/ardnew/odatauri/odata"
)

// editDoneMsg is sent when the editor produced input the rule accepts.
type editDoneMsg struct{ input string }

// editCancelledMsg is sent when the user cleared the editor content.
type editCancelledMsg struct{}

// editDeclinedMsg is sent when the user declined to re-edit after a parse
// error.
type editDeclinedMsg struct{}

// editErrorMsg is sent when the edit process encounters a non-parse error.
type editErrorMsg struct{ err error }

const (
	parsePrompt = "➜ "
	ctrlPrompt  = " :"
)

func helpMessage() string {
	return `
: Commands (press Esc to toggle mode, or prefix a line with ':'):

  help          Print this cruft
  rule [NAME]   Show or switch the rule inputs are parsed with
  rules [PAT]   List rules, fuzzy filtered by PAT
  tree          Toggle printing the rule tree of accepted input
  edit          Compose input in external $EDITOR
  clear         Clear screen
  quit          Exit REPL

Usage:
  Type an OData URL, header or literal to parse it with the current rule
  The line below the input shows whether it parses so far
  Completions appear automatically as you type
  Press Tab / Shift-Tab to cycle through candidates
  Press Space to accept the current candidate
  Press Esc to toggle between parse and command modes
  Use Up/Down arrows for history navigation (mode switches automatically)
  Use Shift+Up/Shift+Down for history navigation within current mode only
  Use Alt+Up/Alt+Down to switch to command mode and navigate command history
    (restores original mode when reaching end of history)
  Press Ctrl+C on empty line or Ctrl+D to exit
`
}

// inputMode represents the current input mode.
type inputMode int

const (
	modeParse inputMode = iota
	modeCtrl
)

// Styles.
var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	ctrlPromptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("5")).
			Bold(true)
	inputStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	resultStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	suggestionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	selectedStyle   = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4"))
)

// formatCommand formats the echo line of a submitted input.
func formatCommand(mode inputMode, input string) string {
	if mode == modeCtrl {
		return ctrlPromptStyle.Render(ctrlPrompt) + inputStyle.Render(input)
	}

	return promptStyle.Render(parsePrompt) + inputStyle.Render(input)
}

// Config selects the initial state of the shell.
type Config struct {
	Rule     string     // Rule inputs are parsed with
	Tree     bool       // Print the rule tree of accepted input
	CacheDir string     // Directory holding the history file
	Logger   log.Logger // Trace logger
}

// model is the Bubble Tea model for the REPL.
type model struct {
	ctxFunc    func() context.Context
	input      textinput.Model
	rule       string
	tree       bool
	logger     log.Logger
	history    *History
	historyIdx int
	status     string        // live parse status of the current input
	matches    fuzzy.Matches // current fuzzy match results
	candidates []string      // backing candidate list
	wordStart  int           // byte offset of current word start
	wordEnd    int           // byte offset of current word end
	suggIdx    int           // selected candidate index
	tabActive  bool          // whether user is tab-cycling
	preTab     savedInput    // input before tab-cycling began
	altNav     bool          // whether user is in Alt+Up/Down navigation
	altOrig    savedInput    // input before Alt navigation
	altMode    inputMode     // mode before Alt navigation
	width      int           // terminal width for ellipsization
	quitting   bool
	mode       inputMode
	saved      [2]savedInput // input of each mode while the other is active
}

// savedInput is an input line and its cursor position.
type savedInput struct {
	text   string
	cursor int
}

// Run starts the interactive shell.
func Run(ctx context.Context, cfg Config) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	cfg.Logger.TraceContext(
		ctx,
		"repl start",
		slog.String("cache_dir", cfg.CacheDir),
		slog.String("rule", cfg.Rule),
	)

	if _, ok := grammar.Lookup(cfg.Rule); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownRule, cfg.Rule)
	}

	history := NewHistory(filepath.Join(cfg.CacheDir, baseHistory))
	if err := history.Load(); err != nil {
		cfg.Logger.WarnContext(ctx, "could not load history", slog.Any("error", err))
	}

	cfg.Logger.TraceContext(
		ctx,
		"repl history loaded",
		slog.Int("entry_count", history.Len()),
	)

	p := tea.NewProgram(newModel(ctx, cfg, history), tea.WithContext(ctx))
	_, err = p.Run()

	return err
}

const defaultWidth = 80

func newModel(ctx context.Context, cfg Config, history *History) model {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(parsePrompt)
	ti.Focus()
	ti.CharLimit = 8192
	ti.Width = defaultWidth

	return model{
		ctxFunc:    func() context.Context { return ctx },
		input:      ti,
		rule:       cfg.Rule,
		tree:       cfg.Tree,
		logger:     cfg.Logger,
		history:    history,
		historyIdx: history.Len(),
		width:      defaultWidth,
		mode:       modeParse,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - len(parsePrompt) - 2

		return m, nil

	case editDoneMsg:
		_, _ = m.history.WriteWithMode(msg.input, modeParse)
		m.historyIdx = m.history.Len()

		return m, tea.Sequence(
			tea.Println(formatCommand(modeParse, msg.input)),
			tea.Println(m.evaluate(msg.input)),
		)

	case editCancelledMsg:
		return m, tea.Println(hintStyle.Render("🗴 edit cancelled"))

	case editDeclinedMsg:
		return m, tea.Println(hintStyle.Render("🗴 edit declined"))

	case editErrorMsg:
		return m, tea.Println(
			errorStyle.Render("🗴 error: " + msg.err.Error()),
		)
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString("\n")

	input := m.input.Value()
	call := detectFunctionCall(input, m.input.Position())

	switch {
	case m.historyIdx < m.history.Len():
		b.WriteString(hintStyle.Render(fmt.Sprintf("%s/%d",
			lipgloss.NewStyle().Bold(true).Render(strconv.Itoa(m.historyIdx+1)),
			m.history.Len())))

	case strings.TrimSpace(input) == "":
		if m.mode == modeParse {
			b.WriteString(hintStyle.Render("Type input to parse with " + m.rule + " or press Esc for commands"))
		} else {
			b.WriteString(hintStyle.Render("Type: " + strings.Join(ctrlCommands, ", ") + " (press Esc to return)"))
		}

	case len(m.matches) > 0:
		b.WriteString(renderCandidateBar(m.matches, m.suggIdx, m.tabActive, m.width))

	case call.inCall && m.mode == modeParse:
		if params, ok := signature(call.name); ok {
			b.WriteString(renderSignatureHint(call.name, params, call.argIndex))
		} else {
			b.WriteString(m.status)
		}

	default:
		b.WriteString(m.status)
	}

	b.WriteString("\n")

	return b.String()
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	m.logger.TraceContext(
		m.ctxFunc(),
		"repl keypress",
		slog.String("key", msg.String()),
		slog.Int("type", int(msg.Type)),
	)

	switch msg.Type {
	case tea.KeyCtrlC:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		m.input.SetValue("")
		m.tabActive = false
		m.altNav = false
		m.historyIdx = m.history.Len()
		refreshMatches(&m, false)

		return m, nil

	case tea.KeyCtrlD:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		return m, nil

	case tea.KeyEnter:
		m.altNav = false

		if !m.tabActive || len(m.matches) == 0 {
			return m.executeInput()
		}

		// Lock in the current tab candidate without executing.
		m.tabActive = false
		refreshMatches(&m, true)

		return m, nil

	case tea.KeyTab:
		return m.cycleCandidate(+1), nil

	case tea.KeyShiftTab:
		return m.cycleCandidate(-1), nil

	case tea.KeyUp:
		if msg.Alt {
			return m.historyCtrl(-1), nil
		}

		return m.historyStep(-1), nil

	case tea.KeyDown:
		if msg.Alt {
			return m.historyCtrl(+1), nil
		}

		return m.historyStep(+1), nil

	case tea.KeyShiftUp:
		return m.historyInMode(-1), nil

	case tea.KeyShiftDown:
		return m.historyInMode(+1), nil

	case tea.KeyEsc:
		if m.tabActive {
			m.tabActive = false
			m.restore(m.preTab)
			refreshMatches(&m, false)

			return m, nil
		}

		m.altNav = false

		return m.toggleMode(), nil

	case tea.KeyRunes:
		// Space accepts the candidate being cycled.
		if m.tabActive && msg.String() == " " {
			m.tabActive = false
		}

		var cmd tea.Cmd

		m.historyIdx = m.history.Len()
		m.input, cmd = m.input.Update(msg)
		refreshMatches(&m, true)

		return m, cmd
	}

	// Any other key (backspace, delete, arrows, etc.) edits without
	// auto-confirming a completion.
	var cmd tea.Cmd

	m.tabActive = false
	m.altNav = false
	m.historyIdx = m.history.Len()
	m.input, cmd = m.input.Update(msg)
	refreshMatches(&m, false)

	return m, cmd
}

// cycleCandidate replaces the current word with the next (step > 0) or
// previous candidate. A sole candidate is completed and confirmed at once.
func (m model) cycleCandidate(step int) model {
	n := len(m.matches)

	switch {
	case n == 0:
		return m

	case n == 1:
		replaceCurrentWord(&m, m.matches[0].Str)
		m.tabActive = false
		m.suggIdx = -1
		m.matches = nil

		return m

	case m.tabActive:
		m.suggIdx = (m.suggIdx + step + n) % n

	default:
		m.tabActive = true
		m.preTab = m.current()

		m.suggIdx = 0
		if step < 0 {
			m.suggIdx = n - 1
		}
	}

	replaceCurrentWord(&m, m.matches[m.suggIdx].Str)

	return m
}

// replaceCurrentWord replaces the current word in the input with replacement
// and moves the cursor after it.
func replaceCurrentWord(m *model, replacement string) {
	input := m.input.Value()
	cursor := m.wordStart + len(replacement)

	m.input.SetValue(input[:m.wordStart] + replacement + input[m.wordEnd:])
	m.input.SetCursor(cursor)

	m.wordEnd = cursor
}

// refreshMatches recomputes fuzzy matches and the live parse status for the
// current input. When autoConfirm is true a sole candidate equal to the typed
// word is confirmed. autoConfirm is false for deletions and cursor movement so
// the user can edit freely.
func refreshMatches(m *model, autoConfirm bool) {
	m.matches, m.candidates, m.wordStart, m.wordEnd = m.computeMatches()
	m.status = m.liveStatus()

	if !m.tabActive {
		m.suggIdx = -1
	}

	if !autoConfirm || len(m.matches) != 1 {
		return
	}

	candidate := m.matches[0].Str
	if m.input.Value()[m.wordStart:m.wordEnd] == candidate {
		replaceCurrentWord(m, candidate)
		m.tabActive = false
		m.suggIdx = -1
		m.matches = nil
	}
}

// liveStatus reports whether the input typed so far parses with the current
// rule, or where it stops parsing.
func (m model) liveStatus() string {
	input := m.input.Value()
	if m.mode != modeParse || strings.TrimSpace(input) == "" || strings.HasPrefix(input, ":") {
		return ""
	}

	_, err := odata.Parse(m.ctxFunc(), m.rule, input)
	if err == nil {
		return resultStyle.Render("✔ " + m.rule)
	}

	var pe *odata.ParseError
	if !errors.As(err, &pe) {
		return errorStyle.Render("✘ " + err.Error())
	}

	hint := fmt.Sprintf("✘ %s at column %d", pe.Unwrap(), pe.Column)
	if len(pe.Expected) > 0 {
		hint += ", expected " + strings.Join(pe.Expected, " ")
	}

	return hintStyle.Render(ellipsize(hint, m.width))
}

func ellipsize(s string, width int) string {
	if width <= 3 || lipgloss.Width(s) <= width {
		return s
	}

	r := []rune(s)

	return string(r[:min(len(r), width-3)]) + "..."
}

// evaluate parses input with the current rule and renders the outcome: the
// rule tree (or "ok") on success, the diagnostic otherwise.
func (m model) evaluate(input string) string {
	ctx := m.ctxFunc()

	doc, err := odata.Parse(ctx, m.rule, input, odata.WithLogger(m.logger))
	if err != nil {
		m.logger.TraceContext(ctx, "repl parse result", slog.Any("error", err))

		return errorStyle.Render(strings.TrimSuffix(err.Error(), "\n"))
	}

	m.logger.TraceContext(ctx, "repl parse result", slog.String("rule", doc.Rule))

	if !m.tree {
		return resultStyle.Render("ok " + doc.Rule)
	}

	var b strings.Builder
	if err := doc.FormatTree(&b, 2); err != nil {
		return errorStyle.Render(err.Error())
	}

	return resultStyle.Render(strings.TrimSuffix(b.String(), "\n"))
}

func (m model) executeInput() (model, tea.Cmd) {
	raw := m.input.Value()
	if strings.TrimSpace(raw) == "" {
		return m, nil
	}

	mode := m.mode
	if body, ok := strings.CutPrefix(raw, ":"); ok && mode == modeParse {
		mode, raw = modeCtrl, body
	}

	m.saved = [2]savedInput{}
	m.input.SetValue("")
	m.status = ""

	_, _ = m.history.WriteWithMode(raw, mode)
	m.historyIdx = m.history.Len()

	if mode == modeCtrl {
		return m.executeCommand(strings.TrimSpace(raw))
	}

	m.logger.TraceContext(m.ctxFunc(), "repl parse", slog.String("input", raw))

	return m, tea.Sequence(
		tea.Println(formatCommand(modeParse, raw)),
		tea.Println(m.evaluate(raw)),
	)
}

func (m model) executeCommand(input string) (model, tea.Cmd) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return m, nil
	}

	echo := tea.Println(formatCommand(modeCtrl, input))
	cmd, args := parts[0], parts[1:]

	m.logger.TraceContext(
		m.ctxFunc(),
		"repl exec command",
		slog.String("command", cmd),
		slog.Any("args", args),
	)

	switch cmd {
	case "q", "quit", "exit":
		m.quitting = true

		return m, tea.Sequence(echo, tea.Quit)

	case "h", "help":
		return m, tea.Sequence(echo, tea.Println(helpMessage()))

	case "r", "rule":
		var out string

		m, out = m.switchRule(args)

		return m, tea.Sequence(echo, tea.Println(out))

	case "rules":
		return m, tea.Sequence(echo, tea.Println(m.listRules(strings.Join(args, " "))))

	case "t", "tree":
		m.tree = !m.tree

		return m, tea.Sequence(echo, tea.Println(hintStyle.Render(
			"tree output: "+strconv.FormatBool(m.tree))))

	case "c", "clear":
		return m, tea.ClearScreen

	case "e", "edit":
		return m, tea.Sequence(echo, m.handleEdit())

	default:
		return m, tea.Println(
			errorStyle.Render("Unknown command: " + cmd + " (try 'help')"),
		)
	}
}

// switchRule selects the rule named by args[0], or reports the current rule
// if args is empty.
func (m model) switchRule(args []string) (model, string) {
	if len(args) == 0 {
		return m, hintStyle.Render("rule: ") + resultStyle.Render(m.rule)
	}

	if _, ok := grammar.Lookup(args[0]); !ok {
		return m, errorStyle.Render(fmt.Sprintf("%s: %s (try 'rules %s')", ErrUnknownRule, args[0], args[0]))
	}

	m.rule = args[0]

	return m, hintStyle.Render("rule: ") + resultStyle.Render(m.rule)
}

// listRules renders the rule names matching pattern, wrapped to the terminal
// width.
func (m model) listRules(pattern string) string {
	names := grammar.Rules()

	if pattern != "" {
		matches := fuzzy.Find(pattern, names)

		names = make([]string, len(matches))
		for i, match := range matches {
			names[i] = match.Str
		}
	}

	if len(names) == 0 {
		return hintStyle.Render("no rules match " + strconv.Quote(pattern))
	}

	for i, name := range names {
		if name == m.rule {
			names[i] = resultStyle.Render(name)
		}
	}

	return lipgloss.NewStyle().Width(m.width).Render(strings.Join(names, "  "))
}

func (m model) handleEdit() tea.Cmd {
	text := m.saved[modeParse].text
	if m.mode == modeParse {
		text = m.input.Value()
	}

	cmd := &editInputCommand{
		text:    text,
		rule:    m.rule,
		ctxFunc: m.ctxFunc,
		logger:  m.logger,
	}

	return tea.Exec(cmd, func(err error) tea.Msg {
		if errors.Is(err, ErrEditDeclined) {
			return editDeclinedMsg{}
		}

		if err != nil {
			return editErrorMsg{err: err}
		}

		if cmd.result == "" {
			return editCancelledMsg{}
		}

		return editDoneMsg{input: cmd.result}
	})
}

func (m model) current() savedInput {
	return savedInput{text: m.input.Value(), cursor: m.input.Position()}
}

func (m *model) restore(s savedInput) {
	m.input.SetValue(s.text)
	m.input.SetCursor(s.cursor)
}

// showEntry loads history entry i into the input, switching mode if needed.
func (m model) showEntry(i int, entry HistoryEntry) model {
	if m.mode != entry.Mode {
		m = m.switchToMode(entry.Mode)
	}

	m.historyIdx = i
	m.restore(savedInput{text: entry.Line, cursor: len(entry.Line)})
	refreshMatches(&m, false)

	return m
}

// clearHistoryView leaves history navigation with an empty input.
func (m model) clearHistoryView() model {
	m.historyIdx = m.history.Len()
	m.input.SetValue("")
	refreshMatches(&m, false)

	return m
}

// historyStep moves one entry back (step < 0) or forward through the history
// of all modes.
func (m model) historyStep(step int) model {
	i := m.historyIdx + step

	switch {
	case i < 0:
		return m
	case i >= m.history.Len():
		return m.clearHistoryView()
	}

	if entry, err := m.history.GetEntry(i); err == nil {
		return m.showEntry(i, entry)
	}

	return m
}

// historyFind returns the nearest entry of mode from the current position in
// direction step.
func (m model) historyFind(step int, mode inputMode) (int, HistoryEntry, bool) {
	for i := m.historyIdx + step; i >= 0 && i < m.history.Len(); i += step {
		if entry, err := m.history.GetEntry(i); err == nil && entry.Mode == mode {
			return i, entry, true
		}
	}

	return 0, HistoryEntry{}, false
}

// historyInMode moves through the entries of the current mode only.
func (m model) historyInMode(step int) model {
	if i, entry, ok := m.historyFind(step, m.mode); ok {
		return m.showEntry(i, entry)
	}

	if step > 0 && m.historyIdx < m.history.Len() {
		return m.clearHistoryView()
	}

	return m
}

// historyCtrl switches to command mode and moves through command history.
// Running off either end restores the mode and input from before.
func (m model) historyCtrl(step int) model {
	if !m.altNav {
		m.altNav = true
		m.altMode = m.mode
		m.altOrig = m.current()

		if m.mode != modeCtrl {
			m = m.switchToMode(modeCtrl)
		}
	}

	if i, entry, ok := m.historyFind(step, modeCtrl); ok {
		return m.showEntry(i, entry)
	}

	m.altNav = false
	if m.altMode != m.mode {
		m = m.switchToMode(m.altMode)
	}

	m.restore(m.altOrig)
	m.historyIdx = m.history.Len()
	refreshMatches(&m, false)

	return m
}

// toggleMode switches between parse and command modes.
func (m model) toggleMode() model {
	if m.mode == modeParse {
		return m.switchToMode(modeCtrl)
	}

	return m.switchToMode(modeParse)
}

// switchToMode switches to mode, keeping each mode's input line.
func (m model) switchToMode(mode inputMode) model {
	m.saved[m.mode] = m.current()
	m.mode = mode

	if mode == modeParse {
		m.input.Prompt = promptStyle.Render(parsePrompt)
	} else {
		m.input.Prompt = ctrlPromptStyle.Render(ctrlPrompt)
	}

	m.restore(m.saved[mode])
	refreshMatches(&m, false)

	return m
}
