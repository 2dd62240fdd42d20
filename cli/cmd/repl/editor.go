package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/ardnew/odatauri/log"
	"github.com/ardnew/odatauri/odata"
)

const defaultEditor = "vi"

// editInputCommand implements [tea.ExecCommand] for composing an input in the
// user's editor. The edited text is parsed with the current rule; on failure
// the diagnostic is shown and the user is asked to edit again.
type editInputCommand struct {
	text    string
	rule    string
	ctxFunc func() context.Context
	logger  log.Logger
	result  string
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
}

// SetStdin sets the stdin reader for the command.
func (c *editInputCommand) SetStdin(r io.Reader) { c.stdin = r }

// SetStdout sets the stdout writer for the command.
func (c *editInputCommand) SetStdout(w io.Writer) { c.stdout = w }

// SetStderr sets the stderr writer for the command.
func (c *editInputCommand) SetStderr(w io.Writer) { c.stderr = w }

// Run executes the edit-parse-retry loop. An emptied file cancels the edit
// with an empty result. If the user declines to edit again, Run returns
// [ErrEditDeclined].
func (c *editInputCommand) Run() error {
	ctx := c.ctxFunc()

	f, err := os.CreateTemp(os.TempDir(), "odatauri-repl-*.txt")
	if err != nil {
		return err
	}

	path := f.Name()

	defer os.Remove(path)

	if err := f.Close(); err != nil {
		return err
	}

	content := c.text

	for {
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			return err
		}

		if err := runEditor(ctx, c.stdin, c.stdout, c.stderr, path); err != nil {
			return err
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		content = string(data)

		input := strings.TrimSuffix(strings.TrimSuffix(content, "\n"), "\r")
		if strings.TrimSpace(input) == "" {
			return nil
		}

		_, parseErr := odata.Parse(ctx, c.rule, input, odata.WithLogger(c.logger))
		c.logger.TraceContext(
			ctx,
			"editor parse attempt",
			slog.String("rule", c.rule),
			slog.Int("content_length", len(input)),
			slog.Bool("success", parseErr == nil),
		)

		if parseErr == nil {
			c.result = input

			return nil
		}

		fmt.Fprintf(c.stderr, "\n%s\n", parseErr)
		fmt.Fprint(c.stdout, "Re-edit? [Y/n] ")

		scanner := bufio.NewScanner(c.stdin)
		if !scanner.Scan() {
			return ErrEditDeclined
		}

		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "n", "no":
			return ErrEditDeclined
		}
	}
}

// runEditor runs $EDITOR (or vi) on the file at path.
func runEditor(
	ctx context.Context,
	stdin io.Reader,
	stdout io.Writer,
	stderr io.Writer,
	path string,
) error {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = defaultEditor
	}

	cmd := exec.CommandContext(ctx, editor, path)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	return cmd.Run()
}
