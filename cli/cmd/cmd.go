package cmd

import (
	"bufio"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
)

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// kongVar returns the kong variable named name, or fallback if it is unset.
func kongVar(ctx context.Context, name, fallback string) string {
	if ktx := kongContextFrom(ctx); ktx != nil {
		if v, ok := ktx.Model.Vars()[name]; ok {
			return v
		}
	}

	return fallback
}

type (
	inputKey  struct{}
	outputKey struct{}
)

// WithInput returns a new context.Context whose commands read standard input
// from r.
func WithInput(ctx context.Context, r io.Reader) context.Context {
	return context.WithValue(ctx, inputKey{}, r)
}

// WithOutput returns a new context.Context whose commands write results to w.
func WithOutput(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, outputKey{}, w)
}

func inputFrom(ctx context.Context) io.Reader {
	if r, ok := ctx.Value(inputKey{}).(io.Reader); ok && r != nil {
		return r
	}

	return os.Stdin
}

func outputFrom(ctx context.Context) io.Writer {
	if w, ok := ctx.Value(outputKey{}).(io.Writer); ok && w != nil {
		return w
	}

	return os.Stdout
}

type (
	sourceFilesKey struct{}
	sourceFiles    struct {
		read  []io.Reader
		stdin io.Reader
		all   io.Reader
	}

	// SourceFiles reads the concatenated content of the --source files.
	SourceFiles interface {
		IsZero() bool
		Stdin() io.Reader
		io.Reader
	}
)

// IsZero reports whether there are no source files.
func (s *sourceFiles) IsZero() bool { return len(s.read) == 0 && s.stdin == nil }

// Stdin returns the standard input reader if "-" was given as a source, or nil
// otherwise.
func (s *sourceFiles) Stdin() io.Reader { return s.stdin }

// Read implements io.Reader by reading from all source files in order,
// followed by stdin if present.
func (s *sourceFiles) Read(p []byte) (n int, err error) {
	if s.all == nil {
		readers := s.read
		if s.stdin != nil {
			readers = append(readers, s.stdin)
		}

		s.all = io.MultiReader(readers...)
	}

	return s.all.Read(p)
}

// fileKey identifies a file by device and inode, so the same file reached by
// different paths is read once.
type fileKey struct {
	dev uint64
	ino uint64
}

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// WithSourceFiles returns a new context.Context containing a [SourceFiles]
// that reads from the given files.
//
// Files are deduplicated by device and inode after resolving symlinks. Every
// "-" selects the reader stored by [WithInput], which is read last.
func WithSourceFiles(ctx context.Context, sources []string) context.Context {
	return context.WithValue(ctx, sourceFilesKey{}, buildSourceFiles(sources, inputFrom(ctx)))
}

func buildSourceFiles(sources []string, stdin io.Reader) SourceFiles {
	if len(sources) == 0 {
		return nil
	}

	var srcs sourceFiles

	seen := make(map[fileKey]struct{})

	for _, src := range sources {
		if src == stdinSource {
			srcs.stdin = stdin

			continue
		}

		if reader, ok := openUniqueFile(src, seen); ok {
			srcs.read = append(srcs.read, reader)
		}
	}

	if srcs.IsZero() {
		return nil
	}

	return &srcs
}

// openUniqueFile opens the file at path unless a file with the same device and
// inode was already opened.
func openUniqueFile(path string, seen map[fileKey]struct{}) (io.Reader, bool) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, false
	}

	resolved, err := filepath.EvalSymlinks(absPath)
	if err != nil {
		return nil, false
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return nil, false
	}

	key, ok := makeFileKey(info)
	if !ok {
		return nil, false
	}

	if _, exists := seen[key]; exists {
		return nil, false
	}

	seen[key] = struct{}{}

	file, err := os.Open(resolved)
	if err != nil {
		return nil, false
	}

	return file, true
}

func makeFileKey(info os.FileInfo) (key fileKey, ok bool) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return key, false
	}

	return fileKey{dev: uint64(stat.Dev), ino: stat.Ino}, true
}

func sourceFilesFrom(ctx context.Context) SourceFiles {
	r, _ := ctx.Value(sourceFilesKey{}).(SourceFiles)

	return r
}

// readInputs returns the inputs named by args followed by the lines of the
// --source files. An argument "-" is replaced by the lines of standard input.
// Blank lines are skipped and a trailing carriage return is removed.
func readInputs(ctx context.Context, args []string) ([]string, error) {
	var inputs []string

	for _, arg := range args {
		if arg != stdinSource {
			inputs = append(inputs, arg)

			continue
		}

		lines, err := readLines(inputFrom(ctx))
		if err != nil {
			return nil, ErrNoInput.Wrap(err)
		}

		inputs = append(inputs, lines...)
	}

	if src := sourceFilesFrom(ctx); src != nil {
		lines, err := readLines(src)
		if err != nil {
			return nil, ErrNoInput.Wrap(err)
		}

		inputs = append(inputs, lines...)
	}

	if len(inputs) == 0 {
		return nil, ErrNoInput
	}

	return inputs, nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		lines = append(lines, line)
	}

	return lines, scanner.Err()
}
