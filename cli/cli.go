package cli

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/odatauri/cli/cmd"
	"github.com/ardnew/odatauri/odata"
	"github.com/ardnew/odatauri/pkg"
)

// CLI is the top-level command-line interface for odatauri.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Version kong.VersionFlag `help:"Print version and exit." short:"V"`
	Source  []string         `help:"Read inputs line by line from file(s), or '-' for stdin." name:"source" short:"s" type:"existingfile"`

	Parse cmd.Parse `cmd:"" default:"withargs" help:"Parse inputs with a grammar rule (default)."`
	Fmt   cmd.Fmt   `cmd:""                    help:"Print the syntax tree of an input."`
	Nodes cmd.Nodes `cmd:""                    help:"List syntax tree nodes matching an expression."`
	Rules cmd.Rules `cmd:""                    help:"List grammar rules."`
	Repl  cmd.Repl  `cmd:""                    help:"Start an interactive parse shell."`
	Init  cmd.Init  `cmd:""                    help:"Initialize configuration file."`
}

// Run executes the odatauri CLI with the given context and arguments, reading
// standard input and writing results to standard output.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	return run(ctx, exit, os.Stdin, os.Stdout, args)
}

func run(
	ctx context.Context,
	exit func(code int),
	stdin io.Reader,
	stdout io.Writer,
	args []string,
) error {
	var cli CLI

	err := mkdirAllRequired()
	if err != nil {
		return err
	}

	configFilePath := configPath(baseConfig + ".yaml")

	vars := kong.Vars{
		"version":            version(),
		cmd.ConfigIdentifier: configFilePath,
		cmd.CacheIdentifier:  cacheDir(),
		cmd.RuleIdentifier:   odata.RuleRelativeURI,
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Logger flags apply before kong parses so its errors honor them.
	cli.Log.scan(args)

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.Writers(stdout, os.Stderr),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(kong.JSON, configPath(baseConfig+".json")),
		kong.Configuration(resolve(ctx), configFilePath),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Values consumed by the commands. The input reader is stored before the
	// source files so that "-" reads from it.
	ctx = cmd.WithContext(ctx, ktx)
	ctx = cmd.WithInput(ctx, stdin)
	ctx = cmd.WithOutput(ctx, stdout)
	ctx = cmd.WithSourceFiles(ctx, cli.Source)

	defer cli.Log.start(ctx)()

	// No-op unless built with tag pprof and a mode is selected.
	defer cli.Pprof.start(ctx)()

	return ktx.Run(ctx, &cli)
}

// version returns the embedded version in canonical semantic version form,
// or as written when it does not parse.
func version() string {
	if v := pkg.SemVer(); v != nil {
		return v.String()
	}

	return strings.TrimSpace(pkg.Version)
}
