// Package cli contains the command line interface for odatauri.
//
// # Usage
//
// Each positional argument is parsed with the rule selected by --rule
// (default odataRelativeUri), and the parse command is run when no command
// is named:
//
//	odatauri 'People?$filter=Age gt 21'
//	odatauri parse -r header 'OData-Version: 4.01'
//	odatauri fmt tree 'People(1)/Friends'
//	odatauri nodes -w 'Rule == "Filter"' 'People?$filter=Age gt 21'
//	odatauri rules filter
//	odatauri repl
//
// Inputs may also be read one per line from files named with --source, or
// from standard input with "-".
//
// # Configuration
//
// Flag values are read from config.yaml (or config.json) in the user
// configuration directory, for example ~/.config/odatauri/config.yaml.
// Nested mappings join their keys with "-", so "log: {level: debug}" sets
// --log-level. Command-line flags take precedence. The init command writes
// the current flag values to the file.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, RFC3339Nano, etc.)
//   - --[no-]log-caller: Include caller information in log output
//   - --[no-]log-pretty: Colorize log output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag.
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default
//     ~/.cache/odatauri/pprof)
//
// Build a profiling binary with:
//
//	go build -tags pprof -o odatauri .
package cli
