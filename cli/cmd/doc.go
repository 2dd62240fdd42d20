// Package cmd implements the odatauri subcommands: parse, fmt, nodes, rules,
// repl and init.
//
// Commands receive a [context.Context] carrying the [kong.Context], the input
// and output streams, and the lines of any --source files. See [WithContext],
// [WithInput], [WithOutput] and [WithSourceFiles].
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the YAML configuration file.
	ConfigIdentifier = "config"

	// RuleIdentifier is the kong variable identifier containing the name of
	// the rule used when --rule is not given.
	RuleIdentifier = "rule"
)
