package cmd

import (
	"context"
	"log/slog"
	"os"
	"reflect"
	"slices"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/odatauri/log"
	"github.com/ardnew/odatauri/profile"
)

// defaultConfigIndent is the number of spaces to use for indentation
// when generating the default configuration file.
const defaultConfigIndent = 2

// Init generates a configuration file with current flag values.
type Init struct {
	Force bool `help:"Overwrite existing configuration file" short:"f"`
}

// Run executes the init command.
func (i *Init) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	ktx := kongContextFrom(ctx)

	confPath, ok := ktx.Model.Vars()[ConfigIdentifier]
	if !ok {
		panic("internal error: config path undefined")
	}

	_, err = os.Stat(confPath)
	if err == nil && !i.Force {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			With(slog.Bool("exists", true)).
			Wrap(ErrFileExists)
	}

	data, err := yaml.MarshalWithOptions(
		configEntries(ktx),
		yaml.Indent(defaultConfigIndent),
	)
	if err != nil {
		return ErrYAMLMarshal.
			With(slog.String("file", confPath)).
			Wrap(err)
	}

	if err := os.WriteFile(confPath, data, 0o600); err != nil {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			Wrap(err)
	}

	log.DebugContext(
		ctx,
		"initialized configuration file",
		slog.String("path", confPath),
	)

	return nil
}

// configEntries returns the current value of every persistent flag, in the
// order the flags are declared.
func configEntries(ktx *kong.Context) yaml.MapSlice {
	ignore := []string{"help", "version", "source", profile.Tag}

	var entries yaml.MapSlice

	for _, flag := range ktx.Model.Flags {
		if flag.Hidden || slices.ContainsFunc(ignore, func(s string) bool {
			return strings.HasPrefix(flag.Name, s)
		}) {
			continue
		}

		if val := configValue(ktx.FlagValue(flag)); val != nil {
			entries = append(entries, yaml.MapItem{Key: flag.Name, Value: val})
		}
	}

	return entries
}

// configValue returns the YAML value recorded for a flag value, or nil if the
// flag is unset.
func configValue(val any) any {
	switch v := val.(type) {
	case nil:
		return nil

	case string:
		if v == "" {
			return nil
		}

		return v

	case []string:
		if len(v) == 0 {
			return nil
		}

		return v

	case interface{ String() string }:
		return v.String()

	default:
		// Named string types such as the log flag values.
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.String {
			if rv.Len() == 0 {
				return nil
			}

			return rv.String()
		}

		return v
	}
}
