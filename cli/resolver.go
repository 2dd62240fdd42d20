package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/odatauri/log"
)

// resolve returns a [kong.ConfigurationLoader] that reads flag values from a
// YAML document.
//
// Keys are flag names. Nested mappings are joined with "-", so both of the
// following set --log-level:
//
//	log-level: debug
//
//	log:
//	  level: debug
//
// Underscores may be used in place of hyphens. Numbers are passed to kong as
// strings and sequences as comma-separated lists. A document that fails to
// decode yields an empty configuration. Command-line flags override values
// from the file.
func resolve(ctx context.Context) kong.ConfigurationLoader {
	return func(r io.Reader) (kong.Resolver, error) {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}

		var doc map[string]any

		if err := yaml.Unmarshal(data, &doc); err != nil {
			log.DebugContext(ctx, "ignoring configuration",
				slog.Any("error", err),
			)

			return config{}, nil
		}

		cfg := config{}
		cfg.flatten("", doc)

		return cfg, nil
	}
}

// config implements [kong.Resolver] for flattened YAML documents.
type config map[string]any

// Validate implements [kong.Resolver].
func (config) Validate(*kong.Application) error { return nil }

// Resolve implements [kong.Resolver].
func (c config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	return c[flag.Name], nil
}

func (c config) flatten(prefix string, m map[string]any) {
	for key, value := range m {
		key = prefix + strings.ReplaceAll(key, "_", "-")

		switch v := value.(type) {
		case map[string]any:
			c.flatten(key+"-", v)

		case []any:
			items := make([]string, len(v))
			for i, item := range v {
				items[i] = scalar(item)
			}

			c[key] = strings.Join(items, ",")

		case bool, nil:
			c[key] = v

		default:
			c[key] = scalar(v)
		}
	}
}

// scalar renders a decoded YAML scalar the way kong parses it from the
// command line.
func scalar(v any) string {
	switch n := v.(type) {
	case string:
		return n
	case int64:
		return strconv.FormatInt(n, 10)
	case uint64:
		return strconv.FormatUint(n, 10)
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	default:
		return fmt.Sprint(n)
	}
}
