package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// resolveYAML is a [kong.ConfigurationLoader] for YAML config files.
//
// The file is a flat mapping from flag names to values. Hyphenated flag
// names (e.g. "log-level") may be written with underscores instead
// ("log_level"); command-line flags override config file values.
//
//	log_level: debug
//	log_format: json
//	format: fish
//	depth: 2
//
// A missing or empty file resolves nothing; a malformed file is an
// error so typos do not silently disable configuration.
func resolveYAML(r io.Reader) (kong.Resolver, error) {
	var values map[string]any

	err := yaml.NewDecoder(r).Decode(&values)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return config{}, nil
		}

		return nil, err
	}

	return config(values), nil
}

// config implements [kong.Resolver] over a flat YAML mapping.
type config map[string]any

// Validate implements [kong.Resolver].
func (config) Validate(*kong.Application) error { return nil }

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	value, ok := r[flag.Name]
	if !ok {
		value, ok = r[strings.ReplaceAll(flag.Name, "-", "_")]
	}

	if !ok {
		return nil, nil
	}

	// Kong parses numeric flag values from strings.
	switch v := value.(type) {
	case int, int64, uint64, float64:
		return fmt.Sprint(v), nil
	default:
		return value, nil
	}
}
