// Package gen renders a [schema.Command] into shell completion scripts
// and other output formats. Generators never mutate the command they
// render.
package gen

import (
	"strings"

	"github.com/ardnew/hcomp/pkg"
	"github.com/ardnew/hcomp/schema"
)

// Format selects an output renderer.
type Format int

// Output formats, in flag-value order.
const (
	Bash Format = iota
	Zsh
	Fish
	Elvish
	Nushell
	JSON
	Native
)

// formatNames maps each Format to its flag spelling.
var formatNames = map[Format]string{
	Bash:    "bash",
	Zsh:     "zsh",
	Fish:    "fish",
	Elvish:  "elvish",
	Nushell: "nushell",
	JSON:    "json",
	Native:  "native",
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}

	return "unknown"
}

// Formats lists every flag spelling in declaration order.
func Formats() []string {
	names := make([]string, 0, len(formatNames))
	for f := Bash; f <= Native; f++ {
		names = append(names, formatNames[f])
	}

	return names
}

// ParseFormat resolves a flag spelling, case-insensitively.
func ParseFormat(s string) (Format, error) {
	lower := strings.ToLower(strings.TrimSpace(s))
	for f, name := range formatNames {
		if name == lower {
			return f, nil
		}
	}

	return Bash, pkg.ErrInvalidFormat.Wrap(pkg.MakeErrorf("%q (expected one of %s)",
		s, strings.Join(Formats(), "|")))
}

// Option configures a generator.
type Option func(*config)

type config struct {
	bashCompat bool
}

// WithBashCompat emits a bash script compatible with older
// bash-completion releases that reject the nospace/bashdefault options.
func WithBashCompat(enable bool) Option {
	return func(c *config) { c.bashCompat = enable }
}

// Generate renders cmd in the given format.
func Generate(format Format, cmd schema.Command, opts ...Option) (string, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	switch format {
	case Bash:
		return generateBash(cmd, cfg.bashCompat), nil
	case Zsh:
		return generateZsh(cmd), nil
	case Fish:
		return generateFish(cmd), nil
	case Elvish:
		return generateElvish(cmd), nil
	case Nushell:
		return generateNushell(cmd), nil
	case JSON:
		return generateJSON(cmd)
	case Native:
		return generateNative(cmd), nil
	default:
		return "", pkg.ErrInvalidFormat.Wrap(pkg.MakeErrorf("%d", int(format)))
	}
}

// skipName reports whether a flag spelling carries no completable text:
// the bare "-" and "--" spellings.
func skipName(name schema.OptName) bool {
	return name.Type == schema.SingleDashAlone || name.Type == schema.DoubleDashAlone
}

// truncateAfterPeriod keeps only the first sentence of a description.
func truncateAfterPeriod(s string) string {
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		return s[:idx]
	}

	return s
}

// escapeSingleQuotes backslash-escapes single quotes for embedding in a
// single-quoted shell string.
func escapeSingleQuotes(s string) string {
	return strings.ReplaceAll(s, "'", `\'`)
}
