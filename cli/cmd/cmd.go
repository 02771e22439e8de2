package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/hcomp/extract"
	"github.com/ardnew/hcomp/log"
	"github.com/ardnew/hcomp/pkg"
	"github.com/ardnew/hcomp/schema"
	"github.com/ardnew/hcomp/source"
)

// Identifiers for kong.Vars interpolated into flag defaults and help.
const (
	ConfigIdentifier = "configFile"
	CacheIdentifier  = "cacheDir"
)

type contextKey struct{}

// WithContext returns a context carrying the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok {
		return nil
	}

	return ktx
}

// stdinSource is the stdin placeholder accepted by --file.
const stdinSource = "-"

// sourceConfig selects where help text comes from. Exactly one source
// may be given; with none, stdin is read when it is not a terminal.
type sourceConfig struct {
	Command    string `help:"Extract from a command's man page or --help output"        short:"c" xor:"source"`
	Subcommand string `help:"Extract from a subcommand given as command-subcommand (e.g. git-log)" xor:"source"`
	File       string `help:"Extract from a help-text file, or '-' for stdin"           short:"f" xor:"source"`
	Load       string `help:"Load a previously exported JSON schema file"               short:"l" xor:"source"`
	SkipMan    bool   `help:"Skip man page lookup and use --help output"`
}

// name returns the command name recorded in the extracted schema.
func (s *sourceConfig) name() string {
	switch {
	case s.Command != "":
		return s.Command
	case s.Subcommand != "":
		return s.Subcommand
	case s.File != "" && s.File != stdinSource:
		return filepath.Base(s.File)
	default:
		return "command"
	}
}

// loaded reports whether the source is a previously exported schema
// instead of raw help text.
func (s *sourceConfig) loaded() bool { return s.Load != "" }

// text acquires the raw help text for the configured source.
func (s *sourceConfig) text(ctx context.Context) (string, error) {
	switch {
	case s.File == stdinSource:
		return readStdin()

	case s.File != "":
		return source.ReadFile(s.File)

	case s.Command != "":
		return s.acquire(ctx, s.Command, s.Command)

	case s.Subcommand != "":
		command, sub, ok := strings.Cut(s.Subcommand, "-")
		if !ok {
			return "", ErrBadSubcommand.With(
				slog.String("subcommand", s.Subcommand))
		}

		// Man pages name subcommands with a hyphen ("git-log"), live
		// invocations with a space ("git log").
		return s.acquire(ctx, s.Subcommand, command+" "+sub)

	default:
		if stat, err := os.Stdin.Stat(); err == nil &&
			stat.Mode()&os.ModeCharDevice == 0 {
			return readStdin()
		}

		return "", pkg.ErrNoInput
	}
}

// acquire fetches help text for a command, preferring its man page
// unless --skip-man is set or no page exists.
func (s *sourceConfig) acquire(ctx context.Context, manName, helpName string) (string, error) {
	if !s.SkipMan && source.IsManAvailable(ctx, manName) {
		return source.Manpage(ctx, manName)
	}

	return source.CommandHelp(ctx, helpName)
}

// schema produces the extracted (not yet postprocessed) command schema:
// either decoded from a previously exported file, or built from freshly
// acquired help text. Depth gates subcommand detection.
func (s *sourceConfig) schema(ctx context.Context, depth int) (schema.Command, error) {
	if s.loaded() {
		file, err := os.Open(s.Load)
		if err != nil {
			return schema.Command{}, ErrAcquireInput.Wrap(err)
		}
		defer file.Close()

		return schema.Decode(file)
	}

	text, err := s.text(ctx)
	if err != nil {
		return schema.Command{}, err
	}

	cleaned := extract.Clean(text)

	log.Trace("acquired help text",
		slog.String("name", s.name()),
		slog.Int("bytes", len(cleaned)),
	)

	return extract.Build(s.name(), cleaned, depth), nil
}

func readStdin() (string, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", pkg.ErrReadInput.Wrap(err)
	}

	return string(data), nil
}
