package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/ardnew/hcomp/gen"
	"github.com/ardnew/hcomp/log"
	"github.com/ardnew/hcomp/schema"
)

// Export extracts a command schema and renders it in the requested
// output format.
type Export struct {
	sourceConfig `embed:""`

	Format     string `default:"bash" enum:"bash,zsh,fish,elvish,nushell,json,native" help:"Output format" short:"F"`
	Output     string `help:"Write output to a file instead of stdout"                short:"o"             type:"path"`
	Filter     string `help:"Keep only options matching this expression (e.g. 'argument != \"\"')"`
	Depth      int    `default:"1" help:"Subcommand detection depth (0 disables)"`
	BashCompat bool   `help:"Emit bash output compatible with older bash-completion" name:"bash-completion-compat"`
}

func (e *Export) Run(ctx context.Context) error {
	format, err := gen.ParseFormat(e.Format)
	if err != nil {
		return err
	}

	cmd, err := e.schema(ctx, e.Depth)
	if err != nil {
		return err
	}

	cmd = schema.Fix(cmd)

	if e.Filter != "" {
		program, err := compileFilter(e.Filter)
		if err != nil {
			return ErrFilterExpr.Wrap(err).With(
				slog.String("filter", e.Filter))
		}

		cmd, err = filterCommand(cmd, program)
		if err != nil {
			return ErrFilterExpr.Wrap(err).With(
				slog.String("filter", e.Filter))
		}
	}

	output, err := gen.Generate(format, cmd, gen.WithBashCompat(e.BashCompat))
	if err != nil {
		return ErrRenderOutput.Wrap(err).With(
			slog.String("format", e.Format))
	}

	log.Debug("rendered schema",
		slog.String("name", cmd.Name),
		slog.String("format", format.String()),
		slog.Int("options", len(cmd.Options)),
		slog.Int("subcommands", len(cmd.Subcommands)),
	)

	if e.Output != "" {
		if err := os.WriteFile(e.Output, []byte(output), 0o644); err != nil {
			return ErrWriteOutput.Wrap(err).With(
				slog.String("path", e.Output))
		}

		return nil
	}

	_, err = io.WriteString(stdout(ctx), output)

	return err
}

// filterEnv is the expression environment evaluated once per option.
type filterEnv struct {
	Names       []string `expr:"names"`
	Argument    string   `expr:"argument"`
	Description string   `expr:"description"`
}

func compileFilter(src string) (*vm.Program, error) {
	return expr.Compile(src, expr.Env(filterEnv{}), expr.AsBool())
}

// filterCommand keeps only the options (at every depth) for which the
// compiled predicate evaluates to true.
func filterCommand(cmd schema.Command, program *vm.Program) (schema.Command, error) {
	kept := make([]schema.Opt, 0, len(cmd.Options))

	for _, opt := range cmd.Options {
		names := make([]string, len(opt.Names))
		for i, n := range opt.Names {
			names[i] = n.Raw
		}

		result, err := expr.Run(program, filterEnv{
			Names:       names,
			Argument:    opt.Argument,
			Description: opt.Description,
		})
		if err != nil {
			return schema.Command{}, err
		}

		if keep, ok := result.(bool); ok && keep {
			kept = append(kept, opt)
		}
	}

	cmd.Options = kept

	for i, sub := range cmd.Subcommands {
		filtered, err := filterCommand(sub, program)
		if err != nil {
			return schema.Command{}, err
		}

		cmd.Subcommands[i] = filtered
	}

	return cmd, nil
}
