// Package extract assembles a [schema.Command] from raw help text by
// running the normalization, option, usage, and subcommand stages in
// their fixed order.
package extract

import (
	"github.com/ardnew/hcomp/layout"
	"github.com/ardnew/hcomp/schema"
	"github.com/ardnew/hcomp/subcmd"
	"github.com/ardnew/hcomp/text"
)

// Clean normalizes raw help text for extraction: spacing first, then
// bullet removal, then Unicode space widening. The order matters, since
// bullet detection assumes ASCII-normalized indentation runs.
func Clean(s string) string {
	return text.UnicodeSpacesToASCII(text.RemoveBullets(text.NormalizeSpacing(s)))
}

// Build extracts a command schema from already-cleaned help text. The
// resulting command carries the given name, the parsed options and usage
// section, and, when depth is positive, one child per detected
// subcommand holding only its name and description. Callers wanting the
// postprocessed form apply [schema.Fix] to the result.
func Build(name, content string, depth int) schema.Command {
	cmd := schema.New(name)

	cmd.Options = layout.ParseBlockwise(content)
	cmd.Usage = layout.ParseUsage(content)

	if depth > 0 {
		for _, sub := range subcmd.Parse(content) {
			child := schema.New(sub.Cmd)
			child.Description = sub.Desc

			cmd.Subcommands = append(cmd.Subcommands, child)
		}
	}

	return cmd
}
