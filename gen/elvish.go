package gen

import (
	"fmt"
	"strings"

	"github.com/ardnew/hcomp/schema"
)

// generateElvish emits an elvish arg-completer that puts every flag
// spelling as a complex candidate with its description as the display
// suffix.
func generateElvish(cmd schema.Command) string {
	lines := []string{
		fmt.Sprintf("set edit:completion:arg-completer[%s] = {|@words|", cmd.Name),
		"  each {|c| edit:complex-candidate $c[0] &display=$c[0]' '$c[1] } [",
	}

	for _, opt := range cmd.Options {
		desc := escapeSingleQuotes(truncateAfterPeriod(opt.Description))

		for _, name := range opt.Names {
			if skipName(name) {
				continue
			}

			lines = append(lines, fmt.Sprintf("    [%s '%s']", name.Raw, desc))
		}
	}

	lines = append(lines, "  ]", "}")

	return strings.Join(lines, "\n")
}
