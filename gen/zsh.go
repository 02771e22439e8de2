package gen

import (
	"fmt"
	"strings"

	"github.com/ardnew/hcomp/schema"
)

// generateZsh emits a zsh compdef script built on _arguments specs.
func generateZsh(cmd schema.Command) string {
	fn := "_" + cmd.Name

	lines := []string{
		fmt.Sprintf("#compdef %s %s", fn, cmd.Name),
		"",
		fn + "() {",
		"  local -a options",
		"",
	}

	for _, opt := range cmd.Options {
		desc := truncateAfterPeriod(opt.Description)

		for _, name := range opt.Names {
			if skipName(name) {
				continue
			}

			var spec string
			if opt.Argument == "" {
				spec = fmt.Sprintf("'%s[%s]'", name.Raw, desc)
			} else {
				spec = fmt.Sprintf("'%s[%s %s]'", name.Raw, opt.Argument, desc)
			}

			lines = append(lines, fmt.Sprintf("  options+=(%s)", spec))
		}
	}

	lines = append(lines,
		"  _arguments -s -S $options",
		"}",
		"",
		fn+` "$@"`,
	)

	return strings.Join(lines, "\n")
}
