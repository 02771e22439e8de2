package gen

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ardnew/hcomp/pkg"
	"github.com/ardnew/hcomp/schema"
)

// generateBash emits a bash completion function over the flat, sorted
// set of flag spellings. Compat mode drops the completion options that
// predate bash-completion 2.x support.
func generateBash(cmd schema.Command, compat bool) string {
	fn := fmt.Sprintf("_%s_%s", pkg.Name, cmd.Name)

	lines := []string{
		fn + "()",
		"{",
		"  local cur prev opts",
		"  COMPREPLY=()",
		`  cur="${COMP_WORDS[COMP_CWORD]}"`,
		`  prev="${COMP_WORDS[COMP_CWORD-1]}"`,
		"",
	}

	var raws []string

	for _, opt := range cmd.Options {
		for _, name := range opt.Names {
			if !skipName(name) {
				raws = append(raws, name.Raw)
			}
		}
	}

	slices.Sort(raws)
	raws = slices.Compact(raws)

	lines = append(lines,
		fmt.Sprintf("  opts=%q", strings.Join(raws, " ")),
		"",
		`  COMPREPLY=($(compgen -W "${opts}" -- ${cur}))`,
		"}",
		"",
	)

	if compat {
		lines = append(lines, fmt.Sprintf("complete -F %s %s", fn, cmd.Name))
	} else {
		lines = append(lines, fmt.Sprintf(
			"complete -o bashdefault -o default -o nospace -F %s %s", fn, cmd.Name))
	}

	return strings.Join(lines, "\n")
}
