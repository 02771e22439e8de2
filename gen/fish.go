package gen

import (
	"fmt"
	"strings"

	"github.com/ardnew/hcomp/schema"
)

// generateFish emits one fish complete statement per flag spelling,
// descending recursively into subcommands. Nested commands register
// under the underscore-joined command path.
func generateFish(cmd schema.Command) string {
	var lines []string

	fishCommand(&lines, nil, cmd)

	return strings.Join(lines, "\n")
}

func fishCommand(lines *[]string, path []string, cmd schema.Command) {
	path = append(path, cmd.Name)

	for _, opt := range cmd.Options {
		for _, name := range opt.Names {
			if skipName(name) {
				continue
			}

			*lines = append(*lines, fishOptionLine(path, name, opt))
		}
	}

	for _, sub := range cmd.Subcommands {
		fishCommand(lines, path, sub)
	}
}

func fishOptionLine(path []string, name schema.OptName, opt schema.Opt) string {
	dashless := strings.TrimLeft(name.Raw, "-")
	desc := escapeSingleQuotes(truncateAfterPeriod(opt.Description))

	return fmt.Sprintf("complete -c %s %s '%s' %s -d '%s'",
		strings.Join(path, "_"), fishTypeFlag(name.Type), dashless,
		fishArgFlag(opt), desc)
}

// fishTypeFlag maps a spelling type to the matching complete flag.
func fishTypeFlag(t schema.NameType) string {
	switch t {
	case schema.LongType:
		return "-l"
	case schema.ShortType:
		return "-s"
	case schema.OldType:
		return "-o"
	default:
		return ""
	}
}

// fishArgFlag picks -r (allow file completion) when the argument or
// description suggests a filesystem path, -x (exclusive) for any other
// argument, and nothing for plain switches.
func fishArgFlag(opt schema.Opt) string {
	if opt.Argument == "" {
		return ""
	}

	arg := strings.ToLower(opt.Argument)
	desc := strings.ToLower(opt.Description)

	for _, hint := range []string{"file", "dir", "path", "archive"} {
		if strings.Contains(arg, hint) {
			return "-r"
		}
	}

	for _, hint := range []string{"file", "dir", "path"} {
		if strings.Contains(desc, hint) {
			return "-r"
		}
	}

	return "-x"
}
