package gen

import (
	"fmt"
	"strings"

	"github.com/ardnew/hcomp/schema"
)

// generateNushell emits a nushell extern signature. Each option renders
// as one signature entry, pairing a long spelling with its short alias
// when both exist; options taking an argument are typed as string.
func generateNushell(cmd schema.Command) string {
	lines := []string{
		fmt.Sprintf("export extern %q [", cmd.Name),
	}

	for _, opt := range cmd.Options {
		entry := nushellEntry(opt)
		if entry == "" {
			continue
		}

		lines = append(lines, "  "+entry)
	}

	lines = append(lines, "]")

	return strings.Join(lines, "\n")
}

func nushellEntry(opt schema.Opt) string {
	var long, short string

	for _, name := range opt.Names {
		switch name.Type {
		case schema.LongType, schema.OldType:
			if long == "" {
				long = name.Raw
			}
		case schema.ShortType:
			if short == "" {
				short = name.Raw
			}
		}
	}

	var sb strings.Builder

	switch {
	case long != "" && short != "":
		sb.WriteString(fmt.Sprintf("%s(%s)", long, short))
	case long != "":
		sb.WriteString(long)
	case short != "":
		sb.WriteString(short)
	default:
		return ""
	}

	if opt.Argument != "" {
		sb.WriteString(": string")
	}

	if desc := truncateAfterPeriod(opt.Description); desc != "" {
		sb.WriteString("  # ")
		sb.WriteString(desc)
	}

	return sb.String()
}
