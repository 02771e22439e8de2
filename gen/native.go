package gen

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ardnew/hcomp/schema"
)

var (
	labelStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	nameStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	argStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	subcmdStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	versionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// generateNative renders a human-readable dump of the command schema
// with one section per field.
func generateNative(cmd schema.Command) string {
	sections := []string{
		labelStyle.Render("Name:") + "  " + cmd.Name,
		labelStyle.Render("Desc:") + "  " + cmd.Description,
		labelStyle.Render("Usage:") + "\n" + cmd.Usage,
	}

	if cmd.Version != "" {
		sections = append(sections,
			labelStyle.Render("Version:")+"  "+versionStyle.Render(cmd.Version))
	}

	for _, opt := range cmd.Options {
		raws := make([]string, len(opt.Names))
		for i, name := range opt.Names {
			raws[i] = name.Raw
		}

		sections = append(sections, fmt.Sprintf("  %s (%s)",
			nameStyle.Render(strings.Join(raws, ", ")),
			argStyle.Render(opt.Argument)))
	}

	for _, sub := range cmd.Subcommands {
		sections = append(sections,
			labelStyle.Render("Subcommand:")+" "+subcmdStyle.Render(sub.Name))
	}

	return strings.Join(sections, "\n\n")
}
