// Package subcmd detects subcommand listings in help text.
//
// Two heuristics run over the same lines and their findings are unioned:
// a line-pair window that treats the first word of one line as a name and
// the next line as its description, and a single-line form that requires
// a name followed by at least two descriptive words. The union is
// deduplicated and ordered by (name, description), so detection order
// never leaks into the result.
package subcmd

import (
	"slices"
	"strings"
	"unicode"

	"github.com/ardnew/hcomp/schema"
)

// Parse extracts subcommand candidates from help text. It is total:
// text without any recognizable listing yields an empty result.
func Parse(content string) []schema.Subcommand {
	lines := strings.Split(content, "\n")

	var found []schema.Subcommand

	for i := 0; i+1 < len(lines); i++ {
		if sub, ok := parseLinePair(lines[i], lines[i+1]); ok {
			found = append(found, sub)
		}
	}

	for _, line := range lines {
		if sub, ok := parseSingleLine(line); ok {
			found = append(found, sub)
		}
	}

	slices.SortFunc(found, schema.Subcommand.Compare)

	return slices.Compact(found)
}

// parseLinePair matches a two-line listing: a line opening with a valid
// subcommand name and a following line holding descriptive text. Either
// line starting with '-' disqualifies the pair.
func parseLinePair(first, second string) (schema.Subcommand, bool) {
	trimmed := strings.TrimSpace(first)
	if trimmed == "" || strings.HasPrefix(trimmed, "-") {
		return schema.Subcommand{}, false
	}

	fields := strings.Fields(trimmed)
	if len(fields) == 0 || !validName(fields[0]) {
		return schema.Subcommand{}, false
	}

	desc := strings.TrimSpace(second)
	if desc == "" || strings.HasPrefix(desc, "-") {
		return schema.Subcommand{}, false
	}

	return schema.Subcommand{Cmd: fields[0], Desc: desc}, true
}

// parseSingleLine matches a one-line listing: a valid subcommand name
// followed by at least two words of description.
func parseSingleLine(line string) (schema.Subcommand, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "-") {
		return schema.Subcommand{}, false
	}

	fields := strings.Fields(trimmed)
	if len(fields) < 3 || !validName(fields[0]) {
		return schema.Subcommand{}, false
	}

	return schema.Subcommand{
		Cmd:  fields[0],
		Desc: strings.Join(fields[1:], " "),
	}, true
}

// validName reports whether a token can name a subcommand: non-empty,
// not dash-led, and built entirely from letters, digits, '-', or '_'.
func validName(name string) bool {
	if name == "" || strings.HasPrefix(name, "-") {
		return false
	}

	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '_' {
			return false
		}
	}

	return true
}
