// Package text normalizes whitespace and decoration in raw help text
// before extraction. All functions are pure and total: any input string
// produces an output string, never an error.
//
// NormalizeSpacing and UnicodeSpacesToASCII have fast paths that return the
// input unchanged, without allocating, when no relevant character occurs.
// Correctness never depends on which path executes.
package text

import (
	"strings"
	"unicode"
)

// tabWidth is the number of spaces substituted for each tab.
const tabWidth = 8

// Unicode space code points mapped to ASCII by UnicodeSpacesToASCII.
const (
	noBreakSpace = '\u00a0'
	enSpace      = '\u2002'
	emSpace      = '\u2003'
)

// NormalizeSpacing replaces each tab with eight spaces and collapses every
// run of exactly two consecutive spaces into one. The collapse is a single
// fixed-width pass, not a general whitespace squash: four spaces become
// two, not one.
func NormalizeSpacing(s string) string {
	hasTabs := strings.ContainsRune(s, '\t')
	hasDouble := strings.Contains(s, "  ")

	if !hasTabs && !hasDouble {
		return s
	}

	if hasTabs {
		s = strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
	}

	return strings.ReplaceAll(s, "  ", " ")
}

// TabsToSpaces replaces each tab with the given number of spaces. A width
// of zero or less removes tabs entirely.
func TabsToSpaces(s string, width int) string {
	if !strings.ContainsRune(s, '\t') {
		return s
	}

	if width < 0 {
		width = 0
	}

	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", width))
}

// UnicodeSpacesToASCII maps U+00A0 (no-break space) to one ASCII space,
// U+2002 (en space) to two, and U+2003 (em space) to three. All other
// characters pass through unchanged.
func UnicodeSpacesToASCII(s string) string {
	if !strings.ContainsRune(s, noBreakSpace) &&
		!strings.ContainsRune(s, enSpace) &&
		!strings.ContainsRune(s, emSpace) {
		return s
	}

	var sb strings.Builder

	sb.Grow(len(s))

	for _, r := range s {
		switch r {
		case noBreakSpace:
			sb.WriteString(" ")
		case enSpace:
			sb.WriteString("  ")
		case emSpace:
			sb.WriteString("   ")
		default:
			sb.WriteRune(r)
		}
	}

	return sb.String()
}

// RemoveBullets strips a single leading list bullet from each line while
// preserving the line's original indentation. A bullet is '*', '-', or
// U+2022 followed by whitespace; the bullet and the whitespace run after it
// are removed. Lines without that exact prefix pass through verbatim.
//
// A '-' bullet requires trailing whitespace, so option lines like
// "-v, --verbose" are never touched.
func RemoveBullets(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)
		indent := line[:len(line)-len(trimmed)]

		rest, ok := stripBullet(trimmed)
		if !ok {
			continue
		}

		lines[i] = indent + rest
	}

	return strings.Join(lines, "\n")
}

// stripBullet removes one leading bullet glyph and the whitespace run that
// follows it. It reports false when the line does not begin with a bullet
// followed by a space or tab.
func stripBullet(s string) (string, bool) {
	var rest string

	switch {
	case strings.HasPrefix(s, "*"), strings.HasPrefix(s, "-"):
		rest = s[1:]
	case strings.HasPrefix(s, "•"):
		rest = s[len("•"):]
	default:
		return "", false
	}

	if !strings.HasPrefix(rest, " ") && !strings.HasPrefix(rest, "\t") {
		return "", false
	}

	return strings.TrimLeftFunc(rest, unicode.IsSpace), true
}
