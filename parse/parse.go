// Package parse converts option-describing help lines into [schema.Opt]
// values.
//
// The entry points operate on one block of text (see package layout for
// block segmentation): [Preprocess] splits the block's lines into
// option/description pairs, and [ParseLine] turns those pairs into options.
// Both are heuristic and total — ill-shaped lines yield fewer pairs, never
// an error.
package parse

import (
	"slices"
	"strings"
	"unicode"

	"github.com/ardnew/hcomp/schema"
)

// groupSeparators split a flag list into alias groups, e.g.
// "-v, --verbose" or "-h|--help" or "-f/--file".
const groupSeparators = ",/|"

// Pair couples the option portion of a help line with its description.
type Pair struct {
	// Option is the flag spellings and any inline argument placeholder.
	Option string
	// Description is the remaining descriptive text, possibly empty.
	Description string
}

// Preprocess splits a block's lines into option/description pairs.
//
// For each line whose trimmed content starts with '-', the line's tokens
// are scanned left to right: the option portion extends while a token is
// the first token, starts with '-', or looks like an inline argument
// placeholder; the first descriptive word ends the scan, and the remaining
// tokens become the same-line description.
//
// When the whole line matches as option portion, the entire trimmed line
// becomes the option text and the next line is inspected: if it does not
// itself start with '-', its trimmed content becomes the description and
// two lines are consumed. Otherwise the pair has an empty description.
func Preprocess(block string) []Pair {
	lines := strings.Split(block, "\n")
	pairs := make([]Pair, 0, len(lines))

	for i := 0; i < len(lines); i++ {
		trimmed := strings.TrimLeftFunc(lines[i], unicode.IsSpace)
		if !strings.HasPrefix(trimmed, "-") {
			continue
		}

		parts := strings.Fields(trimmed)

		optEnd := 0

		for idx, part := range parts {
			if idx == 0 || strings.HasPrefix(part, "-") || isInlineArg(part) {
				optEnd = idx + 1

				continue
			}

			break
		}

		if optEnd < len(parts) {
			// Description found on the same line.
			pairs = append(pairs, Pair{
				Option:      strings.Join(parts[:optEnd], " "),
				Description: strings.Join(parts[optEnd:], " "),
			})

			continue
		}

		// The whole line is the option portion: look for the description
		// on the following line.
		opt := strings.TrimSpace(lines[i])

		if i+1 < len(lines) {
			next := strings.TrimSpace(lines[i+1])
			if next != "" && !strings.HasPrefix(next, "-") {
				pairs = append(pairs, Pair{Option: opt, Description: next})
				i++

				continue
			}
		}

		pairs = append(pairs, Pair{Option: opt})
	}

	return pairs
}

// isInlineArg reports whether a non-dash token still belongs to the option
// portion of a line: an inline assignment ("=SIZE"), a bracketed
// placeholder ("<file>", "[N]"), or an all-caps placeholder ("FILE").
// A token containing a lowercase letter outside brackets is treated as the
// first word of the description.
func isInlineArg(s string) bool {
	if strings.Contains(s, "=") {
		return true
	}

	if strings.HasPrefix(s, "<") || strings.HasPrefix(s, "[") {
		return true
	}

	return !strings.ContainsFunc(s, unicode.IsLower)
}

// ParseLine extracts options from one block of help text. Each
// option/description pair produces at most one [schema.Opt]; pairs without
// any classifiable flag spelling are dropped, and exact duplicates (same
// names, argument, and description) are dropped keeping the first
// occurrence in original order.
func ParseLine(block string) []schema.Opt {
	pairs := Preprocess(block)
	opts := make([]schema.Opt, 0, len(pairs))
	seen := make(map[string]struct{}, len(pairs))

	for _, pair := range pairs {
		names := ParseOptNames(pair.Option)
		if len(names) == 0 {
			continue
		}

		opt := schema.Opt{
			Names:       names,
			Argument:    ParseOptArg(pair.Option),
			Description: pair.Description,
		}

		key := optKey(opt)
		if _, ok := seen[key]; ok {
			continue
		}

		seen[key] = struct{}{}
		opts = append(opts, opt)
	}

	return opts
}

// ParseOptNames collects every classifiable flag spelling from the option
// portion of a line. The text splits into alias groups on commas, slashes,
// and pipes; every whitespace token starting with '-' is a classification
// candidate. Results are sorted by (raw, type) with duplicates removed.
func ParseOptNames(s string) []schema.OptName {
	var names []schema.OptName

	for group := range splitGroups(s) {
		for _, word := range strings.Fields(group) {
			if !strings.HasPrefix(word, "-") {
				continue
			}

			if name, ok := schema.ParseOptName(word); ok {
				names = append(names, name)
			}
		}
	}

	slices.SortFunc(names, schema.OptName.Compare)

	return slices.Compact(names)
}

// ParseOptArg guesses the option's argument placeholder. The first alias
// group with two or more tokens contributes everything after its first
// token, unless that candidate is empty or the literal ".".
//
// This heuristic can misfire when an alias group itself contains a
// multi-word fragment; that risk is accepted.
func ParseOptArg(s string) string {
	for group := range splitGroups(s) {
		words := strings.Fields(group)
		if len(words) < 2 {
			continue
		}

		arg := strings.Join(words[1:], " ")
		if arg != "" && arg != "." {
			return arg
		}
	}

	return ""
}

// splitGroups iterates over the trimmed, non-empty alias groups of an
// option text.
func splitGroups(s string) func(yield func(string) bool) {
	return func(yield func(string) bool) {
		for _, group := range strings.FieldsFunc(s, func(r rune) bool {
			return strings.ContainsRune(groupSeparators, r)
		}) {
			trimmed := strings.TrimSpace(group)
			if trimmed == "" {
				continue
			}

			if !yield(trimmed) {
				return
			}
		}
	}
}

// optKey builds a whole-value identity key for duplicate detection.
func optKey(opt schema.Opt) string {
	var sb strings.Builder

	for _, name := range opt.Names {
		sb.WriteString(name.Raw)
		sb.WriteByte(0)
		sb.WriteByte(byte(name.Type))
	}

	sb.WriteByte(0)
	sb.WriteString(opt.Argument)
	sb.WriteByte(0)
	sb.WriteString(opt.Description)

	return sb.String()
}
