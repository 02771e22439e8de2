package schema

import "strings"

// Fix normalizes an assembled command tree in post-order: options are
// deduplicated, options without a usable name or description are dropped,
// and every subcommand is fixed the same way. The returned tree satisfies
// the invariant that every surviving option has at least one non-empty name
// and a non-empty description, at every depth.
//
// Fix is idempotent: Fix(Fix(cmd)) == Fix(cmd).
func Fix(cmd Command) Command {
	cmd.Options = filterOptions(dedupeOptions(cmd.Options))

	for i, sub := range cmd.Subcommands {
		cmd.Subcommands[i] = Fix(sub)
	}

	return cmd
}

// dedupeOptions removes options whose (names, argument) key was already
// seen, keeping the first occurrence. The description is deliberately not
// part of the key: two same-named options with different descriptions
// collapse into the first one.
func dedupeOptions(options []Opt) []Opt {
	seen := make(map[string]struct{}, len(options))
	result := make([]Opt, 0, len(options))

	for _, opt := range options {
		key := dedupeKey(opt)
		if _, ok := seen[key]; ok {
			continue
		}

		seen[key] = struct{}{}
		result = append(result, opt)
	}

	return result
}

// dedupeKey joins the option's raw spellings with '|' and appends the
// argument placeholder.
func dedupeKey(opt Opt) string {
	raws := make([]string, len(opt.Names))
	for i, n := range opt.Names {
		raws[i] = n.Raw
	}

	return strings.Join(raws, "|") + "\x00" + opt.Argument
}

// filterOptions drops options that have no names, an empty first raw
// spelling, or an empty description.
func filterOptions(options []Opt) []Opt {
	result := options[:0]

	for _, opt := range options {
		if len(opt.Names) == 0 || opt.Names[0].Raw == "" || opt.Description == "" {
			continue
		}

		result = append(result, opt)
	}

	return result
}
