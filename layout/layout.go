// Package layout segments raw help text into option blocks, drives the
// per-block parser across them, and recovers two layout-level signals:
// the usage/synopsis section and the column offsets at which option lines
// are aligned.
//
// Block-level results preserve source order regardless of whether blocks
// were processed sequentially or concurrently.
package layout

import (
	"runtime"
	"strings"
	"unicode"

	"golang.org/x/sync/errgroup"

	"github.com/ardnew/hcomp/parse"
	"github.com/ardnew/hcomp/schema"
)

// parallelThreshold is the block count above which blocks are processed
// concurrently.
const parallelThreshold = 4

// usageKeywords mark the start of a usage section, matched
// case-insensitively together with a ':' on the same line.
var usageKeywords = []string{"usage", "synopsis"}

// SplitIntoBlocks partitions help text into blocks of consecutive
// non-blank lines, where a block opens at a line whose first non-space
// character is '-' and closes at the next blank line. Lines before the
// first opening line are discarded. Text without any '-' yields no blocks.
func SplitIntoBlocks(content string) []string {
	if !strings.ContainsRune(content, '-') {
		return nil
	}

	var (
		blocks  []string
		current strings.Builder
		inBlock bool
	)

	flush := func() {
		if current.Len() > 0 {
			blocks = append(blocks, current.String())
			current.Reset()
		}
	}

	for line := range strings.Lines(content) {
		line = strings.TrimRight(line, "\n")
		trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)

		switch {
		case trimmed == "":
			if inBlock {
				flush()

				inBlock = false
			}

		case strings.HasPrefix(trimmed, "-") || inBlock:
			if current.Len() > 0 {
				current.WriteByte('\n')
			}

			current.WriteString(line)

			inBlock = true
		}
	}

	flush()

	return blocks
}

// ParseBlockwise splits content into blocks and parses each block's
// options, concatenating the per-block results in block order.
func ParseBlockwise(content string) []schema.Opt {
	return blockwise(SplitIntoBlocks(content), parse.ParseLine)
}

// PreprocessBlockwise splits content into blocks and preprocesses each
// block into option/description pairs, concatenating the per-block
// results in block order.
func PreprocessBlockwise(content string) []parse.Pair {
	return blockwise(SplitIntoBlocks(content), parse.Preprocess)
}

// blockwise maps fn over blocks, concurrently when the block count
// exceeds parallelThreshold, and flattens the per-block results in block
// order. Each block writes into its own indexed slot, so the merged
// output is identical either way.
func blockwise[T any](blocks []string, fn func(string) []T) []T {
	if len(blocks) <= parallelThreshold {
		var out []T
		for _, block := range blocks {
			out = append(out, fn(block)...)
		}

		return out
	}

	results := make([][]T, len(blocks))

	var group errgroup.Group

	group.SetLimit(runtime.GOMAXPROCS(0))

	for i, block := range blocks {
		group.Go(func() error {
			results[i] = fn(block)

			return nil
		})
	}

	// Workers never return an error.
	_ = group.Wait()

	var out []T
	for _, opts := range results {
		out = append(out, opts...)
	}

	return out
}

// ParseUsage extracts the usage section: the first line containing
// "usage" or "synopsis" (case-insensitive) along with a ':', plus every
// following line that is non-empty and either starts with a space or
// contains a ':'. It returns "" when no such section exists.
func ParseUsage(content string) string {
	if !strings.ContainsAny(content, "usUS") {
		return ""
	}

	lower := strings.ToLower(content)

	found := false

	for _, keyword := range usageKeywords {
		if pos := strings.Index(lower, keyword); pos >= 0 {
			if strings.Contains(lower[pos:], ":") {
				found = true

				break
			}
		}
	}

	if !found {
		return ""
	}

	lines := strings.Split(content, "\n")

	for i, line := range lines {
		if !isUsageHeading(line) {
			continue
		}

		var sb strings.Builder

		sb.WriteString(line)

		for _, next := range lines[i+1:] {
			if next == "" || (!strings.HasPrefix(next, " ") && !strings.Contains(next, ":")) {
				break
			}

			sb.WriteByte('\n')
			sb.WriteString(next)
		}

		return sb.String()
	}

	return ""
}

// isUsageHeading reports whether a line contains a usage keyword and a
// colon, case-insensitively.
func isUsageHeading(line string) bool {
	lower := strings.ToLower(line)
	if !strings.Contains(lower, ":") {
		return false
	}

	for _, keyword := range usageKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}

	return false
}

// OptionOffsets reports the dominant left margins of option lines: the
// most frequent indentation of short-option lines and of long-option
// lines. The result has zero, one, or two entries; equal offsets
// collapse to one, and distinct offsets list the short offset first.
//
// The offsets are advisory layout hints, not inputs to parsing.
func OptionOffsets(s string) []int {
	short, shortOK := mostFrequentOffset(s, func(line string) bool {
		return strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "--")
	})
	long, longOK := mostFrequentOffset(s, func(line string) bool {
		return strings.HasPrefix(line, "--")
	})

	switch {
	case !shortOK && !longOK:
		return nil
	case !shortOK:
		return []int{long}
	case !longOK:
		return []int{short}
	case short == long:
		return []int{short}
	default:
		return []int{short, long}
	}
}

// mostFrequentOffset computes the most common leading-whitespace width
// (in bytes) over lines whose trimmed content satisfies the predicate.
// Ties resolve to the smaller offset.
func mostFrequentOffset(s string, predicate func(string) bool) (int, bool) {
	counts := make(map[int]int)

	for _, line := range strings.Split(s, "\n") {
		trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)
		if trimmed == "" || !predicate(trimmed) {
			continue
		}

		counts[len(line)-len(trimmed)]++
	}

	if len(counts) == 0 {
		return 0, false
	}

	var (
		best      int
		bestCount int
	)

	for offset, count := range counts {
		if count > bestCount || (count == bestCount && offset < best) {
			best = offset
			bestCount = count
		}
	}

	return best, true
}
