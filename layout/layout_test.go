package layout

import (
	"reflect"
	"strings"
	"testing"

	"github.com/ardnew/hcomp/parse"
	"github.com/ardnew/hcomp/schema"
)

func TestSplitIntoBlocks(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			"single block",
			"  -a, --all  show all",
			[]string{"  -a, --all  show all"},
		},
		{
			"blank line separates blocks",
			"  -a  first\n\n  -b  second",
			[]string{"  -a  first", "  -b  second"},
		},
		{
			"continuation lines stay in block",
			"  -a  first\n      wrapped description",
			[]string{"  -a  first\n      wrapped description"},
		},
		{
			"leading prose discarded",
			"Options are listed below.\n\n  -a  first",
			[]string{"  -a  first"},
		},
		{
			"no dash anywhere",
			"just prose\nmore prose",
			nil,
		},
		{
			"whitespace-only line closes block",
			"  -a  first\n   \n  -b  second",
			[]string{"  -a  first", "  -b  second"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitIntoBlocks(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitIntoBlocks(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseBlockwise(t *testing.T) {
	content := "  -a, --all        show all\n\n      --verbose    be verbose\n"

	opts := ParseBlockwise(content)
	if len(opts) != 2 {
		t.Fatalf("expected 2 options, got %d: %v", len(opts), opts)
	}

	if opts[0].Description != "show all" || opts[1].Description != "be verbose" {
		t.Errorf("options out of order: %v", opts)
	}
}

func TestPreprocessBlockwise(t *testing.T) {
	content := "  -a, --all        show all\n\n      --verbose    be verbose\n"

	pairs := PreprocessBlockwise(content)
	if len(pairs) != 2 {
		t.Fatalf("expected 2 pairs, got %d: %v", len(pairs), pairs)
	}

	if pairs[0].Option != "-a, --all" || pairs[1].Option != "--verbose" {
		t.Errorf("pairs = %v", pairs)
	}
}

// manyBlocks builds enough distinct blocks to trigger the concurrent path.
func manyBlocks(n int) string {
	var sb strings.Builder
	for i := range n {
		sb.WriteString("  --opt")
		sb.WriteRune(rune('a' + i))
		sb.WriteString("  description ")
		sb.WriteRune(rune('a' + i))
		sb.WriteString("\n\n")
	}

	return sb.String()
}

func TestParseBlockwiseParallelMatchesSequential(t *testing.T) {
	content := manyBlocks(12)

	blocks := SplitIntoBlocks(content)
	if len(blocks) <= parallelThreshold {
		t.Fatalf("test content must exceed the parallel threshold, got %d blocks", len(blocks))
	}

	parallel := ParseBlockwise(content)

	var sequential []schema.Opt
	for _, block := range blocks {
		sequential = append(sequential, parse.ParseLine(block)...)
	}

	if !reflect.DeepEqual(parallel, sequential) {
		t.Fatalf("parallel = %v, sequential = %v", parallel, sequential)
	}

	if len(parallel) != len(blocks) {
		t.Fatalf("expected one option per block, got %d for %d blocks", len(parallel), len(blocks))
	}

	for i, opt := range parallel {
		want := "description " + string(rune('a'+i))
		if opt.Description != want {
			t.Errorf("option %d description = %q, want %q (order not preserved)", i, opt.Description, want)
		}
	}
}

func TestParseBlockwiseDeterministic(t *testing.T) {
	content := manyBlocks(10)

	first := ParseBlockwise(content)
	for range 20 {
		if got := ParseBlockwise(content); !reflect.DeepEqual(got, first) {
			t.Fatal("repeated runs produced differing results")
		}
	}
}

func TestParseUsage(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			"usage line only",
			"usage: mycmd [OPTIONS]\n\ndescription",
			"usage: mycmd [OPTIONS]",
		},
		{
			"synopsis keyword",
			"SYNOPSIS: tool [args]\n\nmore",
			"SYNOPSIS: tool [args]",
		},
		{
			"continuation absorbed",
			"usage: mycmd [OPTIONS]\n   mycmd subcmd [OPTIONS]\nplain prose",
			"usage: mycmd [OPTIONS]\n   mycmd subcmd [OPTIONS]",
		},
		{
			"colon line absorbed without indent",
			"usage: mycmd\nalso: alternative form\nplain",
			"usage: mycmd\nalso: alternative form",
		},
		{
			"no keyword",
			"this text has no marker",
			"",
		},
		{
			"keyword without colon",
			"usage mycmd [OPTIONS]",
			"",
		},
		{
			"empty input",
			"",
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseUsage(tt.input); got != tt.want {
				t.Errorf("ParseUsage(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestOptionOffsets(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []int
	}{
		{
			"aligned short and long collapse to one",
			"      -a, --all        show all\n      --verbose        be verbose",
			[]int{6},
		},
		{
			"distinct offsets list short first",
			"  -a  show all\n        --verbose  be verbose",
			[]int{2, 8},
		},
		{
			"long only",
			"    --only  just this",
			[]int{4},
		},
		{
			"no option lines",
			"prose without flags",
			nil,
		},
		{
			"most frequent wins",
			"  -a  one\n  -b  two\n        -c  odd one out",
			[]int{2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OptionOffsets(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("OptionOffsets(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func BenchmarkParseBlockwise(b *testing.B) {
	content := manyBlocks(24)

	b.ReportAllocs()

	for b.Loop() {
		ParseBlockwise(content)
	}
}
