package subcmd

import (
	"testing"

	"github.com/ardnew/hcomp/schema"
)

func hasSub(subs []schema.Subcommand, cmd, desc string) bool {
	for _, sub := range subs {
		if sub.Cmd == cmd && sub.Desc == desc {
			return true
		}
	}

	return false
}

func TestParseListing(t *testing.T) {
	content := "run       Run a command\nbuild     Build a project"

	subs := Parse(content)

	if !hasSub(subs, "run", "Run a command") {
		t.Errorf("missing run entry in %v", subs)
	}

	if !hasSub(subs, "build", "Build a project") {
		t.Errorf("missing build entry in %v", subs)
	}
}

func TestParseLinePairForm(t *testing.T) {
	content := "clone\n    Clone a repository into a new directory"

	subs := Parse(content)

	if !hasSub(subs, "clone", "Clone a repository into a new directory") {
		t.Errorf("missing clone entry in %v", subs)
	}
}

func TestParseRejectsOptionLines(t *testing.T) {
	content := "-v, --verbose   be verbose\n--help          show help"

	if subs := Parse(content); len(subs) != 0 {
		t.Errorf("option lines must not produce subcommands, got %v", subs)
	}
}

func TestParseRejectsDashDescriptions(t *testing.T) {
	// A candidate name whose next line is an option line is not a pair.
	content := "status\n  -s, --short"

	subs := Parse(content)

	for _, sub := range subs {
		if sub.Cmd == "status" {
			t.Errorf("unexpected status entry: %v", sub)
		}
	}
}

func TestParseOrderedAndDeduplicated(t *testing.T) {
	content := "zeta    Last in the alphabet here\nzeta    Last in the alphabet here\nalpha   First in the alphabet here"

	subs := Parse(content)

	count := 0

	for _, sub := range subs {
		if sub.Cmd == "zeta" && sub.Desc == "Last in the alphabet here" {
			count++
		}
	}

	if count != 1 {
		t.Errorf("expected exactly one zeta entry, got %d in %v", count, subs)
	}

	for i := 1; i < len(subs); i++ {
		if subs[i-1].Compare(subs[i]) > 0 {
			t.Errorf("result not sorted at %d: %v", i, subs)
		}
	}
}

func TestValidName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"run", true},
		{"sub-cmd", true},
		{"sub_cmd", true},
		{"v2", true},
		{"-v", false},
		{"", false},
		{"has space", false},
		{"dot.ted", false},
	}

	for _, tt := range tests {
		if got := validName(tt.name); got != tt.want {
			t.Errorf("validName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
