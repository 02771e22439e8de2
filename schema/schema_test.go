package schema

import (
	"slices"
	"testing"
)

func TestParseOptNameClassification(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantType NameType
		wantOK   bool
	}{
		{"single dash alone", "-", SingleDashAlone, true},
		{"double dash alone", "--", DoubleDashAlone, true},
		{"long flag", "--verbose", LongType, true},
		{"long flag two chars", "--vv", LongType, true},
		{"short flag", "-v", ShortType, true},
		{"short digit", "-1", ShortType, true},
		{"old style flag", "-verbose", OldType, true},
		{"old style two letters", "-vv", OldType, true},
		{"plain word", "verbose", 0, false},
		{"empty string", "", 0, false},
		{"plus prefix", "+x", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseOptName(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParseOptName(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}

			if !ok {
				return
			}

			if got.Type != tt.wantType {
				t.Errorf("ParseOptName(%q) type = %v, want %v", tt.input, got.Type, tt.wantType)
			}

			if got.Raw != tt.input {
				t.Errorf("ParseOptName(%q) raw = %q, want input preserved", tt.input, got.Raw)
			}
		})
	}
}

// TestParseOptNameTotality verifies that every non-empty dash-prefixed token
// classifies into exactly one of the five types.
func TestParseOptNameTotality(t *testing.T) {
	inputs := []string{
		"-", "--", "-a", "-Z", "-9", "-ab", "-abc", "--a", "--ab",
		"--long-flag", "-no-color", "---", "--=", "-=",
	}

	for _, in := range inputs {
		name, ok := ParseOptName(in)
		if !ok {
			t.Errorf("ParseOptName(%q) rejected a dash-prefixed token", in)

			continue
		}

		switch name.Type {
		case LongType, ShortType, OldType, DoubleDashAlone, SingleDashAlone:
		default:
			t.Errorf("ParseOptName(%q) returned unknown type %d", in, name.Type)
		}
	}
}

func TestOptNameCompare(t *testing.T) {
	names := []OptName{
		{Raw: "-v", Type: ShortType},
		{Raw: "--all", Type: LongType},
		{Raw: "--all", Type: LongType},
		{Raw: "-a", Type: ShortType},
	}

	slices.SortFunc(names, OptName.Compare)

	want := []string{"--all", "--all", "-a", "-v"}
	for i, n := range names {
		if n.Raw != want[i] {
			t.Fatalf("sorted order = %v, want raws %v", names, want)
		}
	}
}

func TestNameTypeString(t *testing.T) {
	tests := map[NameType]string{
		LongType:        "long",
		ShortType:       "short",
		OldType:         "old",
		DoubleDashAlone: "double-dash",
		SingleDashAlone: "single-dash",
	}

	for typ, want := range tests {
		if got := typ.String(); got != want {
			t.Errorf("NameType(%d).String() = %q, want %q", int(typ), got, want)
		}
	}
}

func TestCommandAsSubcommand(t *testing.T) {
	cmd := New("clone")
	cmd.Description = "Clone a repository"

	sub := cmd.AsSubcommand()
	if sub.Cmd != "clone" || sub.Desc != "Clone a repository" {
		t.Errorf("AsSubcommand() = %+v", sub)
	}
}
