package schema

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestMarshalFlattenedForm(t *testing.T) {
	sub := New("clone")
	sub.Description = "Clone a repository"
	sub.Options = []Opt{mkOpt("nested options are not serialized", "--depth")}

	cmd := New("git")
	cmd.Usage = "usage: git [options]"

	verbose := mkOpt("be verbose", "-v", "--verbose")
	output := mkOpt("output file", "-o")
	output.Argument = "FILE"

	cmd.Options = []Opt{verbose, output}
	cmd.Subcommands = []Command{sub}

	data, err := json.Marshal(cmd)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var raw map[string]any

	err = json.Unmarshal(data, &raw)
	if err != nil {
		t.Fatalf("Unmarshal into map: %v", err)
	}

	opts, ok := raw["options"].([]any)
	if !ok || len(opts) != 2 {
		t.Fatalf("expected 2 options in JSON, got %v", raw["options"])
	}

	first, _ := opts[0].(map[string]any)

	names, _ := first["names"].([]any)
	if len(names) != 2 {
		t.Errorf("expected 2 raw names, got %v", first["names"])
	}

	subs, ok := raw["subcommands"].([]any)
	if !ok || len(subs) != 1 {
		t.Fatalf("expected 1 subcommand in JSON, got %v", raw["subcommands"])
	}

	entry, _ := subs[0].(map[string]any)
	if _, has := entry["options"]; has {
		t.Error("subcommand entries must serialize as name/description only")
	}

	if entry["name"] != "clone" || entry["description"] != "Clone a repository" {
		t.Errorf("unexpected subcommand entry: %v", entry)
	}

	// Version is empty and must be omitted.
	if _, has := raw["version"]; has {
		t.Error("empty version must be omitted from JSON")
	}
}

func TestMarshalEmptyOptionsIsArray(t *testing.T) {
	data, err := json.Marshal(New("empty"))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	if !strings.Contains(string(data), `"options":[]`) {
		t.Errorf("expected empty options array, got %s", data)
	}
}

func TestDecodeReclassifiesNames(t *testing.T) {
	input := `{
		"name": "tar",
		"description": "",
		"usage": "usage: tar [options]",
		"options": [
			{"names": ["-x", "--extract"], "argument": "", "description": "extract files"},
			{"names": ["not-a-flag"], "argument": "", "description": "dropped by fix"}
		],
		"subcommands": [{"name": "help", "description": "show help"}],
		"version": "1.35"
	}`

	cmd, err := Decode(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if cmd.Version != "1.35" {
		t.Errorf("version = %q", cmd.Version)
	}

	// The second option lost its only (invalid) spelling, so Fix drops it.
	if len(cmd.Options) != 1 {
		t.Fatalf("expected 1 option after decode+fix, got %d", len(cmd.Options))
	}

	opt := cmd.Options[0]
	if opt.Names[0].Type != ShortType || opt.Names[1].Type != LongType {
		t.Errorf("names were not reclassified: %v", opt.Names)
	}

	if len(cmd.Subcommands) != 1 || cmd.Subcommands[0].Name != "help" {
		t.Errorf("subcommands = %v", cmd.Subcommands)
	}
}

func TestDecodeMalformedInput(t *testing.T) {
	_, err := Decode(strings.NewReader("{not json"))
	if err == nil {
		t.Fatal("expected error for malformed input")
	}
}
