package cmd

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ardnew/hcomp/schema"
)

const helpFixture = `Usage: mytool [OPTIONS] FILE

A tool for testing.

Options:
  -v, --verbose    Be verbose. Prints more detail.
  -o FILE          Write output to FILE
  --count N        Repeat N times
`

// writeHelpFile writes the shared help-text fixture to a temp file and
// returns its path.
func writeHelpFile(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "mytool.txt")
	if err := os.WriteFile(path, []byte(helpFixture), 0o644); err != nil {
		t.Fatal(err)
	}

	return path
}

// TestSourceConfigName tests schema naming for each source kind.
func TestSourceConfigName(t *testing.T) {
	tests := []struct {
		name   string
		config sourceConfig
		want   string
	}{
		{"command", sourceConfig{Command: "git"}, "git"},
		{"subcommand", sourceConfig{Subcommand: "git-log"}, "git-log"},
		{"file", sourceConfig{File: "/tmp/help/tar.txt"}, "tar.txt"},
		{"stdin", sourceConfig{File: "-"}, "command"},
		{"none", sourceConfig{}, "command"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.config.name(); got != tt.want {
				t.Errorf("name() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestSourceConfigTextFromFile tests acquiring help text from a file.
func TestSourceConfigTextFromFile(t *testing.T) {
	config := sourceConfig{File: writeHelpFile(t)}

	text, err := config.text(context.Background())
	if err != nil {
		t.Fatalf("text: %v", err)
	}

	if text != helpFixture {
		t.Errorf("got %q, want %q", text, helpFixture)
	}
}

// TestSourceConfigSubcommandBadFormat tests that a subcommand without a
// hyphen is rejected before any command is run.
func TestSourceConfigSubcommandBadFormat(t *testing.T) {
	config := sourceConfig{Subcommand: "nohyphen"}

	_, err := config.text(context.Background())
	if err == nil {
		t.Fatal("expected error for subcommand without hyphen")
	}

	if !strings.Contains(err.Error(), "command-subcommand") {
		t.Errorf("unexpected error: %v", err)
	}
}

// TestSourceConfigSchema tests building a schema from a help-text file.
func TestSourceConfigSchema(t *testing.T) {
	config := sourceConfig{File: writeHelpFile(t)}

	cmd, err := config.schema(context.Background(), 0)
	if err != nil {
		t.Fatalf("schema: %v", err)
	}

	if cmd.Name != "mytool.txt" {
		t.Errorf("Name = %q", cmd.Name)
	}

	if !strings.HasPrefix(cmd.Usage, "Usage: mytool") {
		t.Errorf("Usage = %q", cmd.Usage)
	}

	if len(cmd.Options) != 3 {
		t.Fatalf("Options = %d, want 3:\n%v", len(cmd.Options), cmd.Options)
	}
}

// TestSourceConfigSchemaLoad tests loading a previously exported schema.
func TestSourceConfigSchemaLoad(t *testing.T) {
	const exported = `{
  "name": "demo",
  "description": "",
  "usage": "",
  "options": [
    {"names": ["--flag"], "argument": "", "description": "A flag"}
  ]
}`

	path := filepath.Join(t.TempDir(), "demo.json")
	if err := os.WriteFile(path, []byte(exported), 0o644); err != nil {
		t.Fatal(err)
	}

	config := sourceConfig{Load: path}

	cmd, err := config.schema(context.Background(), 1)
	if err != nil {
		t.Fatalf("schema: %v", err)
	}

	if cmd.Name != "demo" {
		t.Errorf("Name = %q", cmd.Name)
	}

	if len(cmd.Options) != 1 || cmd.Options[0].Names[0].Raw != "--flag" {
		t.Errorf("Options = %v", cmd.Options)
	}
}

// TestExportRunJSON tests the full export pipeline from a help-text
// file to a JSON schema file.
func TestExportRunJSON(t *testing.T) {
	output := filepath.Join(t.TempDir(), "out.json")

	export := Export{
		sourceConfig: sourceConfig{File: writeHelpFile(t)},
		Format:       "json",
		Output:       output,
	}

	if err := export.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	file, err := os.Open(output)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()

	cmd, err := schema.Decode(file)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if len(cmd.Options) != 3 {
		t.Errorf("Options = %d, want 3", len(cmd.Options))
	}
}

// TestExportRunBash tests rendering a bash completion script.
func TestExportRunBash(t *testing.T) {
	output := filepath.Join(t.TempDir(), "out.bash")

	export := Export{
		sourceConfig: sourceConfig{File: writeHelpFile(t)},
		Format:       "bash",
		Output:       output,
	}

	if err := export.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}

	script := string(data)

	if !strings.Contains(script, "complete -F") {
		t.Errorf("missing complete command:\n%s", script)
	}

	if !strings.Contains(script, "--verbose") {
		t.Errorf("missing --verbose:\n%s", script)
	}
}

// TestExportRunFilter tests that the filter expression prunes options.
func TestExportRunFilter(t *testing.T) {
	output := filepath.Join(t.TempDir(), "out.json")

	export := Export{
		sourceConfig: sourceConfig{File: writeHelpFile(t)},
		Format:       "json",
		Output:       output,
		Filter:       `argument != ""`,
	}

	if err := export.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	file, err := os.Open(output)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()

	cmd, err := schema.Decode(file)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	// Only -o FILE and --count N take arguments.
	if len(cmd.Options) != 2 {
		t.Fatalf("Options = %d, want 2:\n%v", len(cmd.Options), cmd.Options)
	}

	for _, opt := range cmd.Options {
		if opt.Argument == "" {
			t.Errorf("option %v survived filter without argument", opt.Names)
		}
	}
}

// TestExportRunInvalidFilter tests that a malformed filter expression
// fails before any output is written.
func TestExportRunInvalidFilter(t *testing.T) {
	export := Export{
		sourceConfig: sourceConfig{File: writeHelpFile(t)},
		Format:       "json",
		Filter:       "names !!",
	}

	err := export.Run(context.Background())
	if err == nil {
		t.Fatal("expected error for malformed filter")
	}
}

// TestExportRunInvalidFormat tests the format flag's error path.
func TestExportRunInvalidFormat(t *testing.T) {
	export := Export{
		sourceConfig: sourceConfig{File: writeHelpFile(t)},
		Format:       "powershell",
	}

	if err := export.Run(context.Background()); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

// TestFilterCommandRecursion tests that subcommand options are filtered
// along with the root's.
func TestFilterCommandRecursion(t *testing.T) {
	cmd := schema.Command{
		Name: "root",
		Options: []schema.Opt{
			mustOpt(t, "--keep", "FILE", "Kept"),
			mustOpt(t, "--drop", "", "Dropped"),
		},
		Subcommands: []schema.Command{{
			Name: "sub",
			Options: []schema.Opt{
				mustOpt(t, "--also-drop", "", "Dropped too"),
			},
		}},
	}

	program, err := compileFilter(`argument != ""`)
	if err != nil {
		t.Fatalf("compileFilter: %v", err)
	}

	filtered, err := filterCommand(cmd, program)
	if err != nil {
		t.Fatalf("filterCommand: %v", err)
	}

	if len(filtered.Options) != 1 || filtered.Options[0].Names[0].Raw != "--keep" {
		t.Errorf("root options = %v", filtered.Options)
	}

	if len(filtered.Subcommands[0].Options) != 0 {
		t.Errorf("sub options = %v", filtered.Subcommands[0].Options)
	}
}

func mustOpt(t *testing.T, raw, arg, desc string) schema.Opt {
	t.Helper()

	name, ok := schema.ParseOptName(raw)
	if !ok {
		t.Fatalf("ParseOptName(%q)", raw)
	}

	return schema.Opt{
		Names:       []schema.OptName{name},
		Argument:    arg,
		Description: desc,
	}
}
