// Package source acquires raw help text from the outside world: files,
// live --help invocations, and man pages. It owns every I/O error in
// the pipeline; the extraction packages never perform I/O.
package source

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"slices"
	"strings"
	"time"

	"github.com/ardnew/hcomp/pkg"
)

// DefaultTimeout bounds a single external command invocation.
const DefaultTimeout = 10 * time.Second

// helpEnv disables pagers and interactive prompts in spawned commands,
// so help output arrives complete and unpaginated.
var helpEnv = []string{
	"PAGER=cat",
	"GIT_PAGER=cat",
	"MANPAGER=cat",
	"TERM=dumb",
	"GIT_TERMINAL_PROMPT=0",
}

// ReadFile reads a help-text or schema file.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", pkg.ErrReadInput.Wrap(err)
	}

	return string(data), nil
}

// CommandHelp captures help output from a command, trying "--help"
// first and falling back to "-h" when the first attempt fails or
// produces nothing. The name may contain spaces to address a
// subcommand, e.g. "git log".
func CommandHelp(ctx context.Context, name string) (string, error) {
	words := strings.Fields(name)
	if len(words) == 0 {
		return "", pkg.ErrNoInput
	}

	out, err := run(ctx, slices.Concat(words, []string{"--help"}))
	if err == nil && strings.TrimSpace(out) != "" {
		return out, nil
	}

	out, herr := run(ctx, slices.Concat(words, []string{"-h"}))
	if herr == nil && strings.TrimSpace(out) != "" {
		return out, nil
	}

	if err == nil {
		err = herr
	}

	return "", pkg.ErrRunCommand.Wrap(pkg.MakeError(fmt.Errorf("%s", name), err))
}

// Manpage captures a rendered man page with backspace sequences
// stripped, via "man name | col -bx".
func Manpage(ctx context.Context, name string) (string, error) {
	out, err := run(ctx, []string{
		"sh", "-c", fmt.Sprintf("man %s 2>/dev/null | col -bx", name),
	})
	if err != nil || strings.TrimSpace(out) == "" {
		return "", pkg.ErrRunCommand.Wrap(pkg.MakeError(fmt.Errorf("man %s", name), err))
	}

	return out, nil
}

// IsManAvailable reports whether a man page exists for the command.
func IsManAvailable(ctx context.Context, name string) bool {
	words := strings.Fields(name)
	if len(words) == 0 {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, DefaultTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "man", append([]string{"-w"}, words...)...)
	cmd.Env = append(os.Environ(), helpEnv...)

	return cmd.Run() == nil
}

// run executes argv with pagers disabled, capturing combined output.
// Help text frequently lands on stderr, so both streams count.
func run(ctx context.Context, argv []string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Env = append(os.Environ(), helpEnv...)

	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", err
	}

	return string(out), nil
}
