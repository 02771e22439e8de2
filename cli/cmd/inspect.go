package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/ardnew/hcomp/extract"
	"github.com/ardnew/hcomp/layout"
	"github.com/ardnew/hcomp/subcmd"
)

// Inspect exposes the intermediate stages of extraction for debugging
// help text that parses poorly.
type Inspect struct {
	Pairs       InspectPairs       `cmd:"" help:"Show preprocessed option/description pairs"`
	Offsets     InspectOffsets     `cmd:"" help:"Show dominant option-line indentation offsets"`
	Usage       InspectUsage       `cmd:"" help:"Show the extracted usage section"`
	Subcommands InspectSubcommands `cmd:"" help:"Show detected subcommand candidates"`
}

// InspectPairs prints each option/description pair recovered from the
// cleaned help text, one pair per paragraph.
type InspectPairs struct {
	sourceConfig `embed:""`
}

func (c *InspectPairs) Run(ctx context.Context) error {
	text, err := c.cleaned(ctx)
	if err != nil {
		return err
	}

	w := stdout(ctx)

	for _, pair := range layout.PreprocessBlockwise(text) {
		fmt.Fprintf(w, "%s\n%s\n\n", pair.Option, pair.Description)
	}

	return nil
}

// InspectOffsets prints the dominant indentation offsets of short- and
// long-option lines.
type InspectOffsets struct {
	sourceConfig `embed:""`
}

func (c *InspectOffsets) Run(ctx context.Context) error {
	text, err := c.cleaned(ctx)
	if err != nil {
		return err
	}

	offsets := layout.OptionOffsets(text)
	labels := make([]string, len(offsets))

	for i, offset := range offsets {
		labels[i] = fmt.Sprint(offset)
	}

	fmt.Fprintln(stdout(ctx), strings.Join(labels, " "))

	return nil
}

// InspectUsage prints the extracted usage/synopsis section.
type InspectUsage struct {
	sourceConfig `embed:""`
}

func (c *InspectUsage) Run(ctx context.Context) error {
	text, err := c.cleaned(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout(ctx), layout.ParseUsage(text))

	return nil
}

// InspectSubcommands prints detected subcommand candidates, optionally
// ranked against a fuzzy query.
type InspectSubcommands struct {
	sourceConfig `embed:""`

	Query string `help:"Rank candidates by fuzzy match against this string" short:"q"`
}

func (c *InspectSubcommands) Run(ctx context.Context) error {
	text, err := c.cleaned(ctx)
	if err != nil {
		return err
	}

	found := subcmd.Parse(text)
	w := stdout(ctx)

	if c.Query != "" {
		names := make([]string, len(found))
		for i, sub := range found {
			names[i] = sub.Cmd
		}

		for _, match := range fuzzy.Find(c.Query, names) {
			fmt.Fprintln(w, found[match.Index].String())
		}

		return nil
	}

	for _, sub := range found {
		fmt.Fprintln(w, sub.String())
	}

	return nil
}

// cleaned acquires and normalizes the configured source's help text.
func (s *sourceConfig) cleaned(ctx context.Context) (string, error) {
	text, err := s.text(ctx)
	if err != nil {
		return "", err
	}

	return extract.Clean(text), nil
}

// stdout returns the kong-managed stdout when available so tests can
// capture command output.
func stdout(ctx context.Context) io.Writer {
	if ktx := kongContextFrom(ctx); ktx != nil && ktx.Stdout != nil {
		return ktx.Stdout
	}

	return os.Stdout
}
