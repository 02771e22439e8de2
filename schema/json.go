package schema

import (
	"encoding/json"
	"io"

	"github.com/ardnew/hcomp/pkg"
)

// commandJSON is the flattened interchange form of a [Command].
//
// It is intentionally lossy relative to the in-memory tree: option names
// carry only their raw spellings, and subcommands carry only their name and
// description, never their own options or children.
type commandJSON struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Usage       string        `json:"usage"`
	Options     []optJSON     `json:"options"`
	Subcommands []subcmdJSON  `json:"subcommands,omitempty"`
	Version     string        `json:"version,omitempty"`
}

type optJSON struct {
	Names       []string `json:"names"`
	Argument    string   `json:"argument"`
	Description string   `json:"description"`
}

type subcmdJSON struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// MarshalJSON encodes the command in the flattened interchange form.
func (c Command) MarshalJSON() ([]byte, error) {
	out := commandJSON{
		Name:        c.Name,
		Description: c.Description,
		Usage:       c.Usage,
		Options:     make([]optJSON, 0, len(c.Options)),
		Version:     c.Version,
	}

	for _, opt := range c.Options {
		names := make([]string, len(opt.Names))
		for i, n := range opt.Names {
			names[i] = n.Raw
		}

		out.Options = append(out.Options, optJSON{
			Names:       names,
			Argument:    opt.Argument,
			Description: opt.Description,
		})
	}

	for _, sub := range c.Subcommands {
		out.Subcommands = append(out.Subcommands, subcmdJSON{
			Name:        sub.Name,
			Description: sub.Description,
		})
	}

	return json.Marshal(out)
}

// UnmarshalJSON decodes a command from the flattened interchange form.
// Raw flag spellings are re-classified with [ParseOptName]; spellings that
// do not begin with '-' are discarded. Subcommands decode as children with
// empty options, usage, and version.
func (c *Command) UnmarshalJSON(data []byte) error {
	var in commandJSON

	err := json.Unmarshal(data, &in)
	if err != nil {
		return err
	}

	cmd := Command{
		Name:        in.Name,
		Description: in.Description,
		Usage:       in.Usage,
		Version:     in.Version,
	}

	for _, opt := range in.Options {
		names := make([]OptName, 0, len(opt.Names))

		for _, raw := range opt.Names {
			if name, ok := ParseOptName(raw); ok {
				names = append(names, name)
			}
		}

		cmd.Options = append(cmd.Options, Opt{
			Names:       names,
			Argument:    opt.Argument,
			Description: opt.Description,
		})
	}

	for _, sub := range in.Subcommands {
		child := New(sub.Name)
		child.Description = sub.Description
		cmd.Subcommands = append(cmd.Subcommands, child)
	}

	*c = cmd

	return nil
}

// Decode reads a previously exported schema from r and normalizes it
// with [Fix].
func Decode(r io.Reader) (Command, error) {
	var cmd Command

	err := json.NewDecoder(r).Decode(&cmd)
	if err != nil {
		return Command{}, pkg.ErrSchemaDecode.Wrap(err)
	}

	return Fix(cmd), nil
}
