package schema

import (
	"cmp"
	"fmt"
	"strings"
)

// NameType classifies a single flag spelling.
type NameType int

// Flag spelling classifications. The declaration order is significant:
// it is the tie-break used when two spellings share the same raw text.
const (
	// LongType is a GNU-style long flag, e.g. "--verbose".
	LongType NameType = iota
	// ShortType is a single-letter flag, e.g. "-v".
	ShortType
	// OldType is an X11/Java-style single-dash word flag, e.g. "-verbose".
	OldType
	// DoubleDashAlone is the literal "--" end-of-options marker.
	DoubleDashAlone
	// SingleDashAlone is the literal "-", conventionally meaning stdin.
	SingleDashAlone
)

// String returns a short lowercase label for the name type.
func (t NameType) String() string {
	switch t {
	case LongType:
		return "long"
	case ShortType:
		return "short"
	case OldType:
		return "old"
	case DoubleDashAlone:
		return "double-dash"
	case SingleDashAlone:
		return "single-dash"
	default:
		return fmt.Sprintf("NameType(%d)", int(t))
	}
}

// OptName is one spelling of a flag, including its leading dash(es).
type OptName struct {
	// Raw is the flag exactly as spelled in the help text.
	Raw string
	// Type is the classification of the spelling.
	Type NameType
}

// ParseOptName classifies a single whitespace token as a flag spelling.
//
// Classification is total over tokens beginning with '-': exactly "-" is
// [SingleDashAlone], exactly "--" is [DoubleDashAlone], a longer "--" prefix
// is [LongType], a two-byte "-x" is [ShortType], and any longer single-dash
// token is [OldType]. Tokens not beginning with '-' are rejected.
func ParseOptName(s string) (OptName, bool) {
	var t NameType

	switch {
	case s == "-":
		t = SingleDashAlone
	case s == "--":
		t = DoubleDashAlone
	case strings.HasPrefix(s, "--"):
		t = LongType
	case strings.HasPrefix(s, "-") && len(s) == 2:
		t = ShortType
	case strings.HasPrefix(s, "-"):
		t = OldType
	default:
		return OptName{}, false
	}

	return OptName{Raw: s, Type: t}, true
}

// Compare orders names by (raw, type) so that sorted name lists are
// deterministic for a given input.
func (n OptName) Compare(other OptName) int {
	if c := cmp.Compare(n.Raw, other.Raw); c != 0 {
		return c
	}

	return cmp.Compare(int(n.Type), int(other.Type))
}

// String returns the raw flag spelling.
func (n OptName) String() string { return n.Raw }

// Opt is one CLI flag group: one or more spellings, an optional argument
// placeholder, and a description.
type Opt struct {
	// Names holds the sorted, deduplicated flag spellings.
	Names []OptName
	// Argument is the inferred argument placeholder, or empty for none.
	Argument string
	// Description is the flag's description text, possibly empty.
	Description string
}

// String formats the option for debug output.
func (o Opt) String() string {
	raws := make([]string, len(o.Names))
	for i, n := range o.Names {
		raws[i] = n.Raw
	}

	return fmt.Sprintf("%s  ::  %s\n%s\n",
		strings.Join(raws, " "), o.Argument, o.Description)
}

// Subcommand is a transient name/description pair produced during
// extraction, before it is lifted into a child [Command].
type Subcommand struct {
	// Cmd is the subcommand name.
	Cmd string
	// Desc is the first line of the subcommand's description.
	Desc string
}

// Compare orders subcommands by (cmd, desc).
func (s Subcommand) Compare(other Subcommand) int {
	if c := cmp.Compare(s.Cmd, other.Cmd); c != 0 {
		return c
	}

	return cmp.Compare(s.Desc, other.Desc)
}

// String formats the subcommand for debug output.
func (s Subcommand) String() string {
	return fmt.Sprintf("%-25s (%s)", s.Cmd, s.Desc)
}

// Command is a node in the extracted CLI schema tree.
type Command struct {
	// Name identifies the program or subcommand.
	Name string
	// Description is a short summary, when one was detected or supplied.
	Description string
	// Usage is the extracted usage/synopsis block, possibly empty.
	Usage string
	// Options are the extracted flag groups in original text order.
	Options []Opt
	// Subcommands are the child commands in deterministic order.
	Subcommands []Command
	// Version is populated only when loading a previously exported schema.
	Version string
}

// New returns an empty Command with the given name.
func New(name string) Command {
	return Command{Name: name}
}

// AsSubcommand returns the command's transient name/description pair.
func (c Command) AsSubcommand() Subcommand {
	return Subcommand{Cmd: c.Name, Desc: c.Description}
}
