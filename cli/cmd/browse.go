package cmd

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ardnew/hcomp/schema"
)

// Browse opens an interactive list of a command's extracted options and
// subcommands.
type Browse struct {
	sourceConfig `embed:""`

	Depth int `default:"1" help:"Subcommand detection depth (0 disables)"`
}

func (b *Browse) Run(ctx context.Context) error {
	cmd, err := b.schema(ctx, b.Depth)
	if err != nil {
		return err
	}

	cmd = schema.Fix(cmd)

	program := tea.NewProgram(newBrowseModel(cmd), tea.WithContext(ctx))

	_, err = program.Run()

	return err
}

// browseItem is one row of the browser: an option or a subcommand.
type browseItem struct {
	title string
	desc  string
}

func (i browseItem) Title() string       { return i.title }
func (i browseItem) Description() string { return i.desc }
func (i browseItem) FilterValue() string { return i.title + " " + i.desc }

type browseModel struct {
	list list.Model
}

var browseTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("6"))

func newBrowseModel(cmd schema.Command) browseModel {
	items := browseItems(cmd)

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = cmd.Name
	l.Styles.Title = browseTitleStyle
	l.SetShowStatusBar(false)

	return browseModel{list: l}
}

// browseItems flattens the command tree into list rows: the root's
// options first, then each subcommand with its own options indented
// under a "name ..." title.
func browseItems(cmd schema.Command) []list.Item {
	items := make([]list.Item, 0, len(cmd.Options)+len(cmd.Subcommands))

	for _, opt := range cmd.Options {
		items = append(items, optionItem(cmd.Name, opt))
	}

	for _, sub := range cmd.Subcommands {
		title := cmd.Name + " " + sub.Name

		desc := sub.Description
		if desc == "" {
			desc = "subcommand"
		}

		items = append(items, browseItem{title: title, desc: desc})

		for _, opt := range sub.Options {
			items = append(items, optionItem(title, opt))
		}
	}

	return items
}

func optionItem(owner string, opt schema.Opt) browseItem {
	raws := make([]string, len(opt.Names))
	for i, n := range opt.Names {
		raws[i] = n.Raw
	}

	title := strings.Join(raws, ", ")
	if opt.Argument != "" {
		title += " " + opt.Argument
	}

	desc := opt.Description
	if desc == "" {
		desc = owner
	}

	return browseItem{title: title, desc: desc}
}

func (m browseModel) Init() tea.Cmd { return nil }

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)

		return m, nil

	case tea.KeyMsg:
		// The list's filter input consumes 'q' while active.
		if m.list.FilterState() != list.Filtering {
			switch msg.String() {
			case "q", "ctrl+c", "esc":
				return m, tea.Quit
			}
		}
	}

	var cmd tea.Cmd

	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m browseModel) View() string { return m.list.View() }
