package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"mergeconf.dev/cli/internal/mergeengine"
)

// NewInspectCommand creates the inspect subcommand
func NewInspectCommand(container *CLIContainer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect FILE...",
		Short: "Interactively browse the merged configuration",
		Long: `Inspect merges the files in argument order and opens an interactive
terminal browser over the result: sections on the left, the selected
section's keys and values on the right.

Keys:
  up/k, down/j   select section
  q, esc         quit

Example:
  mergeconf inspect base.conf host.conf`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(container, args)
		},
	}

	return cmd
}

func runInspect(container *CLIContainer, paths []string) error {
	inputs, err := container.ReadInputs(paths)
	if err != nil {
		return err
	}

	mapping, err := mergeengine.Merge(inputs)
	if err != nil {
		return fmt.Errorf("merge failed: %w", err)
	}

	program := tea.NewProgram(newInspectModel(mapping), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("inspect failed: %w", err)
	}
	return nil
}

var (
	inspectTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("12")).Padding(0, 1)
	inspectPaneStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	inspectSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	inspectDimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// inspectModel holds the state for the Bubble Tea configuration browser
type inspectModel struct {
	mapping      *mergeengine.Mapping
	sections     []string
	cursor       int
	windowWidth  int
	windowHeight int
}

func newInspectModel(mapping *mergeengine.Mapping) inspectModel {
	return inspectModel{
		mapping:  mapping,
		sections: mapping.SectionNames(),
	}
}

// Init implements the tea.Model interface
func (m inspectModel) Init() tea.Cmd {
	return nil
}

// Update handles incoming events and updates the model
func (m inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.sections)-1 {
				m.cursor++
			}
		}
	}

	return m, nil
}

// View renders the section list next to the selected section's entries
func (m inspectModel) View() string {
	title := inspectTitleStyle.Render("mergeconf inspect")

	if len(m.sections) == 0 {
		return title + "\n\n" + inspectDimStyle.Render("empty configuration") + "\n"
	}

	var left strings.Builder
	for i, name := range m.sections {
		label := sectionLabel(name)
		if i == m.cursor {
			label = inspectSelectedStyle.Render("> " + label)
		} else {
			label = "  " + label
		}
		left.WriteString(label)
		left.WriteByte('\n')
	}

	var right strings.Builder
	sec, _ := m.mapping.Section(m.sections[m.cursor])
	for _, key := range sec.Keys() {
		value, _ := sec.Get(key)
		if value.IsList() {
			for _, elem := range value.List() {
				fmt.Fprintf(&right, "%s += %s\n", key, elem)
			}
		} else {
			fmt.Fprintf(&right, "%s = %s\n", key, value.Scalar())
		}
	}
	if sec.Len() == 0 {
		right.WriteString(inspectDimStyle.Render("empty section"))
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		inspectPaneStyle.Render(left.String()),
		inspectPaneStyle.Render(right.String()),
	)
	help := inspectDimStyle.Render("up/k down/j: select section • q: quit")

	return title + "\n" + body + "\n" + help + "\n"
}

func sectionLabel(name string) string {
	if name == mergeengine.DefaultSection {
		return "(default)"
	}
	return name
}
