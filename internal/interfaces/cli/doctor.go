package cli

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	appconfig "snowctl.dev/cli/internal/application/config"
)

// newConfigDoctorCommand launches an interactive browser over the resolution
// chains, for walking a user through "why is this key set to that".
func newConfigDoctorCommand(container *CLIContainer) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Interactively browse configuration resolution chains",
		RunE: func(cmd *cobra.Command, args []string) error {
			container.Resolver.ResolveAll(cmd.Context())
			container.Emitter.Emit(container.Resolver.Summary())

			model := newDoctorModel(container.Resolver)
			if len(model.keys) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No configuration values found.")
				return nil
			}

			program := tea.NewProgram(model, tea.WithAltScreen())
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("doctor failed: %w", err)
			}
			return nil
		},
	}
}

var (
	doctorTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	doctorSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("62"))
	doctorItemStyle     = lipgloss.NewStyle()
	doctorPaneStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	doctorHelpStyle     = lipgloss.NewStyle().Faint(true)
)

type doctorModel struct {
	resolver *appconfig.Resolver
	keys     []string
	selected int
	width    int
	height   int
}

func newDoctorModel(resolver *appconfig.Resolver) doctorModel {
	histories := resolver.Histories()
	keys := make([]string, 0, len(histories))
	for k := range histories {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return doctorModel{resolver: resolver, keys: keys}
}

func (m doctorModel) Init() tea.Cmd { return nil }

func (m doctorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
		case "down", "j":
			if m.selected < len(m.keys)-1 {
				m.selected++
			}
		}
	}
	return m, nil
}

func (m doctorModel) View() string {
	var b strings.Builder
	b.WriteString(doctorTitleStyle.Render("snowctl config doctor"))
	b.WriteString("\n\n")

	var list strings.Builder
	for i, key := range m.keys {
		line := fmt.Sprintf(" %-24s", key)
		if i == m.selected {
			list.WriteString(doctorSelectedStyle.Render(line))
		} else {
			list.WriteString(doctorItemStyle.Render(line))
		}
		list.WriteString("\n")
	}

	var chain bytes.Buffer
	m.resolver.PrintResolutionChain(&chain, m.keys[m.selected])

	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		doctorPaneStyle.Render(list.String()),
		doctorPaneStyle.Render(chain.String()),
	)
	b.WriteString(panes)
	b.WriteString("\n")
	b.WriteString(doctorHelpStyle.Render("up/down: select key   q: quit"))
	return b.String()
}
