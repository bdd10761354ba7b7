package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"flint/internal/diagfmt"
)

type browserModel struct {
	table   table.Model
	columns []table.Column
	entries []diagfmt.CatalogEntry
	detail  bool
	width   int
}

// NewCatalogBrowser returns a Bubble Tea model that lists the diagnostic
// catalog in a scrollable table. Enter toggles a detail view of the selected
// entry, q quits.
func NewCatalogBrowser(entries []diagfmt.CatalogEntry) tea.Model {
	columns := []table.Column{
		{Title: "Code", Width: 5},
		{Title: "Severity", Width: 8},
		{Title: "Name", Width: 36},
		{Title: "Message", Width: 52},
	}
	rows := make([]table.Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, table.Row{e.Code.String(), e.Severity.String(), e.Name, e.Templates[0]})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(20),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(styles)

	return &browserModel{
		table:   t,
		columns: columns,
		entries: entries,
		width:   80,
	}
}

func (m *browserModel) Init() tea.Cmd {
	return nil
}

func (m *browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.detail {
				m.detail = false
				return m, nil
			}
			return m, tea.Quit
		case "enter":
			m.detail = !m.detail
			return m, nil
		}
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.table.SetWidth(msg.Width)
			// the message column absorbs the leftover width
			fixed := 0
			for _, c := range m.columns[:len(m.columns)-1] {
				fixed += c.Width
			}
			if w := msg.Width - fixed - 8; w > 20 {
				m.columns[len(m.columns)-1].Width = w
				m.table.SetColumns(m.columns)
			}
		}
		if msg.Height > 6 {
			m.table.SetHeight(msg.Height - 4)
		}
		return m, nil
	}
	if m.detail {
		return m, nil
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *browserModel) View() string {
	if len(m.entries) == 0 {
		return ""
	}
	if m.detail {
		return m.detailView()
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("diagnostic catalog (%d entries)", len(m.entries))))
	b.WriteString("\n")
	b.WriteString(m.table.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: details, q: quit"))
	b.WriteString("\n")
	return b.String()
}

func (m *browserModel) detailView() string {
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(m.entries) {
		return ""
	}
	e := m.entries[cursor]
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s %s", e.Code, e.Name)))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  severity: %s\n", e.Severity))
	b.WriteString(fmt.Sprintf("  message:  %s\n", e.Templates[0]))
	for _, tpl := range e.Templates[1:] {
		b.WriteString(fmt.Sprintf("  note:     %s\n", tpl))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("esc: back, q: quit"))
	b.WriteString("\n")
	return b.String()
}
