package view

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/loqeyusa/housingsupport/internal/poolfund"
	"github.com/loqeyusa/housingsupport/internal/report"
)

type contributionsState int

const (
	contributionsStateScope contributionsState = iota
	contributionsStateBrowse
)

type ContributionsModel struct {
	reports *report.Service

	state  contributionsState
	picker ScopePicker
	table  table.Model

	scope   report.Scope
	items   []poolfund.Contribution
	loading bool
	err     error
}

func NewContributionsModel(reports *report.Service, now time.Time) ContributionsModel {
	columns := []table.Column{
		{Title: "Client", Width: 28},
		{Title: "County", Width: 16},
		{Title: "Housing Support", Width: 16},
		{Title: "Rent Paid", Width: 12},
		{Title: "Expenses", Width: 12},
		{Title: "Pool Amount", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return ContributionsModel{
		reports: reports,
		picker:  NewScopePicker(now),
		table:   t,
	}
}

func (m ContributionsModel) Title() string { return "Pool Fund Contributions" }

func (m ContributionsModel) ShortHelp() string {
	if m.state == contributionsStateBrowse {
		return "Esc: change scope | r: refresh"
	}

	return "Esc: back | Enter: confirm"
}

func (m ContributionsModel) Init() tea.Cmd {
	return m.picker.Init()
}

type contributionsLoadedMsg struct {
	items []poolfund.Contribution
	err   error
}

func (m ContributionsModel) loadCmd(sc report.Scope) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		items, err := m.reports.Contributions(ctx, sc)

		return contributionsLoadedMsg{items: items, err: err}
	}
}

// ContributionRows renders contributions as table rows in their given order.
func ContributionRows(items []poolfund.Contribution) []table.Row {
	rows := make([]table.Row, 0, len(items))
	for _, c := range items {
		rows = append(rows, table.Row{
			c.ClientName,
			c.County,
			c.HousingSupport.String(),
			c.RentPaid.String(),
			c.Expenses.String(),
			c.PoolAmount.String(),
		})
	}

	return rows
}

func (m ContributionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ScopeSelectedMsg:
		m.scope = msg.Scope
		m.state = contributionsStateBrowse
		m.loading = true

		return m, m.loadCmd(m.scope)

	case contributionsLoadedMsg:
		m.loading = false
		m.items, m.err = msg.items, msg.err
		m.table.SetRows(ContributionRows(m.items))
		m.table.SetCursor(0)

		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	if m.state == contributionsStateScope {
		if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEsc {
			return m, Back
		}

		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)

		return m, cmd
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			m.state = contributionsStateScope
			m.picker.Reset()

			return m, m.picker.Init()
		case "r":
			m.loading = true
			return m, m.loadCmd(m.scope)
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m ContributionsModel) View() string {
	if m.state == contributionsStateScope {
		return padded.Render(titleStyle.Render(m.Title()) + "\n\n" + m.picker.View())
	}

	header := titleStyle.Render(fmt.Sprintf("%s: %s", m.Title(), Describe(m.scope)))

	switch {
	case m.loading:
		return padded.Render(header + "\n\nLoading...")
	case m.err != nil:
		return padded.Render(header + "\n\n" + errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	case len(m.items) == 0:
		return padded.Render(header + "\n\nNo contributing months in this scope.")
	}

	return padded.Render(lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		m.table.View(),
		"",
		m.ShortHelp(),
	))
}
