package view

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/loqeyusa/housingsupport/internal/report"
)

type dashboardState int

const (
	dashboardStateScope dashboardState = iota
	dashboardStateLoading
	dashboardStateResult
)

type DashboardModel struct {
	reports *report.Service

	state   dashboardState
	picker  ScopePicker
	spinner spinner.Model

	scope     report.Scope
	dashboard *report.Dashboard
	err       error
}

func NewDashboardModel(reports *report.Service, now time.Time) DashboardModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return DashboardModel{
		reports: reports,
		picker:  NewScopePicker(now),
		spinner: s,
	}
}

func (m DashboardModel) Title() string { return "Dashboard" }

func (m DashboardModel) ShortHelp() string {
	if m.state == dashboardStateResult {
		return "Esc: change scope | r: refresh"
	}

	return "Esc: back | Enter: confirm"
}

func (m DashboardModel) Init() tea.Cmd {
	return m.picker.Init()
}

type dashboardLoadedMsg struct {
	dashboard *report.Dashboard
	err       error
}

func (m DashboardModel) loadCmd(sc report.Scope) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		d, err := m.reports.Dashboard(ctx, sc)

		return dashboardLoadedMsg{dashboard: d, err: err}
	}
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ScopeSelectedMsg:
		m.scope = msg.Scope
		m.state = dashboardStateLoading

		return m, tea.Batch(m.spinner.Tick, m.loadCmd(m.scope))

	case dashboardLoadedMsg:
		m.state = dashboardStateResult
		m.dashboard, m.err = msg.dashboard, msg.err

		return m, nil
	}

	switch m.state {
	case dashboardStateScope:
		if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEsc {
			return m, Back
		}

		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)

		return m, cmd

	case dashboardStateLoading:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd

	case dashboardStateResult:
		if key, ok := msg.(tea.KeyMsg); ok {
			switch key.String() {
			case "esc":
				m.state = dashboardStateScope
				m.picker.Reset()

				return m, m.picker.Init()
			case "r":
				m.state = dashboardStateLoading
				return m, tea.Batch(m.spinner.Tick, m.loadCmd(m.scope))
			}
		}
	}

	return m, nil
}

func (m DashboardModel) View() string {
	switch m.state {
	case dashboardStateScope:
		return padded.Render(titleStyle.Render("Dashboard") + "\n\n" + m.picker.View())
	case dashboardStateLoading:
		return padded.Render(m.spinner.View() + " Loading dashboard...")
	case dashboardStateResult:
		if m.err != nil {
			return padded.Render(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		}

		return padded.Render(RenderDashboard(m.scope, m.dashboard))
	}

	return ""
}

// RenderDashboard lays out a dashboard as labelled lines.
func RenderDashboard(sc report.Scope, d *report.Dashboard) string {
	line := func(label, value string) string {
		return labelStyle.Render(label) + value
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Dashboard: "+Describe(sc)) + "\n\n")

	for _, l := range []string{
		line("Clients", fmt.Sprintf("%d (%d active)", d.TotalClients, d.ActiveClients)),
		"",
		line("Housing support", d.TotalHousingSupport.String()),
		line("Rent paid", d.TotalRentPaid.String()),
		line("Expenses", d.TotalExpenses.String()),
		line("LTH payments", d.TotalLth.String()),
		line("Remaining balance", FormatAmount(d.RemainingBalance)),
		"",
		line("Pool fund", FormatAmount(d.PoolFund)),
		line("Contributors", strconv.Itoa(d.TotalContributors)),
		line("  positive", strconv.Itoa(d.PositiveContributors)),
		line("  negative", strconv.Itoa(d.NegativeContributors)),
	} {
		b.WriteString(l + "\n")
	}

	return b.String()
}
