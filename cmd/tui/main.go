package main

import (
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/loqeyusa/housingsupport/cmd/tui/internal/view"
	"github.com/loqeyusa/housingsupport/internal/access"
	"github.com/loqeyusa/housingsupport/internal/audit"
	auditStore "github.com/loqeyusa/housingsupport/internal/audit/store"
	"github.com/loqeyusa/housingsupport/internal/client"
	clientStore "github.com/loqeyusa/housingsupport/internal/client/store"
	"github.com/loqeyusa/housingsupport/internal/config"
	"github.com/loqeyusa/housingsupport/internal/database"
	"github.com/loqeyusa/housingsupport/internal/finance"
	financeStore "github.com/loqeyusa/housingsupport/internal/finance/store"
	"github.com/loqeyusa/housingsupport/internal/logger"
	"github.com/loqeyusa/housingsupport/internal/period"
	"github.com/loqeyusa/housingsupport/internal/report"
)

type model struct {
	reports *report.Service

	currentView View

	dashboardView     view.DashboardModel
	contributionsView view.ContributionsModel
	exportView        view.ExportModel
}

type View int

const (
	ViewMenu          View = 0
	ViewDashboard     View = 1
	ViewContributions View = 2
	ViewExport        View = 3
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Keep log lines off the terminal the program draws on.
	logger.Setup(logger.Config{Level: "error", Format: cfg.Log.Format, Output: os.Stderr})

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	var (
		trail    = audit.NewRecorder(auditStore.New(db), slog.Default())
		clients  = client.NewService(clientStore.New(db), trail)
		gate     = access.NewGate(clients)
		finances = finance.NewService(financeStore.New(db), gate, trail, period.NewWindow(cfg.EditWindow()))
		reports  = report.NewService(clients, finances, gate)
	)

	return model{
		reports:     reports,
		currentView: ViewMenu,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			now := time.Now()

			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewDashboard
				m.dashboardView = view.NewDashboardModel(m.reports, now)

				return m, m.dashboardView.Init()
			case "2":
				m.currentView = ViewContributions
				m.contributionsView = view.NewContributionsModel(m.reports, now)

				return m, m.contributionsView.Init()
			case "3":
				m.currentView = ViewExport
				m.exportView = view.NewExportModel(m.reports, now)

				return m, m.exportView.Init()
			}
		} else if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewDashboard:
		var newModel tea.Model
		newModel, cmd = m.dashboardView.Update(msg)
		m.dashboardView = newModel.(view.DashboardModel)
	case ViewContributions:
		var newModel tea.Model
		newModel, cmd = m.contributionsView.Update(msg)
		m.contributionsView = newModel.(view.ContributionsModel)
	case ViewExport:
		var newModel tea.Model
		newModel, cmd = m.exportView.Update(msg)
		m.exportView = newModel.(view.ExportModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Housing Support\n\n" +
				"1. Dashboard\n" +
				"2. Pool Fund Contributions\n" +
				"3. Export Report\n\n" +
				"q. Quit",
		)
	case ViewDashboard:
		return m.dashboardView.View()
	case ViewContributions:
		return m.contributionsView.View()
	case ViewExport:
		return m.exportView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
