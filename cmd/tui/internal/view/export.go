package view

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/loqeyusa/housingsupport/internal/report"
)

type exportState int

const (
	exportStateScope exportState = iota
	exportStatePath
	exportStateExporting
	exportStateResult
)

type ExportModel struct {
	reports *report.Service
	now     func() time.Time

	state  exportState
	err    error
	picker ScopePicker
	scope  report.Scope

	form    *huh.Form
	spinner spinner.Model
	files   []string
}

func NewExportModel(reports *report.Service, now time.Time) ExportModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return ExportModel{
		reports: reports,
		now:     time.Now,
		state:   exportStateScope,
		picker:  NewScopePicker(now),
		spinner: s,
	}
}

func (m ExportModel) Title() string { return "Export Report" }

func (m ExportModel) ShortHelp() string {
	switch m.state {
	case exportStateResult:
		return "Esc: back to menu"
	case exportStateExporting:
		return "Exporting..."
	}

	return "Esc: back | Enter: confirm"
}

func (m ExportModel) Init() tea.Cmd {
	return m.picker.Init()
}

func (m ExportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if sel, ok := msg.(ScopeSelectedMsg); ok {
		m.scope = sel.Scope
		m.form = buildPathForm()
		m.state = exportStatePath

		return m, m.form.Init()
	}

	switch m.state {
	case exportStateScope:
		return m.updateScope(msg)
	case exportStatePath:
		return m.updatePath(msg)
	case exportStateExporting:
		return m.updateExporting(msg)
	case exportStateResult:
		if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEsc {
			return m, Back
		}
	}

	return m, nil
}

func (m ExportModel) updateScope(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEsc {
		return m, Back
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	return m, cmd
}

func (m ExportModel) updatePath(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEsc {
		m.state = exportStateScope
		m.picker.Reset()

		return m, m.picker.Init()
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	dir := strings.TrimSpace(m.form.GetString("path"))
	if dir == "" {
		dir = defaultExportDir
	}

	m.state = exportStateExporting
	m.err = nil

	return m, tea.Batch(m.spinner.Tick, m.runExportCmd(m.scope, dir))
}

func (m ExportModel) updateExporting(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(exportResultMsg); ok {
		m.state = exportStateResult
		m.files, m.err = result.files, result.err

		return m, nil
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)

	return m, cmd
}

const defaultExportDir = "./exports"

func buildPathForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("path").
				Title("Output Path").
				Description("Directory will be created if it doesn't exist").
				Placeholder(defaultExportDir),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m ExportModel) View() string {
	switch m.state {
	case exportStateScope:
		return padded.Render(titleStyle.Render(m.Title()) + "\n\n" + m.picker.View())
	case exportStatePath:
		return padded.Render(m.form.View())
	case exportStateExporting:
		return padded.Render(fmt.Sprintf("%s Exporting %s...", m.spinner.View(), Describe(m.scope)))
	case exportStateResult:
		return m.viewResult()
	}

	return ""
}

func (m ExportModel) viewResult() string {
	if m.err != nil {
		return padded.Render(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("46")).
		Render("Export Complete!")

	return padded.Render(lipgloss.JoinVertical(lipgloss.Left,
		append([]string{header, ""}, m.files...)...,
	))
}

type exportResultMsg struct {
	files []string
	err   error
}

const exportTimeout = 2 * time.Minute

func (m ExportModel) runExportCmd(sc report.Scope, dir string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), exportTimeout)
		defer cancel()

		rows, err := m.reports.Rows(ctx, sc)
		if err != nil {
			return exportResultMsg{err: err}
		}

		files, err := WriteExports(dir, m.now(), rows)

		return exportResultMsg{files: files, err: err}
	}
}

// WriteExports writes the CSV and XLSX renditions of rows into dir and
// returns the paths written.
func WriteExports(dir string, at time.Time, rows []report.Row) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating export directory: %w", err)
	}

	writers := []struct {
		ext   string
		write func(io.Writer, []report.Row) error
	}{
		{"csv", report.WriteCSV},
		{"xlsx", report.WriteXLSX},
	}

	files := make([]string, 0, len(writers))

	for _, w := range writers {
		path := filepath.Join(dir, report.FileName(at, w.ext))

		if err := writeFile(path, rows, w.write); err != nil {
			return files, err
		}

		files = append(files, path)
	}

	return files, nil
}

func writeFile(path string, rows []report.Row, write func(io.Writer, []report.Row) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := write(f, rows); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}

	return nil
}
