package view

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/loqeyusa/housingsupport/internal/report"
)

// ScopeSelectedMsg is emitted once the user has picked a valid scope.
type ScopeSelectedMsg struct {
	Scope report.Scope
}

// ScopePicker asks for a year and month. An empty year means all time and
// month 0 means the whole year.
type ScopePicker struct {
	form *huh.Form
	now  time.Time
	err  error
}

func NewScopePicker(now time.Time) ScopePicker {
	p := ScopePicker{now: now}
	p.form = p.build()

	return p
}

func (p ScopePicker) build() *huh.Form {
	months := []huh.Option[int]{huh.NewOption("Whole year", 0)}
	for m := time.January; m <= time.December; m++ {
		months = append(months, huh.NewOption(m.String(), int(m)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("year").
				Title("Year").
				Description("Leave empty for all time").
				Placeholder(strconv.Itoa(p.now.Year())).
				Validate(validateYear),
			huh.NewSelect[int]().
				Key("month").
				Title("Month").
				Options(months...),
		),
	).WithWidth(50).WithShowHelp(false)
}

func validateYear(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	y, err := strconv.Atoi(s)
	if err != nil || y < 1900 || y > 9999 {
		return errors.New("enter a four digit year")
	}

	return nil
}

// ScopeFrom turns the picker's raw answers into a validated scope.
func ScopeFrom(year string, month int) (report.Scope, error) {
	var sc report.Scope

	if year = strings.TrimSpace(year); year != "" {
		y, err := strconv.Atoi(year)
		if err != nil {
			return sc, fmt.Errorf("%w: year %q", report.ErrInvalidScope, year)
		}

		sc.Year = &y
	}

	if month != 0 {
		sc.Month = &month
	}

	return sc, sc.Validate()
}

func (p ScopePicker) Init() tea.Cmd {
	return p.form.Init()
}

func (p ScopePicker) Update(msg tea.Msg) (ScopePicker, tea.Cmd) {
	form, cmd := p.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		p.form = f
	}

	if p.form.State != huh.StateCompleted {
		return p, cmd
	}

	sc, err := ScopeFrom(p.form.GetString("year"), p.form.GetInt("month"))
	if err != nil {
		p.err = err
		p.form = p.build()

		return p, p.form.Init()
	}

	p.err = nil

	return p, func() tea.Msg { return ScopeSelectedMsg{Scope: sc} }
}

func (p ScopePicker) View() string {
	s := p.form.View()
	if p.err != nil {
		s += "\n" + errorStyle.Render(fmt.Sprintf("Error: %v", p.err))
	}

	return s
}

// Reset clears previous answers.
func (p *ScopePicker) Reset() {
	p.err = nil
	p.form = p.build()
}

// Describe renders a scope as a heading: "March 2025", "2025", "All time".
func Describe(sc report.Scope) string {
	switch {
	case sc.Year == nil:
		return "All time"
	case sc.Month == nil:
		return strconv.Itoa(*sc.Year)
	default:
		return fmt.Sprintf("%s %d", time.Month(*sc.Month), *sc.Year)
	}
}
