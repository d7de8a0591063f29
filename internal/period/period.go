// Package period addresses a calendar month and owns the edit-window rule that
// decides when a month's financial records stop being editable.
package period

import (
	"errors"
	"fmt"
	"time"
)

// DefaultEditWindow is how long after the end of a month its records stay editable.
const DefaultEditWindow = 30 * 24 * time.Hour

var ErrInvalidPeriod = errors.New("invalid period")

// Period is a (year, month) pair. Month is 1-12.
type Period struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

func New(year, month int) (Period, error) {
	p := Period{Year: year, Month: month}
	if err := p.Validate(); err != nil {
		return Period{}, err
	}

	return p, nil
}

// Of returns the period containing t.
func Of(t time.Time) Period {
	return Period{Year: t.Year(), Month: int(t.Month())}
}

func (p Period) Validate() error {
	if p.Month < 1 || p.Month > 12 {
		return fmt.Errorf("%w: month %d", ErrInvalidPeriod, p.Month)
	}

	if p.Year < 1900 || p.Year > 9999 {
		return fmt.Errorf("%w: year %d", ErrInvalidPeriod, p.Year)
	}

	return nil
}

// Start is midnight UTC on the first day of the month.
func (p Period) Start() time.Time {
	return time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC)
}

// End is the first instant after the month, i.e. midnight UTC on the first
// day of the following month.
func (p Period) End() time.Time {
	return p.Start().AddDate(0, 1, 0)
}

func (p Period) Next() Period {
	return Of(p.End())
}

func (p Period) Before(other Period) bool {
	if p.Year != other.Year {
		return p.Year < other.Year
	}

	return p.Month < other.Month
}

func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}

// Window is the edit-window rule. It is the only place that decides whether a
// month has aged out of editing.
type Window struct {
	Length time.Duration
}

func NewWindow(length time.Duration) Window {
	if length <= 0 {
		length = DefaultEditWindow
	}

	return Window{Length: length}
}

// Deadline is the last instant the month is editable by ordinary admins.
func (w Window) Deadline(p Period) time.Time {
	return p.End().Add(w.Length)
}

// Closed reports whether now is past the month's edit deadline.
func (w Window) Closed(p Period, now time.Time) bool {
	return now.After(w.Deadline(p))
}
