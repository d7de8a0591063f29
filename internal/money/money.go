// Package money provides a fixed-point currency amount used everywhere a
// financial value is stored, summed or compared.
package money

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Scale is the number of decimal digits kept for every amount.
const Scale = 2

var ErrInvalidAmount = errors.New("invalid amount")

// amountPattern accepts plain digits or digits grouped by thousands commas.
var amountPattern = regexp.MustCompile(`^(\d+|\d{1,3}(,\d{3})+)(\.\d+)?$`)

// Limit is the smallest magnitude an amount may not reach; stored amounts
// are NUMERIC(12,2).
var Limit = decimal.New(1, 10)

// Money is a signed currency amount with exactly two decimal digits.
// The zero value is $0.00.
type Money struct {
	d decimal.Decimal
}

var Zero = Money{}

// Parse converts user input into Money.
//
// Accepted forms: "500", "500.5", "1,250.00", "$12.30", "-45.10".
// More than two fractional digits are rounded half away from zero
// ("1.005" -> 1.01, "-1.005" -> -1.01). Commas must group thousands and
// nothing may separate the sign from the number. Exponents, empty input,
// magnitudes of Limit or more and anything else that is not a plain decimal
// number yield ErrInvalidAmount.
func Parse(raw string) (Money, error) {
	s := strings.TrimSpace(raw)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	s = strings.TrimPrefix(s, "$")

	if !amountPattern.MatchString(s) {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}

	d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", ""))
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}

	if neg {
		d = d.Neg()
	}

	m := FromDecimal(d)
	if err := m.Validate(); err != nil {
		return Money{}, fmt.Errorf("%w: %q exceeds %s", ErrInvalidAmount, raw, Limit.String())
	}

	return m, nil
}

// Validate reports ErrInvalidAmount when m cannot be stored.
func (m Money) Validate() error {
	if m.d.Abs().GreaterThanOrEqual(Limit) {
		return fmt.Errorf("%w: %s exceeds %s", ErrInvalidAmount, m.Plain(), Limit.String())
	}

	return nil
}

// MustParse is Parse for literals known to be valid.
func MustParse(raw string) Money {
	m, err := Parse(raw)
	if err != nil {
		panic(err)
	}

	return m
}

// FromDecimal rounds d to two decimal digits.
func FromDecimal(d decimal.Decimal) Money {
	return Money{d: d.Round(Scale)}
}

// FromCents builds an amount from an integer number of cents.
func FromCents(cents int64) Money {
	return Money{d: decimal.New(cents, -Scale)}
}

func (m Money) Add(other Money) Money {
	return Money{d: m.d.Add(other.d)}
}

func (m Money) Sub(other Money) Money {
	return Money{d: m.d.Sub(other.d)}
}

func (m Money) Neg() Money {
	return Money{d: m.d.Neg()}
}

// Cmp returns -1, 0 or +1 if m is less than, equal to or greater than other.
func (m Money) Cmp(other Money) int {
	return m.d.Cmp(other.d)
}

func (m Money) Equal(other Money) bool {
	return m.d.Equal(other.d)
}

func (m Money) IsZero() bool     { return m.d.IsZero() }
func (m Money) IsPositive() bool { return m.d.IsPositive() }
func (m Money) IsNegative() bool { return m.d.IsNegative() }

// Cents returns the amount as an integer number of cents.
func (m Money) Cents() int64 {
	return m.d.Shift(Scale).IntPart()
}

func (m Money) Decimal() decimal.Decimal {
	return m.d
}

// Plain formats the amount without a currency sign: "-12.30".
func (m Money) Plain() string {
	return m.d.StringFixed(Scale)
}

// String formats the amount for display: "$1250.00", "-$12.30".
func (m Money) String() string {
	if m.d.IsNegative() {
		return "-$" + m.d.Abs().StringFixed(Scale)
	}

	return "$" + m.d.StringFixed(Scale)
}

// Sum adds amounts with exact decimal arithmetic.
func Sum(amounts ...Money) Money {
	total := Zero
	for _, a := range amounts {
		total = total.Add(a)
	}

	return total
}

// MarshalJSON encodes the amount as a fixed two-digit string so no consumer
// ever sees a binary float.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Plain())
}

// UnmarshalJSON accepts both "12.30" and 12.30.
func (m *Money) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*m = Zero
		return nil
	}

	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidAmount, raw)
		}

		raw = s
	}

	parsed, err := Parse(raw)
	if err != nil {
		return err
	}

	*m = parsed

	return nil
}

// Value stores the amount in a NUMERIC column.
func (m Money) Value() (driver.Value, error) {
	return m.Plain(), nil
}

// Scan reads a NUMERIC column. NULL scans as zero.
func (m *Money) Scan(src any) error {
	if src == nil {
		*m = Zero
		return nil
	}

	var d decimal.Decimal
	if err := d.Scan(src); err != nil {
		return fmt.Errorf("scanning money: %w", err)
	}

	*m = FromDecimal(d)

	return nil
}
