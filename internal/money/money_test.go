package money_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loqeyusa/housingsupport/internal/money"
)

func TestParse(t *testing.T) {
	type testCase struct {
		name    string
		in      string
		want    string
		wantErr bool
	}

	tests := []testCase{
		{name: "Integer", in: "500", want: "500.00"},
		{name: "OneDigit", in: "500.5", want: "500.50"},
		{name: "TwoDigits", in: "12.34", want: "12.34"},
		{name: "Whitespace", in: "  7.10 ", want: "7.10"},
		{name: "DollarSign", in: "$12.30", want: "12.30"},
		{name: "Thousands", in: "1,250.00", want: "1250.00"},
		{name: "Negative", in: "-45.10", want: "-45.10"},
		{name: "NegativeDollar", in: "-$3.00", want: "-3.00"},
		{name: "RoundHalfUp", in: "1.005", want: "1.01"},
		{name: "RoundDown", in: "1.004", want: "1.00"},
		{name: "RoundNegativeAwayFromZero", in: "-1.005", want: "-1.01"},
		{name: "Zero", in: "0", want: "0.00"},
		{name: "Empty", in: "", wantErr: true},
		{name: "Letters", in: "abc", wantErr: true},
		{name: "Exponent", in: "1e3", wantErr: true},
		{name: "TwoDots", in: "1.2.3", wantErr: true},
		{name: "DoubleSign", in: "--5", wantErr: true},
		{name: "TrailingDot", in: "5.", wantErr: true},
		{name: "MillionsGrouped", in: "$1,250,000.50", want: "1250000.50"},
		{name: "LooseCommas", in: "1,2,3", wantErr: true},
		{name: "ShortGroup", in: "1,25", wantErr: true},
		{name: "LeadingComma", in: ",250", wantErr: true},
		{name: "SpaceAfterSign", in: " - 5", wantErr: true},
		{name: "SpaceAfterDollar", in: "$ 5", wantErr: true},
		{name: "LargestStorable", in: "9999999999.99", want: "9999999999.99"},
		{name: "TooLarge", in: "12345678901234.00", wantErr: true},
		{name: "AtLimit", in: "10000000000", wantErr: true},
		{name: "NegativeTooLarge", in: "-10,000,000,000.00", wantErr: true},
		{name: "RoundsUpToLimit", in: "9999999999.995", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := money.Parse(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, money.ErrInvalidAmount)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Plain())
		})
	}
}

func TestMoney_Arithmetic(t *testing.T) {
	a := money.MustParse("500.00")
	b := money.MustParse("450.00")

	assert.Equal(t, "950.00", a.Add(b).Plain())
	assert.Equal(t, "50.00", a.Sub(b).Plain())
	assert.Equal(t, "-50.00", b.Sub(a).Plain())
	assert.Equal(t, 1, a.Cmp(b))
	assert.True(t, a.Sub(a).IsZero())
	assert.True(t, b.Sub(a).IsNegative())
	assert.True(t, a.IsPositive())
	assert.False(t, money.Zero.IsPositive())
	assert.False(t, money.Zero.IsNegative())
}

func TestSum_NoDrift(t *testing.T) {
	amounts := make([]money.Money, 1000)
	for i := range amounts {
		amounts[i] = money.MustParse("0.10")
	}

	total := money.Sum(amounts...)
	assert.Equal(t, "100.00", total.Plain())
	assert.Equal(t, int64(10000), total.Cents())
}

func TestMoney_String(t *testing.T) {
	assert.Equal(t, "$1250.00", money.MustParse("1250").String())
	assert.Equal(t, "-$12.30", money.MustParse("-12.3").String())
	assert.Equal(t, "$0.00", money.Zero.String())
	assert.Equal(t, "$0.05", money.FromCents(5).String())
}

func TestMoney_JSON(t *testing.T) {
	type payload struct {
		Amount money.Money `json:"amount"`
	}

	out, err := json.Marshal(payload{Amount: money.MustParse("500")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":"500.00"}`, string(out))

	var fromNumber payload
	require.NoError(t, json.Unmarshal([]byte(`{"amount": 12.345}`), &fromNumber))
	assert.Equal(t, "12.35", fromNumber.Amount.Plain())

	var bad payload
	err = json.Unmarshal([]byte(`{"amount":"twelve"}`), &bad)
	assert.ErrorIs(t, err, money.ErrInvalidAmount)

	err = json.Unmarshal([]byte(`{"amount":12345678901234}`), &bad)
	assert.ErrorIs(t, err, money.ErrInvalidAmount)
}

func TestMoney_Validate(t *testing.T) {
	assert.NoError(t, money.MustParse("9999999999.99").Validate())
	assert.NoError(t, money.MustParse("-9999999999.99").Validate())
	assert.ErrorIs(t, money.FromDecimal(decimal.New(1, 10)).Validate(), money.ErrInvalidAmount)
	assert.ErrorIs(t, money.FromDecimal(decimal.New(-5, 11)).Validate(), money.ErrInvalidAmount)
}

func TestMoney_Scan(t *testing.T) {
	var m money.Money
	require.NoError(t, m.Scan("123.40"))
	assert.Equal(t, "123.40", m.Plain())

	require.NoError(t, m.Scan(nil))
	assert.True(t, m.IsZero())

	v, err := money.MustParse("9.99").Value()
	require.NoError(t, err)
	assert.Equal(t, "9.99", v)
}
