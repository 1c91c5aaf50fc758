package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fee-details-api/pkg/money"
)

func TestMinorUnits(t *testing.T) {
	cases := map[string]int32{
		"USD": 2,
		"usd": 2,
		"EUR": 2,
		"JPY": 0,
		"KWD": 3,
		"ZZZ": money.DefaultMinorUnits, // código desconocido
		"":    money.DefaultMinorUnits,
	}
	for code, want := range cases {
		assert.Equal(t, want, money.MinorUnits(code), "exponente de %q", code)
	}
}

func TestDeserialize(t *testing.T) {
	assert.True(t, decimal.RequireFromString("15").Equal(money.DeserializeCents(1500, "USD")))
	assert.True(t, decimal.RequireFromString("1500").Equal(money.DeserializeCents(1500, "JPY")))
	assert.True(t, decimal.RequireFromString("1.5").Equal(money.DeserializeCents(1500, "KWD")))
	assert.True(t, decimal.RequireFromString("-0.35").Equal(money.Deserialize(decimal.NewFromInt(-35), "EUR")))
}

func newEnglish(t *testing.T) *money.Formatter {
	t.Helper()
	f, err := money.NewFormatter("en")
	require.NoError(t, err)
	return f
}

func TestNewFormatter_LocaleInvalido(t *testing.T) {
	_, err := money.NewFormatter("??-no-es-un-tag")
	require.Error(t, err)
	assert.ErrorIs(t, err, money.ErrInvalidLocale)
}

func TestFormatter_Currency(t *testing.T) {
	f := newEnglish(t)

	assert.Equal(t, "$15.00", f.Currency(decimal.NewFromInt(15), "USD"))
	assert.Equal(t, "$0.00", f.Currency(decimal.Zero, "USD"))
	assert.Equal(t, "-$3.50", f.Currency(decimal.RequireFromString("-3.5"), "USD"))
	assert.Equal(t, "$1,234.57", f.Currency(decimal.RequireFromString("1234.567"), "USD"))
}

func TestFormatter_Percent(t *testing.T) {
	f := newEnglish(t)

	assert.Equal(t, "15%", f.Percent(decimal.RequireFromString("0.15")))
	assert.Equal(t, "20%", f.Percent(decimal.RequireFromString("0.2")))
	assert.Equal(t, "8.25%", f.Percent(decimal.RequireFromString("0.0825")))
	assert.Equal(t, "0%", f.Percent(decimal.Zero))
}

func TestFormatter_Quantity(t *testing.T) {
	f := newEnglish(t)

	assert.Equal(t, "10", f.Quantity(decimal.NewFromInt(10)))
	assert.Equal(t, "1,234.5", f.Quantity(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "en", f.Locale())
}
