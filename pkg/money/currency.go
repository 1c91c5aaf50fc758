// Package money agrupa las utilidades de presentación de montos: exponentes de
// moneda (unidades menores), deserialización de centavos y formateo por locale.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// DefaultMinorUnits exponente usado cuando el código ISO 4217 no es reconocido.
const DefaultMinorUnits int32 = 2

// ParseCurrency normaliza y valida un código ISO 4217 (ej. "usd" → USD).
func ParseCurrency(code string) (currency.Unit, error) {
	return currency.ParseISO(strings.ToUpper(strings.TrimSpace(code)))
}

// MinorUnits devuelve la cantidad de decimales estándar de la moneda
// (USD = 2, JPY = 0, KWD = 3) según los datos CLDR de x/text.
func MinorUnits(code string) int32 {
	unit, err := ParseCurrency(code)
	if err != nil {
		return DefaultMinorUnits
	}
	scale, _ := currency.Standard.Rounding(unit)
	return int32(scale)
}

// Deserialize convierte un monto en unidades menores (centavos) a unidades mayores.
// Ej: 1500 USD → 15.00; 1500 JPY → 1500.
func Deserialize(minor decimal.Decimal, code string) decimal.Decimal {
	return minor.Shift(-MinorUnits(code))
}

// DeserializeCents variante para montos enteros (amount_cents).
func DeserializeCents(cents int64, code string) decimal.Decimal {
	return Deserialize(decimal.NewFromInt(cents), code)
}
