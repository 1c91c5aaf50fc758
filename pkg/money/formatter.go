package money

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// NoTaxDisplay texto de la columna de impuestos cuando la tarifa no tiene impuestos aplicados.
const NoTaxDisplay = "0%"

// ErrInvalidLocale el locale recibido no es un tag BCP 47 válido.
var ErrInvalidLocale = errors.New("locale inválido")

const (
	percentMaxFractionDigits  = 2
	quantityMaxFractionDigits = 4
)

// Formatter formatea montos, porcentajes y cantidades para un locale fijo.
// El locale se inyecta explícitamente; no hay estado global.
type Formatter struct {
	tag     language.Tag
	printer *message.Printer
}

// NewFormatter construye un Formatter para el locale indicado (ej. "en", "es-CO").
func NewFormatter(locale string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLocale, locale)
	}
	return &Formatter{tag: tag, printer: message.NewPrinter(tag)}, nil
}

// Locale devuelve el tag BCP 47 del formatter.
func (f *Formatter) Locale() string {
	return f.tag.String()
}

// Currency formatea un monto en unidades mayores con el símbolo de la moneda
// y los decimales estándar de la misma. Ej (en): 15 USD → "$15.00", -3.5 USD → "-$3.50".
func (f *Formatter) Currency(amount decimal.Decimal, code string) string {
	scale := MinorUnits(code)
	rounded := amount.Round(scale)

	symbol := code
	if unit, err := ParseCurrency(code); err == nil {
		symbol = f.printer.Sprint(currency.Symbol(unit))
	}

	digits := f.printer.Sprint(number.Decimal(rounded.Abs().InexactFloat64(), number.Scale(int(scale))))
	if rounded.IsNegative() {
		return "-" + symbol + digits
	}
	return symbol + digits
}

// Percent formatea una fracción como porcentaje con máximo 2 decimales. Ej: 0.15 → "15%".
func (f *Formatter) Percent(fraction decimal.Decimal) string {
	return f.printer.Sprint(number.Percent(fraction.InexactFloat64(), number.MaxFractionDigits(percentMaxFractionDigits)))
}

// Quantity formatea una cantidad de unidades (con separador de miles, hasta 4 decimales).
func (f *Formatter) Quantity(q decimal.Decimal) string {
	return f.printer.Sprint(number.Decimal(q.InexactFloat64(), number.MaxFractionDigits(quantityMaxFractionDigits)))
}
