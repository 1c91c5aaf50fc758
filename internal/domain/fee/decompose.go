// Package fee contiene el desglose de tarifas porcentuales en líneas de detalle
// (servicio de dominio puro, sin dependencias de infraestructura).
package fee

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/fee-details-api/internal/domain/entity"
	"github.com/jhoicas/fee-details-api/pkg/money"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// Decompose deriva las líneas de detalle de una tarifa porcentual, en orden fijo:
//
//  1. Unidades gratis        si FreeUnits > 0
//  2. Unidades pagadas       siempre
//  3. Cargo fijo             si FixedFeeUnitAmount > 0
//  4. Ajuste mínimo/máximo   si MinMaxAdjustmentTotalAmount != 0 (puede ser negativo)
//
// details nil se trata como un desglose con todos los campos en 0.
// currency se usa solo para deserializar PerUnitTotalAmount (unidades menores).
func Decompose(details *entity.FeeAmountDetails, taxes []entity.AppliedTax, currency string) []entity.DetailLine {
	if details == nil {
		details = &entity.FeeAmountDetails{}
	}
	lineTaxes := toLineTaxes(taxes)
	lines := make([]entity.DetailLine, 0, 4)

	freeUnits := orZero(details.FreeUnits)
	if freeUnits.GreaterThan(decimal.Zero) {
		lines = append(lines, entity.DetailLine{
			Kind:       entity.DetailLineFreeUnits,
			LabelKey:   entity.LabelKeyFreeUnits,
			LabelCount: countOrZero(details.FreeEvents),
			Quantity:   orOne(freeUnits),
			UnitValue:  decimal.Zero,
			Taxes:      lineTaxes,
			TotalValue: decimal.Zero,
		})
	}

	lines = append(lines, entity.DetailLine{
		Kind:       entity.DetailLinePaidUnits,
		LabelKey:   entity.LabelKeyPaidUnits,
		Quantity:   orOne(orZero(details.PaidUnits)),
		UnitValue:  orZero(details.Rate).Div(hundred),
		UnitIsRate: true,
		Taxes:      lineTaxes,
		TotalValue: money.Deserialize(orZero(details.PerUnitTotalAmount), currency),
	})

	fixedFee := orZero(details.FixedFeeUnitAmount)
	if fixedFee.GreaterThan(decimal.Zero) {
		lines = append(lines, entity.DetailLine{
			Kind:       entity.DetailLineFixedFee,
			LabelKey:   entity.LabelKeyFixedFee,
			Quantity:   orOne(decimal.NewFromInt(countOrZero(details.PaidEvents))),
			UnitValue:  fixedFee,
			Taxes:      lineTaxes,
			TotalValue: fixedFee,
		})
	}

	adjustment := orZero(details.MinMaxAdjustmentTotalAmount)
	if !adjustment.IsZero() {
		lines = append(lines, entity.DetailLine{
			Kind:       entity.DetailLineMinMaxAdjustment,
			LabelKey:   entity.LabelKeyMinMaxAdjustment,
			Quantity:   one,
			UnitValue:  adjustment,
			Taxes:      lineTaxes,
			TotalValue: adjustment,
		})
	}

	return lines
}

// toLineTaxes convierte las tasas 0–100 a fracciones conservando el orden de entrada.
// Sin impuestos devuelve nil; el formateo lo muestra como "0%".
func toLineTaxes(taxes []entity.AppliedTax) []entity.LineTax {
	if len(taxes) == 0 {
		return nil
	}
	out := make([]entity.LineTax, 0, len(taxes))
	for _, t := range taxes {
		out = append(out, entity.LineTax{TaxID: t.ID, Rate: t.TaxRate.Div(hundred)})
	}
	return out
}

func orZero(d decimal.NullDecimal) decimal.Decimal {
	if !d.Valid {
		return decimal.Zero
	}
	return d.Decimal
}

func orOne(d decimal.Decimal) decimal.Decimal {
	if d.IsZero() {
		return one
	}
	return d
}

func countOrZero(n *int64) int64 {
	if n == nil {
		return 0
	}
	return *n
}
