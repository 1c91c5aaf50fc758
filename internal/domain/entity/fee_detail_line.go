package entity

import "github.com/shopspring/decimal"

// DetailLineKind tipo de línea derivada del desglose de una tarifa porcentual.
type DetailLineKind string

// Tipos de línea, en el orden en que se emiten.
const (
	DetailLineFreeUnits        DetailLineKind = "free_units"
	DetailLinePaidUnits        DetailLineKind = "paid_units"
	DetailLineFixedFee         DetailLineKind = "fixed_fee"
	DetailLineMinMaxAdjustment DetailLineKind = "min_max_adjustment"
)

// Claves de traducción de las etiquetas. La resolución del texto la hace el cliente.
const (
	LabelKeyFreeUnits        = "fee_details.free_units"
	LabelKeyPaidUnits        = "fee_details.paid_units"
	LabelKeyFixedFee         = "fee_details.fixed_fee"
	LabelKeyMinMaxAdjustment = "fee_details.min_max_adjustment"
)

// DetailLine línea sintética del desglose. Los montos están en unidades mayores
// de la moneda de la factura.
type DetailLine struct {
	Kind       DetailLineKind
	LabelKey   string
	LabelCount int64 // parámetro de pluralización (eventos gratis)
	Quantity   decimal.Decimal
	UnitValue  decimal.Decimal
	UnitIsRate bool // UnitValue es una fracción (0.15 = 15%) y no un monto
	Taxes      []LineTax
	TotalValue decimal.Decimal
}

// LineTax impuesto de una línea; Rate es fracción (20% → 0.2).
type LineTax struct {
	TaxID string
	Rate  decimal.Decimal
}
