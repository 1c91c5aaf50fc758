package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Modelos de cobro de una tarifa. Solo ChargeModelPercentage tiene desglose por líneas.
const (
	ChargeModelStandard   = "standard"
	ChargeModelGraduated  = "graduated"
	ChargeModelPackage    = "package"
	ChargeModelPercentage = "percentage"
)

// Fee representa una tarifa (línea facturable) de una factura.
// CompanyID y Currency provienen de la factura a la que pertenece.
type Fee struct {
	ID            string
	InvoiceID     string
	CompanyID     string
	ChargeModel   string
	Currency      string // ISO 4217 de la factura
	Units         decimal.Decimal
	AmountCents   int64
	AppliedTaxes  []AppliedTax
	AmountDetails *FeeAmountDetails // nil = sin desglose calculado
	CreatedAt     time.Time
}

// AppliedTax impuesto aplicado a una tarifa. TaxRate en escala 0–100.
type AppliedTax struct {
	ID      string          `json:"id"`
	TaxRate decimal.Decimal `json:"tax_rate"`
}

// FeeAmountDetails desglose de cómo se calculó una tarifa porcentual.
// Todos los campos son opcionales: un campo ausente (null) equivale a 0.
//
// PerUnitTotalAmount llega en unidades menores (centavos); FixedFeeUnitAmount,
// FixedFeeTotalAmount y MinMaxAdjustmentTotalAmount en unidades mayores.
type FeeAmountDetails struct {
	FixedFeeTotalAmount         decimal.NullDecimal `json:"fixed_fee_total_amount"`
	FixedFeeUnitAmount          decimal.NullDecimal `json:"fixed_fee_unit_amount"`
	FreeEvents                  *int64              `json:"free_events"`
	FreeUnits                   decimal.NullDecimal `json:"free_units"`
	MinMaxAdjustmentTotalAmount decimal.NullDecimal `json:"min_max_adjustment_total_amount"`
	PaidEvents                  *int64              `json:"paid_events"`
	PaidUnits                   decimal.NullDecimal `json:"paid_units"`
	PerUnitTotalAmount          decimal.NullDecimal `json:"per_unit_total_amount"`
	Rate                        decimal.NullDecimal `json:"rate"` // porcentaje 0–100
	Units                       decimal.NullDecimal `json:"units"`
}
