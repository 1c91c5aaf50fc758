package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/fee-details-api/internal/domain/entity"
)

// FeeDetailLinesResponse desglose formateado de una tarifa porcentual
// para GET /api/fees/:id/detail-lines.
type FeeDetailLinesResponse struct {
	FeeID     string                  `json:"fee_id"`
	InvoiceID string                  `json:"invoice_id,omitempty"`
	Currency  string                  `json:"currency"`
	Locale    string                  `json:"locale"`
	Lines     []FeeDetailLineResponse `json:"lines"`
}

// FeeDetailLineResponse una fila del desglose, con valores ya formateados.
// TotalAmount es el total sin formatear en unidades mayores.
type FeeDetailLineResponse struct {
	Kind        string          `json:"kind"`
	LabelKey    string          `json:"label_key"`
	LabelCount  int64           `json:"label_count"`
	Quantity    string          `json:"quantity"`
	UnitValue   string          `json:"unit_value"`
	Taxes       []FeeDetailTax  `json:"taxes"`
	TotalValue  string          `json:"total_value"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// FeeDetailTax impuesto formateado. Key es estable para el renderizado
// (vacío en la entrada "0%" de tarifas sin impuestos).
type FeeDetailTax struct {
	Key     string `json:"key,omitempty"`
	Display string `json:"display"`
}

// PreviewFeeDetailLinesRequest body para POST /api/fee-detail-lines/preview.
// Permite desglosar un snapshot que aún no está persistido.
type PreviewFeeDetailLinesRequest struct {
	FeeID         string                   `json:"fee_id,omitempty" validate:"omitempty,uuid"`
	Currency      string                   `json:"currency" validate:"required,len=3,alpha"`
	Locale        string                   `json:"locale,omitempty" validate:"omitempty,bcp47_language_tag"`
	AmountDetails *entity.FeeAmountDetails `json:"amount_details"`
	AppliedTaxes  []AppliedTaxRequest      `json:"applied_taxes" validate:"dive"`
}

// AppliedTaxRequest impuesto aplicado en el preview. TaxRate en escala 0–100.
type AppliedTaxRequest struct {
	ID      string          `json:"id" validate:"required"`
	TaxRate decimal.Decimal `json:"tax_rate"`
}
