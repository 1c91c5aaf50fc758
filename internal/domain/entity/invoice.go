package entity

import "time"

// Estados de la factura.
const (
	InvoiceStatusDraft     = "draft"
	InvoiceStatusFinalized = "finalized"
	InvoiceStatusVoided    = "voided"
)

// Invoice representa la cabecera de una factura (solo lo necesario para el desglose de tarifas).
type Invoice struct {
	ID        string
	CompanyID string
	Number    string
	Currency  string // ISO 4217; todas las tarifas de la factura comparten moneda
	Status    string
	IssuedAt  time.Time
	CreatedAt time.Time
}
