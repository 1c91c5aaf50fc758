package repository

import (
	"context"

	"github.com/jhoicas/fee-details-api/internal/domain/entity"
)

// FeeRepository define el puerto de lectura de tarifas con sus impuestos aplicados
// y la moneda/empresa de la factura.
type FeeRepository interface {
	// GetByID devuelve (nil, nil) si la tarifa no existe.
	GetByID(ctx context.Context, id string) (*entity.Fee, error)
	// ListByInvoiceID devuelve las tarifas de la factura en orden de creación.
	ListByInvoiceID(ctx context.Context, invoiceID string) ([]*entity.Fee, error)
}
