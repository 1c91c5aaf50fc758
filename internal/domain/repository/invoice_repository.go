package repository

import (
	"context"

	"github.com/jhoicas/fee-details-api/internal/domain/entity"
)

// InvoiceRepository define el puerto de lectura de la cabecera de facturas.
type InvoiceRepository interface {
	// GetByID devuelve (nil, nil) si la factura no existe.
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
}
