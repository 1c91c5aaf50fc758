package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/fee-details-api/internal/domain/entity"
	"github.com/jhoicas/fee-details-api/internal/domain/repository"
)

var _ repository.FeeRepository = (*FeeRepo)(nil)

// FeeRepo implementación de FeeRepository (usable con pool o tx).
// amount_details se guarda como JSONB con claves snake_case.
type FeeRepo struct {
	q Querier
}

// NewFeeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewFeeRepository(q Querier) *FeeRepo {
	return &FeeRepo{q: q}
}

const feeColumns = `
	f.id::text, f.invoice_id::text, i.company_id::text, f.charge_model, i.currency,
	f.units, f.amount_cents, f.amount_details, f.created_at`

// GetByID obtiene una tarifa con sus impuestos aplicados.
func (r *FeeRepo) GetByID(ctx context.Context, id string) (*entity.Fee, error) {
	query := `SELECT` + feeColumns + `
		FROM fees f JOIN invoices i ON i.id = f.invoice_id
		WHERE f.id::text = $1`
	f, err := scanFee(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get fee: %w", err)
	}
	taxes, err := r.appliedTaxes(ctx, []string{f.ID})
	if err != nil {
		return nil, err
	}
	f.AppliedTaxes = taxes[f.ID]
	return f, nil
}

// ListByInvoiceID obtiene las tarifas de una factura en orden de creación.
func (r *FeeRepo) ListByInvoiceID(ctx context.Context, invoiceID string) ([]*entity.Fee, error) {
	query := `SELECT` + feeColumns + `
		FROM fees f JOIN invoices i ON i.id = f.invoice_id
		WHERE f.invoice_id::text = $1
		ORDER BY f.created_at, f.id`
	rows, err := r.q.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list fees: %w", err)
	}
	defer rows.Close()

	var list []*entity.Fee
	var ids []string
	for rows.Next() {
		f, err := scanFee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan fee: %w", err)
		}
		list = append(list, f)
		ids = append(ids, f.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list fees: %w", err)
	}
	if len(ids) == 0 {
		return list, nil
	}

	taxes, err := r.appliedTaxes(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, f := range list {
		f.AppliedTaxes = taxes[f.ID]
	}
	return list, nil
}

// appliedTaxes carga los impuestos de varias tarifas conservando el orden de aplicación.
func (r *FeeRepo) appliedTaxes(ctx context.Context, feeIDs []string) (map[string][]entity.AppliedTax, error) {
	const query = `
		SELECT id::text, fee_id::text, tax_rate
		FROM fees_taxes
		WHERE fee_id::text = ANY($1::text[])
		ORDER BY created_at, id`
	rows, err := r.q.Query(ctx, query, feeIDs)
	if err != nil {
		return nil, fmt.Errorf("list fee taxes: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]entity.AppliedTax, len(feeIDs))
	for rows.Next() {
		var t entity.AppliedTax
		var feeID string
		if err := rows.Scan(&t.ID, &feeID, &t.TaxRate); err != nil {
			return nil, fmt.Errorf("scan fee tax: %w", err)
		}
		out[feeID] = append(out[feeID], t)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFee(row rowScanner) (*entity.Fee, error) {
	var f entity.Fee
	var rawDetails []byte
	if err := row.Scan(
		&f.ID, &f.InvoiceID, &f.CompanyID, &f.ChargeModel, &f.Currency,
		&f.Units, &f.AmountCents, &rawDetails, &f.CreatedAt,
	); err != nil {
		return nil, err
	}
	if len(rawDetails) > 0 && string(rawDetails) != "null" {
		var details entity.FeeAmountDetails
		if err := json.Unmarshal(rawDetails, &details); err != nil {
			return nil, fmt.Errorf("decode amount_details of fee %s: %w", f.ID, err)
		}
		f.AmountDetails = &details
	}
	return &f, nil
}
