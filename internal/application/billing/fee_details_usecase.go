package billing

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/fee-details-api/internal/application/dto"
	"github.com/jhoicas/fee-details-api/internal/domain"
	"github.com/jhoicas/fee-details-api/internal/domain/entity"
	"github.com/jhoicas/fee-details-api/internal/domain/fee"
	"github.com/jhoicas/fee-details-api/internal/domain/repository"
	"github.com/jhoicas/fee-details-api/pkg/money"
	"github.com/shopspring/decimal"
)

var maxTaxRate = decimal.NewFromInt(100)

// DisplayConfig valores por defecto de presentación.
type DisplayConfig struct {
	Locale   string // ej. "en", "es-CO"
	Currency string // moneda del preview cuando no se informa
}

// FeeDetailsUseCase obtiene y formatea el desglose de tarifas porcentuales.
type FeeDetailsUseCase struct {
	feeRepo     repository.FeeRepository
	invoiceRepo repository.InvoiceRepository
	generator   FeeDetailsPDFGenerator
	display     DisplayConfig
}

// NewFeeDetailsUseCase construye el caso de uso inyectando sus dependencias.
func NewFeeDetailsUseCase(
	feeRepo repository.FeeRepository,
	invoiceRepo repository.InvoiceRepository,
	generator FeeDetailsPDFGenerator,
	display DisplayConfig,
) *FeeDetailsUseCase {
	if display.Locale == "" {
		display.Locale = "en"
	}
	return &FeeDetailsUseCase{
		feeRepo:     feeRepo,
		invoiceRepo: invoiceRepo,
		generator:   generator,
		display:     display,
	}
}

// GetFeeDetailLines devuelve el desglose formateado de una tarifa.
//
// Retorna:
//   - domain.ErrNotFound       si la tarifa no existe.
//   - domain.ErrForbidden      si la tarifa pertenece a otra empresa.
//   - domain.ErrNotPercentage  si la tarifa no es porcentual.
//   - domain.ErrInvalidInput   si el locale es inválido.
func (uc *FeeDetailsUseCase) GetFeeDetailLines(ctx context.Context, companyID, feeID, locale string) (*dto.FeeDetailLinesResponse, error) {
	f, err := uc.loadFee(ctx, companyID, feeID)
	if err != nil {
		return nil, err
	}
	formatter, err := uc.formatter(locale)
	if err != nil {
		return nil, err
	}
	return present(f, formatter), nil
}

// ListInvoiceFeeDetailLines devuelve el desglose de cada tarifa porcentual de una factura,
// en el orden almacenado. Las tarifas con otro modelo de cobro se omiten.
func (uc *FeeDetailsUseCase) ListInvoiceFeeDetailLines(ctx context.Context, companyID, invoiceID, locale string) ([]*dto.FeeDetailLinesResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("desglose: obtener factura: %w", err)
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if inv.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	formatter, err := uc.formatter(locale)
	if err != nil {
		return nil, err
	}

	fees, err := uc.feeRepo.ListByInvoiceID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("desglose: listar tarifas: %w", err)
	}
	out := make([]*dto.FeeDetailLinesResponse, 0, len(fees))
	for _, f := range fees {
		if f.ChargeModel != entity.ChargeModelPercentage {
			continue
		}
		if f.Currency == "" {
			f.Currency = inv.Currency
		}
		out = append(out, present(f, formatter))
	}
	return out, nil
}

// Preview desglosa un snapshot enviado por el cliente, sin consultar la base de datos.
func (uc *FeeDetailsUseCase) Preview(in dto.PreviewFeeDetailLinesRequest) (*dto.FeeDetailLinesResponse, error) {
	currency := strings.ToUpper(strings.TrimSpace(in.Currency))
	if currency == "" {
		currency = uc.display.Currency
	}
	if _, err := money.ParseCurrency(currency); err != nil {
		return nil, fmt.Errorf("%w: moneda %q no reconocida", domain.ErrInvalidInput, in.Currency)
	}

	taxes := make([]entity.AppliedTax, 0, len(in.AppliedTaxes))
	for _, t := range in.AppliedTaxes {
		if t.TaxRate.IsNegative() || t.TaxRate.GreaterThan(maxTaxRate) {
			return nil, fmt.Errorf("%w: tax_rate %s fuera de rango 0–100", domain.ErrInvalidInput, t.TaxRate)
		}
		taxes = append(taxes, entity.AppliedTax{ID: t.ID, TaxRate: t.TaxRate})
	}

	formatter, err := uc.formatter(in.Locale)
	if err != nil {
		return nil, err
	}
	f := &entity.Fee{
		ID:            in.FeeID,
		ChargeModel:   entity.ChargeModelPercentage,
		Currency:      currency,
		AppliedTaxes:  taxes,
		AmountDetails: in.AmountDetails,
	}
	return present(f, formatter), nil
}

// DownloadFeeDetailsPDF genera el PDF del desglose de una tarifa.
// Retorna (pdfBytes, filename, nil) o los mismos errores que GetFeeDetailLines.
func (uc *FeeDetailsUseCase) DownloadFeeDetailsPDF(ctx context.Context, companyID, feeID, locale string) ([]byte, string, error) {
	details, err := uc.GetFeeDetailLines(ctx, companyID, feeID, locale)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err := uc.generator.GenerateFeeDetailsPDF(ctx, details)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("desglose_tarifa_%s.pdf", feeID), nil
}

func (uc *FeeDetailsUseCase) loadFee(ctx context.Context, companyID, feeID string) (*entity.Fee, error) {
	f, err := uc.feeRepo.GetByID(ctx, feeID)
	if err != nil {
		return nil, fmt.Errorf("desglose: obtener tarifa: %w", err)
	}
	if f == nil {
		return nil, domain.ErrNotFound
	}
	if f.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	if f.ChargeModel != entity.ChargeModelPercentage {
		return nil, fmt.Errorf("%w: modelo %q", domain.ErrNotPercentage, f.ChargeModel)
	}
	return f, nil
}

func (uc *FeeDetailsUseCase) formatter(locale string) (*money.Formatter, error) {
	if locale == "" {
		locale = uc.display.Locale
	}
	f, err := money.NewFormatter(locale)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return f, nil
}

// present desglosa la tarifa y formatea cada línea con el formatter dado.
func present(f *entity.Fee, formatter *money.Formatter) *dto.FeeDetailLinesResponse {
	lines := fee.Decompose(f.AmountDetails, f.AppliedTaxes, f.Currency)

	out := make([]dto.FeeDetailLineResponse, 0, len(lines))
	for _, l := range lines {
		unit := formatter.Currency(l.UnitValue, f.Currency)
		if l.UnitIsRate {
			unit = formatter.Percent(l.UnitValue)
		}
		out = append(out, dto.FeeDetailLineResponse{
			Kind:        string(l.Kind),
			LabelKey:    l.LabelKey,
			LabelCount:  l.LabelCount,
			Quantity:    formatter.Quantity(l.Quantity),
			UnitValue:   unit,
			Taxes:       presentTaxes(f.ID, l.Taxes, formatter),
			TotalValue:  formatter.Currency(l.TotalValue, f.Currency),
			TotalAmount: l.TotalValue,
		})
	}
	return &dto.FeeDetailLinesResponse{
		FeeID:     f.ID,
		InvoiceID: f.InvoiceID,
		Currency:  f.Currency,
		Locale:    formatter.Locale(),
		Lines:     out,
	}
}

func presentTaxes(feeID string, taxes []entity.LineTax, formatter *money.Formatter) []dto.FeeDetailTax {
	if len(taxes) == 0 {
		return []dto.FeeDetailTax{{Display: money.NoTaxDisplay}}
	}
	out := make([]dto.FeeDetailTax, 0, len(taxes))
	for _, t := range taxes {
		out = append(out, dto.FeeDetailTax{
			Key:     fmt.Sprintf("fee-%s-applied-tax-%s", feeID, t.TaxID),
			Display: formatter.Percent(t.Rate),
		})
	}
	return out
}
