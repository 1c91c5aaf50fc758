package billing

import (
	"context"

	"github.com/jhoicas/fee-details-api/internal/application/dto"
)

// FeeDetailsPDFGenerator puerto para la representación gráfica (PDF) del desglose.
type FeeDetailsPDFGenerator interface {
	GenerateFeeDetailsPDF(ctx context.Context, details *dto.FeeDetailLinesResponse) ([]byte, error)
}
