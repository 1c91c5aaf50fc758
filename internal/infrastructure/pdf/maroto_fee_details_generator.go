// Package pdf implementa la representación gráfica del desglose de una tarifa porcentual.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Desglose de tarifa  │  Tarifa / Factura / Moneda   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Concepto | Cant. | Unitario | Impuestos | Total      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL: suma de las líneas                                   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	appbilling "github.com/jhoicas/fee-details-api/internal/application/billing"
	"github.com/jhoicas/fee-details-api/internal/application/dto"
	"github.com/jhoicas/fee-details-api/internal/domain/entity"
	"github.com/jhoicas/fee-details-api/pkg/money"
)

var _ appbilling.FeeDetailsPDFGenerator = (*MarotoFeeDetailsGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoFeeDetailsGenerator implementa billing.FeeDetailsPDFGenerator usando Maroto v2.
type MarotoFeeDetailsGenerator struct{}

// NewMarotoFeeDetailsGenerator construye el generador.
func NewMarotoFeeDetailsGenerator() *MarotoFeeDetailsGenerator { return &MarotoFeeDetailsGenerator{} }

// GenerateFeeDetailsPDF genera el PDF y devuelve sus bytes.
func (g *MarotoFeeDetailsGenerator) GenerateFeeDetailsPDF(_ context.Context, details *dto.FeeDetailLinesResponse) ([]byte, error) {
	if details == nil {
		return nil, fmt.Errorf("pdf: desglose vacío")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Desglose de tarifa porcentual", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(details))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(details.Lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(details))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y referencias de tarifa/factura (der).
func headerRow(d *dto.FeeDetailLinesResponse) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("DESGLOSE DE TARIFA", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Modelo de cobro porcentual", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Tarifa: "+nonEmpty(d.FeeID, "-"), props.Text{
				Size: 8, Align: align.Right, Top: 1,
			}),
			text.New("Factura: "+nonEmpty(d.InvoiceID, "-"), props.Text{
				Size: 8, Align: align.Right, Top: 6, Color: colorGray,
			}),
			text.New("Moneda: "+d.Currency, props.Text{
				Size: 8, Align: align.Right, Top: 11, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Concepto", 4, align.Left),
		h("Cant.", 1, align.Center),
		h("Unitario", 2, align.Right),
		h("Impuestos", 2, align.Center),
		h("Total", 3, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// tableDetailRows: una fila por línea del desglose.
func tableDetailRows(lines []dto.FeeDetailLineResponse) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(
				Label(entity.DetailLineKind(l.Kind), l.LabelCount),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				l.Quantity,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				l.UnitValue,
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				taxesText(l.Taxes),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(3).Add(text.New(
				l.TotalValue,
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalRow: suma de los totales de las líneas, formateada con el locale del desglose.
func totalRow(d *dto.FeeDetailLinesResponse) core.Row {
	sum := decimal.Zero
	for _, l := range d.Lines {
		sum = sum.Add(l.TotalAmount)
	}
	formatted := sum.StringFixed(money.MinorUnits(d.Currency)) + " " + d.Currency
	if f, err := money.NewFormatter(d.Locale); err == nil {
		formatted = f.Currency(sum, d.Currency)
	}
	return row.New(10).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 2,
		})),
		col.New(3).Add(text.New(formatted, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}

// ── Etiquetas ─────────────────────────────────────────────────────────────────

// Label texto en español de cada tipo de línea. count pluraliza los eventos gratis.
func Label(kind entity.DetailLineKind, count int64) string {
	switch kind {
	case entity.DetailLineFreeUnits:
		if count == 1 {
			return "Unidades gratis (1 evento)"
		}
		return fmt.Sprintf("Unidades gratis (%d eventos)", count)
	case entity.DetailLinePaidUnits:
		return "Unidades pagadas (tasa porcentual)"
	case entity.DetailLineFixedFee:
		return "Cargo fijo por transacción"
	case entity.DetailLineMinMaxAdjustment:
		return "Ajuste por mínimo/máximo"
	default:
		return string(kind)
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func taxesText(taxes []dto.FeeDetailTax) string {
	parts := make([]string, 0, len(taxes))
	for _, t := range taxes {
		parts = append(parts, t.Display)
	}
	return strings.Join(parts, " / ")
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
