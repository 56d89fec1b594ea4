// Package pdf implementa la generación del reporte PDF del historial de
// compras.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + rango de fechas cubierto                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: pedidos y gasto por fuente + promedio por pedido   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Categoría | Gasto                                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DEVOLUCIONES: total + tasa sobre pedidos elegibles          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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

	"github.com/jhoicas/Compras-api/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa usecase.SummaryPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateSummaryPDF genera el reporte y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateSummaryPDF(
	_ context.Context,
	summary *dto.SummaryDTO,
	categories []dto.CategorySpendingDTO,
	returns *dto.ReturnStatsDTO,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Compras", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRows(summary)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(categoryHeaderRow())
	for _, r := range categoryRows(categories) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(returnsRow(returns))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y rango de fechas cubierto (der).
func headerRow(summary *dto.SummaryDTO) core.Row {
	rango := "Sin datos"
	if summary.DateRange.Start != "" {
		rango = summary.DateRange.Start + " a " + summary.DateRange.End
	}

	return row.New(14).Add(
		col.New(7).Add(
			text.New("Reporte de Compras", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("PERÍODO CUBIERTO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(rango, props.Text{
				Size: 9, Align: align.Right, Top: 7, Color: colorGray,
			}),
		),
	)
}

// summaryRows: totales por fuente y combinados.
func summaryRows(summary *dto.SummaryDTO) []core.Row {
	return []core.Row{
		metricRow("Pedidos retail", fmt.Sprintf("%d", summary.TotalRetailOrders),
			"Gasto retail", "$"+summary.TotalRetailSpending.StringFixed(2)),
		metricRow("Pedidos digitales", fmt.Sprintf("%d", summary.TotalDigitalOrders),
			"Gasto digital", "$"+summary.TotalDigitalSpending.StringFixed(2)),
		metricRow("Pedidos totales", fmt.Sprintf("%d", summary.TotalOrders),
			"Gasto total", "$"+summary.TotalSpending.StringFixed(2)),
		metricRow("Promedio por pedido", "$"+summary.AverageOrderValue.StringFixed(2), "", ""),
	}
}

// metricRow dos pares etiqueta/valor por fila.
func metricRow(label1, value1, label2, value2 string) core.Row {
	cols := []core.Col{
		col.New(4).Add(text.New(label1, props.Text{Size: 9, Color: colorGray})),
		col.New(2).Add(text.New(value1, props.Text{Size: 9, Style: fontstyle.Bold})),
	}
	if label2 != "" {
		cols = append(cols,
			col.New(4).Add(text.New(label2, props.Text{Size: 9, Color: colorGray})),
			col.New(2).Add(text.New(value2, props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right})),
		)
	}
	return row.New(6).Add(cols...)
}

func categoryHeaderRow() core.Row {
	return row.New(7).Add(
		col.New(8).Add(text.New("CATEGORÍA", props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
		})),
		col.New(4).Add(text.New("GASTO", props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
		})),
	)
}

func categoryRows(categories []dto.CategorySpendingDTO) []core.Row {
	rows := make([]core.Row, 0, len(categories))
	for _, c := range categories {
		rows = append(rows, row.New(5).Add(
			col.New(8).Add(text.New(c.Category, props.Text{Size: 9})),
			col.New(4).Add(text.New("$"+c.Spending.StringFixed(2), props.Text{
				Size: 9, Align: align.Right,
			})),
		))
	}
	return rows
}

func returnsRow(returns *dto.ReturnStatsDTO) core.Row {
	return row.New(8).Add(
		col.New(6).Add(
			text.New(fmt.Sprintf("Devoluciones: %d", returns.TotalReturns), props.Text{
				Size: 9, Top: 2,
			}),
		),
		col.New(6).Add(
			text.New(fmt.Sprintf("Tasa de devolución: %s%%", returns.ReturnRatePct.StringFixed(2)), props.Text{
				Size: 9, Align: align.Right, Top: 2,
			}),
		),
	)
}
