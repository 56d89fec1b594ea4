package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Compras-api/internal/application/dto"
)

// SummaryPDFGenerator puerto de generación del reporte PDF; la implementación
// vive en infraestructura para que el caso de uso no dependa de la librería.
type SummaryPDFGenerator interface {
	GenerateSummaryPDF(
		ctx context.Context,
		summary *dto.SummaryDTO,
		categories []dto.CategorySpendingDTO,
		returns *dto.ReturnStatsDTO,
	) ([]byte, error)
}

// ReportUseCase genera el reporte PDF descargable del historial de compras.
type ReportUseCase struct {
	stats     *StatsUseCase
	generator SummaryPDFGenerator
	now       func() time.Time // inyectable en tests
}

func NewReportUseCase(stats *StatsUseCase, generator SummaryPDFGenerator) *ReportUseCase {
	return &ReportUseCase{stats: stats, generator: generator, now: time.Now}
}

// DownloadSummaryPDF arma los datos del reporte (resumen global, categorías y
// devoluciones) y devuelve los bytes del PDF más el nombre de archivo sugerido.
func (uc *ReportUseCase) DownloadSummaryPDF(ctx context.Context) (pdfBytes []byte, filename string, err error) {
	summary, err := uc.stats.GetSummary(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: resumen: %w", err)
	}
	categories, err := uc.stats.GetCategoryBreakdown(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: categorías: %w", err)
	}
	returns, err := uc.stats.GetReturnStats(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: devoluciones: %w", err)
	}

	pdfBytes, err = uc.generator.GenerateSummaryPDF(ctx, summary, categories, returns)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generar PDF: %w", err)
	}

	filename = fmt.Sprintf("reporte-compras-%s.pdf", uc.now().Format("2006-01-02"))
	return pdfBytes, filename, nil
}
