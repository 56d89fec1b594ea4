package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/application/usecase"
	"github.com/jhoicas/Compras-api/internal/domain"
)

// StatsHandler maneja los endpoints de analítica del historial de compras.
type StatsHandler struct {
	stats  *usecase.StatsUseCase
	report *usecase.ReportUseCase
}

// NewStatsHandler construye el handler.
func NewStatsHandler(stats *usecase.StatsUseCase, report *usecase.ReportUseCase) *StatsHandler {
	return &StatsHandler{stats: stats, report: report}
}

// GetSummary godoc
// @Summary      Resumen global del historial de compras
// @Description  Totales de pedidos y gasto de ambas fuentes (retail y digital),
//
//	promedio por pedido y rango de fechas cubierto.
//
// @Tags         stats
// @Produce      json
// @Success      200  {object}  dto.SummaryDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stats/summary [get]
func (h *StatsHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.stats.GetSummary(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(summary)
}

// GetSpendingOverTime godoc
// @Summary      Serie temporal de gasto combinada
// @Description  Gasto y pedidos por período, sumando retail y digital. Los
//
//	períodos presentes en una sola fuente aparecen igual.
//
// @Tags         stats
// @Produce      json
// @Param        granularity  query  string  false  "monthly|yearly (default monthly)"
// @Success      200  {object}  dto.TimeSeriesDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stats/spending-over-time [get]
func (h *StatsHandler) GetSpendingOverTime(c *fiber.Ctx) error {
	var req dto.SpendingOverTimeRequest
	if err := c.QueryParser(&req); err != nil {
		return badParams(c)
	}

	series, err := h.stats.GetSpendingOverTime(c.Context(), req.Granularity)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(series)
}

// GetTopProducts godoc
// @Summary      Ranking de productos retail
// @Description  Productos con mayor gasto acumulado (o cantidad, con rank_by=quantity).
// @Tags         stats
// @Produce      json
// @Param        limit    query  int     false  "Máx. productos (default 20, max 200)"
// @Param        rank_by  query  string  false  "spending|quantity (default spending)"
// @Success      200  {array}   dto.ProductTotalsDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stats/top-products [get]
func (h *StatsHandler) GetTopProducts(c *fiber.Ctx) error {
	var req dto.TopProductsRequest
	if err := c.QueryParser(&req); err != nil {
		return badParams(c)
	}

	products, err := h.stats.GetTopProducts(c.Context(), req.Limit, req.RankBy)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(products)
}

// GetCategories godoc
// @Summary      Gasto retail por categoría
// @Description  Clasificación por keywords sobre el nombre de producto; cada
//
//	producto cuenta en exactamente una categoría.
//
// @Tags         stats
// @Produce      json
// @Success      200  {array}   dto.CategorySpendingDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stats/categories [get]
func (h *StatsHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.stats.GetCategoryBreakdown(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(categories)
}

// GetPaymentMethods godoc
// @Summary      Gasto retail por instrumento de pago
// @Tags         stats
// @Produce      json
// @Success      200  {array}   dto.PaymentMethodDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stats/payment-methods [get]
func (h *StatsHandler) GetPaymentMethods(c *fiber.Ctx) error {
	methods, err := h.stats.GetPaymentMethods(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(methods)
}

// GetReturns godoc
// @Summary      Estadísticas de devoluciones
// @Description  Total de devoluciones, tasa sobre pedidos elegibles y serie mensual.
// @Tags         stats
// @Produce      json
// @Success      200  {object}  dto.ReturnStatsDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stats/returns [get]
func (h *StatsHandler) GetReturns(c *fiber.Ctx) error {
	returns, err := h.stats.GetReturnStats(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(returns)
}

// GetDigitalVsRetail godoc
// @Summary      Comparativa digital vs retail
// @Tags         stats
// @Produce      json
// @Success      200  {object}  dto.DigitalVsRetailDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stats/digital-vs-retail [get]
func (h *StatsHandler) GetDigitalVsRetail(c *fiber.Ctx) error {
	comparison, err := h.stats.GetDigitalVsRetail(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(comparison)
}

// GetRetailBreakdown godoc
// @Summary      Desglose completo de la fuente retail
// @Description  Categorías, top de productos, serie mensual y métodos de pago.
// @Tags         stats
// @Produce      json
// @Success      200  {object}  dto.RetailBreakdownDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stats/retail-breakdown [get]
func (h *StatsHandler) GetRetailBreakdown(c *fiber.Ctx) error {
	breakdown, err := h.stats.GetRetailBreakdown(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(breakdown)
}

// GetDigitalBreakdown godoc
// @Summary      Desglose completo de la fuente digital
// @Description  Categorías (incluyendo buckets de suscripción), top de
//
//	productos, serie mensual y suscripciones con mayor gasto.
//
// @Tags         stats
// @Produce      json
// @Success      200  {object}  dto.DigitalBreakdownDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stats/digital-breakdown [get]
func (h *StatsHandler) GetDigitalBreakdown(c *fiber.Ctx) error {
	breakdown, err := h.stats.GetDigitalBreakdown(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(breakdown)
}

// GetCartSummary godoc
// @Summary      Resumen del carrito exportado
// @Tags         cart
// @Produce      json
// @Success      200  {object}  dto.CartSummaryDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/cart/summary [get]
func (h *StatsHandler) GetCartSummary(c *fiber.Ctx) error {
	summary, err := h.stats.GetCartSummary(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(summary)
}

// DownloadReport godoc
// @Summary      Reporte PDF del historial de compras
// @Description  Descarga un PDF con el resumen global, el gasto por categoría
//
//	y las estadísticas de devoluciones.
//
// @Tags         stats
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stats/report.pdf [get]
func (h *StatsHandler) DownloadReport(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.report.DownloadSummaryPDF(c.Context())
	if err != nil {
		return internalError(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

// ── Respuestas de error ───────────────────────────────────────────────────────

// internalError traduce errores de dominio a status HTTP; cualquier otro error
// (fallas de la base, contexto cancelado) es un 500.
func internalError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "NOT_FOUND", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "BAD_REQUEST", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code: "UNAUTHORIZED", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
			Code: "UNAVAILABLE", Message: err.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code: "INTERNAL", Message: err.Error(),
	})
}

func badParams(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos",
	})
}
