package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Compras-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	StatsUC   *usecase.StatsUseCase
	OrdersUC  *usecase.OrdersUseCase
	ReportUC  *usecase.ReportUseCase
	JWTSecret string // vacío = API abierta (solo desarrollo local)
}

// Router registra las rutas de la API. Con JWT_SECRET configurado todo /api
// exige Bearer Token; sin secret la API queda abierta para desarrollo local.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	if deps.JWTSecret != "" {
		api = api.Group("/", AuthMiddleware(deps.JWTSecret))
	}

	// Stats
	stats := api.Group("/stats")
	statsHandler := NewStatsHandler(deps.StatsUC, deps.ReportUC)
	stats.Get("/summary", statsHandler.GetSummary)
	stats.Get("/spending-over-time", statsHandler.GetSpendingOverTime)
	stats.Get("/top-products", statsHandler.GetTopProducts)
	stats.Get("/categories", statsHandler.GetCategories)
	stats.Get("/payment-methods", statsHandler.GetPaymentMethods)
	stats.Get("/returns", statsHandler.GetReturns)
	stats.Get("/digital-vs-retail", statsHandler.GetDigitalVsRetail)
	stats.Get("/retail-breakdown", statsHandler.GetRetailBreakdown)
	stats.Get("/digital-breakdown", statsHandler.GetDigitalBreakdown)
	stats.Get("/report.pdf", statsHandler.DownloadReport)

	// Listados
	ordersHandler := NewOrdersHandler(deps.OrdersUC)
	api.Get("/orders", ordersHandler.ListRetail)
	api.Get("/digital-orders", ordersHandler.ListDigital)

	// Carrito
	api.Get("/cart/summary", statsHandler.GetCartSummary)
}
