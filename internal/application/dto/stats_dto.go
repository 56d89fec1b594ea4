package dto

import "github.com/shopspring/decimal"

// ── Query parameters ──────────────────────────────────────────────────────────

// SpendingOverTimeRequest parámetros para GET /api/stats/spending-over-time.
type SpendingOverTimeRequest struct {
	Granularity string `query:"granularity"` // monthly|yearly; otro valor cae a monthly
}

// TopProductsRequest parámetros para GET /api/stats/top-products.
type TopProductsRequest struct {
	Limit  int    `query:"limit"`   // máx productos a devolver (default 20, max 200)
	RankBy string `query:"rank_by"` // spending|quantity; otro valor cae a spending
}

// ── Resumen global ────────────────────────────────────────────────────────────

// DateRangeDTO rango de fechas cubierto por los datos.
type DateRangeDTO struct {
	Start string `json:"start"` // "" si no hay datos
	End   string `json:"end"`
}

// SummaryDTO respuesta de GET /api/stats/summary: totales combinados de ambas
// fuentes más el promedio por pedido.
type SummaryDTO struct {
	TotalRetailOrders    int             `json:"total_retail_orders"`
	TotalRetailSpending  decimal.Decimal `json:"total_retail_spending"`
	TotalDigitalOrders   int             `json:"total_digital_orders"`
	TotalDigitalSpending decimal.Decimal `json:"total_digital_spending"`
	TotalOrders          int             `json:"total_orders"`
	TotalSpending        decimal.Decimal `json:"total_spending"`
	AverageOrderValue    decimal.Decimal `json:"average_order_value"` // 0 si no hay pedidos
	DateRange            DateRangeDTO    `json:"date_range"`
}

// ── Series temporales ─────────────────────────────────────────────────────────

// TimeSeriesDTO serie combinada retail+digital en arreglos paralelos: la
// posición i de cada arreglo corresponde al mismo período.
type TimeSeriesDTO struct {
	Granularity string            `json:"granularity"`
	Labels      []string          `json:"labels"` // "YYYY-MM" o "YYYY", ascendente
	Spending    []decimal.Decimal `json:"spending"`
	OrderCounts []int             `json:"order_counts"`
}

// ── Rankings y desgloses ──────────────────────────────────────────────────────

// ProductTotalsDTO agregado por producto.
type ProductTotalsDTO struct {
	Name     string          `json:"name"`
	Quantity int64           `json:"quantity"`
	Spending decimal.Decimal `json:"spending"`
	Orders   int             `json:"orders"`
}

// CategorySpendingDTO gasto acumulado de una categoría.
type CategorySpendingDTO struct {
	Category string          `json:"category"`
	Spending decimal.Decimal `json:"spending"`
}

// PaymentMethodDTO gasto por instrumento de pago.
type PaymentMethodDTO struct {
	Method   string          `json:"method"`
	Spending decimal.Decimal `json:"spending"`
}

// SubscriptionDTO gasto acumulado de un ítem con suscripción activa.
type SubscriptionDTO struct {
	Name             string          `json:"name"`
	SubscriptionInfo string          `json:"subscription_info"`
	Spending         decimal.Decimal `json:"spending"`
	Count            int             `json:"count"`
}

// ── Devoluciones ──────────────────────────────────────────────────────────────

// PeriodCountDTO conteo por período.
type PeriodCountDTO struct {
	Period string `json:"period"`
	Count  int    `json:"count"`
}

// ReturnStatsDTO respuesta de GET /api/stats/returns.
type ReturnStatsDTO struct {
	TotalReturns    int              `json:"total_returns"`
	EligibleOrders  int              `json:"eligible_orders"`
	ReturnRatePct   decimal.Decimal  `json:"return_rate_pct"` // 0 si no hay pedidos elegibles
	ReturnsOverTime []PeriodCountDTO `json:"returns_over_time"`
}

// ── Comparativas y desgloses por fuente ───────────────────────────────────────

// SourceTotalsDTO totales de una fuente (retail o digital).
type SourceTotalsDTO struct {
	Orders   int             `json:"orders"`
	Spending decimal.Decimal `json:"spending"`
}

// DigitalVsRetailDTO respuesta de GET /api/stats/digital-vs-retail.
type DigitalVsRetailDTO struct {
	Retail  SourceTotalsDTO `json:"retail"`
	Digital SourceTotalsDTO `json:"digital"`
}

// RetailBreakdownDTO respuesta de GET /api/stats/retail-breakdown.
type RetailBreakdownDTO struct {
	Categories      []CategorySpendingDTO `json:"categories"`
	TopProducts     []ProductTotalsDTO    `json:"top_products"`
	MonthlySpending TimeSeriesDTO         `json:"monthly_spending"`
	PaymentMethods  []PaymentMethodDTO    `json:"payment_methods"`
}

// DigitalBreakdownDTO respuesta de GET /api/stats/digital-breakdown.
type DigitalBreakdownDTO struct {
	Categories      []CategorySpendingDTO `json:"categories"`
	TopProducts     []ProductTotalsDTO    `json:"top_products"`
	MonthlySpending TimeSeriesDTO         `json:"monthly_spending"`
	Subscriptions   []SubscriptionDTO     `json:"subscriptions"`
}

// CartSummaryDTO respuesta de GET /api/cart/summary.
type CartSummaryDTO struct {
	Items         int   `json:"items"`
	TotalQuantity int64 `json:"total_quantity"`
}
