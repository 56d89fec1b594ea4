package repository

import (
	"context"

	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/stats"
	"github.com/shopspring/decimal"
)

// RetailSummary totales de pedidos físicos elegibles (no cancelados, monto > 0).
type RetailSummary struct {
	Orders   int
	Spending decimal.Decimal
	MinDate  string // "" si no hay filas
	MaxDate  string
}

// ProductTotals agregado por nombre de producto.
type ProductTotals struct {
	Name     string
	Quantity int64
	Spending decimal.Decimal
	Orders   int // pedidos distintos
}

// NameSpending gasto acumulado por nombre de producto (insumo del breakdown
// por categoría: la clasificación ocurre en memoria, no en SQL).
type NameSpending struct {
	Name     string
	Spending decimal.Decimal
}

// MethodSpending gasto por instrumento de pago.
type MethodSpending struct {
	Method   string
	Spending decimal.Decimal
}

// RetailOrderRepository puerto de lectura sobre la tabla retail_orders.
// Todas las consultas aplican el predicado de elegibilidad
// (order_status != 'Cancelled' AND total_owed > 0).
type RetailOrderRepository interface {
	Summary(ctx context.Context) (RetailSummary, error)
	DistinctOrderCount(ctx context.Context) (int, error)
	SpendingByPeriod(ctx context.Context, g stats.Granularity) ([]stats.PeriodAggregate, error)
	TopProducts(ctx context.Context, limit int, rankBy string) ([]ProductTotals, error)
	SpendingByProduct(ctx context.Context) ([]NameSpending, error)
	SpendingByPaymentMethod(ctx context.Context) ([]MethodSpending, error)
	// List ejecuta el filtro y devuelve una página de filas más el total de
	// coincidencias sin paginar; conteo y página usan el mismo predicado.
	List(ctx context.Context, f OrderFilter) ([]entity.RetailOrder, int, error)
}
