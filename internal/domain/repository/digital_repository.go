package repository

import (
	"context"

	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/stats"
	"github.com/shopspring/decimal"
)

// DigitalSummary totales de ítems digitales elegibles (precio > 0).
type DigitalSummary struct {
	Orders   int
	Spending decimal.Decimal
	MinDate  string
	MaxDate  string
}

// DigitalProductSpending gasto por nombre + descriptor de suscripción
// (insumo del breakdown digital; la clasificación ocurre en memoria).
type DigitalProductSpending struct {
	Name             string
	SubscriptionInfo string
	Spending         decimal.Decimal
}

// SubscriptionSpending gasto acumulado de un ítem con suscripción activa.
type SubscriptionSpending struct {
	Name             string
	SubscriptionInfo string
	Spending         decimal.Decimal
	Count            int
}

// DigitalItemRepository puerto de lectura sobre la tabla digital_items.
type DigitalItemRepository interface {
	Summary(ctx context.Context) (DigitalSummary, error)
	DistinctOrderCount(ctx context.Context) (int, error)
	SpendingByPeriod(ctx context.Context, g stats.Granularity) ([]stats.PeriodAggregate, error)
	TopProducts(ctx context.Context, limit int) ([]ProductTotals, error)
	SpendingByProduct(ctx context.Context) ([]DigitalProductSpending, error)
	Subscriptions(ctx context.Context, limit int) ([]SubscriptionSpending, error)
	List(ctx context.Context, f OrderFilter) ([]entity.DigitalItem, int, error)
}
