package repository

import "context"

// PeriodCount conteo por etiqueta de período ("YYYY-MM").
type PeriodCount struct {
	Period string
	Count  int
}

// ReturnsRepository puerto de lectura sobre la tabla returns.
type ReturnsRepository interface {
	Count(ctx context.Context) (int, error)
	CountByMonth(ctx context.Context) ([]PeriodCount, error)
}

// CartSummary totales de la tabla cart_items (la exportación la incluye pero
// el dashboard solo muestra el resumen).
type CartSummary struct {
	Items         int
	TotalQuantity int64
}

// CartRepository puerto de lectura sobre la tabla cart_items.
type CartRepository interface {
	Summary(ctx context.Context) (CartSummary, error)
}
