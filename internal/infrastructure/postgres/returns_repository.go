package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

// ReturnsRepo implementación PostgreSQL de ReturnsRepository.
type ReturnsRepo struct {
	db *pgxpool.Pool
}

var _ repository.ReturnsRepository = (*ReturnsRepo)(nil)

func NewReturnsRepo(db *pgxpool.Pool) *ReturnsRepo {
	return &ReturnsRepo{db: db}
}

// Count total de devoluciones registradas.
func (r *ReturnsRepo) Count(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM returns`

	var n int
	if err := r.db.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("conteo devoluciones: %w", err)
	}
	return n, nil
}

// CountByMonth devoluciones por mes de creación, ascendente.
func (r *ReturnsRepo) CountByMonth(ctx context.Context) ([]repository.PeriodCount, error) {
	const query = `
		SELECT substr(return_creation_date, 1, 7) AS period, COUNT(*)
		FROM returns
		WHERE return_creation_date IS NOT NULL
		GROUP BY period
		ORDER BY period ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("devoluciones por mes: %w", err)
	}
	defer rows.Close()

	var out []repository.PeriodCount
	for rows.Next() {
		var p repository.PeriodCount
		if err := rows.Scan(&p.Period, &p.Count); err != nil {
			return nil, fmt.Errorf("scan devoluciones: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// CartRepo implementación PostgreSQL de CartRepository.
type CartRepo struct {
	db *pgxpool.Pool
}

var _ repository.CartRepository = (*CartRepo)(nil)

func NewCartRepo(db *pgxpool.Pool) *CartRepo {
	return &CartRepo{db: db}
}

// Summary totales de la tabla de carrito.
func (r *CartRepo) Summary(ctx context.Context) (repository.CartSummary, error) {
	const query = `SELECT COUNT(*), COALESCE(SUM(quantity), 0) FROM cart_items`

	var s repository.CartSummary
	if err := r.db.QueryRow(ctx, query).Scan(&s.Items, &s.TotalQuantity); err != nil {
		return repository.CartSummary{}, fmt.Errorf("resumen carrito: %w", err)
	}
	return s, nil
}
