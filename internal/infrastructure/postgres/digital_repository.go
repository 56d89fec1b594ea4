package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
	"github.com/jhoicas/Compras-api/internal/domain/stats"
	"github.com/jhoicas/Compras-api/internal/domain/taxonomy"
)

// digitalEligible elegibilidad de ítems digitales: solo cuenta lo que tuvo
// precio efectivo (descargas gratis y beneficios de membresía quedan fuera).
const digitalEligible = "our_price > 0"

// DigitalRepo implementación PostgreSQL de DigitalItemRepository.
type DigitalRepo struct {
	db  *pgxpool.Pool
	tax taxonomy.Taxonomy
}

var _ repository.DigitalItemRepository = (*DigitalRepo)(nil)

// NewDigitalRepo crea el repositorio digital con la taxonomía de categorías
// digitales no suscritas.
func NewDigitalRepo(db *pgxpool.Pool, tax taxonomy.Taxonomy) *DigitalRepo {
	return &DigitalRepo{db: db, tax: tax}
}

// digitalSummaryQuery cuenta FILAS elegibles, la misma semántica que el
// resumen retail con el que se combina.
const digitalSummaryQuery = `
	SELECT COUNT(*),
	       COALESCE(SUM(our_price), 0),
	       COALESCE(MIN(order_date), ''),
	       COALESCE(MAX(order_date), '')
	FROM digital_items
	WHERE ` + digitalEligible

// Summary totales globales de ítems digitales elegibles.
func (r *DigitalRepo) Summary(ctx context.Context) (repository.DigitalSummary, error) {
	var s repository.DigitalSummary
	err := r.db.QueryRow(ctx, digitalSummaryQuery).Scan(&s.Orders, &s.Spending, &s.MinDate, &s.MaxDate)
	if err != nil {
		return repository.DigitalSummary{}, fmt.Errorf("resumen digital: %w", err)
	}
	return s, nil
}

// DistinctOrderCount pedidos digitales distintos con gasto.
func (r *DigitalRepo) DistinctOrderCount(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(DISTINCT order_id) FROM digital_items WHERE ` + digitalEligible

	var n int
	if err := r.db.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("conteo pedidos digitales: %w", err)
	}
	return n, nil
}

// SpendingByPeriod gasto y pedidos distintos digitales por período, ascendente.
func (r *DigitalRepo) SpendingByPeriod(ctx context.Context, g stats.Granularity) ([]stats.PeriodAggregate, error) {
	period := periodExpr(g, "order_date")
	query := `
		SELECT ` + period + ` AS period,
		       COALESCE(SUM(our_price), 0),
		       COUNT(DISTINCT order_id)
		FROM digital_items
		WHERE ` + digitalEligible + ` AND order_date IS NOT NULL
		GROUP BY period
		ORDER BY period ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("gasto digital por período: %w", err)
	}
	defer rows.Close()

	var out []stats.PeriodAggregate
	for rows.Next() {
		var p stats.PeriodAggregate
		if err := rows.Scan(&p.Period, &p.Spending, &p.Orders); err != nil {
			return nil, fmt.Errorf("scan período digital: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// TopProducts ítems digitales con mayor gasto acumulado.
func (r *DigitalRepo) TopProducts(ctx context.Context, limit int) ([]repository.ProductTotals, error) {
	const query = `
		SELECT product_name,
		       COALESCE(SUM(quantity_ordered), 0),
		       COALESCE(SUM(our_price), 0) AS total_spending,
		       COUNT(DISTINCT order_id)
		FROM digital_items
		WHERE ` + digitalEligible + ` AND product_name IS NOT NULL
		GROUP BY product_name
		ORDER BY total_spending DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("top productos digitales: %w", err)
	}
	defer rows.Close()

	var out []repository.ProductTotals
	for rows.Next() {
		var p repository.ProductTotals
		if err := rows.Scan(&p.Name, &p.Quantity, &p.Spending, &p.Orders); err != nil {
			return nil, fmt.Errorf("scan top producto digital: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// SpendingByProduct gasto por nombre y descriptor de suscripción; insumo del
// breakdown digital (ClassifyDigital corre en memoria sobre estas filas).
func (r *DigitalRepo) SpendingByProduct(ctx context.Context) ([]repository.DigitalProductSpending, error) {
	const query = `
		SELECT product_name,
		       COALESCE(subscription_order_info, ''),
		       COALESCE(SUM(our_price), 0)
		FROM digital_items
		WHERE ` + digitalEligible + ` AND product_name IS NOT NULL
		GROUP BY product_name, subscription_order_info`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("gasto digital por producto: %w", err)
	}
	defer rows.Close()

	var out []repository.DigitalProductSpending
	for rows.Next() {
		var d repository.DigitalProductSpending
		if err := rows.Scan(&d.Name, &d.SubscriptionInfo, &d.Spending); err != nil {
			return nil, fmt.Errorf("scan gasto digital: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// Subscriptions ítems con suscripción activa, por gasto descendente.
func (r *DigitalRepo) Subscriptions(ctx context.Context, limit int) ([]repository.SubscriptionSpending, error) {
	const query = `
		SELECT product_name,
		       COALESCE(subscription_order_info, ''),
		       COALESCE(SUM(our_price), 0) AS total_spending,
		       COUNT(*)
		FROM digital_items
		WHERE ` + digitalEligible + `
		  AND subscription_order_info IS NOT NULL
		  AND subscription_order_info != 'Not Applicable'
		  AND product_name IS NOT NULL
		GROUP BY product_name, subscription_order_info
		ORDER BY total_spending DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("suscripciones: %w", err)
	}
	defer rows.Close()

	var out []repository.SubscriptionSpending
	for rows.Next() {
		var s repository.SubscriptionSpending
		if err := rows.Scan(&s.Name, &s.SubscriptionInfo, &s.Spending, &s.Count); err != nil {
			return nil, fmt.Errorf("scan suscripción: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// digitalListFilter arma el WHERE compartido del listado digital; como en el
// lado retail, las filas sin product_name quedan fuera del conteo y la página.
func digitalListFilter(tax taxonomy.Taxonomy, f repository.OrderFilter) *filterBuilder {
	b := &filterBuilder{}
	b.add(digitalEligible)
	b.add("product_name IS NOT NULL")
	b.applyDigitalCategory(tax, f.Category)
	b.applyPriceBounds("our_price", f.MinPrice, f.MaxPrice)
	b.applyDateBounds("order_date", f.StartDate, f.EndDate)
	return b
}

// List página de ítems digitales filtrados más el total sin paginar; mismo
// contrato que el listado retail (un solo WHERE compartido, LIMIT/OFFSET
// enlazados al final).
func (r *DigitalRepo) List(ctx context.Context, f repository.OrderFilter) ([]entity.DigitalItem, int, error) {
	f.Normalize()

	b := digitalListFilter(r.tax, f)

	countQuery := `SELECT COUNT(*) FROM digital_items WHERE ` + b.where()

	var total int
	if err := r.db.QueryRow(ctx, countQuery, b.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("conteo listado digital: %w", err)
	}

	pageQuery := `
		SELECT COALESCE(order_id, ''),
		       COALESCE(order_date, ''),
		       COALESCE(product_name, ''),
		       COALESCE(our_price, 0),
		       COALESCE(quantity_ordered, 0),
		       COALESCE(subscription_order_info, '')
		FROM digital_items
		WHERE ` + b.where() + `
		ORDER BY ` + orderByClause(digitalSortColumns, f) + `
		LIMIT ` + b.bind(f.Limit) + ` OFFSET ` + b.bind(f.Offset())

	rows, err := r.db.Query(ctx, pageQuery, b.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listado digital: %w", err)
	}
	defer rows.Close()

	var out []entity.DigitalItem
	for rows.Next() {
		var d entity.DigitalItem
		err := rows.Scan(&d.OrderID, &d.OrderDate, &d.ProductName, &d.Price,
			&d.Quantity, &d.SubscriptionInfo)
		if err != nil {
			return nil, 0, fmt.Errorf("scan ítem digital: %w", err)
		}
		out = append(out, d)
	}
	return out, total, rows.Err()
}
