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

// retailEligible es el predicado de elegibilidad que comparten TODAS las
// consultas retail: pedidos cancelados o sin monto no cuentan para ningún
// agregado ni listado.
const retailEligible = "order_status != 'Cancelled' AND total_owed > 0"

// periodExpr devuelve la expresión de etiqueta de período sobre una columna
// de fecha ISO-8601 almacenada como TEXT: prefijo "YYYY-MM" o "YYYY". El
// orden lexicográfico de las etiquetas coincide con el cronológico.
func periodExpr(g stats.Granularity, column string) string {
	if g == stats.Yearly {
		return "substr(" + column + ", 1, 4)"
	}
	return "substr(" + column + ", 1, 7)"
}

// RetailRepo implementación PostgreSQL de RetailOrderRepository.
type RetailRepo struct {
	db  *pgxpool.Pool
	tax taxonomy.Taxonomy
}

var _ repository.RetailOrderRepository = (*RetailRepo)(nil)

// NewRetailRepo crea el repositorio retail con la taxonomía que resuelve los
// filtros por categoría.
func NewRetailRepo(db *pgxpool.Pool, tax taxonomy.Taxonomy) *RetailRepo {
	return &RetailRepo{db: db, tax: tax}
}

// retailSummaryQuery cuenta FILAS elegibles, igual que la fuente digital: el
// resumen combinado suma ambos conteos y debe usar la misma semántica en los
// dos lados. El conteo de pedidos distintos vive en DistinctOrderCount.
const retailSummaryQuery = `
	SELECT COUNT(*),
	       COALESCE(SUM(total_owed), 0),
	       COALESCE(MIN(order_date), ''),
	       COALESCE(MAX(order_date), '')
	FROM retail_orders
	WHERE ` + retailEligible

// Summary totales globales de filas elegibles más el rango de fechas.
func (r *RetailRepo) Summary(ctx context.Context) (repository.RetailSummary, error) {
	var s repository.RetailSummary
	err := r.db.QueryRow(ctx, retailSummaryQuery).Scan(&s.Orders, &s.Spending, &s.MinDate, &s.MaxDate)
	if err != nil {
		return repository.RetailSummary{}, fmt.Errorf("resumen retail: %w", err)
	}
	return s, nil
}

// DistinctOrderCount pedidos elegibles distintos.
func (r *RetailRepo) DistinctOrderCount(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(DISTINCT order_id) FROM retail_orders WHERE ` + retailEligible

	var n int
	if err := r.db.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("conteo pedidos retail: %w", err)
	}
	return n, nil
}

// SpendingByPeriod gasto y pedidos distintos por período, ascendente.
func (r *RetailRepo) SpendingByPeriod(ctx context.Context, g stats.Granularity) ([]stats.PeriodAggregate, error) {
	period := periodExpr(g, "order_date")
	query := `
		SELECT ` + period + ` AS period,
		       COALESCE(SUM(total_owed), 0),
		       COUNT(DISTINCT order_id)
		FROM retail_orders
		WHERE ` + retailEligible + ` AND order_date IS NOT NULL
		GROUP BY period
		ORDER BY period ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("gasto retail por período: %w", err)
	}
	defer rows.Close()

	var out []stats.PeriodAggregate
	for rows.Next() {
		var p stats.PeriodAggregate
		if err := rows.Scan(&p.Period, &p.Spending, &p.Orders); err != nil {
			return nil, fmt.Errorf("scan período retail: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// TopProducts productos con mayor gasto (o cantidad, si rankBy == "quantity").
func (r *RetailRepo) TopProducts(ctx context.Context, limit int, rankBy string) ([]repository.ProductTotals, error) {
	// rankBy sale de una whitelist de dos valores; nunca del usuario directo.
	rank := "total_spending"
	if rankBy == "quantity" {
		rank = "total_quantity"
	}
	query := `
		SELECT product_name,
		       COALESCE(SUM(quantity), 0) AS total_quantity,
		       COALESCE(SUM(total_owed), 0) AS total_spending,
		       COUNT(DISTINCT order_id)
		FROM retail_orders
		WHERE ` + retailEligible + ` AND product_name IS NOT NULL
		GROUP BY product_name
		ORDER BY ` + rank + ` DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("top productos retail: %w", err)
	}
	defer rows.Close()

	var out []repository.ProductTotals
	for rows.Next() {
		var p repository.ProductTotals
		if err := rows.Scan(&p.Name, &p.Quantity, &p.Spending, &p.Orders); err != nil {
			return nil, fmt.Errorf("scan top producto retail: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// SpendingByProduct gasto acumulado por nombre; insumo del breakdown por
// categoría (la clasificación por keywords ocurre en memoria).
func (r *RetailRepo) SpendingByProduct(ctx context.Context) ([]repository.NameSpending, error) {
	const query = `
		SELECT product_name, COALESCE(SUM(total_owed), 0)
		FROM retail_orders
		WHERE ` + retailEligible + ` AND product_name IS NOT NULL
		GROUP BY product_name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("gasto retail por producto: %w", err)
	}
	defer rows.Close()

	var out []repository.NameSpending
	for rows.Next() {
		var n repository.NameSpending
		if err := rows.Scan(&n.Name, &n.Spending); err != nil {
			return nil, fmt.Errorf("scan gasto por producto: %w", err)
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

// SpendingByPaymentMethod gasto por instrumento de pago, descendente.
func (r *RetailRepo) SpendingByPaymentMethod(ctx context.Context) ([]repository.MethodSpending, error) {
	const query = `
		SELECT COALESCE(payment_instrument_type, 'Unknown'),
		       COALESCE(SUM(total_owed), 0) AS total_spending
		FROM retail_orders
		WHERE ` + retailEligible + `
		GROUP BY payment_instrument_type
		ORDER BY total_spending DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("gasto por método de pago: %w", err)
	}
	defer rows.Close()

	var out []repository.MethodSpending
	for rows.Next() {
		var m repository.MethodSpending
		if err := rows.Scan(&m.Method, &m.Spending); err != nil {
			return nil, fmt.Errorf("scan método de pago: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// retailListFilter arma el WHERE que comparten el conteo y la página del
// listado. Además de la elegibilidad general exige product_name IS NOT NULL:
// una fila sin nombre no se puede mostrar ni asignar a categoría, y contarla
// inflaría el total respecto de los agregados.
func retailListFilter(tax taxonomy.Taxonomy, f repository.OrderFilter) *filterBuilder {
	b := &filterBuilder{}
	b.add(retailEligible)
	b.add("product_name IS NOT NULL")
	b.applyRetailCategory(tax, f.Category)
	b.applyPriceBounds("total_owed", f.MinPrice, f.MaxPrice)
	b.applyDateBounds("order_date", f.StartDate, f.EndDate)
	return b
}

// List devuelve una página de pedidos filtrados más el total sin paginar.
// Conteo y página comparten el MISMO WHERE y los MISMOS argumentos; LIMIT y
// OFFSET se enlazan después del conteo para no desalinear los placeholders.
func (r *RetailRepo) List(ctx context.Context, f repository.OrderFilter) ([]entity.RetailOrder, int, error) {
	f.Normalize()

	b := retailListFilter(r.tax, f)

	countQuery := `SELECT COUNT(*) FROM retail_orders WHERE ` + b.where()

	var total int
	if err := r.db.QueryRow(ctx, countQuery, b.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("conteo listado retail: %w", err)
	}

	pageQuery := `
		SELECT COALESCE(order_id, ''),
		       COALESCE(order_date, ''),
		       COALESCE(product_name, ''),
		       COALESCE(total_owed, 0),
		       COALESCE(quantity, 0),
		       COALESCE(order_status, ''),
		       COALESCE(payment_instrument_type, ''),
		       COALESCE(asin, '')
		FROM retail_orders
		WHERE ` + b.where() + `
		ORDER BY ` + orderByClause(retailSortColumns, f) + `
		LIMIT ` + b.bind(f.Limit) + ` OFFSET ` + b.bind(f.Offset())

	rows, err := r.db.Query(ctx, pageQuery, b.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listado retail: %w", err)
	}
	defer rows.Close()

	var out []entity.RetailOrder
	for rows.Next() {
		var o entity.RetailOrder
		err := rows.Scan(&o.OrderID, &o.OrderDate, &o.ProductName, &o.TotalOwed,
			&o.Quantity, &o.Status, &o.PaymentMethod, &o.ASIN)
		if err != nil {
			return nil, 0, fmt.Errorf("scan pedido retail: %w", err)
		}
		out = append(out, o)
	}
	return out, total, rows.Err()
}
