package postgres

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Compras-api/internal/domain/repository"
	"github.com/jhoicas/Compras-api/internal/domain/taxonomy"
)

func TestFilterBuilder_BindAlignment(t *testing.T) {
	// ──────────────────────────────────────────────
	// Los placeholders deben numerarse en el mismo
	// orden en que se registran los argumentos
	// ──────────────────────────────────────────────
	b := &filterBuilder{}

	p1 := b.bind("a")
	p2 := b.bind("b")
	p3 := b.bind(3)

	assert.Equal(t, "$1", p1)
	assert.Equal(t, "$2", p2)
	assert.Equal(t, "$3", p3)
	require.Len(t, b.args, 3)
	assert.Equal(t, "a", b.args[0])
	assert.Equal(t, "b", b.args[1])
	assert.Equal(t, 3, b.args[2])
}

func TestFilterBuilder_LikeAnyAndNotLikeAll(t *testing.T) {
	b := &filterBuilder{}
	b.likeAny("product_name", []string{"book", "kindle"})

	require.Len(t, b.conds, 1)
	assert.Equal(t, "(LOWER(product_name) LIKE $1 OR LOWER(product_name) LIKE $2)", b.conds[0])
	assert.Equal(t, []any{"%book%", "%kindle%"}, b.args, "las keywords viajan como valores enlazados, nunca interpoladas")

	b2 := &filterBuilder{}
	b2.notLikeAll("product_name", []string{"movie", "film"})

	require.Len(t, b2.conds, 1)
	assert.Equal(t, "(LOWER(product_name) NOT LIKE $1 AND LOWER(product_name) NOT LIKE $2)", b2.conds[0])
}

func TestApplyRetailCategory(t *testing.T) {
	tax := taxonomy.Retail()

	t.Run("categoría conocida produce OR de LIKEs", func(t *testing.T) {
		b := &filterBuilder{}
		b.applyRetailCategory(tax, "Photography")

		require.Len(t, b.conds, 1)
		assert.True(t, strings.HasPrefix(b.conds[0], "(LOWER(product_name) LIKE $1"))
		rule, ok := tax.Rule("Photography")
		require.True(t, ok)
		assert.Len(t, b.args, len(rule.Keywords))
	})

	t.Run("Other produce el complemento de todas las keywords", func(t *testing.T) {
		b := &filterBuilder{}
		b.applyRetailCategory(tax, taxonomy.CategoryOther)

		require.Len(t, b.conds, 1)
		assert.Contains(t, b.conds[0], "NOT LIKE")
		assert.Len(t, b.args, len(tax.AllKeywords()))
	})

	t.Run("categoría desconocida produce FALSE, no error", func(t *testing.T) {
		b := &filterBuilder{}
		b.applyRetailCategory(tax, "No Existe")

		require.Len(t, b.conds, 1)
		assert.Equal(t, "FALSE", b.conds[0])
		assert.Empty(t, b.args)
	})

	t.Run("vacío no restringe", func(t *testing.T) {
		b := &filterBuilder{}
		b.applyRetailCategory(tax, "")

		assert.Empty(t, b.conds)
	})
}

func TestApplyDigitalCategory(t *testing.T) {
	tax := taxonomy.Digital()

	t.Run("Video Streaming combina positivo y negativo", func(t *testing.T) {
		b := &filterBuilder{}
		b.applyDigitalCategory(tax, taxonomy.CategoryVideoStreaming)

		require.Len(t, b.conds, 2)
		assert.Contains(t, b.conds[0], "LIKE")
		assert.Contains(t, b.conds[1], "NOT LIKE")
		assert.Equal(t, []any{"%video%", "%streaming%", "%prime%", "%paramount%"}, b.args)
	})

	t.Run("Other Subscriptions exige descriptor de suscripción", func(t *testing.T) {
		b := &filterBuilder{}
		b.applyDigitalCategory(tax, taxonomy.CategoryOtherSubscriptions)

		require.Len(t, b.conds, 3)
		assert.Equal(t, "subscription_order_info IS NOT NULL", b.conds[0])
		assert.Equal(t, "subscription_order_info != 'Not Applicable'", b.conds[1])
		assert.Contains(t, b.conds[2], "NOT LIKE")
	})

	t.Run("Other Digital excluye keywords y suscripciones", func(t *testing.T) {
		b := &filterBuilder{}
		b.applyDigitalCategory(tax, taxonomy.CategoryOtherDigital)

		require.Len(t, b.conds, 2)
		assert.Len(t, b.args, len(tax.AllKeywords()))
		assert.Equal(t, "(subscription_order_info IS NULL OR subscription_order_info = 'Not Applicable')", b.conds[1])
	})

	t.Run("taxonomía digital para categorías de contenido", func(t *testing.T) {
		b := &filterBuilder{}
		b.applyDigitalCategory(tax, "Books & eBooks")

		require.Len(t, b.conds, 1)
		assert.Equal(t, []any{"%book%", "%kindle%"}, b.args)
	})

	t.Run("desconocida produce FALSE", func(t *testing.T) {
		b := &filterBuilder{}
		b.applyDigitalCategory(tax, "Hardware")

		require.Len(t, b.conds, 1)
		assert.Equal(t, "FALSE", b.conds[0])
	})
}

func TestApplyBounds(t *testing.T) {
	min := decimal.NewFromInt(10)
	max := decimal.NewFromInt(100)

	b := &filterBuilder{}
	b.applyPriceBounds("total_owed", &min, &max)
	b.applyDateBounds("order_date", "2023-01-01", "2023-12-31")

	require.Len(t, b.conds, 4)
	assert.Equal(t, "total_owed >= $1", b.conds[0])
	assert.Equal(t, "total_owed <= $2", b.conds[1])
	assert.Equal(t, "order_date >= $3", b.conds[2])
	assert.Equal(t, "order_date <= $4", b.conds[3])

	// Cotas nil o vacías no agregan nada.
	b2 := &filterBuilder{}
	b2.applyPriceBounds("total_owed", nil, nil)
	b2.applyDateBounds("order_date", "", "")
	assert.Empty(t, b2.conds)
}

func TestListFilters_ExigenNombreDeProducto(t *testing.T) {
	// ──────────────────────────────────────────────
	// Una fila sin product_name no se puede mostrar
	// ni clasificar: queda fuera del conteo y de la
	// página, incluso sin filtro de categoría
	// ──────────────────────────────────────────────
	retail := retailListFilter(taxonomy.Retail(), repository.OrderFilter{})
	assert.Contains(t, retail.where(), retailEligible)
	assert.Contains(t, retail.where(), "product_name IS NOT NULL")
	assert.Empty(t, retail.args, "sin filtros de usuario no hay valores enlazados")

	digital := digitalListFilter(taxonomy.Digital(), repository.OrderFilter{})
	assert.Contains(t, digital.where(), digitalEligible)
	assert.Contains(t, digital.where(), "product_name IS NOT NULL")
	assert.Empty(t, digital.args)
}

func TestSummaryQueries_MismaSemanticaDeConteo(t *testing.T) {
	// El resumen combinado suma los conteos de ambas fuentes: los dos lados
	// cuentan filas. Los pedidos distintos salen de DistinctOrderCount y solo
	// alimentan la tasa de devoluciones y la comparativa digital vs retail.
	assert.Contains(t, retailSummaryQuery, "COUNT(*)")
	assert.NotContains(t, retailSummaryQuery, "COUNT(DISTINCT")
	assert.Contains(t, digitalSummaryQuery, "COUNT(*)")
	assert.NotContains(t, digitalSummaryQuery, "COUNT(DISTINCT")
}

func TestResolveSort(t *testing.T) {
	// ──────────────────────────────────────────────
	// Whitelist: el input del usuario jamás llega al
	// SQL; fuera de lista cae al default en silencio
	// ──────────────────────────────────────────────
	assert.Equal(t, "total_owed", resolveSortColumn(retailSortColumns, "total_owed"))
	assert.Equal(t, "quantity_ordered", resolveSortColumn(digitalSortColumns, "quantity"),
		"el nombre público quantity mapea a la columna real digital")
	assert.Equal(t, "order_date", resolveSortColumn(retailSortColumns, "price; DROP TABLE retail_orders"))
	assert.Equal(t, "order_date", resolveSortColumn(retailSortColumns, ""))

	assert.Equal(t, "ASC", resolveSortDir("asc"))
	assert.Equal(t, "ASC", resolveSortDir("ASC"))
	assert.Equal(t, "DESC", resolveSortDir("desc"))
	assert.Equal(t, "DESC", resolveSortDir("descendente"))
	assert.Equal(t, "DESC", resolveSortDir(""))
}

func TestOrderByClause(t *testing.T) {
	f := repository.OrderFilter{SortBy: "product_name", SortOrder: "asc"}
	assert.Equal(t, "product_name ASC", orderByClause(retailSortColumns, f))

	malicioso := repository.OrderFilter{SortBy: "1=1; --", SortOrder: "'; DELETE"}
	assert.Equal(t, "order_date DESC", orderByClause(retailSortColumns, malicioso))
}
