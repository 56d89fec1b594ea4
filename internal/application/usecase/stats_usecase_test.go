package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Compras-api/internal/application/usecase"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
	"github.com/jhoicas/Compras-api/internal/domain/stats"
	"github.com/jhoicas/Compras-api/internal/domain/taxonomy"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

// ──────────────────────────────────────────────────────────────────────────────
// Stubs de repositorio (en memoria; los agregados SQL se simulan con datos fijos)
// ──────────────────────────────────────────────────────────────────────────────

type stubRetailRepo struct {
	summary       repository.RetailSummary
	orderCount    int
	series        []stats.PeriodAggregate
	topProducts   []repository.ProductTotals
	nameSpending  []repository.NameSpending
	methods       []repository.MethodSpending
	lastTopLimit  int
	lastTopRankBy string
}

func (s *stubRetailRepo) Summary(context.Context) (repository.RetailSummary, error) {
	return s.summary, nil
}
func (s *stubRetailRepo) DistinctOrderCount(context.Context) (int, error) {
	return s.orderCount, nil
}
func (s *stubRetailRepo) SpendingByPeriod(context.Context, stats.Granularity) ([]stats.PeriodAggregate, error) {
	return s.series, nil
}
func (s *stubRetailRepo) TopProducts(_ context.Context, limit int, rankBy string) ([]repository.ProductTotals, error) {
	s.lastTopLimit = limit
	s.lastTopRankBy = rankBy
	return s.topProducts, nil
}
func (s *stubRetailRepo) SpendingByProduct(context.Context) ([]repository.NameSpending, error) {
	return s.nameSpending, nil
}
func (s *stubRetailRepo) SpendingByPaymentMethod(context.Context) ([]repository.MethodSpending, error) {
	return s.methods, nil
}
func (s *stubRetailRepo) List(context.Context, repository.OrderFilter) ([]entity.RetailOrder, int, error) {
	return nil, 0, nil
}

type stubDigitalRepo struct {
	summary    repository.DigitalSummary
	orderCount int
	series     []stats.PeriodAggregate
	spending   []repository.DigitalProductSpending
	subs       []repository.SubscriptionSpending
}

func (s *stubDigitalRepo) Summary(context.Context) (repository.DigitalSummary, error) {
	return s.summary, nil
}
func (s *stubDigitalRepo) DistinctOrderCount(context.Context) (int, error) {
	return s.orderCount, nil
}
func (s *stubDigitalRepo) SpendingByPeriod(context.Context, stats.Granularity) ([]stats.PeriodAggregate, error) {
	return s.series, nil
}
func (s *stubDigitalRepo) TopProducts(context.Context, int) ([]repository.ProductTotals, error) {
	return nil, nil
}
func (s *stubDigitalRepo) SpendingByProduct(context.Context) ([]repository.DigitalProductSpending, error) {
	return s.spending, nil
}
func (s *stubDigitalRepo) Subscriptions(context.Context, int) ([]repository.SubscriptionSpending, error) {
	return s.subs, nil
}
func (s *stubDigitalRepo) List(context.Context, repository.OrderFilter) ([]entity.DigitalItem, int, error) {
	return nil, 0, nil
}

type stubReturnsRepo struct {
	count  int
	months []repository.PeriodCount
}

func (s *stubReturnsRepo) Count(context.Context) (int, error) { return s.count, nil }
func (s *stubReturnsRepo) CountByMonth(context.Context) ([]repository.PeriodCount, error) {
	return s.months, nil
}

type stubCartRepo struct {
	summary repository.CartSummary
}

func (s *stubCartRepo) Summary(context.Context) (repository.CartSummary, error) {
	return s.summary, nil
}

func newStatsUC(retail *stubRetailRepo, digital *stubDigitalRepo, returns *stubReturnsRepo) *usecase.StatsUseCase {
	return usecase.NewStatsUseCase(
		retail, digital, returns, &stubCartRepo{},
		taxonomy.Retail(), taxonomy.Digital(),
	)
}

// ──────────────────────────────────────────────────────────────────────────────
// GetSummary
// ──────────────────────────────────────────────────────────────────────────────

func TestGetSummary_CombinaFuentes(t *testing.T) {
	retail := &stubRetailRepo{summary: repository.RetailSummary{
		Orders: 10, Spending: dec("500.00"), MinDate: "2022-03-01", MaxDate: "2023-11-20",
	}}
	digital := &stubDigitalRepo{summary: repository.DigitalSummary{
		Orders: 5, Spending: dec("49.95"), MinDate: "2021-07-15", MaxDate: "2023-06-01",
	}}

	uc := newStatsUC(retail, digital, &stubReturnsRepo{})
	got, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 15, got.TotalOrders)
	assert.True(t, got.TotalSpending.Equal(dec("549.95")))
	assert.True(t, got.AverageOrderValue.Equal(dec("36.66")), "549.95/15 redondeado a 2 decimales")
	assert.Equal(t, "2021-07-15", got.DateRange.Start, "el rango cubre ambas fuentes")
	assert.Equal(t, "2023-11-20", got.DateRange.End)
}

func TestGetSummary_SinPedidosPromedioCero(t *testing.T) {
	uc := newStatsUC(&stubRetailRepo{}, &stubDigitalRepo{}, &stubReturnsRepo{})

	got, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, got.TotalOrders)
	assert.True(t, got.AverageOrderValue.IsZero(), "sin pedidos el promedio es 0, no una división por cero")
	assert.Empty(t, got.DateRange.Start)
}

// ──────────────────────────────────────────────────────────────────────────────
// GetSpendingOverTime
// ──────────────────────────────────────────────────────────────────────────────

func TestGetSpendingOverTime_FusionaSeries(t *testing.T) {
	retail := &stubRetailRepo{series: []stats.PeriodAggregate{
		{Period: "2023-01", Spending: dec("100.00"), Orders: 2},
		{Period: "2023-02", Spending: dec("50.00"), Orders: 1},
	}}
	digital := &stubDigitalRepo{series: []stats.PeriodAggregate{
		{Period: "2023-02", Spending: dec("9.99"), Orders: 1},
	}}

	uc := newStatsUC(retail, digital, &stubReturnsRepo{})
	got, err := uc.GetSpendingOverTime(context.Background(), "monthly")
	require.NoError(t, err)

	assert.Equal(t, "monthly", got.Granularity)
	require.Equal(t, []string{"2023-01", "2023-02"}, got.Labels)
	assert.True(t, got.Spending[0].Equal(dec("100.00")))
	assert.True(t, got.Spending[1].Equal(dec("59.99")))
	assert.Equal(t, []int{2, 2}, got.OrderCounts)
}

// ──────────────────────────────────────────────────────────────────────────────
// GetTopProducts
// ──────────────────────────────────────────────────────────────────────────────

func TestGetTopProducts_AcotaLimit(t *testing.T) {
	retail := &stubRetailRepo{}
	uc := newStatsUC(retail, &stubDigitalRepo{}, &stubReturnsRepo{})

	_, err := uc.GetTopProducts(context.Background(), 0, "")
	require.NoError(t, err)
	assert.Equal(t, 20, retail.lastTopLimit, "limit 0 cae al default")

	_, err = uc.GetTopProducts(context.Background(), 9999, "quantity")
	require.NoError(t, err)
	assert.Equal(t, 200, retail.lastTopLimit, "limit excesivo se acota al máximo")
	assert.Equal(t, "quantity", retail.lastTopRankBy)
}

// ──────────────────────────────────────────────────────────────────────────────
// GetCategoryBreakdown
// ──────────────────────────────────────────────────────────────────────────────

func TestGetCategoryBreakdown_ClasificaYSuma(t *testing.T) {
	retail := &stubRetailRepo{nameSpending: []repository.NameSpending{
		{Name: "USB cable", Spending: dec("10.00")},
		{Name: "HDMI cable", Spending: dec("15.00")},
		{Name: "Kindle book light", Spending: dec("20.00")}, // "kindle" -> Electronics
		{Name: "Paquete misterioso", Spending: dec("5.00")}, // sin match -> Other
	}}

	uc := newStatsUC(retail, &stubDigitalRepo{}, &stubReturnsRepo{})
	got, err := uc.GetCategoryBreakdown(context.Background())
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "Electronics", got[0].Category, "ordenado por gasto descendente")
	assert.True(t, got[0].Spending.Equal(dec("45.00")))
	assert.Equal(t, "Other", got[1].Category)
	assert.True(t, got[1].Spending.Equal(dec("5.00")))

	// La suma de categorías reproduce el total elegible.
	var total decimal.Decimal
	for _, c := range got {
		total = total.Add(c.Spending)
	}
	assert.True(t, total.Equal(dec("50.00")))
}

// ──────────────────────────────────────────────────────────────────────────────
// GetReturnStats
// ──────────────────────────────────────────────────────────────────────────────

func TestGetReturnStats_CalculaTasa(t *testing.T) {
	retail := &stubRetailRepo{orderCount: 200}
	returns := &stubReturnsRepo{count: 7, months: []repository.PeriodCount{
		{Period: "2023-01", Count: 3},
		{Period: "2023-02", Count: 4},
	}}

	uc := newStatsUC(retail, &stubDigitalRepo{}, returns)
	got, err := uc.GetReturnStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 7, got.TotalReturns)
	assert.Equal(t, 200, got.EligibleOrders)
	assert.True(t, got.ReturnRatePct.Equal(dec("3.5")), "7/200*100")
	require.Len(t, got.ReturnsOverTime, 2)
}

func TestGetReturnStats_SinPedidosTasaCero(t *testing.T) {
	uc := newStatsUC(&stubRetailRepo{}, &stubDigitalRepo{}, &stubReturnsRepo{count: 3})

	got, err := uc.GetReturnStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, got.TotalReturns)
	assert.True(t, got.ReturnRatePct.IsZero(), "sin pedidos elegibles la tasa es 0")
}

// ──────────────────────────────────────────────────────────────────────────────
// GetDigitalVsRetail y desglose digital
// ──────────────────────────────────────────────────────────────────────────────

func TestGetDigitalVsRetail(t *testing.T) {
	retail := &stubRetailRepo{orderCount: 120, summary: repository.RetailSummary{Spending: dec("3400.00")}}
	digital := &stubDigitalRepo{orderCount: 45, summary: repository.DigitalSummary{Spending: dec("210.55")}}

	uc := newStatsUC(retail, digital, &stubReturnsRepo{})
	got, err := uc.GetDigitalVsRetail(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 120, got.Retail.Orders)
	assert.True(t, got.Retail.Spending.Equal(dec("3400.00")))
	assert.Equal(t, 45, got.Digital.Orders)
	assert.True(t, got.Digital.Spending.Equal(dec("210.55")))
}

func TestGetDigitalBreakdown_UsaDescriptorDeSuscripcion(t *testing.T) {
	digital := &stubDigitalRepo{
		spending: []repository.DigitalProductSpending{
			{Name: "Prime Video", SubscriptionInfo: "Subscription monthly", Spending: dec("14.99")},
			{Name: "The Matrix (movie)", SubscriptionInfo: "", Spending: dec("4.99")},
		},
	}

	uc := newStatsUC(&stubRetailRepo{}, digital, &stubReturnsRepo{})
	got, err := uc.GetDigitalBreakdown(context.Background())
	require.NoError(t, err)

	require.Len(t, got.Categories, 2)
	assert.Equal(t, taxonomy.CategoryPrime, got.Categories[0].Category,
		"la suscripción Prime no cae en Movies aunque el front la muestre junto al contenido")
	assert.Equal(t, "Movies", got.Categories[1].Category)
}
