// Package usecase contiene los casos de uso de analítica e historial de
// compras. Los agregados SQL viven en los repositorios; aquí se combinan las
// fuentes retail y digital y se clasifica por categoría en memoria.
package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
	"github.com/jhoicas/Compras-api/internal/domain/stats"
	"github.com/jhoicas/Compras-api/internal/domain/taxonomy"
	"github.com/shopspring/decimal"
)

const (
	defaultTopN = 20  // productos en el ranking si el cliente no pide otro
	maxTopN     = 200 // techo del parámetro limit
	breakdownN  = 15  // productos en los desgloses por fuente
	subsTopN    = 20  // suscripciones en el desglose digital
)

// StatsUseCase agrega el historial de compras de ambas fuentes.
type StatsUseCase struct {
	retail     repository.RetailOrderRepository
	digital    repository.DigitalItemRepository
	returns    repository.ReturnsRepository
	cart       repository.CartRepository
	retailTax  taxonomy.Taxonomy
	digitalTax taxonomy.Taxonomy
}

// NewStatsUseCase construye el caso de uso con los cuatro puertos de lectura
// y las taxonomías compartidas.
func NewStatsUseCase(
	retail repository.RetailOrderRepository,
	digital repository.DigitalItemRepository,
	returns repository.ReturnsRepository,
	cart repository.CartRepository,
	retailTax, digitalTax taxonomy.Taxonomy,
) *StatsUseCase {
	return &StatsUseCase{
		retail:     retail,
		digital:    digital,
		returns:    returns,
		cart:       cart,
		retailTax:  retailTax,
		digitalTax: digitalTax,
	}
}

// GetSummary totales combinados de ambas fuentes.
//
// Dos consultas en paralelo (una por fuente); el promedio por pedido es 0
// cuando no hay pedidos, nunca una división por cero.
func (uc *StatsUseCase) GetSummary(ctx context.Context) (*dto.SummaryDTO, error) {
	type retailResult struct {
		s   repository.RetailSummary
		err error
	}
	type digitalResult struct {
		s   repository.DigitalSummary
		err error
	}

	retailCh := make(chan retailResult, 1)
	digitalCh := make(chan digitalResult, 1)

	go func() {
		s, err := uc.retail.Summary(ctx)
		retailCh <- retailResult{s, err}
	}()
	go func() {
		s, err := uc.digital.Summary(ctx)
		digitalCh <- digitalResult{s, err}
	}()

	r := <-retailCh
	d := <-digitalCh

	if r.err != nil {
		return nil, fmt.Errorf("resumen: fuente retail: %w", r.err)
	}
	if d.err != nil {
		return nil, fmt.Errorf("resumen: fuente digital: %w", d.err)
	}

	totalOrders := r.s.Orders + d.s.Orders
	totalSpending := r.s.Spending.Add(d.s.Spending)

	avg := decimal.Zero
	if totalOrders > 0 {
		avg = totalSpending.Div(decimal.NewFromInt(int64(totalOrders))).Round(2)
	}

	return &dto.SummaryDTO{
		TotalRetailOrders:    r.s.Orders,
		TotalRetailSpending:  r.s.Spending,
		TotalDigitalOrders:   d.s.Orders,
		TotalDigitalSpending: d.s.Spending,
		TotalOrders:          totalOrders,
		TotalSpending:        totalSpending,
		AverageOrderValue:    avg,
		DateRange: dto.DateRangeDTO{
			Start: minDate(r.s.MinDate, d.s.MinDate),
			End:   maxDate(r.s.MaxDate, d.s.MaxDate),
		},
	}, nil
}

// GetSpendingOverTime serie combinada retail+digital con la granularidad
// pedida. Los períodos presentes en una sola fuente aparecen igual, con la
// contribución de la otra en cero.
func (uc *StatsUseCase) GetSpendingOverTime(ctx context.Context, granularity string) (*dto.TimeSeriesDTO, error) {
	g := stats.ParseGranularity(granularity)

	type seriesResult struct {
		series []stats.PeriodAggregate
		err    error
	}
	retailCh := make(chan seriesResult, 1)
	digitalCh := make(chan seriesResult, 1)

	go func() {
		s, err := uc.retail.SpendingByPeriod(ctx, g)
		retailCh <- seriesResult{s, err}
	}()
	go func() {
		s, err := uc.digital.SpendingByPeriod(ctx, g)
		digitalCh <- seriesResult{s, err}
	}()

	r := <-retailCh
	d := <-digitalCh

	if r.err != nil {
		return nil, fmt.Errorf("serie temporal: fuente retail: %w", r.err)
	}
	if d.err != nil {
		return nil, fmt.Errorf("serie temporal: fuente digital: %w", d.err)
	}

	ts := seriesToDTO(g, stats.MergeSeries(r.series, d.series))
	return &ts, nil
}

// GetTopProducts ranking de productos retail por gasto o cantidad.
// limit fuera de rango se acota en silencio a [1, 200], default 20.
func (uc *StatsUseCase) GetTopProducts(ctx context.Context, limit int, rankBy string) ([]dto.ProductTotalsDTO, error) {
	if limit <= 0 {
		limit = defaultTopN
	}
	if limit > maxTopN {
		limit = maxTopN
	}

	products, err := uc.retail.TopProducts(ctx, limit, rankBy)
	if err != nil {
		return nil, fmt.Errorf("top productos: %w", err)
	}
	return productsToDTO(products), nil
}

// GetCategoryBreakdown gasto retail por categoría. La clasificación corre en
// memoria sobre el agregado por nombre: cada producto cuenta en exactamente
// una categoría y la suma de categorías reproduce el total elegible.
func (uc *StatsUseCase) GetCategoryBreakdown(ctx context.Context) ([]dto.CategorySpendingDTO, error) {
	rows, err := uc.retail.SpendingByProduct(ctx)
	if err != nil {
		return nil, fmt.Errorf("desglose por categoría: %w", err)
	}

	totals := make(map[string]decimal.Decimal)
	for _, row := range rows {
		cat := uc.retailTax.Classify(row.Name)
		totals[cat] = totals[cat].Add(row.Spending)
	}
	return sortedCategories(totals), nil
}

// GetPaymentMethods gasto retail por instrumento de pago.
func (uc *StatsUseCase) GetPaymentMethods(ctx context.Context) ([]dto.PaymentMethodDTO, error) {
	rows, err := uc.retail.SpendingByPaymentMethod(ctx)
	if err != nil {
		return nil, fmt.Errorf("métodos de pago: %w", err)
	}

	out := make([]dto.PaymentMethodDTO, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.PaymentMethodDTO{Method: m.Method, Spending: m.Spending})
	}
	return out, nil
}

// GetReturnStats devoluciones totales, tasa sobre pedidos elegibles y serie
// mensual. Tasa 0 cuando no hay pedidos elegibles.
func (uc *StatsUseCase) GetReturnStats(ctx context.Context) (*dto.ReturnStatsDTO, error) {
	type countResult struct {
		n   int
		err error
	}
	type monthsResult struct {
		months []repository.PeriodCount
		err    error
	}

	returnsCh := make(chan countResult, 1)
	eligibleCh := make(chan countResult, 1)
	monthsCh := make(chan monthsResult, 1)

	go func() {
		n, err := uc.returns.Count(ctx)
		returnsCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.retail.DistinctOrderCount(ctx)
		eligibleCh <- countResult{n, err}
	}()
	go func() {
		m, err := uc.returns.CountByMonth(ctx)
		monthsCh <- monthsResult{m, err}
	}()

	ret := <-returnsCh
	eligible := <-eligibleCh
	months := <-monthsCh

	if ret.err != nil {
		return nil, fmt.Errorf("devoluciones: conteo: %w", ret.err)
	}
	if eligible.err != nil {
		return nil, fmt.Errorf("devoluciones: pedidos elegibles: %w", eligible.err)
	}
	if months.err != nil {
		return nil, fmt.Errorf("devoluciones: serie mensual: %w", months.err)
	}

	rate := decimal.Zero
	if eligible.n > 0 {
		rate = decimal.NewFromInt(int64(ret.n)).
			Div(decimal.NewFromInt(int64(eligible.n))).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	}

	overTime := make([]dto.PeriodCountDTO, 0, len(months.months))
	for _, m := range months.months {
		overTime = append(overTime, dto.PeriodCountDTO{Period: m.Period, Count: m.Count})
	}

	return &dto.ReturnStatsDTO{
		TotalReturns:    ret.n,
		EligibleOrders:  eligible.n,
		ReturnRatePct:   rate,
		ReturnsOverTime: overTime,
	}, nil
}

// GetDigitalVsRetail compara pedidos distintos y gasto de ambas fuentes.
func (uc *StatsUseCase) GetDigitalVsRetail(ctx context.Context) (*dto.DigitalVsRetailDTO, error) {
	type sourceResult struct {
		orders   int
		spending decimal.Decimal
		err      error
	}

	retailCh := make(chan sourceResult, 1)
	digitalCh := make(chan sourceResult, 1)

	go func() {
		orders, err := uc.retail.DistinctOrderCount(ctx)
		if err != nil {
			retailCh <- sourceResult{err: err}
			return
		}
		s, err := uc.retail.Summary(ctx)
		retailCh <- sourceResult{orders: orders, spending: s.Spending, err: err}
	}()
	go func() {
		orders, err := uc.digital.DistinctOrderCount(ctx)
		if err != nil {
			digitalCh <- sourceResult{err: err}
			return
		}
		s, err := uc.digital.Summary(ctx)
		digitalCh <- sourceResult{orders: orders, spending: s.Spending, err: err}
	}()

	r := <-retailCh
	d := <-digitalCh

	if r.err != nil {
		return nil, fmt.Errorf("digital vs retail: fuente retail: %w", r.err)
	}
	if d.err != nil {
		return nil, fmt.Errorf("digital vs retail: fuente digital: %w", d.err)
	}

	return &dto.DigitalVsRetailDTO{
		Retail:  dto.SourceTotalsDTO{Orders: r.orders, Spending: r.spending},
		Digital: dto.SourceTotalsDTO{Orders: d.orders, Spending: d.spending},
	}, nil
}

// GetRetailBreakdown desglose completo de la fuente retail: categorías, top
// de productos, serie mensual y métodos de pago, en paralelo.
func (uc *StatsUseCase) GetRetailBreakdown(ctx context.Context) (*dto.RetailBreakdownDTO, error) {
	type namesResult struct {
		rows []repository.NameSpending
		err  error
	}
	type productsResult struct {
		rows []repository.ProductTotals
		err  error
	}
	type seriesResult struct {
		rows []stats.PeriodAggregate
		err  error
	}
	type methodsResult struct {
		rows []repository.MethodSpending
		err  error
	}

	namesCh := make(chan namesResult, 1)
	productsCh := make(chan productsResult, 1)
	seriesCh := make(chan seriesResult, 1)
	methodsCh := make(chan methodsResult, 1)

	go func() {
		rows, err := uc.retail.SpendingByProduct(ctx)
		namesCh <- namesResult{rows, err}
	}()
	go func() {
		rows, err := uc.retail.TopProducts(ctx, breakdownN, "spending")
		productsCh <- productsResult{rows, err}
	}()
	go func() {
		rows, err := uc.retail.SpendingByPeriod(ctx, stats.Monthly)
		seriesCh <- seriesResult{rows, err}
	}()
	go func() {
		rows, err := uc.retail.SpendingByPaymentMethod(ctx)
		methodsCh <- methodsResult{rows, err}
	}()

	names := <-namesCh
	products := <-productsCh
	series := <-seriesCh
	methods := <-methodsCh

	if names.err != nil {
		return nil, fmt.Errorf("desglose retail: categorías: %w", names.err)
	}
	if products.err != nil {
		return nil, fmt.Errorf("desglose retail: top productos: %w", products.err)
	}
	if series.err != nil {
		return nil, fmt.Errorf("desglose retail: serie mensual: %w", series.err)
	}
	if methods.err != nil {
		return nil, fmt.Errorf("desglose retail: métodos de pago: %w", methods.err)
	}

	totals := make(map[string]decimal.Decimal)
	for _, row := range names.rows {
		cat := uc.retailTax.Classify(row.Name)
		totals[cat] = totals[cat].Add(row.Spending)
	}

	payments := make([]dto.PaymentMethodDTO, 0, len(methods.rows))
	for _, m := range methods.rows {
		payments = append(payments, dto.PaymentMethodDTO{Method: m.Method, Spending: m.Spending})
	}

	return &dto.RetailBreakdownDTO{
		Categories:      sortedCategories(totals),
		TopProducts:     productsToDTO(products.rows),
		MonthlySpending: seriesToDTO(stats.Monthly, series.rows),
		PaymentMethods:  payments,
	}, nil
}

// GetDigitalBreakdown desglose completo de la fuente digital. La clasificación
// usa el descriptor de suscripción además del nombre, así Prime y compañía
// caen en sus buckets propios y no en la categoría de contenido.
func (uc *StatsUseCase) GetDigitalBreakdown(ctx context.Context) (*dto.DigitalBreakdownDTO, error) {
	type spendingResult struct {
		rows []repository.DigitalProductSpending
		err  error
	}
	type productsResult struct {
		rows []repository.ProductTotals
		err  error
	}
	type seriesResult struct {
		rows []stats.PeriodAggregate
		err  error
	}
	type subsResult struct {
		rows []repository.SubscriptionSpending
		err  error
	}

	spendingCh := make(chan spendingResult, 1)
	productsCh := make(chan productsResult, 1)
	seriesCh := make(chan seriesResult, 1)
	subsCh := make(chan subsResult, 1)

	go func() {
		rows, err := uc.digital.SpendingByProduct(ctx)
		spendingCh <- spendingResult{rows, err}
	}()
	go func() {
		rows, err := uc.digital.TopProducts(ctx, breakdownN)
		productsCh <- productsResult{rows, err}
	}()
	go func() {
		rows, err := uc.digital.SpendingByPeriod(ctx, stats.Monthly)
		seriesCh <- seriesResult{rows, err}
	}()
	go func() {
		rows, err := uc.digital.Subscriptions(ctx, subsTopN)
		subsCh <- subsResult{rows, err}
	}()

	spending := <-spendingCh
	products := <-productsCh
	series := <-seriesCh
	subs := <-subsCh

	if spending.err != nil {
		return nil, fmt.Errorf("desglose digital: categorías: %w", spending.err)
	}
	if products.err != nil {
		return nil, fmt.Errorf("desglose digital: top productos: %w", products.err)
	}
	if series.err != nil {
		return nil, fmt.Errorf("desglose digital: serie mensual: %w", series.err)
	}
	if subs.err != nil {
		return nil, fmt.Errorf("desglose digital: suscripciones: %w", subs.err)
	}

	totals := make(map[string]decimal.Decimal)
	for _, row := range spending.rows {
		cat := taxonomy.ClassifyDigital(row.Name, row.SubscriptionInfo, uc.digitalTax)
		totals[cat] = totals[cat].Add(row.Spending)
	}

	subscriptions := make([]dto.SubscriptionDTO, 0, len(subs.rows))
	for _, s := range subs.rows {
		subscriptions = append(subscriptions, dto.SubscriptionDTO{
			Name:             s.Name,
			SubscriptionInfo: s.SubscriptionInfo,
			Spending:         s.Spending,
			Count:            s.Count,
		})
	}

	return &dto.DigitalBreakdownDTO{
		Categories:      sortedCategories(totals),
		TopProducts:     productsToDTO(products.rows),
		MonthlySpending: seriesToDTO(stats.Monthly, series.rows),
		Subscriptions:   subscriptions,
	}, nil
}

// GetCartSummary totales de la tabla de carrito.
func (uc *StatsUseCase) GetCartSummary(ctx context.Context) (*dto.CartSummaryDTO, error) {
	s, err := uc.cart.Summary(ctx)
	if err != nil {
		return nil, fmt.Errorf("resumen de carrito: %w", err)
	}
	return &dto.CartSummaryDTO{Items: s.Items, TotalQuantity: s.TotalQuantity}, nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

// sortedCategories ordena el mapa de totales: gasto descendente, nombre
// ascendente como desempate para que el orden sea determinista.
func sortedCategories(totals map[string]decimal.Decimal) []dto.CategorySpendingDTO {
	out := make([]dto.CategorySpendingDTO, 0, len(totals))
	for cat, spending := range totals {
		out = append(out, dto.CategorySpendingDTO{Category: cat, Spending: spending})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Spending.Equal(out[j].Spending) {
			return out[i].Spending.GreaterThan(out[j].Spending)
		}
		return out[i].Category < out[j].Category
	})
	return out
}

func productsToDTO(rows []repository.ProductTotals) []dto.ProductTotalsDTO {
	out := make([]dto.ProductTotalsDTO, 0, len(rows))
	for _, p := range rows {
		out = append(out, dto.ProductTotalsDTO{
			Name:     p.Name,
			Quantity: p.Quantity,
			Spending: p.Spending,
			Orders:   p.Orders,
		})
	}
	return out
}

// seriesToDTO despliega la serie en arreglos paralelos alineados por índice.
func seriesToDTO(g stats.Granularity, series []stats.PeriodAggregate) dto.TimeSeriesDTO {
	ts := dto.TimeSeriesDTO{
		Granularity: string(g),
		Labels:      make([]string, 0, len(series)),
		Spending:    make([]decimal.Decimal, 0, len(series)),
		OrderCounts: make([]int, 0, len(series)),
	}
	for _, p := range series {
		ts.Labels = append(ts.Labels, p.Period)
		ts.Spending = append(ts.Spending, p.Spending)
		ts.OrderCounts = append(ts.OrderCounts, p.Orders)
	}
	return ts
}

// minDate menor fecha no vacía (los "" de fuentes sin datos no cuentan).
func minDate(a, b string) string {
	if a == "" {
		return b
	}
	if b == "" || a < b {
		return a
	}
	return b
}

func maxDate(a, b string) string {
	if a > b {
		return a
	}
	return b
}
