// Package stats contiene la lógica pura de agregación temporal.
package stats

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Granularity período de agrupación de las series temporales.
type Granularity string

const (
	Monthly Granularity = "monthly" // etiquetas "YYYY-MM"
	Yearly  Granularity = "yearly"  // etiquetas "YYYY"
)

// ParseGranularity normaliza el parámetro de granularidad; valores
// desconocidos caen a Monthly (los parámetros malformados se corrigen,
// nunca se rechazan).
func ParseGranularity(s string) Granularity {
	if Granularity(s) == Yearly {
		return Yearly
	}
	return Monthly
}

// PeriodAggregate un bucket de la serie: etiqueta de período, gasto acumulado
// y número de pedidos distintos. Las etiquetas son strings de calendario de
// ancho fijo ("YYYY-MM" o "YYYY"), por construcción el orden lexicográfico
// coincide con el cronológico; cualquier otro formato de etiqueta necesitaría
// un comparador explícito.
type PeriodAggregate struct {
	Period   string
	Spending decimal.Decimal
	Orders   int
}

// MergeSeries combina dos series por etiqueta de período con semántica de
// unión externa: un período presente en una sola serie aparece en el
// resultado con la contribución de la otra en cero; presente en ambas, se
// suman gasto y conteo. El resultado queda ordenado ascendente por etiqueta.
// Series vacías son válidas: MergeSeries(nil, b) devuelve b ordenada.
func MergeSeries(a, b []PeriodAggregate) []PeriodAggregate {
	byPeriod := make(map[string]PeriodAggregate, len(a)+len(b))
	for _, s := range [2][]PeriodAggregate{a, b} {
		for _, p := range s {
			acc := byPeriod[p.Period]
			acc.Period = p.Period
			acc.Spending = acc.Spending.Add(p.Spending)
			acc.Orders += p.Orders
			byPeriod[p.Period] = acc
		}
	}

	merged := make([]PeriodAggregate, 0, len(byPeriod))
	for _, p := range byPeriod {
		merged = append(merged, p)
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].Period < merged[j].Period })
	return merged
}
