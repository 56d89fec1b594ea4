package repository

import "github.com/shopspring/decimal"

// Límites de paginación para listados filtrados.
const (
	DefaultPageSize = 100
	MaxPageSize     = 500
)

// OrderFilter criterios validados de un listado filtrado de pedidos.
// Los campos de texto del usuario (Category, fechas) solo se usan como
// valores enlazados; SortBy/SortOrder se resuelven contra whitelists en el
// adaptador de persistencia y jamás se interpolan en el SQL.
type OrderFilter struct {
	Category  string
	MinPrice  *decimal.Decimal // inclusivo; nil = sin cota
	MaxPrice  *decimal.Decimal // inclusivo; nil = sin cota
	StartDate string           // inclusivo, ISO-8601; "" = sin cota
	EndDate   string           // inclusivo, ISO-8601; "" = sin cota
	SortBy    string
	SortOrder string // "asc" | "desc"; otro valor cae a desc
	Page      int
	Limit     int
}

// Normalize acota página y tamaño de página a rangos válidos.
// Valores fuera de rango se corrigen en silencio (nunca son error de usuario).
func (f *OrderFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = DefaultPageSize
	}
	if f.Limit > MaxPageSize {
		f.Limit = MaxPageSize
	}
}

// Offset desplazamiento de la página actual (0-based) para LIMIT/OFFSET.
func (f OrderFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}
