package postgres

import (
	"strconv"
	"strings"

	"github.com/jhoicas/Compras-api/internal/domain/repository"
	"github.com/jhoicas/Compras-api/internal/domain/taxonomy"
	"github.com/shopspring/decimal"
)

// filterBuilder acumula condiciones WHERE y sus valores enlazados con
// parámetros posicionales $1..$n. El texto del usuario entra SOLO como
// valor enlazado; los tokens estructurales (columnas, dirección de orden)
// salen únicamente de las whitelists de este archivo.
type filterBuilder struct {
	conds []string
	args  []any
}

// bind registra un valor y devuelve su placeholder posicional.
func (b *filterBuilder) bind(v any) string {
	b.args = append(b.args, v)
	return "$" + strconv.Itoa(len(b.args))
}

// add agrega una condición ya construida (sin texto de usuario).
func (b *filterBuilder) add(cond string) {
	b.conds = append(b.conds, cond)
}

// likeAny agrega "(LOWER(col) LIKE $i OR ...)" con una keyword por placeholder.
func (b *filterBuilder) likeAny(column string, keywords []string) {
	ors := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		ors = append(ors, "LOWER("+column+") LIKE "+b.bind("%"+kw+"%"))
	}
	b.add("(" + strings.Join(ors, " OR ") + ")")
}

// notLikeAll agrega "(LOWER(col) NOT LIKE $i AND ...)": el complemento de la
// unión de keywords, que materializa el bucket Other como predicado listable.
func (b *filterBuilder) notLikeAll(column string, keywords []string) {
	ands := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		ands = append(ands, "LOWER("+column+") NOT LIKE "+b.bind("%"+kw+"%"))
	}
	b.add("(" + strings.Join(ands, " AND ") + ")")
}

// where devuelve la cláusula WHERE completa.
func (b *filterBuilder) where() string {
	return strings.Join(b.conds, " AND ")
}

// applyPriceBounds agrega cotas inclusivas sobre la columna monetaria.
func (b *filterBuilder) applyPriceBounds(column string, min, max *decimal.Decimal) {
	if min != nil {
		b.add(column + " >= " + b.bind(*min))
	}
	if max != nil {
		b.add(column + " <= " + b.bind(*max))
	}
}

// applyDateBounds agrega cotas inclusivas sobre la fecha. La comparación es
// lexicográfica sobre el string ISO-8601 tal como se ingirió; solo es
// correcta porque ese formato ordena igual que el calendario.
func (b *filterBuilder) applyDateBounds(column, start, end string) {
	if start != "" {
		b.add(column + " >= " + b.bind(start))
	}
	if end != "" {
		b.add(column + " <= " + b.bind(end))
	}
}

// applyRetailCategory resuelve el selector de categoría retail:
//   - regla de la taxonomía -> OR de LIKEs sobre sus keywords
//   - "Other"               -> complemento de TODAS las keywords
//   - vacío                 -> sin restricción
//   - desconocida           -> FALSE (resultado vacío bien formado, nunca error)
func (b *filterBuilder) applyRetailCategory(tax taxonomy.Taxonomy, category string) {
	if category == "" {
		return
	}
	if rule, ok := tax.Rule(category); ok {
		b.likeAny("product_name", rule.Keywords)
		return
	}
	if category == taxonomy.CategoryOther {
		b.notLikeAll("product_name", tax.AllKeywords())
		return
	}
	b.add("FALSE")
}

// applyDigitalCategory resuelve el selector de categoría digital. Los buckets
// de suscripción no siguen el esquema genérico de substring: combinan
// predicados positivos y negativos (ej. Video Streaming excluye Prime y
// Paramount aunque el nombre contenga "video").
func (b *filterBuilder) applyDigitalCategory(digital taxonomy.Taxonomy, category string) {
	switch category {
	case "":
		return
	case taxonomy.CategoryPrime:
		b.likeAny("product_name", []string{"prime"})
	case taxonomy.CategoryParamount:
		b.likeAny("product_name", []string{"paramount", "paramount+"})
	case taxonomy.CategoryStackTV:
		b.likeAny("product_name", []string{"stacktv", "stack tv"})
	case taxonomy.CategoryVideoStreaming:
		b.likeAny("product_name", []string{"video", "streaming"})
		b.notLikeAll("product_name", []string{"prime", "paramount"})
	case taxonomy.CategoryOtherSubscriptions:
		b.add("subscription_order_info IS NOT NULL")
		b.add("subscription_order_info != 'Not Applicable'")
		b.notLikeAll("product_name", []string{"prime", "paramount", "stacktv", "stack tv"})
	case taxonomy.CategoryOtherDigital:
		b.notLikeAll("product_name", digital.AllKeywords())
		b.add("(subscription_order_info IS NULL OR subscription_order_info = 'Not Applicable')")
	default:
		if rule, ok := digital.Rule(category); ok {
			b.likeAny("product_name", rule.Keywords)
			return
		}
		b.add("FALSE")
	}
}

// Whitelists de ordenamiento: nombre público -> columna real. Cualquier valor
// fuera del mapa cae en silencio a la columna por defecto; el parámetro del
// usuario jamás se concatena al SQL.
var (
	retailSortColumns = map[string]string{
		"order_date":   "order_date",
		"product_name": "product_name",
		"total_owed":   "total_owed",
		"quantity":     "quantity",
		"order_id":     "order_id",
	}
	digitalSortColumns = map[string]string{
		"order_date":   "order_date",
		"product_name": "product_name",
		"our_price":    "our_price",
		"quantity":     "quantity_ordered",
		"order_id":     "order_id",
	}
)

const defaultSortColumn = "order_date"

// resolveSortColumn devuelve la columna real del campo público, o la de
// por defecto si no está en la whitelist.
func resolveSortColumn(whitelist map[string]string, sortBy string) string {
	if col, ok := whitelist[sortBy]; ok {
		return col
	}
	return defaultSortColumn
}

// resolveSortDir restringe la dirección a ASC/DESC; desconocida -> DESC.
func resolveSortDir(sortOrder string) string {
	if strings.EqualFold(sortOrder, "asc") {
		return "ASC"
	}
	return "DESC"
}

// orderByClause arma "columna DIRECCIÓN" solo con tokens de whitelist.
func orderByClause(whitelist map[string]string, f repository.OrderFilter) string {
	return resolveSortColumn(whitelist, f.SortBy) + " " + resolveSortDir(f.SortOrder)
}
