package dto

import (
	"github.com/jhoicas/Compras-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// ── Query parameters ──────────────────────────────────────────────────────────

// OrderListRequest parámetros de GET /api/orders y GET /api/digital-orders.
// Todo es opcional; los valores malformados se corrigen en silencio (precio
// ilegible se ignora, página fuera de rango se acota) en vez de rechazarse.
type OrderListRequest struct {
	Category  string `query:"category"`
	MinPrice  string `query:"min_price"`
	MaxPrice  string `query:"max_price"`
	StartDate string `query:"start_date"` // YYYY-MM-DD inclusivo
	EndDate   string `query:"end_date"`   // YYYY-MM-DD inclusivo
	SortBy    string `query:"sort_by"`    // fuera de whitelist cae a order_date
	SortOrder string `query:"sort_order"` // asc|desc; otro valor cae a desc
	Page      int    `query:"page"`       // 1-based
	Limit     int    `query:"limit"`      // default 100, max 500
}

// ToFilter traduce la request al filtro de dominio ya normalizado.
func (r OrderListRequest) ToFilter() repository.OrderFilter {
	f := repository.OrderFilter{
		Category:  r.Category,
		MinPrice:  parsePrice(r.MinPrice),
		MaxPrice:  parsePrice(r.MaxPrice),
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		SortBy:    r.SortBy,
		SortOrder: r.SortOrder,
		Page:      r.Page,
		Limit:     r.Limit,
	}
	f.Normalize()
	return f
}

func parsePrice(s string) *decimal.Decimal {
	if s == "" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	return &d
}

// ── Respuestas ────────────────────────────────────────────────────────────────

// RetailOrderDTO fila de pedido físico en el listado.
type RetailOrderDTO struct {
	OrderID       string          `json:"order_id"`
	OrderDate     string          `json:"order_date"`
	ProductName   string          `json:"product_name"`
	TotalOwed     decimal.Decimal `json:"total_owed"`
	Quantity      int             `json:"quantity"`
	Status        string          `json:"status"`
	PaymentMethod string          `json:"payment_method"`
	ASIN          string          `json:"asin"`
}

// DigitalItemDTO fila de ítem digital en el listado. Status y PaymentMethod
// son fijos: las compras digitales no tienen ciclo de envío ni instrumento en
// la exportación, pero el front muestra ambas fuentes con las mismas columnas.
type DigitalItemDTO struct {
	OrderID          string          `json:"order_id"`
	OrderDate        string          `json:"order_date"`
	ProductName      string          `json:"product_name"`
	Price            decimal.Decimal `json:"price"`
	Quantity         int             `json:"quantity"`
	SubscriptionInfo string          `json:"subscription_info,omitempty"`
	Status           string          `json:"status"`
	PaymentMethod    string          `json:"payment_method"`
}

// RetailOrdersPageDTO página de pedidos físicos.
type RetailOrdersPageDTO struct {
	Orders []RetailOrderDTO `json:"orders"`
	Pagination
}

// DigitalOrdersPageDTO página de ítems digitales.
type DigitalOrdersPageDTO struct {
	Orders []DigitalItemDTO `json:"orders"`
	Pagination
}
