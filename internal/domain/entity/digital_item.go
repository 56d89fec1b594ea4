package entity

import "github.com/shopspring/decimal"

// DigitalItem línea de pedido digital (compras Kindle, Prime Video, apps, suscripciones).
// SubscriptionInfo queda vacío cuando la exportación trae "Not Applicable" o NULL.
type DigitalItem struct {
	OrderID          string
	OrderDate        string
	ProductName      string
	Price            decimal.Decimal
	Quantity         int
	SubscriptionInfo string
}
