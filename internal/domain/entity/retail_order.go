package entity

import "github.com/shopspring/decimal"

// RetailOrder línea de pedido físico tal como la expone la API de listados.
// Los registros se ingieren una vez desde la exportación CSV y son inmutables;
// este struct es la proyección de lectura (los campos NULL llegan como "").
type RetailOrder struct {
	OrderID       string
	OrderDate     string // ISO-8601 tal como viene en la exportación; ordenable lexicográficamente
	ProductName   string
	TotalOwed     decimal.Decimal
	Quantity      int
	Status        string // "Closed", "Cancelled", etc.
	PaymentMethod string
	ASIN          string
}
