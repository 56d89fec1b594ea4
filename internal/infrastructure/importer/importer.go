// Package importer carga las exportaciones CSV del historial de compras en
// PostgreSQL. Cada fuente se reemplaza completa (TRUNCATE + COPY): la
// importación es idempotente y re-ejecutable sobre una exportación nueva.
package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Compras-api/pkg/logger"
)

// Counts filas importadas por fuente.
type Counts struct {
	RetailOrders int64
	DigitalItems int64
	Returns      int64
	CartItems    int64
}

// Importer lee los CSV de una exportación y los copia a la base.
type Importer struct {
	db  *pgxpool.Pool
	log *logger.Logger
}

func New(db *pgxpool.Pool, log *logger.Logger) *Importer {
	return &Importer{db: db, log: log}
}

// Run importa las cuatro fuentes desde dataDir. Una fuente ausente se reporta
// y se salta; solo los errores de base o de CSV ilegible abortan.
func (im *Importer) Run(ctx context.Context, dataDir string) (Counts, error) {
	var c Counts
	var err error

	c.RetailOrders, err = im.importRetailOrders(ctx, dataDir)
	if err != nil {
		return c, fmt.Errorf("importar pedidos retail: %w", err)
	}
	c.DigitalItems, err = im.importDigitalItems(ctx, dataDir)
	if err != nil {
		return c, fmt.Errorf("importar ítems digitales: %w", err)
	}
	c.Returns, err = im.importReturns(ctx, dataDir)
	if err != nil {
		return c, fmt.Errorf("importar devoluciones: %w", err)
	}
	c.CartItems, err = im.importCartItems(ctx, dataDir)
	if err != nil {
		return c, fmt.Errorf("importar carrito: %w", err)
	}
	return c, nil
}

// csvSource un CSV abierto con su header indexado por nombre de columna.
type csvSource struct {
	file   *os.File
	reader *csv.Reader
	index  map[string]int
}

// openSource abre el CSV y mapea el header. (nil, nil) si el archivo no existe.
func openSource(path string) (*csvSource, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("abrir %s: %w", path, err)
	}

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // las exportaciones traen filas con columnas de menos

	header, err := r.Read()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("leer header de %s: %w", path, err)
	}
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}
	return &csvSource{file: f, reader: r, index: index}, nil
}

func (s *csvSource) Close() { s.file.Close() }

// field devuelve la celda de la columna nombrada, o "" si la columna no
// existe en esta exportación o la fila viene corta.
func (s *csvSource) field(record []string, column string) string {
	i, ok := s.index[column]
	if !ok || i >= len(record) {
		return ""
	}
	return record[i]
}

// replaceAll trunca la tabla y copia las filas en una sola transacción:
// o entra la exportación completa o no cambia nada.
func (im *Importer) replaceAll(ctx context.Context, table string, columns []string, rows [][]any) (int64, error) {
	tx, err := im.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "TRUNCATE "+table); err != nil {
		return 0, fmt.Errorf("truncate %s: %w", table, err)
	}
	n, err := tx.CopyFrom(ctx, pgx.Identifier{table}, columns, pgx.CopyFromRows(rows))
	if err != nil {
		return 0, fmt.Errorf("copy %s: %w", table, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return n, nil
}

// readRows itera el CSV y arma las filas con build; las filas ilegibles se
// loguean y se saltan, igual que una celda corrupta no aborta la fila.
func (im *Importer) readRows(src *csvSource, build func(record []string) []any) ([][]any, error) {
	var rows [][]any
	for {
		record, err := src.reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			if _, ok := err.(*csv.ParseError); ok {
				im.log.Warn().Err(err).Msg("fila CSV ilegible, se salta")
				continue
			}
			return nil, err
		}
		rows = append(rows, build(record))
	}
	return rows, nil
}

func (im *Importer) importRetailOrders(ctx context.Context, dataDir string) (int64, error) {
	path := filepath.Join(dataDir, "Retail.OrderHistory.1", "Retail.OrderHistory.1.csv")
	src, err := openSource(path)
	if err != nil {
		return 0, err
	}
	if src == nil {
		im.log.Warn().Str("path", path).Msg("exportación de pedidos retail no encontrada")
		return 0, nil
	}
	defer src.Close()

	columns := []string{
		"website", "order_id", "order_date", "purchase_order_number", "currency",
		"unit_price", "unit_price_tax", "shipping_charge", "total_discounts", "total_owed",
		"shipment_item_subtotal", "shipment_item_subtotal_tax", "asin", "product_condition",
		"quantity", "payment_instrument_type", "order_status", "shipment_status", "ship_date",
		"shipping_option", "shipping_address", "billing_address", "carrier_name_tracking",
		"product_name", "gift_message", "gift_sender_name", "gift_recipient_contact",
		"item_serial_number",
	}
	rows, err := im.readRows(src, func(rec []string) []any {
		return []any{
			CleanText(src.field(rec, "Website")),
			CleanText(src.field(rec, "Order ID")),
			CleanText(src.field(rec, "Order Date")),
			CleanText(src.field(rec, "Purchase Order Number")),
			CleanText(src.field(rec, "Currency")),
			CleanNumeric(src.field(rec, "Unit Price")),
			CleanNumeric(src.field(rec, "Unit Price Tax")),
			CleanNumeric(src.field(rec, "Shipping Charge")),
			CleanNumeric(src.field(rec, "Total Discounts")),
			CleanNumeric(src.field(rec, "Total Owed")),
			CleanNumeric(src.field(rec, "Shipment Item Subtotal")),
			CleanNumeric(src.field(rec, "Shipment Item Subtotal Tax")),
			CleanText(src.field(rec, "ASIN")),
			CleanText(src.field(rec, "Product Condition")),
			CleanInt(src.field(rec, "Quantity")),
			CleanText(src.field(rec, "Payment Instrument Type")),
			CleanText(src.field(rec, "Order Status")),
			CleanText(src.field(rec, "Shipment Status")),
			CleanText(src.field(rec, "Ship Date")),
			CleanText(src.field(rec, "Shipping Option")),
			CleanText(src.field(rec, "Shipping Address")),
			CleanText(src.field(rec, "Billing Address")),
			CleanText(src.field(rec, "Carrier Name & Tracking Number")),
			CleanText(src.field(rec, "Product Name")),
			CleanText(src.field(rec, "Gift Message")),
			CleanText(src.field(rec, "Gift Sender Name")),
			CleanText(src.field(rec, "Gift Recipient Contact Details")),
			CleanText(src.field(rec, "Item Serial Number")),
		}
	})
	if err != nil {
		return 0, err
	}

	n, err := im.replaceAll(ctx, "retail_orders", columns, rows)
	if err != nil {
		return 0, err
	}
	im.log.Info().Int64("rows", n).Msg("pedidos retail importados")
	return n, nil
}

func (im *Importer) importDigitalItems(ctx context.Context, dataDir string) (int64, error) {
	path := filepath.Join(dataDir, "Digital-Ordering.1", "Digital Items.csv")
	src, err := openSource(path)
	if err != nil {
		return 0, err
	}
	if src == nil {
		im.log.Warn().Str("path", path).Msg("exportación de ítems digitales no encontrada")
		return 0, nil
	}
	defer src.Close()

	columns := []string{
		"asin", "product_name", "order_id", "digital_order_item_id", "order_date",
		"quantity_ordered", "our_price", "our_price_currency", "fulfilled_date",
		"is_fulfilled", "seller_of_record", "gift_item", "subscription_order_info",
	}
	rows, err := im.readRows(src, func(rec []string) []any {
		return []any{
			CleanText(src.field(rec, "ASIN")),
			CleanText(src.field(rec, "ProductName")),
			CleanText(src.field(rec, "OrderId")),
			CleanText(src.field(rec, "DigitalOrderItemId")),
			CleanText(src.field(rec, "OrderDate")),
			CleanInt(src.field(rec, "QuantityOrdered")),
			CleanNumeric(src.field(rec, "OurPrice")),
			CleanText(src.field(rec, "OurPriceCurrencyCode")),
			CleanText(src.field(rec, "FulfilledDate")),
			CleanText(src.field(rec, "IsFulfilled")),
			CleanText(src.field(rec, "SellerOfRecord")),
			CleanText(src.field(rec, "GiftItem")),
			CleanText(src.field(rec, "SubscriptionOrderInfoList")),
		}
	})
	if err != nil {
		return 0, err
	}

	n, err := im.replaceAll(ctx, "digital_items", columns, rows)
	if err != nil {
		return 0, err
	}
	im.log.Info().Int64("rows", n).Msg("ítems digitales importados")
	return n, nil
}

func (im *Importer) importReturns(ctx context.Context, dataDir string) (int64, error) {
	path := filepath.Join(dataDir, "Retail.CustomerReturns.1", "Retail.CustomerReturns.1.csv")
	src, err := openSource(path)
	if err != nil {
		return 0, err
	}
	if src == nil {
		im.log.Warn().Str("path", path).Msg("exportación de devoluciones no encontrada")
		return 0, nil
	}
	defer src.Close()

	columns := []string{
		"return_authorization_id", "tracking_id", "return_creation_date",
		"order_id", "return_ship_option", "carrier_package_id",
	}
	rows, err := im.readRows(src, func(rec []string) []any {
		return []any{
			CleanText(src.field(rec, "Return Authorization Id")),
			CleanText(src.field(rec, "Tracking Id")),
			CleanText(src.field(rec, "Return Creation Date")),
			CleanText(src.field(rec, "Order Id")),
			CleanText(src.field(rec, "Return Ship Option")),
			CleanText(src.field(rec, "Carrier Package Id")),
		}
	})
	if err != nil {
		return 0, err
	}

	n, err := im.replaceAll(ctx, "returns", columns, rows)
	if err != nil {
		return 0, err
	}
	im.log.Info().Int64("rows", n).Msg("devoluciones importadas")
	return n, nil
}

func (im *Importer) importCartItems(ctx context.Context, dataDir string) (int64, error) {
	path := filepath.Join(dataDir, "Retail.CartItems.1", "Retail.CartItems.1.csv")
	src, err := openSource(path)
	if err != nil {
		return 0, err
	}
	if src == nil {
		im.log.Warn().Str("path", path).Msg("exportación de carrito no encontrada")
		return 0, nil
	}
	defer src.Close()

	columns := []string{
		"date_added_to_cart", "source", "asin", "product_name", "cart_domain",
		"cart_list", "quantity", "one_click_buyable", "to_be_gift_wrapped",
		"prime_subscription", "pantry", "add_on",
	}
	rows, err := im.readRows(src, func(rec []string) []any {
		return []any{
			CleanText(src.field(rec, "DateAddedToCart")),
			CleanText(src.field(rec, "Source")),
			CleanText(src.field(rec, "ASIN")),
			CleanText(src.field(rec, "ProductName")),
			CleanText(src.field(rec, "CartDomain")),
			CleanText(src.field(rec, "CartList")),
			CleanInt(src.field(rec, "Quantity")),
			CleanText(src.field(rec, "OneClickBuyable")),
			CleanText(src.field(rec, "ToBeGiftWrapped")),
			CleanText(src.field(rec, "PrimeSubscription")),
			CleanText(src.field(rec, "Pantry")),
			CleanText(src.field(rec, "AddOn")),
		}
	})
	if err != nil {
		return 0, err
	}

	n, err := im.replaceAll(ctx, "cart_items", columns, rows)
	if err != nil {
		return 0, err
	}
	im.log.Info().Int64("rows", n).Msg("ítems de carrito importados")
	return n, nil
}
