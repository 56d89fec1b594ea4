package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/application/usecase"
)

// OrdersHandler maneja los listados filtrados de pedidos.
type OrdersHandler struct {
	uc *usecase.OrdersUseCase
}

// NewOrdersHandler construye el handler.
func NewOrdersHandler(uc *usecase.OrdersUseCase) *OrdersHandler {
	return &OrdersHandler{uc: uc}
}

// ListRetail godoc
// @Summary      Listado paginado de pedidos físicos
// @Description  Filtra por categoría, rango de precio y fechas; ordena por
//
//	campos de whitelist. Parámetros malformados se corrigen en
//	silencio (nunca son 400).
//
// @Tags         orders
// @Produce      json
// @Param        category    query  string  false  "Nombre exacto de categoría, u Other"
// @Param        min_price   query  number  false  "Precio mínimo inclusivo"
// @Param        max_price   query  number  false  "Precio máximo inclusivo"
// @Param        start_date  query  string  false  "Fecha inicial inclusiva (YYYY-MM-DD)"
// @Param        end_date    query  string  false  "Fecha final inclusiva (YYYY-MM-DD)"
// @Param        sort_by     query  string  false  "order_date|product_name|total_owed|quantity|order_id"
// @Param        sort_order  query  string  false  "asc|desc (default desc)"
// @Param        page        query  int     false  "Página 1-based (default 1)"
// @Param        limit       query  int     false  "Tamaño de página (default 100, max 500)"
// @Success      200  {object}  dto.RetailOrdersPageDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/orders [get]
func (h *OrdersHandler) ListRetail(c *fiber.Ctx) error {
	var req dto.OrderListRequest
	if err := c.QueryParser(&req); err != nil {
		return badParams(c)
	}

	page, err := h.uc.ListRetail(c.Context(), req)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(page)
}

// ListDigital godoc
// @Summary      Listado paginado de ítems digitales
// @Description  Mismo contrato que /api/orders; sort_by=quantity y los buckets
//
//	de categoría se traducen a las columnas digitales.
//
// @Tags         orders
// @Produce      json
// @Param        category    query  string  false  "Categoría digital o bucket de suscripción"
// @Param        min_price   query  number  false  "Precio mínimo inclusivo"
// @Param        max_price   query  number  false  "Precio máximo inclusivo"
// @Param        start_date  query  string  false  "Fecha inicial inclusiva (YYYY-MM-DD)"
// @Param        end_date    query  string  false  "Fecha final inclusiva (YYYY-MM-DD)"
// @Param        sort_by     query  string  false  "order_date|product_name|our_price|quantity|order_id"
// @Param        sort_order  query  string  false  "asc|desc (default desc)"
// @Param        page        query  int     false  "Página 1-based (default 1)"
// @Param        limit       query  int     false  "Tamaño de página (default 100, max 500)"
// @Success      200  {object}  dto.DigitalOrdersPageDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/digital-orders [get]
func (h *OrdersHandler) ListDigital(c *fiber.Ctx) error {
	var req dto.OrderListRequest
	if err := c.QueryParser(&req); err != nil {
		return badParams(c)
	}

	page, err := h.uc.ListDigital(c.Context(), req)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(page)
}
