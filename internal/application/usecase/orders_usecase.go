package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

// Valores fijos de las filas digitales en los listados: la exportación digital
// no trae estado de envío ni instrumento de pago, pero el front muestra ambas
// fuentes con las mismas columnas.
const (
	digitalStatus        = "Completed"
	digitalPaymentMethod = "Digital Purchase"
)

// OrdersUseCase listados filtrados y paginados de ambas fuentes.
type OrdersUseCase struct {
	retail  repository.RetailOrderRepository
	digital repository.DigitalItemRepository
}

func NewOrdersUseCase(retail repository.RetailOrderRepository, digital repository.DigitalItemRepository) *OrdersUseCase {
	return &OrdersUseCase{retail: retail, digital: digital}
}

// ListRetail una página de pedidos físicos según el filtro de la request.
func (uc *OrdersUseCase) ListRetail(ctx context.Context, req dto.OrderListRequest) (*dto.RetailOrdersPageDTO, error) {
	f := req.ToFilter()

	orders, total, err := uc.retail.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("listado retail: %w", err)
	}

	rows := make([]dto.RetailOrderDTO, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, dto.RetailOrderDTO{
			OrderID:       o.OrderID,
			OrderDate:     o.OrderDate,
			ProductName:   o.ProductName,
			TotalOwed:     o.TotalOwed,
			Quantity:      o.Quantity,
			Status:        o.Status,
			PaymentMethod: o.PaymentMethod,
			ASIN:          o.ASIN,
		})
	}

	return &dto.RetailOrdersPageDTO{
		Orders:     rows,
		Pagination: dto.NewPagination(total, f.Page, f.Limit),
	}, nil
}

// ListDigital una página de ítems digitales según el filtro de la request.
func (uc *OrdersUseCase) ListDigital(ctx context.Context, req dto.OrderListRequest) (*dto.DigitalOrdersPageDTO, error) {
	f := req.ToFilter()

	items, total, err := uc.digital.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("listado digital: %w", err)
	}

	rows := make([]dto.DigitalItemDTO, 0, len(items))
	for _, it := range items {
		rows = append(rows, dto.DigitalItemDTO{
			OrderID:          it.OrderID,
			OrderDate:        it.OrderDate,
			ProductName:      it.ProductName,
			Price:            it.Price,
			Quantity:         it.Quantity,
			SubscriptionInfo: it.SubscriptionInfo,
			Status:           digitalStatus,
			PaymentMethod:    digitalPaymentMethod,
		})
	}

	return &dto.DigitalOrdersPageDTO{
		Orders:     rows,
		Pagination: dto.NewPagination(total, f.Page, f.Limit),
	}, nil
}
