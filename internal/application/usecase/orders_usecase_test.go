package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/application/usecase"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

// pagingRetailRepo simula una tabla de n pedidos y aplica LIMIT/OFFSET real
// para verificar la contabilidad de paginación de punta a punta.
type pagingRetailRepo struct {
	stubRetailRepo
	rows       []entity.RetailOrder
	lastFilter repository.OrderFilter
}

func (s *pagingRetailRepo) List(_ context.Context, f repository.OrderFilter) ([]entity.RetailOrder, int, error) {
	s.lastFilter = f
	total := len(s.rows)
	start := f.Offset()
	if start >= total {
		return nil, total, nil
	}
	end := start + f.Limit
	if end > total {
		end = total
	}
	return s.rows[start:end], total, nil
}

func makeRows(n int) []entity.RetailOrder {
	rows := make([]entity.RetailOrder, n)
	for i := range rows {
		rows[i] = entity.RetailOrder{OrderID: fmt.Sprintf("ORD-%03d", i+1)}
	}
	return rows
}

func TestListRetail_PaginacionCeil(t *testing.T) {
	// ──────────────────────────────────────────────
	// 7 filas con páginas de 3: páginas de 3, 3 y 1;
	// total_pages = ceil(7/3) = 3
	// ──────────────────────────────────────────────
	repo := &pagingRetailRepo{rows: makeRows(7)}
	uc := usecase.NewOrdersUseCase(repo, &stubDigitalRepo{})

	sizes := []int{}
	for page := 1; page <= 3; page++ {
		got, err := uc.ListRetail(context.Background(), dto.OrderListRequest{Page: page, Limit: 3})
		require.NoError(t, err)
		sizes = append(sizes, len(got.Orders))
		assert.Equal(t, 7, got.Total)
		assert.Equal(t, 3, got.TotalPages)
		assert.Equal(t, page, got.Page)
	}
	assert.Equal(t, []int{3, 3, 1}, sizes, "la última página viene corta, no rellena")
}

func TestListRetail_PaginaMasAllaDelFinal(t *testing.T) {
	repo := &pagingRetailRepo{rows: makeRows(7)}
	uc := usecase.NewOrdersUseCase(repo, &stubDigitalRepo{})

	got, err := uc.ListRetail(context.Background(), dto.OrderListRequest{Page: 4, Limit: 3})
	require.NoError(t, err)

	assert.Empty(t, got.Orders, "página más allá del final: cero filas, sin error")
	assert.Equal(t, 7, got.Total, "el total real se conserva")
	assert.Equal(t, 3, got.TotalPages)
}

func TestListRetail_NormalizaParametros(t *testing.T) {
	repo := &pagingRetailRepo{rows: makeRows(2)}
	uc := usecase.NewOrdersUseCase(repo, &stubDigitalRepo{})

	_, err := uc.ListRetail(context.Background(), dto.OrderListRequest{Page: -3, Limit: 0})
	require.NoError(t, err)

	assert.Equal(t, 1, repo.lastFilter.Page, "página fuera de rango se acota a 1")
	assert.Equal(t, repository.DefaultPageSize, repo.lastFilter.Limit)

	_, err = uc.ListRetail(context.Background(), dto.OrderListRequest{Page: 1, Limit: 9999})
	require.NoError(t, err)
	assert.Equal(t, repository.MaxPageSize, repo.lastFilter.Limit)
}

func TestListDigital_CamposFijos(t *testing.T) {
	digital := &pagingDigitalRepo{rows: []entity.DigitalItem{
		{OrderID: "D-001", ProductName: "Kindle Edition: Dune"},
	}}
	uc := usecase.NewOrdersUseCase(&pagingRetailRepo{}, digital)

	got, err := uc.ListDigital(context.Background(), dto.OrderListRequest{})
	require.NoError(t, err)

	require.Len(t, got.Orders, 1)
	assert.Equal(t, "Completed", got.Orders[0].Status)
	assert.Equal(t, "Digital Purchase", got.Orders[0].PaymentMethod)
}

type pagingDigitalRepo struct {
	stubDigitalRepo
	rows []entity.DigitalItem
}

func (s *pagingDigitalRepo) List(_ context.Context, f repository.OrderFilter) ([]entity.DigitalItem, int, error) {
	return s.rows, len(s.rows), nil
}
