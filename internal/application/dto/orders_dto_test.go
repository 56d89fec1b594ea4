package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Compras-api/internal/application/dto"
)

func TestOrderListRequest_ToFilter(t *testing.T) {
	req := dto.OrderListRequest{
		Category:  "Electronics",
		MinPrice:  "10.50",
		MaxPrice:  "99.99",
		StartDate: "2023-01-01",
		EndDate:   "2023-12-31",
		SortBy:    "total_owed",
		SortOrder: "asc",
		Page:      2,
		Limit:     50,
	}

	f := req.ToFilter()

	assert.Equal(t, "Electronics", f.Category)
	require.NotNil(t, f.MinPrice)
	assert.Equal(t, "10.5", f.MinPrice.String())
	require.NotNil(t, f.MaxPrice)
	assert.Equal(t, 2, f.Page)
	assert.Equal(t, 50, f.Limit)
	assert.Equal(t, 50, f.Offset(), "(page-1)*limit")
}

func TestOrderListRequest_PreciosMalformadosSeIgnoran(t *testing.T) {
	req := dto.OrderListRequest{MinPrice: "diez", MaxPrice: "$20"}

	f := req.ToFilter()

	assert.Nil(t, f.MinPrice, "precio ilegible se ignora, no es error")
	assert.Nil(t, f.MaxPrice)
	assert.Equal(t, 1, f.Page, "defaults aplicados por Normalize")
	assert.Equal(t, 100, f.Limit)
}
