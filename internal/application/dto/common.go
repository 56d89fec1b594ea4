package dto

// Pagination metadatos de página en respuestas de listados.
type Pagination struct {
	Total      int `json:"total"`       // coincidencias sin paginar
	Page       int `json:"page"`        // 1-based
	Limit      int `json:"limit"`       // tamaño de página efectivo
	TotalPages int `json:"total_pages"` // ceil(total/limit); 0 si no hay filas
}

// NewPagination calcula los metadatos de página. La última página puede venir
// corta; una página más allá del final devuelve cero filas pero conserva el
// total real.
func NewPagination(total, page, limit int) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Pagination{Total: total, Page: page, Limit: limit, TotalPages: totalPages}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
