package dto

import "github.com/mfigueroa/ventas-api/internal/domain/repository"

// PageResponse página de resultados con metadatos de conteo.
type PageResponse[T any] struct {
	Content          []T   `json:"content"`
	Number           int   `json:"number"`
	Size             int   `json:"size"`
	TotalElements    int64 `json:"totalElements"`
	TotalPages       int   `json:"totalPages"`
	NumberOfElements int   `json:"numberOfElements"`
	First            bool  `json:"first"`
	Last             bool  `json:"last"`
	Empty            bool  `json:"empty"`
}

// NewPageResponse arma la respuesta desde una página del repositorio.
func NewPageResponse[T any](p repository.Page[T]) PageResponse[T] {
	content := p.Items
	if content == nil {
		content = []T{}
	}
	totalPages := p.TotalPaginas()
	return PageResponse[T]{
		Content:          content,
		Number:           p.Pagina,
		Size:             p.Tamano,
		TotalElements:    p.Total,
		TotalPages:       totalPages,
		NumberOfElements: len(content),
		First:            p.Pagina == 0,
		Last:             p.Pagina >= totalPages-1,
		Empty:            len(content) == 0,
	}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
