package repository

import (
	"math"
	"strings"
)

// Valores por defecto de paginación.
const (
	DefaultPagina = 0
	DefaultTamano = 5
	MaxTamano     = 100
)

// Sort criterio de ordenamiento. Campo es el nombre lógico (ej. "nombre", "precio");
// cada store lo resuelve contra sus columnas conocidas.
type Sort struct {
	Campo string
	Desc  bool
}

// NewSort construye el orden: descendente solo si orden es "desc" (sin importar mayúsculas).
func NewSort(campo, orden string) Sort {
	return Sort{Campo: campo, Desc: strings.EqualFold(strings.TrimSpace(orden), "desc")}
}

// PageRequest página solicitada (índice base 0).
type PageRequest struct {
	Pagina int
	Tamano int
	Sort   Sort
}

// NewPageRequest normaliza índice y tamaño: pagina < 0 -> 0, tamano <= 0 -> 5, tamano > 100 -> 100.
// pagina se acota para que Offset no desborde.
func NewPageRequest(pagina, tamano int, sort Sort) PageRequest {
	if pagina < 0 {
		pagina = DefaultPagina
	}
	if tamano <= 0 {
		tamano = DefaultTamano
	}
	if tamano > MaxTamano {
		tamano = MaxTamano
	}
	if maxPagina := math.MaxInt / tamano; pagina > maxPagina {
		pagina = maxPagina
	}
	return PageRequest{Pagina: pagina, Tamano: tamano, Sort: sort}
}

// Offset filas a saltar. Satura en math.MaxInt en lugar de desbordar.
func (p PageRequest) Offset() int {
	if p.Pagina <= 0 || p.Tamano <= 0 {
		return 0
	}
	if p.Pagina > math.MaxInt/p.Tamano {
		return math.MaxInt
	}
	return p.Pagina * p.Tamano
}

// Page porción de un resultado más el conteo total.
type Page[T any] struct {
	Items  []T
	Pagina int
	Tamano int
	Total  int64
}

// TotalPaginas número de páginas para Total elementos.
func (p Page[T]) TotalPaginas() int {
	if p.Tamano <= 0 {
		return 0
	}
	return int((p.Total + int64(p.Tamano) - 1) / int64(p.Tamano))
}

// MapPage convierte los elementos conservando los metadatos.
func MapPage[T, R any](p Page[T], fn func(T) R) Page[R] {
	items := make([]R, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, fn(it))
	}
	return Page[R]{Items: items, Pagina: p.Pagina, Tamano: p.Tamano, Total: p.Total}
}
