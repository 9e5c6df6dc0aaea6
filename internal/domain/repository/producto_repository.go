package repository

import (
	"context"

	"github.com/mfigueroa/ventas-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ProductoRepository define el puerto de persistencia para Producto.
type ProductoRepository interface {
	Create(ctx context.Context, producto *entity.Producto) error
	GetByID(ctx context.Context, id int64) (*entity.Producto, error)
	List(ctx context.Context) ([]*entity.Producto, error)
	// ListByPrecioMax productos con precio <= max.
	ListByPrecioMax(ctx context.Context, max decimal.Decimal) ([]*entity.Producto, error)
	// ListEnStock productos con stock > 0.
	ListEnStock(ctx context.Context) ([]*entity.Producto, error)
	// Update devuelve domain.ErrNotFound si el ID no existe.
	Update(ctx context.Context, producto *entity.Producto) error
	// UpdatePrecio devuelve la cantidad de filas afectadas.
	UpdatePrecio(ctx context.Context, id int64, precio decimal.Decimal) (int64, error)
	Delete(ctx context.Context, id int64) (*entity.Producto, error)

	// Consultas paginadas. Un Sort.Campo desconocido devuelve domain.ErrInvalidInput.
	ListPaged(ctx context.Context, page PageRequest) (Page[*entity.Producto], error)
	ListByPrecioRange(ctx context.Context, min, max decimal.Decimal, page PageRequest) (Page[*entity.Producto], error)
	SearchByNombre(ctx context.Context, nombre string, page PageRequest) (Page[*entity.Producto], error)
}
