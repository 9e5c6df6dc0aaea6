package repository

import (
	"context"

	"github.com/mfigueroa/ventas-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// VentaRepository define el puerto de persistencia para Venta.
// Las ventas leídas traen Productos con solo el ID cargado, en el orden original.
type VentaRepository interface {
	// Create persiste la venta y sus líneas en venta_productos.
	Create(ctx context.Context, venta *entity.Venta) error
	GetByID(ctx context.Context, id int64) (*entity.Venta, error)
	List(ctx context.Context) ([]*entity.Venta, error)
	ListByCliente(ctx context.Context, clienteID int64) ([]*entity.Venta, error)
	ListByProducto(ctx context.Context, productoID int64) ([]*entity.Venta, error)
	// TotalByCliente suma de Total de las ventas del cliente (0 si no tiene).
	TotalByCliente(ctx context.Context, clienteID int64) (decimal.Decimal, error)
	// Delete devuelve la cantidad de filas afectadas.
	Delete(ctx context.Context, id int64) (int64, error)
	// UpdateCliente reasigna el cliente; no hace nada si la venta no existe.
	UpdateCliente(ctx context.Context, ventaID, clienteID int64) error
}
