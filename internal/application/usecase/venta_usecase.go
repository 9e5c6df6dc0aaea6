package usecase

import (
	"context"

	"github.com/mfigueroa/ventas-api/internal/application/dto"
	"github.com/mfigueroa/ventas-api/internal/application/mapper"
	"github.com/mfigueroa/ventas-api/internal/domain/repository"
)

// VentaUseCase casos de uso para ventas.
type VentaUseCase struct {
	tx     VentaTxRunner
	ventas repository.VentaRepository
}

// NewVentaUseCase construye el caso de uso. tx se usa para crear; ventas para las lecturas.
func NewVentaUseCase(tx VentaTxRunner, ventas repository.VentaRepository) *VentaUseCase {
	return &VentaUseCase{tx: tx, ventas: ventas}
}

// Create resuelve cliente y productos, calcula el total y persiste todo en una transacción.
// Un ID inexistente devuelve domain.ErrNotFound y no se persiste nada.
func (uc *VentaUseCase) Create(ctx context.Context, in dto.VentaDTO) (*dto.VentaDTO, error) {
	in.ID = 0
	var out dto.VentaDTO
	err := uc.tx.RunVenta(ctx, func(
		clientes repository.ClienteRepository,
		productos repository.ProductoRepository,
		ventas repository.VentaRepository,
	) error {
		venta, err := mapper.NewVentaMapper(clientes, productos).ToEntity(ctx, in)
		if err != nil {
			return err
		}
		if err := ventas.Create(ctx, venta); err != nil {
			return err
		}
		out = mapper.VentaToDTO(venta)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// List lista todas las ventas.
func (uc *VentaUseCase) List(ctx context.Context) ([]dto.VentaDTO, error) {
	list, err := uc.ventas.List(ctx)
	if err != nil {
		return nil, err
	}
	return mapper.VentasToDTO(list), nil
}

// ListByCliente ventas del cliente.
func (uc *VentaUseCase) ListByCliente(ctx context.Context, clienteID int64) ([]dto.VentaDTO, error) {
	list, err := uc.ventas.ListByCliente(ctx, clienteID)
	if err != nil {
		return nil, err
	}
	return mapper.VentasToDTO(list), nil
}

// ListByProducto ventas que incluyen el producto.
func (uc *VentaUseCase) ListByProducto(ctx context.Context, productoID int64) ([]dto.VentaDTO, error) {
	list, err := uc.ventas.ListByProducto(ctx, productoID)
	if err != nil {
		return nil, err
	}
	return mapper.VentasToDTO(list), nil
}

// TotalByCliente suma de los totales del cliente.
func (uc *VentaUseCase) TotalByCliente(ctx context.Context, clienteID int64) (*dto.TotalClienteResponse, error) {
	total, err := uc.ventas.TotalByCliente(ctx, clienteID)
	if err != nil {
		return nil, err
	}
	return &dto.TotalClienteResponse{ClienteID: clienteID, Total: total.InexactFloat64()}, nil
}

// Delete true si la venta existía.
func (uc *VentaUseCase) Delete(ctx context.Context, id int64) (bool, error) {
	n, err := uc.ventas.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// UpdateCliente reasigna el cliente de la venta. No verifica que la venta exista.
func (uc *VentaUseCase) UpdateCliente(ctx context.Context, clienteID, ventaID int64) error {
	return uc.ventas.UpdateCliente(ctx, ventaID, clienteID)
}
