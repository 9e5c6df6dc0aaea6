package mapper

import (
	"context"
	"fmt"

	"github.com/mfigueroa/ventas-api/internal/application/dto"
	"github.com/mfigueroa/ventas-api/internal/domain"
	"github.com/mfigueroa/ventas-api/internal/domain/entity"
	"github.com/mfigueroa/ventas-api/internal/domain/repository"
)

// VentaMapper es el único mapper con colaboradores: el DTO referencia cliente y
// productos por ID y la entidad necesita los registros resueltos.
type VentaMapper struct {
	clientes  repository.ClienteRepository
	productos repository.ProductoRepository
}

// NewVentaMapper construye el mapper con los repositorios de consulta.
func NewVentaMapper(clientes repository.ClienteRepository, productos repository.ProductoRepository) *VentaMapper {
	return &VentaMapper{clientes: clientes, productos: productos}
}

// ToEntity resuelve cliente y productos y calcula el total.
// El Total del DTO se ignora. Un ID inexistente devuelve domain.ErrNotFound.
func (m *VentaMapper) ToEntity(ctx context.Context, in dto.VentaDTO) (*entity.Venta, error) {
	cliente, err := m.clientes.GetByID(ctx, in.ClienteID)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, fmt.Errorf("cliente %d: %w", in.ClienteID, domain.ErrNotFound)
	}
	productos := make([]*entity.Producto, 0, len(in.ProductosID))
	for _, id := range in.ProductosID {
		p, err := m.productos.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, fmt.Errorf("producto %d: %w", id, domain.ErrNotFound)
		}
		productos = append(productos, p)
	}
	return &entity.Venta{
		ID:        in.ID,
		ClienteID: cliente.ID,
		Cliente:   cliente,
		Productos: productos,
		Total:     entity.CalcularTotal(productos),
	}, nil
}

// VentaToDTO no requiere consultas: usa los IDs ya cargados.
func VentaToDTO(v *entity.Venta) dto.VentaDTO {
	return dto.VentaDTO{
		ID:          v.ID,
		ClienteID:   v.ClienteID,
		ProductosID: v.ProductoIDs(),
		Total:       v.Total.InexactFloat64(),
	}
}

// VentasToDTO mapea una lista; nunca devuelve nil.
func VentasToDTO(list []*entity.Venta) []dto.VentaDTO {
	out := make([]dto.VentaDTO, 0, len(list))
	for _, v := range list {
		out = append(out, VentaToDTO(v))
	}
	return out
}
