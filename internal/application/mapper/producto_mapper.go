package mapper

import (
	"github.com/mfigueroa/ventas-api/internal/application/dto"
	"github.com/mfigueroa/ventas-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ProductoToDTO precio viaja como float64 en el wire.
func ProductoToDTO(p *entity.Producto) dto.ProductoDTO {
	return dto.ProductoDTO{
		ID:     p.ID,
		Nombre: p.Nombre,
		Precio: p.Precio.InexactFloat64(),
		Stock:  p.Stock,
	}
}

// ProductoFromDTO construye la entidad desde el DTO.
func ProductoFromDTO(in dto.ProductoDTO) *entity.Producto {
	return &entity.Producto{
		ID:     in.ID,
		Nombre: in.Nombre,
		Precio: decimal.NewFromFloat(in.Precio),
		Stock:  in.Stock,
	}
}

// ProductosToDTO mapea una lista; nunca devuelve nil.
func ProductosToDTO(list []*entity.Producto) []dto.ProductoDTO {
	out := make([]dto.ProductoDTO, 0, len(list))
	for _, p := range list {
		out = append(out, ProductoToDTO(p))
	}
	return out
}
