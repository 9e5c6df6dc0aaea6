// Package mapper convierte entidades de dominio a DTOs y viceversa.
package mapper

import (
	"github.com/mfigueroa/ventas-api/internal/application/dto"
	"github.com/mfigueroa/ventas-api/internal/domain/entity"
)

// ClienteToDTO copia los campos del cliente al DTO.
func ClienteToDTO(c *entity.Cliente) dto.ClienteDTO {
	return dto.ClienteDTO{ID: c.ID, Nombre: c.Nombre, Email: c.Email}
}

// ClienteFromDTO construye la entidad desde el DTO (conserva el ID si viene).
func ClienteFromDTO(in dto.ClienteDTO) *entity.Cliente {
	return &entity.Cliente{ID: in.ID, Nombre: in.Nombre, Email: in.Email}
}

// ClientesToDTO mapea una lista; nunca devuelve nil.
func ClientesToDTO(list []*entity.Cliente) []dto.ClienteDTO {
	out := make([]dto.ClienteDTO, 0, len(list))
	for _, c := range list {
		out = append(out, ClienteToDTO(c))
	}
	return out
}
