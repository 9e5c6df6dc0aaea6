package usecase

import (
	"context"
	"fmt"

	"github.com/mfigueroa/ventas-api/internal/application/dto"
	"github.com/mfigueroa/ventas-api/internal/application/mapper"
	"github.com/mfigueroa/ventas-api/internal/domain"
	"github.com/mfigueroa/ventas-api/internal/domain/repository"
)

// ClienteUseCase casos de uso CRUD para clientes.
type ClienteUseCase struct {
	repo repository.ClienteRepository
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo}
}

// Create crea un cliente. El ID de entrada se ignora (lo genera el store).
func (uc *ClienteUseCase) Create(ctx context.Context, in dto.ClienteDTO) (*dto.ClienteDTO, error) {
	cliente := mapper.ClienteFromDTO(in)
	cliente.ID = 0
	if err := uc.repo.Create(ctx, cliente); err != nil {
		return nil, err
	}
	out := mapper.ClienteToDTO(cliente)
	return &out, nil
}

// CreateBatch crea los clientes en orden y se detiene en el primer error.
// No es atómico: los creados antes del error quedan persistidos.
func (uc *ClienteUseCase) CreateBatch(ctx context.Context, in []dto.ClienteDTO) error {
	for i, c := range in {
		if _, err := uc.Create(ctx, c); err != nil {
			return fmt.Errorf("cliente %d del lote: %w", i, err)
		}
	}
	return nil
}

// List lista todos los clientes.
func (uc *ClienteUseCase) List(ctx context.Context) ([]dto.ClienteDTO, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return mapper.ClientesToDTO(list), nil
}

// GetByEmail busca por email exacto; domain.ErrNotFound si no existe.
func (uc *ClienteUseCase) GetByEmail(ctx context.Context, email string) (*dto.ClienteDTO, error) {
	cliente, err := uc.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}
	out := mapper.ClienteToDTO(cliente)
	return &out, nil
}

// SearchByNombre coincidencia parcial; lista vacía si no hay resultados.
func (uc *ClienteUseCase) SearchByNombre(ctx context.Context, nombre string) ([]dto.ClienteDTO, error) {
	list, err := uc.repo.SearchByNombre(ctx, nombre)
	if err != nil {
		return nil, err
	}
	return mapper.ClientesToDTO(list), nil
}

// Update reemplaza nombre y email del cliente id.
func (uc *ClienteUseCase) Update(ctx context.Context, id int64, in dto.ClienteDTO) (*dto.ClienteDTO, error) {
	cliente, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}
	cliente.Nombre = in.Nombre
	cliente.Email = in.Email
	if err := uc.repo.Update(ctx, cliente); err != nil {
		return nil, err
	}
	out := mapper.ClienteToDTO(cliente)
	return &out, nil
}

// UpdateNombre actualiza solo el nombre; false si el id no existe.
func (uc *ClienteUseCase) UpdateNombre(ctx context.Context, id int64, nombre string) (bool, error) {
	n, err := uc.repo.UpdateNombre(ctx, id, nombre)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Delete elimina el cliente y lo devuelve; domain.ErrNotFound si no existe.
func (uc *ClienteUseCase) Delete(ctx context.Context, id int64) (*dto.ClienteDTO, error) {
	cliente, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}
	out := mapper.ClienteToDTO(cliente)
	return &out, nil
}
