package usecase

import (
	"context"
	"fmt"

	"github.com/mfigueroa/ventas-api/internal/application/dto"
	"github.com/mfigueroa/ventas-api/internal/application/mapper"
	"github.com/mfigueroa/ventas-api/internal/domain"
	"github.com/mfigueroa/ventas-api/internal/domain/entity"
	"github.com/mfigueroa/ventas-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// ProductoUseCase casos de uso para productos, incluidos los listados paginados.
type ProductoUseCase struct {
	repo repository.ProductoRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(repo repository.ProductoRepository) *ProductoUseCase {
	return &ProductoUseCase{repo: repo}
}

// Pageable arma la página pedida. orden "desc" (sin importar mayúsculas) ordena descendente;
// cualquier otro valor, ascendente.
func Pageable(pagina, tamano int, ordenarPor, orden string) repository.PageRequest {
	return repository.NewPageRequest(pagina, tamano, repository.NewSort(ordenarPor, orden))
}

// Create crea un producto. El ID de entrada se ignora.
func (uc *ProductoUseCase) Create(ctx context.Context, in dto.ProductoDTO) (*dto.ProductoDTO, error) {
	producto := mapper.ProductoFromDTO(in)
	producto.ID = 0
	if err := uc.repo.Create(ctx, producto); err != nil {
		return nil, err
	}
	out := mapper.ProductoToDTO(producto)
	return &out, nil
}

// CreateBatch crea los productos en orden y se detiene en el primer error (no atómico).
func (uc *ProductoUseCase) CreateBatch(ctx context.Context, in []dto.ProductoDTO) error {
	for i, p := range in {
		if _, err := uc.Create(ctx, p); err != nil {
			return fmt.Errorf("producto %d del lote: %w", i, err)
		}
	}
	return nil
}

// List lista todos los productos.
func (uc *ProductoUseCase) List(ctx context.Context) ([]dto.ProductoDTO, error) {
	return uc.mapList(uc.repo.List(ctx))
}

// BuscarPorPrecio productos con precio <= precio.
func (uc *ProductoUseCase) BuscarPorPrecio(ctx context.Context, precio float64) ([]dto.ProductoDTO, error) {
	return uc.mapList(uc.repo.ListByPrecioMax(ctx, decimal.NewFromFloat(precio)))
}

// EnStock productos con stock > 0.
func (uc *ProductoUseCase) EnStock(ctx context.Context) ([]dto.ProductoDTO, error) {
	return uc.mapList(uc.repo.ListEnStock(ctx))
}

func (uc *ProductoUseCase) mapList(list []*entity.Producto, err error) ([]dto.ProductoDTO, error) {
	if err != nil {
		return nil, err
	}
	return mapper.ProductosToDTO(list), nil
}

// Update reemplaza nombre, precio y stock del producto id.
func (uc *ProductoUseCase) Update(ctx context.Context, id int64, in dto.ProductoDTO) (*dto.ProductoDTO, error) {
	producto, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNotFound
	}
	producto.Nombre = in.Nombre
	producto.Precio = decimal.NewFromFloat(in.Precio)
	producto.Stock = in.Stock
	if err := uc.repo.Update(ctx, producto); err != nil {
		return nil, err
	}
	out := mapper.ProductoToDTO(producto)
	return &out, nil
}

// UpdatePrecio cambia solo el precio; nombre y stock no se tocan. false si el id no existe.
func (uc *ProductoUseCase) UpdatePrecio(ctx context.Context, id int64, precio float64) (bool, error) {
	n, err := uc.repo.UpdatePrecio(ctx, id, decimal.NewFromFloat(precio))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Delete elimina el producto y lo devuelve; domain.ErrNotFound si no existe.
func (uc *ProductoUseCase) Delete(ctx context.Context, id int64) (*dto.ProductoDTO, error) {
	producto, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNotFound
	}
	out := mapper.ProductoToDTO(producto)
	return &out, nil
}

// ListPaged todos los productos paginados.
func (uc *ProductoUseCase) ListPaged(ctx context.Context, page repository.PageRequest) (*dto.PageResponse[dto.ProductoDTO], error) {
	return uc.mapPage(uc.repo.ListPaged(ctx, page))
}

// ListByPrecioRange productos con min <= precio <= max, paginados.
func (uc *ProductoUseCase) ListByPrecioRange(ctx context.Context, min, max float64, page repository.PageRequest) (*dto.PageResponse[dto.ProductoDTO], error) {
	return uc.mapPage(uc.repo.ListByPrecioRange(ctx, decimal.NewFromFloat(min), decimal.NewFromFloat(max), page))
}

// SearchByNombre búsqueda parcial paginada; sin nombre equivale a ListPaged.
func (uc *ProductoUseCase) SearchByNombre(ctx context.Context, nombre string, page repository.PageRequest) (*dto.PageResponse[dto.ProductoDTO], error) {
	if nombre == "" {
		return uc.ListPaged(ctx, page)
	}
	return uc.mapPage(uc.repo.SearchByNombre(ctx, nombre, page))
}

func (uc *ProductoUseCase) mapPage(p repository.Page[*entity.Producto], err error) (*dto.PageResponse[dto.ProductoDTO], error) {
	if err != nil {
		return nil, err
	}
	out := dto.NewPageResponse(repository.MapPage(p, func(e *entity.Producto) dto.ProductoDTO {
		return mapper.ProductoToDTO(e)
	}))
	return &out, nil
}
