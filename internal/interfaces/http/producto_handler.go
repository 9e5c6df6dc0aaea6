package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mfigueroa/ventas-api/internal/application/dto"
	"github.com/mfigueroa/ventas-api/internal/application/usecase"
	"github.com/mfigueroa/ventas-api/internal/domain/repository"
	"github.com/mfigueroa/ventas-api/pkg/logger"
)

// Rango por defecto de /precio.
const (
	defaultMinPrecio = 0
	defaultMaxPrecio = 1000000
)

// ProductoHandler maneja las peticiones HTTP de productos.
type ProductoHandler struct {
	uc  *usecase.ProductoUseCase
	log *logger.Logger
}

// NewProductoHandler construye el handler.
func NewProductoHandler(uc *usecase.ProductoUseCase, log *logger.Logger) *ProductoHandler {
	return &ProductoHandler{uc: uc, log: log}
}

// pageable lee pagina, tamano, ordenarPor y orden con los defaults de cada ruta.
func pageable(c *fiber.Ctx, ordenarPor, orden string) repository.PageRequest {
	return usecase.Pageable(
		c.QueryInt("pagina", repository.DefaultPagina),
		c.QueryInt("tamano", repository.DefaultTamano),
		c.Query("ordenarPor", ordenarPor),
		c.Query("orden", orden),
	)
}

// Create godoc
// @Summary      Crear producto
// @Tags         productos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductoDTO  true  "Datos del producto"
// @Success      201   {object}  dto.ProductoDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/productos/create [post]
func (h *ProductoHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductoDTO
	if err := parseBody(c, &in); err != nil {
		return respondError(c, h.log, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CreateBatch godoc
// @Summary      Crear productos en lote (no atómico)
// @Tags         productos
// @Accept       json
// @Param        body  body  []dto.ProductoDTO  true  "Productos"
// @Success      201
// @Router       /api/productos/batch [post]
func (h *ProductoHandler) CreateBatch(c *fiber.Ctx) error {
	list, err := parseBodyList[dto.ProductoDTO](c)
	if err != nil {
		return respondError(c, h.log, err)
	}
	if err := h.uc.CreateBatch(c.UserContext(), list); err != nil {
		return respondError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusCreated)
}

// List godoc
// @Summary      Listar productos
// @Tags         productos
// @Produce      json
// @Success      200  {array}  dto.ProductoDTO
// @Router       /api/productos [get]
func (h *ProductoHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(list)
}

// FindByPrice godoc
// @Summary      Productos con precio menor o igual
// @Tags         productos
// @Produce      json
// @Param        precio  query  number  true  "Precio máximo (inclusive)"
// @Success      200  {array}  dto.ProductoDTO
// @Router       /api/productos/findByPrice [get]
func (h *ProductoHandler) FindByPrice(c *fiber.Ctx) error {
	precio, err := queryFloat(c, "precio", 0, true)
	if err != nil {
		return respondError(c, h.log, err)
	}
	list, err := h.uc.BuscarPorPrecio(c.UserContext(), precio)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(list)
}

// FindByStock godoc
// @Summary      Productos con stock disponible
// @Tags         productos
// @Produce      json
// @Success      200  {array}  dto.ProductoDTO
// @Router       /api/productos/findByStock [get]
func (h *ProductoHandler) FindByStock(c *fiber.Ctx) error {
	list, err := h.uc.EnStock(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(list)
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         productos
// @Accept       json
// @Produce      json
// @Param        id    query  int              true  "ID del producto"
// @Param        body  body   dto.ProductoDTO  true  "Nuevos datos"
// @Success      200  {object}  dto.ProductoDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/productos/update [put]
func (h *ProductoHandler) Update(c *fiber.Ctx) error {
	id, err := queryID(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}
	var in dto.ProductoDTO
	if err := parseBody(c, &in); err != nil {
		return respondError(c, h.log, err)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// UpdatePrecio godoc
// @Summary      Actualizar solo el precio
// @Tags         productos
// @Produce      json
// @Param        id           query  int     true  "ID del producto"
// @Param        precioNuevo  query  number  true  "Nuevo precio"
// @Success      200  {boolean}  bool
// @Router       /api/productos/updatePrecio [put]
func (h *ProductoHandler) UpdatePrecio(c *fiber.Ctx) error {
	id, err := queryID(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}
	precio, err := queryFloat(c, "precioNuevo", 0, true)
	if err != nil {
		return respondError(c, h.log, err)
	}
	ok, err := h.uc.UpdatePrecio(c.UserContext(), id, precio)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(ok)
}

// Delete godoc
// @Summary      Eliminar producto y devolverlo
// @Tags         productos
// @Produce      json
// @Param        id  query  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductoDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/productos/delete [delete]
func (h *ProductoHandler) Delete(c *fiber.Ctx) error {
	id, err := queryID(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}
	out, err := h.uc.Delete(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetPaged godoc
// @Summary      Productos paginados
// @Tags         productos
// @Produce      json
// @Param        pagina      query  int     false  "Página (desde 0)"
// @Param        tamano      query  int     false  "Tamaño de página"
// @Param        ordenarPor  query  string  false  "id, nombre, precio o stock"
// @Param        orden       query  string  false  "asc o desc"
// @Success      200  {object}  dto.PageResponse[dto.ProductoDTO]
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/productos/getPaged [get]
func (h *ProductoHandler) GetPaged(c *fiber.Ctx) error {
	page, err := h.uc.ListPaged(c.UserContext(), pageable(c, "nombre", "desc"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(page)
}

// FindByPrecioRange godoc
// @Summary      Productos en un rango de precio, paginados
// @Tags         productos
// @Produce      json
// @Param        minPrecio   query  number  false  "Mínimo (por defecto 0)"
// @Param        maxPrecio   query  number  false  "Máximo (por defecto 1000000)"
// @Param        pagina      query  int     false  "Página"
// @Param        tamano      query  int     false  "Tamaño"
// @Param        ordenarPor  query  string  false  "Campo de orden"
// @Success      200  {object}  dto.PageResponse[dto.ProductoDTO]
// @Router       /api/productos/precio [get]
func (h *ProductoHandler) FindByPrecioRange(c *fiber.Ctx) error {
	minPrecio, err := queryFloat(c, "minPrecio", defaultMinPrecio, false)
	if err != nil {
		return respondError(c, h.log, err)
	}
	maxPrecio, err := queryFloat(c, "maxPrecio", defaultMaxPrecio, false)
	if err != nil {
		return respondError(c, h.log, err)
	}
	page, err := h.uc.ListByPrecioRange(c.UserContext(), minPrecio, maxPrecio, pageable(c, "precio", "asc"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(page)
}

// FindByName godoc
// @Summary      Búsqueda paginada por nombre
// @Tags         productos
// @Produce      json
// @Param        nombre      query  string  false  "Fragmento del nombre"
// @Param        pagina      query  int     false  "Página"
// @Param        tamano      query  int     false  "Tamaño"
// @Param        ordenarPor  query  string  false  "Campo de orden"
// @Param        orden       query  string  false  "asc o desc"
// @Success      200  {object}  dto.PageResponse[dto.ProductoDTO]
// @Router       /api/productos/findByName [get]
func (h *ProductoHandler) FindByName(c *fiber.Ctx) error {
	page, err := h.uc.SearchByNombre(c.UserContext(), c.Query("nombre"), pageable(c, "nombre", "desc"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(page)
}
