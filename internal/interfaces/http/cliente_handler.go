package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mfigueroa/ventas-api/internal/application/dto"
	"github.com/mfigueroa/ventas-api/internal/application/usecase"
	"github.com/mfigueroa/ventas-api/pkg/logger"
)

// ClienteHandler maneja las peticiones HTTP de clientes.
type ClienteHandler struct {
	uc  *usecase.ClienteUseCase
	log *logger.Logger
}

// NewClienteHandler construye el handler.
func NewClienteHandler(uc *usecase.ClienteUseCase, log *logger.Logger) *ClienteHandler {
	return &ClienteHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Crear cliente
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ClienteDTO  true  "Datos del cliente"
// @Success      201   {object}  dto.ClienteDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/clientes/create [post]
func (h *ClienteHandler) Create(c *fiber.Ctx) error {
	var in dto.ClienteDTO
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
// @Summary      Crear clientes en lote (no atómico)
// @Tags         clientes
// @Accept       json
// @Param        body  body  []dto.ClienteDTO  true  "Clientes"
// @Success      201
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/clientes/batch [post]
func (h *ClienteHandler) CreateBatch(c *fiber.Ctx) error {
	list, err := parseBodyList[dto.ClienteDTO](c)
	if err != nil {
		return respondError(c, h.log, err)
	}
	if err := h.uc.CreateBatch(c.UserContext(), list); err != nil {
		return respondError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusCreated)
}

// List godoc
// @Summary      Listar clientes
// @Tags         clientes
// @Produce      json
// @Success      200  {array}  dto.ClienteDTO
// @Router       /api/clientes [get]
func (h *ClienteHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(list)
}

// GetByEmail godoc
// @Summary      Buscar cliente por email
// @Tags         clientes
// @Produce      json
// @Param        email  query  string  true  "Email exacto"
// @Success      200  {object}  dto.ClienteDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clientes/getByEmail [get]
func (h *ClienteHandler) GetByEmail(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return respondError(c, h.log, &requestError{code: "MISSING_PARAM", msg: "email es requerido"})
	}
	out, err := h.uc.GetByEmail(c.UserContext(), email)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetByName godoc
// @Summary      Buscar clientes por nombre (parcial, sin mayúsculas)
// @Tags         clientes
// @Produce      json
// @Param        nombre  query  string  false  "Fragmento del nombre"
// @Success      200  {array}  dto.ClienteDTO
// @Router       /api/clientes/getByName [get]
func (h *ClienteHandler) GetByName(c *fiber.Ctx) error {
	list, err := h.uc.SearchByNombre(c.UserContext(), c.Query("nombre"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(list)
}

// Update godoc
// @Summary      Actualizar cliente
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Param        id    query  int             true  "ID del cliente"
// @Param        body  body   dto.ClienteDTO  true  "Nuevos datos"
// @Success      200  {object}  dto.ClienteDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clientes/update [put]
func (h *ClienteHandler) Update(c *fiber.Ctx) error {
	id, err := queryID(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}
	var in dto.ClienteDTO
	if err := parseBody(c, &in); err != nil {
		return respondError(c, h.log, err)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// UpdateName godoc
// @Summary      Actualizar solo el nombre
// @Tags         clientes
// @Produce      json
// @Param        id      query  int     true  "ID del cliente"
// @Param        nombre  query  string  true  "Nuevo nombre"
// @Success      200  {boolean}  bool
// @Router       /api/clientes/updateName [put]
func (h *ClienteHandler) UpdateName(c *fiber.Ctx) error {
	id, err := queryID(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}
	nombre := c.Query("nombre")
	if nombre == "" {
		return respondError(c, h.log, &requestError{code: "MISSING_PARAM", msg: "nombre es requerido"})
	}
	ok, err := h.uc.UpdateNombre(c.UserContext(), id, nombre)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(ok)
}

// DeleteByID godoc
// @Summary      Eliminar cliente (sin contenido)
// @Tags         clientes
// @Param        id  query  int  true  "ID del cliente"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/clientes/deleteById [delete]
func (h *ClienteHandler) DeleteByID(c *fiber.Ctx) error {
	id, err := queryID(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}
	if _, err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Eliminar cliente y devolverlo
// @Tags         clientes
// @Produce      json
// @Param        id  query  int  true  "ID del cliente"
// @Success      200  {object}  dto.ClienteDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/clientes/delete [delete]
func (h *ClienteHandler) Delete(c *fiber.Ctx) error {
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
