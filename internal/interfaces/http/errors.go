package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/mfigueroa/ventas-api/internal/application/dto"
	"github.com/mfigueroa/ventas-api/internal/domain"
	"github.com/mfigueroa/ventas-api/pkg/logger"
)

// requestError error del cliente detectado en el handler (query o cuerpo).
type requestError struct {
	code string
	msg  string
}

func (e *requestError) Error() string { return e.msg }

// respondError registra el error y lo traduce a código HTTP + ErrorResponse.
func respondError(c *fiber.Ctx, log *logger.Logger, err error) error {
	status, code := fiber.StatusInternalServerError, "INTERNAL"
	var reqErr *requestError
	switch {
	case errors.As(err, &reqErr):
		status, code = fiber.StatusBadRequest, reqErr.code
	case errors.Is(err, domain.ErrNotFound):
		status, code = fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrDuplicate):
		status, code = fiber.StatusConflict, "DUPLICATE"
	case errors.Is(err, domain.ErrConflict):
		status, code = fiber.StatusConflict, "CONFLICT"
	case errors.Is(err, domain.ErrInvalidInput):
		status, code = fiber.StatusBadRequest, "VALIDATION"
	}

	ev := log.Warn()
	switch {
	case reqErr != nil:
		ev = log.Debug()
	case status >= fiber.StatusInternalServerError:
		ev = log.Error()
	}
	ev.Err(err).
		Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
		Str("method", c.Method()).
		Str("route", c.Route().Path).
		Int("status", status).
		Msg("error en la petición")

	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
}

// queryID lee un parámetro entero obligatorio de la query string.
func queryID(c *fiber.Ctx, key string) (int64, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, &requestError{code: "MISSING_PARAM", msg: key + " es requerido"}
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &requestError{code: "INVALID_PARAM", msg: key + " debe ser un entero"}
	}
	return id, nil
}

// queryFloat lee un número de la query string. Si falta devuelve def, o error si es obligatorio.
func queryFloat(c *fiber.Ctx, key string, def float64, required bool) (float64, error) {
	raw := c.Query(key)
	if raw == "" {
		if required {
			return 0, &requestError{code: "MISSING_PARAM", msg: key + " es requerido"}
		}
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &requestError{code: "INVALID_PARAM", msg: key + " debe ser numérico"}
	}
	return v, nil
}
