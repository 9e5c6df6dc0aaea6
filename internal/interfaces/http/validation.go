package http

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// parseBody decodifica el cuerpo JSON en out y aplica las etiquetas validate.
func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return &requestError{code: "INVALID_BODY", msg: "cuerpo inválido"}
	}
	return validateStruct(out)
}

// parseBodyList igual que parseBody para un arreglo JSON; valida cada elemento.
func parseBodyList[T any](c *fiber.Ctx) ([]T, error) {
	var list []T
	if err := c.BodyParser(&list); err != nil {
		return nil, &requestError{code: "INVALID_BODY", msg: "cuerpo inválido"}
	}
	for i := range list {
		if err := validateStruct(&list[i]); err != nil {
			return nil, err
		}
	}
	return list, nil
}

func validateStruct(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &requestError{code: "VALIDATION", msg: err.Error()}
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field()+" ("+fe.Tag()+")")
	}
	return &requestError{code: "VALIDATION", msg: "campos inválidos: " + strings.Join(fields, ", ")}
}
