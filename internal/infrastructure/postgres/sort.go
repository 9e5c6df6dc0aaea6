package postgres

import (
	"fmt"
	"strings"

	"github.com/mfigueroa/ventas-api/internal/domain"
	"github.com/mfigueroa/ventas-api/internal/domain/repository"
)

// productoColumns campos ordenables de productos. Nunca se interpola el campo recibido.
var productoColumns = map[string]string{
	"id":     "id",
	"nombre": "nombre",
	"precio": "precio",
	"stock":  "stock",
}

// orderBy arma la cláusula ORDER BY; el id desempata para que la paginación sea estable.
func orderBy(columns map[string]string, s repository.Sort) (string, error) {
	campo := strings.ToLower(strings.TrimSpace(s.Campo))
	if campo == "" {
		campo = "id"
	}
	col, ok := columns[campo]
	if !ok {
		return "", fmt.Errorf("campo de orden %q: %w", s.Campo, domain.ErrInvalidInput)
	}
	dir := "ASC"
	if s.Desc {
		dir = "DESC"
	}
	if col == "id" {
		return "ORDER BY id " + dir, nil
	}
	return fmt.Sprintf("ORDER BY %s %s, id ASC", col, dir), nil
}

// likePattern escapa comodines de LIKE y envuelve en %...%.
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}
