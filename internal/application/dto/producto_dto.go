package dto

// ProductoDTO representación en el wire de un producto.
type ProductoDTO struct {
	ID     int64   `json:"id"`
	Nombre string  `json:"nombre" validate:"max=255"`
	Precio float64 `json:"precio"`
	Stock  int     `json:"stock"`
}
