package dto

// ClienteDTO representación en el wire de un cliente.
type ClienteDTO struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre" validate:"required,max=255"`
	Email  string `json:"email" validate:"required,max=255"`
}
