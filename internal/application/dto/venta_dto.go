package dto

// VentaDTO representación en el wire de una venta. Las relaciones viajan por ID.
// Total se ignora al crear: siempre se calcula desde los productos.
type VentaDTO struct {
	ID          int64   `json:"id"`
	ClienteID   int64   `json:"clienteId" validate:"required,gt=0"`
	ProductosID []int64 `json:"productosId" validate:"required,min=1,dive,gt=0"`
	Total       float64 `json:"total"`
}

// TotalClienteResponse suma de ventas de un cliente.
type TotalClienteResponse struct {
	ClienteID int64   `json:"clienteId"`
	Total     float64 `json:"total"`
}
