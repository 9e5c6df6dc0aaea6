package entity

// Cliente representa un cliente. Email es único a nivel de store.
type Cliente struct {
	ID     int64
	Nombre string
	Email  string
}
