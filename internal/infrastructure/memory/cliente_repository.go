package memory

import (
	"context"

	"github.com/mfigueroa/ventas-api/internal/domain"
	"github.com/mfigueroa/ventas-api/internal/domain/entity"
	"github.com/mfigueroa/ventas-api/internal/domain/repository"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementación en memoria de ClienteRepository.
type ClienteRepo struct {
	s  *Store
	tx bool // dentro de RunVenta: el mutex ya está tomado
}

func (r *ClienteRepo) emailTaken(email string, exceptID int64) bool {
	for id, c := range r.s.st.clientes {
		if id != exceptID && c.Email == email {
			return true
		}
	}
	return false
}

// Create asigna el siguiente ID. Email duplicado devuelve domain.ErrDuplicate.
func (r *ClienteRepo) Create(_ context.Context, cliente *entity.Cliente) error {
	defer r.s.lock(r.tx)()
	if r.emailTaken(cliente.Email, 0) {
		return domain.ErrDuplicate
	}
	r.s.st.seqCliente++
	cliente.ID = r.s.st.seqCliente
	r.s.st.clientes[cliente.ID] = *cliente
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *ClienteRepo) GetByID(_ context.Context, id int64) (*entity.Cliente, error) {
	defer r.s.rlock(r.tx)()
	c, ok := r.s.st.clientes[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

// GetByEmail búsqueda exacta por email.
func (r *ClienteRepo) GetByEmail(_ context.Context, email string) (*entity.Cliente, error) {
	defer r.s.rlock(r.tx)()
	for _, id := range sortedIDs(r.s.st.clientes) {
		if c := r.s.st.clientes[id]; c.Email == email {
			return &c, nil
		}
	}
	return nil, nil
}

// List todos los clientes ordenados por ID.
func (r *ClienteRepo) List(_ context.Context) ([]*entity.Cliente, error) {
	return r.filter(func(entity.Cliente) bool { return true }), nil
}

// SearchByNombre coincidencia parcial sin distinguir mayúsculas.
func (r *ClienteRepo) SearchByNombre(_ context.Context, nombre string) ([]*entity.Cliente, error) {
	return r.filter(func(c entity.Cliente) bool { return containsFold(c.Nombre, nombre) }), nil
}

func (r *ClienteRepo) filter(keep func(entity.Cliente) bool) []*entity.Cliente {
	defer r.s.rlock(r.tx)()
	list := make([]*entity.Cliente, 0)
	for _, id := range sortedIDs(r.s.st.clientes) {
		c := r.s.st.clientes[id]
		if keep(c) {
			list = append(list, &c)
		}
	}
	return list
}

// Update reemplaza nombre y email.
func (r *ClienteRepo) Update(_ context.Context, cliente *entity.Cliente) error {
	defer r.s.lock(r.tx)()
	if _, ok := r.s.st.clientes[cliente.ID]; !ok {
		return domain.ErrNotFound
	}
	if r.emailTaken(cliente.Email, cliente.ID) {
		return domain.ErrDuplicate
	}
	r.s.st.clientes[cliente.ID] = *cliente
	return nil
}

// UpdateNombre actualiza solo el nombre.
func (r *ClienteRepo) UpdateNombre(_ context.Context, id int64, nombre string) (int64, error) {
	defer r.s.lock(r.tx)()
	c, ok := r.s.st.clientes[id]
	if !ok {
		return 0, nil
	}
	c.Nombre = nombre
	r.s.st.clientes[id] = c
	return 1, nil
}

// Delete falla con domain.ErrConflict si alguna venta referencia al cliente.
func (r *ClienteRepo) Delete(_ context.Context, id int64) (*entity.Cliente, error) {
	defer r.s.lock(r.tx)()
	c, ok := r.s.st.clientes[id]
	if !ok {
		return nil, nil
	}
	for _, v := range r.s.st.ventas {
		if v.clienteID == id {
			return nil, domain.ErrConflict
		}
	}
	delete(r.s.st.clientes, id)
	return &c, nil
}
