// Package memory implementa los repositorios sobre mapas en memoria protegidos por mutex.
// Respeta las mismas formas de consulta y restricciones que el store PostgreSQL
// (email único, claves foráneas RESTRICT) para usarse en desarrollo y tests.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/mfigueroa/ventas-api/internal/domain/entity"
	"github.com/mfigueroa/ventas-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

type ventaRow struct {
	clienteID   int64
	productoIDs []int64
	total       decimal.Decimal
}

type state struct {
	clientes  map[int64]entity.Cliente
	productos map[int64]entity.Producto
	ventas    map[int64]ventaRow

	seqCliente, seqProducto, seqVenta int64
}

func (s state) clone() state {
	out := state{
		clientes:    make(map[int64]entity.Cliente, len(s.clientes)),
		productos:   make(map[int64]entity.Producto, len(s.productos)),
		ventas:      make(map[int64]ventaRow, len(s.ventas)),
		seqCliente:  s.seqCliente,
		seqProducto: s.seqProducto,
		seqVenta:    s.seqVenta,
	}
	for k, v := range s.clientes {
		out.clientes[k] = v
	}
	for k, v := range s.productos {
		out.productos[k] = v
	}
	for k, v := range s.ventas {
		v.productoIDs = append([]int64(nil), v.productoIDs...)
		out.ventas[k] = v
	}
	return out
}

// Store estado compartido de los repositorios en memoria.
type Store struct {
	mu sync.RWMutex
	st state
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{st: state{
		clientes:  make(map[int64]entity.Cliente),
		productos: make(map[int64]entity.Producto),
		ventas:    make(map[int64]ventaRow),
	}}
}

// Clientes repositorio de clientes sobre este store.
func (s *Store) Clientes() *ClienteRepo { return &ClienteRepo{s: s} }

// Productos repositorio de productos sobre este store.
func (s *Store) Productos() *ProductoRepo { return &ProductoRepo{s: s} }

// Ventas repositorio de ventas sobre este store.
func (s *Store) Ventas() *VentaRepo { return &VentaRepo{s: s} }

// RunVenta ejecuta fn con el store bloqueado en escritura de principio a fin; si fn
// falla se restaura el estado previo. Las demás operaciones esperan a que termine,
// así el rollback solo deshace lo escrito por fn. fn debe usar los repos recibidos.
func (s *Store) RunVenta(ctx context.Context, fn func(
	clientes repository.ClienteRepository,
	productos repository.ProductoRepository,
	ventas repository.VentaRepository,
) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	snapshot := s.st.clone()
	err := fn(&ClienteRepo{s: s, tx: true}, &ProductoRepo{s: s, tx: true}, &VentaRepo{s: s, tx: true})
	if err != nil {
		s.st = snapshot
		return err
	}
	return nil
}

// lock toma el mutex de escritura; dentro de RunVenta ya está tomado.
func (s *Store) lock(inTx bool) func() {
	if inTx {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

// rlock igual que lock para lectura.
func (s *Store) rlock(inTx bool) func() {
	if inTx {
		return func() {}
	}
	s.mu.RLock()
	return s.mu.RUnlock
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func sortedIDs[V any](m map[int64]V) []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
