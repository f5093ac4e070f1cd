// Package memory implementa los puertos de persistencia en memoria (DB_DRIVER=memory y tests).
// Replica las restricciones del esquema SQL: username e inventory_number únicos y FK de equipment.user_id.
package memory

import (
	"sync"

	"github.com/jhoicas/inventario-equipos/internal/domain/entity"
)

// Store estado compartido por los repositorios en memoria.
type Store struct {
	mu        sync.RWMutex
	txMu      sync.Mutex
	users     map[int64]*entity.User
	equipment map[int64]*entity.Equipment
	nextUser  int64
	nextEquip int64
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{
		users:     make(map[int64]*entity.User),
		equipment: make(map[int64]*entity.Equipment),
	}
}

// lockWrite toma el lock de escritura. Fuera de una transacción espera a que termine la que está en curso:
// el rollback restaura una foto completa y no debe pisar escrituras ajenas.
func (s *Store) lockWrite(inTx bool) func() {
	if !inTx {
		s.txMu.Lock()
	}
	s.mu.Lock()
	return func() {
		s.mu.Unlock()
		if !inTx {
			s.txMu.Unlock()
		}
	}
}

type snapshot struct {
	users     map[int64]*entity.User
	equipment map[int64]*entity.Equipment
	nextUser  int64
	nextEquip int64
}

func (s *Store) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := snapshot{
		users:     make(map[int64]*entity.User, len(s.users)),
		equipment: make(map[int64]*entity.Equipment, len(s.equipment)),
		nextUser:  s.nextUser,
		nextEquip: s.nextEquip,
	}
	for id, u := range s.users {
		snap.users[id] = copyUser(u)
	}
	for id, e := range s.equipment {
		snap.equipment[id] = copyEquipment(e)
	}
	return snap
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = snap.users
	s.equipment = snap.equipment
	s.nextUser = snap.nextUser
	s.nextEquip = snap.nextEquip
}

func copyUser(u *entity.User) *entity.User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}

func copyEquipment(e *entity.Equipment) *entity.Equipment {
	if e == nil {
		return nil
	}
	c := *e
	if e.Location != nil {
		v := *e.Location
		c.Location = &v
	}
	if e.PurchaseDate != nil {
		v := *e.PurchaseDate
		c.PurchaseDate = &v
	}
	if e.Specification != nil {
		v := *e.Specification
		c.Specification = &v
	}
	if e.UserID != nil {
		v := *e.UserID
		c.UserID = &v
	}
	return &c
}
