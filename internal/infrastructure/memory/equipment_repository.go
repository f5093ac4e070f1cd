package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/inventario-equipos/internal/domain"
	"github.com/jhoicas/inventario-equipos/internal/domain/entity"
	"github.com/jhoicas/inventario-equipos/internal/domain/repository"
)

var _ repository.EquipmentRepository = (*EquipmentRepo)(nil)

// EquipmentRepo implementación en memoria de EquipmentRepository.
type EquipmentRepo struct {
	s    *Store
	inTx bool
}

// NewEquipmentRepository construye el repositorio sobre el store.
func NewEquipmentRepository(s *Store) *EquipmentRepo {
	return &EquipmentRepo{s: s}
}

func (r *EquipmentRepo) Create(_ context.Context, e *entity.Equipment) error {
	defer r.s.lockWrite(r.inTx)()
	if err := r.checkConstraints(e, 0); err != nil {
		return err
	}
	r.s.nextEquip++
	e.ID = r.s.nextEquip
	r.s.equipment[e.ID] = copyEquipment(e)
	return nil
}

func (r *EquipmentRepo) GetByID(_ context.Context, id int64) (*entity.Equipment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return copyEquipment(r.s.equipment[id]), nil
}

func (r *EquipmentRepo) GetByInventoryNumber(_ context.Context, inventoryNumber string) (*entity.Equipment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, e := range r.s.equipment {
		if e.InventoryNumber == inventoryNumber {
			return copyEquipment(e), nil
		}
	}
	return nil, nil
}

// List aplica los filtros exactos y ordena por ID.
func (r *EquipmentRepo) List(_ context.Context, f repository.EquipmentFilter) ([]*entity.Equipment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*entity.Equipment, 0, len(r.s.equipment))
	for _, e := range r.s.equipment {
		if f.Type != "" && e.Type != f.Type {
			continue
		}
		if f.Status != "" && e.Status != f.Status {
			continue
		}
		if f.Location != "" && (e.Location == nil || *e.Location != f.Location) {
			continue
		}
		if f.UserID != nil && (e.UserID == nil || *e.UserID != *f.UserID) {
			continue
		}
		list = append(list, copyEquipment(e))
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *EquipmentRepo) Update(_ context.Context, e *entity.Equipment) error {
	defer r.s.lockWrite(r.inTx)()
	if _, ok := r.s.equipment[e.ID]; !ok {
		return nil
	}
	if err := r.checkConstraints(e, e.ID); err != nil {
		return err
	}
	r.s.equipment[e.ID] = copyEquipment(e)
	return nil
}

func (r *EquipmentRepo) Delete(_ context.Context, id int64) error {
	defer r.s.lockWrite(r.inTx)()
	delete(r.s.equipment, id)
	return nil
}

func (r *EquipmentRepo) UnassignUser(_ context.Context, userID int64) (int, error) {
	defer r.s.lockWrite(r.inTx)()
	n := 0
	for _, e := range r.s.equipment {
		if e.UserID != nil && *e.UserID == userID {
			e.UserID = nil
			n++
		}
	}
	return n, nil
}

func (r *EquipmentRepo) CountByStatus(_ context.Context) (map[string]int, error) {
	return r.countBy(func(e *entity.Equipment) string { return e.Status }), nil
}

func (r *EquipmentRepo) CountByType(_ context.Context) (map[string]int, error) {
	return r.countBy(func(e *entity.Equipment) string { return e.Type }), nil
}

func (r *EquipmentRepo) countBy(key func(*entity.Equipment) string) map[string]int {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make(map[string]int)
	for _, e := range r.s.equipment {
		out[key(e)]++
	}
	return out
}

// checkConstraints emula UNIQUE(inventory_number) y la FK a users. Requiere el lock tomado.
func (r *EquipmentRepo) checkConstraints(e *entity.Equipment, exceptID int64) error {
	for id, other := range r.s.equipment {
		if id != exceptID && other.InventoryNumber == e.InventoryNumber {
			return domain.NewDuplicateError("inventory_number", e.InventoryNumber)
		}
	}
	if e.UserID != nil {
		if _, ok := r.s.users[*e.UserID]; !ok {
			return domain.NewValidationError("user_id", "el usuario asignado no existe")
		}
	}
	return nil
}
