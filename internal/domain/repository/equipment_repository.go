package repository

import (
	"context"

	"github.com/jhoicas/inventario-equipos/internal/domain/entity"
)

// EquipmentFilter filtros exactos del listado; un campo vacío no restringe.
type EquipmentFilter struct {
	Type     string
	Status   string
	Location string
	UserID   *int64
}

// EquipmentRepository define el puerto de persistencia para Equipment (DIP).
type EquipmentRepository interface {
	// Create persiste el equipo y asigna equipment.ID. Número de inventario duplicado -> *domain.ValidationError.
	Create(ctx context.Context, equipment *entity.Equipment) error
	GetByID(ctx context.Context, id int64) (*entity.Equipment, error)
	GetByInventoryNumber(ctx context.Context, inventoryNumber string) (*entity.Equipment, error)
	List(ctx context.Context, filter EquipmentFilter) ([]*entity.Equipment, error)
	Update(ctx context.Context, equipment *entity.Equipment) error
	Delete(ctx context.Context, id int64) error
	// UnassignUser deja sin responsable todos los equipos asignados a userID.
	UnassignUser(ctx context.Context, userID int64) (int, error)
	CountByStatus(ctx context.Context) (map[string]int, error)
	CountByType(ctx context.Context) (map[string]int, error)
}
