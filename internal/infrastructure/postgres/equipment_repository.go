package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/inventario-equipos/internal/domain"
	"github.com/jhoicas/inventario-equipos/internal/domain/entity"
	"github.com/jhoicas/inventario-equipos/internal/domain/repository"
)

var _ repository.EquipmentRepository = (*EquipmentRepo)(nil)

const equipmentColumns = `id, name, type, model, inventory_number, status, location, purchase_date,
	price, specification, user_id, created_at, updated_at`

// EquipmentRepo implementación del puerto EquipmentRepository sobre PostgreSQL (usable con pool o tx).
type EquipmentRepo struct {
	q Querier
}

// NewEquipmentRepository construye el adaptador de persistencia para equipos. Pasar pool o tx (Querier).
func NewEquipmentRepository(q Querier) *EquipmentRepo {
	return &EquipmentRepo{q: q}
}

// Create persiste un equipo y asigna el ID generado.
func (r *EquipmentRepo) Create(ctx context.Context, e *entity.Equipment) error {
	query := `
		INSERT INTO equipment (name, type, model, inventory_number, status, location, purchase_date,
			price, specification, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		e.Name, e.Type, e.Model, e.InventoryNumber, e.Status, e.Location, e.PurchaseDate,
		e.Price, e.Specification, e.UserID, e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID)
	if err != nil {
		return mapEquipmentError(err, e, "insert equipment")
	}
	return nil
}

// GetByID obtiene un equipo por ID.
func (r *EquipmentRepo) GetByID(ctx context.Context, id int64) (*entity.Equipment, error) {
	e, err := scanEquipment(r.q.QueryRow(ctx, `SELECT `+equipmentColumns+` FROM equipment WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("get equipment: %w", err)
	}
	return e, nil
}

// GetByInventoryNumber obtiene un equipo por número de inventario.
func (r *EquipmentRepo) GetByInventoryNumber(ctx context.Context, inventoryNumber string) (*entity.Equipment, error) {
	e, err := scanEquipment(r.q.QueryRow(ctx,
		`SELECT `+equipmentColumns+` FROM equipment WHERE inventory_number = $1`, inventoryNumber))
	if err != nil {
		return nil, fmt.Errorf("get equipment by inventory number: %w", err)
	}
	return e, nil
}

// List lista equipos aplicando los filtros no vacíos.
func (r *EquipmentRepo) List(ctx context.Context, f repository.EquipmentFilter) ([]*entity.Equipment, error) {
	var (
		where []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}
	if f.Type != "" {
		add("type = $%d", f.Type)
	}
	if f.Status != "" {
		add("status = $%d", f.Status)
	}
	if f.Location != "" {
		add("location = $%d", f.Location)
	}
	if f.UserID != nil {
		add("user_id = $%d", *f.UserID)
	}
	query := `SELECT ` + equipmentColumns + ` FROM equipment`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY id"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list equipment: %w", err)
	}
	defer rows.Close()
	var list []*entity.Equipment
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan equipment: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// Update actualiza todos los campos editables de un equipo.
func (r *EquipmentRepo) Update(ctx context.Context, e *entity.Equipment) error {
	query := `
		UPDATE equipment SET name = $2, type = $3, model = $4, inventory_number = $5, status = $6,
			location = $7, purchase_date = $8, price = $9, specification = $10, user_id = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.Name, e.Type, e.Model, e.InventoryNumber, e.Status,
		e.Location, e.PurchaseDate, e.Price, e.Specification, e.UserID, e.UpdatedAt,
	)
	if err != nil {
		return mapEquipmentError(err, e, "update equipment")
	}
	return nil
}

// Delete elimina un equipo por ID.
func (r *EquipmentRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM equipment WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete equipment: %w", err)
	}
	return nil
}

// UnassignUser deja sin asignar los equipos del usuario. Devuelve cuántos cambió.
func (r *EquipmentRepo) UnassignUser(ctx context.Context, userID int64) (int, error) {
	tag, err := r.q.Exec(ctx, `UPDATE equipment SET user_id = NULL, updated_at = NOW() WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("unassign equipment: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// CountByStatus conteo de equipos por estado.
func (r *EquipmentRepo) CountByStatus(ctx context.Context) (map[string]int, error) {
	rows, err := r.q.Query(ctx, `SELECT status, COUNT(*) FROM equipment GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("count equipment by status: %w", err)
	}
	return countRows(rows)
}

// CountByType conteo de equipos por tipo.
func (r *EquipmentRepo) CountByType(ctx context.Context) (map[string]int, error) {
	rows, err := r.q.Query(ctx, `SELECT type, COUNT(*) FROM equipment GROUP BY type`)
	if err != nil {
		return nil, fmt.Errorf("count equipment by type: %w", err)
	}
	return countRows(rows)
}

func scanEquipment(row pgx.Row) (*entity.Equipment, error) {
	var e entity.Equipment
	err := row.Scan(
		&e.ID, &e.Name, &e.Type, &e.Model, &e.InventoryNumber, &e.Status, &e.Location, &e.PurchaseDate,
		&e.Price, &e.Specification, &e.UserID, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func mapEquipmentError(err error, e *entity.Equipment, op string) error {
	switch {
	case isUniqueViolation(err):
		return domain.NewDuplicateError("inventory_number", e.InventoryNumber)
	case isForeignKeyViolation(err):
		return domain.NewValidationError("user_id", "el usuario asignado no existe")
	case isStringTooLong(err):
		limits := []columnLimit{
			{"name", e.Name, entity.MaxNameLen},
			{"type", e.Type, entity.MaxTypeLen},
			{"model", e.Model, entity.MaxModelLen},
			{"inventory_number", e.InventoryNumber, entity.MaxInventoryNumberLen},
		}
		if e.Location != nil {
			limits = append(limits, columnLimit{"location", *e.Location, entity.MaxLocationLen})
		}
		return domain.NewValidationError(overflowField("equipment", limits...), "texto demasiado largo")
	case isNumericOutOfRange(err):
		return domain.NewValidationError("price", "fuera de rango")
	}
	return fmt.Errorf("%s: %w", op, err)
}
