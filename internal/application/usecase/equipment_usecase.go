package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-equipos/internal/application/dto"
	"github.com/jhoicas/inventario-equipos/internal/domain"
	"github.com/jhoicas/inventario-equipos/internal/domain/entity"
	"github.com/jhoicas/inventario-equipos/internal/domain/repository"
)

// EquipmentUseCase casos de uso CRUD y agregados para equipos.
type EquipmentUseCase struct {
	repo     repository.EquipmentRepository
	userRepo repository.UserRepository
}

// NewEquipmentUseCase construye el caso de uso. userRepo se usa para validar y mostrar asignaciones.
func NewEquipmentUseCase(repo repository.EquipmentRepository, userRepo repository.UserRepository) *EquipmentUseCase {
	return &EquipmentUseCase{repo: repo, userRepo: userRepo}
}

// Create registra un equipo. Campos requeridos vacíos, estado o precio inválidos,
// usuario asignado inexistente o número de inventario repetido -> *domain.ValidationError.
func (uc *EquipmentUseCase) Create(ctx context.Context, in dto.CreateEquipmentRequest) (*dto.EquipmentResponse, error) {
	e := &entity.Equipment{
		Name:            entity.NormalizeText(in.Name),
		Type:            entity.NormalizeText(in.Type),
		Model:           entity.NormalizeText(in.Model),
		InventoryNumber: entity.NormalizeText(in.InventoryNumber),
		Status:          entity.NormalizeText(in.Status),
		Location:        normalizeOptional(in.Location),
		PurchaseDate:    in.PurchaseDate,
		Price:           in.Price,
		Specification:   blankToNil(in.Specification),
		UserID:          in.UserID,
	}
	if e.Status == "" {
		e.Status = entity.StatusAvailable
	}
	if err := validateRequired(e); err != nil {
		return nil, err
	}
	if err := validateAttributes(e); err != nil {
		return nil, err
	}

	existing, err := uc.repo.GetByInventoryNumber(ctx, e.InventoryNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.NewDuplicateError("inventory_number", e.InventoryNumber)
	}
	assigned, err := uc.assignee(ctx, e.UserID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	e.CreatedAt = now
	e.UpdatedAt = now
	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return toEquipmentResponse(e, usernameOf(assigned)), nil
}

// FindByID obtiene un equipo. Devuelve (nil, nil) si no existe.
func (uc *EquipmentUseCase) FindByID(ctx context.Context, id int64) (*dto.EquipmentResponse, error) {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, nil
	}
	var assigned *entity.User
	if e.UserID != nil {
		if assigned, err = uc.userRepo.GetByID(ctx, *e.UserID); err != nil {
			return nil, err
		}
	}
	return toEquipmentResponse(e, usernameOf(assigned)), nil
}

// List lista equipos con filtros exactos (conjunción); filtro vacío no restringe.
func (uc *EquipmentUseCase) List(ctx context.Context, in dto.EquipmentFilterRequest) (*dto.EquipmentListResponse, error) {
	list, err := uc.repo.List(ctx, repository.EquipmentFilter{
		Type:     entity.NormalizeText(in.Type),
		Status:   entity.NormalizeText(in.Status),
		Location: entity.NormalizeText(in.Location),
	})
	if err != nil {
		return nil, err
	}
	names, err := uc.usernames(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EquipmentResponse, 0, len(list))
	for _, e := range list {
		var name string
		if e.UserID != nil {
			name = names[*e.UserID]
		}
		items = append(items, *toEquipmentResponse(e, name))
	}
	return &dto.EquipmentListResponse{
		Items:      items,
		Total:      len(items),
		TotalValue: totalValue(list),
	}, nil
}

// Update aplica solo los campos presentes. Devuelve (nil, nil) si el ID no existe.
// Campos requeridos presentes y vacíos son error; en los anulables, presente y vacío borra el dato.
func (uc *EquipmentUseCase) Update(ctx context.Context, id int64, in dto.UpdateEquipmentRequest) (*dto.EquipmentResponse, error) {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, nil
	}

	if v, ok := in.Name.Get(); ok {
		e.Name = entity.NormalizeText(v)
	}
	if v, ok := in.Type.Get(); ok {
		e.Type = entity.NormalizeText(v)
	}
	if v, ok := in.Model.Get(); ok {
		e.Model = entity.NormalizeText(v)
	}
	if v, ok := in.Status.Get(); ok {
		e.Status = entity.NormalizeText(v)
	}
	inventoryChanged := false
	if v, ok := in.InventoryNumber.Get(); ok {
		n := entity.NormalizeText(v)
		inventoryChanged = n != e.InventoryNumber
		e.InventoryNumber = n
	}
	if v, ok := in.Location.Get(); ok {
		e.Location = normalizeOptional(v)
	}
	if v, ok := in.PurchaseDate.Get(); ok {
		e.PurchaseDate = v
	}
	if v, ok := in.Price.Get(); ok {
		e.Price = v
	}
	if v, ok := in.Specification.Get(); ok {
		e.Specification = blankToNil(v)
	}
	if v, ok := in.UserID.Get(); ok {
		e.UserID = v
	}

	if err := validateRequired(e); err != nil {
		return nil, err
	}
	if err := validateAttributes(e); err != nil {
		return nil, err
	}
	if inventoryChanged {
		other, err := uc.repo.GetByInventoryNumber(ctx, e.InventoryNumber)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != e.ID {
			return nil, domain.NewDuplicateError("inventory_number", e.InventoryNumber)
		}
	}
	assigned, err := uc.assignee(ctx, e.UserID)
	if err != nil {
		return nil, err
	}

	e.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return toEquipmentResponse(e, usernameOf(assigned)), nil
}

// Delete elimina un equipo y devuelve su último estado, o (nil, nil) si no existía.
func (uc *EquipmentUseCase) Delete(ctx context.Context, id int64) (*dto.EquipmentResponse, error) {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, nil
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return toEquipmentResponse(e, ""), nil
}

// CountByStatus conteo por estado (los cuatro estados siempre presentes).
func (uc *EquipmentUseCase) CountByStatus(ctx context.Context) ([]dto.CountEntry, error) {
	counts, err := uc.repo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	return countEntries(counts, entity.Statuses), nil
}

// CountByType conteo por tipo, solo tipos con equipos.
func (uc *EquipmentUseCase) CountByType(ctx context.Context) ([]dto.CountEntry, error) {
	counts, err := uc.repo.CountByType(ctx)
	if err != nil {
		return nil, err
	}
	return countEntries(counts, nil), nil
}

// Stats agregados del tablero: por estado, por tipo y valor total del inventario.
func (uc *EquipmentUseCase) Stats(ctx context.Context) (*dto.StatsResponse, error) {
	byStatus, err := uc.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	byType, err := uc.CountByType(ctx)
	if err != nil {
		return nil, err
	}
	all, err := uc.repo.List(ctx, repository.EquipmentFilter{})
	if err != nil {
		return nil, err
	}
	return &dto.StatsResponse{
		ByStatus:   byStatus,
		ByType:     byType,
		TotalValue: totalValue(all),
	}, nil
}

func (uc *EquipmentUseCase) assignee(ctx context.Context, userID *int64) (*entity.User, error) {
	if userID == nil {
		return nil, nil
	}
	u, err := uc.userRepo.GetByID(ctx, *userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.NewValidationError("user_id", "el usuario asignado no existe")
	}
	return u, nil
}

func (uc *EquipmentUseCase) usernames(ctx context.Context) (map[int64]string, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[int64]string, len(users))
	for _, u := range users {
		out[u.ID] = u.Username
	}
	return out, nil
}

func usernameOf(u *entity.User) string {
	if u == nil {
		return ""
	}
	return u.Username
}

func validateRequired(e *entity.Equipment) error {
	switch {
	case e.Name == "":
		return domain.NewValidationError("name", "es requerido")
	case e.Type == "":
		return domain.NewValidationError("type", "es requerido")
	case e.Model == "":
		return domain.NewValidationError("model", "es requerido")
	case e.InventoryNumber == "":
		return domain.NewValidationError("inventory_number", "es requerido")
	}
	return validateLengths(e)
}

func validateLengths(e *entity.Equipment) error {
	if err := validateMaxLen("name", e.Name, entity.MaxNameLen); err != nil {
		return err
	}
	if err := validateMaxLen("type", e.Type, entity.MaxTypeLen); err != nil {
		return err
	}
	if err := validateMaxLen("model", e.Model, entity.MaxModelLen); err != nil {
		return err
	}
	if err := validateMaxLen("inventory_number", e.InventoryNumber, entity.MaxInventoryNumberLen); err != nil {
		return err
	}
	if e.Location != nil {
		return validateMaxLen("location", *e.Location, entity.MaxLocationLen)
	}
	return nil
}

// validateMaxLen cuenta caracteres, no bytes (VARCHAR(n) en Postgres).
func validateMaxLen(field, value string, max int) error {
	if utf8.RuneCountInString(value) > max {
		return domain.NewValidationError(field, fmt.Sprintf("máximo %d caracteres", max))
	}
	return nil
}

func validateAttributes(e *entity.Equipment) error {
	if !entity.IsValidStatus(e.Status) {
		return domain.NewValidationError("status", "estado desconocido")
	}
	if e.Price.Valid && e.Price.Decimal.LessThan(decimal.Zero) {
		return domain.NewValidationError("price", "no puede ser negativo")
	}
	if e.Price.Valid && !e.Price.Decimal.Round(2).LessThan(entity.PriceLimit) {
		return domain.NewValidationError("price", "fuera de rango")
	}
	return nil
}

// normalizeOptional normaliza y convierte "" en nil.
func normalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := entity.NormalizeText(*s)
	if v == "" {
		return nil
	}
	return &v
}

// blankToNil conserva el texto libre tal cual; nil si está vacío o solo tiene espacios.
func blankToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := *s
	return &v
}
