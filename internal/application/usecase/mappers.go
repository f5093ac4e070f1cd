package usecase

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jhoicas/inventario-equipos/internal/application/dto"
	"github.com/jhoicas/inventario-equipos/internal/domain/entity"
)

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		Protected: u.IsProtected(),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toEquipmentResponse(e *entity.Equipment, assignedUsername string) *dto.EquipmentResponse {
	if e == nil {
		return nil
	}
	out := &dto.EquipmentResponse{
		ID:               e.ID,
		Name:             e.Name,
		Type:             e.Type,
		Model:            e.Model,
		InventoryNumber:  e.InventoryNumber,
		Status:           e.Status,
		Location:         e.Location,
		Specification:    e.Specification,
		UserID:           e.UserID,
		AssignedUsername: assignedUsername,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
	if e.PurchaseDate != nil {
		d := e.PurchaseDate.Format(dto.DateLayout)
		out.PurchaseDate = &d
	}
	if e.Price.Valid {
		p := e.Price.Decimal
		out.Price = &p
	}
	return out
}

// totalValue suma los precios conocidos.
func totalValue(items []*entity.Equipment) decimal.Decimal {
	total := decimal.Zero
	for _, e := range items {
		if e.Price.Valid {
			total = total.Add(e.Price.Decimal)
		}
	}
	return total
}

// countEntries ordena un agregado: primero las claves de order (aunque tengan 0),
// luego el resto en orden alfabético según collation en español.
func countEntries(counts map[string]int, order []string) []dto.CountEntry {
	out := make([]dto.CountEntry, 0, len(counts)+len(order))
	seen := make(map[string]bool, len(order))
	for _, k := range order {
		out = append(out, dto.CountEntry{Key: k, Count: counts[k]})
		seen[k] = true
	}
	rest := make([]string, 0, len(counts))
	for k := range counts {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	collate.New(language.Spanish).SortStrings(rest)
	for _, k := range rest {
		out = append(out, dto.CountEntry{Key: k, Count: counts[k]})
	}
	return out
}
