package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-equipos/pkg/optional"
)

// CreateEquipmentRequest entrada para registrar un equipo. Status vacío equivale a "available".
type CreateEquipmentRequest struct {
	Name            string
	Type            string
	Model           string
	InventoryNumber string
	Status          string
	Location        *string
	PurchaseDate    *time.Time
	Price           decimal.NullDecimal
	Specification   *string
	UserID          *int64
}

// UpdateEquipmentRequest actualización parcial con marca de presencia por campo.
// En los campos anulables un valor presente nil (o Valid=false) borra el dato.
type UpdateEquipmentRequest struct {
	Name            optional.Value[string]
	Type            optional.Value[string]
	Model           optional.Value[string]
	InventoryNumber optional.Value[string]
	Status          optional.Value[string]
	Location        optional.Value[*string]
	PurchaseDate    optional.Value[*time.Time]
	Price           optional.Value[decimal.NullDecimal]
	Specification   optional.Value[*string]
	UserID          optional.Value[*int64]
}

// EquipmentFilterRequest filtros del listado (query string).
type EquipmentFilterRequest struct {
	Type     string `query:"type"`
	Status   string `query:"status"`
	Location string `query:"location"`
}

// EquipmentResponse salida de un equipo.
type EquipmentResponse struct {
	ID               int64            `json:"id"`
	Name             string           `json:"name"`
	Type             string           `json:"type"`
	Model            string           `json:"model"`
	InventoryNumber  string           `json:"inventory_number"`
	Status           string           `json:"status"`
	Location         *string          `json:"location,omitempty"`
	PurchaseDate     *string          `json:"purchase_date,omitempty"` // YYYY-MM-DD
	Price            *decimal.Decimal `json:"price,omitempty"`
	Specification    *string          `json:"specification,omitempty"`
	UserID           *int64           `json:"user_id,omitempty"`
	AssignedUsername string           `json:"assigned_username,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// EquipmentListResponse listado filtrado (sin paginación) con el valor total del inventario listado.
type EquipmentListResponse struct {
	Items      []EquipmentResponse `json:"items"`
	Total      int                 `json:"total"`
	TotalValue decimal.Decimal     `json:"total_value"`
}

// StatsResponse conteos agregados para el tablero.
type StatsResponse struct {
	ByStatus   []CountEntry    `json:"by_status"`
	ByType     []CountEntry    `json:"by_type"`
	ByRole     []CountEntry    `json:"by_role,omitempty"`
	TotalValue decimal.Decimal `json:"total_value"`
}
