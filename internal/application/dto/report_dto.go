package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryReport datos de entrada para exportar el inventario.
type InventoryReport struct {
	Title       string
	GeneratedAt time.Time
	GeneratedBy string
	Filter      EquipmentFilterRequest
	Items       []EquipmentResponse
	ByStatus    []CountEntry
	TotalValue  decimal.Decimal
}
