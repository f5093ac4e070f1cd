package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de un equipo.
const (
	StatusAvailable = "available"
	StatusInUse     = "in_use"
	StatusInRepair  = "in_repair"
	StatusRetired   = "retired"
)

// Largos máximos (en caracteres) de los textos de Equipment, iguales a las columnas.
const (
	MaxNameLen            = 100
	MaxTypeLen            = 50
	MaxModelLen           = 100
	MaxInventoryNumberLen = 50
	MaxLocationLen        = 100
)

// PriceLimit cota exclusiva de Price: NUMERIC(12,2) admite 10 dígitos enteros.
var PriceLimit = decimal.New(1, 10)

// Statuses lista ordenada de estados.
var Statuses = []string{StatusAvailable, StatusInUse, StatusInRepair, StatusRetired}

// Equipment representa un equipo inventariado.
// Los campos puntero son opcionales (NULL en la DB); UserID es una referencia débil al usuario asignado.
type Equipment struct {
	ID              int64
	Name            string
	Type            string // Computador, Portátil, Monitor...
	Model           string
	InventoryNumber string // único
	Status          string
	Location        *string
	PurchaseDate    *time.Time
	Price           decimal.NullDecimal
	Specification   *string
	UserID          *int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsValidStatus indica si status es un estado conocido.
func IsValidStatus(status string) bool {
	switch status {
	case StatusAvailable, StatusInUse, StatusInRepair, StatusRetired:
		return true
	}
	return false
}

var statusLabels = map[string]string{
	StatusAvailable: "Disponible",
	StatusInUse:     "En uso",
	StatusInRepair:  "En reparación",
	StatusRetired:   "Dado de baja",
}

// StatusLabel nombre legible del estado; un estado desconocido se devuelve tal cual.
func StatusLabel(status string) string {
	if l, ok := statusLabels[status]; ok {
		return l
	}
	return status
}
