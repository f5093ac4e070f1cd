package usecase

import (
	"context"

	"github.com/jhoicas/inventario-equipos/internal/application/dto"
	"github.com/jhoicas/inventario-equipos/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción, pasando repositorios atados a esa tx.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		userRepo repository.UserRepository,
		equipmentRepo repository.EquipmentRepository,
	) error) error
}

// ReportRenderer convierte un reporte de inventario en un documento (PDF, XML...).
type ReportRenderer interface {
	Render(ctx context.Context, report *dto.InventoryReport) ([]byte, error)
	ContentType() string
	Extension() string
}
