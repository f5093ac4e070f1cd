package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/inventario-equipos/internal/application/dto"
	"github.com/jhoicas/inventario-equipos/internal/domain"
)

// ExportedFile documento generado listo para descargar.
type ExportedFile struct {
	Filename    string
	ContentType string
	Content     []byte
}

// ReportUseCase exporta el inventario filtrado en los formatos registrados.
type ReportUseCase struct {
	equipment *EquipmentUseCase
	renderers map[string]ReportRenderer
	now       func() time.Time
}

// NewReportUseCase construye el caso de uso; renderers se indexa por formato ("pdf", "xml").
func NewReportUseCase(equipment *EquipmentUseCase, renderers map[string]ReportRenderer) *ReportUseCase {
	return &ReportUseCase{equipment: equipment, renderers: renderers, now: time.Now}
}

// Formats devuelve los formatos disponibles.
func (uc *ReportUseCase) Formats() []string {
	out := make([]string, 0, len(uc.renderers))
	for _, f := range []string{"pdf", "xml"} {
		if _, ok := uc.renderers[f]; ok {
			out = append(out, f)
		}
	}
	return out
}

// Export genera el documento del inventario con los mismos filtros del listado.
// Formato desconocido -> *domain.ValidationError.
func (uc *ReportUseCase) Export(ctx context.Context, format string, filter dto.EquipmentFilterRequest, generatedBy string) (*ExportedFile, error) {
	renderer, ok := uc.renderers[format]
	if !ok {
		return nil, domain.NewValidationError("format", fmt.Sprintf("formato %q no soportado", format))
	}
	list, err := uc.equipment.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	byStatus, err := uc.equipment.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	report := &dto.InventoryReport{
		Title:       "Inventario de equipos",
		GeneratedAt: now,
		GeneratedBy: generatedBy,
		Filter:      filter,
		Items:       list.Items,
		ByStatus:    byStatus,
		TotalValue:  list.TotalValue,
	}
	content, err := renderer.Render(ctx, report)
	if err != nil {
		return nil, fmt.Errorf("exportar inventario (%s): %w", format, err)
	}
	return &ExportedFile{
		Filename:    fmt.Sprintf("inventario_%s.%s", now.Format("20060102_150405"), renderer.Extension()),
		ContentType: renderer.ContentType(),
		Content:     content,
	}, nil
}
