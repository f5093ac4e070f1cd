// Package pdf genera el reporte de inventario en PDF.
//
// Layout de la página A4 (apaisada):
//
//	┌──────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + filtros      │  Fecha + generado por       │
//	│  ──────────────────────────────────────────────────────────  │
//	│  RESUMEN: conteo por estado                                  │
//	│  ──────────────────────────────────────────────────────────  │
//	│  TABLA: N° Inv | Nombre | Tipo | Modelo | Estado | ...       │
//	│  ──────────────────────────────────────────────────────────  │
//	│  TOTALES: equipos listados / valor total                     │
//	└──────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/inventario-equipos/internal/application/dto"
	"github.com/jhoicas/inventario-equipos/internal/application/usecase"
	"github.com/jhoicas/inventario-equipos/internal/domain/entity"
)

var _ usecase.ReportRenderer = (*MarotoReportRenderer)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorStripe  = &props.Color{Red: 235, Green: 241, Blue: 247}
)

// ── Renderer ──────────────────────────────────────────────────────────────────

// MarotoReportRenderer implementa usecase.ReportRenderer usando Maroto v2.
type MarotoReportRenderer struct{}

// NewMarotoReportRenderer construye el renderer.
func NewMarotoReportRenderer() *MarotoReportRenderer { return &MarotoReportRenderer{} }

func (g *MarotoReportRenderer) ContentType() string { return "application/pdf" }
func (g *MarotoReportRenderer) Extension() string   { return "pdf" }

// Render genera el PDF y devuelve sus bytes.
func (g *MarotoReportRenderer) Render(_ context.Context, report *dto.InventoryReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle(report.Title, true).
		WithAuthor(nonEmpty(report.GeneratedBy, "inventario-equipos"), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(report.ByStatus))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(report.Items)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(report))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título y filtros aplicados (izq), fecha y autor (der).
func headerRow(report *dto.InventoryReport) core.Row {
	return row.New(18).Add(
		col.New(8).Add(
			text.New(report.Title, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("Filtros: "+describeFilter(report.Filter), props.Text{
				Size: 8, Top: 10, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+report.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New("Por: "+nonEmpty(report.GeneratedBy, "-"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// summaryRow: conteo por estado en una sola línea.
func summaryRow(byStatus []dto.CountEntry) core.Row {
	parts := make([]string, 0, len(byStatus))
	for _, c := range byStatus {
		parts = append(parts, fmt.Sprintf("%s: %d", entity.StatusLabel(c.Key), c.Count))
	}
	return row.New(8).Add(col.New(12).Add(
		text.New("Resumen por estado   "+strings.Join(parts, "   |   "), props.Text{
			Size: 8, Top: 2, Style: fontstyle.Bold,
		}),
	))
}

type column struct {
	label string
	size  int
	align align.Type
}

var columns = []column{
	{"N° Inv.", 1, align.Left},
	{"Nombre", 2, align.Left},
	{"Tipo", 1, align.Left},
	{"Modelo", 2, align.Left},
	{"Estado", 1, align.Center},
	{"Ubicación", 2, align.Left},
	{"Asignado a", 1, align.Left},
	{"Compra", 1, align.Center},
	{"Precio", 1, align.Right},
}

func tableHeaderRow() core.Row {
	cols := make([]core.Col, 0, len(columns))
	for _, c := range columns {
		cols = append(cols, col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: c.align,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(cols...)
}

// tableRows: una fila por equipo, con franjas alternas.
func tableRows(items []dto.EquipmentResponse) []core.Row {
	result := make([]core.Row, 0, len(items))
	for i, e := range items {
		values := []string{
			e.InventoryNumber,
			e.Name,
			e.Type,
			e.Model,
			entity.StatusLabel(e.Status),
			deref(e.Location),
			nonEmpty(e.AssignedUsername, "-"),
			deref(e.PurchaseDate),
			formatPrice(e),
		}
		cols := make([]core.Col, 0, len(columns))
		for j, c := range columns {
			cols = append(cols, col.New(c.size).Add(text.New(values[j], props.Text{
				Size: 7.5, Align: c.align, Top: 1, Left: 1, Right: 1,
			})))
		}
		r := row.New(6).Add(cols...)
		if i%2 == 1 {
			r = r.WithStyle(&props.Cell{BackgroundColor: colorStripe})
		}
		result = append(result, r)
	}
	if len(result) == 0 {
		result = append(result, row.New(8).Add(col.New(12).Add(
			text.New("No hay equipos para los filtros seleccionados.", props.Text{
				Size: 8, Align: align.Center, Top: 2, Color: colorGray,
			}),
		)))
	}
	return result
}

// totalsRow: cantidad listada y valor total.
func totalsRow(report *dto.InventoryReport) core.Row {
	return row.New(12).Add(
		col.New(6),
		col.New(3).Add(
			text.New(fmt.Sprintf("Equipos: %d", len(report.Items)), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2, Right: 2,
			}),
		),
		col.New(3).Add(
			text.New("Valor total: $"+formatMoney(report.TotalValue.StringFixed(2)), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2, Right: 1,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func describeFilter(f dto.EquipmentFilterRequest) string {
	var parts []string
	if f.Type != "" {
		parts = append(parts, "tipo="+f.Type)
	}
	if f.Status != "" {
		parts = append(parts, "estado="+entity.StatusLabel(f.Status))
	}
	if f.Location != "" {
		parts = append(parts, "ubicación="+f.Location)
	}
	if len(parts) == 0 {
		return "ninguno"
	}
	return strings.Join(parts, ", ")
}

func formatPrice(e dto.EquipmentResponse) string {
	if e.Price == nil {
		return "-"
	}
	return "$" + formatMoney(e.Price.StringFixed(2))
}

func deref(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney inserta puntos de miles en la parte entera y usa coma decimal.
// Ej: "25000.50" → "25.000,50", "1000000" → "1.000.000"
func formatMoney(s string) string {
	intPart, frac, hasFrac := strings.Cut(s, ".")
	neg := strings.HasPrefix(intPart, "-")
	intPart = strings.TrimPrefix(intPart, "-")

	n := len(intPart)
	buf := make([]byte, 0, n+n/3+len(frac)+2)
	if neg {
		buf = append(buf, '-')
	}
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	if hasFrac {
		buf = append(buf, ',')
		buf = append(buf, frac...)
	}
	return string(buf)
}
