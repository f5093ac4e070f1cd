// Package xmlexport genera el reporte de inventario en XML para intercambio con otros sistemas.
package xmlexport

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	"github.com/jhoicas/inventario-equipos/internal/application/dto"
	"github.com/jhoicas/inventario-equipos/internal/application/usecase"
)

var _ usecase.ReportRenderer = (*EtreeRenderer)(nil)

// EtreeRenderer implementa usecase.ReportRenderer construyendo el documento con etree.
//
//	<inventory generated_at="..." generated_by="..." total="N" total_value="...">
//	  <filter type="" status="" location=""/>
//	  <summary><status key="available" count="1"/>...</summary>
//	  <equipment id="1"><name>...</name>...</equipment>
//	</inventory>
type EtreeRenderer struct{}

// NewEtreeRenderer crea el renderer.
func NewEtreeRenderer() *EtreeRenderer { return &EtreeRenderer{} }

func (r *EtreeRenderer) ContentType() string { return "application/xml" }
func (r *EtreeRenderer) Extension() string   { return "xml" }

// Render serializa el reporte con indentación de dos espacios.
func (r *EtreeRenderer) Render(_ context.Context, report *dto.InventoryReport) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("inventory")
	root.CreateAttr("generated_at", report.GeneratedAt.Format("2006-01-02T15:04:05Z07:00"))
	if report.GeneratedBy != "" {
		root.CreateAttr("generated_by", report.GeneratedBy)
	}
	root.CreateAttr("total", strconv.Itoa(len(report.Items)))
	root.CreateAttr("total_value", report.TotalValue.StringFixed(2))

	filter := root.CreateElement("filter")
	setAttrIf(filter, "type", report.Filter.Type)
	setAttrIf(filter, "status", report.Filter.Status)
	setAttrIf(filter, "location", report.Filter.Location)

	summary := root.CreateElement("summary")
	for _, c := range report.ByStatus {
		s := summary.CreateElement("status")
		s.CreateAttr("key", c.Key)
		s.CreateAttr("count", strconv.Itoa(c.Count))
	}

	for _, e := range report.Items {
		writeEquipment(root.CreateElement("equipment"), e)
	}

	doc.Indent(2)
	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("xml: serializar inventario: %w", err)
	}
	return buf.Bytes(), nil
}

func writeEquipment(el *etree.Element, e dto.EquipmentResponse) {
	el.CreateAttr("id", strconv.FormatInt(e.ID, 10))
	el.CreateElement("inventory_number").SetText(e.InventoryNumber)
	el.CreateElement("name").SetText(e.Name)
	el.CreateElement("type").SetText(e.Type)
	el.CreateElement("model").SetText(e.Model)
	el.CreateElement("status").SetText(e.Status)
	if e.Location != nil {
		el.CreateElement("location").SetText(*e.Location)
	}
	if e.PurchaseDate != nil {
		el.CreateElement("purchase_date").SetText(*e.PurchaseDate)
	}
	if e.Price != nil {
		el.CreateElement("price").SetText(e.Price.StringFixed(2))
	}
	if e.Specification != nil {
		el.CreateElement("specification").SetText(*e.Specification)
	}
	if e.UserID != nil {
		a := el.CreateElement("assigned_to")
		a.CreateAttr("user_id", strconv.FormatInt(*e.UserID, 10))
		a.SetText(e.AssignedUsername)
	}
}

func setAttrIf(el *etree.Element, key, value string) {
	if value != "" {
		el.CreateAttr(key, value)
	}
}
