package xmlexport

import (
	"context"
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-equipos/internal/application/dto"
)

func TestEtreeRenderer_Render(t *testing.T) {
	loc := "Bodega"
	date := "2023-05-10"
	price := decimal.RequireFromString("1500.5")
	uid := int64(3)

	report := &dto.InventoryReport{
		Title:       "Inventario de equipos",
		GeneratedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		GeneratedBy: "admin",
		Filter:      dto.EquipmentFilterRequest{Status: "in_use"},
		ByStatus:    []dto.CountEntry{{Key: "available", Count: 0}, {Key: "in_use", Count: 1}},
		TotalValue:  price,
		Items: []dto.EquipmentResponse{{
			ID: 7, Name: "Portátil & cargador", Type: "Portátil", Model: "T14",
			InventoryNumber: "INV-7", Status: "in_use",
			Location: &loc, PurchaseDate: &date, Price: &price,
			UserID: &uid, AssignedUsername: "ana",
		}},
	}

	out, err := NewEtreeRenderer().Render(context.Background(), report)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))
	root := doc.Root()
	require.NotNil(t, root)
	assert.Equal(t, "inventory", root.Tag)
	assert.Equal(t, "1", root.SelectAttrValue("total", ""))
	assert.Equal(t, "1500.50", root.SelectAttrValue("total_value", ""))
	assert.Equal(t, "in_use", root.FindElement("filter").SelectAttrValue("status", ""))
	assert.Len(t, root.FindElements("summary/status"), 2)

	eq := root.FindElement("equipment")
	require.NotNil(t, eq)
	assert.Equal(t, "7", eq.SelectAttrValue("id", ""))
	assert.Equal(t, "Portátil & cargador", eq.FindElement("name").Text())
	assert.Equal(t, "2023-05-10", eq.FindElement("purchase_date").Text())
	assert.Equal(t, "ana", eq.FindElement("assigned_to").Text())
	assert.Nil(t, eq.FindElement("specification"))
}

func TestEtreeRenderer_Metadatos(t *testing.T) {
	r := NewEtreeRenderer()
	assert.Equal(t, "application/xml", r.ContentType())
	assert.Equal(t, "xml", r.Extension())
}
