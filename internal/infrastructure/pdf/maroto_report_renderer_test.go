package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-equipos/internal/application/dto"
)

func TestMarotoReportRenderer_GeneraPDF(t *testing.T) {
	price := decimal.NewFromInt(2500000)
	report := &dto.InventoryReport{
		Title:       "Inventario de equipos",
		GeneratedAt: time.Now(),
		GeneratedBy: "admin",
		ByStatus:    []dto.CountEntry{{Key: "available", Count: 2}},
		TotalValue:  price,
		Items: []dto.EquipmentResponse{
			{ID: 1, Name: "Equipo 1", Type: "Computador", Model: "M1", InventoryNumber: "INV-1", Status: "available", Price: &price},
			{ID: 2, Name: "Equipo 2", Type: "Monitor", Model: "M2", InventoryNumber: "INV-2", Status: "available"},
		},
	}

	out, err := NewMarotoReportRenderer().Render(context.Background(), report)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestMarotoReportRenderer_SinEquipos(t *testing.T) {
	out, err := NewMarotoReportRenderer().Render(context.Background(), &dto.InventoryReport{
		Title:       "Inventario de equipos",
		GeneratedAt: time.Now(),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "25.000", formatMoney("25000"))
	assert.Equal(t, "1.000.000,50", formatMoney("1000000.50"))
	assert.Equal(t, "999,00", formatMoney("999.00"))
	assert.Equal(t, "-1.234,00", formatMoney("-1234.00"))
}

func TestDescribeFilter(t *testing.T) {
	assert.Equal(t, "ninguno", describeFilter(dto.EquipmentFilterRequest{}))
	assert.Equal(t, "tipo=Monitor, estado=En uso",
		describeFilter(dto.EquipmentFilterRequest{Type: "Monitor", Status: "in_use"}))
}
