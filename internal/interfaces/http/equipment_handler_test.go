package http_test

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-equipos/internal/application/dto"
	"github.com/jhoicas/inventario-equipos/internal/domain/entity"
)

func TestEquipmentList_Renders(t *testing.T) {
	env := newTestEnv(t)
	env.createEquipment(t, "INV-1")
	env.createEquipment(t, "INV-2")

	resp := env.do(t, getRequest("/equipment/", env.login(t, entity.ProtectedUsername)))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := readBody(t, resp)
	assert.Contains(t, body, "INV-1")
	assert.Contains(t, body, "INV-2")
	assert.Contains(t, body, `action="/equipment/delete/`)
	assert.Contains(t, body, "Agregar equipo")
}

func TestEquipmentList_HidesActionsForUserRole(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "lector", entity.RoleUser)
	env.createEquipment(t, "INV-1")

	resp := env.do(t, getRequest("/equipment/", env.login(t, "lector")))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := readBody(t, resp)
	assert.Contains(t, body, "INV-1")
	assert.NotContains(t, body, "Agregar equipo")
	assert.NotContains(t, body, `action="/equipment/delete/`)
	assert.NotContains(t, body, `action="/equipment/update"`)
}

func TestEquipmentList_Filters(t *testing.T) {
	env := newTestEnv(t)
	env.createEquipment(t, "INV-1")
	_, err := env.equipment.Create(context.Background(), dto.CreateEquipmentRequest{
		Name: "Monitor 24", Type: "Monitor", Model: "M24", InventoryNumber: "MON-1", Status: entity.StatusInRepair,
	})
	require.NoError(t, err)

	resp := env.do(t, getRequest("/equipment/?status=in_repair", env.login(t, entity.ProtectedUsername)))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := readBody(t, resp)
	assert.Contains(t, body, "MON-1")
	assert.NotContains(t, body, "INV-1")
}

func TestEquipmentCreate_Form(t *testing.T) {
	env := newTestEnv(t)
	session := env.login(t, entity.ProtectedUsername)

	resp := env.do(t, formRequest(http.MethodPost, "/equipment/", url.Values{
		"name":             {"Компьютер"},
		"type":             {"Computador"},
		"model":            {"Basic"},
		"inventory_number": {"INV-1"},
		"status":           {"available"},
		"location":         {"Bodega"},
		"purchase_date":    {"2024-03-15"},
		"price":            {"1500,50"},
	}, session))
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/equipment/", resp.Header.Get("Location"))
	assert.Contains(t, flashOf(t, resp), "Equipo agregado")

	list, err := env.equipment.List(context.Background(), dto.EquipmentFilterRequest{})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	got := list.Items[0]
	assert.Equal(t, "Компьютер", got.Name)
	require.NotNil(t, got.Location)
	assert.Equal(t, "Bodega", *got.Location)
	require.NotNil(t, got.PurchaseDate)
	assert.Equal(t, "2024-03-15", *got.PurchaseDate)
	require.NotNil(t, got.Price)
	assert.Equal(t, "1500.5", got.Price.String())
}

func TestEquipmentCreate_ValidationErrorFlashes(t *testing.T) {
	env := newTestEnv(t)
	env.createEquipment(t, "INV-1")
	session := env.login(t, entity.ProtectedUsername)

	tests := []struct {
		name string
		form url.Values
		want string
	}{
		{"sin modelo", url.Values{"name": {"PC"}, "type": {"Computador"}, "inventory_number": {"INV-2"}}, "Error al agregar el equipo"},
		{"inventario repetido", url.Values{"name": {"PC"}, "type": {"Computador"}, "model": {"X"}, "inventory_number": {"INV-1"}}, "Error al agregar el equipo"},
		{"precio negativo", url.Values{"name": {"PC"}, "type": {"Computador"}, "model": {"X"}, "inventory_number": {"INV-3"}, "price": {"-1"}}, "Error al agregar el equipo"},
		{"fecha inválida", url.Values{"name": {"PC"}, "type": {"Computador"}, "model": {"X"}, "inventory_number": {"INV-4"}, "purchase_date": {"15/03/2024"}}, "Error al agregar el equipo"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := env.do(t, formRequest(http.MethodPost, "/equipment/", tt.form, session))
			require.Equal(t, http.StatusFound, resp.StatusCode)
			assert.Contains(t, flashOf(t, resp), tt.want)
		})
	}

	list, err := env.equipment.List(context.Background(), dto.EquipmentFilterRequest{})
	require.NoError(t, err)
	assert.Len(t, list.Items, 1)
}

func TestEquipmentUpdate_Form(t *testing.T) {
	env := newTestEnv(t)
	userID := env.createUser(t, "ana", entity.RoleUser)
	e, err := env.equipment.Create(context.Background(), dto.CreateEquipmentRequest{
		Name: "PC", Type: "Computador", Model: "Basic", InventoryNumber: "INV-1", Location: ptr("Bodega"),
	})
	require.NoError(t, err)
	env.createUser(t, "gestor", entity.RoleManager)

	resp := env.do(t, formRequest(http.MethodPost, "/equipment/update", url.Values{
		"id":           {fmt.Sprint(e.ID)},
		"new_status":   {"in_use"},
		"new_location": {""},
		"new_user_id":  {fmt.Sprint(userID)},
	}, env.login(t, "gestor")))
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Contains(t, flashOf(t, resp), "Equipo actualizado")

	got, err := env.equipment.FindByID(context.Background(), e.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusInUse, got.Status)
	assert.Nil(t, got.Location)
	assert.Equal(t, "PC", got.Name)
	require.NotNil(t, got.UserID)
	assert.Equal(t, userID, *got.UserID)
	assert.Equal(t, "ana", got.AssignedUsername)
}

func TestEquipmentUpdate_UnknownID(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, formRequest(http.MethodPost, "/equipment/update", url.Values{
		"id":       {"42"},
		"new_name": {"X"},
	}, env.login(t, entity.ProtectedUsername)))
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Contains(t, flashOf(t, resp), "Equipo no encontrado.")
}

func TestEquipmentDelete_DeniedForUserRole(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "lector", entity.RoleUser)
	e := env.createEquipment(t, "INV-1")

	resp := env.do(t, formRequest(http.MethodPost, fmt.Sprintf("/equipment/delete/%d", e.ID), url.Values{}, env.login(t, "lector")))
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/equipment/", resp.Header.Get("Location"))
	assert.Contains(t, flashOf(t, resp), "No tiene permisos para eliminar equipos.")

	got, err := env.equipment.FindByID(context.Background(), e.ID)
	require.NoError(t, err)
	assert.NotNil(t, got, "el equipo no debe borrarse")
}

func TestEquipmentDelete_DeniedForManager(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "gestor", entity.RoleManager)
	e := env.createEquipment(t, "INV-1")

	resp := env.do(t, formRequest(http.MethodPost, fmt.Sprintf("/equipment/delete/%d", e.ID), url.Values{}, env.login(t, "gestor")))
	require.Equal(t, http.StatusFound, resp.StatusCode)

	got, err := env.equipment.FindByID(context.Background(), e.ID)
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestEquipmentDelete_Admin(t *testing.T) {
	env := newTestEnv(t)
	e := env.createEquipment(t, "INV-1")

	resp := env.do(t, formRequest(http.MethodPost, fmt.Sprintf("/equipment/delete/%d", e.ID), url.Values{}, env.login(t, entity.ProtectedUsername)))
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Contains(t, flashOf(t, resp), "Equipo INV-1 eliminado.")

	got, err := env.equipment.FindByID(context.Background(), e.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestEquipmentExport(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "lector", entity.RoleUser)
	env.createEquipment(t, "INV-1")
	session := env.login(t, "lector")

	resp := env.do(t, getRequest("/equipment/export?format=xml", session))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/xml", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment;")
	body := readBody(t, resp)
	assert.Contains(t, body, "<inventory")
	assert.Contains(t, body, "INV-1")

	resp = env.do(t, getRequest("/equipment/export", session))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))

	resp = env.do(t, getRequest("/equipment/export?format=csv", session))
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Contains(t, flashOf(t, resp), "Error al exportar")
}

func TestHome_ShowsDashboardWithSession(t *testing.T) {
	env := newTestEnv(t)
	env.createEquipment(t, "INV-1")

	resp := env.do(t, getRequest("/", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "Crear cuenta")

	resp = env.do(t, getRequest("/", env.login(t, entity.ProtectedUsername)))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := readBody(t, resp)
	assert.Contains(t, body, "Tablero")
	assert.Contains(t, body, "Portátil")
}

func ptr[T any](v T) *T { return &v }
