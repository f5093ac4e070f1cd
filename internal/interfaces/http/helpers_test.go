package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/inventario-equipos/internal/application/auth"
	"github.com/jhoicas/inventario-equipos/internal/application/dto"
	"github.com/jhoicas/inventario-equipos/internal/application/usecase"
	"github.com/jhoicas/inventario-equipos/internal/infrastructure/memory"
	"github.com/jhoicas/inventario-equipos/internal/infrastructure/pdf"
	"github.com/jhoicas/inventario-equipos/internal/infrastructure/xmlexport"
	apphttp "github.com/jhoicas/inventario-equipos/internal/interfaces/http"
	"github.com/jhoicas/inventario-equipos/pkg/logger"
	"github.com/jhoicas/inventario-equipos/pkg/password"
)

const (
	testSecret     = "test-secret-key-for-unit-tests"
	testCookieName = "test_session"
	testPassword   = "secreto123"
)

// testEnv aplicación completa sobre un store en memoria.
type testEnv struct {
	app       *fiber.App
	users     *usecase.UserUseCase
	equipment *usecase.EquipmentUseCase
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	password.Cost = bcrypt.MinCost

	store := memory.NewStore()
	userRepo := memory.NewUserRepository(store)
	equipmentRepo := memory.NewEquipmentRepository(store)
	users := usecase.NewUserUseCase(userRepo, memory.NewTxRunner(store))
	equipment := usecase.NewEquipmentUseCase(equipmentRepo, userRepo)
	reports := usecase.NewReportUseCase(equipment, map[string]usecase.ReportRenderer{
		"pdf": pdf.NewMarotoReportRenderer(),
		"xml": xmlexport.NewEtreeRenderer(),
	})
	authUC := auth.NewAuthUseCase(userRepo, users, auth.SessionConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "test"})

	_, err := users.EnsureAdmin(context.Background(), testPassword)
	require.NoError(t, err)

	app := apphttp.NewApp(apphttp.AppConfig{Name: "test", Logger: logger.Nop()}, apphttp.RouterDeps{
		AuthUC:      authUC,
		UserUC:      users,
		EquipmentUC: equipment,
		ReportUC:    reports,
		Cookie:      apphttp.SessionCookie{Name: testCookieName},
	})
	return &testEnv{app: app, users: users, equipment: equipment}
}

// createUser crea una cuenta con la contraseña de prueba y devuelve su ID.
func (e *testEnv) createUser(t *testing.T, username, role string) int64 {
	t.Helper()
	u, err := e.users.Create(context.Background(), dto.CreateUserRequest{Username: username, Password: testPassword, Role: role})
	require.NoError(t, err)
	return u.ID
}

func (e *testEnv) createEquipment(t *testing.T, inventoryNumber string) *dto.EquipmentResponse {
	t.Helper()
	out, err := e.equipment.Create(context.Background(), dto.CreateEquipmentRequest{
		Name:            "Equipo " + inventoryNumber,
		Type:            "Portátil",
		Model:           "Basic",
		InventoryNumber: inventoryNumber,
	})
	require.NoError(t, err)
	return out
}

func (e *testEnv) do(t *testing.T, req *http.Request) *http.Response {
	t.Helper()
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// login inicia sesión por el formulario y devuelve la cookie de sesión.
func (e *testEnv) login(t *testing.T, username string) *http.Cookie {
	t.Helper()
	resp := e.do(t, formRequest(http.MethodPost, "/auth/login", url.Values{
		"username": {username},
		"password": {testPassword},
	}, nil))
	require.Equal(t, http.StatusFound, resp.StatusCode)
	c := findCookie(resp, testCookieName)
	require.NotNil(t, c, "login debe emitir la cookie de sesión")
	return c
}

func formRequest(method, target string, form url.Values, session *http.Cookie) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if session != nil {
		req.AddCookie(session)
	}
	return req
}

func getRequest(target string, session *http.Cookie) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if session != nil {
		req.AddCookie(session)
	}
	return req
}

func findCookie(resp *http.Response, name string) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// flashOf decodifica la cookie flash de la respuesta ("" si no hay).
func flashOf(t *testing.T, resp *http.Response) string {
	t.Helper()
	c := findCookie(resp, "flash")
	if c == nil || c.Value == "" {
		return ""
	}
	v, err := url.QueryUnescape(c.Value)
	require.NoError(t, err)
	return v
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func decodeJSON(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}
