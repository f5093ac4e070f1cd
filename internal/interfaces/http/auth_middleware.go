package http

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-equipos/internal/application/auth"
	"github.com/jhoicas/inventario-equipos/internal/application/dto"
	"github.com/jhoicas/inventario-equipos/internal/domain"
	"github.com/jhoicas/inventario-equipos/internal/domain/access"
)

// LocalPrincipal key de c.Locals con el *auth.Principal de la petición.
const LocalPrincipal = "principal"

// SessionCookie parámetros de la cookie de sesión.
type SessionCookie struct {
	Name   string
	Secure bool
}

func (s SessionCookie) set(c *fiber.Ctx, token string, maxAge int) {
	c.Cookie(&fiber.Cookie{
		Name:     s.Name,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HTTPOnly: true,
		Secure:   s.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func (s SessionCookie) clear(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     s.Name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   s.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// SessionMiddleware resuelve la sesión (Bearer Token o cookie) y deja el Principal en c.Locals.
// No corta la petición: las rutas que exigen sesión usan RequireAuth o RequirePermission.
func SessionMiddleware(uc *auth.AuthUseCase, cookie SessionCookie) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fromCookie := false
		token := bearerToken(c)
		if token == "" {
			token = c.Cookies(cookie.Name)
			fromCookie = token != ""
		}
		if token == "" {
			return c.Next()
		}
		p, err := uc.Authenticate(c.UserContext(), token)
		switch {
		case err == nil:
			c.Locals(LocalPrincipal, p)
		case errors.Is(err, domain.ErrUnauthorized):
			// Cookie vencida o de una cuenta eliminada: se descarta.
			if fromCookie {
				cookie.clear(c)
			}
		default:
			return err
		}
		return c.Next()
	}
}

// RequireAuth exige sesión. Sin sesión: 401 en /api, redirección al login en el resto.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetPrincipal(c) == nil {
			return unauthenticated(c)
		}
		return c.Next()
	}
}

// RequirePermission exige que el rol pueda ejecutar op según la tabla de access, y sesión salvo que op sea pública.
// Si se niega, la petición no llega al handler: 403 en /api, flash + redirección a deniedRedirect en HTML.
func RequirePermission(op access.Operation, deniedRedirect string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetPrincipal(c) == nil && !access.IsPublic(op) {
			return unauthenticated(c)
		}
		if err := access.Authorize(GetRole(c), op); err != nil {
			if isAPI(c) {
				return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: deniedMessage(op)})
			}
			setFlash(c, FlashError, deniedMessage(op))
			return c.Redirect(deniedRedirect, fiber.StatusFound)
		}
		return c.Next()
	}
}

// GetPrincipal devuelve el usuario autenticado o nil.
func GetPrincipal(c *fiber.Ctx) *auth.Principal {
	p, _ := c.Locals(LocalPrincipal).(*auth.Principal)
	return p
}

// GetRole devuelve el rol del usuario autenticado ("" si no hay sesión).
func GetRole(c *fiber.Ctx) string {
	if p := GetPrincipal(c); p != nil {
		return p.Role
	}
	return ""
}

func unauthenticated(c *fiber.Ctx) error {
	if isAPI(c) {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión requerida"})
	}
	setFlash(c, FlashInfo, "Inicie sesión para acceder a esta página.")
	return c.Redirect("/auth/login", fiber.StatusFound)
}

func bearerToken(c *fiber.Ctx) string {
	parts := strings.SplitN(c.Get(fiber.HeaderAuthorization), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func isAPI(c *fiber.Ctx) bool {
	return strings.HasPrefix(c.Path(), "/api/")
}

var deniedMessages = map[access.Operation]string{
	access.ViewEquipment:   "No tiene permisos para ver el inventario.",
	access.ExportEquipment: "No tiene permisos para exportar el inventario.",
	access.CreateEquipment: "No tiene permisos para agregar equipos.",
	access.UpdateEquipment: "No tiene permisos para actualizar equipos.",
	access.DeleteEquipment: "No tiene permisos para eliminar equipos.",
	access.ListUsers:       "No tiene permisos para ver los usuarios.",
	access.CreateUser:      "No tiene permisos para crear usuarios.",
	access.UpdateUser:      "No tiene permisos para actualizar usuarios.",
	access.DeleteUser:      "No tiene permisos para eliminar usuarios.",
}

func deniedMessage(op access.Operation) string {
	if m, ok := deniedMessages[op]; ok {
		return m
	}
	return "Acceso denegado."
}
