package http

import (
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Tipos de mensaje flash (coinciden con las clases de alerta de la vista).
const (
	FlashSuccess = "success"
	FlashError   = "error"
	FlashInfo    = "info"
)

const (
	flashCookie = "flash"
	localFlash  = "flash"
)

// Flash mensaje de una sola lectura que sobrevive a una redirección.
type Flash struct {
	Kind    string
	Message string
}

// FlashMiddleware carga el flash de la petición anterior en c.Locals y lo borra del navegador.
func FlashMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if raw := c.Cookies(flashCookie); raw != "" {
			if f, ok := decodeFlash(raw); ok {
				c.Locals(localFlash, f)
			}
			c.Cookie(&fiber.Cookie{Name: flashCookie, Path: "/", Expires: time.Unix(0, 0), MaxAge: -1, HTTPOnly: true})
		}
		return c.Next()
	}
}

// setFlash deja el mensaje para la próxima página y también para la respuesta actual.
func setFlash(c *fiber.Ctx, kind, message string) {
	f := &Flash{Kind: kind, Message: message}
	c.Locals(localFlash, f)
	c.Cookie(&fiber.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(kind + "|" + message),
		Path:     "/",
		MaxAge:   60,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// flashNow muestra el mensaje solo en la respuesta actual (páginas que se renderizan sin redirección).
func flashNow(c *fiber.Ctx, kind, message string) {
	c.Locals(localFlash, &Flash{Kind: kind, Message: message})
}

// GetFlash devuelve el flash pendiente o nil.
func GetFlash(c *fiber.Ctx) *Flash {
	f, _ := c.Locals(localFlash).(*Flash)
	return f
}

func decodeFlash(raw string) (*Flash, bool) {
	v, err := url.QueryUnescape(raw)
	if err != nil {
		return nil, false
	}
	kind, msg, ok := strings.Cut(v, "|")
	if !ok || msg == "" {
		return nil, false
	}
	switch kind {
	case FlashSuccess, FlashError, FlashInfo:
	default:
		kind = FlashInfo
	}
	return &Flash{Kind: kind, Message: msg}, true
}
