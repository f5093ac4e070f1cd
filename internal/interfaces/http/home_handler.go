package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-equipos/internal/application/usecase"
)

// HomeHandler portada pública y tablero.
type HomeHandler struct {
	equipment *usecase.EquipmentUseCase
}

// NewHomeHandler construye el handler.
func NewHomeHandler(equipment *usecase.EquipmentUseCase) *HomeHandler {
	return &HomeHandler{equipment: equipment}
}

// Index GET /: pública; con sesión muestra además el resumen del inventario.
func (h *HomeHandler) Index(c *fiber.Ctx) error {
	if GetPrincipal(c) == nil {
		return render(c, "index", fiber.Map{"Authenticated": false})
	}
	return h.Home(c)
}

// Home GET /home: tablero (requiere sesión).
func (h *HomeHandler) Home(c *fiber.Ctx) error {
	stats, err := h.equipment.Stats(c.UserContext())
	if err != nil {
		return err
	}
	return render(c, "index", fiber.Map{"Authenticated": true, "Stats": stats})
}
