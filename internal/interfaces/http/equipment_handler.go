package http

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-equipos/internal/application/dto"
	"github.com/jhoicas/inventario-equipos/internal/application/usecase"
	"github.com/jhoicas/inventario-equipos/internal/domain/access"
	"github.com/jhoicas/inventario-equipos/internal/domain/entity"
)

const equipmentListPath = "/equipment/"

// EquipmentHandler páginas y endpoints JSON del inventario.
type EquipmentHandler struct {
	uc      *usecase.EquipmentUseCase
	users   *usecase.UserUseCase
	reports *usecase.ReportUseCase
}

// NewEquipmentHandler construye el handler.
func NewEquipmentHandler(uc *usecase.EquipmentUseCase, users *usecase.UserUseCase, reports *usecase.ReportUseCase) *EquipmentHandler {
	return &EquipmentHandler{uc: uc, users: users, reports: reports}
}

// List GET /equipment/?type=&status=&location=: listado filtrable con conteos y catálogos para los formularios.
func (h *EquipmentHandler) List(c *fiber.Ctx) error {
	var filter dto.EquipmentFilterRequest
	if err := c.QueryParser(&filter); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "filtros inválidos")
	}
	ctx := c.UserContext()
	list, err := h.uc.List(ctx, filter)
	if err != nil {
		return err
	}
	byStatus, err := h.uc.CountByStatus(ctx)
	if err != nil {
		return err
	}
	byType, err := h.uc.CountByType(ctx)
	if err != nil {
		return err
	}
	users, err := h.users.List(ctx)
	if err != nil {
		return err
	}
	return render(c, "equipment/list", fiber.Map{
		"Title":     "Equipos",
		"List":      list,
		"Filter":    filter,
		"ByStatus":  byStatus,
		"ByType":    byType,
		"Types":     entity.EquipmentTypes,
		"Statuses":  entity.Statuses,
		"Locations": entity.Locations,
		"Users":     users,
		"Formats":   h.reports.Formats(),
	})
}

// Create POST /equipment/ (admin, manager).
func (h *EquipmentHandler) Create(c *fiber.Ctx) error {
	in, err := parseCreateEquipment(c)
	if err == nil {
		_, err = h.uc.Create(c.UserContext(), in)
	}
	if err != nil {
		return flashAndRedirect(c, err, "Error al agregar el equipo", equipmentListPath)
	}
	setFlash(c, FlashSuccess, "Equipo agregado correctamente.")
	return c.Redirect(equipmentListPath, fiber.StatusFound)
}

// Update POST /equipment/update (admin, manager). El ID viaja en el formulario.
func (h *EquipmentHandler) Update(c *fiber.Ctx) error {
	id, in, err := parseUpdateEquipment(c)
	var out *dto.EquipmentResponse
	if err == nil {
		out, err = h.uc.Update(c.UserContext(), id, in)
	}
	if err != nil {
		return flashAndRedirect(c, err, "Error al actualizar el equipo", equipmentListPath)
	}
	if out == nil {
		setFlash(c, FlashError, "Equipo no encontrado.")
	} else {
		setFlash(c, FlashSuccess, "Equipo actualizado correctamente.")
	}
	return c.Redirect(equipmentListPath, fiber.StatusFound)
}

// Delete POST /equipment/delete/:id (admin).
func (h *EquipmentHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	var out *dto.EquipmentResponse
	if err == nil {
		out, err = h.uc.Delete(c.UserContext(), id)
	}
	if err != nil {
		return flashAndRedirect(c, err, "Error al eliminar el equipo", equipmentListPath)
	}
	if out == nil {
		setFlash(c, FlashError, "Equipo no encontrado.")
	} else {
		setFlash(c, FlashSuccess, fmt.Sprintf("Equipo %s eliminado.", out.InventoryNumber))
	}
	return c.Redirect(equipmentListPath, fiber.StatusFound)
}

// Export GET /equipment/export?format=pdf|xml: descarga el listado con los filtros actuales.
func (h *EquipmentHandler) Export(c *fiber.Ctx) error {
	var filter dto.EquipmentFilterRequest
	if err := c.QueryParser(&filter); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "filtros inválidos")
	}
	format := strings.ToLower(c.Query("format", "pdf"))
	var by string
	if p := GetPrincipal(c); p != nil {
		by = p.Username
	}
	file, err := h.reports.Export(c.UserContext(), format, filter, by)
	if err != nil {
		return flashAndRedirect(c, err, "Error al exportar", equipmentListPath)
	}
	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, file.Filename))
	return c.Send(file.Content)
}

// ListJSON godoc
// @Summary      Listar equipos
// @Description  Filtros exactos opcionales por tipo, estado y ubicación. Sin paginación.
// @Tags         equipment
// @Produce      json
// @Security     BearerAuth
// @Param        type      query  string  false  "Tipo"
// @Param        status    query  string  false  "Estado (available, in_use, in_repair, retired)"
// @Param        location  query  string  false  "Ubicación"
// @Success      200  {object}  dto.EquipmentListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/equipment [get]
func (h *EquipmentHandler) ListJSON(c *fiber.Ctx) error {
	var filter dto.EquipmentFilterRequest
	if err := c.QueryParser(&filter); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "filtros inválidos"})
	}
	list, err := h.uc.List(c.UserContext(), filter)
	if err != nil {
		return writeAPIError(c, err)
	}
	return c.JSON(list)
}

// GetJSON godoc
// @Summary      Obtener equipo
// @Tags         equipment
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "ID del equipo"
// @Success      200  {object}  dto.EquipmentResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/equipment/{id} [get]
func (h *EquipmentHandler) GetJSON(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return writeAPIError(c, err)
	}
	out, err := h.uc.FindByID(c.UserContext(), id)
	if err != nil {
		return writeAPIError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "equipo no encontrado"})
	}
	return c.JSON(out)
}

// Stats godoc
// @Summary      Estadísticas del inventario
// @Description  Conteos por estado y tipo y valor total. El conteo por rol solo se incluye para administradores.
// @Tags         equipment
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.StatsResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/stats [get]
func (h *EquipmentHandler) Stats(c *fiber.Ctx) error {
	ctx := c.UserContext()
	stats, err := h.uc.Stats(ctx)
	if err != nil {
		return writeAPIError(c, err)
	}
	if access.Allowed(GetRole(c), access.ListUsers) {
		if stats.ByRole, err = h.users.CountByRole(ctx); err != nil {
			return writeAPIError(c, err)
		}
	}
	return c.JSON(stats)
}

// flashAndRedirect muestra los errores de usuario como flash; el resto sube al ErrorHandler.
func flashAndRedirect(c *fiber.Ctx, err error, prefix, to string) error {
	if !isUserError(err) {
		return err
	}
	setFlash(c, FlashError, prefix+": "+userMessage(err))
	return c.Redirect(to, fiber.StatusFound)
}
