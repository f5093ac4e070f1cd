package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-equipos/internal/application/dto"
	"github.com/jhoicas/inventario-equipos/internal/domain"
	"github.com/jhoicas/inventario-equipos/pkg/logger"
)

// ErrorHandler último recurso para errores no controlados por los handlers.
// Nunca tumba el proceso: registra y responde 500 (JSON en /api, página de error en HTML).
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		msg := "error interno del servidor"
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			msg = fe.Message
		}
		if code >= fiber.StatusInternalServerError {
			log.Error().Err(err).
				Str("path", c.Path()).
				Str("request_id", requestID(c)).
				Msg("error no controlado")
		}
		if isAPI(c) {
			return c.Status(code).JSON(dto.ErrorResponse{Code: codeForStatus(code), Message: msg})
		}
		c.Status(code)
		if rerr := render(c, "error", fiber.Map{"Status": code, "Message": msg}); rerr != nil {
			return c.Status(code).SendString(msg)
		}
		return nil
	}
}

// writeAPIError traduce errores de dominio a respuestas JSON; lo desconocido sube al ErrorHandler.
func writeAPIError(c *fiber.Ctx, err error) error {
	if ve, ok := domain.AsValidation(err); ok {
		if ve.Duplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: ve.Error()})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: ve.Error()})
	}
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrForbidden), errors.Is(err, domain.ErrProtectedUser):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()})
	}
	return err
}

// isUserError indica si err se muestra al usuario tal cual (validación, permisos) en lugar de un 500.
func isUserError(err error) bool {
	return errors.Is(err, domain.ErrInvalidInput) ||
		errors.Is(err, domain.ErrProtectedUser) ||
		errors.Is(err, domain.ErrForbidden) ||
		errors.Is(err, domain.ErrNotFound)
}

var fieldLabels = map[string]string{
	"username":         "Usuario",
	"password":         "Contraseña",
	"role":             "Rol",
	"name":             "Nombre",
	"type":             "Tipo",
	"model":            "Modelo",
	"inventory_number": "Número de inventario",
	"status":           "Estado",
	"location":         "Ubicación",
	"purchase_date":    "Fecha de compra",
	"price":            "Precio",
	"user_id":          "Usuario asignado",
	"equipment":        "Equipo",
	"id":               "ID",
	"format":           "Formato",
}

// userMessage texto del flash para un error mostrado al usuario.
func userMessage(err error) string {
	if ve, ok := domain.AsValidation(err); ok {
		label := fieldLabels[ve.Field]
		if label == "" {
			label = ve.Field
		}
		return label + ": " + ve.Reason
	}
	return err.Error()
}

func codeForStatus(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusBadRequest:
		return "BAD_REQUEST"
	case fiber.StatusUnauthorized:
		return "UNAUTHORIZED"
	case fiber.StatusForbidden:
		return "FORBIDDEN"
	}
	if status >= fiber.StatusInternalServerError {
		return "INTERNAL"
	}
	return "ERROR"
}
