package http

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-equipos/internal/application/dto"
	"github.com/jhoicas/inventario-equipos/internal/domain"
	"github.com/jhoicas/inventario-equipos/pkg/optional"
)

// formValue devuelve el valor de un campo del formulario y si vino en la petición.
// Distinguir "ausente" de "vacío" es lo que permite la actualización parcial.
func formValue(c *fiber.Ctx, key string) (string, bool) {
	if args := c.Request().PostArgs(); args.Has(key) {
		return string(args.Peek(key)), true
	}
	if form, err := c.MultipartForm(); err == nil {
		if v, ok := form.Value[key]; ok && len(v) > 0 {
			return v[0], true
		}
	}
	return "", false
}

func formID(c *fiber.Ctx, key string) (int64, error) {
	v, _ := formValue(c, key)
	return parseID(v)
}

func parseID(v string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError("id", "identificador inválido")
	}
	return id, nil
}

func parseOptionalText(v string) *string {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	return &v
}

func parseDate(v string) (*time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(dto.DateLayout, v)
	if err != nil {
		return nil, domain.NewValidationError("purchase_date", "fecha inválida, use AAAA-MM-DD")
	}
	return &t, nil
}

// parsePrice acepta punto o coma decimal.
func parsePrice(v string) (decimal.NullDecimal, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(strings.Replace(v, ",", ".", 1))
	if err != nil {
		return decimal.NullDecimal{}, domain.NewValidationError("price", "número inválido")
	}
	return decimal.NewNullDecimal(d), nil
}

func parseUserRef(v string) (*int64, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil, domain.NewValidationError("user_id", "identificador inválido")
	}
	return &id, nil
}

// parseCreateEquipment lee el formulario de alta de equipo.
func parseCreateEquipment(c *fiber.Ctx) (dto.CreateEquipmentRequest, error) {
	get := func(k string) string {
		v, _ := formValue(c, k)
		return v
	}

	in := dto.CreateEquipmentRequest{
		Name:            get("name"),
		Type:            get("type"),
		Model:           get("model"),
		InventoryNumber: get("inventory_number"),
		Status:          get("status"),
		Location:        parseOptionalText(get("location")),
		Specification:   parseOptionalText(get("specification")),
	}
	var err error
	if in.PurchaseDate, err = parseDate(get("purchase_date")); err != nil {
		return in, err
	}
	if in.Price, err = parsePrice(get("price")); err != nil {
		return in, err
	}
	if in.UserID, err = parseUserRef(get("user_id")); err != nil {
		return in, err
	}
	return in, nil
}

// parseUpdateEquipment lee el formulario de edición (campos con prefijo new_).
// Solo los campos enviados entran en la actualización; en los opcionales, enviado vacío borra el dato.
func parseUpdateEquipment(c *fiber.Ctx) (int64, dto.UpdateEquipmentRequest, error) {
	var in dto.UpdateEquipmentRequest
	id, err := formID(c, "id")
	if err != nil {
		return 0, in, err
	}

	text := func(k string) optional.Value[string] {
		if v, ok := formValue(c, "new_"+k); ok {
			return optional.Some(v)
		}
		return optional.None[string]()
	}
	in.Name = text("name")
	in.Type = text("type")
	in.Model = text("model")
	in.InventoryNumber = text("inventory_number")
	in.Status = text("status")

	if v, ok := formValue(c, "new_location"); ok {
		in.Location = optional.Some(parseOptionalText(v))
	}
	if v, ok := formValue(c, "new_specification"); ok {
		in.Specification = optional.Some(parseOptionalText(v))
	}
	if v, ok := formValue(c, "new_purchase_date"); ok {
		d, err := parseDate(v)
		if err != nil {
			return 0, in, err
		}
		in.PurchaseDate = optional.Some(d)
	}
	if v, ok := formValue(c, "new_price"); ok {
		p, err := parsePrice(v)
		if err != nil {
			return 0, in, err
		}
		in.Price = optional.Some(p)
	}
	if v, ok := formValue(c, "new_user_id"); ok {
		u, err := parseUserRef(v)
		if err != nil {
			return 0, in, err
		}
		in.UserID = optional.Some(u)
	}
	return id, in, nil
}

// parseUpdateUser lee el formulario de edición de usuario.
// La contraseña en blanco se interpreta como "no cambiar": el formulario no la precarga.
func parseUpdateUser(c *fiber.Ctx) (int64, dto.UpdateUserRequest, error) {
	var in dto.UpdateUserRequest
	id, err := formID(c, "id")
	if err != nil {
		return 0, in, err
	}
	if v, ok := formValue(c, "new_username"); ok {
		in.Username = optional.Some(v)
	}
	if v, ok := formValue(c, "new_password"); ok && v != "" {
		in.Password = optional.Some(v)
	}
	if v, ok := formValue(c, "new_role"); ok && v != "" {
		in.Role = optional.Some(v)
	}
	return id, in, nil
}
