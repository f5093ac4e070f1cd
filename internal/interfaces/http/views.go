package http

import (
	"embed"
	"io/fs"
	nethttp "net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-equipos/internal/domain/access"
	"github.com/jhoicas/inventario-equipos/internal/domain/entity"
)

//go:embed views
var viewsFS embed.FS

// DefaultLayout layout que envuelve todas las páginas.
const DefaultLayout = "layouts/main"

// NewViews construye el motor de plantillas sobre las vistas embebidas en el binario.
func NewViews() *html.Engine {
	sub, err := fs.Sub(viewsFS, "views")
	if err != nil {
		panic("views: " + err.Error())
	}
	engine := html.NewFileSystem(nethttp.FS(sub), ".html")
	engine.AddFuncMap(templateFuncs())
	return engine
}

func templateFuncs() map[string]interface{} {
	return map[string]interface{}{
		"statusLabel": entity.StatusLabel,
		"can": func(role, op string) bool {
			return access.Allowed(role, access.Operation(op))
		},
		"deref": func(s *string) string {
			if s == nil {
				return ""
			}
			return *s
		},
		"money": func(d *decimal.Decimal) string {
			if d == nil {
				return ""
			}
			return d.StringFixed(2)
		},
		"total": func(d decimal.Decimal) string {
			return d.StringFixed(2)
		},
		"isUser": func(ref *int64, id int64) bool {
			return ref != nil && *ref == id
		},
	}
}

// viewData agrega a data lo que necesita el layout: usuario, rol y flash.
func viewData(c *fiber.Ctx, data fiber.Map) fiber.Map {
	if data == nil {
		data = fiber.Map{}
	}
	data["User"] = GetPrincipal(c)
	data["Role"] = GetRole(c)
	data["Flash"] = GetFlash(c)
	if _, ok := data["Title"]; !ok {
		data["Title"] = "Inventario de equipos"
	}
	return data
}

// render dibuja una página con el layout por defecto.
func render(c *fiber.Ctx, name string, data fiber.Map) error {
	return c.Render(name, viewData(c, data), DefaultLayout)
}
