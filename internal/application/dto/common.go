package dto

// DateLayout formato de fechas en formularios y JSON.
const DateLayout = "2006-01-02"

// CountEntry par clave/conteo de un agregado (por estado, tipo o rol).
type CountEntry struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
