package http

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeFlash(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantOK   bool
		wantKind string
		wantMsg  string
	}{
		{"éxito", url.QueryEscape("success|Equipo agregado."), true, FlashSuccess, "Equipo agregado."},
		{"mensaje con barra", url.QueryEscape("error|Tipo: a|b"), true, FlashError, "Tipo: a|b"},
		{"tipo desconocido", url.QueryEscape("warning|hola"), true, FlashInfo, "hola"},
		{"sin separador", url.QueryEscape("hola"), false, "", ""},
		{"mensaje vacío", url.QueryEscape("info|"), false, "", ""},
		{"escape inválido", "%zz", false, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := decodeFlash(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				return
			}
			assert.Equal(t, tt.wantKind, f.Kind)
			assert.Equal(t, tt.wantMsg, f.Message)
		})
	}
}
