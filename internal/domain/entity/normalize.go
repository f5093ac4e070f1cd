package entity

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeText recorta espacios y lleva el texto a NFC para que "é" compuesto y
// "e"+acento combinante se comparen igual en los chequeos de unicidad.
func NormalizeText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
