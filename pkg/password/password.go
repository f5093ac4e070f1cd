// Package password encapsula el hash de contraseñas con bcrypt.
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MaxBytes longitud máxima que acepta bcrypt.
const MaxBytes = 72

// Cost costo de bcrypt usado al hashear. Los tests pueden bajarlo con bcrypt.MinCost.
var Cost = bcrypt.DefaultCost

// Hash genera el hash bcrypt (con salt) de una contraseña en texto plano.
// Más de MaxBytes -> bcrypt.ErrPasswordTooLong (envuelto).
func Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Matches compara una contraseña en texto plano contra su hash.
// Devuelve false si no coincide; error solo si el hash está corrupto.
func Matches(hash, plain string) (bool, error) {
	if len(plain) > MaxBytes {
		return false, nil
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("compare password: %w", err)
}
