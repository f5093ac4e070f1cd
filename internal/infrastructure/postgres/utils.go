package postgres

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	return hasCode(err, "23505")
}

// isForeignKeyViolation verifica si un error es una violación de FK (23503).
func isForeignKeyViolation(err error) bool {
	return hasCode(err, "23503")
}

// isStringTooLong verifica si un texto excede el VARCHAR(n) de la columna (22001).
func isStringTooLong(err error) bool {
	return hasCode(err, "22001")
}

// isNumericOutOfRange verifica si un número excede la precisión de la columna (22003).
func isNumericOutOfRange(err error) bool {
	return hasCode(err, "22003")
}

// columnLimit texto de una columna y su largo máximo en caracteres.
type columnLimit struct {
	field string
	value string
	max   int
}

// overflowField primer campo que excede su límite; fallback si ninguno (la DB no informa la columna en 22001).
func overflowField(fallback string, limits ...columnLimit) string {
	for _, l := range limits {
		if utf8.RuneCountInString(l.value) > l.max {
			return l.field
		}
	}
	return fallback
}

func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return strings.Contains(err.Error(), code)
}

// countRows lee filas (clave, conteo) de un GROUP BY.
func countRows(rows pgx.Rows) (map[string]int, error) {
	defer rows.Close()
	out := make(map[string]int)
	for rows.Next() {
		var key string
		var n int
		if err := rows.Scan(&key, &n); err != nil {
			return nil, err
		}
		out[key] = n
	}
	return out, rows.Err()
}
