// Package optional modela campos de actualización parcial con marca explícita de presencia.
// Un Value sin Set significa "no enviado"; un Value con Set y valor cero significa "enviado vacío".
package optional

// Value envuelve un valor opcional de tipo T.
type Value[T any] struct {
	v   T
	set bool
}

// Some crea un Value presente.
func Some[T any](v T) Value[T] {
	return Value[T]{v: v, set: true}
}

// None crea un Value ausente.
func None[T any]() Value[T] {
	return Value[T]{}
}

// IsSet indica si el campo vino en la petición.
func (o Value[T]) IsSet() bool { return o.set }

// Get devuelve el valor y si está presente.
func (o Value[T]) Get() (T, bool) { return o.v, o.set }

// OrElse devuelve el valor si está presente o def en otro caso.
func (o Value[T]) OrElse(def T) T {
	if o.set {
		return o.v
	}
	return def
}
