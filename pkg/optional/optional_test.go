package optional_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/inventario-equipos/pkg/optional"
)

func TestValue_SomeNone(t *testing.T) {
	v, ok := optional.Some("x").Get()
	assert.True(t, ok)
	assert.Equal(t, "x", v)

	empty := optional.Some("")
	assert.True(t, empty.IsSet(), "un valor vacío enviado sigue presente")

	none := optional.None[string]()
	assert.False(t, none.IsSet())
	assert.Equal(t, "def", none.OrElse("def"))
	assert.Equal(t, "", empty.OrElse("def"))

	var zero optional.Value[int]
	assert.False(t, zero.IsSet(), "el valor cero del tipo es ausente")
}
