package engine

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/worldstore/component"
	"github.com/lixenwraith/worldstore/vmath"
)

func TestEntityBuilder(t *testing.T) {
	r := NewRegistry(WithLogger(zerolog.Nop()))

	b := r.NewEntity()
	e := With(
		With(b, r.Components.Motion, component.MotionComponent{Position: vmath.V2F(1, 2)}),
		r.Components.Sprite, component.SpriteComponent{Rune: '@'},
	).Build()

	assert.Equal(t, b.Entity(), e)
	assert.True(t, r.Valid(e))
	assert.Equal(t, vmath.V2F(1, 2), r.Components.Motion.Get(e).Position)
	assert.Equal(t, '@', r.Components.Sprite.Get(e).Rune)

	requireViolation(t, "EntityBuilder.With", func() {
		With(b, r.Components.Health, component.HealthComponent{})
	})

	foreign := NewRegistry()
	requireViolation(t, "EntityBuilder.With", func() {
		With(r.NewEntity(), foreign.Components.Health, component.HealthComponent{})
	})

	empty := r.NewEntity().Build()
	assert.False(t, r.Valid(empty))
}
