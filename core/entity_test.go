package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntityMonotonic(t *testing.T) {
	prev := NewEntity()
	for i := 0; i < 1000; i++ {
		e := NewEntity()
		require.Greater(t, e.ID(), prev.ID())
		prev = e
	}
}

func TestEntityIdentity(t *testing.T) {
	a := EntityFromID(7)
	b := EntityFromID(7)
	c := EntityFromID(8)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.True(t, a.Less(c))
	assert.Equal(t, -1, a.Compare(c))
	assert.Equal(t, 0, a.Compare(b))
	assert.Equal(t, 1, c.Compare(a))
	assert.Equal(t, "e#7", a.String())

	// Equal handles collapse to one map key
	seen := map[Entity]int{a: 1}
	seen[b]++
	assert.Len(t, seen, 1)
	assert.Equal(t, 2, seen[a])
}

func TestNilEntity(t *testing.T) {
	assert.True(t, Nil.IsNil())
	assert.False(t, NewEntity().IsNil())
	assert.Equal(t, uint64(0), Nil.ID())
}

func TestViolatePanicsWithContractViolation(t *testing.T) {
	e := EntityFromID(42)
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)

		var v *ContractViolation
		require.True(t, errors.As(err, &v))
		assert.Equal(t, "Store.Get", v.Op)
		assert.Equal(t, e, v.Entity)
		assert.Contains(t, v.Error(), "e#42")
		assert.Contains(t, v.Error(), "Motion")
	}()
	Violate("Store.Get", e, "Motion", "component not present")
}
