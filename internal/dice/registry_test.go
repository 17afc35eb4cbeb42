package dice_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-stats/internal/dice"
	"github.com/KirkDiggler/rpg-stats/internal/errors"
)

func TestNewStandardRegistry(t *testing.T) {
	_, err := dice.NewStandardRegistry(nil)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))

	registry, err := dice.NewStandardRegistry(dice.NewSeededRoller(1))
	require.NoError(t, err)
	assert.Equal(t, []string{dice.KindUniform}, registry.Kinds())

	d6, err := registry.New(dice.KindUniform, 6)
	require.NoError(t, err)
	assert.Equal(t, "d6", d6.Name())
	assert.Equal(t, 6, d6.Max())
}

func TestRegistry_Standard(t *testing.T) {
	registry, err := dice.NewStandardRegistry(dice.NewSeededRoller(1))
	require.NoError(t, err)

	set, err := registry.Standard(dice.KindUniform)
	require.NoError(t, err)
	require.Len(t, set, len(dice.StandardSides))

	for _, sides := range dice.StandardSides {
		name := fmt.Sprintf("d%d", sides)
		die, ok := set[name]
		require.True(t, ok, name)
		assert.Equal(t, sides, die.Max())
		assert.Equal(t, 1, die.Min())
	}
}

func TestRegistry_Errors(t *testing.T) {
	registry := dice.NewRegistry()

	t.Run("unknown kind", func(t *testing.T) {
		_, err := registry.New("loaded", 6)
		require.Error(t, err)
		assert.True(t, errors.IsNotFound(err))
		assert.Equal(t, "loaded", errors.GetMeta(err)["kind"])

		_, err = registry.Standard("loaded")
		assert.True(t, errors.IsNotFound(err))
	})

	t.Run("invalid registration", func(t *testing.T) {
		err := registry.Register("", nil)
		require.Error(t, err)
		assert.True(t, errors.IsInvalidArgument(err))
		assert.Contains(t, err.Error(), "constructor: is required")
		assert.Contains(t, err.Error(), "kind: is required")
	})

	t.Run("constructor failure keeps code", func(t *testing.T) {
		require.NoError(t, registry.Register("broken", func(sides int) (dice.Die, error) {
			return nil, errors.OutOfRangef("no d%d", sides)
		}))

		_, err := registry.New("broken", 3)
		require.Error(t, err)
		assert.True(t, errors.IsOutOfRange(err))
		assert.Equal(t, "failed to create broken d3", errors.GetMessage(err))
	})

	t.Run("register replaces", func(t *testing.T) {
		fixed, err := dice.NewUniformDie(&dice.UniformDieConfig{Sides: 2, Roller: dice.NewSeededRoller(3)})
		require.NoError(t, err)
		require.NoError(t, registry.Register("broken", func(int) (dice.Die, error) { return fixed, nil }))

		die, err := registry.New("broken", 3)
		require.NoError(t, err)
		assert.Equal(t, "d2", die.Name())
	})
}
