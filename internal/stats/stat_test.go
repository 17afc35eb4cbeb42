package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-stats/internal/errors"
	"github.com/KirkDiggler/rpg-stats/internal/stats"
)

func TestStat_Modifier(t *testing.T) {
	testCases := []struct {
		value    int
		modifier int
	}{
		{value: 1, modifier: -5},
		{value: 3, modifier: -4},
		{value: 8, modifier: -1},
		{value: 9, modifier: -1},
		{value: 10, modifier: 0},
		{value: 11, modifier: 0},
		{value: 15, modifier: 2},
		{value: 18, modifier: 4},
		{value: 20, modifier: 5},
	}

	for _, tc := range testCases {
		stat := stats.Stat{Name: "str", Value: tc.value}
		assert.Equal(t, tc.modifier, stat.Modifier(), "value %d", tc.value)
	}
}

func TestNewStats(t *testing.T) {
	t.Run("keeps insertion order", func(t *testing.T) {
		s, err := stats.NewStats([]stats.Stat{
			{Name: "wis", Value: 12},
			{Name: "str", Value: 8},
			{Name: "cha", Value: 15},
		})
		require.NoError(t, err)

		assert.Equal(t, 3, s.Len())
		assert.Equal(t, []string{"wis", "str", "cha"}, s.Names())
		assert.Equal(t, stats.Stat{Name: "str", Value: 8}, s.All()[1])

		got, ok := s.Get("cha")
		require.True(t, ok)
		assert.Equal(t, 15, got.Value)

		_, ok = s.Get("dex")
		assert.False(t, ok)

		assert.Equal(t, "wis: 1 (12)\nstr: -1 (8)\ncha: 2 (15)", s.String())
	})

	t.Run("rejects duplicate names", func(t *testing.T) {
		_, err := stats.NewStats([]stats.Stat{{Name: "str", Value: 8}, {Name: "str", Value: 9}})
		require.Error(t, err)
		assert.True(t, errors.IsInvalidArgument(err))
	})

	t.Run("rejects blank names", func(t *testing.T) {
		_, err := stats.NewStats([]stats.Stat{{Name: " ", Value: 8}})
		assert.True(t, errors.IsInvalidArgument(err))
	})

	t.Run("returned slices are copies", func(t *testing.T) {
		s, err := stats.NewStats([]stats.Stat{{Name: "str", Value: 8}})
		require.NoError(t, err)

		s.Names()[0] = "dex"
		s.All()[0].Value = 18

		got, ok := s.Get("str")
		require.True(t, ok)
		assert.Equal(t, 8, got.Value)
	})
}
