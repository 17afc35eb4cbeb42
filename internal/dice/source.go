package dice

import (
	"math/rand"

	toolkit "github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-stats/internal/errors"
)

// SeededRoller is a toolkit roller over math/rand. Two rollers created with
// the same seed produce the same sequence, which makes a run replayable.
type SeededRoller struct {
	random *rand.Rand
}

// NewSeededRoller creates a deterministic roller
func NewSeededRoller(seed int64) *SeededRoller {
	return &SeededRoller{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Ensure SeededRoller implements the toolkit roller
var _ toolkit.Roller = (*SeededRoller)(nil)

// Roll returns a value in [1, size]
func (r *SeededRoller) Roll(size int) (int, error) {
	if size < 1 {
		return 0, errors.OutOfRangef("die size must be at least 1, got %d", size)
	}
	return r.random.Intn(size) + 1, nil
}

// RollN returns count values in [1, size]
func (r *SeededRoller) RollN(count, size int) ([]int, error) {
	if count < 1 {
		return nil, errors.OutOfRangef("count must be at least 1, got %d", count)
	}

	results := make([]int, count)
	for i := range results {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		results[i] = v
	}
	return results, nil
}

// NewSource returns the crypto-backed toolkit roller for seed 0 and a
// SeededRoller otherwise
func NewSource(seed int64) toolkit.Roller {
	if seed == 0 {
		return toolkit.DefaultRoller
	}
	return NewSeededRoller(seed)
}
