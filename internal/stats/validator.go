package stats

import (
	"maps"
	"slices"

	"github.com/KirkDiggler/rpg-stats/internal/errors"
)

// StandardArray is the fixed array handed out for array allocation
var StandardArray = []int{8, 10, 12, 13, 14, 15}

// StandardPointBuyCosts prices each purchasable score
var StandardPointBuyCosts = map[int]int{
	8:  0,
	9:  1,
	10: 2,
	11: 3,
	12: 4,
	13: 5,
	14: 7,
	15: 9,
}

// StandardPointBuyTotal is the point-buy budget
const StandardPointBuyTotal = 27

// Validator checks a full list of generated stats. A nil error means the
// list is acceptable.
type Validator interface {
	Validate(stats []Stat) error
}

// ValidatorFunc adapts a function to Validator
type ValidatorFunc func(stats []Stat) error

// Validate calls f(stats)
func (f ValidatorFunc) Validate(stats []Stat) error {
	return f(stats)
}

// Universal accepts anything
func Universal() Validator {
	return ValidatorFunc(func([]Stat) error { return nil })
}

// Array accepts stats whose values use every entry of reference exactly once
func Array(reference []int) Validator {
	expected := slices.Clone(reference)

	return ValidatorFunc(func(stats []Stat) error {
		actual := values(stats)
		pool := slices.Clone(expected)

		for _, v := range actual {
			i := slices.Index(pool, v)
			if i < 0 {
				return errors.InvalidArgumentf("stat value %d not in given array", v).
					WithMeta("validator", "array").
					WithMeta("value", v).
					WithMeta("actual", actual).
					WithMeta("expected", slices.Clone(expected))
			}
			pool = slices.Delete(pool, i, i+1)
		}

		if len(pool) > 0 {
			return errors.InvalidArgumentf("stat values %v do not use all of array %v", actual, expected).
				WithMeta("validator", "array").
				WithMeta("actual", actual).
				WithMeta("expected", slices.Clone(expected))
		}

		return nil
	})
}

// Cost accepts stats whose summed cost is exactly total
func Cost(costs map[int]int, total int) Validator {
	table := maps.Clone(costs)

	return ValidatorFunc(func(stats []Stat) error {
		spent := 0
		for _, s := range stats {
			cost, ok := table[s.Value]
			if !ok {
				return errors.InvalidArgumentf("invalid stat value %d", s.Value).
					WithMeta("validator", "cost").
					WithMeta("value", s.Value).
					WithMeta("name", s.Name)
			}
			spent += cost
		}

		if spent != total {
			return errors.InvalidArgumentf("total cost is %d, should be %d", spent, total).
				WithMeta("validator", "cost").
				WithMeta("actual", spent).
				WithMeta("expected", total)
		}

		return nil
	})
}

func values(stats []Stat) []int {
	out := make([]int, len(stats))
	for i, s := range stats {
		out[i] = s.Value
	}
	return out
}
