package stats

import (
	"github.com/KirkDiggler/rpg-stats/internal/dice"
	"github.com/KirkDiggler/rpg-stats/internal/errors"
)

// Standard dice method: roll 4d6, reroll 1s, keep the highest 3
const (
	StandardDiceCount = 4
	StandardDiceKeep  = 3
	StandardDiceFloor = 1
)

// DiceInitializerConfig configures an initializer that rolls every stat
// with the same dice
type DiceInitializerConfig struct {
	Roller DiceRoller
	Die    dice.Die
	Count  int
	Keep   int
	Floor  int

	// Names defaults to DefaultNames
	Names []string
}

// NewDiceInitializer creates an initializer that rolls each stat. Every
// stat shares one Random generator and no validator is applied.
func NewDiceInitializer(cfg *DiceInitializerConfig) (*Initializer, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}

	random, err := NewRandom(&RandomConfig{
		Roller: cfg.Roller,
		Die:    cfg.Die,
		Count:  cfg.Count,
		Keep:   cfg.Keep,
		Floor:  cfg.Floor,
	})
	if err != nil {
		return nil, err
	}

	names := namesOrDefault(cfg.Names)
	generators := make([]ValueGenerator, len(names))
	for i := range generators {
		generators[i] = random
	}

	return NewInitializer(&InitializerConfig{
		Names:      names,
		Generators: generators,
		Validator:  Universal(),
	})
}

// NewStandardDiceInitializer rolls 4d6 keep 3 with 1s rerolled for each stat
func NewStandardDiceInitializer(roller DiceRoller, d6 dice.Die, names []string) (*Initializer, error) {
	return NewDiceInitializer(&DiceInitializerConfig{
		Roller: roller,
		Die:    d6,
		Count:  StandardDiceCount,
		Keep:   StandardDiceKeep,
		Floor:  StandardDiceFloor,
		Names:  names,
	})
}

// NewArrayInitializer assigns values to stats in order and requires them to
// use every entry of array exactly once
func NewArrayInitializer(values, array []int, names []string) (*Initializer, error) {
	return NewInitializer(&InitializerConfig{
		Names:      namesOrDefault(names),
		Generators: constants(values),
		Validator:  Array(array),
	})
}

// NewStandardArrayInitializer validates values against StandardArray
func NewStandardArrayInitializer(values []int, names []string) (*Initializer, error) {
	return NewArrayInitializer(values, StandardArray, names)
}

// NewPointBuyInitializer assigns values to stats in order and requires their
// summed cost to equal total
func NewPointBuyInitializer(values []int, costs map[int]int, total int, names []string) (*Initializer, error) {
	return NewInitializer(&InitializerConfig{
		Names:      namesOrDefault(names),
		Generators: constants(values),
		Validator:  Cost(costs, total),
	})
}

// NewStandardPointBuyInitializer uses StandardPointBuyCosts with a budget of
// StandardPointBuyTotal
func NewStandardPointBuyInitializer(values []int, names []string) (*Initializer, error) {
	return NewPointBuyInitializer(values, StandardPointBuyCosts, StandardPointBuyTotal, names)
}

func namesOrDefault(names []string) []string {
	if len(names) == 0 {
		return DefaultNames
	}
	return names
}

func constants(values []int) []ValueGenerator {
	generators := make([]ValueGenerator, len(values))
	for i, v := range values {
		generators[i] = Constant(v)
	}
	return generators
}
