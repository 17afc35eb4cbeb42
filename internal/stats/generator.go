package stats

import (
	"github.com/KirkDiggler/rpg-stats/internal/dice"
	"github.com/KirkDiggler/rpg-stats/internal/errors"
)

//go:generate mockgen -destination=mock/mock_stats.go -package=statsmock github.com/KirkDiggler/rpg-stats/internal/stats ValueGenerator,Validator,DiceRoller

// ValueGenerator produces the raw value for one stat
type ValueGenerator interface {
	GenerateValue() (int, error)
}

// DiceRoller is the part of dice.Roller that random generators need
type DiceRoller interface {
	RollKeepReroll(input *dice.RollKeepRerollInput) (*dice.RollOutput, error)
}

type constantGenerator int

func (c constantGenerator) GenerateValue() (int, error) {
	return int(c), nil
}

// Constant returns a generator that always yields value
func Constant(value int) ValueGenerator {
	return constantGenerator(value)
}

// RandomConfig configures a Random generator
type RandomConfig struct {
	Roller DiceRoller
	Die    dice.Die
	Count  int
	Keep   int
	Floor  int
}

// Validate ensures all required dependencies are provided
func (c *RandomConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.Die == nil {
		vb.RequiredField("Die")
	}
	errors.ValidateMin("Count", c.Count, 1, vb)
	if c.Count >= 1 {
		errors.ValidateRange("Keep", c.Keep, 1, c.Count, vb)
	}

	return vb.Build()
}

// Random rolls dice for every value. Each call goes through the roller, so
// the roll lands in the roller's history.
type Random struct {
	roller DiceRoller
	die    dice.Die
	count  int
	keep   int
	floor  int
}

// NewRandom creates a roll-backed generator
func NewRandom(cfg *RandomConfig) (*Random, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Random{
		roller: cfg.Roller,
		die:    cfg.Die,
		count:  cfg.Count,
		keep:   cfg.Keep,
		floor:  cfg.Floor,
	}, nil
}

// GenerateValue rolls and returns the total of the kept dice
func (r *Random) GenerateValue() (int, error) {
	output, err := r.roller.RollKeepReroll(&dice.RollKeepRerollInput{
		Count: r.count,
		Die:   r.die,
		Keep:  r.keep,
		Floor: r.floor,
	})
	if err != nil {
		return 0, err
	}
	return output.Total, nil
}
