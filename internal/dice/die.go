// Package dice implements dice, the roll evaluator and the bounded roll history
package dice

import (
	"fmt"

	toolkit "github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-stats/internal/errors"
)

//go:generate mockgen -destination=mock/mock_die.go -package=dicemock github.com/KirkDiggler/rpg-stats/internal/dice Die

// Die produces one DieRoll per call. Roll never returns a value at or below
// floor; a floor below Min()-1, or one that leaves no value to draw, is an
// OutOfRange error.
type Die interface {
	Roll(floor int) (DieRoll, error)
	Min() int
	Max() int
	Name() string
}

// UniformDieConfig configures a UniformDie
type UniformDieConfig struct {
	Sides  int
	Roller toolkit.Roller
}

// Validate ensures all required dependencies are provided
func (c *UniformDieConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateMin("Sides", c.Sides, 1, vb)
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}

	return vb.Build()
}

// UniformDie draws uniformly from (floor, sides]
type UniformDie struct {
	sides  int
	roller toolkit.Roller
}

// NewUniformDie creates a die with faces 1..Sides
func NewUniformDie(cfg *UniformDieConfig) (*UniformDie, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &UniformDie{
		sides:  cfg.Sides,
		roller: cfg.Roller,
	}, nil
}

// Ensure UniformDie implements Die
var _ Die = (*UniformDie)(nil)

// Min returns the lowest face
func (d *UniformDie) Min() int {
	return 1
}

// Max returns the highest face
func (d *UniformDie) Max() int {
	return d.sides
}

// Name returns the conventional die name, e.g. "d6"
func (d *UniformDie) Name() string {
	return fmt.Sprintf("d%d", d.sides)
}

// Roll draws one value from (floor, Max()]
func (d *UniformDie) Roll(floor int) (DieRoll, error) {
	if floor < d.Min()-1 {
		return DieRoll{}, errors.OutOfRangef("floor %d is below %s minimum %d", floor, d.Name(), d.Min()-1).
			WithMeta("floor", floor)
	}
	if floor >= d.Max() {
		return DieRoll{}, errors.OutOfRangef("floor %d leaves nothing to roll on a %s", floor, d.Name()).
			WithMeta("floor", floor)
	}

	span := d.sides - floor
	drawn, err := d.roller.Roll(span)
	if err != nil {
		return DieRoll{}, errors.Wrapf(err, "failed to roll %s", d.Name())
	}
	if drawn < 1 || drawn > span {
		return DieRoll{}, errors.Internalf("random source returned %d for size %d", drawn, span)
	}

	return DieRoll{
		Min:   floor + 1,
		Max:   d.sides,
		Value: floor + drawn,
		Name:  d.Name(),
	}, nil
}
