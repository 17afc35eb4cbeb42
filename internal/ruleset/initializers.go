package ruleset

import (
	"github.com/KirkDiggler/rpg-stats/internal/dice"
	"github.com/KirkDiggler/rpg-stats/internal/errors"
	"github.com/KirkDiggler/rpg-stats/internal/stats"
)

// DiceInitializer builds a stats initializer that rolls the ruleset's dice
// method for every stat, using dice of kind from registry
func (r *Ruleset) DiceInitializer(roller stats.DiceRoller, registry *dice.Registry, kind string) (*stats.Initializer, error) {
	if registry == nil {
		return nil, errors.InvalidArgument("registry is required")
	}

	notation, err := r.DiceNotation()
	if err != nil {
		return nil, err
	}

	die, err := registry.New(kind, notation.Sides)
	if err != nil {
		return nil, err
	}

	input := notation.RollInput(die)
	return stats.NewDiceInitializer(&stats.DiceInitializerConfig{
		Roller: roller,
		Die:    die,
		Count:  input.Count,
		Keep:   input.Keep,
		Floor:  input.Floor,
		Names:  r.StatNames,
	})
}

// ArrayInitializer validates values against the ruleset's standard array
func (r *Ruleset) ArrayInitializer(values []int) (*stats.Initializer, error) {
	return stats.NewArrayInitializer(values, r.StandardArray, r.StatNames)
}

// PointBuyInitializer validates values against the ruleset's point-buy table
func (r *Ruleset) PointBuyInitializer(values []int) (*stats.Initializer, error) {
	return stats.NewPointBuyInitializer(values, r.PointBuy.Costs, r.PointBuy.Total, r.StatNames)
}
