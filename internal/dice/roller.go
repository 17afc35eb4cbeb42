package dice

import (
	"log/slog"
	"slices"

	"github.com/KirkDiggler/rpg-stats/internal/errors"
	"github.com/KirkDiggler/rpg-stats/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-stats/internal/pkg/idgen"
)

// Validate ensures all required dependencies are provided
func (c *RollerConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateMin("HistoryCapacity", c.HistoryCapacity, 0, vb)
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

// Roller evaluates rolls and records them into the History it owns.
// A Roller is not safe for concurrent use; use one per thread of play.
type Roller struct {
	history *History
	clock   clock.Clock
	idGen   idgen.Generator
}

// NewRoller creates a roller with an empty history
func NewRoller(cfg *RollerConfig) (*Roller, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	capacity := cfg.HistoryCapacity
	if capacity == 0 {
		capacity = DefaultHistoryCapacity
	}

	history, err := NewHistory(capacity)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create history")
	}

	return &Roller{
		history: history,
		clock:   cfg.Clock,
		idGen:   cfg.IDGenerator,
	}, nil
}

// RollKeepReroll draws Count values above Floor, keeps the Keep highest and
// sums them. Equal values keep their draw order, so the first drawn counts
// as the lower one.
func (r *Roller) RollKeepReroll(input *RollKeepRerollInput) (*RollOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Die == nil {
		return nil, errors.InvalidArgument("die is required")
	}
	if input.Count < 1 {
		return nil, errors.OutOfRangef("count must be at least 1, got %d", input.Count).
			WithMeta("count", input.Count)
	}
	if input.Keep < 1 || input.Keep > input.Count {
		return nil, errors.OutOfRangef("keep %d must be between 1 and count %d", input.Keep, input.Count).
			WithMeta("keep", input.Keep).
			WithMeta("count", input.Count)
	}

	drawn := make([]DieRoll, 0, input.Count)
	for i := 0; i < input.Count; i++ {
		roll, err := input.Die.Roll(input.Floor)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll %s", input.Die.Name())
		}
		drawn = append(drawn, roll)
	}

	slices.SortStableFunc(drawn, DieRoll.Compare)
	cut := len(drawn) - input.Keep

	set := &DieRollSet{
		ID:       r.idGen.Generate(),
		Rolls:    slices.Clone(drawn[cut:]),
		Dropped:  slices.Clone(drawn[:cut]),
		RolledAt: r.clock.Now(),
	}

	if !input.SkipHistory {
		r.history.Insert(set)
	}

	slog.Debug("Dice rolled",
		"roll_id", set.ID,
		"die", input.Die.Name(),
		"count", input.Count,
		"keep", input.Keep,
		"floor", input.Floor,
		"values", set.Values(),
		"total", set.Value(),
		"recorded", !input.SkipHistory,
	)

	return &RollOutput{
		Total: set.Value(),
		Set:   set,
	}, nil
}

// BaseRoll rolls Count dice with no drop and no forced reroll
func (r *Roller) BaseRoll(input *BaseRollInput) (*RollOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Die == nil {
		return nil, errors.InvalidArgument("die is required")
	}

	return r.RollKeepReroll(&RollKeepRerollInput{
		Count:       input.Count,
		Die:         input.Die,
		Keep:        input.Count,
		Floor:       input.Die.Min() - 1,
		SkipHistory: input.SkipHistory,
	})
}

// RollAdvantage rolls the die twice and keeps the higher total
func (r *Roller) RollAdvantage(input *AdvantageInput) (*AdvantageOutput, error) {
	return r.rollPair(input, func(first, second int) bool { return second > first })
}

// RollDisadvantage rolls the die twice and keeps the lower total
func (r *Roller) RollDisadvantage(input *AdvantageInput) (*AdvantageOutput, error) {
	return r.rollPair(input, func(first, second int) bool { return second < first })
}

// rollPair records both component rolls individually; the pair itself is
// never recorded as a set.
func (r *Roller) rollPair(input *AdvantageInput, preferSecond func(first, second int) bool) (*AdvantageOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	output := &AdvantageOutput{}
	for i := range output.Rolls {
		rolled, err := r.BaseRoll(&BaseRollInput{
			Count:       1,
			Die:         input.Die,
			SkipHistory: input.SkipHistory,
		})
		if err != nil {
			return nil, err
		}
		output.Rolls[i] = rolled.Set
	}

	first, second := output.Rolls[0].Value(), output.Rolls[1].Value()
	output.Total = first
	if preferSecond(first, second) {
		output.Kept = 1
		output.Total = second
	}

	return output, nil
}

// History returns a copy of the recorded roll sets, newest first
func (r *Roller) History() []*DieRollSet {
	return r.history.Snapshot()
}

// HistoryCapacity returns how many sets the roller remembers
func (r *Roller) HistoryCapacity() int {
	return r.history.Capacity()
}
