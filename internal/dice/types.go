package dice

import (
	"github.com/KirkDiggler/rpg-stats/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-stats/internal/pkg/idgen"
)

// RollerConfig holds the dependencies for a Roller
type RollerConfig struct {
	// HistoryCapacity bounds the roll history; zero means DefaultHistoryCapacity
	HistoryCapacity int

	Clock       clock.Clock
	IDGenerator idgen.Generator
}

// RollKeepRerollInput rolls Count dice, keeps the highest Keep and never
// accepts a value at or below Floor
type RollKeepRerollInput struct {
	Count int
	Die   Die
	Keep  int
	Floor int

	// SkipHistory leaves the result out of the roller's history
	SkipHistory bool
}

// BaseRollInput rolls Count dice and keeps them all
type BaseRollInput struct {
	Count       int
	Die         Die
	SkipHistory bool
}

// RollOutput is the result of a single evaluation
type RollOutput struct {
	Total int
	Set   *DieRollSet
}

// AdvantageInput rolls Die twice and keeps one of the two results.
// SkipHistory applies to both component rolls.
type AdvantageInput struct {
	Die         Die
	SkipHistory bool
}

// AdvantageOutput holds the chosen total and both component rolls
type AdvantageOutput struct {
	Total int

	// Rolls are the two component sets in draw order
	Rolls [2]*DieRollSet

	// Kept is the index into Rolls of the set that produced Total.
	// Ties keep the first roll.
	Kept int
}
