package dice

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-stats/internal/errors"
)

// notationRegex matches "NdS" with optional "kK" (keep highest K) and "rR"
// (reroll R or less), e.g. "4d6k3r1". The count defaults to 1.
var notationRegex = regexp.MustCompile(`^(\d*)d(\d+)(?:k(\d+))?(?:r(\d+))?$`)

// Notation is a parsed dice expression
type Notation struct {
	Count  int
	Sides  int
	Keep   int
	Reroll int
}

// ParseNotation parses dice notation like "1d20", "d20", "2d6" or "4d6k3r1".
// Keep defaults to Count.
func ParseNotation(notation string) (Notation, error) {
	matches := notationRegex.FindStringSubmatch(strings.ToLower(strings.TrimSpace(notation)))
	if matches == nil {
		return Notation{}, errors.InvalidArgumentf("invalid dice notation: %s (expected format: NdS[kK][rR])", notation)
	}

	n := Notation{Count: 1}
	var err error
	if matches[1] != "" {
		if n.Count, err = strconv.Atoi(matches[1]); err != nil {
			return Notation{}, errors.InvalidArgumentf("invalid dice count in notation: %s", notation)
		}
	}
	if n.Sides, err = strconv.Atoi(matches[2]); err != nil {
		return Notation{}, errors.InvalidArgumentf("invalid die size in notation: %s", notation)
	}
	n.Keep = n.Count
	if matches[3] != "" {
		if n.Keep, err = strconv.Atoi(matches[3]); err != nil {
			return Notation{}, errors.InvalidArgumentf("invalid keep count in notation: %s", notation)
		}
	}
	if matches[4] != "" {
		if n.Reroll, err = strconv.Atoi(matches[4]); err != nil {
			return Notation{}, errors.InvalidArgumentf("invalid reroll value in notation: %s", notation)
		}
	}

	if n.Count < 1 || n.Sides < 1 {
		return Notation{}, errors.InvalidArgumentf("dice count and size must be positive: %s", notation)
	}
	if n.Keep < 1 || n.Keep > n.Count {
		return Notation{}, errors.OutOfRangef("keep must be between 1 and %d: %s", n.Count, notation)
	}
	if n.Reroll >= n.Sides {
		return Notation{}, errors.OutOfRangef("reroll %d leaves nothing to roll on a d%d", n.Reroll, n.Sides)
	}

	return n, nil
}

// String renders the notation in canonical form
func (n Notation) String() string {
	s := fmt.Sprintf("%dd%d", n.Count, n.Sides)
	if n.Keep != n.Count {
		s += fmt.Sprintf("k%d", n.Keep)
	}
	if n.Reroll > 0 {
		s += fmt.Sprintf("r%d", n.Reroll)
	}
	return s
}

// RollInput builds the evaluator input for rolling this notation with die.
// A zero Reroll uses the die's own floor.
func (n Notation) RollInput(die Die) *RollKeepRerollInput {
	floor := die.Min() - 1
	if n.Reroll > floor {
		floor = n.Reroll
	}

	return &RollKeepRerollInput{
		Count: n.Count,
		Die:   die,
		Keep:  n.Keep,
		Floor: floor,
	}
}
