package dice

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"
)

// DieRoll is one outcome of a single die throw. Ordering and equality only
// consider Value.
type DieRoll struct {
	// Min is the lowest value the throw could produce (reroll floor + 1)
	Min int

	// Max is the die's ceiling
	Max int

	// Value is the drawn result
	Value int

	// Name identifies the die that produced the roll
	Name string
}

// Compare orders rolls by value
func (r DieRoll) Compare(other DieRoll) int {
	return cmp.Compare(r.Value, other.Value)
}

// Equal reports whether both rolls show the same value
func (r DieRoll) Equal(other DieRoll) bool {
	return r.Value == other.Value
}

// String renders the roll as "<min> - <max>: <value>"
func (r DieRoll) String() string {
	return fmt.Sprintf("%d - %d: %d", r.Min, r.Max, r.Value)
}

// DieRollSet is the result of one evaluator invocation
type DieRollSet struct {
	// ID uniquely identifies the set within a roller's history
	ID string

	// Rolls are the kept rolls, ascending by value
	Rolls []DieRoll

	// Dropped are the discarded draws, ascending by value
	Dropped []DieRoll

	// RolledAt is when the set was evaluated
	RolledAt time.Time
}

// Values returns the value of each kept roll
func (s *DieRollSet) Values() []int {
	values := make([]int, len(s.Rolls))
	for i, roll := range s.Rolls {
		values[i] = roll.Value
	}
	return values
}

// Value returns the sum of the kept rolls
func (s *DieRollSet) Value() int {
	total := 0
	for _, roll := range s.Rolls {
		total += roll.Value
	}
	return total
}

// Name returns the name of the die that produced the set
func (s *DieRollSet) Name() string {
	if len(s.Rolls) == 0 {
		return ""
	}
	return s.Rolls[0].Name
}

// String renders a "<count>*<die>:" header, one line per kept roll and, for
// more than one roll, a trailing total.
func (s *DieRollSet) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d*%s:", len(s.Rolls), s.Name())
	for _, roll := range s.Rolls {
		b.WriteString("\n")
		b.WriteString(roll.String())
	}
	if len(s.Rolls) > 1 {
		fmt.Fprintf(&b, "\nTotal: %d", s.Value())
	}
	return b.String()
}

func (s *DieRollSet) clone() *DieRollSet {
	return &DieRollSet{
		ID:       s.ID,
		Rolls:    slices.Clone(s.Rolls),
		Dropped:  slices.Clone(s.Dropped),
		RolledAt: s.RolledAt,
	}
}
