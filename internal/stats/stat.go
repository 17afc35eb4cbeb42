// Package stats derives validated ability scores from value generators
package stats

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/rpg-stats/internal/errors"
)

// DefaultNames are the six ability scores, in sheet order
var DefaultNames = []string{"str", "dex", "con", "int", "wis", "cha"}

// Stat is one named ability score
type Stat struct {
	Name  string
	Value int
}

// Modifier returns floor((Value-10)/2)
func (s Stat) Modifier() int {
	d := s.Value - 10
	if d < 0 {
		return (d - 1) / 2
	}
	return d / 2
}

// String renders the stat as "<mod> (<value>)"
func (s Stat) String() string {
	return fmt.Sprintf("%d (%d)", s.Modifier(), s.Value)
}

// Stats is an immutable set of uniquely named stats that remembers the
// order they were added in.
type Stats struct {
	order  []string
	byName map[string]Stat
}

// NewStats builds a collection from stats, rejecting blank or repeated names
func NewStats(stats []Stat) (*Stats, error) {
	s := &Stats{
		order:  make([]string, 0, len(stats)),
		byName: make(map[string]Stat, len(stats)),
	}

	for _, stat := range stats {
		if strings.TrimSpace(stat.Name) == "" {
			return nil, errors.InvalidArgument("stat name is required")
		}
		if _, ok := s.byName[stat.Name]; ok {
			return nil, errors.InvalidArgumentf("duplicate stat %q", stat.Name).
				WithMeta("name", stat.Name)
		}
		s.order = append(s.order, stat.Name)
		s.byName[stat.Name] = stat
	}

	return s, nil
}

// Get returns the stat called name
func (s *Stats) Get(name string) (Stat, bool) {
	stat, ok := s.byName[name]
	return stat, ok
}

// All returns the stats in insertion order
func (s *Stats) All() []Stat {
	all := make([]Stat, len(s.order))
	for i, name := range s.order {
		all[i] = s.byName[name]
	}
	return all
}

// Names returns the stat names in insertion order
func (s *Stats) Names() []string {
	names := make([]string, len(s.order))
	copy(names, s.order)
	return names
}

// Len returns the number of stats
func (s *Stats) Len() int {
	return len(s.order)
}

// String renders one "<name>: <mod> (<value>)" line per stat
func (s *Stats) String() string {
	lines := make([]string, len(s.order))
	for i, name := range s.order {
		lines[i] = fmt.Sprintf("%s: %s", name, s.byName[name])
	}
	return strings.Join(lines, "\n")
}
