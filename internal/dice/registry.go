package dice

import (
	"fmt"
	"sort"

	toolkit "github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-stats/internal/errors"
)

// KindUniform is the registry key for UniformDie
const KindUniform = "uniform"

// StandardSides lists the sides of the standard polyhedral set
var StandardSides = []int{4, 6, 8, 10, 12, 20, 100}

// Constructor builds a die with the given number of sides
type Constructor func(sides int) (Die, error)

// Registry maps die kinds to constructors. It is built by the composition
// root and passed to whatever needs dice; there is no package-level registry.
type Registry struct {
	constructors map[string]Constructor
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		constructors: make(map[string]Constructor),
	}
}

// NewStandardRegistry creates a registry with KindUniform backed by roller
func NewStandardRegistry(roller toolkit.Roller) (*Registry, error) {
	if roller == nil {
		return nil, errors.InvalidArgument("roller is required")
	}

	r := NewRegistry()
	err := r.Register(KindUniform, func(sides int) (Die, error) {
		return NewUniformDie(&UniformDieConfig{
			Sides:  sides,
			Roller: roller,
		})
	})
	if err != nil {
		return nil, err
	}

	return r, nil
}

// Register adds or replaces the constructor for kind
func (r *Registry) Register(kind string, constructor Constructor) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("kind", kind, vb)
	if constructor == nil {
		vb.RequiredField("constructor")
	}
	if err := vb.Build(); err != nil {
		return err
	}

	r.constructors[kind] = constructor
	return nil
}

// Kinds returns the registered kinds in name order
func (r *Registry) Kinds() []string {
	kinds := make([]string, 0, len(r.constructors))
	for kind := range r.constructors {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

// New builds a die of the given kind
func (r *Registry) New(kind string, sides int) (Die, error) {
	constructor, ok := r.constructors[kind]
	if !ok {
		return nil, errors.NotFoundf("unknown die kind %q", kind).WithMeta("kind", kind)
	}

	die, err := constructor(sides)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create %s d%d", kind, sides)
	}
	return die, nil
}

// Standard builds the standard set for kind, keyed "d4" through "d100"
func (r *Registry) Standard(kind string) (map[string]Die, error) {
	set := make(map[string]Die, len(StandardSides))
	for _, sides := range StandardSides {
		die, err := r.New(kind, sides)
		if err != nil {
			return nil, err
		}
		set[fmt.Sprintf("d%d", sides)] = die
	}
	return set, nil
}
