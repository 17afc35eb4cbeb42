package stats

import (
	"log/slog"
	"slices"

	"github.com/KirkDiggler/rpg-stats/internal/errors"
)

// InitializerConfig binds one generator to each stat name, by position
type InitializerConfig struct {
	Names      []string
	Generators []ValueGenerator

	// Validator checks the generated list. Nil means Universal.
	Validator Validator
}

// Validate ensures names and generators line up
func (c *InitializerConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if len(c.Names) == 0 {
		vb.RequiredField("Names")
	}
	if len(c.Generators) != len(c.Names) {
		vb.Fieldf("Generators", "got %d generators for %d names", len(c.Generators), len(c.Names))
	}
	if slices.Contains(c.Generators, nil) {
		vb.Field("Generators", "must not contain nil")
	}

	seen := make(map[string]bool, len(c.Names))
	for _, name := range c.Names {
		if seen[name] {
			vb.Fieldf("Names", "duplicate name %q", name)
		}
		seen[name] = true
	}

	return vb.Build()
}

// Initializer produces validated Stats
type Initializer struct {
	names      []string
	generators []ValueGenerator
	validator  Validator
}

// NewInitializer creates an initializer. A mismatch between names and
// generators fails here rather than at Generate.
func NewInitializer(cfg *InitializerConfig) (*Initializer, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	validator := cfg.Validator
	if validator == nil {
		validator = Universal()
	}

	return &Initializer{
		names:      slices.Clone(cfg.Names),
		generators: slices.Clone(cfg.Generators),
		validator:  validator,
	}, nil
}

// Generate calls each generator once, in order, and validates the result.
// A validation failure is returned as is and no Stats are built.
func (i *Initializer) Generate() (*Stats, error) {
	generated := make([]Stat, len(i.names))
	for idx, name := range i.names {
		value, err := i.generators[idx].GenerateValue()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to generate %s", name)
		}
		generated[idx] = Stat{Name: name, Value: value}
	}

	if err := i.validator.Validate(generated); err != nil {
		slog.Debug("Generated stats rejected",
			"values", values(generated),
			"error", err,
		)
		return nil, err
	}

	stats, err := NewStats(generated)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build stats")
	}

	slog.Debug("Stats generated", "values", values(generated))

	return stats, nil
}

// Names returns the bound stat names in order
func (i *Initializer) Names() []string {
	return slices.Clone(i.names)
}
