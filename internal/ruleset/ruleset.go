// Package ruleset loads the stat generation rules (stat names, standard array,
// point-buy table, dice method) from YAML, falling back to the built-in rules
// for anything a file leaves out.
package ruleset

import (
	"maps"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-stats/internal/dice"
	"github.com/KirkDiggler/rpg-stats/internal/errors"
	"github.com/KirkDiggler/rpg-stats/internal/stats"
)

// DefaultName names the built-in ruleset
const DefaultName = "standard"

// DefaultDiceNotation is the built-in dice method: 4d6, reroll 1s, keep 3
const DefaultDiceNotation = "4d6k3r1"

// Ruleset holds the tables the stat initializers are built from
type Ruleset struct {
	Name          string     `yaml:"name"`
	StatNames     []string   `yaml:"stat_names"`
	StandardArray []int      `yaml:"standard_array"`
	PointBuy      PointBuy   `yaml:"point_buy"`
	Dice          DiceMethod `yaml:"dice"`
}

// PointBuy is the cost of each purchasable score and the budget
type PointBuy struct {
	Costs map[int]int `yaml:"costs"`
	Total int         `yaml:"total"`
}

// DiceMethod is the roll used for every stat, in NdS[kK][rR] notation
type DiceMethod struct {
	Notation string `yaml:"notation"`
}

// Default returns the built-in rules
func Default() *Ruleset {
	return &Ruleset{
		Name:          DefaultName,
		StatNames:     slices.Clone(stats.DefaultNames),
		StandardArray: slices.Clone(stats.StandardArray),
		PointBuy: PointBuy{
			Costs: maps.Clone(stats.StandardPointBuyCosts),
			Total: stats.StandardPointBuyTotal,
		},
		Dice: DiceMethod{
			Notation: DefaultDiceNotation,
		},
	}
}

// Load reads a ruleset file. An empty path returns Default.
func Load(path string) (*Ruleset, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("ruleset file %s not found", path).WithMeta("path", path)
		}
		return nil, errors.Wrapf(err, "failed to read ruleset %s", path)
	}

	rs, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load ruleset %s", path)
	}
	return rs, nil
}

// Parse decodes a YAML ruleset. Sections left out take the built-in values
// as a whole; a costs table is never merged with the default one.
func Parse(data []byte) (*Ruleset, error) {
	var rs Ruleset
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse ruleset")
	}

	def := Default()
	if rs.Name == "" {
		rs.Name = def.Name
	}
	if len(rs.StatNames) == 0 {
		rs.StatNames = def.StatNames
	}
	if len(rs.StandardArray) == 0 {
		rs.StandardArray = def.StandardArray
	}
	if len(rs.PointBuy.Costs) == 0 {
		rs.PointBuy.Costs = def.PointBuy.Costs
	}
	if rs.PointBuy.Total == 0 {
		rs.PointBuy.Total = def.PointBuy.Total
	}
	if rs.Dice.Notation == "" {
		rs.Dice.Notation = def.Dice.Notation
	}

	if err := rs.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid ruleset")
	}

	return &rs, nil
}

// Validate checks the tables are usable together
func (r *Ruleset) Validate() error {
	vb := errors.NewValidationBuilder()

	if len(r.StatNames) == 0 {
		vb.RequiredField("stat_names")
	}
	seen := make(map[string]bool, len(r.StatNames))
	for _, name := range r.StatNames {
		errors.ValidateRequired("stat_names", name, vb)
		if seen[name] {
			vb.Fieldf("stat_names", "duplicate name %q", name)
		}
		seen[name] = true
	}

	if len(r.StandardArray) != len(r.StatNames) {
		vb.Fieldf("standard_array", "has %d values for %d stats", len(r.StandardArray), len(r.StatNames))
	}

	if len(r.PointBuy.Costs) == 0 {
		vb.RequiredField("point_buy.costs")
	}
	for score, cost := range r.PointBuy.Costs {
		if cost < 0 {
			vb.Fieldf("point_buy.costs", "score %d has negative cost %d", score, cost)
		}
	}
	errors.ValidateMin("point_buy.total", r.PointBuy.Total, 0, vb)

	if _, err := dice.ParseNotation(r.Dice.Notation); err != nil {
		vb.Field("dice.notation", errors.GetMessage(err))
	}

	return vb.Build()
}

// DiceNotation returns the parsed dice method
func (r *Ruleset) DiceNotation() (dice.Notation, error) {
	return dice.ParseNotation(r.Dice.Notation)
}
