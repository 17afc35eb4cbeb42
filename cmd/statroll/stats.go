package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-stats/internal/dice"
	"github.com/KirkDiggler/rpg-stats/internal/stats"
)

func newStatsCmd(global *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Generate ability scores",
	}

	var (
		showRolls bool
		notation  string
	)
	diceCmd := &cobra.Command{
		Use:   "dice",
		Short: "Roll every ability score with the ruleset's dice method",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(cmd, global)
			if err != nil {
				return err
			}

			rs := a.ruleset
			if notation != "" {
				override := *a.ruleset
				override.Dice.Notation = notation
				rs = &override
			}

			initializer, err := rs.DiceInitializer(a.roller, a.registry, a.cfg.DieKind)
			if err != nil {
				return err
			}
			if err := generate(cmd.OutOrStdout(), initializer); err != nil {
				return err
			}
			if showRolls {
				fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n", dice.RenderHistory(a.roller.History()))
			}
			return nil
		},
	}
	diceCmd.Flags().BoolVar(&showRolls, "show-rolls", false, "print the remembered rolls")
	diceCmd.Flags().StringVar(&notation, "notation", "", "dice method overriding the ruleset, e.g. 3d6 or 4d6k3")

	cmd.AddCommand(diceCmd)
	cmd.AddCommand(newValuesCmd(global, "array", "Assign the standard array to ability scores in order",
		func(a *app, values []int) (*stats.Initializer, error) {
			return a.ruleset.ArrayInitializer(values)
		}))
	cmd.AddCommand(newValuesCmd(global, "point-buy", "Buy ability scores with the point-buy budget",
		func(a *app, values []int) (*stats.Initializer, error) {
			return a.ruleset.PointBuyInitializer(values)
		}))

	return cmd
}

// newValuesCmd builds a command that takes fixed values and validates them
// with the initializer build returns
func newValuesCmd(global *globalFlags, use, short string, build func(*app, []int) (*stats.Initializer, error)) *cobra.Command {
	var values []int

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(cmd, global)
			if err != nil {
				return err
			}

			initializer, err := build(a, values)
			if err != nil {
				return err
			}
			return generate(cmd.OutOrStdout(), initializer)
		},
	}

	cmd.Flags().IntSliceVar(&values, "values", nil, "scores in stat order, e.g. 15,14,13,12,10,8")
	_ = cmd.MarkFlagRequired("values") // nolint:errcheck // flag is defined above

	return cmd
}

func generate(out io.Writer, initializer *stats.Initializer) error {
	result, err := initializer.Generate()
	if err != nil {
		return err
	}
	fmt.Fprintln(out, result)
	return nil
}
