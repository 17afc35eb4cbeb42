package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-stats/internal/dice"
	"github.com/KirkDiggler/rpg-stats/internal/errors"
)

type rollFlags struct {
	advantage    bool
	disadvantage bool
	times        int
}

func newRollCmd(global *globalFlags) *cobra.Command {
	flags := &rollFlags{}

	cmd := &cobra.Command{
		Use:   "roll [notation]",
		Short: "Roll dice using dice notation",
		Long: `Roll dice and print each kept die, then the roll history. Examples:

  roll 1d20 --advantage
  roll 4d6k3
  roll 4d6k3r1 --times 6`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd, global)
			if err != nil {
				return err
			}
			return runRoll(cmd.OutOrStdout(), a, args[0], flags)
		},
	}

	cmd.Flags().BoolVar(&flags.advantage, "advantage", false, "roll twice and keep the higher result")
	cmd.Flags().BoolVar(&flags.disadvantage, "disadvantage", false, "roll twice and keep the lower result")
	cmd.Flags().IntVar(&flags.times, "times", 1, "how many times to roll")
	cmd.MarkFlagsMutuallyExclusive("advantage", "disadvantage")

	return cmd
}

func runRoll(out io.Writer, a *app, expr string, flags *rollFlags) error {
	if flags.times < 1 {
		return errors.InvalidArgumentf("times must be at least 1, got %d", flags.times)
	}

	notation, err := dice.ParseNotation(expr)
	if err != nil {
		return err
	}

	die, err := a.registry.New(a.cfg.DieKind, notation.Sides)
	if err != nil {
		return err
	}

	paired := flags.advantage || flags.disadvantage
	if paired && (notation.Count != 1 || notation.Reroll != 0) {
		return errors.InvalidArgumentf("advantage and disadvantage roll a single die, got %s", notation)
	}

	for i := 0; i < flags.times; i++ {
		if paired {
			if err := rollPair(out, a.roller, die, flags.advantage); err != nil {
				return err
			}
			continue
		}

		output, err := a.roller.RollKeepReroll(notation.RollInput(die))
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s\n\n", output.Set)
	}

	fmt.Fprintf(out, "History (last %d):\n%s\n", a.roller.HistoryCapacity(), dice.RenderHistory(a.roller.History()))
	return nil
}

func rollPair(out io.Writer, roller *dice.Roller, die dice.Die, advantage bool) error {
	input := &dice.AdvantageInput{Die: die}

	var (
		output *dice.AdvantageOutput
		err    error
		label  = "disadvantage"
	)
	if advantage {
		label = "advantage"
		output, err = roller.RollAdvantage(input)
	} else {
		output, err = roller.RollDisadvantage(input)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s with %s: %d and %d, kept %d\n\n",
		die.Name(), label, output.Rolls[0].Value(), output.Rolls[1].Value(), output.Total)
	return nil
}
