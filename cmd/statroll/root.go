package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-stats/internal/config"
	"github.com/KirkDiggler/rpg-stats/internal/dice"
	"github.com/KirkDiggler/rpg-stats/internal/errors"
	"github.com/KirkDiggler/rpg-stats/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-stats/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-stats/internal/ruleset"
)

// globalFlags override the environment when set
type globalFlags struct {
	rulesetPath string
	history     int
	seed        int64
	logLevel    string
}

// app is everything a command needs, built once per invocation
type app struct {
	cfg      *config.Config
	ruleset  *ruleset.Ruleset
	registry *dice.Registry
	roller   *dice.Roller
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:   "statroll",
		Short: "Roll dice and generate ability scores",
		Long: `statroll rolls dice with keep and reroll modifiers, keeps a short history
of recent rolls, and generates validated ability scores by rolling, by
standard array or by point buy.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flags.rulesetPath, "ruleset", "", "YAML ruleset file (overrides STATROLL_RULESET)")
	cmd.PersistentFlags().IntVar(&flags.history, "history", 0, "number of rolls to remember (overrides STATROLL_HISTORY_CAPACITY)")
	cmd.PersistentFlags().Int64Var(&flags.seed, "seed", 0, "seed for replayable rolls, 0 for crypto randomness (overrides STATROLL_SEED)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "debug, info, warn or error (overrides STATROLL_LOG_LEVEL)")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid flags")
	})

	cmd.AddCommand(newRollCmd(flags))
	cmd.AddCommand(newStatsCmd(flags))

	return cmd
}

// setup loads the environment, applies flag overrides and wires the roller
func setup(cmd *cobra.Command, flags *globalFlags) (*app, error) {
	cfg := &config.Config{}
	if err := config.ParseEnv(cfg); err != nil {
		return nil, err
	}

	pf := cmd.Flags()
	if pf.Changed("ruleset") {
		cfg.RulesetPath = flags.rulesetPath
	}
	if pf.Changed("history") {
		cfg.HistoryCapacity = flags.history
	}
	if pf.Changed("seed") {
		cfg.Seed = flags.seed
	}
	if pf.Changed("log-level") {
		cfg.LogLevel = flags.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid flags")
	}

	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

	rs, err := ruleset.Load(cfg.RulesetPath)
	if err != nil {
		return nil, err
	}

	registry, err := dice.NewStandardRegistry(dice.NewSource(cfg.Seed))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create dice registry")
	}

	rollerCfg := cfg.RollerConfig()
	rollerCfg.Clock = clock.New()
	rollerCfg.IDGenerator = idgen.NewUUID("roll")
	if cfg.Seed != 0 {
		rollerCfg.IDGenerator = idgen.NewSequential("roll")
	}
	roller, err := dice.NewRoller(rollerCfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create roller")
	}

	slog.Debug("statroll configured",
		"ruleset", rs.Name,
		"history", cfg.HistoryCapacity,
		"seeded", cfg.Seed != 0,
		"die_kind", cfg.DieKind,
	)

	return &app{
		cfg:      cfg,
		ruleset:  rs,
		registry: registry,
		roller:   roller,
	}, nil
}

// exactArgs is cobra.ExactArgs reporting an InvalidArgument error
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid arguments")
		}
		return nil
	}
}
