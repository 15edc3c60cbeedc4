package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/cropsim/internal/catalog"
	"github.com/phrazzld/cropsim/internal/config"
	"github.com/phrazzld/cropsim/internal/domain/agronomy"
	"github.com/phrazzld/cropsim/internal/domain/competence"
	"github.com/phrazzld/cropsim/internal/platform/logger"
	"github.com/phrazzld/cropsim/internal/report"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// app holds the collaborators shared by every subcommand. It is filled in
// by the root command's PersistentPreRunE.
type app struct {
	cfg        *config.Config
	log        *slog.Logger
	crops      *catalog.Catalog
	engine     agronomy.Engine
	calculator competence.Calculator
	renderer   report.Renderer
}

// flagBindings maps config keys to the persistent flags that override them.
var flagBindings = map[string]string{
	"output.format":         "format",
	"log.level":             "log-level",
	"catalog.dir":           "catalog-dir",
	"engine.strict_levels":  "strict-levels",
	"engine.success_score":  "success-score",
	"catalog.skip_defaults": "skip-defaults",
}

func newRootCmd() *cobra.Command {
	a := &app{}
	v := viper.New()
	var configFile string

	root := &cobra.Command{
		Use:   "agrosim",
		Short: "Agronomic scoring engine for the farming simulator",
		Long: `agrosim scores cultivation choices against crop reference data.

It computes a 0-100 score, a projected yield, per-factor feedback and the
competence gains a game earns. Configuration comes from agrosim.yaml,
AGROSIM_* environment variables and flags, in increasing order of precedence.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd, v, configFile)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&configFile, "config", "c", "", "Config file (default ./agrosim.yaml)")
	flags.StringP("format", "f", report.FormatConsole, "Output format (console|json)")
	flags.String("log-level", "info", "Log level (debug|info|warn|error)")
	flags.String("catalog-dir", "", "Directory searched for extra crop catalog files")
	flags.Bool("skip-defaults", false, "Do not load the built-in crop catalog")
	flags.Bool("strict-levels", false, "Reject difficulty levels outside 1-3 instead of scoring them as level 1")
	flags.Int("success-score", 50, "Minimum score counted as a successful harvest")

	if err := bindFlags(v, flags, flagBindings); err != nil {
		panic(err)
	}

	root.AddCommand(
		newCropsCmd(a),
		newSimulateCmd(a),
		newCheckCmd(a),
		newBatchCmd(a, v),
	)

	return root
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet, bindings map[string]string) error {
	for key, name := range bindings {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return fmt.Errorf("bind flag %q: %w", name, err)
		}
	}
	return nil
}

// init loads configuration and builds the shared collaborators.
func (a *app) init(cmd *cobra.Command, v *viper.Viper, configFile string) error {
	cfg, err := config.LoadWith(v, configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cmd.ErrOrStderr(), cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	log = log.With("command", cmd.Name())
	cmd.SetContext(logger.WithLogger(cmd.Context(), log))

	log.Debug("configuration loaded",
		"output_format", cfg.Output.Format,
		"catalog_dir", cfg.Catalog.Dir,
		"strict_levels", cfg.Engine.StrictLevels)

	crops, err := catalog.Load(catalog.Options{
		Dir:          cfg.Catalog.Dir,
		Pattern:      cfg.Catalog.Pattern,
		SkipDefaults: cfg.Catalog.SkipDefaults,
		Logger:       log,
	})
	if err != nil {
		return fmt.Errorf("failed to load crop catalog: %w", err)
	}

	renderer, err := report.New(cfg.Output.Format)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = log
	a.crops = crops
	a.renderer = renderer
	a.calculator = competence.NewDefaultCalculator()
	a.engine = agronomy.NewEngineWithParams(agronomy.NewParams(agronomy.ParamsConfig{
		FeedbackThreshold: cfg.Engine.FeedbackThreshold,
		SuccessScore:      cfg.Engine.SuccessScore,
		StrictLevels:      cfg.Engine.StrictLevels,
	}))

	return nil
}
