package main

import (
	"fmt"

	"github.com/phrazzld/cropsim/internal/domain"
	"github.com/phrazzld/cropsim/internal/domain/competence"
	"github.com/phrazzld/cropsim/internal/domain/progress"
	"github.com/phrazzld/cropsim/internal/platform/logger"
	"github.com/phrazzld/cropsim/internal/report"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// inputFlags registers one flag per agronomic factor. Factors left unset
// take the crop's optimal value.
type inputFlags struct {
	values map[domain.Parameter]*float64
}

func newInputFlags(fs *pflag.FlagSet) *inputFlags {
	f := &inputFlags{values: make(map[domain.Parameter]*float64, len(domain.Parameters()))}
	for _, param := range domain.Parameters() {
		f.values[param] = fs.Float64(string(param), 0, fmt.Sprintf("Chosen %s (default: the crop optimum)", param))
	}
	return f
}

func (f *inputFlags) resolve(fs *pflag.FlagSet, crop *domain.CropProfile) (domain.SimulationInput, error) {
	var in domain.SimulationInput
	for _, param := range domain.Parameters() {
		v := *f.values[param]
		if !fs.Changed(string(param)) {
			r, _ := crop.Parameters.Range(param)
			v = r.Optimal
		}
		in = in.With(param, v)
	}

	if err := in.Validate(); err != nil {
		return domain.SimulationInput{}, err
	}
	return in, nil
}

func newSimulateCmd(a *app) *cobra.Command {
	var level int

	cmd := &cobra.Command{
		Use:   "simulate <crop>",
		Short: "Score one game and show the competence it earns",
		Example: `  agrosim simulate wheat --water 300 --nitrogen 120
  agrosim simulate bean --level 3 --ph 5.5 --format json`,
		Args: cobra.ExactArgs(1),
	}

	input := newInputFlags(cmd.Flags())
	cmd.Flags().IntVarP(&level, "level", "l", int(domain.LevelEasy), "Difficulty level (1-3)")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		log := logger.FromContext(cmd.Context())

		crop, err := a.crops.Get(args[0])
		if err != nil {
			return err
		}

		in, err := input.resolve(cmd.Flags(), crop)
		if err != nil {
			return err
		}

		result, err := a.engine.Simulate(crop, in, domain.Level(level))
		if err != nil {
			return fmt.Errorf("simulation failed: %w", err)
		}

		gains, err := a.calculator.ComputeGains(crop, result, domain.Level(level))
		if err != nil {
			return fmt.Errorf("competence calculation failed: %w", err)
		}

		log.Info("simulation complete",
			"crop", crop.Name,
			"level", result.Level,
			"score", result.Score,
			"success", result.Success)

		return a.renderer.Simulation(cmd.OutOrStdout(), firstGame(crop.Name, result, gains))
	}

	return cmd
}

// firstGame reports a simulation as a new player's first game on the crop:
// the game is recorded, earned achievements add their bonus, and advice is
// given on the resulting competence totals.
func firstGame(crop string, result *domain.SimulationResult, gains domain.CompetenceGain) report.Simulation {
	player, earned := progress.NewPlayer().Record(crop, result.Score, gains)
	after := player.Progress(crop)

	totals := after.Competences
	for _, a := range earned {
		totals = totals.Add(competence.AchievementBonus(a))
	}

	return report.Simulation{
		Crop:         crop,
		Result:       result,
		Gains:        gains,
		Stars:        after.Stars,
		Achievements: earned,
		Advice:       competence.Recommendations(totals),
	}
}
