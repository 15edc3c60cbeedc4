package main

import (
	"fmt"

	"github.com/phrazzld/cropsim/internal/report"
	"github.com/spf13/cobra"
)

func newCheckCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "check <crop>",
		Short:   "Check parameter choices against a crop's optimal ranges",
		Example: `  agrosim check maize --water 550 --temperature 31`,
		Args:    cobra.ExactArgs(1),
	}

	input := newInputFlags(cmd.Flags())

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		crop, err := a.crops.Get(args[0])
		if err != nil {
			return err
		}

		in, err := input.resolve(cmd.Flags(), crop)
		if err != nil {
			return err
		}

		rep, err := a.engine.CheckParameters(crop, in)
		if err != nil {
			return fmt.Errorf("parameter check failed: %w", err)
		}

		return a.renderer.Check(cmd.OutOrStdout(), report.Check{Crop: crop.Name, Report: rep})
	}

	return cmd
}
