package main

import (
	"fmt"
	"os"

	"github.com/phrazzld/cropsim/internal/report"
	"github.com/phrazzld/cropsim/internal/task"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newBatchCmd(a *app, v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <file>",
		Short: "Score every scenario in a YAML batch file on a worker pool",
		Long: `Score every scenario in a YAML batch file on a worker pool.

A scenario that fails is reported in the output and does not stop the batch.
The command exits non-zero only when the batch is interrupted.`,
		Example: `  agrosim batch scenarios.yaml --workers 8`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read batch file: %w", err)
			}

			scenarios, err := task.ParseScenarios(data)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			runner := task.NewRunner(
				task.NewSimulationTaskFactory(a.crops, a.engine, a.calculator),
				task.RunnerConfig{WorkerCount: a.cfg.Batch.Workers, QueueSize: a.cfg.Batch.QueueSize},
				a.log,
			)

			outcomes, runErr := runner.Run(cmd.Context(), scenarios)

			b := report.Batch{Outcomes: outcomes, Summary: task.Summarize(outcomes)}
			if err := a.renderer.Batch(cmd.OutOrStdout(), b); err != nil {
				return err
			}

			return runErr
		},
	}

	cmd.Flags().IntP("workers", "w", 4, "Number of concurrent workers")
	if err := v.BindPFlag("batch.workers", cmd.Flags().Lookup("workers")); err != nil {
		panic(err)
	}

	return cmd
}
