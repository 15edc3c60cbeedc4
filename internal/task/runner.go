package task

import (
	"context"
	"fmt"
	"log/slog"
)

// RunnerConfig holds configuration for the batch runner
type RunnerConfig struct {
	// WorkerCount determines how many concurrent workers score scenarios
	WorkerCount int

	// QueueSize determines the buffer size of the task queue
	QueueSize int
}

// DefaultRunnerConfig returns a RunnerConfig with reasonable defaults
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		WorkerCount: 4,
		QueueSize:   100,
	}
}

// Runner fans batch scenarios out across a worker pool and collects one
// Outcome per scenario. The engine and calculator are shared by all
// workers without locking.
type Runner struct {
	factory *SimulationTaskFactory
	config  RunnerConfig
	logger  *slog.Logger
}

// NewRunner creates a batch runner
func NewRunner(factory *SimulationTaskFactory, config RunnerConfig, logger *slog.Logger) *Runner {
	return &Runner{
		factory: factory,
		config:  config,
		logger:  logger.With("component", "batch_runner"),
	}
}

// Run scores every scenario and returns the outcomes in input order.
// Scenario failures are reported in their Outcome, not as an error. Run
// returns an error only when tasks cannot be created or ctx ends before
// every scenario ran; outcomes are still returned in that case.
func (r *Runner) Run(ctx context.Context, scenarios []Scenario) ([]Outcome, error) {
	tasks := make([]*SimulationTask, 0, len(scenarios))
	for _, s := range scenarios {
		t, err := r.factory.CreateTask(s)
		if err != nil {
			return nil, fmt.Errorf("failed to create task for scenario %q: %w", s.Name, err)
		}
		tasks = append(tasks, t)
	}

	r.logger.Info("starting batch",
		"scenarios", len(tasks),
		"workers", r.config.WorkerCount,
		"queue_size", r.config.QueueSize)

	queue := NewTaskQueue(r.config.QueueSize, r.logger)
	pool := NewWorkerPool(queue, WorkerPoolConfig{WorkerCount: r.config.WorkerCount}, r.logger)
	pool.SetErrorHandler(func(t Task, err error) {
		// Panics bypass SimulationTask.fail
		if st, ok := t.(*SimulationTask); ok {
			_ = st.fail(err)
		}
	})
	pool.Start()

	var runErr error
	for _, t := range tasks {
		if err := queue.EnqueueWait(ctx, t); err != nil {
			runErr = fmt.Errorf("batch interrupted: %w", err)
			break
		}
	}
	queue.Close()

	done := make(chan struct{})
	go func() {
		pool.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		pool.Stop()
		<-done
		if runErr == nil {
			runErr = fmt.Errorf("batch interrupted: %w", ctx.Err())
		}
	}

	outcomes := make([]Outcome, 0, len(tasks))
	for _, t := range tasks {
		outcomes = append(outcomes, t.Outcome())
	}

	summary := Summarize(outcomes)
	r.logger.Info("batch finished",
		"completed", summary.Completed,
		"failed", summary.Failed,
		"not_run", summary.NotRun,
		"mean_score", summary.MeanScore)

	return outcomes, runErr
}

// Summary aggregates the outcomes of a batch
type Summary struct {
	Total      int     `json:"total"`
	Completed  int     `json:"completed"`
	Failed     int     `json:"failed"`
	NotRun     int     `json:"notRun"`
	Successful int     `json:"successful"`
	MeanScore  float64 `json:"meanScore"`
}

// Summarize counts outcomes by status. MeanScore averages completed
// outcomes only and is 0 when none completed.
func Summarize(outcomes []Outcome) Summary {
	s := Summary{Total: len(outcomes)}
	total := 0

	for _, o := range outcomes {
		switch o.Status {
		case TaskStatusCompleted:
			s.Completed++
			total += o.Result.Score
			if o.Result.Success {
				s.Successful++
			}
		case TaskStatusFailed:
			s.Failed++
		default:
			s.NotRun++
		}
	}

	if s.Completed > 0 {
		s.MeanScore = float64(total) / float64(s.Completed)
	}
	return s
}
