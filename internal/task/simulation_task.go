package task

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/cropsim/internal/domain"
	"github.com/phrazzld/cropsim/internal/domain/agronomy"
	"github.com/phrazzld/cropsim/internal/domain/competence"
)

// Common errors
var (
	ErrNilCropSource = errors.New("crop source cannot be nil")
	ErrNilEngine     = errors.New("engine cannot be nil")
	ErrNilCalculator = errors.New("competence calculator cannot be nil")
	ErrNotRun        = errors.New("task was not run")
)

// CropSource resolves crop names to profiles. *catalog.Catalog satisfies it.
type CropSource interface {
	Get(name string) (*domain.CropProfile, error)
}

// Scenario is one simulation request in a batch.
type Scenario struct {
	Name  string                 `json:"name"`
	Crop  string                 `json:"crop"`
	Level domain.Level           `json:"level"`
	Input domain.SimulationInput `json:"input"`
}

// Outcome is what a SimulationTask produced. Exactly one of Result and
// Err is set once the task has run.
type Outcome struct {
	TaskID   uuid.UUID                `json:"taskId"`
	Scenario Scenario                 `json:"scenario"`
	Status   TaskStatus               `json:"status"`
	Result   *domain.SimulationResult `json:"result,omitempty"`
	Gains    domain.CompetenceGain    `json:"gains"`
	Err      error                    `json:"-"`
	Error    string                   `json:"error,omitempty"`
}

// SimulationTask implements the Task interface for scoring one scenario
// and computing the competence gains it earns
type SimulationTask struct {
	id         uuid.UUID
	scenario   Scenario
	crops      CropSource
	engine     agronomy.Engine
	calculator competence.Calculator

	mu      sync.Mutex
	status  TaskStatus
	result  *domain.SimulationResult
	gains   domain.CompetenceGain
	failure error
}

// NewSimulationTask creates a pending task for the scenario
func NewSimulationTask(
	scenario Scenario,
	crops CropSource,
	engine agronomy.Engine,
	calculator competence.Calculator,
) (*SimulationTask, error) {
	if crops == nil {
		return nil, ErrNilCropSource
	}
	if engine == nil {
		return nil, ErrNilEngine
	}
	if calculator == nil {
		return nil, ErrNilCalculator
	}

	return &SimulationTask{
		id:         uuid.New(),
		scenario:   scenario,
		crops:      crops,
		engine:     engine,
		calculator: calculator,
		status:     TaskStatusPending,
	}, nil
}

// ID returns the task's unique identifier
func (t *SimulationTask) ID() uuid.UUID {
	return t.id
}

// Type returns the task type identifier
func (t *SimulationTask) Type() string {
	return TaskTypeSimulation
}

// Status returns the current task status
func (t *SimulationTask) Status() TaskStatus {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status
}

// Execute validates the scenario input, resolves the crop, runs the
// simulation and computes the competence gains
func (t *SimulationTask) Execute(ctx context.Context) error {
	t.setStatus(TaskStatusProcessing)

	if err := ctx.Err(); err != nil {
		return t.fail(err)
	}

	if err := t.scenario.Input.Validate(); err != nil {
		return t.fail(fmt.Errorf("scenario %q: %w", t.scenario.Name, err))
	}

	crop, err := t.crops.Get(t.scenario.Crop)
	if err != nil {
		return t.fail(fmt.Errorf("scenario %q: %w", t.scenario.Name, err))
	}

	result, err := t.engine.Simulate(crop, t.scenario.Input, t.scenario.Level)
	if err != nil {
		return t.fail(fmt.Errorf("scenario %q: %w", t.scenario.Name, err))
	}

	gains, err := t.calculator.ComputeGains(crop, result, t.scenario.Level)
	if err != nil {
		return t.fail(fmt.Errorf("scenario %q: %w", t.scenario.Name, err))
	}

	t.mu.Lock()
	t.status = TaskStatusCompleted
	t.result = result
	t.gains = gains
	t.mu.Unlock()

	return nil
}

// Outcome returns a snapshot of the task's result. A task that never ran
// reports ErrNotRun.
func (t *SimulationTask) Outcome() Outcome {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := Outcome{
		TaskID:   t.id,
		Scenario: t.scenario,
		Status:   t.status,
		Result:   t.result,
		Gains:    t.gains,
		Err:      t.failure,
	}
	if out.Status == TaskStatusPending {
		out.Err = ErrNotRun
	}
	if out.Err != nil {
		out.Error = out.Err.Error()
	}
	return out
}

func (t *SimulationTask) setStatus(status TaskStatus) {
	t.mu.Lock()
	t.status = status
	t.mu.Unlock()
}

// fail records err unless the task already failed and returns it
func (t *SimulationTask) fail(err error) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.status != TaskStatusFailed {
		t.status = TaskStatusFailed
		t.failure = err
	}
	return err
}

// SimulationTaskFactory creates SimulationTask instances sharing one set of
// collaborators
type SimulationTaskFactory struct {
	crops      CropSource
	engine     agronomy.Engine
	calculator competence.Calculator
}

// NewSimulationTaskFactory creates a new factory for SimulationTasks
func NewSimulationTaskFactory(
	crops CropSource,
	engine agronomy.Engine,
	calculator competence.Calculator,
) *SimulationTaskFactory {
	return &SimulationTaskFactory{
		crops:      crops,
		engine:     engine,
		calculator: calculator,
	}
}

// CreateTask creates a new SimulationTask for the scenario
func (f *SimulationTaskFactory) CreateTask(scenario Scenario) (*SimulationTask, error) {
	return NewSimulationTask(scenario, f.crops, f.engine, f.calculator)
}
