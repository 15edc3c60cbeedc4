// Package report renders command results for the terminal or as JSON.
package report

import (
	"fmt"
	"io"

	"github.com/phrazzld/cropsim/internal/domain"
	"github.com/phrazzld/cropsim/internal/domain/agronomy"
	"github.com/phrazzld/cropsim/internal/domain/competence"
	"github.com/phrazzld/cropsim/internal/task"
)

// Output formats
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Simulation bundles everything the simulate command reports for one game.
type Simulation struct {
	Crop         string                      `json:"crop"`
	Result       *domain.SimulationResult    `json:"result"`
	Gains        domain.CompetenceGain       `json:"gains"`
	Stars        int                         `json:"stars"`
	Achievements []domain.Achievement        `json:"achievements"`
	Advice       []competence.Recommendation `json:"advice"`
}

// Check is the parameter check of one crop.
type Check struct {
	Crop   string                `json:"crop"`
	Report *agronomy.CheckReport `json:"report"`
}

// Batch is the outcome of a batch run.
type Batch struct {
	Outcomes []task.Outcome `json:"outcomes"`
	Summary  task.Summary   `json:"summary"`
}

// Renderer writes command results to w.
type Renderer interface {
	Crops(w io.Writer, crops []*domain.CropProfile) error
	Simulation(w io.Writer, s Simulation) error
	Check(w io.Writer, c Check) error
	Batch(w io.Writer, b Batch) error
}

// New returns the renderer for format.
func New(format string) (Renderer, error) {
	switch format {
	case FormatConsole, "":
		return NewConsoleRenderer(), nil
	case FormatJSON:
		return NewJSONRenderer(true), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}
