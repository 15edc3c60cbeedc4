package task

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/cropsim/internal/domain"
	"gopkg.in/yaml.v3"
)

// ErrNoScenarios is returned when a batch file lists no scenarios.
var ErrNoScenarios = errors.New("batch file has no scenarios")

type batchFile struct {
	Scenarios []scenarioRecord `yaml:"scenarios" validate:"dive"`
}

type scenarioRecord struct {
	Name  string      `yaml:"name" validate:"required"`
	Crop  string      `yaml:"crop" validate:"required"`
	Level int         `yaml:"level" validate:"gte=0"`
	Input inputRecord `yaml:"input"`
}

type inputRecord struct {
	Water       float64 `yaml:"water"`
	Nitrogen    float64 `yaml:"nitrogen"`
	Phosphorus  float64 `yaml:"phosphorus"`
	Potassium   float64 `yaml:"potassium"`
	PH          float64 `yaml:"ph"`
	Temperature float64 `yaml:"temperature"`
}

var validate = validator.New()

// ParseScenarios decodes a batch file:
//
//	scenarios:
//	  - name: dry wheat
//	    crop: wheat
//	    level: 2
//	    input: {water: 300, nitrogen: 100, phosphorus: 40, potassium: 60, ph: 6.5, temperature: 25}
//
// Unknown keys are rejected. A level of 0 or an omitted level is left for
// the engine's unknown-level policy. Input values are checked when each
// scenario runs, so one bad scenario does not reject the file.
func ParseScenarios(data []byte) ([]Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var file batchFile
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode batch file: %w", err)
	}

	if len(file.Scenarios) == 0 {
		return nil, ErrNoScenarios
	}

	if err := validate.Struct(file); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return nil, fmt.Errorf("invalid scenario: %s failed on %q", verrs[0].Namespace(), verrs[0].Tag())
		}
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	scenarios := make([]Scenario, 0, len(file.Scenarios))
	for _, rec := range file.Scenarios {
		scenarios = append(scenarios, rec.toScenario())
	}
	return scenarios, nil
}

func (r scenarioRecord) toScenario() Scenario {
	in := r.Input
	return Scenario{
		Name:  r.Name,
		Crop:  r.Crop,
		Level: domain.Level(r.Level),
		Input: domain.SimulationInput{
			Water:       in.Water,
			Nitrogen:    in.Nitrogen,
			Phosphorus:  in.Phosphorus,
			Potassium:   in.Potassium,
			PH:          in.PH,
			Temperature: in.Temperature,
		},
	}
}
