package domain

import (
	"fmt"
)

// Level is the difficulty tier of a game. It controls both the scoring
// weights and the scaling of competence gains.
type Level int

// Supported difficulty levels
const (
	LevelEasy   Level = 1
	LevelMedium Level = 2
	LevelHard   Level = 3
)

// Valid reports whether l is 1, 2 or 3.
func (l Level) Valid() bool {
	return l >= LevelEasy && l <= LevelHard
}

// Effective returns l when valid and LevelEasy otherwise. Unknown levels
// are scored as level 1; this is a policy, not an error.
func (l Level) Effective() Level {
	if l.Valid() {
		return l
	}
	return LevelEasy
}

// Status labels a normalized sub-score.
type Status string

// Possible status values, best first
const (
	StatusExcellent Status = "excellent"
	StatusGood      Status = "good"
	StatusFair      Status = "fair"
	StatusPoor      Status = "poor"
	StatusCritical  Status = "critical"
)

// Priority orders advisories in the feedback list.
type Priority string

// Possible advisory priorities
const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
	PriorityInfo     Priority = "info"
)

// Rank returns the sort rank of p: critical 4 down to info 0.
// Unknown priorities rank with info.
func (p Priority) Rank() int {
	switch p {
	case PriorityCritical:
		return 4
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// Impact describes the effect of the issue an advisory reports.
type Impact string

// Possible advisory impacts
const (
	ImpactSevere   Impact = "severe"
	ImpactModerate Impact = "moderate"
	ImpactPositive Impact = "positive"
)

// SimulationInput holds the cultivation parameters chosen by the player.
// The engine assumes values have already passed Validate.
type SimulationInput struct {
	Water       float64 `json:"water"`
	Nitrogen    float64 `json:"nitrogen"`
	Phosphorus  float64 `json:"phosphorus"`
	Potassium   float64 `json:"potassium"`
	PH          float64 `json:"ph"`
	Temperature float64 `json:"temperature"`
}

// Value returns the input value for the given parameter.
func (in SimulationInput) Value(param Parameter) (float64, bool) {
	switch param {
	case ParameterWater:
		return in.Water, true
	case ParameterNitrogen:
		return in.Nitrogen, true
	case ParameterPhosphorus:
		return in.Phosphorus, true
	case ParameterPotassium:
		return in.Potassium, true
	case ParameterPH:
		return in.PH, true
	case ParameterTemperature:
		return in.Temperature, true
	default:
		return 0, false
	}
}

// With returns a copy of in with the given parameter set to v. Unknown
// parameters leave the copy unchanged.
func (in SimulationInput) With(param Parameter, v float64) SimulationInput {
	switch param {
	case ParameterWater:
		in.Water = v
	case ParameterNitrogen:
		in.Nitrogen = v
	case ParameterPhosphorus:
		in.Phosphorus = v
	case ParameterPotassium:
		in.Potassium = v
	case ParameterPH:
		in.PH = v
	case ParameterTemperature:
		in.Temperature = v
	}
	return in
}

// Validate performs the upstream checks callers run before simulating:
// every value finite, water and nutrients non-negative, pH within [0, 14].
func (in SimulationInput) Validate() error {
	for _, param := range Parameters() {
		v, _ := in.Value(param)
		if !isFinite(v) {
			return fmt.Errorf("%w: %s must be a finite number", ErrInvalidInput, param)
		}
	}

	for _, param := range []Parameter{ParameterWater, ParameterNitrogen, ParameterPhosphorus, ParameterPotassium} {
		v, _ := in.Value(param)
		if v < 0 {
			return fmt.Errorf("%w: %s cannot be negative", ErrInvalidInput, param)
		}
	}

	if in.PH < 0 || in.PH > 14 {
		return fmt.Errorf("%w: ph must be between 0 and 14", ErrInvalidInput)
	}

	return nil
}

// ParameterDetail is the rounded 0-100 score and status of one sub-score.
type ParameterDetail struct {
	Score  int    `json:"score"`
	Status Status `json:"status"`
}

// Details holds the seven sub-score details of a simulation.
type Details struct {
	Water       ParameterDetail `json:"water"`
	Nitrogen    ParameterDetail `json:"nitrogen"`
	Phosphorus  ParameterDetail `json:"phosphorus"`
	Potassium   ParameterDetail `json:"potassium"`
	PH          ParameterDetail `json:"ph"`
	Temperature ParameterDetail `json:"temperature"`
	NPKBalance  ParameterDetail `json:"npkBalance"`
}

// YieldResult is the projected harvest for a simulation.
type YieldResult struct {
	Value      float64 `json:"value"`
	Unit       string  `json:"unit"`
	Percentage int     `json:"percentage"`
	Optimal    float64 `json:"optimal"`
}

// Advisory is one human-readable piece of feedback.
type Advisory struct {
	Category string   `json:"category"`
	Priority Priority `json:"priority"`
	Message  string   `json:"message"`
	Impact   Impact   `json:"impact"`
}

// SimulationResult is the outcome of one simulation. It is created fresh per
// call and treated as an immutable value once returned.
type SimulationResult struct {
	Score    int         `json:"score"`
	Yield    YieldResult `json:"yield"`
	Success  bool        `json:"success"`
	Details  Details     `json:"details"`
	Feedback []Advisory  `json:"feedback"`
	Level    Level       `json:"level"`
}
