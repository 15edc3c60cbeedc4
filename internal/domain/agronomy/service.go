package agronomy

import (
	"fmt"

	"github.com/phrazzld/cropsim/internal/domain"
)

// Engine defines the interface of the agronomic scoring engine. All methods
// are pure: they never mutate their arguments and are safe for concurrent use.
type Engine interface {
	// Simulate scores the input against the crop's optimal ranges and
	// returns the score, projected yield, sub-score details and feedback
	Simulate(
		crop *domain.CropProfile,
		input domain.SimulationInput,
		level domain.Level,
	) (*domain.SimulationResult, error)

	// CheckParameters gives a quick per-parameter assessment without
	// running a full simulation
	CheckParameters(
		crop *domain.CropProfile,
		input domain.SimulationInput,
	) (*CheckReport, error)
}

// defaultEngine is the standard implementation of the Engine interface
type defaultEngine struct {
	params *Params
}

// NewDefaultEngine creates a new engine with default parameters
func NewDefaultEngine() Engine {
	return &defaultEngine{
		params: NewDefaultParams(),
	}
}

// NewEngineWithParams creates a new engine with custom parameters
func NewEngineWithParams(params *Params) Engine {
	if params == nil {
		params = NewDefaultParams()
	}
	return &defaultEngine{
		params: params,
	}
}

// Simulate implements the Engine interface.
//
// Invalid reference data is returned as a *domain.ConfigurationError (zero
// nutrient optimum) or a *domain.DomainError wrapping domain.ErrInvalidCrop.
// A level outside 1-3 is scored with level 1 weights and echoed unchanged in
// the result, unless StrictLevels is set, in which case a *domain.DomainError
// wrapping domain.ErrInvalidLevel is returned.
func (e *defaultEngine) Simulate(
	crop *domain.CropProfile,
	input domain.SimulationInput,
	level domain.Level,
) (*domain.SimulationResult, error) {
	const op = "simulate"

	if err := validateCrop(op, crop); err != nil {
		return nil, err
	}

	if !level.Valid() && e.params.StrictLevels {
		return nil, domain.NewDomainError(op, "level", fmt.Errorf("%w: %d", domain.ErrInvalidLevel, level))
	}

	result, err := calculateResult(crop, input, level.Effective(), e.params)
	if err != nil {
		return nil, domain.NewDomainError(op, "crop", err)
	}
	result.Level = level

	return result, nil
}

// CheckParameters implements the Engine interface
func (e *defaultEngine) CheckParameters(
	crop *domain.CropProfile,
	input domain.SimulationInput,
) (*CheckReport, error) {
	if err := validateCrop("check parameters", crop); err != nil {
		return nil, err
	}

	return checkParameters(crop.Parameters, input), nil
}

func validateCrop(op string, crop *domain.CropProfile) error {
	if crop == nil {
		return domain.NewDomainError(op, "", domain.ErrNilCrop)
	}

	if err := crop.Validate(); err != nil {
		if domain.IsConfigurationError(err) {
			return err
		}
		return domain.NewDomainError(op, "crop", err)
	}

	return nil
}
