package competence

import (
	"github.com/phrazzld/cropsim/internal/domain"
)

// Calculator defines the interface for turning a simulation outcome into
// competence progression. Implementations are pure and safe for concurrent use.
type Calculator interface {
	// ComputeGains returns the per-skill gains earned by a simulation. The
	// result must come from a simulation of the same crop and level.
	ComputeGains(
		crop *domain.CropProfile,
		result *domain.SimulationResult,
		level domain.Level,
	) (domain.CompetenceGain, error)
}

// defaultCalculator is the standard implementation of the Calculator interface
type defaultCalculator struct{}

// NewDefaultCalculator creates a new calculator using the fixed gain tables
func NewDefaultCalculator() Calculator {
	return &defaultCalculator{}
}

// ComputeGains implements the Calculator interface. Levels outside 1-3 are
// treated as level 1, matching the scoring engine's fallback.
func (c *defaultCalculator) ComputeGains(
	crop *domain.CropProfile,
	result *domain.SimulationResult,
	level domain.Level,
) (domain.CompetenceGain, error) {
	const op = "compute gains"

	if crop == nil {
		return domain.CompetenceGain{}, domain.NewDomainError(op, "", domain.ErrNilCrop)
	}
	if result == nil {
		return domain.CompetenceGain{}, domain.NewDomainError(op, "", domain.ErrNilResult)
	}

	return calculateGains(crop, result, level.Effective()), nil
}
