package agronomy

import (
	"fmt"
	"math"

	"github.com/phrazzld/cropsim/internal/domain"
)

// weightTolerance bounds the rounding error allowed in a profile's sum.
const weightTolerance = 1e-9

// Weights is the weighting vector over the seven sub-scores.
type Weights struct {
	Water       float64
	Nitrogen    float64
	Phosphorus  float64
	Potassium   float64
	PH          float64
	Temperature float64
	Balance     float64
}

// Level 1 favors water; harder levels shift weight toward nutrient balance.
var levelWeights = [...]Weights{
	domain.LevelEasy: {
		Water: 0.25, Nitrogen: 0.15, Phosphorus: 0.10, Potassium: 0.10,
		PH: 0.15, Temperature: 0.15, Balance: 0.10,
	},
	domain.LevelMedium: {
		Water: 0.20, Nitrogen: 0.15, Phosphorus: 0.12, Potassium: 0.12,
		PH: 0.13, Temperature: 0.13, Balance: 0.15,
	},
	domain.LevelHard: {
		Water: 0.18, Nitrogen: 0.15, Phosphorus: 0.13, Potassium: 0.13,
		PH: 0.13, Temperature: 0.13, Balance: 0.15,
	},
}

// WeightsFor returns the weight profile of a level. Unknown levels get the
// level 1 profile.
func WeightsFor(level domain.Level) Weights {
	return levelWeights[level.Effective()]
}

// Sum returns the total of all weights.
func (w Weights) Sum() float64 {
	return w.Water + w.Nitrogen + w.Phosphorus + w.Potassium + w.PH + w.Temperature + w.Balance
}

// Validate checks that no weight is negative and that they sum to 1.
func (w Weights) Validate() error {
	for _, v := range []float64{w.Water, w.Nitrogen, w.Phosphorus, w.Potassium, w.PH, w.Temperature, w.Balance} {
		if v < 0 {
			return fmt.Errorf("negative weight: %f", v)
		}
	}
	if math.Abs(w.Sum()-1.0) > weightTolerance {
		return fmt.Errorf("weights sum to %.12f, must sum to 1.0", w.Sum())
	}
	return nil
}
