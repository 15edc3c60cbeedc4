package agronomy

import (
	"fmt"
	"math"

	"github.com/phrazzld/cropsim/internal/domain"
)

// balanceFloor is the lowest score the NPK balance can produce, so balance
// alone never drives the overall score toward zero.
const balanceFloor = 0.5

// NPK holds one value per macronutrient.
type NPK struct {
	Nitrogen   float64
	Phosphorus float64
	Potassium  float64
}

// Balance scores how closely actual follows the optimal nutrient levels:
// max(0.5, 1 - meanRelativeDeviation * 0.5). A zero optimum is a
// configuration error. NaN inputs score 0.
func Balance(actual, optimal NPK) (float64, error) {
	if optimal.Nitrogen == 0 || optimal.Phosphorus == 0 || optimal.Potassium == 0 {
		return 0, fmt.Errorf("npk balance: %w", domain.ErrZeroOptimum)
	}

	nDiff := math.Abs(actual.Nitrogen-optimal.Nitrogen) / optimal.Nitrogen
	pDiff := math.Abs(actual.Phosphorus-optimal.Phosphorus) / optimal.Phosphorus
	kDiff := math.Abs(actual.Potassium-optimal.Potassium) / optimal.Potassium

	avgDiff := (nDiff + pDiff + kDiff) / 3
	if math.IsNaN(avgDiff) {
		return 0, nil
	}

	return math.Max(balanceFloor, 1-avgDiff*0.5), nil
}
