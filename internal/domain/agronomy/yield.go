package agronomy

import (
	"math"

	"github.com/phrazzld/cropsim/internal/domain"
)

// Score anchors of the yield curve
const (
	maxYieldScore = 90
	avgYieldScore = 70
	minYieldScore = 50
)

// ProjectYield maps an overall score onto the crop's yield anchors.
//
//   - score >= 90: max
//   - 70 <= score < 90: avg + (score-70)/20 * (max-avg)
//   - 50 <= score < 70: avg + (score-50)/20 * (avg-min) * 0.5
//   - score < 50: min * score/50
//
// The curve is continuous at 90 only. It jumps from min up to avg at 50 and
// drops from avg + (avg-min)/2 back to avg at 70.
// The value is rounded to two decimals; the percentage is taken against max.
func ProjectYield(yields domain.Yields, score int) domain.YieldResult {
	value := interpolateYield(yields, float64(score))

	percentage := 0
	if yields.Max > 0 {
		percentage = int(math.Round(value / yields.Max * 100))
	}

	return domain.YieldResult{
		Value:      roundTo(value, 2),
		Unit:       yields.Unit,
		Percentage: percentage,
		Optimal:    yields.Max,
	}
}

func interpolateYield(y domain.Yields, score float64) float64 {
	switch {
	case score >= maxYieldScore:
		return y.Max
	case score >= avgYieldScore:
		return y.Avg + (score-avgYieldScore)/(maxYieldScore-avgYieldScore)*(y.Max-y.Avg)
	case score >= minYieldScore:
		return y.Avg + (score-minYieldScore)/(avgYieldScore-minYieldScore)*(y.Avg-y.Min)*0.5
	default:
		return y.Min * (math.Max(0, score) / minYieldScore)
	}
}

func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
