package agronomy

import (
	"math"

	"github.com/phrazzld/cropsim/internal/domain"
)

// Family selects the scoring curve used for an agronomic factor.
type Family int

// Scoring families
const (
	FamilyWater Family = iota
	FamilyNutrient
	FamilyPH
	FamilyTemperature
)

func (f Family) String() string {
	switch f {
	case FamilyWater:
		return "water"
	case FamilyNutrient:
		return "nutrient"
	case FamilyPH:
		return "ph"
	case FamilyTemperature:
		return "temperature"
	default:
		return "unknown"
	}
}

// OutsideMode controls how the distance outside [min, max] is normalized.
type OutsideMode int

const (
	// OutsideRelative divides the overshoot by the bound it crossed.
	OutsideRelative OutsideMode = iota
	// OutsideAbsolute uses the raw overshoot.
	OutsideAbsolute
	// OutsideFixed divides the overshoot by a fixed span.
	OutsideFixed
)

// Curve describes one family's piecewise scoring shape.
//
// Outside the range the score is 1 - normalized(overshoot) * factor, floored
// at 0. Inside the range the score is 1 - |actual - optimal| / span * factor,
// where span is the range width divided by InsideSpanDivisor, floored at
// InsideFloor.
type Curve struct {
	Outside           OutsideMode
	FixedSpan         float64
	BelowFactor       float64
	AboveFactor       float64
	InsideFactor      float64
	InsideSpanDivisor float64
	InsideFloor       float64
}

var curves = [...]Curve{
	FamilyWater: {
		Outside:           OutsideRelative,
		BelowFactor:       1.5,
		AboveFactor:       1.2,
		InsideFactor:      0.5,
		InsideSpanDivisor: 1,
		InsideFloor:       0.7,
	},
	FamilyNutrient: {
		Outside:           OutsideRelative,
		BelowFactor:       1.3,
		AboveFactor:       1.1,
		InsideFactor:      0.4,
		InsideSpanDivisor: 1,
		InsideFloor:       0.7,
	},
	FamilyPH: {
		Outside:           OutsideAbsolute,
		BelowFactor:       0.3,
		AboveFactor:       0.3,
		InsideFactor:      0.5,
		InsideSpanDivisor: 2,
		InsideFloor:       0.6,
	},
	FamilyTemperature: {
		Outside:           OutsideFixed,
		FixedSpan:         10,
		BelowFactor:       0.8,
		AboveFactor:       0.8,
		InsideFactor:      0.4,
		InsideSpanDivisor: 1,
		InsideFloor:       0.7,
	},
}

// CurveFor returns the scoring curve of a family. Unknown families get the
// nutrient curve.
func CurveFor(f Family) Curve {
	if f < 0 || int(f) >= len(curves) {
		return curves[FamilyNutrient]
	}
	return curves[f]
}

// FamilyOf returns the scoring family of an agronomic factor.
func FamilyOf(param domain.Parameter) (Family, bool) {
	switch param {
	case domain.ParameterWater:
		return FamilyWater, true
	case domain.ParameterNitrogen, domain.ParameterPhosphorus, domain.ParameterPotassium:
		return FamilyNutrient, true
	case domain.ParameterPH:
		return FamilyPH, true
	case domain.ParameterTemperature:
		return FamilyTemperature, true
	default:
		return 0, false
	}
}

// Score returns the normalized [0, 1] score of actual against r.
// NaN anywhere in the computation yields 0.
func (c Curve) Score(r domain.Range, actual float64) float64 {
	var score float64

	switch {
	case actual < r.Min:
		score = 1 - c.normalize(r.Min-actual, r.Min)*c.BelowFactor
	case actual > r.Max:
		score = 1 - c.normalize(actual-r.Max, r.Max)*c.AboveFactor
	default:
		score = 1
		// A degenerate range only contains its optimum
		if span := r.Width() / c.InsideSpanDivisor; span > 0 {
			score = 1 - math.Abs(actual-r.Optimal)/span*c.InsideFactor
		}
		score = math.Max(c.InsideFloor, score)
	}

	return clampUnit(score)
}

func (c Curve) normalize(overshoot, bound float64) float64 {
	switch c.Outside {
	case OutsideAbsolute:
		return overshoot
	case OutsideFixed:
		return overshoot / c.FixedSpan
	default:
		return overshoot / bound
	}
}

// ScoreParameter scores one agronomic factor with the curve of its family.
func ScoreParameter(param domain.Parameter, r domain.Range, actual float64) float64 {
	family, ok := FamilyOf(param)
	if !ok {
		return 0
	}
	return CurveFor(family).Score(r, actual)
}

// StatusFor labels a raw [0, 1] score.
func StatusFor(score float64) domain.Status {
	switch {
	case score >= 0.9:
		return domain.StatusExcellent
	case score >= 0.7:
		return domain.StatusGood
	case score >= 0.5:
		return domain.StatusFair
	case score >= 0.3:
		return domain.StatusPoor
	default:
		return domain.StatusCritical
	}
}

// detailFor converts a raw score into its rounded 0-100 detail.
func detailFor(score float64) domain.ParameterDetail {
	score = clampUnit(score)
	return domain.ParameterDetail{
		Score:  int(math.Round(score * 100)),
		Status: StatusFor(score),
	}
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
