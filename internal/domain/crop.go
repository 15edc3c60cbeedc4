package domain

import (
	"fmt"
	"math"
)

// Category groups crops for rotation purposes.
type Category string

// Known crop categories
const (
	CategoryCereal  Category = "cereale"
	CategoryLegume  Category = "legume"
	CategoryTuber   Category = "tubercule"
	CategoryOilseed Category = "oleagineux"
	CategoryFruit   Category = "fruit"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryCereal, CategoryLegume, CategoryTuber, CategoryOilseed, CategoryFruit:
		return true
	default:
		return false
	}
}

// Parameter names one agronomic factor chosen by the player.
type Parameter string

// The six agronomic factors, in the order feedback is generated.
const (
	ParameterWater       Parameter = "water"
	ParameterNitrogen    Parameter = "nitrogen"
	ParameterPhosphorus  Parameter = "phosphorus"
	ParameterPotassium   Parameter = "potassium"
	ParameterPH          Parameter = "ph"
	ParameterTemperature Parameter = "temperature"
)

// Parameters lists every agronomic factor in canonical order.
func Parameters() []Parameter {
	return []Parameter{
		ParameterWater,
		ParameterNitrogen,
		ParameterPhosphorus,
		ParameterPotassium,
		ParameterPH,
		ParameterTemperature,
	}
}

// Range holds the numeric bounds for one agronomic factor.
// A valid Range satisfies Min <= Optimal <= Max.
type Range struct {
	Min     float64 `json:"min"`
	Optimal float64 `json:"optimal"`
	Max     float64 `json:"max"`
	Unit    string  `json:"unit,omitempty"`
}

// Width returns Max - Min.
func (r Range) Width() float64 {
	return r.Max - r.Min
}

// Contains reports whether v lies within [Min, Max].
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Validate checks that all bounds are finite and ordered.
func (r Range) Validate() error {
	if !isFinite(r.Min) || !isFinite(r.Optimal) || !isFinite(r.Max) {
		return fmt.Errorf("%w: non-finite bound", ErrInvalidRange)
	}
	if r.Min > r.Optimal || r.Optimal > r.Max {
		return fmt.Errorf("%w: expected min %g <= optimal %g <= max %g",
			ErrInvalidRange, r.Min, r.Optimal, r.Max)
	}
	return nil
}

// CropParameters holds the optimal range for every agronomic factor.
type CropParameters struct {
	Water       Range `json:"water"`
	Nitrogen    Range `json:"nitrogen"`
	Phosphorus  Range `json:"phosphorus"`
	Potassium   Range `json:"potassium"`
	PH          Range `json:"ph"`
	Temperature Range `json:"temperature"`
}

// Range returns the range for the given parameter.
func (p CropParameters) Range(param Parameter) (Range, bool) {
	switch param {
	case ParameterWater:
		return p.Water, true
	case ParameterNitrogen:
		return p.Nitrogen, true
	case ParameterPhosphorus:
		return p.Phosphorus, true
	case ParameterPotassium:
		return p.Potassium, true
	case ParameterPH:
		return p.PH, true
	case ParameterTemperature:
		return p.Temperature, true
	default:
		return Range{}, false
	}
}

// Yields holds the harvest anchors used by the yield projection.
type Yields struct {
	Min  float64 `json:"min"`
	Avg  float64 `json:"avg"`
	Max  float64 `json:"max"`
	Unit string  `json:"unit,omitempty"`
}

// Validate checks that the anchors are finite, non-negative and ordered,
// and that Max is positive so a yield percentage can be computed.
func (y Yields) Validate() error {
	if !isFinite(y.Min) || !isFinite(y.Avg) || !isFinite(y.Max) {
		return fmt.Errorf("%w: yields: non-finite anchor", ErrInvalidCrop)
	}
	if y.Min < 0 || y.Min > y.Avg || y.Avg > y.Max || y.Max <= 0 {
		return fmt.Errorf("%w: yields: expected 0 <= min %g <= avg %g <= max %g, max > 0",
			ErrInvalidCrop, y.Min, y.Avg, y.Max)
	}
	return nil
}

// CropProfile is immutable reference data describing one crop. Profiles are
// owned by the catalog and are read-only to the scoring engine.
type CropProfile struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Parameters  CropParameters `json:"parameters"`
	Yields      Yields         `json:"yields"`
	Category    Category       `json:"category"`
	GrowthDays  int            `json:"growthDays"`
	Difficulty  string         `json:"difficulty,omitempty"`
}

// Validate checks every range and the yield anchors. A zero nutrient optimum
// is reported as a *ConfigurationError because it makes the NPK balance
// undefined; other failures wrap ErrInvalidCrop.
func (c *CropProfile) Validate() error {
	for _, param := range Parameters() {
		r, _ := c.Parameters.Range(param)
		if err := r.Validate(); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidCrop, param, err)
		}
	}

	if err := c.Yields.Validate(); err != nil {
		return err
	}

	for _, param := range []Parameter{ParameterNitrogen, ParameterPhosphorus, ParameterPotassium} {
		r, _ := c.Parameters.Range(param)
		if r.Optimal == 0 {
			return &ConfigurationError{Crop: c.Name, Field: string(param) + ".optimal", Err: ErrZeroOptimum}
		}
	}

	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
