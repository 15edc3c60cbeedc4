package agronomy

import (
	"github.com/phrazzld/cropsim/internal/domain"
)

// scenarioCrop returns the reference cereal used across the engine tests.
func scenarioCrop() *domain.CropProfile {
	return &domain.CropProfile{
		Name: "wheat",
		Parameters: domain.CropParameters{
			Water:       domain.Range{Min: 400, Optimal: 600, Max: 800, Unit: "mm/saison"},
			Nitrogen:    domain.Range{Min: 50, Optimal: 100, Max: 150, Unit: "kg/ha"},
			Phosphorus:  domain.Range{Min: 20, Optimal: 40, Max: 60, Unit: "kg/ha"},
			Potassium:   domain.Range{Min: 30, Optimal: 60, Max: 90, Unit: "kg/ha"},
			PH:          domain.Range{Min: 5.5, Optimal: 6.5, Max: 7.5},
			Temperature: domain.Range{Min: 18, Optimal: 25, Max: 32, Unit: "°C"},
		},
		Yields:     domain.Yields{Min: 2, Avg: 5, Max: 8, Unit: "t/ha"},
		Category:   domain.CategoryCereal,
		GrowthDays: 120,
	}
}

// optimalInput returns an input with every parameter at the crop's optimum.
func optimalInput(crop *domain.CropProfile) domain.SimulationInput {
	p := crop.Parameters
	return domain.SimulationInput{
		Water:       p.Water.Optimal,
		Nitrogen:    p.Nitrogen.Optimal,
		Phosphorus:  p.Phosphorus.Optimal,
		Potassium:   p.Potassium.Optimal,
		PH:          p.PH.Optimal,
		Temperature: p.Temperature.Optimal,
	}
}

func categories(feedback []domain.Advisory) []string {
	out := make([]string, 0, len(feedback))
	for _, a := range feedback {
		out = append(out, a.Category)
	}
	return out
}
