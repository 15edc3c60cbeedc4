package agronomy

import (
	"fmt"
	"sort"
	"strings"

	"github.com/phrazzld/cropsim/internal/domain"
)

// Advisory categories beyond the six parameter names
const (
	CategoryBalance = "balance"
	CategoryOverall = "overall"
)

// subScores holds the seven raw [0, 1] sub-scores of one simulation.
type subScores struct {
	Water       float64
	Nitrogen    float64
	Phosphorus  float64
	Potassium   float64
	PH          float64
	Temperature float64
	Balance     float64
}

func (s subScores) forParameter(param domain.Parameter) float64 {
	switch param {
	case domain.ParameterWater:
		return s.Water
	case domain.ParameterNitrogen:
		return s.Nitrogen
	case domain.ParameterPhosphorus:
		return s.Phosphorus
	case domain.ParameterPotassium:
		return s.Potassium
	case domain.ParameterPH:
		return s.PH
	case domain.ParameterTemperature:
		return s.Temperature
	default:
		return 0
	}
}

// generateFeedback emits one advisory per sub-score below threshold, in the
// order water, nitrogen, phosphorus, potassium, ph, temperature, balance,
// then the overall advisory, and stably sorts them by descending priority.
func generateFeedback(
	scores subScores,
	overall int,
	input domain.SimulationInput,
	optimal domain.CropParameters,
	threshold float64,
) []domain.Advisory {
	feedback := make([]domain.Advisory, 0, 8)

	if scores.Water < threshold {
		feedback = append(feedback, waterAdvisory(input.Water, optimal.Water))
	}

	for _, nutrient := range []domain.Parameter{
		domain.ParameterNitrogen,
		domain.ParameterPhosphorus,
		domain.ParameterPotassium,
	} {
		if scores.forParameter(nutrient) >= threshold {
			continue
		}
		r, _ := optimal.Range(nutrient)
		actual, _ := input.Value(nutrient)
		if advisory, ok := nutrientAdvisory(nutrient, actual, r); ok {
			feedback = append(feedback, advisory)
		}
	}

	if scores.PH < threshold {
		switch {
		case input.PH < optimal.PH.Min:
			feedback = append(feedback, domain.Advisory{
				Category: string(domain.ParameterPH),
				Priority: domain.PriorityHigh,
				Message:  "Soil is too acidic. Add lime to raise pH.",
				Impact:   domain.ImpactSevere,
			})
		case input.PH > optimal.PH.Max:
			feedback = append(feedback, domain.Advisory{
				Category: string(domain.ParameterPH),
				Priority: domain.PriorityHigh,
				Message:  "Soil is too alkaline. Add sulfur or organic matter to lower pH.",
				Impact:   domain.ImpactSevere,
			})
		}
	}

	if scores.Temperature < threshold {
		switch {
		case input.Temperature < optimal.Temperature.Min:
			feedback = append(feedback, domain.Advisory{
				Category: string(domain.ParameterTemperature),
				Priority: domain.PriorityMedium,
				Message:  "Temperature is too low for optimal growth. Consider delaying planting.",
				Impact:   domain.ImpactModerate,
			})
		case input.Temperature > optimal.Temperature.Max:
			feedback = append(feedback, domain.Advisory{
				Category: string(domain.ParameterTemperature),
				Priority: domain.PriorityMedium,
				Message:  "Temperature is too high. Consider shade or irrigation to cool plants.",
				Impact:   domain.ImpactModerate,
			})
		}
	}

	if scores.Balance < threshold {
		feedback = append(feedback, domain.Advisory{
			Category: CategoryBalance,
			Priority: domain.PriorityMedium,
			Message:  "NPK nutrients are imbalanced. Adjust ratios for better nutrient uptake.",
			Impact:   domain.ImpactModerate,
		})
	}

	if advisory, ok := overallAdvisory(overall); ok {
		feedback = append(feedback, advisory)
	}

	sortByPriority(feedback)

	return feedback
}

func waterAdvisory(actual float64, r domain.Range) domain.Advisory {
	switch {
	case actual < r.Min:
		return domain.Advisory{
			Category: string(domain.ParameterWater),
			Priority: domain.PriorityHigh,
			Message:  "Water deficit detected. Increase irrigation to meet crop needs.",
			Impact:   domain.ImpactSevere,
		}
	case actual > r.Max:
		return domain.Advisory{
			Category: string(domain.ParameterWater),
			Priority: domain.PriorityHigh,
			Message:  "Excess water causing waterlogging. Reduce irrigation or improve drainage.",
			Impact:   domain.ImpactSevere,
		}
	default:
		return domain.Advisory{
			Category: string(domain.ParameterWater),
			Priority: domain.PriorityMedium,
			Message:  "Water level could be optimized for better growth.",
			Impact:   domain.ImpactModerate,
		}
	}
}

// nutrientAdvisory reports a deficiency or an excess. A low in-range score
// produces no advisory.
func nutrientAdvisory(nutrient domain.Parameter, actual float64, r domain.Range) (domain.Advisory, bool) {
	target := formatAmount(r.Optimal, r.Unit)

	switch {
	case actual < r.Min:
		return domain.Advisory{
			Category: string(nutrient),
			Priority: domain.PriorityHigh,
			Message: fmt.Sprintf("%s deficiency. Increase application to at least %s.",
				capitalize(string(nutrient)), target),
			Impact: domain.ImpactSevere,
		}, true
	case actual > r.Max:
		return domain.Advisory{
			Category: string(nutrient),
			Priority: domain.PriorityMedium,
			Message:  fmt.Sprintf("Excess %s may cause toxicity. Reduce to around %s.", nutrient, target),
			Impact:   domain.ImpactModerate,
		}, true
	default:
		return domain.Advisory{}, false
	}
}

// overallAdvisory summarizes the overall score. Scores in [50, 70) get none.
func overallAdvisory(overall int) (domain.Advisory, bool) {
	switch {
	case overall >= 90:
		return domain.Advisory{
			Category: CategoryOverall,
			Priority: domain.PriorityInfo,
			Message:  "Excellent! All parameters are optimized for maximum yield.",
			Impact:   domain.ImpactPositive,
		}, true
	case overall >= 70:
		return domain.Advisory{
			Category: CategoryOverall,
			Priority: domain.PriorityInfo,
			Message:  "Good performance. Minor adjustments could further improve yield.",
			Impact:   domain.ImpactPositive,
		}, true
	case overall < 50:
		return domain.Advisory{
			Category: CategoryOverall,
			Priority: domain.PriorityCritical,
			Message:  "Multiple critical issues detected. Major adjustments needed.",
			Impact:   domain.ImpactSevere,
		}, true
	default:
		return domain.Advisory{}, false
	}
}

func sortByPriority(feedback []domain.Advisory) {
	sort.SliceStable(feedback, func(i, j int) bool {
		return feedback[i].Priority.Rank() > feedback[j].Priority.Rank()
	})
}

func formatAmount(v float64, unit string) string {
	return strings.TrimSpace(fmt.Sprintf("%g %s", v, unit))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
