package agronomy

import (
	"math"

	"github.com/phrazzld/cropsim/internal/domain"
)

// scoreAll computes the seven raw sub-scores for an input against a crop's
// optimal ranges. The crop must already have passed Validate.
func scoreAll(optimal domain.CropParameters, input domain.SimulationInput) (subScores, error) {
	balance, err := Balance(
		NPK{Nitrogen: input.Nitrogen, Phosphorus: input.Phosphorus, Potassium: input.Potassium},
		NPK{
			Nitrogen:   optimal.Nitrogen.Optimal,
			Phosphorus: optimal.Phosphorus.Optimal,
			Potassium:  optimal.Potassium.Optimal,
		},
	)
	if err != nil {
		return subScores{}, err
	}

	return subScores{
		Water:       ScoreParameter(domain.ParameterWater, optimal.Water, input.Water),
		Nitrogen:    ScoreParameter(domain.ParameterNitrogen, optimal.Nitrogen, input.Nitrogen),
		Phosphorus:  ScoreParameter(domain.ParameterPhosphorus, optimal.Phosphorus, input.Phosphorus),
		Potassium:   ScoreParameter(domain.ParameterPotassium, optimal.Potassium, input.Potassium),
		PH:          ScoreParameter(domain.ParameterPH, optimal.PH, input.PH),
		Temperature: ScoreParameter(domain.ParameterTemperature, optimal.Temperature, input.Temperature),
		Balance:     balance,
	}, nil
}

// aggregateScore combines weighted sub-scores into an integer in [0, 100]:
// round(sum(weight * subscore) * 100).
func aggregateScore(s subScores, w Weights) int {
	total := s.Water*w.Water +
		s.Nitrogen*w.Nitrogen +
		s.Phosphorus*w.Phosphorus +
		s.Potassium*w.Potassium +
		s.PH*w.PH +
		s.Temperature*w.Temperature +
		s.Balance*w.Balance

	overall := math.Round(total * 100)
	switch {
	case math.IsNaN(overall) || overall < 0:
		return 0
	case overall > 100:
		return 100
	default:
		return int(overall)
	}
}

// calculateResult runs the full pipeline for one simulation and builds a
// fresh result. level must already be resolved to a valid level.
func calculateResult(
	crop *domain.CropProfile,
	input domain.SimulationInput,
	level domain.Level,
	params *Params,
) (*domain.SimulationResult, error) {
	scores, err := scoreAll(crop.Parameters, input)
	if err != nil {
		return nil, err
	}

	overall := aggregateScore(scores, WeightsFor(level))

	return &domain.SimulationResult{
		Score:   overall,
		Yield:   ProjectYield(crop.Yields, overall),
		Success: overall >= params.SuccessScore,
		Details: domain.Details{
			Water:       detailFor(scores.Water),
			Nitrogen:    detailFor(scores.Nitrogen),
			Phosphorus:  detailFor(scores.Phosphorus),
			Potassium:   detailFor(scores.Potassium),
			PH:          detailFor(scores.PH),
			Temperature: detailFor(scores.Temperature),
			NPKBalance:  detailFor(scores.Balance),
		},
		Feedback: generateFeedback(scores, overall, input, crop.Parameters, params.FeedbackThreshold),
		Level:    level,
	}, nil
}
