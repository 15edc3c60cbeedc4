package competence

import (
	"math"

	"github.com/phrazzld/cropsim/internal/domain"
)

// calculateGains converts a simulation result into the five skill deltas.
// Each skill is computed independently; there is no shared cap here.
func calculateGains(
	crop *domain.CropProfile,
	result *domain.SimulationResult,
	level domain.Level,
) domain.CompetenceGain {
	base := baseGain(level)
	multiplier := scoreMultiplier(result.Score)
	d := result.Details

	return domain.CompetenceGain{
		Water:    finalize(detailGain(d.Water, base, multiplier, waterPenalty)),
		NPK:      finalize(npkGain(d, base, multiplier)),
		Soil:     finalize(detailGain(d.PH, base, multiplier, soilPenalty)),
		Rotation: finalize(rotationGain(crop.Category, level, base, multiplier)),
		NASA:     finalize(nasaGain(d, level, base, multiplier)),
	}
}

// detailGain is shared by water and soil: a tier bonus on the detail score
// and a penalty when the detail is poor or critical.
func detailGain(detail domain.ParameterDetail, base, multiplier, penalty float64) float64 {
	gain := (base + tierBonus(float64(detail.Score))) * multiplier
	if detail.Status == domain.StatusPoor || detail.Status == domain.StatusCritical {
		gain *= penalty
	}
	return gain
}

func npkGain(d domain.Details, base, multiplier float64) float64 {
	avg := float64(d.Nitrogen.Score+d.Phosphorus.Score+d.Potassium.Score) / 3

	gain := base + tierBonus(avg) + balanceBonus(d.NPKBalance.Score)
	gain *= multiplier
	if avg < npkPenaltyBelow {
		gain *= npkPenalty
	}
	return gain
}

func rotationGain(category domain.Category, level domain.Level, base, multiplier float64) float64 {
	gain := base * rotationBaseFactor
	if level >= domain.LevelMedium {
		gain += 2
	}
	if level == domain.LevelHard {
		gain++
	}
	gain += categoryBonus[category]
	return gain * multiplier
}

func nasaGain(d domain.Details, level domain.Level, base, multiplier float64) float64 {
	gain := base*nasaBaseFactor + environmentBonus(d.Temperature.Score, d.Water.Score)
	gain *= nasaLevelFactor[level]
	return gain * multiplier
}

// finalize applies the one-point floor and rounds half away from zero.
func finalize(gain float64) int {
	if math.IsNaN(gain) || gain < 1 {
		return 1
	}
	return int(math.Round(gain))
}
