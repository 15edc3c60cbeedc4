package competence

import (
	"github.com/phrazzld/cropsim/internal/domain"
)

// baseGains is the per-level starting gain before bonuses and multipliers.
var baseGains = [...]float64{
	domain.LevelEasy:   5,
	domain.LevelMedium: 4,
	domain.LevelHard:   3,
}

// categoryBonus rewards rotation practice per crop family. Legumes fix
// nitrogen and count double.
var categoryBonus = map[domain.Category]float64{
	domain.CategoryCereal:  1,
	domain.CategoryLegume:  2,
	domain.CategoryTuber:   1,
	domain.CategoryOilseed: 1,
	domain.CategoryFruit:   1,
}

// Penalty multipliers applied when the skill's own sub-score is poor.
const (
	waterPenalty = 0.3
	npkPenalty   = 0.3
	soilPenalty  = 0.4

	// npkPenaltyBelow is the mean nutrient detail score under which the
	// npk penalty applies.
	npkPenaltyBelow = 30

	rotationBaseFactor = 0.8
	nasaBaseFactor     = 0.7
)

// nasaLevelFactor scales NASA data interpretation gains with difficulty.
var nasaLevelFactor = [...]float64{
	domain.LevelEasy:   1.0,
	domain.LevelMedium: 1.2,
	domain.LevelHard:   1.5,
}

func baseGain(level domain.Level) float64 {
	return baseGains[level.Effective()]
}

// scoreMultiplier scales every gain by the overall simulation score.
func scoreMultiplier(overall int) float64 {
	switch {
	case overall >= 90:
		return 2.0
	case overall >= 70:
		return 1.5
	case overall >= 50:
		return 1.0
	case overall >= 30:
		return 0.5
	default:
		return 0.2
	}
}

// tierBonus is the +3/+2/+1/0 bonus at detail scores 90/70/50.
func tierBonus(score float64) float64 {
	switch {
	case score >= 90:
		return 3
	case score >= 70:
		return 2
	case score >= 50:
		return 1
	default:
		return 0
	}
}

func balanceBonus(score int) float64 {
	switch {
	case score >= 80:
		return 2
	case score >= 60:
		return 1
	default:
		return 0
	}
}

// environmentBonus rewards reading temperature and water together.
func environmentBonus(temperature, water int) float64 {
	switch {
	case temperature >= 80 && water >= 80:
		return 4
	case temperature >= 60 && water >= 60:
		return 2
	case temperature >= 40 && water >= 40:
		return 1
	default:
		return 0
	}
}

var achievementBonuses = map[domain.Achievement]domain.CompetenceGain{
	domain.AchievementFirstWin:       {Water: 5, NPK: 5, Soil: 5, Rotation: 5, NASA: 5},
	domain.AchievementPerfectScore:   {Water: 10, NPK: 10, Soil: 10, Rotation: 10, NASA: 10},
	domain.AchievementMasterWater:    {Water: 20},
	domain.AchievementMasterNPK:      {NPK: 20},
	domain.AchievementMasterSoil:     {Soil: 20},
	domain.AchievementMasterRotation: {Rotation: 20},
	domain.AchievementMasterNASA:     {NASA: 20},
	domain.AchievementThreeStarsFive: {Water: 5, NPK: 5, Soil: 5, Rotation: 10, NASA: 5},
	domain.AchievementWinStreakFive:  {Water: 3, NPK: 3, Soil: 3, Rotation: 3, NASA: 3},
	domain.AchievementWinStreakTen:   {Water: 5, NPK: 5, Soil: 5, Rotation: 5, NASA: 5},
}

// AchievementBonus returns the bonus competence granted by an achievement.
// Unknown achievements grant nothing.
func AchievementBonus(kind domain.Achievement) domain.CompetenceGain {
	return achievementBonuses[kind]
}
