package progress

import (
	"maps"

	"github.com/phrazzld/cropsim/internal/domain"
)

// threeStarCrops is the number of crops at MaxStars that earns
// three_stars_5_crops.
const threeStarCrops = 5

// Win streak lengths and the achievement each one earns
var streakMilestones = []struct {
	streak      int
	achievement domain.Achievement
}{
	{3, domain.AchievementWinStreakThree},
	{5, domain.AchievementWinStreakFive},
	{10, domain.AchievementWinStreakTen},
}

// Player spans every crop a player has grown. The win streak counts
// consecutive games scoring 50 or more, whatever the crop.
type Player struct {
	Crops     map[string]Progress `json:"crops"`
	WinStreak int                 `json:"winStreak"`
}

// NewPlayer returns a player with no games.
func NewPlayer() Player {
	return Player{Crops: map[string]Progress{}}
}

// Progress returns the record for crop, or a fresh one.
func (pl Player) Progress(crop string) Progress {
	if p, ok := pl.Crops[crop]; ok {
		return p
	}
	return New()
}

// GamesPlayed sums the games played on every crop.
func (pl Player) GamesPlayed() int {
	total := 0
	for _, p := range pl.Crops {
		total += p.GamesPlayed
	}
	return total
}

// ThreeStarCrops counts the crops rated MaxStars.
func (pl Player) ThreeStarCrops() int {
	n := 0
	for _, p := range pl.Crops {
		if p.Stars >= MaxStars {
			n++
		}
	}
	return n
}

// Record applies one game on crop and returns the updated player with the
// achievements this game crossed, in this order: single-game achievements,
// win streaks, three_stars_5_crops, then milestones on the player's games
// and the crop's competences. pl is left untouched.
func (pl Player) Record(crop string, score int, gains domain.CompetenceGain) (Player, []domain.Achievement) {
	before := pl.Progress(crop)
	after := Apply(before, score, gains)

	next := Player{Crops: maps.Clone(pl.Crops), WinStreak: pl.WinStreak}
	if next.Crops == nil {
		next.Crops = map[string]Progress{}
	}
	next.Crops[crop] = after

	earned := GameAchievements(before, score)

	if score >= oneStarScore {
		next.WinStreak++
		for _, m := range streakMilestones {
			if next.WinStreak == m.streak {
				earned = append(earned, m.achievement)
			}
		}
	} else {
		next.WinStreak = 0
	}

	if pl.ThreeStarCrops() < threeStarCrops && next.ThreeStarCrops() >= threeStarCrops {
		earned = append(earned, domain.AchievementThreeStarsFive)
	}

	had := make(map[domain.Achievement]bool)
	for _, a := range Achievements(pl.GamesPlayed(), before.Competences) {
		had[a] = true
	}
	for _, a := range Achievements(next.GamesPlayed(), after.Competences) {
		if !had[a] {
			earned = append(earned, a)
		}
	}

	return next, earned
}
