// Package progress accumulates game outcomes into a player's per-crop
// progress record. Every function returns a new value and leaves its
// arguments untouched.
package progress

import (
	"github.com/phrazzld/cropsim/internal/domain"
)

// Thresholds on the overall simulation score
const (
	threeStarScore = 90
	twoStarScore   = 70
	oneStarScore   = 50

	// successScore counts toward the streak that unlocks the next level.
	successScore = twoStarScore

	// MaxStreak is the number of consecutive successes that unlocks a level.
	MaxStreak = 3
	// MaxStars is the best star rating a crop can earn.
	MaxStars = 3
)

// Progress is a player's record for one crop.
type Progress struct {
	Level              domain.Level          `json:"level"`
	Stars              int                   `json:"stars"`
	ConsecutiveSuccess int                   `json:"consecutiveSuccess"`
	GamesPlayed        int                   `json:"gamesPlayed"`
	BestScore          int                   `json:"bestScore"`
	Competences        domain.CompetenceGain `json:"competences"`
}

// New returns an empty record at level 1.
func New() Progress {
	return Progress{Level: domain.LevelEasy}
}

// StarsFor returns the star rating earned by one overall score.
func StarsFor(score int) int {
	switch {
	case score >= threeStarScore:
		return 3
	case score >= twoStarScore:
		return 2
	case score >= oneStarScore:
		return 1
	default:
		return 0
	}
}

// Apply records one game. Stars never decrease, the success streak grows on
// scores of 70 or more up to MaxStreak and resets otherwise, and competences
// are summed and capped at domain.MaxCompetence.
func Apply(p Progress, score int, gains domain.CompetenceGain) Progress {
	p.GamesPlayed++
	p.BestScore = max(p.BestScore, score)
	p.Stars = max(p.Stars, StarsFor(score))

	if score >= successScore {
		p.ConsecutiveSuccess = min(p.ConsecutiveSuccess+1, MaxStreak)
	} else {
		p.ConsecutiveSuccess = 0
	}

	p.Competences = p.Competences.Add(gains)

	return p
}

// UnlockNextLevel advances the level after MaxStreak consecutive successes.
// It reports whether a level was unlocked; the streak resets when it was.
func UnlockNextLevel(p Progress) (Progress, bool) {
	if p.Level >= domain.LevelHard || p.ConsecutiveSuccess < MaxStreak {
		return p, false
	}
	p.Level++
	p.ConsecutiveSuccess = 0
	return p, true
}

// Milestones on games played
var gameMilestones = []struct {
	games       int
	achievement domain.Achievement
}{
	{1, domain.AchievementFirstGame},
	{10, domain.AchievementPlay10},
	{50, domain.AchievementPlay50},
	{100, domain.AchievementPlay100},
}

// masteryScore is the competence total that earns a skill's master achievement.
const masteryScore = 90

// Achievements lists every milestone earned by a player with the given
// number of games and competence totals. Callers diff it against the
// achievements already unlocked.
func Achievements(totalGames int, totals domain.CompetenceGain) []domain.Achievement {
	earned := make([]domain.Achievement, 0)

	for _, m := range gameMilestones {
		if totalGames >= m.games {
			earned = append(earned, m.achievement)
		}
	}

	lowest := domain.MaxCompetence
	for _, skill := range domain.Skills() {
		score := totals.Get(skill)
		lowest = min(lowest, score)
		if score >= masteryScore {
			earned = append(earned, domain.MasterAchievement(skill))
		}
	}

	if lowest >= 50 {
		earned = append(earned, domain.AchievementAllCompetences50)
	}
	if lowest >= domain.MaxCompetence {
		earned = append(earned, domain.AchievementAllCompetences100)
	}

	return earned
}

// GameAchievements lists the achievements earned by a single game: a first
// win on the first successful score and a perfect score at 100.
func GameAchievements(before Progress, score int) []domain.Achievement {
	earned := make([]domain.Achievement, 0)
	if score >= oneStarScore && before.BestScore < oneStarScore {
		earned = append(earned, domain.AchievementFirstWin)
	}
	if score >= 100 {
		earned = append(earned, domain.AchievementPerfectScore)
	}
	return earned
}
