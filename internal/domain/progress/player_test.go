package progress

import (
	"fmt"
	"testing"

	"github.com/phrazzld/cropsim/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerRecord_FirstGame(t *testing.T) {
	t.Parallel()

	pl := NewPlayer()
	next, earned := pl.Record("wheat", 100, domain.CompetenceGain{Water: 16, NPK: 20})

	assert.Equal(t, []domain.Achievement{
		domain.AchievementFirstWin,
		domain.AchievementPerfectScore,
		domain.AchievementFirstGame,
	}, earned)
	assert.Equal(t, 1, next.WinStreak)
	assert.Equal(t, 1, next.GamesPlayed())
	assert.Equal(t, MaxStars, next.Progress("wheat").Stars)
	assert.Empty(t, pl.Crops, "receiver is untouched")
}

func TestPlayerRecord_ZeroValue(t *testing.T) {
	t.Parallel()

	var pl Player
	next, earned := pl.Record("bean", 40, domain.CompetenceGain{})

	assert.Equal(t, []domain.Achievement{domain.AchievementFirstGame}, earned)
	assert.Equal(t, 0, next.WinStreak)
	assert.Equal(t, New(), pl.Progress("bean"))
}

func TestPlayerRecord_WinStreaks(t *testing.T) {
	t.Parallel()

	pl := NewPlayer()
	var all []domain.Achievement
	for i := 0; i < 10; i++ {
		var earned []domain.Achievement
		pl, earned = pl.Record("maize", 60, domain.CompetenceGain{})
		all = append(all, earned...)
	}

	assert.Equal(t, 10, pl.WinStreak)
	assert.Equal(t, []domain.Achievement{
		domain.AchievementFirstWin,
		domain.AchievementFirstGame,
		domain.AchievementWinStreakThree,
		domain.AchievementWinStreakFive,
		domain.AchievementWinStreakTen,
		domain.AchievementPlay10,
	}, all)

	pl, earned := pl.Record("maize", 49, domain.CompetenceGain{})
	assert.Equal(t, 0, pl.WinStreak, "a loss resets the streak")
	assert.Empty(t, earned)
}

func TestPlayerRecord_StreakSpansCrops(t *testing.T) {
	t.Parallel()

	pl := NewPlayer()
	pl, _ = pl.Record("wheat", 55, domain.CompetenceGain{})
	pl, _ = pl.Record("rice", 55, domain.CompetenceGain{})
	pl, earned := pl.Record("bean", 55, domain.CompetenceGain{})

	assert.Equal(t, 3, pl.WinStreak)
	assert.Contains(t, earned, domain.AchievementWinStreakThree)
	assert.Equal(t, 3, pl.GamesPlayed())
}

func TestPlayerRecord_ThreeStarsOnFiveCrops(t *testing.T) {
	t.Parallel()

	pl := NewPlayer()
	for i := 1; i <= 4; i++ {
		var earned []domain.Achievement
		pl, earned = pl.Record(fmt.Sprintf("crop-%d", i), 95, domain.CompetenceGain{})
		assert.NotContains(t, earned, domain.AchievementThreeStarsFive, "crop %d", i)
	}

	// a second three-star game on a rated crop does not count twice
	pl, earned := pl.Record("crop-1", 95, domain.CompetenceGain{})
	require.Equal(t, 4, pl.ThreeStarCrops())
	assert.NotContains(t, earned, domain.AchievementThreeStarsFive)

	pl, earned = pl.Record("crop-5", 92, domain.CompetenceGain{})
	assert.Equal(t, 5, pl.ThreeStarCrops())
	assert.Contains(t, earned, domain.AchievementThreeStarsFive)

	_, earned = pl.Record("crop-6", 95, domain.CompetenceGain{})
	assert.NotContains(t, earned, domain.AchievementThreeStarsFive)
}

func TestPlayerRecord_CompetenceMilestones(t *testing.T) {
	t.Parallel()

	pl := NewPlayer()
	pl, _ = pl.Record("soybean", 80, domain.CompetenceGain{Water: 85})
	_, earned := pl.Record("soybean", 80, domain.CompetenceGain{Water: 10})

	assert.Equal(t, []domain.Achievement{domain.AchievementMasterWater}, earned)
}
