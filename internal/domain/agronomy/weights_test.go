package agronomy

import (
	"math"
	"testing"

	"github.com/phrazzld/cropsim/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestWeightsFor_SumToOne(t *testing.T) {
	t.Parallel()

	for _, level := range []domain.Level{domain.LevelEasy, domain.LevelMedium, domain.LevelHard} {
		w := WeightsFor(level)
		assert.NoError(t, w.Validate(), "level %d", level)
		assert.LessOrEqual(t, math.Abs(w.Sum()-1.0), 1e-9, "level %d", level)
	}
}

func TestWeightsFor_Profiles(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.25, WeightsFor(domain.LevelEasy).Water)
	assert.Equal(t, 0.10, WeightsFor(domain.LevelEasy).Balance)
	assert.Equal(t, 0.15, WeightsFor(domain.LevelMedium).Balance)
	assert.Equal(t, 0.15, WeightsFor(domain.LevelHard).Balance)
	assert.Equal(t, 0.18, WeightsFor(domain.LevelHard).Water)
}

func TestWeightsFor_UnknownLevelFallsBack(t *testing.T) {
	t.Parallel()

	level1 := WeightsFor(domain.LevelEasy)
	for _, level := range []domain.Level{0, -3, 4, 100} {
		assert.Equal(t, level1, WeightsFor(level), "level %d", level)
	}
}

func TestWeightsFor_ReturnsCopy(t *testing.T) {
	t.Parallel()

	w := WeightsFor(domain.LevelMedium)
	w.Water = 0.99
	assert.Equal(t, 0.20, WeightsFor(domain.LevelMedium).Water)
}

func TestWeightsValidate(t *testing.T) {
	t.Parallel()

	assert.Error(t, Weights{Water: 0.5}.Validate())
	assert.Error(t, Weights{Water: 1.2, Balance: -0.2}.Validate())
	assert.NoError(t, Weights{Water: 0.5, Balance: 0.5}.Validate())
}
