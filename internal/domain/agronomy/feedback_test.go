package agronomy

import (
	"testing"

	"github.com/phrazzld/cropsim/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func perfectScores() subScores {
	return subScores{Water: 1, Nitrogen: 1, Phosphorus: 1, Potassium: 1, PH: 1, Temperature: 1, Balance: 1}
}

func TestGenerateFeedback_Perfect(t *testing.T) {
	t.Parallel()
	crop := scenarioCrop()

	feedback := generateFeedback(perfectScores(), 100, optimalInput(crop), crop.Parameters, 0.7)

	require.Len(t, feedback, 1)
	assert.Equal(t, CategoryOverall, feedback[0].Category)
	assert.Equal(t, domain.PriorityInfo, feedback[0].Priority)
	assert.Equal(t, domain.ImpactPositive, feedback[0].Impact)
	assert.Contains(t, feedback[0].Message, "Excellent")
}

func TestGenerateFeedback_OverallBands(t *testing.T) {
	t.Parallel()
	crop := scenarioCrop()
	input := optimalInput(crop)

	testCases := []struct {
		name     string
		overall  int
		expected []domain.Priority
		message  string
	}{
		{name: "excellent", overall: 90, expected: []domain.Priority{domain.PriorityInfo}, message: "Excellent"},
		{name: "good", overall: 70, expected: []domain.Priority{domain.PriorityInfo}, message: "Good performance"},
		{name: "fair omits overall", overall: 60, expected: []domain.Priority{}},
		{name: "fair lower bound", overall: 50, expected: []domain.Priority{}},
		{name: "failure", overall: 49, expected: []domain.Priority{domain.PriorityCritical}, message: "critical issues"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			feedback := generateFeedback(perfectScores(), tc.overall, input, crop.Parameters, 0.7)
			priorities := make([]domain.Priority, 0, len(feedback))
			for _, a := range feedback {
				priorities = append(priorities, a.Priority)
			}
			assert.Equal(t, tc.expected, priorities)
			if tc.message != "" {
				assert.Contains(t, feedback[0].Message, tc.message)
			}
		})
	}
}

func TestGenerateFeedback_OrderingIsStableByPriority(t *testing.T) {
	t.Parallel()
	crop := scenarioCrop()

	input := domain.SimulationInput{
		Water:       100, // deficit, high
		Nitrogen:    10,  // deficiency, high
		Phosphorus:  90,  // excess, medium
		Potassium:   31,  // in range, no advisory even if low
		PH:          4.0, // acidic, high
		Temperature: 40,  // heat, medium
	}
	scores := subScores{Water: 0.1, Nitrogen: 0.2, Phosphorus: 0.4, Potassium: 0.65, PH: 0.55, Temperature: 0.4, Balance: 0.5}

	feedback := generateFeedback(scores, 30, input, crop.Parameters, 0.7)

	assert.Equal(t,
		[]string{"overall", "water", "nitrogen", "ph", "phosphorus", "temperature", "balance"},
		categories(feedback))

	for i := 1; i < len(feedback); i++ {
		assert.GreaterOrEqual(t, feedback[i-1].Priority.Rank(), feedback[i].Priority.Rank())
	}
}

func TestGenerateFeedback_Messages(t *testing.T) {
	t.Parallel()
	crop := scenarioCrop()
	input := optimalInput(crop)
	input.Nitrogen = 10
	input.Potassium = 200
	input.PH = 8.5
	input.Temperature = 5

	scores := perfectScores()
	scores.Nitrogen = 0.1
	scores.Potassium = 0.1
	scores.PH = 0.5
	scores.Temperature = 0.1

	feedback := generateFeedback(scores, 75, input, crop.Parameters, 0.7)

	byCategory := make(map[string]domain.Advisory)
	for _, a := range feedback {
		byCategory[a.Category] = a
	}

	assert.Equal(t, "Nitrogen deficiency. Increase application to at least 100 kg/ha.", byCategory["nitrogen"].Message)
	assert.Equal(t, domain.ImpactSevere, byCategory["nitrogen"].Impact)
	assert.Equal(t, "Excess potassium may cause toxicity. Reduce to around 60 kg/ha.", byCategory["potassium"].Message)
	assert.Equal(t, domain.PriorityMedium, byCategory["potassium"].Priority)
	assert.Contains(t, byCategory["ph"].Message, "too alkaline")
	assert.Contains(t, byCategory["temperature"].Message, "too low")
}

func TestGenerateFeedback_WaterInRange(t *testing.T) {
	t.Parallel()
	crop := scenarioCrop()
	input := optimalInput(crop)

	scores := perfectScores()
	scores.Water = 0.65

	feedback := generateFeedback(scores, 95, input, crop.Parameters, 0.7)

	require.Len(t, feedback, 2)
	assert.Equal(t, "water", feedback[0].Category)
	assert.Equal(t, domain.PriorityMedium, feedback[0].Priority)
	assert.Equal(t, "Water level could be optimized for better growth.", feedback[0].Message)
}

func TestGenerateFeedback_CustomThreshold(t *testing.T) {
	t.Parallel()
	crop := scenarioCrop()
	input := optimalInput(crop)
	input.Water = 300

	scores := perfectScores()
	scores.Water = 0.6

	assert.Len(t, generateFeedback(scores, 95, input, crop.Parameters, 0.5), 1)
	assert.Len(t, generateFeedback(scores, 95, input, crop.Parameters, 0.7), 2)
}
