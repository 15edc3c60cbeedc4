package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/cropsim/internal/domain"
	"github.com/phrazzld/cropsim/internal/domain/agronomy"
	"github.com/phrazzld/cropsim/internal/domain/competence"
	"github.com/phrazzld/cropsim/internal/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSimulation() Simulation {
	detail := domain.ParameterDetail{Score: 100, Status: domain.StatusExcellent}
	return Simulation{
		Crop: "wheat",
		Result: &domain.SimulationResult{
			Score:   81,
			Success: true,
			Level:   domain.LevelEasy,
			Yield:   domain.YieldResult{Value: 7.2, Unit: "t/ha", Percentage: 90, Optimal: 8},
			Details: domain.Details{
				Water:       domain.ParameterDetail{Score: 25, Status: domain.StatusCritical},
				Nitrogen:    detail,
				Phosphorus:  detail,
				Potassium:   detail,
				PH:          detail,
				Temperature: detail,
				NPKBalance:  detail,
			},
			Feedback: []domain.Advisory{
				{Category: "water", Priority: domain.PriorityHigh, Message: "Water deficit", Impact: domain.ImpactSevere},
			},
		},
		Gains:        domain.CompetenceGain{Water: 2, NPK: 15, Soil: 12, Rotation: 8, NASA: 5},
		Stars:        2,
		Achievements: []domain.Achievement{domain.AchievementFirstWin},
		Advice:       competence.Recommendations(domain.CompetenceGain{Water: 2, NPK: 15, Soil: 12, Rotation: 8, NASA: 5}),
	}
}

func sampleBatch() Batch {
	outcomes := []task.Outcome{
		{
			TaskID:   uuid.New(),
			Scenario: task.Scenario{Name: "optimal", Crop: "wheat"},
			Status:   task.TaskStatusCompleted,
			Result:   &domain.SimulationResult{Score: 100, Success: true},
		},
		{
			TaskID:   uuid.New(),
			Scenario: task.Scenario{Name: "unknown", Crop: "quinoa"},
			Status:   task.TaskStatusFailed,
			Err:      errors.New("crop not found"),
			Error:    "crop not found",
		},
	}
	return Batch{Outcomes: outcomes, Summary: task.Summarize(outcomes)}
}

func TestNew(t *testing.T) {
	t.Parallel()

	r, err := New(FormatConsole)
	require.NoError(t, err)
	assert.IsType(t, &ConsoleRenderer{}, r)

	r, err = New(FormatJSON)
	require.NoError(t, err)
	assert.IsType(t, &JSONRenderer{}, r)

	_, err = New("markdown")
	assert.Error(t, err)
}

func TestConsoleRenderer_Crops(t *testing.T) {
	t.Parallel()

	crops := []*domain.CropProfile{
		{Name: "wheat", Category: domain.CategoryCereal, Difficulty: "easy", GrowthDays: 120, Description: "Winter cereal"},
		{Name: "bean", Category: domain.CategoryLegume, GrowthDays: 90},
	}

	var buf bytes.Buffer
	require.NoError(t, NewConsoleRenderer().Crops(&buf, crops))

	out := buf.String()
	assert.Contains(t, out, "Crops (2)")
	assert.Contains(t, out, "cereale")
	assert.Contains(t, out, "legume")
	assert.Contains(t, out, "wheat")
	assert.Contains(t, out, "Winter cereal")
	assert.Contains(t, out, "120 days")
}

func TestConsoleRenderer_Simulation(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, NewConsoleRenderer().Simulation(&buf, sampleSimulation()))

	out := buf.String()
	assert.Contains(t, out, "81/100")
	assert.Contains(t, out, "success")
	assert.Contains(t, out, "★★☆")
	assert.Contains(t, out, "7.2 t/ha (90% of 8 t/ha)")
	assert.Contains(t, out, "critical")
	assert.Contains(t, out, "water: Water deficit")
	assert.Contains(t, out, "water +2")
	assert.Contains(t, out, "nasa +5")
	assert.Contains(t, out, "first_win")
	assert.Contains(t, out, "Your strongest skill is npk (15/100)")
}

func TestConsoleRenderer_Check(t *testing.T) {
	t.Parallel()

	crop := &domain.CropProfile{
		Name: "wheat",
		Parameters: domain.CropParameters{
			Water:       domain.Range{Min: 400, Optimal: 600, Max: 800},
			Nitrogen:    domain.Range{Min: 50, Optimal: 100, Max: 150},
			Phosphorus:  domain.Range{Min: 20, Optimal: 40, Max: 60},
			Potassium:   domain.Range{Min: 30, Optimal: 60, Max: 90},
			PH:          domain.Range{Min: 5.5, Optimal: 6.5, Max: 7.5},
			Temperature: domain.Range{Min: 18, Optimal: 25, Max: 32},
		},
		Yields:   domain.Yields{Min: 2, Avg: 5, Max: 8},
		Category: domain.CategoryCereal,
	}
	input := domain.SimulationInput{Water: 600, Nitrogen: 100, Phosphorus: 40, Potassium: 60, PH: 6.0, Temperature: 25}

	rep, err := agronomy.NewDefaultEngine().CheckParameters(crop, input)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewConsoleRenderer().Check(&buf, Check{Crop: "wheat", Report: rep}))

	out := buf.String()
	assert.Contains(t, out, "Parameter check: wheat")
	assert.Contains(t, out, "overall 96/100")
	assert.Contains(t, out, "below_optimal")
	assert.Contains(t, out, "Recommendations")
	assert.Contains(t, out, "[low]")
}

func TestConsoleRenderer_Batch(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, NewConsoleRenderer().Batch(&buf, sampleBatch()))

	out := buf.String()
	assert.Contains(t, out, "optimal")
	assert.Contains(t, out, "crop not found")
	assert.Contains(t, out, "2 scenarios, 1 completed, 1 failed, 0 not run, mean score 100.0")
}

func TestJSONRenderer(t *testing.T) {
	t.Parallel()

	r := NewJSONRenderer(false)

	t.Run("simulation", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, r.Simulation(&buf, sampleSimulation()))

		var decoded Simulation
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, 81, decoded.Result.Score)
		assert.Equal(t, domain.StatusCritical, decoded.Result.Details.Water.Status)
		assert.Equal(t, 15, decoded.Gains.NPK)
		assert.Equal(t, []domain.Achievement{domain.AchievementFirstWin}, decoded.Achievements)
	})

	t.Run("batch keeps errors as text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, r.Batch(&buf, sampleBatch()))

		var decoded struct {
			Outcomes []struct {
				Status string `json:"status"`
				Error  string `json:"error"`
			} `json:"outcomes"`
			Summary task.Summary `json:"summary"`
		}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		require.Len(t, decoded.Outcomes, 2)
		assert.Equal(t, "completed", decoded.Outcomes[0].Status)
		assert.Equal(t, "crop not found", decoded.Outcomes[1].Error)
		assert.Equal(t, 1, decoded.Summary.Failed)
	})

	t.Run("crops", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, r.Crops(&buf, []*domain.CropProfile{{Name: "wheat", Category: domain.CategoryCereal}}))
		assert.Contains(t, buf.String(), `"crops":[{"name":"wheat"`)
	})
}
