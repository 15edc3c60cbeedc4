package task

import (
	"testing"

	"github.com/phrazzld/cropsim/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScenarios(t *testing.T) {
	t.Parallel()

	data := []byte(`
scenarios:
  - name: dry wheat
    crop: wheat
    level: 2
    input: {water: 300, nitrogen: 100, phosphorus: 40, potassium: 60, ph: 6.5, temperature: 25}
  - name: default level
    crop: bean
    input:
      water: 450
      ph: 6.8
`)

	scenarios, err := ParseScenarios(data)
	require.NoError(t, err)
	require.Len(t, scenarios, 2)

	assert.Equal(t, Scenario{
		Name:  "dry wheat",
		Crop:  "wheat",
		Level: domain.LevelMedium,
		Input: domain.SimulationInput{Water: 300, Nitrogen: 100, Phosphorus: 40, Potassium: 60, PH: 6.5, Temperature: 25},
	}, scenarios[0])

	assert.Equal(t, domain.Level(0), scenarios[1].Level)
	assert.Equal(t, 450.0, scenarios[1].Input.Water)
	assert.Equal(t, 0.0, scenarios[1].Input.Nitrogen)
}

func TestParseScenarios_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		data        string
		expectedErr error
		contains    string
	}{
		{name: "empty", data: "", expectedErr: ErrNoScenarios},
		{name: "empty list", data: "scenarios: []", expectedErr: ErrNoScenarios},
		{name: "malformed", data: "scenarios: [", contains: "decode batch file"},
		{name: "unknown key", data: "scenarios:\n  - name: a\n    crop: wheat\n    fertilizer: 3\n", contains: "fertilizer"},
		{name: "missing crop", data: "scenarios:\n  - name: a\n", contains: "Crop"},
		{name: "negative level", data: "scenarios:\n  - name: a\n    crop: wheat\n    level: -1\n", contains: "gte"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			scenarios, err := ParseScenarios([]byte(tc.data))
			require.Error(t, err)
			assert.Nil(t, scenarios)
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
			}
			if tc.contains != "" {
				assert.Contains(t, err.Error(), tc.contains)
			}
		})
	}
}
