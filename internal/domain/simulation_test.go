package domain

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevel(t *testing.T) {
	t.Parallel()

	for _, l := range []Level{LevelEasy, LevelMedium, LevelHard} {
		assert.True(t, l.Valid())
		assert.Equal(t, l, l.Effective())
	}

	for _, l := range []Level{0, -1, 4, 42} {
		assert.False(t, l.Valid())
		assert.Equal(t, LevelEasy, l.Effective())
	}
}

func TestPriorityRank(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 4, PriorityCritical.Rank())
	assert.Equal(t, 3, PriorityHigh.Rank())
	assert.Equal(t, 2, PriorityMedium.Rank())
	assert.Equal(t, 1, PriorityLow.Rank())
	assert.Equal(t, 0, PriorityInfo.Rank())
	assert.Equal(t, 0, Priority("unknown").Rank())
}

func TestSimulationInputValidate(t *testing.T) {
	t.Parallel()

	valid := SimulationInput{Water: 600, Nitrogen: 100, Phosphorus: 40, Potassium: 60, PH: 6.5, Temperature: 25}

	testCases := []struct {
		name    string
		mutate  func(in *SimulationInput)
		wantErr bool
	}{
		{name: "valid input", mutate: func(in *SimulationInput) {}},
		{name: "negative temperature allowed", mutate: func(in *SimulationInput) { in.Temperature = -5 }},
		{name: "negative water", mutate: func(in *SimulationInput) { in.Water = -1 }, wantErr: true},
		{name: "negative potassium", mutate: func(in *SimulationInput) { in.Potassium = -0.1 }, wantErr: true},
		{name: "pH above 14", mutate: func(in *SimulationInput) { in.PH = 14.5 }, wantErr: true},
		{name: "NaN nitrogen", mutate: func(in *SimulationInput) { in.Nitrogen = math.NaN() }, wantErr: true},
		{name: "infinite temperature", mutate: func(in *SimulationInput) { in.Temperature = math.Inf(-1) }, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			in := valid
			tc.mutate(&in)
			err := in.Validate()
			if tc.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidInput), "expected ErrInvalidInput, got %v", err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSimulationInputWith(t *testing.T) {
	t.Parallel()

	var in SimulationInput
	for i, param := range Parameters() {
		in = in.With(param, float64(i+1))
	}

	assert.Equal(t, SimulationInput{Water: 1, Nitrogen: 2, Phosphorus: 3, Potassium: 4, PH: 5, Temperature: 6}, in)
	assert.Equal(t, in, in.With(Parameter("sunlight"), 99))

	for _, param := range Parameters() {
		v, ok := in.With(param, 42).Value(param)
		assert.True(t, ok)
		assert.Equal(t, 42.0, v, string(param))
	}
}

func TestCompetenceGainAdd(t *testing.T) {
	t.Parallel()

	totals := CompetenceGain{Water: 95, NPK: 10, Soil: 0, Rotation: 100, NASA: 50}
	gain := CompetenceGain{Water: 16, NPK: 20, Soil: 16, Rotation: 10, NASA: 15}

	got := totals.Add(gain)

	assert.Equal(t, CompetenceGain{Water: 100, NPK: 30, Soil: 16, Rotation: 100, NASA: 65}, got)
	assert.Equal(t, 95, totals.Water, "receiver must not be modified")
}

func TestCompetenceGainCap(t *testing.T) {
	t.Parallel()

	g := CompetenceGain{Water: 130, NPK: -4, Soil: 0, Rotation: 100, NASA: 42}

	assert.Equal(t, CompetenceGain{Water: 100, NPK: 0, Soil: 0, Rotation: 100, NASA: 42}, g.Cap())
	assert.Equal(t, 130, g.Water, "receiver must not be modified")
}

func TestDomainError(t *testing.T) {
	t.Parallel()

	err := NewDomainError("simulate", "level", ErrInvalidLevel)
	assert.Equal(t, "simulate: level: invalid difficulty level", err.Error())
	assert.ErrorIs(t, err, ErrInvalidLevel)

	noField := NewDomainError("simulate", "", ErrNilCrop)
	assert.Equal(t, "simulate: crop profile cannot be nil", noField.Error())
}
