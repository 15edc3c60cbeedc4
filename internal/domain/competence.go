package domain

// Skill names one of the five persistent competence tracks.
type Skill string

// Competence tracks, in canonical order
const (
	SkillWater    Skill = "water"
	SkillNPK      Skill = "npk"
	SkillSoil     Skill = "soil"
	SkillRotation Skill = "rotation"
	SkillNASA     Skill = "nasa"
)

// MaxCompetence is the ceiling of an accumulated competence total.
const MaxCompetence = 100

// Skills lists every competence track in canonical order.
func Skills() []Skill {
	return []Skill{SkillWater, SkillNPK, SkillSoil, SkillRotation, SkillNASA}
}

// CompetenceGain holds per-skill deltas from one game, or accumulated
// per-skill totals when used by the progress package.
type CompetenceGain struct {
	Water    int `json:"water"`
	NPK      int `json:"npk"`
	Soil     int `json:"soil"`
	Rotation int `json:"rotation"`
	NASA     int `json:"nasa"`
}

// Get returns the value for the given skill.
func (g CompetenceGain) Get(skill Skill) int {
	switch skill {
	case SkillWater:
		return g.Water
	case SkillNPK:
		return g.NPK
	case SkillSoil:
		return g.Soil
	case SkillRotation:
		return g.Rotation
	case SkillNASA:
		return g.NASA
	default:
		return 0
	}
}

// With returns a copy of g with the given skill set to v.
func (g CompetenceGain) With(skill Skill, v int) CompetenceGain {
	switch skill {
	case SkillWater:
		g.Water = v
	case SkillNPK:
		g.NPK = v
	case SkillSoil:
		g.Soil = v
	case SkillRotation:
		g.Rotation = v
	case SkillNASA:
		g.NASA = v
	}
	return g
}

// Add returns the per-skill sum of g and other, capped with Cap.
func (g CompetenceGain) Add(other CompetenceGain) CompetenceGain {
	out := g
	for _, skill := range Skills() {
		out = out.With(skill, g.Get(skill)+other.Get(skill))
	}
	return out.Cap()
}

// Cap clamps every skill to [0, MaxCompetence].
func (g CompetenceGain) Cap() CompetenceGain {
	for _, skill := range Skills() {
		g = g.With(skill, min(max(g.Get(skill), 0), MaxCompetence))
	}
	return g
}
