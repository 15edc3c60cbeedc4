package competence

import (
	"fmt"

	"github.com/phrazzld/cropsim/internal/domain"
)

// Level labels an accumulated competence total.
type Level string

// Competence levels, lowest first
const (
	LevelNovice       Level = "novice"
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
	LevelExpert       Level = "expert"
)

// LevelFor returns the label for a competence total in [0, 100].
func LevelFor(score int) Level {
	switch {
	case score >= 90:
		return LevelExpert
	case score >= 70:
		return LevelAdvanced
	case score >= 50:
		return LevelIntermediate
	case score >= 30:
		return LevelBeginner
	default:
		return LevelNovice
	}
}

// Urgency ranks a competence recommendation.
type Urgency string

// Recommendation urgencies
const (
	UrgencyUrgent    Urgency = "urgent"
	UrgencyImportant Urgency = "important"
	UrgencyModerate  Urgency = "moderate"
	UrgencyInfo      Urgency = "info"
)

// OverallSkill is the pseudo-skill of the summary recommendation.
const OverallSkill domain.Skill = "overall"

// Recommendation is study advice for one skill.
type Recommendation struct {
	Skill           domain.Skill `json:"skill"`
	Level           Urgency      `json:"level"`
	Message         string       `json:"message"`
	SuggestedAction string       `json:"suggestedAction"`
}

// Recommendations advises on every skill below 70 in canonical order, then
// appends one summary naming the strongest and weakest skills. Ties go to
// the skill that comes first.
func Recommendations(totals domain.CompetenceGain) []Recommendation {
	recs := make([]Recommendation, 0, len(domain.Skills())+1)

	strongest, weakest := domain.SkillWater, domain.SkillWater
	for _, skill := range domain.Skills() {
		score := totals.Get(skill)

		if score > totals.Get(strongest) {
			strongest = skill
		}
		if score < totals.Get(weakest) {
			weakest = skill
		}

		switch {
		case score < 30:
			recs = append(recs, Recommendation{
				Skill:           skill,
				Level:           UrgencyUrgent,
				Message:         fmt.Sprintf("Focus on improving %s competence - currently at novice level.", skill),
				SuggestedAction: "Review basic concepts and practice more games.",
			})
		case score < 50:
			recs = append(recs, Recommendation{
				Skill:           skill,
				Level:           UrgencyImportant,
				Message:         fmt.Sprintf("Continue developing %s competence to reach intermediate level.", skill),
				SuggestedAction: "Try higher difficulty levels and study knowledge cards.",
			})
		case score < 70:
			recs = append(recs, Recommendation{
				Skill:           skill,
				Level:           UrgencyModerate,
				Message:         fmt.Sprintf("Good progress in %s! Keep practicing to reach advanced level.", skill),
				SuggestedAction: "Challenge yourself with expert-level content.",
			})
		}
	}

	summary := fmt.Sprintf("Your strongest skill is %s (%d/100). Focus on improving %s (%d/100).",
		strongest, totals.Get(strongest), weakest, totals.Get(weakest))
	recs = append(recs, Recommendation{
		Skill:           OverallSkill,
		Level:           UrgencyInfo,
		Message:         summary,
		SuggestedAction: "Balanced competence development leads to better overall performance.",
	})

	return recs
}
