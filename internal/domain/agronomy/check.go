package agronomy

import (
	"fmt"
	"math"
	"sort"

	"github.com/phrazzld/cropsim/internal/domain"
)

// CheckStatus describes where a value sits relative to its range.
type CheckStatus string

// Possible check statuses
const (
	CheckOptimal      CheckStatus = "optimal"
	CheckTooLow       CheckStatus = "too_low"
	CheckTooHigh      CheckStatus = "too_high"
	CheckBelowOptimal CheckStatus = "below_optimal"
	CheckAboveOptimal CheckStatus = "above_optimal"
)

// checkTolerance is the fraction of the range width treated as on-target.
const checkTolerance = 0.1

// ParameterCheck is the quick assessment of one chosen value.
type ParameterCheck struct {
	Parameter domain.Parameter `json:"parameter"`
	Actual    float64          `json:"actual"`
	Optimal   float64          `json:"optimal"`
	Min       float64          `json:"min"`
	Max       float64          `json:"max"`
	Score     int              `json:"score"`
	Status    CheckStatus      `json:"status"`
	Message   string           `json:"message"`
}

// Recommendation suggests how to move one parameter toward its optimum.
type Recommendation struct {
	Parameter      domain.Parameter `json:"parameter"`
	Priority       domain.Priority  `json:"priority"`
	Recommendation string           `json:"recommendation"`
}

// CheckReport is the result of checking all six parameters without running
// a simulation.
type CheckReport struct {
	Checks          []ParameterCheck `json:"checks"`
	OverallScore    int              `json:"overallScore"`
	Recommendations []Recommendation `json:"recommendations"`
}

// checkParameters assesses each value on a simple 0-100 scale with a 10%
// tolerance band around the optimum, and recommends adjustments for every
// value scoring below 90.
func checkParameters(optimal domain.CropParameters, input domain.SimulationInput) *CheckReport {
	report := &CheckReport{
		Checks:          make([]ParameterCheck, 0, len(domain.Parameters())),
		Recommendations: []Recommendation{},
	}

	total := 0
	for _, param := range domain.Parameters() {
		r, _ := optimal.Range(param)
		actual, _ := input.Value(param)
		check := checkParameter(param, r, actual)
		report.Checks = append(report.Checks, check)
		total += check.Score

		if rec, ok := recommendationFor(check); ok {
			report.Recommendations = append(report.Recommendations, rec)
		}
	}

	report.OverallScore = int(math.Round(float64(total) / float64(len(report.Checks))))

	sort.SliceStable(report.Recommendations, func(i, j int) bool {
		return report.Recommendations[i].Priority.Rank() > report.Recommendations[j].Priority.Rank()
	})

	return report
}

func checkParameter(param domain.Parameter, r domain.Range, actual float64) ParameterCheck {
	name := displayName(param)
	diff := math.Abs(actual - r.Optimal)
	width := r.Width()

	score := 100.0
	status := CheckOptimal
	message := name + " is optimal"

	switch {
	case actual < r.Min:
		score = math.Max(0, 100-(r.Min-actual)/r.Min*100)
		status = CheckTooLow
		message = name + " is too low"
	case actual > r.Max:
		score = math.Max(0, 100-(actual-r.Max)/r.Max*100)
		status = CheckTooHigh
		message = name + " is too high"
	case diff > width*checkTolerance:
		score = math.Max(70, 100-diff/width*100)
		if actual < r.Optimal {
			status = CheckBelowOptimal
			message = name + " is slightly low"
		} else {
			status = CheckAboveOptimal
			message = name + " is slightly high"
		}
	}

	if math.IsNaN(score) {
		score = 0
	}

	return ParameterCheck{
		Parameter: param,
		Actual:    actual,
		Optimal:   r.Optimal,
		Min:       r.Min,
		Max:       r.Max,
		Score:     int(math.Round(score)),
		Status:    status,
		Message:   message,
	}
}

func recommendationFor(check ParameterCheck) (Recommendation, bool) {
	if check.Score >= 90 {
		return Recommendation{}, false
	}

	priority := domain.PriorityLow
	switch {
	case check.Score < 50:
		priority = domain.PriorityHigh
	case check.Score < 70:
		priority = domain.PriorityMedium
	}

	var text string
	switch check.Status {
	case CheckTooLow:
		text = fmt.Sprintf("Increase %s to at least %g", check.Parameter, check.Optimal)
	case CheckTooHigh:
		text = fmt.Sprintf("Decrease %s to around %g", check.Parameter, check.Optimal)
	default:
		text = fmt.Sprintf("Adjust %s closer to %g for better results", check.Parameter, check.Optimal)
	}

	return Recommendation{Parameter: check.Parameter, Priority: priority, Recommendation: text}, true
}

func displayName(param domain.Parameter) string {
	if param == domain.ParameterPH {
		return "pH"
	}
	return capitalize(string(param))
}
