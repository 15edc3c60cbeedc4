package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/phrazzld/cropsim/internal/domain"
	"github.com/phrazzld/cropsim/internal/domain/agronomy"
	"github.com/phrazzld/cropsim/internal/domain/progress"
	"github.com/phrazzld/cropsim/internal/task"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	sectionStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	statusStyles = map[domain.Status]lipgloss.Style{
		domain.StatusExcellent: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		domain.StatusGood:      lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		domain.StatusFair:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		domain.StatusPoor:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		domain.StatusCritical:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}

	priorityStyles = map[domain.Priority]lipgloss.Style{
		domain.PriorityCritical: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		domain.PriorityHigh:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		domain.PriorityMedium:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		domain.PriorityLow:      lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		domain.PriorityInfo:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	}
)

// ConsoleRenderer writes human-readable reports
type ConsoleRenderer struct{}

// NewConsoleRenderer creates a ConsoleRenderer
func NewConsoleRenderer() *ConsoleRenderer {
	return &ConsoleRenderer{}
}

// Crops lists the crops grouped by category.
func (r *ConsoleRenderer) Crops(w io.Writer, crops []*domain.CropProfile) error {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Crops (%d)", len(crops))))
	b.WriteString("\n")

	var category domain.Category
	for _, c := range crops {
		if c.Category != category {
			category = c.Category
			fmt.Fprintf(&b, "\n%s\n", sectionStyle.Render(string(category)))
		}
		fmt.Fprintf(&b, "  %-12s %-7s %4d days  %s\n",
			c.Name, orDash(c.Difficulty), c.GrowthDays, mutedStyle.Render(c.Description))
	}

	return write(w, b.String())
}

// Simulation prints the score, yield, sub-scores, feedback and competence
// progress of one game.
func (r *ConsoleRenderer) Simulation(w io.Writer, s Simulation) error {
	var b strings.Builder
	res := s.Result

	fmt.Fprintf(&b, "%s  level %d\n", titleStyle.Render(s.Crop), res.Level)
	fmt.Fprintf(&b, "Score  %d/100  %s  %s\n", res.Score, successLabel(res.Success), stars(s.Stars))
	fmt.Fprintf(&b, "Yield  %g %s (%d%% of %g %s)\n",
		res.Yield.Value, res.Yield.Unit, res.Yield.Percentage, res.Yield.Optimal, res.Yield.Unit)

	fmt.Fprintf(&b, "\n%s\n", sectionStyle.Render("Details"))
	d := res.Details
	for _, row := range []struct {
		name   string
		detail domain.ParameterDetail
	}{
		{"water", d.Water},
		{"nitrogen", d.Nitrogen},
		{"phosphorus", d.Phosphorus},
		{"potassium", d.Potassium},
		{"ph", d.PH},
		{"temperature", d.Temperature},
		{"npk balance", d.NPKBalance},
	} {
		fmt.Fprintf(&b, "  %-12s %3d  %s\n", row.name, row.detail.Score, statusStyles[row.detail.Status].Render(string(row.detail.Status)))
	}

	if len(res.Feedback) > 0 {
		fmt.Fprintf(&b, "\n%s\n", sectionStyle.Render("Feedback"))
		for _, a := range res.Feedback {
			fmt.Fprintf(&b, "  %s %s: %s\n", priorityTag(a.Priority), a.Category, a.Message)
		}
	}

	fmt.Fprintf(&b, "\n%s\n", sectionStyle.Render("Competence gains"))
	parts := make([]string, 0, len(domain.Skills()))
	for _, skill := range domain.Skills() {
		parts = append(parts, fmt.Sprintf("%s +%d", skill, s.Gains.Get(skill)))
	}
	fmt.Fprintf(&b, "  %s\n", strings.Join(parts, "  "))

	if len(s.Achievements) > 0 {
		names := make([]string, 0, len(s.Achievements))
		for _, a := range s.Achievements {
			names = append(names, string(a))
		}
		fmt.Fprintf(&b, "\n%s %s\n", sectionStyle.Render("Achievements"), okStyle.Render(strings.Join(names, ", ")))
	}

	if len(s.Advice) > 0 {
		fmt.Fprintf(&b, "\n%s\n", sectionStyle.Render("Advice"))
		for _, rec := range s.Advice {
			fmt.Fprintf(&b, "  [%s] %s %s\n", rec.Level, rec.Message, mutedStyle.Render(rec.SuggestedAction))
		}
	}

	return write(w, b.String())
}

// Check prints each parameter's check and the recommendations.
func (r *ConsoleRenderer) Check(w io.Writer, c Check) error {
	var b strings.Builder
	rep := c.Report

	fmt.Fprintf(&b, "%s  overall %d/100\n\n", titleStyle.Render("Parameter check: "+c.Crop), rep.OverallScore)
	for _, pc := range rep.Checks {
		style := okStyle
		if pc.Status != agronomy.CheckOptimal {
			style = failStyle
		}
		fmt.Fprintf(&b, "  %-12s %3d  %-13s %s\n", pc.Parameter, pc.Score, style.Render(string(pc.Status)), mutedStyle.Render(pc.Message))
	}

	if len(rep.Recommendations) > 0 {
		fmt.Fprintf(&b, "\n%s\n", sectionStyle.Render("Recommendations"))
		for _, rec := range rep.Recommendations {
			fmt.Fprintf(&b, "  %s %s\n", priorityTag(rec.Priority), rec.Recommendation)
		}
	}

	return write(w, b.String())
}

// Batch prints one line per scenario followed by the summary.
func (r *ConsoleRenderer) Batch(w io.Writer, batch Batch) error {
	var b strings.Builder

	for _, o := range batch.Outcomes {
		switch o.Status {
		case task.TaskStatusCompleted:
			fmt.Fprintf(&b, "%s %-20s %-12s %3d  %s\n",
				okStyle.Render("✓"), o.Scenario.Name, o.Scenario.Crop, o.Result.Score, successLabel(o.Result.Success))
		default:
			fmt.Fprintf(&b, "%s %-20s %-12s %s\n",
				failStyle.Render("✗"), o.Scenario.Name, o.Scenario.Crop, mutedStyle.Render(o.Error))
		}
	}

	s := batch.Summary
	fmt.Fprintf(&b, "\n%s %d scenarios, %d completed, %d failed, %d not run, mean score %.1f\n",
		titleStyle.Render("Batch:"), s.Total, s.Completed, s.Failed, s.NotRun, s.MeanScore)

	return write(w, b.String())
}

func successLabel(ok bool) string {
	if ok {
		return okStyle.Render("success")
	}
	return failStyle.Render("failed")
}

func priorityTag(p domain.Priority) string {
	style, ok := priorityStyles[p]
	if !ok {
		style = mutedStyle
	}
	return style.Render("[" + string(p) + "]")
}

func stars(n int) string {
	return strings.Repeat("★", n) + strings.Repeat("☆", max(0, progress.MaxStars-n))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func write(w io.Writer, s string) error {
	if _, err := io.WriteString(w, s); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
