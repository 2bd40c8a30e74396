package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MikeSquared-Agency/Arbiter/internal/ahp"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	summaryStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(72)

	// Top three rows of a ranking.
	podiumStyles = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50")).Bold(true),
		lipgloss.NewStyle().Foreground(lipgloss.Color("#26A69A")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("#80CBC4")),
	}
)

func cell(s string, width int) string {
	return lipgloss.NewStyle().Width(width).Render(s)
}

func nameWidth(names []string, min int) int {
	w := min
	for _, n := range names {
		if l := lipgloss.Width(n); l > w {
			w = l
		}
	}
	return w + 2
}

func renderWeights(w io.Writer, criteria []string, weights []float64, c ahp.Consistency, threshold float64) {
	width := nameWidth(criteria, len("Criterion"))

	fmt.Fprintln(w, titleStyle.Render("Criteria weights"))
	fmt.Fprintln(w, headerStyle.Render(cell("Criterion", width)+cell("Weight", 10)))
	for i, name := range criteria {
		if i >= len(weights) {
			break
		}
		fmt.Fprintln(w, cell(name, width)+cell(fmt.Sprintf("%.4f", weights[i]), 10))
	}
	fmt.Fprintln(w)

	status := okStyle.Render("consistent")
	if !c.Finite() || c.Ratio > threshold {
		status = failStyle.Render("inconsistent")
	}
	fmt.Fprintf(w, "λmax %.4f  CI %.4f  CR %.4f (threshold %.2f)  %s\n",
		c.LambdaMax, c.Index, c.Ratio, threshold, status)
	if !c.Normalized {
		fmt.Fprintln(w, dimStyle.Render("no random index for this size; CR reported as CI"))
	}
}

func renderEvaluation(w io.Writer, eval *ahp.Evaluation, ranked []ahp.RankedAlternative, threshold float64, warnings []string) {
	for _, msg := range warnings {
		fmt.Fprintln(w, warnStyle.Render("warning: "+msg))
	}

	renderWeights(w, eval.Criteria, eval.Weights, eval.Consistency, threshold)
	fmt.Fprintln(w)

	names := make([]string, len(ranked))
	for i, r := range ranked {
		names[i] = r.Name
	}
	width := nameWidth(names, len("Alternative"))

	fmt.Fprintln(w, titleStyle.Render("Ranking"))
	fmt.Fprintln(w, headerStyle.Render(cell("Rank", 6)+cell("Alternative", width)+cell("Score", 10)))
	for i, r := range ranked {
		line := cell(fmt.Sprintf("%d", r.Rank), 6) + cell(r.Name, width) + cell(fmt.Sprintf("%.4f", r.Total), 10)
		if i < len(podiumStyles) {
			line = podiumStyles[i].Render(line)
		}
		fmt.Fprintln(w, line)
	}

	if rec, ok := ahp.Recommend(ranked); ok {
		fmt.Fprintln(w)
		fmt.Fprintln(w, summaryStyle.Render(strings.TrimSpace(rec.Summary)))
	}
}

func renderRandomIndex(w io.Writer, ri ahp.RandomIndexTable) {
	fmt.Fprintln(w, headerStyle.Render(cell("n", 6)+cell("RI", 8)))
	for i, v := range ri {
		fmt.Fprintln(w, cell(fmt.Sprintf("%d", i+1), 6)+cell(fmt.Sprintf("%.2f", v), 8))
	}
}
