package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/piwi3910/AngleCut/internal/model"
)

var (
	colorCyan   = lipgloss.Color("36")  // Teal - headings
	colorGreen  = lipgloss.Color("35")  // Green - standard pieces
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - borders
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleDim     = lipgloss.NewStyle().Foreground(colorGray)
	styleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// renderResult formats an optimization result for the terminal: a headline,
// the piece table and the material breakdown.
func renderResult(label string, result model.RunResult) string {
	var b strings.Builder
	seg := result.Optimal

	title := fmt.Sprintf("%s — %s mm in %d piece(s), %d brackets",
		label, formatMM(seg.TotalLength), seg.PieceCount, seg.TotalBrackets)
	b.WriteString(styleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(styleDim.Render(fmt.Sprintf("average spacing %.1f mm, %d unique length(s), score %.0f",
		seg.AverageSpacing, seg.UniqueLengths, seg.Score)))
	b.WriteString("\n\n")

	b.WriteString(renderPieceTable(seg))
	b.WriteString("\n\n")
	b.WriteString(renderBreakdown(result.Summary))

	for _, warning := range seg.Warnings {
		b.WriteString("\n")
		b.WriteString(styleWarning.Render("! " + warning))
	}
	b.WriteString("\n")
	return b.String()
}

func renderPieceTable(seg model.RunSegmentation) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := make([][]string, 0, len(seg.Pieces))
	for i, p := range seg.Pieces {
		kind := "custom"
		if p.IsStandard {
			kind = "standard"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			formatMM(p.Length),
			kind,
			fmt.Sprintf("%d", p.BracketCount),
			formatMM(p.Spacing),
			formatMM(p.StartOffset),
			formatMM(p.EndOffset()),
			formatPositions(p.Positions),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Length", "Type", "Brk", "Spacing", "First", "Last", "Positions").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row < len(seg.Pieces) && seg.Pieces[row].IsStandard && col == 2 {
				return lipgloss.NewStyle().Foreground(colorGreen)
			}
			return lipgloss.NewStyle()
		})

	return t.Render()
}

func renderBreakdown(summary model.MaterialSummary) string {
	var b strings.Builder
	b.WriteString(styleDim.Render(fmt.Sprintf("material: %s mm of angle across %d piece(s)",
		formatMM(summary.TotalAngleLength), summary.TotalPieces)))
	for _, group := range summary.Breakdown {
		kind := "custom"
		if group.IsStandard {
			kind = "standard"
		}
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("  %d x %s mm (%s)", group.Count, formatMM(group.Length), kind))
	}
	return b.String()
}

// renderComparison formats scenario comparison rows as a table.
func renderComparison(rows [][]string) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Scenario", "Pieces", "Brackets", "Unique", "Score").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			return lipgloss.NewStyle()
		})

	return t.Render()
}

// formatMM renders a millimeter value without trailing zero decimals.
func formatMM(v float64) string {
	if math.Abs(v-math.Round(v)) < 0.005 {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}

func formatPositions(positions []float64) string {
	parts := make([]string, len(positions))
	for i, p := range positions {
		parts[i] = formatMM(p)
	}
	return strings.Join(parts, " ")
}
