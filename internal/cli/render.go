package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"syllacard/internal/domain"
)

var (
	styleHeader    = lipgloss.NewStyle().Bold(true)
	styleCorrect   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true) // green
	styleIncorrect = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)  // red
	styleSubtle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleCard      = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)

	// Diff cell styles: matches plain green, wrong characters on a red
	// background, missing characters dim yellow.
	styleDiffMatch   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	styleDiffWrong   = lipgloss.NewStyle().Background(lipgloss.Color("9")).Foreground(lipgloss.Color("0"))
	styleDiffMissing = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// renderDiff turns an answer diff into one styled line. Matching positions
// show the expected character in green; mismatched and extra positions show
// what was typed on red; missing positions show the expected character in
// yellow.
func renderDiff(diff []domain.DiffSegment) string {
	var b strings.Builder
	for _, seg := range diff {
		ch := string(seg.Char)
		switch seg.Kind {
		case domain.DiffMatch:
			b.WriteString(styleDiffMatch.Render(ch))
		case domain.DiffMismatch, domain.DiffExtra:
			b.WriteString(styleDiffWrong.Render(ch))
		case domain.DiffMissing:
			b.WriteString(styleDiffMissing.Render(ch))
		}
	}
	return b.String()
}

// formatDuration renders an elapsed time as "1h 2m 3s", dropping leading
// zero units.
func formatDuration(d time.Duration) string {
	total := int(d.Seconds())
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	switch {
	case hours > 0:
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}

// percentage returns part/total as a whole percent, zero when total is zero.
func percentage(part, total int) int {
	if total == 0 {
		return 0
	}
	return part * 100 / total
}
