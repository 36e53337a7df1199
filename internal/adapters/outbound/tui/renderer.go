package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/stylegate/stylegate/internal/domain"
)

var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(fg)
	dimStyle    = lipgloss.NewStyle().Foreground(dim)
	passStyle   = lipgloss.NewStyle().Foreground(success).Bold(true)
	failStyle   = lipgloss.NewStyle().Foreground(danger).Bold(true)

	severityStyles = map[string]lipgloss.Style{
		domain.SeverityError:   lipgloss.NewStyle().Foreground(danger).Bold(true),
		domain.SeverityWarning: lipgloss.NewStyle().Foreground(warning).Bold(true),
		domain.SeverityInfo:    lipgloss.NewStyle().Foreground(info),
	}

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 2)
)

// RenderGateResult renders one gate outcome for a terminal.
func RenderGateResult(bc domain.BuildContext, result *domain.GateResult, reportPath string) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("stylegate"))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %s  %s", bc, reportPath)))
	b.WriteString("\n")

	for _, line := range result.SummaryLines {
		b.WriteString(renderSummaryLine(line))
		b.WriteString("\n")
	}

	var verdict string
	if result.Failed() {
		verdict = failStyle.Render(fmt.Sprintf("FAIL  %d issue(s)", result.IssuesFound))
	} else {
		verdict = passStyle.Render("PASS  no issues")
	}
	b.WriteString(boxStyle.Render(titleStyle.Render(string(bc)) + "  " + verdict))
	b.WriteString("\n")

	return b.String()
}

// renderSummaryLine colors the "[severity]" tag the gate prefixes each
// line with; unknown prefixes pass through unstyled.
func renderSummaryLine(line string) string {
	for severity, style := range severityStyles {
		tag := "[" + severity + "]"
		if strings.HasPrefix(line, tag) {
			return style.Render(tag) + dimStyle.Render(strings.TrimPrefix(line, tag))
		}
	}
	return line
}
