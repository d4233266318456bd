package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"nanodash/engine"
	"nanodash/model"
)

// styledPad pads a styled string to the given visual width using spaces.
// Unlike fmt.Sprintf("%-Xs"), this accounts for ANSI escape codes.
func styledPad(styled string, width int) string {
	visW := lipgloss.Width(styled)
	if visW >= width {
		return styled
	}
	return styled + strings.Repeat(" ", width-visW)
}

// ─── BOX DRAWING HELPERS ─────────────────────────────────────────────────────

// boxTop renders the top border of a rounded box.
func boxTop(innerW int) string {
	return " " + dimStyle.Render("╭"+strings.Repeat("─", innerW+2)+"╮")
}

// boxBot renders the bottom border of a rounded box.
func boxBot(innerW int) string {
	return " " + dimStyle.Render("╰"+strings.Repeat("─", innerW+2)+"╯")
}

// boxMid renders a horizontal divider inside a box.
func boxMid(innerW int) string {
	return " " + dimStyle.Render("├"+strings.Repeat("─", innerW+2)+"┤")
}

// boxRow renders one content line inside a box, padded to innerW.
func boxRow(content string, innerW int) string {
	visW := lipgloss.Width(content)
	pad := innerW - visW
	if pad < 0 {
		pad = 0
	}
	return " " + dimStyle.Render("│") + " " + content + strings.Repeat(" ", pad) + " " + dimStyle.Render("│")
}

// boxSection renders a titled section inside a bordered box.
func boxSection(title string, lines []string, innerW int) string {
	var sb strings.Builder
	sb.WriteString(boxTop(innerW) + "\n")
	sb.WriteString(boxRow(headerStyle.Render(title), innerW) + "\n")
	sb.WriteString(boxMid(innerW) + "\n")
	for _, line := range lines {
		sb.WriteString(boxRow(line, innerW) + "\n")
	}
	sb.WriteString(boxBot(innerW) + "\n")
	return sb.String()
}

// pageInnerW computes box inner width from terminal width.
func pageInnerW(termWidth int) int {
	w := termWidth - 6
	if w < 60 {
		w = 60
	}
	return w
}

func padRight(s string, width int) string {
	if len(s) >= width {
		if width > 3 {
			return s[:width-3] + "..."
		}
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return strings.Repeat(" ", width-len(s)) + s
}

// truncate shortens s to maxLen characters with ellipsis if needed.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// statusBadge renders a colored status tag for a recommendation.
func statusBadge(status string) string {
	return statusStyle(status).Render(strings.ToUpper(status))
}

// sourceTag renders a colored provenance tag for an experiment row.
func sourceTag(source string) string {
	return sourceStyle(source).Render(source)
}

// renderStatsLines renders the statistics panel body shared by both pages.
func renderStatsLines(stats engine.Stats) []string {
	return []string{
		fmt.Sprintf("  %s %s    %s %s    %s %s",
			dimStyle.Render("Experiments:"),
			valueStyle.Render(fmt.Sprintf("%d", stats.TotalExperiments)),
			dimStyle.Render("Pending recs:"),
			warnStyle.Render(fmt.Sprintf("%d", stats.Pending)),
			dimStyle.Render("Completed recs:"),
			okStyle.Render(fmt.Sprintf("%d", stats.Completed))),
		fmt.Sprintf("  %s %s %s",
			dimStyle.Render("Sources (imported/recommendation/manual):"),
			valueStyle.Render(stats.SourceBreakdown()),
			dimStyle.Render("")),
	}
}

// renderBadgeLine renders the per-status badge counts.
func renderBadgeLine(stats engine.Stats) string {
	return fmt.Sprintf("  %s %s   %s %s   %s %s",
		warnStyle.Render("PENDING"), valueStyle.Render(fmt.Sprintf("%d", stats.Pending)),
		okStyle.Render("COMPLETED"), valueStyle.Render(fmt.Sprintf("%d", stats.Completed)),
		dimStyle.Render("SKIPPED"), valueStyle.Render(fmt.Sprintf("%d", stats.Skipped)))
}

// renderErrorPanel replaces both data panels when a load has failed.
func renderErrorPanel(err error, innerW int) string {
	head := "  Failed to load campaign data"
	var le *model.LoadError
	if errors.As(err, &le) {
		head = fmt.Sprintf("  Failed to load %s (%s)", le.Source, le.Stage)
	}
	lines := []string{
		critStyle.Render(head),
		"",
		valueStyle.Render("  " + err.Error()),
		"",
		dimStyle.Render("  Both panels are withheld rather than showing partial data."),
		dimStyle.Render("  Press u to retry."),
	}
	return boxSection("LOAD ERROR", lines, innerW)
}

// renderEmptyState renders the placeholder for a filtered view with no
// records.
func renderEmptyState(es *engine.EmptyState, innerW int) string {
	return boxRow(dimStyle.Render("  "+es.Message()), innerW) + "\n"
}
