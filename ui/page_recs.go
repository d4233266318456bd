package ui

import (
	"fmt"
	"strings"

	"nanodash/engine"
	"nanodash/model"
)

// renderRecsPage renders the statistics panel, the status badge row and
// the recommendation card list.
func renderRecsPage(view engine.RecView, stats engine.Stats, sel model.Selection, iw int) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("OPTIMIZER RECOMMENDATIONS"))
	sb.WriteString("  ")
	sb.WriteString(renderFilterTabs(statusFilters, sel.StatusFilter))
	sb.WriteString("\n")

	sb.WriteString(boxSection("CAMPAIGN", renderStatsLines(stats), iw))
	sb.WriteString(boxSection("STATUS", []string{renderBadgeLine(stats)}, iw))

	if view.Empty != nil {
		sb.WriteString(boxTop(iw) + "\n")
		sb.WriteString(renderEmptyState(view.Empty, iw))
		sb.WriteString(boxBot(iw) + "\n")
		return sb.String()
	}

	for _, card := range view.Cards {
		sb.WriteString(renderRecCard(card, iw))
	}
	return sb.String()
}

// renderFilterTabs renders the filter cycle with the active entry highlighted.
func renderFilterTabs(values []string, active string) string {
	var tabs []string
	for _, v := range values {
		if v == active {
			tabs = append(tabs, headerStyle.Render("["+v+"]"))
		} else {
			tabs = append(tabs, dimStyle.Render(" "+v+" "))
		}
	}
	return strings.Join(tabs, "")
}

// renderRecCard renders one recommendation as a bordered card.
func renderRecCard(c engine.RecCard, iw int) string {
	var sb strings.Builder
	sb.WriteString(boxTop(iw) + "\n")

	header := fmt.Sprintf("%s %s  %s  %s",
		valueStyle.Render(c.RecID),
		statusBadge(c.Status),
		dimStyle.Render(c.Timestamp),
		dimStyle.Render("("+c.Age+")"))
	sb.WriteString(boxRow(header, iw) + "\n")
	sb.WriteString(boxMid(iw) + "\n")

	conds := fmt.Sprintf("%s %s°C  %s %s min  %s %s  %s %s  %s %s",
		dimStyle.Render("Temp"), valueStyle.Render(c.Temp),
		dimStyle.Render("Time"), valueStyle.Render(c.Time),
		dimStyle.Render("VOacac"), valueStyle.Render(c.VOacac),
		dimStyle.Render("DDT"), valueStyle.Render(c.DDT),
		dimStyle.Render("OAm"), valueStyle.Render(c.OAm))
	sb.WriteString(boxRow(conds, iw) + "\n")

	preds := fmt.Sprintf("%s %s nm  %s %s  %s %s  %s %s",
		dimStyle.Render("size"), valueStyle.Render(c.PredSize),
		dimStyle.Render("gsd"), valueStyle.Render(c.PredGSD),
		dimStyle.Render("sq"), valueStyle.Render(c.PredSq),
		dimStyle.Render("feasible"), okStyle.Render(c.PFeasible))
	sb.WriteString(boxRow(preds, iw) + "\n")

	target := fmt.Sprintf("%s %s nm ± %s",
		dimStyle.Render("target"),
		valueStyle.Render(c.TargetSize),
		valueStyle.Render(c.TargetBand))
	sb.WriteString(boxRow(target, iw) + "\n")

	if c.Status == model.StatusCompleted && c.Completed != "" {
		sb.WriteString(boxRow(dimStyle.Render("completed "+c.Completed), iw) + "\n")
	}
	if c.Status == model.StatusSkipped && c.SkipReason != "" {
		sb.WriteString(boxRow(dimStyle.Render("skipped: ")+orangeStyle.Render(truncate(c.SkipReason, iw-12)), iw) + "\n")
	}

	sb.WriteString(boxBot(iw) + "\n")
	return sb.String()
}
