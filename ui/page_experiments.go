package ui

import (
	"fmt"
	"strings"

	"nanodash/engine"
	"nanodash/model"
)

// Experiment table column widths.
const (
	colExpID  = 10
	colSource = 16
	colNum    = 8
)

// renderExperimentsPage renders the statistics panel and the experiment
// table for the current source filter.
func renderExperimentsPage(view engine.ExpView, stats engine.Stats, sel model.Selection, iw int) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("EXPERIMENTS"))
	sb.WriteString("  ")
	sb.WriteString(renderFilterTabs(sourceFilters, sel.SourceFilter))
	sb.WriteString("\n")

	sb.WriteString(boxSection("CAMPAIGN", renderStatsLines(stats), iw))

	var lines []string
	lines = append(lines, fmt.Sprintf("  %s %s %s %s %s %s %s %s %s %s",
		styledPad(dimStyle.Render("ID"), colExpID),
		styledPad(dimStyle.Render("SOURCE"), colSource),
		dimStyle.Render(padLeft("TEMP", colNum)),
		dimStyle.Render(padLeft("TIME", colNum)),
		dimStyle.Render(padLeft("VOACAC", colNum)),
		dimStyle.Render(padLeft("DDT", colNum)),
		dimStyle.Render(padLeft("OAM", colNum)),
		dimStyle.Render(padLeft("SIZE", colNum)),
		dimStyle.Render(padLeft("GSD", colNum)),
		dimStyle.Render(padLeft("SQ", colNum))))
	lines = append(lines, dimStyle.Render("  "+strings.Repeat("─", iw-4)))

	if view.Empty != nil {
		sb.WriteString(boxSection("RESULTS", append(lines, "  "+dimStyle.Render(view.Empty.Message())), iw))
		return sb.String()
	}

	for _, row := range view.Rows {
		lines = append(lines, fmt.Sprintf("  %s %s %s %s %s %s %s %s %s %s",
			styledPad(valueStyle.Render(row.ExpID), colExpID),
			styledPad(sourceTag(row.Source), colSource),
			valueStyle.Render(padLeft(row.Temp, colNum)),
			valueStyle.Render(padLeft(row.Time, colNum)),
			valueStyle.Render(padLeft(row.VOacac, colNum)),
			valueStyle.Render(padLeft(row.DDT, colNum)),
			valueStyle.Render(padLeft(row.OAm, colNum)),
			valueStyle.Render(padLeft(row.Size, colNum)),
			valueStyle.Render(padLeft(row.GSD, colNum)),
			valueStyle.Render(padLeft(row.Squareness, colNum))))
	}

	sb.WriteString(boxSection("RESULTS", lines, iw))
	return sb.String()
}
