package ui

import (
	"github.com/charmbracelet/lipgloss"

	"nanodash/model"
)

var (
	// Colors
	colorRed     = lipgloss.Color("#FF5555")
	colorYellow  = lipgloss.Color("#F1FA8C")
	colorGreen   = lipgloss.Color("#50FA7B")
	colorCyan    = lipgloss.Color("#8BE9FD")
	colorMagenta = lipgloss.Color("#FF79C6")
	colorOrange  = lipgloss.Color("#FFB86C")
	colorWhite   = lipgloss.Color("#F8F8F2")
	colorGray    = lipgloss.Color("#6272A4")

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	valueStyle  = lipgloss.NewStyle().Foreground(colorWhite)
	warnStyle   = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
	critStyle   = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	okStyle     = lipgloss.NewStyle().Foreground(colorGreen)
	headerStyle = lipgloss.NewStyle().Foreground(colorMagenta).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(colorGray)
	dimStyle    = lipgloss.NewStyle().Foreground(colorGray)
	orangeStyle = lipgloss.NewStyle().Foreground(colorOrange)
)

// statusStyle maps a recommendation status to its accent style.
func statusStyle(status string) lipgloss.Style {
	switch status {
	case model.StatusPending:
		return warnStyle
	case model.StatusCompleted:
		return okStyle
	case model.StatusSkipped:
		return dimStyle
	}
	return valueStyle
}

// sourceStyle maps an experiment source to its accent style.
func sourceStyle(source string) lipgloss.Style {
	switch source {
	case model.SourceImported:
		return dimStyle
	case model.SourceRecommendation:
		return okStyle
	case model.SourceManual:
		return orangeStyle
	}
	return valueStyle
}
