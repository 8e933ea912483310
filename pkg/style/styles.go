package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Adaptive colors shared by all output.
var (
	HeadingColor = lipgloss.AdaptiveColor{Light: "#1a1a2e", Dark: "#e0e0ff"}
	TextColor    = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#cccccc"}
	MutedColor   = lipgloss.AdaptiveColor{Light: "#999999", Dark: "#666666"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#22863a", Dark: "#85e89d"}
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#cb2431", Dark: "#f97583"}
	WarningColor = lipgloss.AdaptiveColor{Light: "#b08800", Dark: "#ffea7f"}
	PathColor    = lipgloss.AdaptiveColor{Light: "#6f42c1", Dark: "#b392f0"}
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	PathStyle = lipgloss.NewStyle().
			Foreground(PathColor).
			Italic(true)

	ListItemStyle = lipgloss.NewStyle().
			PaddingLeft(2)
)

// RiskStyle returns the style for a rule's risk tag. Unknown risk values
// render muted rather than failing; the vocabulary is open.
func RiskStyle(risk string) lipgloss.Style {
	switch risk {
	case "low":
		return SuccessStyle
	case "medium":
		return WarningStyle
	case "high", "critical":
		return ErrorStyle
	default:
		return MutedStyle
	}
}
