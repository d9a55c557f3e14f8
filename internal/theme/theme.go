package theme

import "github.com/charmbracelet/lipgloss"

// Adaptive color pairs (dark terminal value, light terminal value).
var (
	ColorGreen  = lipgloss.AdaptiveColor{Dark: "#6BCB77", Light: "#2F855A"}
	ColorYellow = lipgloss.AdaptiveColor{Dark: "#FFD93D", Light: "#B7791F"}
	ColorRed    = lipgloss.AdaptiveColor{Dark: "#FF6B6B", Light: "#C53030"}
	ColorBlue   = lipgloss.AdaptiveColor{Dark: "#5B9BD5", Light: "#2B6CB0"}
	ColorGray   = lipgloss.AdaptiveColor{Dark: "#868E96", Light: "#718096"}
	ColorBorder = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#E2E8F0"}
)

// CardStyle wraps the today panel.
var CardStyle = lipgloss.NewStyle().
	Padding(0, 2).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder)

// ErrorStyle renders budget violations and save failures.
var ErrorStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorRed)

// FaintStyle is used for secondary detail lines.
var FaintStyle = lipgloss.NewStyle().
	Foreground(ColorGray)

// TodayMarkStyle highlights the current date in the weekly list.
var TodayMarkStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorBlue)

// FreeStyle returns a color-coded style for a free-minutes figure.
// Under two hours reads as red, under four as yellow, the rest green.
func FreeStyle(free int) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)

	switch {
	case free < 120:
		return base.Foreground(ColorRed)
	case free < 240:
		return base.Foreground(ColorYellow)
	default:
		return base.Foreground(ColorGreen)
	}
}

// SourceStyle returns a color-coded style for the day's governing
// source label.
func SourceStyle(source string) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)

	switch source {
	case "override":
		return base.Foreground(ColorYellow)
	default:
		return base.Foreground(ColorGray)
	}
}
