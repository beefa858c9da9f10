package styles

import "github.com/charmbracelet/lipgloss"

var (
	Header = lipgloss.NewStyle().Bold(true)
	Footer = lipgloss.NewStyle().Foreground(lipgloss.Color("#777777"))
	Wall   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF"))
	Panel  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color("#444444")).Padding(0, 1)
	Stat      = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF"))
	SizeGreen = lipgloss.NewStyle().Foreground(lipgloss.Color("#66FF66"))
)

// Palette colors simulated objects; assignment is random, not semantic.
var Palette = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("#0000FF")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFF00")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("#FF00FF")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("#00FFFF")),
}

// fade steps, brightest to darkest, for the scrolling panel entries
var fadeSteps = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("#BBBBBB")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("#777777")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("#444444")),
}

// Fade maps an opacity in [0,1] to a panel text style. Terminal cells have
// no alpha channel, so opacity quantizes to brightness steps.
func Fade(alpha float64) lipgloss.Style {
	switch {
	case alpha >= 0.75:
		return fadeSteps[0]
	case alpha >= 0.5:
		return fadeSteps[1]
	case alpha >= 0.25:
		return fadeSteps[2]
	default:
		return fadeSteps[3]
	}
}
