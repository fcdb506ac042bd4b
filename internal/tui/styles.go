package tui

import "github.com/charmbracelet/lipgloss"

// Colors using AdaptiveColor for light/dark terminal support.
var (
	colorWhite = lipgloss.AdaptiveColor{Light: "0", Dark: "15"}
	colorDim   = lipgloss.AdaptiveColor{Light: "242", Dark: "240"}
	colorCyan  = lipgloss.AdaptiveColor{Light: "30", Dark: "45"}
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan).
			MarginBottom(1)

	itemStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(colorWhite)

	selectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				Bold(true).
				Foreground(colorCyan).
				Border(lipgloss.NormalBorder(), false, false, false, true).
				BorderForeground(colorCyan)

	pathStyle = lipgloss.NewStyle().Foreground(colorDim)

	emptyStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			Italic(true).
			Foreground(colorDim)
)

// Help bar styles.
var (
	helpKeyStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	helpDescStyle = lipgloss.NewStyle().Foreground(colorDim)
	helpSepStyle  = lipgloss.NewStyle().Foreground(colorDim)
)
