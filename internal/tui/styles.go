package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/loriab/libcerf/internal/ui"
)

// Style variables for the explorer.
// Initialized from the ui theme system via initTUIStyles().
var (
	headerStyle      lipgloss.Style
	titleStyle       lipgloss.Style
	statusStyle      lipgloss.Style
	statusKeyStyle   lipgloss.Style
	statusValueStyle lipgloss.Style
	specialStyle     lipgloss.Style
	rampStyles       []lipgloss.Style
)

func init() {
	initTUIStyles()
}

// heatRamp is the 256-color gradient for the magnitude heatmap, cold
// blue for small |f| through hot red for large.
var heatRamp = []string{
	"17", "18", "19", "20", "26", "32", "38", "44",
	"49", "48", "47", "46", "112", "148", "184", "220",
	"214", "208", "202", "196",
}

// initTUIStyles rebuilds all explorer styles from the current ui theme.
// Called at package init and again from Run() after InitTheme has been invoked.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	headerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent).
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	statusStyle = lipgloss.NewStyle().
		Foreground(t.Text).
		Padding(0, 1)

	statusKeyStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	statusValueStyle = lipgloss.NewStyle().
		Foreground(t.Info)

	specialStyle = lipgloss.NewStyle().
		Foreground(t.Error)

	rampStyles = make([]lipgloss.Style, len(heatRamp))
	for i, c := range heatRamp {
		rampStyles[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}
}
