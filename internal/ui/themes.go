package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme maps the output categories used by the presenters onto ANSI
// escape sequences. A category is semantic (Success, Warning, ...)
// rather than a raw color so the palette can change without touching
// call sites; empty strings disable styling entirely.
type Theme struct {
	// Name identifies the theme in SetTheme lookups.
	Name string

	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string
	Info      string

	Bold      string
	Underline string
	Reset     string
}

var (
	// DarkTheme is the default palette, tuned for dark backgrounds:
	// cool azure/teal accents with a dim grey for metadata lines.
	DarkTheme = Theme{
		Name:      "dark",
		Primary:   "\033[38;5;75m",  // azure
		Secondary: "\033[38;5;244m", // dim grey
		Success:   "\033[38;5;114m", // soft green
		Warning:   "\033[38;5;179m", // amber
		Error:     "\033[38;5;203m", // coral red
		Info:      "\033[38;5;80m",  // teal
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
	}

	// LightTheme darkens every category for readability on light
	// backgrounds.
	LightTheme = Theme{
		Name:      "light",
		Primary:   "\033[38;5;25m",
		Secondary: "\033[38;5;242m",
		Success:   "\033[38;5;22m",
		Warning:   "\033[38;5;94m",
		Error:     "\033[38;5;88m",
		Info:      "\033[38;5;30m",
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
	}

	// NoColorTheme leaves every sequence empty, turning all styling
	// into no-ops. Selected by InitTheme when colors are disabled.
	NoColorTheme = Theme{Name: "none"}
)

// themes is the SetTheme lookup table.
var themes = map[string]Theme{
	"dark":  DarkTheme,
	"light": LightTheme,
	"none":  NoColorTheme,
}

var (
	themeMutex   sync.RWMutex
	currentTheme = DarkTheme
)

// GetCurrentTheme returns the active theme.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme replaces the active theme. Tests use this to force a
// known theme and restore the previous one afterward.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// SetTheme activates the named theme ("dark", "light" or "none").
// Unknown names select the dark default.
func SetTheme(name string) {
	t, ok := themes[name]
	if !ok {
		t = DarkTheme
	}
	SetCurrentTheme(t)
}

// InitTheme picks the startup theme. Colors are disabled when the
// caller asks for it or when NO_COLOR is present in the environment
// with any value (https://no-color.org/); otherwise the dark default
// applies.
//
// Parameters:
//   - noColor: Disables all color output regardless of environment.
func InitTheme(noColor bool) {
	if _, envSet := os.LookupEnv("NO_COLOR"); noColor || envSet {
		SetCurrentTheme(NoColorTheme)
		return
	}
	SetCurrentTheme(DarkTheme)
}

// TUITheme carries the lipgloss colors the explorer chrome needs:
// accent for the header and key hints, text for the status line, info
// for computed values, error for non-finite heatmap cells.
type TUITheme struct {
	Accent lipgloss.TerminalColor
	Text   lipgloss.TerminalColor
	Info   lipgloss.TerminalColor
	Error  lipgloss.TerminalColor
}

var (
	// DarkTUITheme mirrors DarkTheme's azure/teal accents in truecolor.
	DarkTUITheme = TUITheme{
		Accent: lipgloss.Color("#5FAFFF"),
		Text:   lipgloss.Color("#D8D8D8"),
		Info:   lipgloss.Color("#5FD7D7"),
		Error:  lipgloss.Color("#FF5F5F"),
	}

	// NoColorTUITheme renders everything in the terminal's defaults.
	NoColorTUITheme = TUITheme{
		Accent: lipgloss.NoColor{},
		Text:   lipgloss.NoColor{},
		Info:   lipgloss.NoColor{},
		Error:  lipgloss.NoColor{},
	}
)

// GetCurrentTUITheme resolves the explorer palette from the active
// theme: colors off means the no-color TUI palette, anything else the
// dark one.
func GetCurrentTUITheme() TUITheme {
	if GetCurrentTheme().Name == "none" {
		return NoColorTUITheme
	}
	return DarkTUITheme
}
