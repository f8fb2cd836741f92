// Package tui implements the interactive complex-plane explorer: a
// heatmap of log|f| over a window of the plane, panned and zoomed from
// the keyboard, for each function of the evaluation registry.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/loriab/libcerf/internal/config"
	apperrors "github.com/loriab/libcerf/internal/errors"
	"github.com/loriab/libcerf/internal/format"
	"github.com/loriab/libcerf/internal/sweep"
)

const (
	// panCells is how many cells one arrow press moves the viewport.
	panCells = 4
	// zoomFactor is the per-keypress zoom ratio.
	zoomFactor = 2
	// defaultScale is the initial real-axis units per cell.
	defaultScale = 0.1
	// chromeHeight is the number of lines used by header and status bar.
	chromeHeight = 2
)

// Model is the root bubbletea model for the explorer.
type Model struct {
	names []string
	fnIdx int
	f     sweep.Func

	centerRe float64
	centerIm float64
	scale    float64

	width  int
	height int

	keymap   KeyMap
	help     help.Model
	showHelp bool
}

// NewModel creates an explorer model starting on the configured
// function, centered just above the real axis.
//
// Parameters:
//   - cfg: The application configuration (initial function).
//
// Returns:
//   - Model: The initialized model.
func NewModel(cfg config.AppConfig) Model {
	names := sweep.Names()
	idx := 0
	for i, n := range names {
		if n == cfg.Function {
			idx = i
			break
		}
	}
	f, _ := sweep.Resolve(names[idx])

	return Model{
		names:    names,
		fnIdx:    idx,
		f:        f,
		centerRe: 0,
		centerIm: 1,
		scale:    defaultScale,
		keymap:   DefaultKeyMap(),
		help:     help.New(),
	}
}

// Init returns the initial command; the explorer is purely event driven.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Up):
		m.centerIm += float64(panCells) * 2 * m.scale
	case key.Matches(msg, m.keymap.Down):
		m.centerIm -= float64(panCells) * 2 * m.scale
	case key.Matches(msg, m.keymap.Left):
		m.centerRe -= float64(panCells) * m.scale
	case key.Matches(msg, m.keymap.Right):
		m.centerRe += float64(panCells) * m.scale

	case key.Matches(msg, m.keymap.ZoomIn):
		m.scale /= zoomFactor
	case key.Matches(msg, m.keymap.ZoomOut):
		m.scale *= zoomFactor

	case key.Matches(msg, m.keymap.NextFunc):
		m.selectFunction(m.fnIdx + 1)
	case key.Matches(msg, m.keymap.PrevFunc):
		m.selectFunction(m.fnIdx - 1)

	case key.Matches(msg, m.keymap.Center):
		m.centerRe, m.centerIm = 0, 1
		m.scale = defaultScale

	case key.Matches(msg, m.keymap.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
	}

	return m, nil
}

// selectFunction switches to the function at the wrapped index.
func (m *Model) selectFunction(idx int) {
	n := len(m.names)
	m.fnIdx = ((idx % n) + n) % n
	m.f, _ = sweep.Resolve(m.names[m.fnIdx])
}

// View renders the explorer: header, heatmap, status bar.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	body := m.height - chromeHeight
	if m.showHelp {
		body -= lipgloss.Height(m.help.View(m.keymap)) - 1
	}
	if body < 1 {
		body = 1
	}

	header := headerStyle.Render(
		titleStyle.Render(m.names[m.fnIdx]+"(z)") +
			"   center " + format.Complex(complex(m.centerRe, m.centerIm)) +
			"   scale " + format.Float(m.scale) + "/cell")

	samples := sampleGrid(m.f, m.centerRe, m.centerIm, m.scale, m.width, body)
	heat := renderHeat(samples)

	cursor := m.f(complex(m.centerRe, m.centerIm))
	status := statusStyle.Render(
		statusKeyStyle.Render("f(center) = ") +
			statusValueStyle.Render(format.Complex(cursor)))
	if m.showHelp {
		status = lipgloss.JoinVertical(lipgloss.Left, status, m.help.View(m.keymap))
	} else {
		status = lipgloss.JoinHorizontal(lipgloss.Top, status, "  ", m.help.ShortHelpView(m.keymap.ShortHelp()))
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, heat, status)
}

// Run is the public entry point for the explorer mode.
// It creates the bubbletea program, runs it, and returns the exit code.
//
// Parameters:
//   - ctx: The context bounding the program lifetime.
//   - cfg: The application configuration.
//
// Returns:
//   - int: The process exit code.
func Run(ctx context.Context, cfg config.AppConfig) int {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	p := tea.NewProgram(NewModel(cfg), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return apperrors.ExitErrorCanceled
		}
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}
