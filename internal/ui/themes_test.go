package ui

import (
	"os"
	"testing"
)

// withTheme pins the active theme for one test and restores it after.
func withTheme(t *testing.T, theme Theme) {
	t.Helper()
	prev := GetCurrentTheme()
	SetCurrentTheme(theme)
	t.Cleanup(func() { SetCurrentTheme(prev) })
}

func TestSetTheme(t *testing.T) {
	withTheme(t, DarkTheme)

	tests := []struct {
		name string
		want string
	}{
		{"dark", "dark"},
		{"light", "light"},
		{"none", "none"},
		{"solarized", "dark"}, // unknown names fall back to the default
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetTheme(tt.name)
			if got := GetCurrentTheme().Name; got != tt.want {
				t.Errorf("SetTheme(%q) activated %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestInitTheme(t *testing.T) {
	withTheme(t, DarkTheme)

	t.Run("flag disables colors", func(t *testing.T) {
		InitTheme(true)
		if GetCurrentTheme().Name != "none" {
			t.Error("InitTheme(true) should disable colors")
		}
	})

	t.Run("NO_COLOR disables colors", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		InitTheme(false)
		if GetCurrentTheme().Name != "none" {
			t.Error("InitTheme should honor NO_COLOR")
		}
	})

	t.Run("default is dark", func(t *testing.T) {
		// An empty NO_COLOR still counts as set under the
		// no-color.org rules, so the variable must be removed.
		if v, ok := os.LookupEnv("NO_COLOR"); ok {
			os.Unsetenv("NO_COLOR")
			t.Cleanup(func() { os.Setenv("NO_COLOR", v) })
		}
		InitTheme(false)
		if GetCurrentTheme().Name != "dark" {
			t.Error("InitTheme without NO_COLOR should pick the dark theme")
		}
	})
}

func TestNoColorThemeIsInert(t *testing.T) {
	seqs := []string{
		NoColorTheme.Primary, NoColorTheme.Secondary, NoColorTheme.Success,
		NoColorTheme.Warning, NoColorTheme.Error, NoColorTheme.Info,
		NoColorTheme.Bold, NoColorTheme.Underline, NoColorTheme.Reset,
	}
	for i, s := range seqs {
		if s != "" {
			t.Errorf("NoColorTheme sequence %d = %q, want empty", i, s)
		}
	}
}

func TestColorAccessorsFollowTheme(t *testing.T) {
	withTheme(t, DarkTheme)
	if ColorGreen() != DarkTheme.Success {
		t.Error("ColorGreen should read the active theme's success color")
	}

	SetCurrentTheme(NoColorTheme)
	if ColorGreen() != "" || ColorReset() != "" {
		t.Error("accessors should go inert when colors are disabled")
	}
}

func TestGetCurrentTUITheme(t *testing.T) {
	withTheme(t, DarkTheme)
	if GetCurrentTUITheme() != DarkTUITheme {
		t.Error("dark theme should map to the dark TUI palette")
	}

	SetCurrentTheme(NoColorTheme)
	if GetCurrentTUITheme() != NoColorTUITheme {
		t.Error("no-color theme should map to the no-color TUI palette")
	}
}
