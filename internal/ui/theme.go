package ui

import (
	"sync"

	"github.com/rovshanmuradov/coinfolio/internal/ui/style"
)

// Theme holds the dark/light choice shared by every screen.
type Theme struct {
	mu     sync.RWMutex
	dark   bool
	styles [2]style.Styles
}

// NewTheme creates a theme in the given mode.
func NewTheme(dark bool) *Theme {
	return &Theme{
		dark: dark,
		styles: [2]style.Styles{
			style.New(style.LightPalette()),
			style.New(style.DarkPalette()),
		},
	}
}

// Dark reports whether dark mode is on.
func (t *Theme) Dark() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.dark
}

// Toggle flips the mode and returns the new value.
func (t *Theme) Toggle() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.dark = !t.dark
	return t.dark
}

// Palette returns the colors of the current mode.
func (t *Theme) Palette() style.Palette {
	return t.Styles().Palette
}

// Styles returns the styles of the current mode.
func (t *Theme) Styles() style.Styles {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.dark {
		return t.styles[1]
	}
	return t.styles[0]
}

// Label is the name shown on the theme toggle.
func (t *Theme) Label() string {
	if t.Dark() {
		return "☾ Dark"
	}
	return "☀ Light"
}
