package component

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rovshanmuradov/coinfolio/internal/ui/style"
)

// Alert is a blocking message box. While open it takes all keys; enter or
// esc dismisses it.
type Alert struct {
	Title   string
	Message string
	open    bool
}

// Show opens the alert with a message.
func (a *Alert) Show(title, message string) {
	a.Title = title
	a.Message = message
	a.open = true
}

// Open reports whether the alert is showing.
func (a *Alert) Open() bool {
	return a.open
}

// HandleKey dismisses the alert on enter or esc. It reports whether the key
// was consumed, which is always true while open.
func (a *Alert) HandleKey(key string) bool {
	if !a.open {
		return false
	}
	if key == "enter" || key == "esc" || key == " " {
		a.open = false
	}
	return true
}

// View renders the alert box
func (a *Alert) View(s style.Styles) string {
	if !a.open {
		return ""
	}
	title := a.Title
	if title == "" {
		title = "Notice"
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		s.Warning.Render(title),
		"",
		s.Text.Render(a.Message),
		"",
		s.ButtonActive.Render("OK"),
	)
	return s.Modal.Render(body)
}

// Overlay centers box over a width x height area.
func Overlay(width, height int, box string) string {
	if width <= 0 || height <= 0 {
		return box
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
