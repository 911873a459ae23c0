package component

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/rovshanmuradov/coinfolio/internal/ui/style"
)

// HelpBar represents a help bar component showing keyboard shortcuts
type HelpBar struct {
	keyBindings []key.Binding
	width       int
	styles      style.Styles
}

// NewHelpBar creates a new help bar component
func NewHelpBar(styles style.Styles) *HelpBar {
	return &HelpBar{width: 80, styles: styles}
}

// SetStyles replaces the styles, used on theme change.
func (h *HelpBar) SetStyles(styles style.Styles) *HelpBar {
	h.styles = styles
	return h
}

// SetKeyBindings sets the key bindings to display
func (h *HelpBar) SetKeyBindings(bindings []key.Binding) *HelpBar {
	h.keyBindings = bindings
	return h
}

// SetWidth sets the help bar width
func (h *HelpBar) SetWidth(width int) *HelpBar {
	if width > 0 {
		h.width = width
	}
	return h
}

// View renders the bindings as "key desc" items, wrapping lines to width.
func (h *HelpBar) View() string {
	sep := h.styles.HelpDesc.Render(" • ")
	sepWidth := lipgloss.Width(sep)
	maxWidth := h.width - 2

	var lines []string
	var line []string
	lineWidth := 0
	for _, binding := range h.keyBindings {
		if !binding.Enabled() {
			continue
		}
		help := binding.Help()
		if help.Key == "" || help.Desc == "" {
			continue
		}

		item := h.styles.HelpKey.Render(help.Key) + " " + h.styles.HelpDesc.Render(help.Desc)
		w := lipgloss.Width(item) + sepWidth
		if lineWidth+w > maxWidth && len(line) > 0 {
			lines = append(lines, strings.Join(line, sep))
			line, lineWidth = nil, 0
		}
		line = append(line, item)
		lineWidth += w
	}
	if len(line) > 0 {
		lines = append(lines, strings.Join(line, sep))
	}
	if len(lines) == 0 {
		return ""
	}
	return h.styles.Help.Render(strings.Join(lines, "\n"))
}
