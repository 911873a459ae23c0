package component

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rovshanmuradov/coinfolio/internal/ui/style"
)

// NavItem is one link of the navigation bar.
type NavItem struct {
	Label  string
	Key    string
	Active bool
}

// NavBar renders the brand, the navigation links and the theme toggle on
// one line.
type NavBar struct {
	Brand      string
	Items      []NavItem
	ThemeLabel string
	Width      int
}

// View renders the bar
func (n NavBar) View(s style.Styles) string {
	brand := s.Header.Margin(0).Render(n.Brand)

	links := make([]string, 0, len(n.Items))
	for _, item := range n.Items {
		text := item.Label
		if item.Key != "" {
			text = s.HelpKey.Render(item.Key) + " " + text
		}
		if item.Active {
			links = append(links, s.Bold.Underline(true).Render(text))
		} else {
			links = append(links, s.Text.Render(text))
		}
	}
	middle := strings.Join(links, "   ")

	right := s.Muted.Render(s.HelpKey.Render("t") + " " + n.ThemeLabel)

	gap := n.Width - lipgloss.Width(brand) - lipgloss.Width(middle) - lipgloss.Width(right) - 4
	if gap < 2 {
		return lipgloss.JoinVertical(lipgloss.Left, brand, middle+"   "+right)
	}
	half := gap / 2
	return brand + strings.Repeat(" ", half+2) + middle + strings.Repeat(" ", gap-half+2) + right
}
