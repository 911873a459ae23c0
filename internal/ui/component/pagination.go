package component

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rovshanmuradov/coinfolio/internal/listing"
	"github.com/rovshanmuradov/coinfolio/internal/ui/style"
)

// Pagination renders the page controls under a paged table.
type Pagination struct {
	Total    int
	PageSize int
	Page     int
}

// TotalPages is the page count for the current total.
func (p Pagination) TotalPages() int {
	return listing.TotalPages(p.Total, p.PageSize)
}

// HasPrev reports whether Previous is enabled.
func (p Pagination) HasPrev() bool {
	return p.Page > 1
}

// HasNext reports whether Next is enabled.
func (p Pagination) HasNext() bool {
	return p.Page < p.TotalPages()
}

// Summary is the "Showing X to Y of Z" line.
func (p Pagination) Summary() string {
	from, to := listing.Window(p.Total, p.PageSize, p.Page)
	return fmt.Sprintf("Showing %d to %d of %d", from, to, p.Total)
}

// Labels are the page buttons as text, "..." for gaps.
func (p Pagination) Labels() []string {
	pages := listing.PageLabels(p.TotalPages(), p.Page)
	labels := make([]string, len(pages))
	for i, n := range pages {
		if n == listing.Ellipsis {
			labels[i] = "..."
			continue
		}
		labels[i] = strconv.Itoa(n)
	}
	return labels
}

// View renders Previous, the page labels, Next and the summary.
func (p Pagination) View(s style.Styles) string {
	if p.TotalPages() == 0 {
		return ""
	}

	button := func(label string, enabled bool) string {
		if enabled {
			return s.Button.Render(label)
		}
		return s.ButtonDisabled.Render(label)
	}

	pages := listing.PageLabels(p.TotalPages(), p.Page)
	parts := make([]string, 0, len(pages)+2)
	parts = append(parts, button("Previous", p.HasPrev()))
	for i, label := range p.Labels() {
		switch {
		case pages[i] == listing.Ellipsis:
			parts = append(parts, s.Muted.Render(" "+label+" "))
		case pages[i] == p.Page:
			parts = append(parts, s.ButtonActive.Render(label))
		default:
			parts = append(parts, s.Text.Padding(0, 1).Render(label))
		}
	}
	parts = append(parts, button("Next", p.HasNext()))

	controls := lipgloss.JoinHorizontal(lipgloss.Center, parts...)
	return strings.Join([]string{s.Muted.Render(p.Summary()), controls}, "\n")
}
