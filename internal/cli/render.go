package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	rightStyle  = cellStyle.Align(lipgloss.Right)
)

// renderTable draws rows under headers. Columns listed in right are right
// aligned.
func renderTable(headers []string, rows [][]string, right ...int) string {
	aligned := make(map[int]bool, len(right))
	for _, col := range right {
		aligned[col] = true
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if aligned[col] {
				return rightStyle
			}
			return cellStyle
		})
	return t.Render()
}
