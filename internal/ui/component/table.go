package component

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rovshanmuradov/coinfolio/internal/ui/style"
)

// TableColumn represents a column configuration
type TableColumn struct {
	Header string
	Width  int
	Align  lipgloss.Position
}

// Table represents a data table component with an optional sort indicator
// and a selectable row.
type Table struct {
	columns     []TableColumn
	rows        [][]string
	width       int
	selectedRow int

	sortColumn int
	sortAsc    bool

	styles style.Styles

	// Configuration
	showBorder bool
	selectable bool
}

// NewTable creates a new table component
func NewTable(styles style.Styles) *Table {
	return &Table{
		sortColumn: -1,
		styles:     styles,
		showBorder: true,
		selectable: true,
	}
}

// SetStyles replaces the styles, used on theme change.
func (t *Table) SetStyles(styles style.Styles) *Table {
	t.styles = styles
	return t
}

// SetColumns sets the table columns
func (t *Table) SetColumns(columns []TableColumn) *Table {
	t.columns = append([]TableColumn(nil), columns...)
	return t
}

// AddColumn adds a column to the table
func (t *Table) AddColumn(header string, width int, align lipgloss.Position) *Table {
	t.columns = append(t.columns, TableColumn{Header: header, Width: width, Align: align})
	return t
}

// SetRows sets all table rows
func (t *Table) SetRows(rows [][]string) *Table {
	t.rows = rows
	if t.selectedRow >= len(rows) {
		t.selectedRow = len(rows) - 1
	}
	if t.selectedRow < 0 {
		t.selectedRow = 0
	}
	return t
}

// SetSort marks column as the active sort column. A negative column hides
// the indicator.
func (t *Table) SetSort(column int, ascending bool) *Table {
	t.sortColumn = column
	t.sortAsc = ascending
	return t
}

// SetWidth sets the total width used for auto-sized columns
func (t *Table) SetWidth(width int) *Table {
	t.width = width
	return t
}

// SetSelectedRow sets the currently selected row
func (t *Table) SetSelectedRow(index int) *Table {
	if index >= 0 && index < len(t.rows) {
		t.selectedRow = index
	}
	return t
}

// SelectedRow returns the currently selected row index
func (t *Table) SelectedRow() int {
	return t.selectedRow
}

// MoveUp moves selection up
func (t *Table) MoveUp() *Table {
	if t.selectable && t.selectedRow > 0 {
		t.selectedRow--
	}
	return t
}

// MoveDown moves selection down
func (t *Table) MoveDown() *Table {
	if t.selectable && t.selectedRow < len(t.rows)-1 {
		t.selectedRow++
	}
	return t
}

// RowCount returns the number of rows
func (t *Table) RowCount() int {
	return len(t.rows)
}

// Header returns the rendered header text of column i, including the sort
// arrow when it is the active column.
func (t *Table) Header(i int) string {
	h := t.columns[i].Header
	if i == t.sortColumn {
		if t.sortAsc {
			h += " ↑"
		} else {
			h += " ↓"
		}
	}
	return h
}

// View renders the table
func (t *Table) View() string {
	if len(t.columns) == 0 {
		return ""
	}

	widths := t.columnWidths()
	var content strings.Builder

	cells := make([]string, len(t.columns))
	for i, col := range t.columns {
		cells[i] = renderCell(t.Header(i), widths[i], col.Align, t.styles.TableHeader)
	}
	content.WriteString(strings.Join(cells, "│"))
	content.WriteString("\n")

	seps := make([]string, len(t.columns))
	for i := range t.columns {
		seps[i] = strings.Repeat("─", widths[i]+2)
	}
	content.WriteString(strings.Join(seps, "┼"))

	for r, row := range t.rows {
		rowStyle := t.styles.TableRow
		if t.selectable && r == t.selectedRow {
			rowStyle = t.styles.TableRowSelected
		}
		for i, col := range t.columns {
			var data string
			if i < len(row) {
				data = row[i]
			}
			cells[i] = renderCell(data, widths[i], col.Align, rowStyle)
		}
		content.WriteString("\n")
		content.WriteString(strings.Join(cells, "│"))
	}

	if t.showBorder {
		return t.styles.TableBorder.Render(content.String())
	}
	return content.String()
}

// renderCell truncates content to width runes and aligns it. The style's
// horizontal padding is added around the width.
func renderCell(content string, width int, align lipgloss.Position, s lipgloss.Style) string {
	runes := []rune(content)
	if len(runes) > width {
		if width > 1 {
			content = string(runes[:width-1]) + "…"
		} else {
			content = string(runes[:width])
		}
	}
	return s.Width(width + 2).Align(align).Render(content)
}

// columnWidths fills columns without an explicit width with an equal share
// of the remaining space; with no table width they fit their header.
func (t *Table) columnWidths() []int {
	widths := make([]int, len(t.columns))
	fixed, auto := 0, 0
	for i, col := range t.columns {
		widths[i] = col.Width
		if col.Width > 0 {
			fixed += col.Width + 3
		} else {
			auto++
		}
	}
	if auto == 0 {
		return widths
	}

	share := 0
	if t.width > 0 {
		share = (t.width - fixed - 2) / auto
		share -= 3
	}
	for i := range widths {
		if widths[i] > 0 {
			continue
		}
		widths[i] = share
		if least := lipgloss.Width(t.Header(i)); widths[i] < least {
			widths[i] = least
		}
	}
	return widths
}
