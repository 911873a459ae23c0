package component

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rovshanmuradov/coinfolio/internal/logger"
	"github.com/rovshanmuradov/coinfolio/internal/market"
	"github.com/rovshanmuradov/coinfolio/internal/ui/style"
)

var testStyles = style.New(style.DarkPalette())

func TestTableSortIndicator(t *testing.T) {
	table := NewTable(testStyles).
		AddColumn("NAME", 10, 0).
		AddColumn("CURRENT PRICE", 14, 0)

	table.SetSort(1, true)
	assert.Equal(t, "NAME", table.Header(0))
	assert.Equal(t, "CURRENT PRICE ↑", table.Header(1))

	table.SetSort(0, false)
	assert.Equal(t, "NAME ↓", table.Header(0))
	assert.Contains(t, table.View(), "NAME ↓")
}

func TestTableSelectionClamps(t *testing.T) {
	table := NewTable(testStyles).AddColumn("A", 5, 0)
	table.SetRows([][]string{{"1"}, {"2"}, {"3"}})

	table.MoveUp()
	assert.Equal(t, 0, table.SelectedRow())
	table.MoveDown().MoveDown().MoveDown()
	assert.Equal(t, 2, table.SelectedRow())

	table.SetRows([][]string{{"1"}})
	assert.Equal(t, 0, table.SelectedRow())
}

func TestPagination(t *testing.T) {
	p := Pagination{Total: 100, PageSize: 10, Page: 1}
	assert.False(t, p.HasPrev())
	assert.True(t, p.HasNext())
	assert.Equal(t, "Showing 1 to 10 of 100", p.Summary())
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "...", "10"}, p.Labels())

	p.Page = 10
	assert.True(t, p.HasPrev())
	assert.False(t, p.HasNext())
	assert.Equal(t, "Showing 91 to 100 of 100", p.Summary())

	p.Page = 5
	assert.Equal(t, []string{"1", "...", "4", "5", "6", "...", "10"}, p.Labels())
	assert.Contains(t, p.View(testStyles), "Previous")

	assert.Empty(t, Pagination{Total: 0, PageSize: 10, Page: 1}.View(testStyles))
}

func TestAlertBlocksUntilDismissed(t *testing.T) {
	var a Alert
	assert.False(t, a.HandleKey("x"))

	a.Show("Error", "Please enter a valid quantity")
	assert.True(t, a.Open())
	assert.True(t, a.HandleKey("q"))
	assert.True(t, a.Open())
	assert.Contains(t, a.View(testStyles), "Please enter a valid quantity")

	assert.True(t, a.HandleKey("enter"))
	assert.False(t, a.Open())
	assert.Empty(t, a.View(testStyles))
}

func TestFormSubmitOnLastField(t *testing.T) {
	form := NewForm(testStyles).
		AddField("email", FieldTypeText, "Email Address", true, "").
		AddField("password", FieldTypePassword, "Password", true, "")

	form.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a@b.c")})
	assert.Equal(t, "a@b.c", form.GetValue("email"))

	form.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 1, form.FocusIndex())
	assert.False(t, form.Submitted())

	assert.False(t, form.Validate())

	form.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("secret")})
	form.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, form.Submitted())
	assert.False(t, form.Submitted())
	assert.True(t, form.Validate())

	form.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, 0, form.FocusIndex())
	assert.NotContains(t, form.View(), "secret")
}

func TestResample(t *testing.T) {
	assert.Equal(t, []float64{1, 2}, Resample([]float64{1, 2}, 5))
	assert.Equal(t, []float64{1.5, 3.5}, Resample([]float64{1, 2, 3, 4}, 2))
}

func TestPriceChart(t *testing.T) {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	points := []market.PricePoint{
		{Time: base, Price: 100},
		{Time: base.Add(24 * time.Hour), Price: 150},
		{Time: base.Add(48 * time.Hour), Price: 110},
	}

	chart := NewPriceChart(testStyles, 30, 4).SetData(points, 7)
	assert.InDelta(t, 10.0, chart.Change(), 1e-9)

	view := chart.View()
	assert.Contains(t, view, "$150.00")
	assert.Contains(t, view, "$100.00")
	assert.Contains(t, view, "Mar 1")
	assert.Contains(t, view, "Mar 3")

	assert.Contains(t, NewPriceChart(testStyles, 30, 4).View(), "No price data")
}

func TestLogViewFilter(t *testing.T) {
	buf := logger.NewLogBuffer(10)
	buf.Add("DEBUG", "dbg", nil)
	buf.Add("INFO", "info", nil)
	buf.Add("WARN", "warn", nil)
	buf.Add("ERROR", "err", map[string]interface{}{"coin": "bitcoin"})

	view := NewLogView(buf, testStyles)
	assert.Len(t, view.Entries(), 4)

	view.SetFilter(LevelWarn)
	entries := view.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "warn", entries[0].Message)

	view.SetFilter(LevelError)
	view.SetSize(80, 5)
	assert.Contains(t, view.View(), "coin=bitcoin")
	assert.Equal(t, "Error", view.Filter().String())
}
