package component

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rovshanmuradov/coinfolio/internal/logger"
	"github.com/rovshanmuradov/coinfolio/internal/ui/style"
)

// LogLevel is a minimum severity filter for the log view.
type LogLevel int

const (
	LevelAll LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the filter name
func (l LogLevel) String() string {
	switch l {
	case LevelInfo:
		return "Info+"
	case LevelWarn:
		return "Warn+"
	case LevelError:
		return "Error"
	default:
		return "All"
	}
}

func severity(level string) LogLevel {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return LevelAll
	case "WARN", "WARNING":
		return LevelWarn
	case "ERROR", "DPANIC", "PANIC", "FATAL":
		return LevelError
	default:
		return LevelInfo
	}
}

// LogView shows a scrollable list of entries from a LogBuffer.
type LogView struct {
	buffer   *logger.LogBuffer
	viewport viewport.Model
	filter   LogLevel
	limit    int
	styles   style.Styles
}

// NewLogView creates a new log view over buffer
func NewLogView(buffer *logger.LogBuffer, styles style.Styles) *LogView {
	return &LogView{
		buffer:   buffer,
		viewport: viewport.New(80, 20),
		limit:    500,
		styles:   styles,
	}
}

// SetStyles replaces the styles, used on theme change.
func (lv *LogView) SetStyles(styles style.Styles) {
	lv.styles = styles
	lv.Refresh()
}

// SetSize sets the viewport dimensions
func (lv *LogView) SetSize(width, height int) {
	if width < 20 {
		width = 20
	}
	if height < 3 {
		height = 3
	}
	lv.viewport.Width = width
	lv.viewport.Height = height
	lv.Refresh()
}

// SetFilter updates the minimum level shown
func (lv *LogView) SetFilter(filter LogLevel) {
	lv.filter = filter
	lv.Refresh()
}

// Filter returns the active filter
func (lv *LogView) Filter() LogLevel {
	return lv.filter
}

// Entries returns the buffered entries that pass the filter, oldest first.
func (lv *LogView) Entries() []logger.LogEntry {
	if lv.buffer == nil {
		return nil
	}
	var out []logger.LogEntry
	for _, entry := range lv.buffer.GetRecentLogs(lv.limit) {
		if severity(entry.Level) >= lv.filter {
			out = append(out, entry)
		}
	}
	return out
}

// Refresh reloads the viewport from the buffer, staying at the bottom when
// it was already there.
func (lv *LogView) Refresh() {
	follow := lv.viewport.AtBottom()

	entries := lv.Entries()
	if len(entries) == 0 {
		lv.viewport.SetContent(lv.styles.Muted.Render("No logs match current filter"))
		return
	}

	lines := make([]string, len(entries))
	for i, entry := range entries {
		lines[i] = lv.formatEntry(entry)
	}
	lv.viewport.SetContent(strings.Join(lines, "\n"))
	if follow {
		lv.viewport.GotoBottom()
	}
}

// Update handles viewport scrolling
func (lv *LogView) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	lv.viewport, cmd = lv.viewport.Update(msg)
	return cmd
}

// View renders the log view
func (lv *LogView) View() string {
	return lv.viewport.View()
}

func (lv *LogView) formatEntry(entry logger.LogEntry) string {
	timestamp := lv.styles.Muted.Render(entry.Timestamp.Format("15:04:05"))

	levelStyle := lv.styles.Info
	switch severity(entry.Level) {
	case LevelAll:
		levelStyle = lv.styles.Muted
	case LevelWarn:
		levelStyle = lv.styles.Warning
	case LevelError:
		levelStyle = lv.styles.Error
	}
	level := levelStyle.Render(fmt.Sprintf("%-5s", strings.ToUpper(entry.Level)))

	var b strings.Builder
	b.WriteString(timestamp + " " + level + " ")
	if entry.Component != "" {
		b.WriteString(lv.styles.HelpKey.Render(entry.Component) + " ")
	}
	b.WriteString(lv.styles.Text.Render(entry.Message))

	if len(entry.Fields) > 0 {
		keys := make([]string, 0, len(entry.Fields))
		for k := range entry.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			b.WriteString(lv.styles.Muted.Render(fmt.Sprintf(" %s=%v", k, entry.Fields[k])))
		}
	}
	return b.String()
}
