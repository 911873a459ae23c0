package style

import "github.com/charmbracelet/lipgloss"

// Styles are the lipgloss styles derived from one palette. Screens rebuild
// them when the theme changes.
type Styles struct {
	Palette Palette

	Header    lipgloss.Style
	SubHeader lipgloss.Style
	Title     lipgloss.Style
	Muted     lipgloss.Style
	Text      lipgloss.Style
	Bold      lipgloss.Style

	Panel       lipgloss.Style
	ActivePanel lipgloss.Style
	Modal       lipgloss.Style

	TableHeader      lipgloss.Style
	TableRow         lipgloss.Style
	TableRowSelected lipgloss.Style
	TableBorder      lipgloss.Style

	Button         lipgloss.Style
	ButtonActive   lipgloss.Style
	ButtonDisabled lipgloss.Style

	FormLabel        lipgloss.Style
	FormInput        lipgloss.Style
	FormInputFocused lipgloss.Style
	FormError        lipgloss.Style

	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	Profit lipgloss.Style
	Loss   lipgloss.Style

	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
	Help     lipgloss.Style
}

// New builds the style set for a palette.
func New(palette Palette) Styles {
	return Styles{
		Palette: palette,

		Header: lipgloss.NewStyle().
			Foreground(palette.Primary).
			Bold(true).
			Padding(0, 2).
			Margin(0, 0, 1, 0),
		SubHeader: lipgloss.NewStyle().
			Foreground(palette.Secondary).
			Bold(true).
			Margin(0, 0, 1, 0),
		Title: lipgloss.NewStyle().
			Foreground(palette.Primary).
			Bold(true).
			Margin(1, 0),
		Muted: lipgloss.NewStyle().Foreground(palette.TextMuted),
		Text:  lipgloss.NewStyle().Foreground(palette.Text),
		Bold:  lipgloss.NewStyle().Foreground(palette.Text).Bold(true),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(palette.TextMuted).
			Padding(1, 2),
		ActivePanel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(palette.Primary).
			Padding(1, 2),
		Modal: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(palette.Secondary).
			Padding(1, 3),

		TableHeader: lipgloss.NewStyle().
			Foreground(palette.Secondary).
			Bold(true).
			Padding(0, 1),
		TableRow: lipgloss.NewStyle().
			Foreground(palette.Text).
			Padding(0, 1),
		TableRowSelected: lipgloss.NewStyle().
			Foreground(palette.Background).
			Background(palette.Primary).
			Padding(0, 1),
		TableBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(palette.TextMuted),

		Button: lipgloss.NewStyle().
			Foreground(palette.Background).
			Background(palette.Secondary).
			Padding(0, 2).
			Margin(0, 1).
			Bold(true),
		ButtonActive: lipgloss.NewStyle().
			Foreground(palette.Background).
			Background(palette.Primary).
			Padding(0, 2).
			Margin(0, 1).
			Bold(true),
		ButtonDisabled: lipgloss.NewStyle().
			Foreground(palette.TextMuted).
			Background(palette.BackgroundAlt).
			Padding(0, 2).
			Margin(0, 1),

		FormLabel: lipgloss.NewStyle().
			Foreground(palette.Text).
			Bold(true).
			MarginRight(1),
		FormInput: lipgloss.NewStyle().
			Foreground(palette.Text).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(palette.TextMuted),
		FormInputFocused: lipgloss.NewStyle().
			Foreground(palette.Text).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(palette.Primary),
		FormError: lipgloss.NewStyle().
			Foreground(palette.Error),

		Success: lipgloss.NewStyle().Foreground(palette.Success).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(palette.Error).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(palette.Warning).Bold(true),
		Info:    lipgloss.NewStyle().Foreground(palette.Info),

		Profit: lipgloss.NewStyle().Foreground(palette.Success),
		Loss:   lipgloss.NewStyle().Foreground(palette.Error),

		HelpKey:  lipgloss.NewStyle().Foreground(palette.Primary).Bold(true),
		HelpDesc: lipgloss.NewStyle().Foreground(palette.TextMuted),
		Help: lipgloss.NewStyle().
			Foreground(palette.TextMuted).
			Margin(1, 0, 0, 0),
	}
}

// Change picks the profit or loss style by sign.
func (s Styles) Change(v float64) lipgloss.Style {
	if v < 0 {
		return s.Loss
	}
	return s.Profit
}

// AdaptiveJoinHorizontal stacks blocks vertically on narrow terminals.
func AdaptiveJoinHorizontal(width int, blocks ...string) string {
	if width < 80 {
		return lipgloss.JoinVertical(lipgloss.Left, blocks...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

// AdaptiveWidth returns percentage of width, or nearly all of it on narrow
// terminals.
func AdaptiveWidth(width, percentage int) int {
	if width < 80 {
		return width - 4
	}
	return (width * percentage) / 100
}
