package style

import "github.com/charmbracelet/lipgloss"

var (
	// Accents
	Cyan    = lipgloss.Color("#00E5FF")
	Magenta = lipgloss.Color("#FF1B6B")
	Indigo  = lipgloss.Color("#4F46E5")
	Yellow  = lipgloss.Color("#FFB500")
	Green   = lipgloss.Color("#2AFFAA")
	Red     = lipgloss.Color("#FF5555")
	Blue    = lipgloss.Color("#3B82F6")

	// Dark base
	Base03 = lipgloss.Color("#1B1D23") // Background
	Base02 = lipgloss.Color("#262831") // Darker background
	Base01 = lipgloss.Color("#6C7280") // Muted text
	Base2  = lipgloss.Color("#ECEFF4") // Primary text
	Base1  = lipgloss.Color("#B4BCC8") // Secondary text

	// Light base
	Paper     = lipgloss.Color("#FFFFFF")
	PaperAlt  = lipgloss.Color("#F3F4F6")
	Ink       = lipgloss.Color("#111827")
	InkMuted  = lipgloss.Color("#9CA3AF")
	InkSecond = lipgloss.Color("#4B5563")

	DarkGreen = lipgloss.Color("#059669")
	DarkRed   = lipgloss.Color("#DC2626")
	Amber     = lipgloss.Color("#B45309")
)

// Palette provides a centralized color management
type Palette struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Success   lipgloss.Color
	Error     lipgloss.Color
	Warning   lipgloss.Color
	Info      lipgloss.Color

	Background    lipgloss.Color
	BackgroundAlt lipgloss.Color
	Text          lipgloss.Color
	TextMuted     lipgloss.Color
	TextSecondary lipgloss.Color
}

// DarkPalette is used when dark mode is on.
func DarkPalette() Palette {
	return Palette{
		Primary:   Cyan,
		Secondary: Magenta,
		Success:   Green,
		Error:     Red,
		Warning:   Yellow,
		Info:      Blue,

		Background:    Base03,
		BackgroundAlt: Base02,
		Text:          Base2,
		TextMuted:     Base01,
		TextSecondary: Base1,
	}
}

// LightPalette is used when dark mode is off.
func LightPalette() Palette {
	return Palette{
		Primary:   Indigo,
		Secondary: Magenta,
		Success:   DarkGreen,
		Error:     DarkRed,
		Warning:   Amber,
		Info:      Blue,

		Background:    Paper,
		BackgroundAlt: PaperAlt,
		Text:          Ink,
		TextMuted:     InkMuted,
		TextSecondary: InkSecond,
	}
}
