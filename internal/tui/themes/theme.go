// Package themes defines the color palettes used by the chat screen.
package themes

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the TUI.
type Theme struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Bold          lipgloss.Style
	UserBubble    lipgloss.Style
	BotBubble     lipgloss.Style
	UserLabel     lipgloss.Style
	BotLabel      lipgloss.Style
	DetailBox     lipgloss.Style
	DetailLabel   lipgloss.Style
	Input         lipgloss.Style
	StatusPending lipgloss.Style
	StatusError   lipgloss.Style
	Help          lipgloss.Style
	Primary       lipgloss.Color
	Secondary     lipgloss.Color
	Muted         lipgloss.Color
	Border        lipgloss.Color
	Foreground    lipgloss.Color
	Error         lipgloss.Color
	Success       lipgloss.Color
}

// Default is the default theme.
var Default = newTheme(palette{
	primary:    "#8B5CF6",
	secondary:  "#a78bfa",
	success:    "#10b981",
	errorColor: "#ef4444",
	foreground: "#fafafa",
	subtle:     "#a3a3a3",
	border:     "#404040",
	muted:      "#737373",
	bubble:     "#262626",
})

// CatppuccinMocha is the Catppuccin Mocha theme.
var CatppuccinMocha = newTheme(palette{
	primary:    "#cba6f7",
	secondary:  "#f5c2e7",
	success:    "#a6e3a1",
	errorColor: "#f38ba8",
	foreground: "#cdd6f4",
	subtle:     "#a6adc8",
	border:     "#45475a",
	muted:      "#6c7086",
	bubble:     "#313244",
})

type palette struct {
	primary, secondary, success, errorColor string
	foreground, subtle, border, muted       string
	bubble                                  string
}

func newTheme(p palette) Theme {
	return Theme{
		// Colors
		Primary:    lipgloss.Color(p.primary),
		Secondary:  lipgloss.Color(p.secondary),
		Success:    lipgloss.Color(p.success),
		Error:      lipgloss.Color(p.errorColor),
		Foreground: lipgloss.Color(p.foreground),
		Border:     lipgloss.Color(p.border),
		Muted:      lipgloss.Color(p.muted),

		// Text styles
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.foreground)).
			Background(lipgloss.Color(p.primary)).
			Padding(0, 1),
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.subtle)),
		Normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.foreground)),
		Bold: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.foreground)),

		// Transcript
		UserBubble: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.foreground)).
			Background(lipgloss.Color(p.primary)).
			Padding(0, 1),
		BotBubble: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.foreground)).
			Background(lipgloss.Color(p.bubble)).
			Padding(0, 1),
		UserLabel: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.secondary)).
			Bold(true),
		BotLabel: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.primary)).
			Bold(true),
		DetailBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.primary)).
			Padding(0, 1),
		DetailLabel: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.subtle)),

		// Input and status
		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.border)).
			Padding(0, 1),
		StatusPending: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.muted)).
			Italic(true),
		StatusError: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.errorColor)).
			Bold(true),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.muted)),
	}
}

// GetTheme returns a theme by name, falling back to Default.
func GetTheme(name string) Theme {
	switch name {
	case "catppuccin", "catppuccin-mocha":
		return CatppuccinMocha
	default:
		return Default
	}
}
