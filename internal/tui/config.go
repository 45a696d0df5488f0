package tui

import "github.com/Veraticus/pockit/internal/tui/themes"

// MaxInputLength caps a single chat message, in runes.
const MaxInputLength = 500

// settings are what Options may change before NewModel builds the screen.
type settings struct {
	theme      themes.Theme
	width      int
	height     int
	inputLimit int
}

// Option customizes the chat screen.
type Option func(*settings)

func newSettings(opts []Option) settings {
	s := settings{
		theme:      themes.Default,
		width:      80,
		height:     24,
		inputLimit: MaxInputLength,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithTheme picks the color palette.
func WithTheme(theme themes.Theme) Option {
	return func(s *settings) { s.theme = theme }
}

// WithSize sets the size used until the terminal reports its own.
// Non-positive dimensions are ignored.
func WithSize(width, height int) Option {
	return func(s *settings) {
		if width > 0 && height > 0 {
			s.width, s.height = width, height
		}
	}
}

// WithInputLimit lowers the per-message rune limit. Values outside
// 1..MaxInputLength are ignored.
func WithInputLimit(limit int) Option {
	return func(s *settings) {
		if limit > 0 && limit <= MaxInputLength {
			s.inputLimit = limit
		}
	}
}
