// Package cli renders pockit's command-line output.
package cli

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// Heading icons.
const (
	WalletIcon = "👛"
	ChartIcon  = "📊"
)

var (
	violet = lipgloss.Color("#8B5CF6")
	gray   = lipgloss.Color("#737373")
	red    = lipgloss.Color("#EF4444")
)

var (
	// TitleStyle heads a listing.
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(violet).MarginBottom(1)
	// ErrorStyle colors failure text.
	ErrorStyle = lipgloss.NewStyle().Foreground(red)
	// SubtleStyle dims labels.
	SubtleStyle = lipgloss.NewStyle().Foreground(gray)
	// BoxStyle frames the details attached to a reply.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(violet).
			Padding(0, 1)
	// TableHeaderStyle styles the header row of a table.
	TableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(violet)
)

// notice is a one-line status message: an icon drawn in the line's color.
type notice struct {
	icon  string
	style lipgloss.Style
}

func (n notice) format(message string) string {
	return n.style.Render(n.icon + " " + message)
}

var (
	successNotice = notice{"✓", lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))}
	warningNotice = notice{"!", lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")).Bold(true)}
	errorNotice   = notice{"✗", ErrorStyle}
	infoNotice    = notice{"›", lipgloss.NewStyle().Foreground(lipgloss.Color("#A78BFA"))}
)

// FormatSuccess renders a completed-action line.
func FormatSuccess(message string) string { return successNotice.format(message) }

// FormatWarning renders a line that needs the user's attention.
func FormatWarning(message string) string { return warningNotice.format(message) }

// FormatError renders a failure line.
func FormatError(message string) string { return errorNotice.format(message) }

// FormatInfo renders a neutral status line.
func FormatInfo(message string) string { return infoNotice.format(message) }

// FormatTitle renders a heading prefixed with the wallet icon.
func FormatTitle(title string) string {
	return TitleStyle.Render(WalletIcon + " " + title)
}

// FormatRupees renders an amount with the rupee sign and no trailing zeros.
func FormatRupees(amount float64) string {
	return "₹" + strconv.FormatFloat(amount, 'f', -1, 64)
}
