package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/lox/hangman/internal/config"
)

// Static styles for notices and status text
var (
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

// Styles are the themed styles for the main panel
type Styles struct {
	Frame   lipgloss.Style
	Title   lipgloss.Style
	Word    lipgloss.Style
	Label   lipgloss.Style
	Banner  lipgloss.Style
	Footer  lipgloss.Style
	Notice  lipgloss.Style
	Sticker lipgloss.Style
}

// NewStyles builds the panel styles from a theme
func NewStyles(theme *config.Theme) Styles {
	accent := lipgloss.Color(theme.Accent)
	frame := lipgloss.Color(theme.Frame)
	text := lipgloss.Color(theme.Text)

	return Styles{
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(frame).
			Padding(1, 4),
		Title: lipgloss.NewStyle().
			Foreground(text).
			Background(frame).
			Padding(0, 1).
			Bold(true),
		Word: lipgloss.NewStyle().
			Foreground(text).
			Bold(true).
			MarginTop(1).
			MarginBottom(1),
		Label: lipgloss.NewStyle().
			Foreground(text),
		Banner: lipgloss.NewStyle().
			Foreground(accent),
		Footer: lipgloss.NewStyle().
			Foreground(frame),
		Notice: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(accent).
			Padding(1, 3),
		Sticker: lipgloss.NewStyle().
			Bold(true),
	}
}
