package tui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color palette for the chat window.
var Colors = struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color
	Error     lipgloss.Color
	Text      lipgloss.Color
	Header    lipgloss.Color
	HeaderBg  lipgloss.Color
}{
	Primary:   lipgloss.Color("#6C5CE7"), // Purple
	Secondary: lipgloss.Color("#74B9FF"), // Light blue
	Muted:     lipgloss.Color("#636E72"), // Gray
	Error:     lipgloss.Color("#D63031"), // Red
	Text:      lipgloss.Color("#DFE6E9"), // Light gray
	Header:    lipgloss.Color("#89B4FA"),
	HeaderBg:  lipgloss.Color("#1E1E2E"),
}

// Styles contains the lipgloss styles for the chat window.
type Styles struct {
	Header     lipgloss.Style
	Logo       lipgloss.Style
	Border     lipgloss.Style
	BotBadge   lipgloss.Style
	UserBadge  lipgloss.Style
	Message    lipgloss.Style
	Separator  lipgloss.Style
	StatusLine lipgloss.Style
	Error      lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Header).
			Background(Colors.HeaderBg).
			Padding(0, 1),
		Logo: lipgloss.NewStyle().
			Foreground(Colors.Primary),
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Muted),
		BotBadge: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),
		UserBadge: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Secondary),
		Message: lipgloss.NewStyle().
			Foreground(Colors.Text),
		Separator: lipgloss.NewStyle().
			Foreground(Colors.Muted),
		StatusLine: lipgloss.NewStyle().
			Foreground(Colors.Muted),
		Error: lipgloss.NewStyle().
			Foreground(Colors.Error),
	}
}
