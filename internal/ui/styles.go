package ui

import "github.com/charmbracelet/lipgloss"

// Palette.
const (
	ColorPrimary = "#06B6D4" // filter active, cursor
	ColorMuted   = "#71717A" // filter inactive, completed tasks
	ColorFaint   = "#D4D4D8" // empty-state messages
	ColorTitle   = "#52525B"
)

// Styles holds every style the screen uses.
type Styles struct {
	Title         lipgloss.Style
	Counts        lipgloss.Style
	FilterActive  lipgloss.Style
	FilterMuted   lipgloss.Style
	Cursor        lipgloss.Style
	Task          lipgloss.Style
	TaskCompleted lipgloss.Style
	Message       lipgloss.Style
	Input         lipgloss.Style
	Help          lipgloss.Style
}

// DefaultStyles returns the coloured styles used on a terminal.
func DefaultStyles() Styles {
	primary := lipgloss.Color(ColorPrimary)
	muted := lipgloss.Color(ColorMuted)

	return Styles{
		Title:         lipgloss.NewStyle().Foreground(lipgloss.Color(ColorTitle)).Bold(true),
		Counts:        lipgloss.NewStyle().Foreground(muted),
		FilterActive:  lipgloss.NewStyle().Foreground(primary).Bold(true),
		FilterMuted:   lipgloss.NewStyle().Foreground(muted),
		Cursor:        lipgloss.NewStyle().Foreground(primary).Bold(true),
		Task:          lipgloss.NewStyle(),
		TaskCompleted: lipgloss.NewStyle().Foreground(muted).Strikethrough(true),
		Message:       lipgloss.NewStyle().Foreground(lipgloss.Color(ColorFaint)).Italic(true),
		Input:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		Help:          lipgloss.NewStyle().Foreground(muted),
	}
}

// PlainStyles returns styles that add no escape sequences or borders.
// Used for replay output and tests.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Title:         plain,
		Counts:        plain,
		FilterActive:  plain,
		FilterMuted:   plain,
		Cursor:        plain,
		Task:          plain,
		TaskCompleted: plain,
		Message:       plain,
		Input:         plain,
		Help:          plain,
	}
}
