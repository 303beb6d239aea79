package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/statusmodal/internal/status"
)

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color // Primary text (bright)
	FgMuted  lipgloss.Color // Secondary text (dimmed)
	FgSubtle lipgloss.Color // Tertiary text (very dim)

	// Borders
	Border lipgloss.Color // Neutral borders

	// Category accents
	Success lipgloss.Color // Green
	Info    lipgloss.Color // Blue
	Error   lipgloss.Color // Red

	// Gradient end blended with the accent in titles
	Highlight lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base    lipgloss.Style // Default text
	Muted   lipgloss.Style // Dimmed text
	Subtle  lipgloss.Style // Very dim text
	Title   lipgloss.Style // Bold, bright
	Bold    lipgloss.Style // Emphasis inside messages
	Success lipgloss.Style
	Info    lipgloss.Style
	Error   lipgloss.Style
}

var defaultTheme = Theme{
	// Text hierarchy (grayscale)
	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	Border: lipgloss.Color("#585858"),

	Success: lipgloss.Color("#42b883"),
	Info:    lipgloss.Color("#5fafff"),
	Error:   lipgloss.Color("#ff5555"),

	Highlight: lipgloss.Color("#f0f0f0"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:    base,
		Muted:   lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle:  lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:   base.Bold(true),
		Bold:    base.Bold(true),
		Success: lipgloss.NewStyle().Foreground(t.Success),
		Info:    lipgloss.NewStyle().Foreground(t.Info),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
	}
}

// Accent returns the accent color for a notification category.
func (t *Theme) Accent(c status.Category) lipgloss.Color {
	switch c {
	case status.Success:
		return t.Success
	case status.Info:
		return t.Info
	case status.Error:
		return t.Error
	}
	return t.Error
}

// Category returns the text style for a notification category.
func (t *Theme) Category(c status.Category) lipgloss.Style {
	s := t.S()
	switch c {
	case status.Success:
		return s.Success
	case status.Info:
		return s.Info
	case status.Error:
		return s.Error
	}
	return s.Error
}
