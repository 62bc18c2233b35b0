package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/studymate/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// courseColors maps the course palette onto terminal colors.
var courseColors = map[domain.Color]lipgloss.Color{
	domain.ColorBlue:    "#83a598",
	domain.ColorGreen:   "#b8bb26",
	domain.ColorPurple:  "#b16286",
	domain.ColorRed:     "#fb4934",
	domain.ColorYellow:  "#fabd2f",
	domain.ColorIndigo:  "#7c6f9f",
	domain.ColorPink:    "#d3869b",
	domain.ColorTeal:    "#689d6a",
	domain.ColorOrange:  "#fe8019",
	domain.ColorCyan:    "#8ec07c",
	domain.ColorEmerald: "#98971a",
	domain.ColorViolet:  "#a48fc8",
	domain.ColorRose:    "#e46876",
	domain.ColorLime:    "#c6d65a",
}

// CourseStyle returns the style for a course color. Unknown colors render
// dim.
func CourseStyle(c domain.Color) lipgloss.Style {
	if col, ok := courseColors[c]; ok {
		return lipgloss.NewStyle().Foreground(col)
	}
	return StyleDim
}

// StatusStyle returns the style for a task status.
func StatusStyle(s domain.TaskStatus) lipgloss.Style {
	switch s {
	case domain.StatusTodo:
		return StyleBlue
	case domain.StatusDoing:
		return StyleYellow
	case domain.StatusDone:
		return StyleGreen
	default:
		return StyleDim
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
