package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/lifedash/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
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

// SetColor switches the default renderer between true colour and plain text.
func SetColor(enabled bool) {
	if enabled {
		lipgloss.SetColorProfile(termenv.TrueColor)
		return
	}
	lipgloss.SetColorProfile(termenv.Ascii)
}

// LevelColor returns the style for a classification level. Levels where
// more is worse (pressure, dispersion) and scalar quality bands share the
// traffic-light mapping.
func LevelColor(level domain.Level) lipgloss.Style {
	switch level {
	case domain.LevelHigh, domain.LevelPoor:
		return StyleRed
	case domain.LevelModerate, domain.LevelMedium, domain.LevelFair:
		return StyleYellow
	case domain.LevelLight, domain.LevelLow, domain.LevelGood:
		return StyleGreen
	default:
		return StyleDim
	}
}

// LevelIndicator renders a level as "● MODERATE".
func LevelIndicator(level domain.Level) string {
	if level == domain.LevelNoData || level == "" {
		return StyleDim.Render("○ NO DATA")
	}
	return LevelColor(level).Render("● " + strings.ToUpper(string(level)))
}

// InsightBadge renders the insight type as a short bracketed tag.
func InsightBadge(t domain.InsightType) string {
	switch t {
	case domain.InsightWarning:
		return StyleRed.Render("[!]")
	case domain.InsightSuccess:
		return StyleGreen.Render("[✔]")
	case domain.InsightSuggestion:
		return StylePurple.Render("[→]")
	default:
		return StyleBlue.Render("[i]")
	}
}

func SeverityColor(s domain.Severity) lipgloss.Style {
	if s == domain.SeverityWarning {
		return StyleYellow
	}
	return StyleBlue
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
