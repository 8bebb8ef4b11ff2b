package formatter

import (
	"fmt"
	"strings"

	"github.com/Thereal-Vadim/Word-Game/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Palette is one set of theme colors.
type Palette struct {
	Green  lipgloss.Color
	Yellow lipgloss.Color
	Red    lipgloss.Color
	Blue   lipgloss.Color
	Purple lipgloss.Color
	Dim    lipgloss.Color
	Fg     lipgloss.Color
	Header lipgloss.Color
}

// Gruvbox dark and light variants.
var (
	DarkPalette = Palette{
		Green:  "#8ec07c",
		Yellow: "#fabd2f",
		Red:    "#fb4934",
		Blue:   "#83a598",
		Purple: "#d3869b",
		Dim:    "#928374",
		Fg:     "#ebdbb2",
		Header: "#fe8019",
	}
	LightPalette = Palette{
		Green:  "#427b58",
		Yellow: "#b57614",
		Red:    "#9d0006",
		Blue:   "#076678",
		Purple: "#8f3f71",
		Dim:    "#7c6f64",
		Fg:     "#3c3836",
		Header: "#af3a03",
	}
)

// Active colors. Replaced by UseTheme.
var (
	ColorGreen  lipgloss.Color
	ColorYellow lipgloss.Color
	ColorRed    lipgloss.Color
	ColorBlue   lipgloss.Color
	ColorPurple lipgloss.Color
	ColorDim    lipgloss.Color
	ColorFg     lipgloss.Color
	ColorHeader lipgloss.Color
)

// Predefined lipgloss styles built from the active palette.
var (
	StyleGreen  lipgloss.Style
	StyleYellow lipgloss.Style
	StyleRed    lipgloss.Style
	StyleBlue   lipgloss.Style
	StylePurple lipgloss.Style
	StyleDim    lipgloss.Style
	StyleFg     lipgloss.Style
	StyleHeader lipgloss.Style
	StyleBold   lipgloss.Style
)

var activeTheme domain.Theme

func init() {
	UseTheme(domain.ThemeDark)
}

// UseTheme switches every exported color and style to the palette of theme.
// Unknown themes fall back to dark. Not safe to call while rendering.
func UseTheme(theme domain.Theme) {
	p := DarkPalette
	if theme == domain.ThemeLight {
		p = LightPalette
	} else {
		theme = domain.ThemeDark
	}
	activeTheme = theme

	ColorGreen, ColorYellow, ColorRed, ColorBlue = p.Green, p.Yellow, p.Red, p.Blue
	ColorPurple, ColorDim, ColorFg, ColorHeader = p.Purple, p.Dim, p.Fg, p.Header

	StyleGreen = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
}

// ActiveTheme returns the theme last passed to UseTheme.
func ActiveTheme() domain.Theme { return activeTheme }

// Header renders a section header with the header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}

// Stars renders a 0-3 rating as filled and empty stars.
func Stars(n int) string {
	if n < 0 {
		n = 0
	}
	if n > domain.MaxStars {
		n = domain.MaxStars
	}
	filled := strings.Repeat("★", n)
	empty := strings.Repeat("☆", domain.MaxStars-n)
	return StyleYellow.Render(filled) + StyleDim.Render(empty)
}

// ResolutionLabel renders how a word ended.
func ResolutionLabel(r domain.Resolution) string {
	switch r {
	case domain.WordCorrect:
		return StyleGreen.Render("✓ correct")
	case domain.WordAttemptsExhausted:
		return StyleRed.Render("✗ out of attempts")
	case domain.WordTimedOut:
		return StyleRed.Render("⏱ time is up")
	default:
		return ""
	}
}
