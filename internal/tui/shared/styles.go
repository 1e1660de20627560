package shared

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/joe/summarize-client/pkg/prefs"
)

// Exported constants organized by category for clarity.
const (
	// ============================================================================
	// UI Layout & Display
	// ============================================================================

	// DefaultPadding is the default padding for UI elements
	DefaultPadding = 2
	// MinTwoColumnWidth is the narrowest terminal that gets the side-by-side layout
	MinTwoColumnWidth = 90
	// DefaultWidth is assumed until the first WindowSizeMsg arrives
	DefaultWidth = 100
	// DefaultHeight is assumed until the first WindowSizeMsg arrives
	DefaultHeight = 30

	// ============================================================================
	// Keys & Symbols
	// ============================================================================

	// KeyCtrlC is the key binding for quitting
	KeyCtrlC = "ctrl+c"
)

// Palette holds the colours of one theme.
type Palette struct {
	Accent    lipgloss.Color
	Primary   lipgloss.Color
	Highlight lipgloss.Color
	Normal    lipgloss.Color
	Subtle    lipgloss.Color
	Dim       lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
	TagFg     lipgloss.Color
	TagBg     lipgloss.Color
}

// DarkPalette is used on dark terminals.
func DarkPalette() Palette {
	return Palette{
		Accent:    "62",  // Blue
		Primary:   "205", // Pink/purple
		Highlight: "86",  // Cyan
		Normal:    "252", // Light gray
		Subtle:    "241", // Medium gray
		Dim:       "240", // Dark gray
		Success:   "42",  // Green
		Warning:   "226",
		Error:     "196", // Red
		TagFg:     "231",
		TagBg:     "60",
	}
}

// LightPalette is used on light terminals.
func LightPalette() Palette {
	return Palette{
		Accent:    "25",
		Primary:   "127",
		Highlight: "30",
		Normal:    "235",
		Subtle:    "244",
		Dim:       "246",
		Success:   "28",
		Warning:   "130",
		Error:     "160",
		TagFg:     "17",
		TagBg:     "153",
	}
}

// PaletteFor returns the palette of theme.
func PaletteFor(theme prefs.Theme) Palette {
	if theme == prefs.ThemeDark {
		return DarkPalette()
	}

	return LightPalette()
}

// Styles renders text with one palette.
type Styles struct {
	palette Palette
}

// NewStyles returns the styles for theme.
func NewStyles(theme prefs.Theme) Styles {
	return Styles{palette: PaletteFor(theme)}
}

// Palette returns the colours in use.
func (s Styles) Palette() Palette {
	return s.palette
}

// ============================================================================
// Box and Container Styles
// ============================================================================

// Box returns the style for boxes with padding
func (s Styles) Box() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.palette.Accent).
		Padding(0, 1)
}

// Overlay returns the style of the analytics modal
func (s Styles) Overlay() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(s.palette.Primary).
		Padding(1, DefaultPadding)
}

// ============================================================================
// Text Styles
// ============================================================================

// Title returns the style for titles
func (s Styles) Title() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(s.palette.Primary)
}

// Subtitle returns the style for subtitles
func (s Styles) Subtitle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(s.palette.Subtle)
}

// Label returns the style for labels
func (s Styles) Label() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(s.palette.Highlight).
		Bold(true)
}

// Normal returns the style for body text
func (s Styles) Normal() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(s.palette.Normal)
}

// Dim returns the style for dimmed text
func (s Styles) Dim() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(s.palette.Dim)
}

// Error returns the style for error messages
func (s Styles) Error() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(s.palette.Error).
		Bold(true)
}

// Success returns the style for success messages
func (s Styles) Success() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(s.palette.Success).
		Bold(true)
}

// Warning returns the style for warning messages
func (s Styles) Warning() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(s.palette.Warning).
		Bold(true)
}

// Tag returns the style for keyword tags
func (s Styles) Tag() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(s.palette.TagFg).
		Background(s.palette.TagBg).
		Padding(0, 1)
}

// ActiveMethod returns the style of the selected method button
func (s Styles) ActiveMethod() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(s.palette.TagFg).
		Background(s.palette.Accent).
		Bold(true).
		Padding(0, 1)
}

// InactiveMethod returns the style of an unselected method button
func (s Styles) InactiveMethod() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(s.palette.Subtle).
		Padding(0, 1)
}

// ============================================================================
// Helper Functions
// ============================================================================

// RenderTitle renders a title with consistent styling
func (s Styles) RenderTitle(text string) string {
	return s.Title().Render(text)
}

// RenderLabel renders a label with consistent styling
func (s Styles) RenderLabel(text string) string {
	return s.Label().Render(text)
}

// RenderDim renders dimmed text with consistent styling
func (s Styles) RenderDim(text string) string {
	return s.Dim().Render(text)
}

// RenderError renders an error message with consistent styling
func (s Styles) RenderError(text string) string {
	return s.Error().Render(text)
}

// RenderSuccess renders a success message with consistent styling
func (s Styles) RenderSuccess(text string) string {
	return s.Success().Render(text)
}

// RenderWarning renders a warning message with consistent styling
func (s Styles) RenderWarning(text string) string {
	return s.Warning().Render(text)
}
