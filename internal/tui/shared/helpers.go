package shared

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

//nolint:gochecknoglobals // Read once at startup
var unicodeDisabled = os.Getenv("SUMMARIZE_ASCII") != ""

// ActiveSymbol returns a circled dot symbol with ASCII fallback
func ActiveSymbol() string {
	if unicodeDisabled {
		return "[*]"
	}

	return "◉"
}

// InactiveSymbol returns an empty circle with ASCII fallback
func InactiveSymbol() string {
	if unicodeDisabled {
		return "[ ]"
	}

	return "○"
}

// ErrorSymbol returns a cross with ASCII fallback
func ErrorSymbol() string {
	if unicodeDisabled {
		return "[x]"
	}

	return "✗"
}

// SuccessSymbol returns a check mark with ASCII fallback
func SuccessSymbol() string {
	if unicodeDisabled {
		return "[ok]"
	}

	return "✓"
}

// FormatRatio formats a summary ratio for display (e.g., "40%")
func FormatRatio(ratio int) string {
	return strconv.Itoa(ratio) + "%"
}

// WrapText wraps text to width columns, keeping existing line breaks
func WrapText(text string, width int) string {
	if width <= 0 {
		return text
	}

	return lipgloss.NewStyle().Width(width).Render(text)
}

// JoinWrapped lays items out left to right, starting a new line whenever the next item
// would overflow width. Items are separated by a single space.
func JoinWrapped(items []string, width int) string {
	var (
		lines   []string
		current strings.Builder
		used    int
	)

	for _, item := range items {
		w := lipgloss.Width(item)
		if used > 0 && width > 0 && used+1+w > width {
			lines = append(lines, current.String())
			current.Reset()
			used = 0
		}

		if used > 0 {
			current.WriteString(" ")
			used++
		}

		current.WriteString(item)
		used += w
	}

	if used > 0 {
		lines = append(lines, current.String())
	}

	return strings.Join(lines, "\n")
}
