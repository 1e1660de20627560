package shared

import "github.com/charmbracelet/lipgloss"

// RenderTwoColumnLayout renders content in two columns with 45-55 width split.
// The input column gets ~45% of width, the result column the rest.
func RenderTwoColumnLayout(leftContent, rightContent string, width int) string {
	leftWidth := int(float64(width) * 0.45)
	rightWidth := width - leftWidth

	leftStyle := lipgloss.NewStyle().Width(leftWidth)
	rightStyle := lipgloss.NewStyle().Width(rightWidth)

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		leftStyle.Render(leftContent),
		rightStyle.Render(rightContent),
	)
}

// LeftColumnWidth returns the width RenderTwoColumnLayout gives the left column,
// or the full width when the terminal is too narrow for two columns.
func LeftColumnWidth(width int) int {
	if width < MinTwoColumnWidth {
		return width
	}

	return int(float64(width) * 0.45)
}

// RightColumnWidth returns the width of the result column.
func RightColumnWidth(width int) int {
	if width < MinTwoColumnWidth {
		return width
	}

	return width - LeftColumnWidth(width)
}

// RenderWidgetBox renders content in a titled box with borders.
// Width accounts for the border and padding.
func RenderWidgetBox(styles Styles, title, content string, width int) string {
	const widthOverhead = 4 // Account for borders (2) and padding (2)

	rendered := content
	if title != "" {
		rendered = styles.RenderTitle(title) + "\n" + content
	}

	return styles.Box().Width(max(1, width-widthOverhead)).Render(rendered)
}
