package session

import (
	"slices"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/joe/summarize-client/pkg/api"
)

// NoMethodsUsedLabel is the placeholder row when no method has a non-zero count.
const NoMethodsUsedLabel = "No methods used yet"

//nolint:gochecknoglobals // Fixed lookup table
var methodLabels = map[api.Method]string{
	api.MethodNormal:           "Normal",
	api.MethodBusinessInsights: "Business Insights",
	api.MethodFrequency:        "Frequency",
	api.MethodTFIDF:            "TF-IDF",
	api.MethodHybrid:           "Hybrid",
}

// MethodLabel returns the display name of id. Unknown identifiers are upper-cased with
// their first underscore turned into a space.
func MethodLabel(id api.Method) string {
	if label, ok := methodLabels[id]; ok {
		return label
	}

	return strings.Replace(strings.ToUpper(string(id)), "_", " ", 1)
}

// BreakdownRow is one line of the method breakdown.
// Placeholder rows carry only a label.
type BreakdownRow struct {
	Method      api.Method
	Label       string
	Count       int
	Placeholder bool
}

// BuildBreakdown drops methods with a zero count and orders the rest by count, highest
// first. Equal counts keep the server's order.
func BuildBreakdown(counts []api.MethodCount) []BreakdownRow {
	used := make([]api.MethodCount, 0, len(counts))
	for _, c := range counts {
		if c.Count > 0 {
			used = append(used, c)
		}
	}

	if len(used) == 0 {
		return []BreakdownRow{{Label: NoMethodsUsedLabel, Placeholder: true}}
	}

	slices.SortStableFunc(used, func(a, b api.MethodCount) int {
		return b.Count - a.Count
	})

	rows := make([]BreakdownRow, 0, len(used))
	for _, c := range used {
		rows = append(rows, BreakdownRow{Method: c.Method, Label: MethodLabel(c.Method), Count: c.Count})
	}

	return rows
}

// AnalyticsView is the formatted content of the analytics overlay.
type AnalyticsView struct {
	TotalSummaries     string
	TotalTexts         string
	TotalGenerated     string
	AverageCompression string
	Breakdown          []BreakdownRow
}

// RenderAnalytics formats a snapshot for display.
func RenderAnalytics(snapshot api.AnalyticsSnapshot) AnalyticsView {
	return AnalyticsView{
		TotalSummaries:     humanize.Comma(int64(snapshot.TotalSummaries)),
		TotalTexts:         humanize.Comma(int64(snapshot.TotalTextsProcessed)),
		TotalGenerated:     humanize.Comma(int64(snapshot.TotalWordsGenerated)),
		AverageCompression: formatNumber(snapshot.AverageCompressionRatio) + "%",
		Breakdown:          BuildBreakdown(snapshot.MethodsUsed),
	}
}

// AnalyticsOverlay is the modal that shows usage statistics. It sits outside the view
// state machine: opening or closing it never changes the main panel.
type AnalyticsOverlay struct {
	open       bool
	generation uint64
	view       AnalyticsView
	loaded     bool
}

// Open shows the overlay and returns the generation of the fetch it needs. Every open
// fetches again; the previous content stays on screen until new data arrives.
func (o *AnalyticsOverlay) Open() uint64 {
	o.open = true
	o.generation++

	return o.generation
}

// Refetch starts a new fetch for an overlay that is already open.
func (o *AnalyticsOverlay) Refetch() uint64 {
	o.generation++

	return o.generation
}

// Close hides the overlay.
func (o *AnalyticsOverlay) Close() {
	o.open = false
}

// ClickBackground closes the overlay; a click on the backdrop dismisses it.
func (o *AnalyticsOverlay) ClickBackground() {
	o.Close()
}

// ClickContent does nothing; clicks inside the panel keep it open.
func (o *AnalyticsOverlay) ClickContent() {}

// Apply shows snapshot if it answers the latest fetch. Answers to earlier fetches are
// dropped and Apply returns false.
func (o *AnalyticsOverlay) Apply(generation uint64, snapshot api.AnalyticsSnapshot) bool {
	if generation != o.generation {
		return false
	}

	o.view = RenderAnalytics(snapshot)
	o.loaded = true

	return true
}

// IsOpen reports whether the overlay is shown.
func (o *AnalyticsOverlay) IsOpen() bool {
	return o.open
}

// Generation returns the generation of the latest fetch.
func (o *AnalyticsOverlay) Generation() uint64 {
	return o.generation
}

// View returns the displayed statistics; ok is false until a fetch has succeeded.
func (o *AnalyticsOverlay) View() (view AnalyticsView, ok bool) {
	return o.view, o.loaded
}
