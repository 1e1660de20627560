package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/atotto/clipboard"
	"github.com/shopspring/decimal"

	"github.com/joe/summarize-client/pkg/api"
)

// Exported constants.
const (
	// CopyFeedbackDuration is how long the copy confirmation stays visible.
	CopyFeedbackDuration = 2 * time.Second
	// DownloadDateLayout formats the date in download file names.
	DownloadDateLayout = "2006-01-02"
)

// ErrNothingRendered is returned by copy and download before any summary was rendered.
var ErrNothingRendered = errors.New("no summary has been rendered yet")

// Clipboard receives copied text.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the operating system clipboard.
type SystemClipboard struct{}

// WriteAll implements Clipboard
func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// ReadabilityItem is one labelled readability value, already formatted.
type ReadabilityItem struct {
	Label string
	Value string
}

// RenderedResult is what the results view displays. Numbers are formatted from the
// server's values as given; nothing is recomputed here.
type RenderedResult struct {
	Summary          string
	OriginalLength   string
	SummaryLength    string
	CompressionRatio string
	Keywords         []string
	MetricsVisible   bool
	Readability      []ReadabilityItem
}

// ResultRenderer keeps the last rendered result and backs copy and download.
type ResultRenderer struct {
	result      RenderedResult
	rendered    bool
	copyToken   uint64
	copyShowing bool
}

// Render replaces the displayed result with success. The keyword panel is shown when the
// server sent a keyword list and hidden otherwise; the readability block is cleared when
// readability is absent.
func (r *ResultRenderer) Render(success api.Success) RenderedResult {
	result := RenderedResult{
		Summary:          success.Summary,
		OriginalLength:   strconv.Itoa(success.OriginalLength),
		SummaryLength:    strconv.Itoa(success.SummaryLength),
		CompressionRatio: formatNumber(success.CompressionRatio),
	}

	if success.HasKeywords() {
		result.Keywords = append([]string{}, success.Keywords...)
		result.MetricsVisible = true
	}

	if success.Readability != nil {
		result.Readability = readabilityItems(*success.Readability)
	}

	r.result = result
	r.rendered = true

	return result
}

// Result returns the last rendered result and whether anything has been rendered.
func (r *ResultRenderer) Result() (RenderedResult, bool) {
	return r.result, r.rendered
}

// Copy writes the rendered summary to clip and starts the confirmation window. The
// returned token identifies this copy for ExpireCopyFeedback.
func (r *ResultRenderer) Copy(clip Clipboard) (uint64, error) {
	if !r.rendered {
		return 0, ErrNothingRendered
	}

	if err := clip.WriteAll(r.result.Summary); err != nil {
		return 0, fmt.Errorf("copy summary: %w", err)
	}

	r.copyToken++
	r.copyShowing = true

	return r.copyToken, nil
}

// ExpireCopyFeedback ends the confirmation started by the copy with token. Expiry of an
// older copy is ignored so a repeated copy gets its full window.
func (r *ResultRenderer) ExpireCopyFeedback(token uint64) {
	if token == r.copyToken {
		r.copyShowing = false
	}
}

// CopyFeedback reports whether the copy confirmation is showing.
func (r *ResultRenderer) CopyFeedback() bool {
	return r.copyShowing
}

// Download writes the rendered summary to dir as summary-YYYY-MM-DD.txt using the UTC
// date of now, replacing any file of that name. It returns the written path.
func (r *ResultRenderer) Download(dir string, now time.Time) (string, error) {
	if !r.rendered {
		return "", ErrNothingRendered
	}

	path := filepath.Join(dir, DownloadFileName(now))

	if err := os.WriteFile(path, []byte(r.result.Summary), 0o600); err != nil {
		return "", fmt.Errorf("download summary: %w", err)
	}

	return path, nil
}

// DownloadFileName returns summary-YYYY-MM-DD.txt for the UTC date of now.
func DownloadFileName(now time.Time) string {
	return "summary-" + now.UTC().Format(DownloadDateLayout) + ".txt"
}

func readabilityItems(m api.Readability) []ReadabilityItem {
	return []ReadabilityItem{
		{Label: "Avg Words/Sent", Value: formatOneDecimal(m.AvgWordsPerSentence)},
		{Label: "Avg Chars/Word", Value: formatOneDecimal(m.AvgCharsPerWord)},
		{Label: "Reading Grade", Value: formatOneDecimal(m.FleschKincaidGrade)},
		{Label: "Reading Time", Value: formatOneDecimal(m.ReadingTimeMinutes) + " min"},
	}
}

// formatNumber prints v the way it appeared on the wire: 42 stays "42", 33.3 stays "33.3".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatOneDecimal rounds the decimal value the server sent half away from zero:
// 12.25 shows as "12.3" and 0.25 as "0.3".
func formatOneDecimal(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(1)
}
