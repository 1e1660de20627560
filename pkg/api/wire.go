package api

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type summarizeWire struct {
	Success          bool         `json:"success"`
	Message          string       `json:"message"`
	Summary          string       `json:"summary"`
	OriginalLength   int          `json:"original_length"`
	SummaryLength    int          `json:"summary_length"`
	CompressionRatio float64      `json:"compression_ratio"`
	Keywords         []string     `json:"keywords"`
	Readability      *Readability `json:"readability"`
}

func (w summarizeWire) result() SummarizeResult {
	if !w.Success {
		return SummarizeResult{Failure: &Failure{Message: w.Message}}
	}

	return SummarizeResult{Success: &Success{
		Summary:          w.Summary,
		OriginalLength:   w.OriginalLength,
		SummaryLength:    w.SummaryLength,
		CompressionRatio: w.CompressionRatio,
		Keywords:         w.Keywords,
		Readability:      w.Readability,
	}}
}

type analyticsWire struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Stats   *statsWire `json:"stats"`
}

type statsWire struct {
	TotalSummaries          int           `json:"total_summaries"`
	TotalTextsProcessed     int           `json:"total_texts_processed"`
	TotalWordsProcessed     int           `json:"total_words_processed"`
	TotalWordsGenerated     int           `json:"total_words_generated"`
	AverageCompressionRatio float64       `json:"average_compression_ratio"`
	Sessions                int           `json:"sessions"`
	MethodsUsed             orderedCounts `json:"methods_used"`
}

func (s statsWire) snapshot() AnalyticsSnapshot {
	return AnalyticsSnapshot{
		TotalSummaries:          s.TotalSummaries,
		TotalTextsProcessed:     s.TotalTextsProcessed,
		TotalWordsProcessed:     s.TotalWordsProcessed,
		TotalWordsGenerated:     s.TotalWordsGenerated,
		AverageCompressionRatio: s.AverageCompressionRatio,
		Sessions:                s.Sessions,
		MethodsUsed:             []MethodCount(s.MethodsUsed),
	}
}

// orderedCounts decodes a JSON object of method → count keeping the key order of the
// document, which a Go map would lose. Ties in the breakdown sort fall back to this order.
type orderedCounts []MethodCount

func (o *orderedCounts) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("methods_used: expected object, got %v", tok)
	}

	counts := make([]MethodCount, 0)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}

		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("methods_used: expected key, got %v", keyTok)
		}

		var count int
		if err := dec.Decode(&count); err != nil {
			return fmt.Errorf("methods_used[%s]: %w", key, err)
		}

		counts = append(counts, MethodCount{Method: Method(key), Count: count})
	}

	*o = counts

	return nil
}

type batchWire struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	Total     int               `json:"total"`
	Processed int               `json:"processed"`
	Results   []json.RawMessage `json:"results"`
}
