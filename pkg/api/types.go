package api

// Method identifies which backend summarization strategy to apply.
// The set can grow server-side; unknown values must be tolerated.
type Method string

// Methods the client offers for selection.
const (
	MethodNormal           Method = "normal"
	MethodBusinessInsights Method = "business_insights"
)

// Legacy methods the server may still report in analytics.
const (
	MethodFrequency Method = "frequency"
	MethodTFIDF     Method = "tfidf"
	MethodHybrid    Method = "hybrid"
)

// DisplayedMethods returns the selectable methods in display order.
func DisplayedMethods() []Method {
	return []Method{MethodNormal, MethodBusinessInsights}
}

// SummarizeRequest is the body of POST /api/summarize.
// It is built fresh for each submit and never modified after sending.
type SummarizeRequest struct {
	Text   string `json:"text"`
	Ratio  int    `json:"ratio"`
	Method Method `json:"method"`
}

// Readability holds backend-computed reading difficulty indicators.
type Readability struct {
	AvgWordsPerSentence float64 `json:"avg_words_per_sentence"`
	AvgCharsPerWord     float64 `json:"avg_chars_per_word"`
	FleschKincaidGrade  float64 `json:"flesch_kincaid_grade"`
	ReadingTimeMinutes  float64 `json:"reading_time_minutes"`
}

// Success is a successful summarize answer.
// Keywords is nil when the server omitted the field and non-nil (possibly empty) when it
// sent a list. Readability is nil when omitted.
type Success struct {
	Summary          string
	OriginalLength   int
	SummaryLength    int
	CompressionRatio float64
	Keywords         []string
	Readability      *Readability
}

// HasKeywords reports whether the server sent a keyword list.
func (s Success) HasKeywords() bool {
	return s.Keywords != nil
}

// Failure is a well-formed `success: false` answer. Message may be empty.
type Failure struct {
	Message string
}

// SummarizeResult is the tagged summarize answer: exactly one of Success and Failure is set.
type SummarizeResult struct {
	Success *Success
	Failure *Failure
}

// OK reports whether the result is the success variant.
func (r SummarizeResult) OK() bool {
	return r.Success != nil
}

// MethodCount is one entry of the analytics method breakdown, in server order.
type MethodCount struct {
	Method Method
	Count  int
}

// AnalyticsSnapshot is the aggregate usage reported by GET /api/analytics.
type AnalyticsSnapshot struct {
	TotalSummaries          int
	TotalTextsProcessed     int
	TotalWordsProcessed     int
	TotalWordsGenerated     int
	AverageCompressionRatio float64
	Sessions                int
	MethodsUsed             []MethodCount
}

// Health is the answer of GET /api/health.
type Health struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// Healthy reports whether the server declared itself healthy.
func (h Health) Healthy() bool {
	return h.Status == "healthy"
}

// BatchRequest is the body of POST /api/batch-summarize.
type BatchRequest struct {
	Texts  []string `json:"texts"`
	Ratio  int      `json:"ratio"`
	Method Method   `json:"method"`
}

// BatchItem is the per-text outcome of a batch request.
// Index refers to the position in BatchRequest.Texts.
type BatchItem struct {
	Index  int
	Result SummarizeResult
}

// BatchResult is the answer of POST /api/batch-summarize.
// When Failure is set the whole batch was rejected and Items is empty.
type BatchResult struct {
	Total     int
	Processed int
	Items     []BatchItem
	Failure   *Failure
}

// MaxBatchSize is the largest number of texts the server accepts in one batch.
const MaxBatchSize = 50
