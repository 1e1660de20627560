// Package headless summarizes files from the command line without starting the UI.
package headless

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/joe/summarize-client/pkg/api"
	errs "github.com/joe/summarize-client/pkg/errors"
)

// Summarizer is the part of the api client headless mode needs.
type Summarizer interface {
	Summarize(ctx context.Context, req api.SummarizeRequest) (api.SummarizeResult, error)
	BatchSummarize(ctx context.Context, req api.BatchRequest) (api.BatchResult, error)
}

// Runner summarizes a list of files and prints one report block per file.
type Runner struct {
	Client   Summarizer
	Out      io.Writer
	Ratio    int
	Method   api.Method
	Endpoint string
	Logger   *slog.Logger
	Enricher errs.Enricher

	// BatchSize caps texts per batch request. Zero means api.MaxBatchSize.
	BatchSize int
}

// Report is the outcome for one file. Exactly one of Success and Err is set.
type Report struct {
	Path    string
	Success *api.Success
	Err     error
}

// Run expands inputs, summarizes every file and writes the reports. It returns the
// number of files that failed; err is only set when nothing could be attempted.
func (r *Runner) Run(ctx context.Context, inputs []string) (int, error) {
	files, err := ExpandInputs(inputs)
	if err != nil {
		return 0, err
	}

	reports := r.Summarize(ctx, files)

	failed := 0
	for _, report := range reports {
		if report.Err != nil {
			failed++
		}

		r.write(report)
	}

	fmt.Fprintf(r.out(), "%d of %d files summarized\n", len(reports)-failed, len(reports))

	return failed, nil
}

// Summarize reads and summarizes files. A single file goes through the summarize
// endpoint; more than one go through batch requests.
func (r *Runner) Summarize(ctx context.Context, files []string) []Report {
	reports := make([]Report, len(files))
	texts := make([]string, 0, len(files))
	pending := make([]int, 0, len(files))

	for i, path := range files {
		reports[i].Path = path

		data, err := os.ReadFile(path)
		if err != nil {
			reports[i].Err = fmt.Errorf("reading file: %w", err)
			continue
		}

		text := strings.TrimSpace(string(data))
		if text == "" {
			reports[i].Err = errs.NewValidationError(errs.EmptyInputMessage)
			continue
		}

		texts = append(texts, text)
		pending = append(pending, i)
	}

	if len(texts) == 1 {
		r.summarizeOne(ctx, texts[0], &reports[pending[0]])
		return reports
	}

	size := r.BatchSize
	if size <= 0 || size > api.MaxBatchSize {
		size = api.MaxBatchSize
	}

	for start := 0; start < len(texts); start += size {
		end := min(start+size, len(texts))
		r.summarizeBatch(ctx, texts[start:end], pending[start:end], reports)
	}

	return reports
}

func (r *Runner) summarizeOne(ctx context.Context, text string, report *Report) {
	result, err := r.Client.Summarize(ctx, api.SummarizeRequest{Text: text, Ratio: r.Ratio, Method: r.Method})
	if err != nil {
		report.Err = r.enricher().Enrich(err, r.Endpoint)
		return
	}

	r.apply(result, report)
}

func (r *Runner) summarizeBatch(ctx context.Context, texts []string, indexes []int, reports []Report) {
	r.logger().Debug("sending batch", "texts", len(texts))

	result, err := r.Client.BatchSummarize(ctx, api.BatchRequest{Texts: texts, Ratio: r.Ratio, Method: r.Method})
	if err != nil {
		enriched := r.enricher().Enrich(err, r.Endpoint)
		for _, i := range indexes {
			reports[i].Err = enriched
		}

		return
	}

	if result.Failure != nil {
		failure := errs.NewApplicationError(result.Failure.Message)
		for _, i := range indexes {
			reports[i].Err = failure
		}

		return
	}

	answered := make([]bool, len(indexes))

	for _, item := range result.Items {
		if item.Index < 0 || item.Index >= len(indexes) {
			r.logger().Warn("batch item out of range", "index", item.Index)
			continue
		}

		answered[item.Index] = true
		r.apply(item.Result, &reports[indexes[item.Index]])
	}

	for pos, ok := range answered {
		if !ok {
			reports[indexes[pos]].Err = errs.NewApplicationError("")
		}
	}
}

func (r *Runner) apply(result api.SummarizeResult, report *Report) {
	switch {
	case result.Success != nil:
		report.Success = result.Success
	case result.Failure != nil:
		report.Err = errs.NewApplicationError(result.Failure.Message)
	default:
		report.Err = errs.NewApplicationError("")
	}
}

func (r *Runner) write(report Report) {
	out := r.out()

	fmt.Fprintf(out, "== %s ==\n", report.Path)

	if report.Err != nil {
		fmt.Fprintf(out, "error: %s\n\n", report.Err)
		return
	}

	s := report.Success
	fmt.Fprintf(out, "%s\n", s.Summary)
	fmt.Fprintf(out, "-- %s → %s words, compression %s%%\n",
		humanize.Comma(int64(s.OriginalLength)),
		humanize.Comma(int64(s.SummaryLength)),
		humanize.FtoaWithDigits(s.CompressionRatio, 1),
	)

	if len(s.Keywords) > 0 {
		fmt.Fprintf(out, "-- keywords: %s\n", strings.Join(s.Keywords, ", "))
	}

	fmt.Fprintln(out)
}

func (r *Runner) out() io.Writer {
	if r.Out == nil {
		return io.Discard
	}

	return r.Out
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}

	return r.Logger
}

func (r *Runner) enricher() errs.Enricher {
	if r.Enricher == nil {
		r.Enricher = errs.NewEnricher()
	}

	return r.Enricher
}
