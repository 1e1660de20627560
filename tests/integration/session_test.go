//go:build integration

package integration_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/summarize-client/internal/session"
	"github.com/joe/summarize-client/pkg/api"
	errs "github.com/joe/summarize-client/pkg/errors"
	"github.com/joe/summarize-client/pkg/prefs"
)

// fakeServer is a small in-memory stand-in for the summarization backend.
type fakeServer struct {
	mu     sync.Mutex
	counts map[string]int
	order  []string
	total  int
}

func newFakeServer() *fakeServer {
	return &fakeServer{counts: make(map[string]int)}
}

func (f *fakeServer) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/summarize", func(w http.ResponseWriter, r *http.Request) {
		var req api.SummarizeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Text) < 10 {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"success":false,"message":"Text too short"}`))

			return
		}

		f.mu.Lock()
		if f.counts[string(req.Method)] == 0 {
			f.order = append(f.order, string(req.Method))
		}
		f.counts[string(req.Method)]++
		f.total++
		f.mu.Unlock()

		_ = json.NewEncoder(w).Encode(map[string]any{
			"success":           true,
			"summary":           "Short version.",
			"original_length":   len(req.Text),
			"summary_length":    14,
			"compression_ratio": 33.3,
			"keywords":          []string{"short"},
			"readability": map[string]any{
				"avg_words_per_sentence": 12.25,
				"avg_chars_per_word":     4.5,
				"flesch_kincaid_grade":   8,
				"reading_time_minutes":   0.5,
			},
		})
	})

	mux.HandleFunc("GET /api/analytics", func(w http.ResponseWriter, _ *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()

		_, _ = w.Write([]byte(`{"success":true,"stats":{"total_summaries":`))
		_ = json.NewEncoder(w).Encode(f.total)
		_, _ = w.Write([]byte(`,"total_texts_processed":0,"total_words_processed":0,"total_words_generated":0,` +
			`"average_compression_ratio":33.3,"sessions":1,"methods_used":{`))

		for i, method := range f.order {
			if i > 0 {
				_, _ = w.Write([]byte(","))
			}

			_ = json.NewEncoder(w).Encode(method)
			_, _ = w.Write([]byte(":"))
			_ = json.NewEncoder(w).Encode(f.counts[method])
		}

		_, _ = w.Write([]byte("}}}"))
	})

	mux.HandleFunc("POST /api/analytics/reset", func(w http.ResponseWriter, _ *http.Request) {
		f.mu.Lock()
		f.counts = make(map[string]int)
		f.order = nil
		f.total = 0
		f.mu.Unlock()

		_, _ = w.Write([]byte(`{"success":true,"message":"Analytics reset"}`))
	})

	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"healthy","version":"1.0.0"}`))
	})

	return mux
}

// drive dispatches ev and runs every resulting command synchronously, the way the UI
// would once the commands complete. Timer commands are skipped.
func drive(ctx context.Context, s *session.Session, client *api.Client, ev session.Event) {
	for _, command := range s.Dispatch(ev) {
		switch c := command.(type) {
		case session.SummarizeCommand:
			result, err := client.Summarize(ctx, c.Request)
			drive(ctx, s, client, session.ResponseReceived{Generation: c.Generation, Result: result, Err: err})
		case session.FetchAnalyticsCommand:
			snapshot, err := client.Analytics(ctx)
			drive(ctx, s, client, session.AnalyticsReceived{Generation: c.Generation, Snapshot: snapshot, Err: err})
		case session.ResetAnalyticsCommand:
			drive(ctx, s, client, session.AnalyticsResetCompleted{Err: client.ResetAnalytics(ctx)})
		case session.CheckHealthCommand:
			health, err := client.Health(ctx)
			drive(ctx, s, client, session.HealthReceived{Health: health, Err: err})
		}
	}
}

func newSession(t *testing.T) (*session.Session, *api.Client, string) {
	t.Helper()

	server := httptest.NewServer(newFakeServer().handler())
	t.Cleanup(server.Close)

	client, err := api.NewClient(server.URL, api.WithTimeout(5*time.Second))
	if err != nil {
		t.Fatal(err)
	}

	downloads := t.TempDir()

	s := session.New(session.Options{
		Endpoint:    server.URL,
		DownloadDir: downloads,
		ThemeStore:  prefs.NewStore(filepath.Join(t.TempDir(), "prefs.yaml")),
		Now:         func() time.Time { return time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC) },
	})

	return s, client, downloads
}

func TestIntegration_SummarizeRoundTrip(t *testing.T) {
	g := NewWithT(t)
	ctx := context.Background()
	s, client, downloads := newSession(t)

	for _, command := range s.Start() {
		if _, ok := command.(session.CheckHealthCommand); ok {
			health, err := client.Health(ctx)
			drive(ctx, s, client, session.HealthReceived{Health: health, Err: err})
		}
	}
	g.Expect(s.ServerStatus()).To(Equal("healthy v1.0.0"))

	drive(ctx, s, client, session.TextChanged{Text: "The quarterly results were strong. Revenue grew."})
	drive(ctx, s, client, session.SubmitRequested{})

	g.Expect(s.State()).To(Equal(session.StateResults))

	result, ok := s.Result()
	g.Expect(ok).To(BeTrue())
	g.Expect(result.Summary).To(Equal("Short version."))
	g.Expect(result.CompressionRatio).To(Equal("33.3"))
	g.Expect(result.Keywords).To(Equal([]string{"short"}))
	g.Expect(result.Readability).To(HaveLen(4))

	drive(ctx, s, client, session.DownloadRequested{})
	data, err := os.ReadFile(filepath.Join(downloads, "summary-2026-03-04.txt"))
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(string(data)).To(Equal("Short version."))
}

func TestIntegration_ServerFailureMessage(t *testing.T) {
	g := NewWithT(t)
	ctx := context.Background()
	s, client, _ := newSession(t)

	drive(ctx, s, client, session.TextChanged{Text: "tiny"})
	drive(ctx, s, client, session.SubmitRequested{})

	g.Expect(s.State()).To(Equal(session.StateError))
	g.Expect(s.ErrorMessage()).To(Equal("Text too short"))
}

func TestIntegration_UnreachableServer(t *testing.T) {
	g := NewWithT(t)
	ctx := context.Background()

	client, err := api.NewClient("http://127.0.0.1:1", api.WithTimeout(2*time.Second))
	g.Expect(err).ToNot(HaveOccurred())

	s := session.New(session.Options{Endpoint: "http://127.0.0.1:1"})
	drive(ctx, s, client, session.TextChanged{Text: "Something worth summarizing."})
	drive(ctx, s, client, session.SubmitRequested{})

	g.Expect(s.State()).To(Equal(session.StateError))
	g.Expect(s.ErrorMessage()).To(Equal(errs.TransportMessage))
}

func TestIntegration_AnalyticsLifecycle(t *testing.T) {
	g := NewWithT(t)
	ctx := context.Background()
	s, client, _ := newSession(t)

	drive(ctx, s, client, session.TextChanged{Text: "A long enough text to summarize."})
	drive(ctx, s, client, session.SubmitRequested{})
	drive(ctx, s, client, session.MethodSelected{Method: api.MethodBusinessInsights})
	drive(ctx, s, client, session.SubmitRequested{})
	drive(ctx, s, client, session.SubmitRequested{})

	drive(ctx, s, client, session.AnalyticsRequested{})

	view, ok := s.Analytics()
	g.Expect(ok).To(BeTrue())
	g.Expect(view.TotalSummaries).To(Equal("3"))
	g.Expect(view.Breakdown).To(HaveLen(2))
	g.Expect(view.Breakdown[0].Label).To(Equal("Business Insights"))
	g.Expect(view.Breakdown[0].Count).To(Equal(2))

	drive(ctx, s, client, session.AnalyticsResetRequested{})

	view, _ = s.Analytics()
	g.Expect(view.TotalSummaries).To(Equal("0"))
	g.Expect(view.Breakdown).To(HaveLen(1))
	g.Expect(view.Breakdown[0].Placeholder).To(BeTrue())

	drive(ctx, s, client, session.AnalyticsClicked{Background: true})
	g.Expect(s.AnalyticsOpen()).To(BeFalse())
	g.Expect(s.State()).To(Equal(session.StateResults))
}
