package e2e

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hyperengineering/icp/internal/api"
	"github.com/hyperengineering/icp/internal/icp"
	"github.com/hyperengineering/icp/internal/metrics"
	"github.com/hyperengineering/icp/internal/types"
	"github.com/hyperengineering/icp/pkg/icpclient"
)

const testAPIKey = "e2e-test-api-key"

// startService runs the full router with metrics on an in-process server.
func startService(t *testing.T) *httptest.Server {
	t.Helper()
	old := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	t.Cleanup(func() { slog.SetDefault(old) })

	reg := prometheus.NewRegistry()
	h := api.NewHandler(testAPIKey, "e2e", metrics.MustNewMetrics(reg))
	srv := httptest.NewServer(api.NewRouter(h, api.MetricsEndpoint{Path: "/metrics", Gatherer: reg}))
	t.Cleanup(srv.Close)
	return srv
}

// allRequests enumerates every combination of the five required codes.
// Metabolic context and constraints vary with the index so the grid also
// covers those contributions.
func allRequests() []types.ClassifyRequest {
	constraintSets := [][]string{
		nil,
		{"avoid_stim"},
		{"minimal_pills", "frequent_travel"},
		{"sensitive_stomach", "avoid_stim", "minimal_pills", "frequent_travel"},
	}

	var out []types.ClassifyRequest
	for _, g := range icp.Goals() {
		for _, tf := range icp.TrainingFrequencies() {
			for _, a := range icp.AgeBands() {
				for _, s := range icp.SleepBaselines() {
					for _, c := range icp.CaffeineUses() {
						i := len(out)
						out = append(out, types.ClassifyRequest{
							Goal:              string(g),
							TrainingFrequency: string(tf),
							AgeBand:           string(a),
							SleepBaseline:     string(s),
							CaffeineUse:       string(c),
							MetabolicContext:  i%3 == 0,
							Constraints:       constraintSets[(i/7)%len(constraintSets)],
						})
					}
				}
			}
		}
	}
	return out
}

func toJSONL(t *testing.T, reqs []types.ClassifyRequest) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for _, r := range reqs {
		if err := enc.Encode(r); err != nil {
			t.Fatalf("encode request: %v", err)
		}
	}
	return &buf
}

func clientInput(r types.ClassifyRequest) icpclient.Input {
	return icpclient.Input{
		Goal:              r.Goal,
		TrainingFrequency: r.TrainingFrequency,
		AgeBand:           r.AgeBand,
		SleepBaseline:     r.SleepBaseline,
		CaffeineUse:       r.CaffeineUse,
		MetabolicContext:  r.MetabolicContext,
		Constraints:       r.Constraints,
	}
}

// wireResult converts a local result to its client-side shape.
func wireResult(res icp.Result) *icpclient.Result {
	scores := make(map[string]int, len(res.Scores))
	for c, v := range res.Scores {
		scores[string(c)] = v
	}
	return &icpclient.Result{
		PrimaryICP: string(res.Primary),
		Scores:     scores,
		Confidence: string(res.Confidence),
	}
}

func scrape(t *testing.T, srv *httptest.Server) string {
	t.Helper()
	resp, err := http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET /metrics status = %d, want 200", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read /metrics: %v", err)
	}
	return string(body)
}
