package measure

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metrics-lab/staticpress/pkg/upstream"
)

const sampleResponse = `{
  "lighthouseResult": {
    "categories": {"performance": {"score": 0.62}},
    "audits": {
      "largest-contentful-paint": {"numericValue": 3400},
      "first-contentful-paint": {"numericValue": 1800},
      "cumulative-layout-shift": {"numericValue": 0.12},
      "total-blocking-time": {"numericValue": 450},
      "server-response-time": {"numericValue": 600},
      "total-byte-weight": {"numericValue": 2400000}
    }
  }
}`

func TestMeasure_ParsesScoreAndVitals(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(sampleResponse))
	}))
	defer srv.Close()

	m := NewHTTPMeasurer(srv.URL, "key-1")
	result, err := m.Measure(context.Background(), "https://example.com", "mobile")

	require.NoError(t, err)
	assert.InDelta(t, 62.0, result.Score, 0.001)
	assert.InDelta(t, 3400.0, result.Vitals["lcp_ms"], 0.001)
	assert.InDelta(t, 0.12, result.Vitals["cls"], 0.001)
	assert.Equal(t, int64(2400000), result.TotalBytes)
	assert.NotNil(t, result.Raw)
	assert.Equal(t, []string{"https://example.com"}, gotQuery["url"])
	assert.Equal(t, []string{"mobile"}, gotQuery["strategy"])
	assert.Equal(t, []string{"key-1"}, gotQuery["key"])
}

func TestMeasure_RateLimitIsTransient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	m := NewHTTPMeasurer(srv.URL, "")
	_, err := m.Measure(context.Background(), "https://example.com", "desktop")

	require.Error(t, err)
	assert.True(t, upstream.IsTransient(err))
}

func TestMeasure_MalformedResponseIsFatal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	m := NewHTTPMeasurer(srv.URL, "")
	_, err := m.Measure(context.Background(), "https://example.com", "mobile")

	require.Error(t, err)
	assert.False(t, upstream.IsTransient(err))
}

func TestImprovements(t *testing.T) {
	original := &Result{
		Score:  50,
		Vitals: map[string]float64{"lcp_ms": 4000, "tbt_ms": 500},
	}
	optimized := &Result{
		Score:  90,
		Vitals: map[string]float64{"lcp_ms": 2000, "tbt_ms": 100},
	}

	imp := Improvements(original, optimized)

	assert.InDelta(t, 80.0, imp["score"], 0.001)   // 50 → 90
	assert.InDelta(t, 50.0, imp["lcp_ms"], 0.001)  // halved
	assert.InDelta(t, 80.0, imp["tbt_ms"], 0.001)  // 500 → 100
}

func TestPayloadSavings(t *testing.T) {
	assert.Equal(t, int64(1000), PayloadSavings(&Result{TotalBytes: 3000}, &Result{TotalBytes: 2000}))
	assert.Equal(t, int64(0), PayloadSavings(&Result{TotalBytes: 1000}, &Result{TotalBytes: 2000}))
}
