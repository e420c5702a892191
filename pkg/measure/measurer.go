// Package measure calls the external performance measurement endpoint
// and computes before/after comparisons.
package measure

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/metrics-lab/staticpress/pkg/upstream"
)

// Strategies the measurement endpoint supports.
var Strategies = []string{"mobile", "desktop"}

// Result is one measurement of one URL.
type Result struct {
	Score  float64            `json:"score"`  // 0-100 performance score
	Vitals map[string]float64 `json:"vitals"` // lcp_ms, fcp_ms, cls, tbt_ms, ttfb_ms
	// TotalBytes is the page's transfer size, for payload savings.
	TotalBytes int64          `json:"totalBytes"`
	Raw        map[string]any `json:"raw,omitempty"`
}

// Measurer is the measurement endpoint contract.
type Measurer interface {
	Measure(ctx context.Context, pageURL, strategy string) (*Result, error)
}

// HTTPMeasurer calls a PageSpeed-style endpoint.
type HTTPMeasurer struct {
	endpoint string
	apiKey   string
	client   *http.Client
	logger   *slog.Logger
}

// NewHTTPMeasurer creates a measurer against the given endpoint.
func NewHTTPMeasurer(endpoint, apiKey string) *HTTPMeasurer {
	return &HTTPMeasurer{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: 2 * time.Minute},
		logger:   slog.With("component", "measure"),
	}
}

// Measure fetches one measurement. Timeouts, rate limits and 5xx are
// transient; malformed responses are fatal.
func (m *HTTPMeasurer) Measure(ctx context.Context, pageURL, strategy string) (*Result, error) {
	q := url.Values{}
	q.Set("url", pageURL)
	q.Set("strategy", strategy)
	q.Set("category", "performance")
	if m.apiKey != "" {
		q.Set("key", m.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build measurement request: %w", err)
	}

	resp, err := m.client.Do(req)
	if err != nil {
		return nil, upstream.Transient(fmt.Errorf("measurement fetch failed: %w", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 16<<20))
	if err != nil {
		return nil, upstream.Transient(fmt.Errorf("failed to read measurement response: %w", err))
	}
	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("measurement endpoint returned %d for %s", resp.StatusCode, pageURL)
		if upstream.RetryableStatus(resp.StatusCode) {
			return nil, upstream.Transient(err)
		}
		return nil, err
	}

	result, err := parseResponse(body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse measurement for %s: %w", pageURL, err)
	}
	m.logger.Debug("Measurement complete", "url", pageURL, "strategy", strategy, "score", result.Score)
	return result, nil
}

// pagespeedResponse mirrors the subset of the endpoint's JSON we use.
type pagespeedResponse struct {
	LighthouseResult struct {
		Categories struct {
			Performance struct {
				Score float64 `json:"score"` // 0-1
			} `json:"performance"`
		} `json:"categories"`
		Audits map[string]struct {
			NumericValue float64 `json:"numericValue"`
		} `json:"audits"`
	} `json:"lighthouseResult"`
}

func parseResponse(body []byte) (*Result, error) {
	var parsed pagespeedResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, err
	}

	audits := parsed.LighthouseResult.Audits
	vitals := map[string]float64{}
	for name, key := range map[string]string{
		"lcp_ms":  "largest-contentful-paint",
		"fcp_ms":  "first-contentful-paint",
		"cls":     "cumulative-layout-shift",
		"tbt_ms":  "total-blocking-time",
		"ttfb_ms": "server-response-time",
	} {
		if a, ok := audits[key]; ok {
			vitals[name] = a.NumericValue
		}
	}

	var totalBytes int64
	if a, ok := audits["total-byte-weight"]; ok {
		totalBytes = int64(a.NumericValue)
	}

	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}

	return &Result{
		Score:      parsed.LighthouseResult.Categories.Performance.Score * 100,
		Vitals:     vitals,
		TotalBytes: totalBytes,
		Raw:        raw,
	}, nil
}

// Improvements computes per-metric improvement percentages from
// original to optimized. For timing metrics lower is better; the
// percentage is the reduction relative to the original.
func Improvements(original, optimized *Result) map[string]float64 {
	out := map[string]float64{}
	if original.Score > 0 {
		out["score"] = (optimized.Score - original.Score) / original.Score * 100
	}
	for name, before := range original.Vitals {
		after, ok := optimized.Vitals[name]
		if !ok || before == 0 {
			continue
		}
		out[name] = (before - after) / before * 100
	}
	return out
}

// PayloadSavings returns the transfer-size reduction in bytes, never
// negative.
func PayloadSavings(original, optimized *Result) int64 {
	saved := original.TotalBytes - optimized.TotalBytes
	if saved < 0 {
		return 0
	}
	return saved
}
