package verify

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/metrics-lab/staticpress/pkg/browser"
	"github.com/metrics-lab/staticpress/pkg/measure"
	"github.com/metrics-lab/staticpress/pkg/pipeline"
)

// PageInteractions lists the interactive elements detected on one
// page during the crawl.
type PageInteractions struct {
	Path     string
	Elements []browser.InteractiveElement
}

// Input is everything the suite needs for one verification pass.
type Input struct {
	SourceURL   string
	EdgeURL     string
	Workspace   *pipeline.Workspace
	Pages       []string
	Interactive []PageInteractions
	Strategies  []string
}

// Suite runs the four verification checks.
type Suite struct {
	renderer    browser.Renderer
	measurer    measure.Measurer
	httpClient  *http.Client
	concurrency int
	logger      *slog.Logger
}

// NewSuite wires a verification suite.
func NewSuite(renderer browser.Renderer, measurer measure.Measurer, concurrency int) *Suite {
	if concurrency <= 0 {
		concurrency = 4
	}
	return &Suite{
		renderer:    renderer,
		measurer:    measurer,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		concurrency: concurrency,
		logger:      slog.With("component", "verify"),
	}
}

// Run executes visual, functional, link and performance checks
// concurrently and aggregates the verdict.
func (s *Suite) Run(ctx context.Context, in *Input) (*SuiteResult, error) {
	result := &SuiteResult{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		visual, err := s.runVisual(gctx, in)
		result.Visual = visual
		return err
	})
	g.Go(func() error {
		functional, err := s.runFunctional(gctx, in)
		result.Functional = functional
		return err
	})
	g.Go(func() error {
		links, err := s.runLinks(gctx, in)
		result.Links = links
		return err
	})
	g.Go(func() error {
		perf, err := s.runPerformance(gctx, in)
		result.Performance = perf
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result.Verdict = aggregate(result)
	s.logger.Info("Verification complete",
		"verdict", result.Verdict,
		"visual", len(result.Visual),
		"functional", len(result.Functional),
		"broken_links", len(result.Links))
	return result, nil
}

// runPerformance measures origin and edge per strategy and flags
// regressions: the optimized copy scoring below the origin.
func (s *Suite) runPerformance(ctx context.Context, in *Input) ([]PerformanceResult, error) {
	strategies := in.Strategies
	if len(strategies) == 0 {
		strategies = measure.Strategies
	}

	var results []PerformanceResult
	for _, strategy := range strategies {
		res := PerformanceResult{Strategy: strategy}

		var original, optimized *measure.Result
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			original, err = s.measurer.Measure(gctx, in.SourceURL, strategy)
			return err
		})
		g.Go(func() error {
			var err error
			optimized, err = s.measurer.Measure(gctx, in.EdgeURL, strategy)
			return err
		})
		if err := g.Wait(); err != nil {
			// Measurement flakiness should not sink the suite; report
			// and move on.
			res.Error = err.Error()
			results = append(results, res)
			continue
		}

		res.OriginalScore = original.Score
		res.OptimizedScore = optimized.Score
		res.Regressed = optimized.Score < original.Score
		results = append(results, res)
	}
	return results, nil
}
