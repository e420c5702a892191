package pipeline

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/metrics-lab/staticpress/ent/measurementcomparison"
	"github.com/metrics-lab/staticpress/pkg/measure"
	"github.com/metrics-lab/staticpress/pkg/services"
)

// measurementStrategy maps a settings strategy onto the stored enum.
func measurementStrategy(s string) measurementcomparison.Strategy {
	if s == "desktop" {
		return measurementcomparison.StrategyDesktop
	}
	return measurementcomparison.StrategyMobile
}

// errNoEdgeURL means measure ran before any deploy recorded a URL.
var errNoEdgeURL = errors.New("site has no edge url to measure")

// runMeasure compares the origin site against the deployed edge copy
// for each configured strategy and records a comparison row.
func (e *Engine) runMeasure(ctx context.Context, bc *buildCtx) error {
	if bc.site.EdgeURL == nil || *bc.site.EdgeURL == "" {
		return errNoEdgeURL
	}
	edgeURL := *bc.site.EdgeURL

	strategies := stringsSetting(bc.settings, "measure", "strategies")
	if len(strategies) == 0 {
		strategies = measure.Strategies
	}

	for _, strategy := range strategies {
		if err := ctx.Err(); err != nil {
			return err
		}

		var original, optimized *measure.Result
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			original, err = e.measurer.Measure(gctx, bc.site.SourceURL, strategy)
			return err
		})
		g.Go(func() error {
			var err error
			optimized, err = e.measurer.Measure(gctx, edgeURL, strategy)
			return err
		})
		if err := g.Wait(); err != nil {
			return err
		}

		row, err := e.client.MeasurementComparison.Create().
			SetID(services.NewID("meas")).
			SetSiteID(bc.site.ID).
			SetBuildID(bc.build.ID).
			SetStrategy(measurementStrategy(strategy)).
			SetOriginalScore(original.Score).
			SetOptimizedScore(optimized.Score).
			SetOriginalVitals(original.Vitals).
			SetOptimizedVitals(optimized.Vitals).
			SetImprovements(measure.Improvements(original, optimized)).
			SetPayloadSavingsBytes(measure.PayloadSavings(original, optimized)).
			SetOriginalRaw(original.Raw).
			SetOptimizedRaw(optimized.Raw).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to record measurement: %w", err)
		}

		if e.alerts != nil {
			e.alerts.Evaluate(ctx, row)
		}

		// The mobile pair doubles as the build's headline scores.
		if strategy == "mobile" {
			b, err := e.client.Build.UpdateOneID(bc.build.ID).
				SetScoreBefore(original.Score).
				SetScoreAfter(optimized.Score).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("failed to record build scores: %w", err)
			}
			bc.build = b
		}

		e.log(ctx, bc, "info", PhaseMeasure,
			fmt.Sprintf("%s: %.0f -> %.0f", strategy, original.Score, optimized.Score))
	}
	return nil
}
