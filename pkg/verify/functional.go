package verify

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/metrics-lab/staticpress/pkg/browser"
)

// runFunctional replays every detected interactive element against the
// deployed copy. A widget that worked on the origin must still respond
// after optimization.
func (s *Suite) runFunctional(ctx context.Context, in *Input) ([]FunctionalResult, error) {
	type job struct {
		path    string
		element browser.InteractiveElement
	}
	var jobs []job
	for _, p := range in.Interactive {
		for _, el := range p.Elements {
			jobs = append(jobs, job{path: p.Path, element: el})
		}
	}

	resultCh := make(chan FunctionalResult, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for _, j := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			resultCh <- s.replayElement(gctx, in, j.path, j.element)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	close(resultCh)

	var results []FunctionalResult
	for res := range resultCh {
		results = append(results, res)
	}
	return results, nil
}

// replayElement exercises one widget through the renderer.
func (s *Suite) replayElement(ctx context.Context, in *Input, path string, el browser.InteractiveElement) FunctionalResult {
	res := FunctionalResult{Path: path, Kind: el.Kind, Selector: el.Selector}

	edgePage := strings.TrimSuffix(in.EdgeURL, "/") + path
	replay, err := s.renderer.ReplayInteraction(ctx, edgePage, stepsFor(el))
	if err != nil {
		res.Error = err.Error()
		return res
	}

	res.Passed = replay.Success
	res.FailedSelector = replay.FailedSelector
	res.Error = replay.Error
	res.ConsoleErrors = replay.ConsoleErrors
	return res
}

// stepsFor builds the replay script for a widget kind.
func stepsFor(el browser.InteractiveElement) []browser.InteractionStep {
	switch el.Kind {
	case "form":
		return []browser.InteractionStep{
			{Action: "click", Selector: el.Selector},
			{Action: "type", Selector: el.Selector + " input", Value: "test"},
		}
	case "slider":
		return []browser.InteractionStep{
			{Action: "click", Selector: el.Selector},
			{Action: "wait", Value: "500"},
			{Action: "click", Selector: el.Selector},
		}
	case "video":
		return []browser.InteractionStep{
			{Action: "click", Selector: el.Selector},
			{Action: "wait", Value: "1000"},
		}
	default: // accordion, dropdown, and anything click-driven
		return []browser.InteractionStep{
			{Action: "click", Selector: el.Selector},
		}
	}
}
