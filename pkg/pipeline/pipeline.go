// Package pipeline drives a build end to end: crawl the source site,
// optimize images, CSS, JS, HTML and fonts, deploy the artifact tree
// to the edge, and measure the result. Each phase checkpoints its
// output so a retried build re-enters at the phase that failed.
package pipeline

import "github.com/metrics-lab/staticpress/ent/build"

// Pipeline phases, in execution order.
const (
	PhaseCrawl   = "crawl"
	PhaseImages  = "images"
	PhaseCSS     = "css"
	PhaseJS      = "js"
	PhaseHTML    = "html"
	PhaseFonts   = "fonts"
	PhaseDeploy  = "deploy"
	PhaseMeasure = "measure"
)

// phaseOrder fixes execution and resume order.
var phaseOrder = []string{
	PhaseCrawl,
	PhaseImages,
	PhaseCSS,
	PhaseJS,
	PhaseHTML,
	PhaseFonts,
	PhaseDeploy,
	PhaseMeasure,
}

// phaseStatus maps each phase to the coarse build status it runs under.
var phaseStatus = map[string]build.Status{
	PhaseCrawl:   build.StatusCrawling,
	PhaseImages:  build.StatusOptimizing,
	PhaseCSS:     build.StatusOptimizing,
	PhaseJS:      build.StatusOptimizing,
	PhaseHTML:    build.StatusOptimizing,
	PhaseFonts:   build.StatusOptimizing,
	PhaseDeploy:  build.StatusDeploying,
	PhaseMeasure: build.StatusDeploying,
}

// phasesAfter returns the phases that still need to run when the given
// checkpoint phase has already completed. An empty checkpoint returns
// the full order.
func phasesAfter(checkpoint string) []string {
	if checkpoint == "" {
		return phaseOrder
	}
	for i, p := range phaseOrder {
		if p == checkpoint {
			return phaseOrder[i+1:]
		}
	}
	return phaseOrder
}
