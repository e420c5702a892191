package config

import (
	"runtime"
	"time"
)

// PipelineConfig controls the build pipeline: workspace layout, crawl
// limits, per-phase concurrency and per-phase time budgets.
type PipelineConfig struct {
	// DataRoot is the base directory for all persisted artifacts:
	// {data-root}/sites/{siteId}, {data-root}/builds/{buildId},
	// {data-root}/workspaces/{siteId}.
	DataRoot string `yaml:"data_root"`

	// MaxPagesPerCrawl caps discovery; pages beyond the cap are skipped.
	MaxPagesPerCrawl int `yaml:"max_pages_per_crawl"`

	// MaxCrawlDepth bounds link-following from the start URL.
	MaxCrawlDepth int `yaml:"max_crawl_depth"`

	// CrawlConcurrency throttles page fetches against the source site.
	CrawlConcurrency int `yaml:"crawl_concurrency"`

	// AssetConcurrency sizes the per-phase worker pool for independent
	// asset work (images, stylesheets). Defaults to the CPU count.
	AssetConcurrency int `yaml:"asset_concurrency"`

	// ImageByteThreshold: images at or below this size are copied through.
	ImageByteThreshold int64 `yaml:"image_byte_threshold"`

	// Per-phase time budgets. Exceeding a budget cancels the phase with
	// a distinct timeout reason.
	CrawlTimeout   time.Duration `yaml:"crawl_timeout"`
	ImagesTimeout  time.Duration `yaml:"images_timeout"`
	CSSTimeout     time.Duration `yaml:"css_timeout"`
	JSTimeout      time.Duration `yaml:"js_timeout"`
	HTMLTimeout    time.Duration `yaml:"html_timeout"`
	FontsTimeout   time.Duration `yaml:"fonts_timeout"`
	DeployTimeout  time.Duration `yaml:"deploy_timeout"`
	MeasureTimeout time.Duration `yaml:"measure_timeout"`
}

// DefaultPipelineConfig returns the built-in pipeline defaults.
func DefaultPipelineConfig() *PipelineConfig {
	return &PipelineConfig{
		DataRoot:           "./data",
		MaxPagesPerCrawl:   200,
		MaxCrawlDepth:      5,
		CrawlConcurrency:   4,
		AssetConcurrency:   runtime.NumCPU(),
		ImageByteThreshold: 10 * 1024,
		CrawlTimeout:       30 * time.Minute,
		ImagesTimeout:      20 * time.Minute,
		CSSTimeout:         10 * time.Minute,
		JSTimeout:          10 * time.Minute,
		HTMLTimeout:        5 * time.Minute,
		FontsTimeout:       5 * time.Minute,
		DeployTimeout:      15 * time.Minute,
		MeasureTimeout:     10 * time.Minute,
	}
}

// PhaseTimeout returns the budget for a named pipeline phase.
func (p *PipelineConfig) PhaseTimeout(phase string) time.Duration {
	switch phase {
	case "crawl":
		return p.CrawlTimeout
	case "images":
		return p.ImagesTimeout
	case "css":
		return p.CSSTimeout
	case "js":
		return p.JSTimeout
	case "html":
		return p.HTMLTimeout
	case "fonts":
		return p.FontsTimeout
	case "deploy":
		return p.DeployTimeout
	case "measure":
		return p.MeasureTimeout
	default:
		return 10 * time.Minute
	}
}
