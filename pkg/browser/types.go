// Package browser wraps the headless renderer sidecar: JS-rendered
// page capture, screenshots, and interaction replay over gRPC.
package browser

import "context"

// Viewports the pipeline captures baselines for.
var Viewports = []string{"mobile", "tablet", "desktop"}

// AssetRef is one asset discovered on a rendered page.
type AssetRef struct {
	URL          string `json:"url"`
	AssetClass   string `json:"assetClass"` // html, css, js, image, font
	Bytes        int64  `json:"bytes"`
	LCPCandidate bool   `json:"lcpCandidate,omitempty"`
}

// InteractiveElement is a detected dynamic widget on a page.
type InteractiveElement struct {
	Kind            string `json:"kind"` // slider, accordion, dropdown, form, video
	Selector        string `json:"selector"`
	JQueryDependent bool   `json:"jqueryDependent,omitempty"`
}

// RenderedPage is the sidecar's capture of one URL.
type RenderedPage struct {
	HTML                string
	Links               []string
	Assets              []AssetRef
	InteractiveElements []InteractiveElement
	ClassNames          []string
	ThirdPartyOrigins   []string
}

// Screenshot is a captured viewport image.
type Screenshot struct {
	PNG    []byte
	Width  int
	Height int
}

// InteractionStep is one action in a replay script.
type InteractionStep struct {
	Action   string `json:"action"` // click, type, scroll, hover, wait
	Selector string `json:"selector,omitempty"`
	Value    string `json:"value,omitempty"`
}

// ReplayResult is the outcome of replaying an interaction script.
type ReplayResult struct {
	Success        bool
	FailedSelector string
	Error          string
	ConsoleErrors  []string
}

// Renderer is the interface the pipeline and verification suite
// consume; GRPCRenderer is the production implementation.
type Renderer interface {
	RenderPage(ctx context.Context, url string) (*RenderedPage, error)
	Screenshot(ctx context.Context, url, viewport string) (*Screenshot, error)
	ReplayInteraction(ctx context.Context, url string, steps []InteractionStep) (*ReplayResult, error)
	Close() error
}
