package browser

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	rendererv1 "github.com/metrics-lab/staticpress/proto"
)

// defaultTimeoutMs bounds a single sidecar operation; the caller's
// context usually cancels sooner.
const defaultTimeoutMs = 60_000

// GRPCRenderer implements Renderer by calling the headless-browser
// sidecar via gRPC.
type GRPCRenderer struct {
	conn   *grpc.ClientConn
	client rendererv1.RendererServiceClient
}

// NewGRPCRenderer creates a new gRPC renderer client.
func NewGRPCRenderer(addr string) (*GRPCRenderer, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to renderer sidecar at %s: %w", addr, err)
	}
	return &GRPCRenderer{
		conn:   conn,
		client: rendererv1.NewRendererServiceClient(conn),
	}, nil
}

// RenderPage captures one URL with JavaScript executed.
func (c *GRPCRenderer) RenderPage(ctx context.Context, url string) (*RenderedPage, error) {
	resp, err := c.client.RenderPage(ctx, &rendererv1.RenderPageRequest{
		Url:             url,
		TimeoutMs:       defaultTimeoutMs,
		WaitNetworkIdle: true,
	})
	if err != nil {
		return nil, fmt.Errorf("gRPC RenderPage call failed for %s: %w", url, err)
	}
	return fromProtoRenderResponse(resp), nil
}

// Screenshot captures a viewport image of a URL.
func (c *GRPCRenderer) Screenshot(ctx context.Context, url, viewport string) (*Screenshot, error) {
	resp, err := c.client.Screenshot(ctx, &rendererv1.ScreenshotRequest{
		Url:       url,
		Viewport:  viewport,
		TimeoutMs: defaultTimeoutMs,
		FullPage:  true,
	})
	if err != nil {
		return nil, fmt.Errorf("gRPC Screenshot call failed for %s (%s): %w", url, viewport, err)
	}
	return &Screenshot{
		PNG:    resp.Png,
		Width:  int(resp.Width),
		Height: int(resp.Height),
	}, nil
}

// ReplayInteraction runs a recorded interaction script against a URL.
func (c *GRPCRenderer) ReplayInteraction(ctx context.Context, url string, steps []InteractionStep) (*ReplayResult, error) {
	req := &rendererv1.ReplayInteractionRequest{
		Url:       url,
		TimeoutMs: defaultTimeoutMs,
	}
	for _, s := range steps {
		req.Steps = append(req.Steps, &rendererv1.InteractionStep{
			Action:   s.Action,
			Selector: s.Selector,
			Value:    s.Value,
		})
	}

	resp, err := c.client.ReplayInteraction(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("gRPC ReplayInteraction call failed for %s: %w", url, err)
	}
	return &ReplayResult{
		Success:        resp.Success,
		FailedSelector: resp.FailedSelector,
		Error:          resp.Error,
		ConsoleErrors:  resp.ConsoleErrors,
	}, nil
}

// Close releases the gRPC connection.
func (c *GRPCRenderer) Close() error {
	return c.conn.Close()
}

// ────────────────────────────────────────────────────────────
// Proto conversion helpers
// ────────────────────────────────────────────────────────────

func fromProtoRenderResponse(resp *rendererv1.RenderPageResponse) *RenderedPage {
	page := &RenderedPage{
		HTML:              resp.Html,
		Links:             resp.Links,
		ClassNames:        resp.ClassNames,
		ThirdPartyOrigins: resp.ThirdPartyOrigins,
	}
	for _, a := range resp.Assets {
		page.Assets = append(page.Assets, AssetRef{
			URL:          a.Url,
			AssetClass:   a.AssetClass,
			Bytes:        a.Bytes,
			LCPCandidate: a.LcpCandidate,
		})
	}
	for _, e := range resp.InteractiveElements {
		page.InteractiveElements = append(page.InteractiveElements, InteractiveElement{
			Kind:            e.Kind,
			Selector:        e.Selector,
			JQueryDependent: e.JqueryDependent,
		})
	}
	return page
}
