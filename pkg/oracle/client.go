package oracle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/metrics-lab/staticpress/pkg/config"
	"github.com/metrics-lab/staticpress/pkg/metrics"
	"github.com/metrics-lab/staticpress/pkg/upstream"
)

// Caller is the raw oracle contract: one stateless completion.
type Caller interface {
	Call(ctx context.Context, systemPrompt, userContent string) (string, Usage, error)
}

// Client wraps a Caller with the typed plan/review protocol.
type Client struct {
	caller Caller
	logger *slog.Logger
}

// AnthropicCaller implements Caller on the Claude Messages API.
type AnthropicCaller struct {
	messages *sdk.MessageService
	cfg      *config.OracleConfig
}

// NewAnthropicCaller builds the production oracle transport.
func NewAnthropicCaller(cfg *config.OracleConfig) (*AnthropicCaller, error) {
	apiKey := os.Getenv(cfg.APIKeyEnv)
	if apiKey == "" {
		return nil, fmt.Errorf("oracle API key env var %s is not set", cfg.APIKeyEnv)
	}
	ac := sdk.NewClient(option.WithAPIKey(apiKey))
	return &AnthropicCaller{messages: &ac.Messages, cfg: cfg}, nil
}

// Call issues one completion. Rate limits and provider 5xx are
// transient; everything else is fatal.
func (c *AnthropicCaller) Call(ctx context.Context, systemPrompt, userContent string) (string, Usage, error) {
	msg, err := c.messages.New(ctx, sdk.MessageNewParams{
		Model:     sdk.Model(c.cfg.Model),
		MaxTokens: int64(c.cfg.MaxTokens),
		System:    []sdk.TextBlockParam{{Text: systemPrompt}},
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(userContent)),
		},
	})
	if err != nil {
		var apierr *sdk.Error
		if errors.As(err, &apierr) && upstream.RetryableStatus(apierr.StatusCode) {
			return "", Usage{}, upstream.Transient(fmt.Errorf("oracle call failed: %w", err))
		}
		return "", Usage{}, fmt.Errorf("oracle call failed: %w", err)
	}

	var text strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}

	usage := Usage{
		InputTokens:  int(msg.Usage.InputTokens),
		OutputTokens: int(msg.Usage.OutputTokens),
	}
	usage.CostUSD = float64(usage.InputTokens)/1e6*c.cfg.InputPricePerMTok +
		float64(usage.OutputTokens)/1e6*c.cfg.OutputPricePerMTok

	metrics.OracleTokens.WithLabelValues("input").Add(float64(usage.InputTokens))
	metrics.OracleTokens.WithLabelValues("output").Add(float64(usage.OutputTokens))
	metrics.OracleCostUSD.Add(usage.CostUSD)

	return text.String(), usage, nil
}

// NewClient wraps a Caller with the typed protocol.
func NewClient(caller Caller) *Client {
	return &Client{
		caller: caller,
		logger: slog.With("component", "oracle"),
	}
}

// Plan asks the oracle for an OptimizationPlan given the site
// inventory and any current measurement data.
func (c *Client) Plan(ctx context.Context, inventoryJSON, measurementJSON string) (*OptimizationPlan, Usage, error) {
	user := fmt.Sprintf("Site inventory:\n%s\n\nCurrent measurements:\n%s", inventoryJSON, measurementJSON)
	raw, usage, err := c.caller.Call(ctx, planSystemPrompt, user)
	if err != nil {
		return nil, usage, err
	}

	var plan OptimizationPlan
	if err := decodeValidated(raw, planSchema, &plan); err != nil {
		// A malformed oracle response is an upstream fault; retrying
		// the call usually yields a well-formed one.
		return nil, usage, upstream.Transient(fmt.Errorf("oracle returned invalid plan: %w", err))
	}
	c.logger.Info("Oracle plan received",
		"sections", len(plan.Rationale),
		"input_tokens", usage.InputTokens,
		"output_tokens", usage.OutputTokens)
	return &plan, usage, nil
}

// Review asks the oracle to judge an iteration's verification results
// against the full iteration history.
func (c *Client) Review(ctx context.Context, verificationJSON, historyJSON string) (*AIReviewDecision, Usage, error) {
	user := fmt.Sprintf("Verification results:\n%s\n\nIteration history:\n%s", verificationJSON, historyJSON)
	raw, usage, err := c.caller.Call(ctx, reviewSystemPrompt, user)
	if err != nil {
		return nil, usage, err
	}

	var decision AIReviewDecision
	if err := decodeValidated(raw, reviewSchema, &decision); err != nil {
		return nil, usage, upstream.Transient(fmt.Errorf("oracle returned invalid review: %w", err))
	}
	c.logger.Info("Oracle review received",
		"verdict", decision.Verdict,
		"confidence", decision.Confidence,
		"input_tokens", usage.InputTokens,
		"output_tokens", usage.OutputTokens)
	return &decision, usage, nil
}

// PlanEdits asks the oracle for live-edit changes given workspace
// context and a user message. The response is free-form JSON the
// live-edit layer shapes into an EditPlan.
func (c *Client) PlanEdits(ctx context.Context, workspaceContext, message string) (string, Usage, error) {
	user := fmt.Sprintf("Workspace files:\n%s\n\nRequest:\n%s", workspaceContext, message)
	return c.caller.Call(ctx, editSystemPrompt, user)
}

// decodeValidated strips optional code fences, validates the JSON
// against the schema, and unmarshals into out.
func decodeValidated(raw string, schema *jsonschema.Schema, out any) error {
	cleaned := stripCodeFence(raw)
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(cleaned))
	if err != nil {
		return fmt.Errorf("not valid JSON: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return json.Unmarshal([]byte(cleaned), out)
}

// stripCodeFence removes a surrounding ```json … ``` fence if present.
func stripCodeFence(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
