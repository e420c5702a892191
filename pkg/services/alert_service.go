package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/metrics-lab/staticpress/ent"
	"github.com/metrics-lab/staticpress/ent/alertlog"
	"github.com/metrics-lab/staticpress/ent/alertrule"
	"github.com/metrics-lab/staticpress/pkg/models"
)

// AlertService manages alert rules and evaluates them against new
// measurements.
type AlertService struct {
	client *ent.Client
	logger *slog.Logger
}

// NewAlertService creates a new AlertService
func NewAlertService(client *ent.Client) *AlertService {
	return &AlertService{
		client: client,
		logger: slog.With("component", "services.alert"),
	}
}

// CreateRule adds an alert rule for a site
func (s *AlertService) CreateRule(ctx context.Context, siteID string, req models.AlertRuleRequest) (*ent.AlertRule, error) {
	if req.Metric == "" {
		return nil, NewValidationError("metric", "required")
	}
	var op alertrule.Operator
	switch req.Operator {
	case "lt":
		op = alertrule.OperatorLt
	case "gt":
		op = alertrule.OperatorGt
	default:
		return nil, NewValidationError("operator", "must be lt or gt")
	}

	create := s.client.AlertRule.Create().
		SetID(NewID("rule")).
		SetSiteID(siteID).
		SetMetric(req.Metric).
		SetOperator(op).
		SetThreshold(req.Threshold)
	if req.Enabled != nil {
		create.SetEnabled(*req.Enabled)
	}
	rule, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("site %s: %w", siteID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to create alert rule: %w", err)
	}
	return rule, nil
}

// ListRules returns a site's alert rules
func (s *AlertService) ListRules(ctx context.Context, siteID string) ([]*ent.AlertRule, error) {
	rules, err := s.client.AlertRule.Query().
		Where(alertrule.SiteIDEQ(siteID)).
		Order(ent.Asc(alertrule.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list alert rules for site %s: %w", siteID, err)
	}
	return rules, nil
}

// DeleteRule removes an alert rule
func (s *AlertService) DeleteRule(ctx context.Context, siteID, ruleID string) error {
	n, err := s.client.AlertRule.Delete().
		Where(alertrule.IDEQ(ruleID), alertrule.SiteIDEQ(siteID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete alert rule %s: %w", ruleID, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ListAlerts returns fired alerts for a site, newest first
func (s *AlertService) ListAlerts(ctx context.Context, siteID string, limit int) ([]*ent.AlertLog, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	alerts, err := s.client.AlertLog.Query().
		Where(alertlog.SiteIDEQ(siteID)).
		Order(ent.Desc(alertlog.FieldFiredAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts for site %s: %w", siteID, err)
	}
	return alerts, nil
}

// Evaluate checks a fresh measurement against the site's enabled rules
// and appends an AlertLog row per violation. Evaluation failures are
// logged, never propagated: a broken rule must not fail a build.
func (s *AlertService) Evaluate(ctx context.Context, m *ent.MeasurementComparison) {
	rules, err := s.client.AlertRule.Query().
		Where(alertrule.SiteIDEQ(m.SiteID), alertrule.EnabledEQ(true)).
		All(ctx)
	if err != nil {
		s.logger.Error("Failed to load alert rules", "site_id", m.SiteID, "error", err)
		return
	}

	for _, rule := range rules {
		value, ok := metricValue(m, rule.Metric)
		if !ok {
			continue
		}
		fired := (rule.Operator == alertrule.OperatorLt && value < rule.Threshold) ||
			(rule.Operator == alertrule.OperatorGt && value > rule.Threshold)
		if !fired {
			continue
		}
		msg := fmt.Sprintf("%s is %.2f (threshold %s %.2f)", rule.Metric, value, rule.Operator, rule.Threshold)
		err := s.client.AlertLog.Create().
			SetID(NewID("alert")).
			SetSiteID(m.SiteID).
			SetRuleID(rule.ID).
			SetMessage(msg).
			SetObservedValue(value).
			Exec(ctx)
		if err != nil {
			s.logger.Error("Failed to record fired alert", "rule_id", rule.ID, "error", err)
			continue
		}
		s.logger.Warn("Alert fired", "site_id", m.SiteID, "rule_id", rule.ID, "message", msg)
	}
}

// metricValue resolves a rule's metric name against a measurement.
// Plain names read the optimized vitals; the two score metrics are
// addressed explicitly.
func metricValue(m *ent.MeasurementComparison, metric string) (float64, bool) {
	switch metric {
	case "optimized_score":
		return m.OptimizedScore, true
	case "original_score":
		return m.OriginalScore, true
	case "payload_savings_bytes":
		return float64(m.PayloadSavingsBytes), true
	}
	if m.OptimizedVitals != nil {
		if v, ok := m.OptimizedVitals[metric]; ok {
			return v, true
		}
	}
	return 0, false
}
