package models

import "github.com/metrics-lab/staticpress/ent"

// MeasurementListResponse contains a site's measurement comparisons.
type MeasurementListResponse struct {
	Measurements []*ent.MeasurementComparison `json:"measurements"`
}

// AlertRuleRequest contains fields for creating or updating a rule.
type AlertRuleRequest struct {
	Metric    string  `json:"metric" binding:"required"`
	Operator  string  `json:"operator" binding:"required"`
	Threshold float64 `json:"threshold" binding:"required"`
	Enabled   *bool   `json:"enabled,omitempty"`
}

// AlertRuleResponse wraps an AlertRule.
type AlertRuleResponse struct {
	*ent.AlertRule
}

// AlertLogResponse contains fired-alert history.
type AlertLogResponse struct {
	Alerts []*ent.AlertLog `json:"alerts"`
}
