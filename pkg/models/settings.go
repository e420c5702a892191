package models

import "github.com/metrics-lab/staticpress/ent"

// SettingsResponse returns both the sparse override and the fully
// resolved document, plus the boolean diff tree marking overridden
// leaves.
type SettingsResponse struct {
	Override map[string]any `json:"override"`
	Resolved map[string]any `json:"resolved"`
	Diff     map[string]any `json:"diff"`
}

// UpdateSettingsRequest carries a sparse override to merge into the
// site's current settings.
type UpdateSettingsRequest struct {
	Settings map[string]any `json:"settings" binding:"required"`
	Actor    string         `json:"actor,omitempty"`
}

// SettingsHistoryResponse contains the append-only history of prior
// override values.
type SettingsHistoryResponse struct {
	History []*ent.SettingsHistory `json:"history"`
}

// CreateAssetOverrideRequest contains fields for a per-URL override.
type CreateAssetOverrideRequest struct {
	URLPattern string         `json:"url_pattern" binding:"required"`
	AssetClass string         `json:"asset_class,omitempty"`
	Settings   map[string]any `json:"settings" binding:"required"`
}

// AssetOverrideResponse wraps an AssetOverride.
type AssetOverrideResponse struct {
	*ent.AssetOverride
}

// AssetOverrideListResponse contains a site's asset overrides.
type AssetOverrideListResponse struct {
	Overrides []*ent.AssetOverride `json:"overrides"`
}
