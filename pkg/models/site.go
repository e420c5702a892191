// Package models contains request/response models and business domain types.
package models

import "github.com/metrics-lab/staticpress/ent"

// CreateSiteRequest contains fields for registering a new site.
type CreateSiteRequest struct {
	Name      string `json:"name" binding:"required"`
	SourceURL string `json:"source_url" binding:"required"`
}

// UpdateSiteRequest contains fields a client may change on a site.
type UpdateSiteRequest struct {
	Name *string `json:"name,omitempty"`
}

// SiteResponse wraps a Site with optional loaded edges.
type SiteResponse struct {
	*ent.Site
}

// SiteListResponse contains a page of sites.
type SiteListResponse struct {
	Sites []*ent.Site `json:"sites"`
	Total int         `json:"total"`
}

// SiteStatusResponse is the denormalized status snapshot served at
// GET /sites/:id/status without joining builds.
type SiteStatusResponse struct {
	SiteID          string  `json:"site_id"`
	Status          string  `json:"status"`
	LastBuildID     *string `json:"last_build_id,omitempty"`
	LastBuildStatus *string `json:"last_build_status,omitempty"`
	EdgeURL         *string `json:"edge_url,omitempty"`
	PageCount       int     `json:"page_count"`
	TotalBytes      int64   `json:"total_bytes"`
}
