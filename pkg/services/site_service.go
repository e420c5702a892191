package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/url"
	"time"

	"github.com/metrics-lab/staticpress/ent"
	"github.com/metrics-lab/staticpress/ent/site"
	"github.com/metrics-lab/staticpress/pkg/models"
)

// SiteService manages site registration and lifecycle
type SiteService struct {
	client *ent.Client
}

// NewSiteService creates a new SiteService
func NewSiteService(client *ent.Client) *SiteService {
	return &SiteService{client: client}
}

// CreateSite registers a new source site. A webhook secret is
// generated at creation time and returned exactly once.
func (s *SiteService) CreateSite(httpCtx context.Context, req models.CreateSiteRequest) (*ent.Site, string, error) {
	if req.Name == "" {
		return nil, "", NewValidationError("name", "required")
	}
	parsed, err := url.Parse(req.SourceURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, "", NewValidationError("source_url", "must be an absolute URL")
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, "", NewValidationError("source_url", "scheme must be http or https")
	}

	secret, err := newWebhookSecret()
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate webhook secret: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	created, err := s.client.Site.Create().
		SetID(NewID("site")).
		SetName(req.Name).
		SetSourceURL(req.SourceURL).
		SetStatus(site.StatusPending).
		SetWebhookSecret(secret).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, "", ErrAlreadyExists
		}
		return nil, "", fmt.Errorf("failed to create site: %w", err)
	}
	return created, secret, nil
}

// GetSite returns a site by id
func (s *SiteService) GetSite(ctx context.Context, siteID string) (*ent.Site, error) {
	found, err := s.client.Site.Query().Where(site.IDEQ(siteID)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get site %s: %w", siteID, err)
	}
	return found, nil
}

// ListSites returns all registered sites, newest first
func (s *SiteService) ListSites(ctx context.Context) ([]*ent.Site, error) {
	sites, err := s.client.Site.Query().
		Order(ent.Desc(site.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sites: %w", err)
	}
	return sites, nil
}

// UpdateSite applies mutable site fields
func (s *SiteService) UpdateSite(ctx context.Context, siteID string, req models.UpdateSiteRequest) (*ent.Site, error) {
	update := s.client.Site.UpdateOneID(siteID)
	if req.Name != nil {
		if *req.Name == "" {
			return nil, NewValidationError("name", "must not be empty")
		}
		update.SetName(*req.Name)
	}
	updated, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update site %s: %w", siteID, err)
	}
	return updated, nil
}

// DeleteSite removes a site; owned rows cascade in the database.
// On-disk artifacts are left for the retention sweep to reclaim.
func (s *SiteService) DeleteSite(ctx context.Context, siteID string) error {
	err := s.client.Site.DeleteOneID(siteID).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete site %s: %w", siteID, err)
	}
	return nil
}

// Status returns the denormalized status snapshot for a site without
// joining builds.
func (s *SiteService) Status(ctx context.Context, siteID string) (*models.SiteStatusResponse, error) {
	found, err := s.GetSite(ctx, siteID)
	if err != nil {
		return nil, err
	}
	resp := &models.SiteStatusResponse{
		SiteID:      found.ID,
		Status:      string(found.Status),
		LastBuildID: found.LastBuildID,
		EdgeURL:     found.EdgeURL,
		PageCount:   found.PageCount,
		TotalBytes:  found.TotalBytes,
	}
	if found.LastBuildStatus != nil {
		status := string(*found.LastBuildStatus)
		resp.LastBuildStatus = &status
	}
	return resp, nil
}

// WebhookSecret returns the site's HMAC secret for signature checks.
func (s *SiteService) WebhookSecret(ctx context.Context, siteID string) (string, error) {
	found, err := s.GetSite(ctx, siteID)
	if err != nil {
		return "", err
	}
	return found.WebhookSecret, nil
}

func newWebhookSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
