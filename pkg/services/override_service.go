package services

import (
	"context"
	"fmt"
	"time"

	"github.com/metrics-lab/staticpress/ent"
	"github.com/metrics-lab/staticpress/ent/assetoverride"
	"github.com/metrics-lab/staticpress/pkg/models"
	"github.com/metrics-lab/staticpress/pkg/settings"
)

// validAssetClasses restricts the optional asset_class tag.
var validAssetClasses = map[string]bool{
	"html": true, "css": true, "js": true, "image": true, "font": true,
}

// OverrideService manages per-URL asset overrides
type OverrideService struct {
	client   *ent.Client
	resolver *settings.Resolver
}

// NewOverrideService creates a new OverrideService
func NewOverrideService(client *ent.Client, resolver *settings.Resolver) *OverrideService {
	return &OverrideService{client: client, resolver: resolver}
}

// UpsertOverride creates or updates the override for {site, pattern}.
// Repeating the same request is idempotent.
func (s *OverrideService) UpsertOverride(httpCtx context.Context, siteID string, req models.CreateAssetOverrideRequest) (*ent.AssetOverride, error) {
	if _, err := settings.CompilePattern(req.URLPattern); err != nil {
		return nil, NewValidationError("url_pattern", err.Error())
	}
	if len(req.Settings) == 0 {
		return nil, NewValidationError("settings", "must not be empty")
	}
	if req.AssetClass != "" && !validAssetClasses[req.AssetClass] {
		return nil, NewValidationError("asset_class", "must be one of html, css, js, image, font")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	existing, err := s.client.AssetOverride.Query().
		Where(assetoverride.SiteIDEQ(siteID), assetoverride.URLPatternEQ(req.URLPattern)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to look up override: %w", err)
	}

	var row *ent.AssetOverride
	if existing != nil {
		update := existing.Update().SetSettings(req.Settings)
		if req.AssetClass != "" {
			update.SetAssetClass(req.AssetClass)
		} else {
			update.ClearAssetClass()
		}
		row, err = update.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update override: %w", err)
		}
	} else {
		create := s.client.AssetOverride.Create().
			SetID(NewID("ovr")).
			SetSiteID(siteID).
			SetURLPattern(req.URLPattern).
			SetSettings(req.Settings)
		if req.AssetClass != "" {
			create.SetAssetClass(req.AssetClass)
		}
		row, err = create.Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				return nil, fmt.Errorf("site %s: %w", siteID, ErrNotFound)
			}
			return nil, fmt.Errorf("failed to create override: %w", err)
		}
	}

	s.resolver.Invalidate(siteID)
	return row, nil
}

// ListOverrides returns a site's overrides in insertion order — the
// order they are merged in during resolution.
func (s *OverrideService) ListOverrides(ctx context.Context, siteID string) ([]*ent.AssetOverride, error) {
	rows, err := s.client.AssetOverride.Query().
		Where(assetoverride.SiteIDEQ(siteID)).
		Order(ent.Asc(assetoverride.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list overrides for site %s: %w", siteID, err)
	}
	return rows, nil
}

// GetOverride returns one override by id, scoped to its site
func (s *OverrideService) GetOverride(ctx context.Context, siteID, overrideID string) (*ent.AssetOverride, error) {
	row, err := s.client.AssetOverride.Query().
		Where(assetoverride.IDEQ(overrideID), assetoverride.SiteIDEQ(siteID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get override %s: %w", overrideID, err)
	}
	return row, nil
}

// DeleteOverride removes an override
func (s *OverrideService) DeleteOverride(ctx context.Context, siteID, overrideID string) error {
	n, err := s.client.AssetOverride.Delete().
		Where(assetoverride.IDEQ(overrideID), assetoverride.SiteIDEQ(siteID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete override %s: %w", overrideID, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	s.resolver.Invalidate(siteID)
	return nil
}
