package services

import (
	"context"
	"fmt"
	"time"

	"github.com/metrics-lab/staticpress/ent"
	"github.com/metrics-lab/staticpress/ent/settingshistory"
	"github.com/metrics-lab/staticpress/ent/site"
	"github.com/metrics-lab/staticpress/pkg/models"
	"github.com/metrics-lab/staticpress/pkg/settings"
)

// SettingsService manages site-level sparse overrides, their history,
// and rollback. Every write appends the prior value to the history and
// invalidates the resolver cache.
type SettingsService struct {
	client   *ent.Client
	resolver *settings.Resolver
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(client *ent.Client, resolver *settings.Resolver) *SettingsService {
	return &SettingsService{client: client, resolver: resolver}
}

// GetSettings returns the site's override, the resolved document, and
// the diff tree of overridden leaves.
func (s *SettingsService) GetSettings(ctx context.Context, siteID string) (*models.SettingsResponse, error) {
	found, err := s.client.Site.Query().Where(site.IDEQ(siteID)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get site %s: %w", siteID, err)
	}
	resolved, err := s.resolver.Resolve(ctx, siteID)
	if err != nil {
		return nil, err
	}
	override := found.Settings
	if override == nil {
		override = map[string]any{}
	}
	return &models.SettingsResponse{
		Override: override,
		Resolved: resolved,
		Diff:     settings.Diff(settings.Defaults(), override),
	}, nil
}

// UpdateSettings merges a sparse override into the site's current
// override, validates the resolved result, and appends the prior value
// to the history.
func (s *SettingsService) UpdateSettings(httpCtx context.Context, siteID string, req models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	if len(req.Settings) == 0 {
		return nil, NewValidationError("settings", "must not be empty")
	}
	actor := req.Actor
	if actor == "" {
		actor = "api-client"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.writeSettings(ctx, siteID, actor, func(current map[string]any) map[string]any {
		return settings.Merge(current, req.Settings)
	}); err != nil {
		return nil, err
	}
	return s.GetSettings(ctx, siteID)
}

// ReplaceSettings swaps the site's entire override for the given
// document. Used by the agent loop to restore a pre-run snapshot after
// a critical failure.
func (s *SettingsService) ReplaceSettings(httpCtx context.Context, siteID string, next map[string]any, actor string) (*models.SettingsResponse, error) {
	if actor == "" {
		actor = "api-client"
	}
	if next == nil {
		next = map[string]any{}
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.writeSettings(ctx, siteID, actor, func(map[string]any) map[string]any {
		return next
	}); err != nil {
		return nil, err
	}
	return s.GetSettings(ctx, siteID)
}

// ResetSettings clears all site-level overrides; the resolved document
// returns to the built-in defaults.
func (s *SettingsService) ResetSettings(httpCtx context.Context, siteID, actor string) (*models.SettingsResponse, error) {
	if actor == "" {
		actor = "api-client"
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.writeSettings(ctx, siteID, actor, func(map[string]any) map[string]any {
		return map[string]any{}
	}); err != nil {
		return nil, err
	}
	return s.GetSettings(ctx, siteID)
}

// History returns prior override values, newest first
func (s *SettingsService) History(ctx context.Context, siteID string) ([]*ent.SettingsHistory, error) {
	rows, err := s.client.SettingsHistory.Query().
		Where(settingshistory.SiteIDEQ(siteID)).
		Order(ent.Desc(settingshistory.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list settings history for site %s: %w", siteID, err)
	}
	return rows, nil
}

// Rollback copies a historical override back into the site's current
// settings. The pre-rollback value is itself appended to the history,
// so a rollback can be rolled back.
func (s *SettingsService) Rollback(httpCtx context.Context, siteID, historyID string) (*models.SettingsResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	row, err := s.client.SettingsHistory.Query().
		Where(settingshistory.IDEQ(historyID), settingshistory.SiteIDEQ(siteID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get history entry %s: %w", historyID, err)
	}

	restored := row.Settings
	if restored == nil {
		restored = map[string]any{}
	}
	if err := s.writeSettings(ctx, siteID, "rollback", func(map[string]any) map[string]any {
		return restored
	}); err != nil {
		return nil, err
	}
	return s.GetSettings(ctx, siteID)
}

// writeSettings applies a settings mutation transactionally: lock the
// site row, compute the next override, validate the resolved result,
// append history, store, invalidate the cache.
func (s *SettingsService) writeSettings(ctx context.Context, siteID, actor string, mutate func(current map[string]any) map[string]any) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	found, err := tx.Site.Query().
		Where(site.IDEQ(siteID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to lock site %s: %w", siteID, err)
	}

	current := found.Settings
	if current == nil {
		current = map[string]any{}
	}
	next := mutate(current)

	// A write that would produce an invalid resolved document is
	// rejected before anything is stored.
	if err := settings.Validate(settings.Merge(settings.Defaults(), next)); err != nil {
		return NewValidationError("settings", err.Error())
	}

	_, err = tx.SettingsHistory.Create().
		SetID(NewID("hist")).
		SetSiteID(siteID).
		SetSettings(current).
		SetActor(actor).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to append settings history: %w", err)
	}

	if err := tx.Site.UpdateOneID(siteID).SetSettings(next).Exec(ctx); err != nil {
		return fmt.Errorf("failed to store settings: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit settings write: %w", err)
	}
	s.resolver.Invalidate(siteID)
	return nil
}
