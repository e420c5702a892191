package settings

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/metrics-lab/staticpress/ent"
	"github.com/metrics-lab/staticpress/ent/assetoverride"
	"github.com/metrics-lab/staticpress/ent/site"
)

const cacheTTL = 5 * time.Minute

type cacheEntry struct {
	resolved map[string]any
	expires  time.Time
}

// Resolver merges layered settings for a site and caches the
// site-level result. It is safe for concurrent use; construct one in
// main and pass the handle explicitly.
type Resolver struct {
	client *ent.Client
	logger *slog.Logger

	mu    sync.RWMutex
	cache map[string]cacheEntry
}

// NewResolver creates a settings resolver backed by the given client.
func NewResolver(client *ent.Client) *Resolver {
	return &Resolver{
		client: client,
		logger: slog.With("component", "settings.resolver"),
		cache:  make(map[string]cacheEntry),
	}
}

// Resolve returns the site-level resolved settings: defaults merged
// with the site's sparse overrides, schema-validated. Per-asset
// overrides are not applied here. The result is cached for 5 minutes
// or until Invalidate is called for the site.
func (r *Resolver) Resolve(ctx context.Context, siteID string) (map[string]any, error) {
	r.mu.RLock()
	entry, ok := r.cache[siteID]
	r.mu.RUnlock()
	if ok && time.Now().Before(entry.expires) {
		return cloneValue(entry.resolved).(map[string]any), nil
	}

	s, err := r.client.Site.Query().Where(site.IDEQ(siteID)).Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load site %s: %w", siteID, err)
	}

	resolved := Merge(Defaults(), s.Settings)
	if err := Validate(resolved); err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.cache[siteID] = cacheEntry{resolved: resolved, expires: time.Now().Add(cacheTTL)}
	r.mu.Unlock()

	return cloneValue(resolved).(map[string]any), nil
}

// ResolveForAsset returns the settings that apply to a single asset
// URL: the site-level result with every matching asset override merged
// on top, in insertion order.
func (r *Resolver) ResolveForAsset(ctx context.Context, siteID, urlPath string) (map[string]any, error) {
	resolved, err := r.Resolve(ctx, siteID)
	if err != nil {
		return nil, err
	}

	overrides, err := r.client.AssetOverride.Query().
		Where(assetoverride.SiteIDEQ(siteID)).
		Order(ent.Asc(assetoverride.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load asset overrides for site %s: %w", siteID, err)
	}

	for _, ov := range overrides {
		if !MatchURL(ov.URLPattern, urlPath) {
			continue
		}
		resolved = Merge(resolved, ov.Settings)
	}

	if err := Validate(resolved); err != nil {
		return nil, err
	}
	return resolved, nil
}

// Invalidate drops the cached result for a site. Fired on every
// settings write so readers never see stale values past the write.
func (r *Resolver) Invalidate(siteID string) {
	r.mu.Lock()
	delete(r.cache, siteID)
	r.mu.Unlock()
	r.logger.Debug("Settings cache invalidated", "site_id", siteID)
}

// EnforceSafeFloor clamps CSS purge aggressiveness to "safe" when the
// crawled class inventory matches a page-builder fingerprint. Mutates
// and returns the resolved document.
func EnforceSafeFloor(resolved map[string]any, classNames []string) map[string]any {
	if !matchesPageBuilder(classNames) {
		return resolved
	}
	css, ok := resolved["css"].(map[string]any)
	if !ok {
		return resolved
	}
	level, _ := css["purgeAggressiveness"].(string)
	if purgeLevels[level] > purgeLevels["safe"] {
		css["purgeAggressiveness"] = "safe"
	}
	return resolved
}

func matchesPageBuilder(classNames []string) bool {
	for _, class := range classNames {
		for _, prefix := range pageBuilderPrefixes {
			if strings.HasPrefix(class, prefix) {
				return true
			}
		}
	}
	return false
}
