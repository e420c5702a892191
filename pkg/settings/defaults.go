// Package settings resolves layered optimization settings for a site:
// built-in defaults, site-level sparse overrides, and per-URL asset
// overrides, merged in that order and validated against a schema.
package settings

// Defaults returns the full built-in settings document. Every leaf the
// schema knows about is present here, so merging any sparse override
// over it always yields a complete object.
func Defaults() map[string]any {
	return map[string]any{
		"images": map[string]any{
			"enabled":          true,
			"modernFormat":     "webp",
			"legacyFallback":   true,
			"qualityLCP":       85,
			"qualityStandard":  75,
			"qualityThumbnail": 60,
			"minBytes":         10240,
		},
		"css": map[string]any{
			"purgeEnabled":        true,
			"purgeAggressiveness": "standard",
			"purgeSafelist": map[string]any{
				"standard": []any{},
				"greedy":   []any{},
			},
			"minify":           true,
			"criticalInline":   true,
			"deferNonCritical": true,
		},
		"js": map[string]any{
			"removeEmoji":        true,
			"removeBlockLibrary": true,
			"removeAnalytics":    false,
			"minify":             true,
			"deferScripts":       true,
		},
		"html": map[string]any{
			"stripMetadata": true,
			"resourceHints": true,
			"embedFacades":  true,
			"lazyLoadMedia": true,
		},
		"fonts": map[string]any{
			"selfHost":    true,
			"fontDisplay": "swap",
			"preload":     true,
		},
		"deploy": map[string]any{
			"cacheControlMaxAge": 31536000,
		},
		"measure": map[string]any{
			"strategies": []any{"mobile", "desktop"},
		},
	}
}

// purgeLevels orders CSS purge aggressiveness from most to least
// conservative. The safe floor clamps page-builder sites to "safe".
var purgeLevels = map[string]int{
	"safe":       0,
	"standard":   1,
	"aggressive": 2,
}

// pageBuilderPrefixes are class prefixes of page-builder frameworks
// whose markup breaks badly under aggressive tree-shaking.
var pageBuilderPrefixes = []string{
	"elementor",
	"et_pb_",
	"vc_",
	"fl-builder",
	"wp-block-kadence",
	"fusion-",
	"brxe-",
}
