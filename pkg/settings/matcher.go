package settings

import (
	"fmt"

	"github.com/gobwas/glob"
)

// CompilePattern compiles an asset-override URL pattern. With '/' as
// the separator, `*` matches any single path segment and `**` matches
// across segments.
func CompilePattern(pattern string) (glob.Glob, error) {
	g, err := glob.Compile(pattern, '/')
	if err != nil {
		return nil, fmt.Errorf("invalid URL pattern %q: %w", pattern, err)
	}
	return g, nil
}

// MatchURL reports whether the asset URL path matches the pattern.
// Invalid patterns never match.
func MatchURL(pattern, urlPath string) bool {
	g, err := CompilePattern(pattern)
	if err != nil {
		return false
	}
	return g.Match(urlPath)
}
