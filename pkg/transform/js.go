package transform

import (
	"fmt"

	"github.com/tdewolff/minify/v2"
	minjs "github.com/tdewolff/minify/v2/js"
)

// Minifier implements JSMinifier.
type Minifier struct {
	minifier *minify.M
}

// NewJSMinifier creates the default JS minifier.
func NewJSMinifier() *Minifier {
	m := minify.New()
	m.AddFunc("application/javascript", minjs.Minify)
	return &Minifier{minifier: m}
}

// Minify compacts a script. Parse errors are intrinsic to the input:
// callers log them and keep the original.
func (m *Minifier) Minify(js string) (string, error) {
	minified, err := m.minifier.String("application/javascript", js)
	if err != nil {
		return "", fmt.Errorf("failed to minify js: %w", err)
	}
	return minified, nil
}
