package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchURL(t *testing.T) {
	tests := []struct {
		pattern string
		path    string
		want    bool
	}{
		{"a/**", "a/b/c", true},
		{"a/*", "a/b", true},
		{"a/*", "a/b/c", false},
		{"**/*.jpg", "wp-content/uploads/2024/photo.jpg", true},
		{"*/*.jpg", "uploads/photo.jpg", true},
		{"*/*.jpg", "wp-content/uploads/photo.jpg", false},
		{"wp-content/**", "wp-content/themes/site/style.css", true},
		{"wp-content/**", "wp-includes/js/jquery.js", false},
		{"exact/path.png", "exact/path.png", true},
		{"exact/path.png", "exact/path.webp", false},
	}
	for _, tt := range tests {
		t.Run(tt.pattern+" vs "+tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchURL(tt.pattern, tt.path))
		})
	}
}

func TestMatchURL_InvalidPatternNeverMatches(t *testing.T) {
	assert.False(t, MatchURL("[invalid", "anything"))
}

func TestCompilePattern_Invalid(t *testing.T) {
	_, err := CompilePattern("[invalid")
	assert.Error(t, err)
}
