package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge_RecursesObjectsReplacesScalars(t *testing.T) {
	base := map[string]any{
		"css": map[string]any{
			"purgeAggressiveness": "standard",
			"minify":              true,
		},
		"js": map[string]any{"minify": true},
	}
	override := map[string]any{
		"css": map[string]any{"purgeAggressiveness": "aggressive"},
	}

	out := Merge(base, override)

	css := out["css"].(map[string]any)
	assert.Equal(t, "aggressive", css["purgeAggressiveness"])
	assert.Equal(t, true, css["minify"], "untouched sibling leaf survives")
	assert.Equal(t, map[string]any{"minify": true}, out["js"])
}

func TestMerge_ArraysReplacedWholesale(t *testing.T) {
	base := map[string]any{"list": []any{"a", "b", "c"}}
	override := map[string]any{"list": []any{"x"}}

	out := Merge(base, override)

	assert.Equal(t, []any{"x"}, out["list"])
}

func TestMerge_NilValuesIgnored(t *testing.T) {
	base := map[string]any{"keep": "value"}
	override := map[string]any{"keep": nil}

	out := Merge(base, override)

	assert.Equal(t, "value", out["keep"])
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	base := map[string]any{"nested": map[string]any{"a": 1}}
	override := map[string]any{"nested": map[string]any{"b": 2}}

	_ = Merge(base, override)

	assert.Equal(t, map[string]any{"a": 1}, base["nested"])
	assert.Equal(t, map[string]any{"b": 2}, override["nested"])
}

func TestMerge_Idempotent(t *testing.T) {
	a := Defaults()
	b := map[string]any{
		"css":    map[string]any{"purgeAggressiveness": "aggressive"},
		"images": map[string]any{"qualityStandard": 60},
	}

	once := Merge(a, b)
	twice := Merge(once, b)

	assert.Equal(t, once, twice)
}

func TestDiff_RoundTripProperty(t *testing.T) {
	// resolve(default, override) |> diff yields exactly the override's
	// leaves that differ from the default.
	defaults := Defaults()
	override := map[string]any{
		"css": map[string]any{
			"purgeAggressiveness": "aggressive",
			"minify":              true, // same as default: not in diff
		},
		"images": map[string]any{"qualityLCP": 90},
	}

	diff := Diff(defaults, override)

	require.Contains(t, diff, "css")
	css := diff["css"].(map[string]any)
	assert.Equal(t, true, css["purgeAggressiveness"])
	assert.NotContains(t, css, "minify")
	images := diff["images"].(map[string]any)
	assert.Equal(t, true, images["qualityLCP"])
}

func TestDiff_EmptyOverride(t *testing.T) {
	diff := Diff(Defaults(), map[string]any{})
	assert.Empty(t, diff)
}

func TestDiff_NumericTypesCompareEqual(t *testing.T) {
	// JSON round-trips turn ints into float64; a stored override equal
	// in value to the default must not show as overridden.
	base := map[string]any{"images": map[string]any{"qualityLCP": 85}}
	override := map[string]any{"images": map[string]any{"qualityLCP": float64(85)}}

	diff := Diff(base, override)

	assert.Empty(t, diff)
}

func TestValidate_DefaultsPass(t *testing.T) {
	require.NoError(t, Validate(Defaults()))
}

func TestValidate_RejectsUnknownAggressiveness(t *testing.T) {
	resolved := Merge(Defaults(), map[string]any{
		"css": map[string]any{"purgeAggressiveness": "reckless"},
	})
	assert.Error(t, Validate(resolved))
}

func TestEnforceSafeFloor(t *testing.T) {
	tests := []struct {
		name       string
		level      string
		classNames []string
		want       string
	}{
		{"elementor site clamped", "aggressive", []string{"elementor-widget"}, "safe"},
		{"divi site clamped", "standard", []string{"et_pb_section"}, "safe"},
		{"plain theme untouched", "aggressive", []string{"site-header", "entry-content"}, "aggressive"},
		{"already safe stays safe", "safe", []string{"elementor-widget"}, "safe"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved := Merge(Defaults(), map[string]any{
				"css": map[string]any{"purgeAggressiveness": tt.level},
			})
			out := EnforceSafeFloor(resolved, tt.classNames)
			css := out["css"].(map[string]any)
			assert.Equal(t, tt.want, css["purgeAggressiveness"])
		})
	}
}
