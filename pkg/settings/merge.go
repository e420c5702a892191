package settings

// Merge deep-merges override into base and returns a new document.
// Plain objects merge recursively; arrays and primitives are replaced
// wholesale; nil values in the override are ignored. Neither input is
// mutated.
func Merge(base, override map[string]any) map[string]any {
	out := make(map[string]any, len(base))
	for k, v := range base {
		out[k] = cloneValue(v)
	}
	for k, v := range override {
		if v == nil {
			continue
		}
		ov, ovOK := v.(map[string]any)
		bv, bvOK := out[k].(map[string]any)
		if ovOK && bvOK {
			out[k] = Merge(bv, ov)
			continue
		}
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = cloneValue(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}

// Diff walks override against base and returns a tree with a boolean
// true at every leaf where the override differs from the base value.
// Leaves equal to the base and keys absent from the override are
// omitted, so an empty override diffs to an empty tree.
func Diff(base, override map[string]any) map[string]any {
	out := map[string]any{}
	for k, ov := range override {
		if ov == nil {
			continue
		}
		bv, exists := base[k]
		om, omOK := ov.(map[string]any)
		bm, bmOK := bv.(map[string]any)
		if omOK && bmOK {
			sub := Diff(bm, om)
			if len(sub) > 0 {
				out[k] = sub
			}
			continue
		}
		if !exists || !valueEqual(bv, ov) {
			out[k] = true
		}
	}
	return out
}

func valueEqual(a, b any) bool {
	am, aOK := a.(map[string]any)
	bm, bOK := b.(map[string]any)
	if aOK && bOK {
		if len(am) != len(bm) {
			return false
		}
		for k, av := range am {
			bv, ok := bm[k]
			if !ok || !valueEqual(av, bv) {
				return false
			}
		}
		return true
	}
	as, aOK := a.([]any)
	bs, bOK := b.([]any)
	if aOK && bOK {
		if len(as) != len(bs) {
			return false
		}
		for i := range as {
			if !valueEqual(as[i], bs[i]) {
				return false
			}
		}
		return true
	}
	return numericEqual(a, b)
}

// numericEqual compares scalars, treating int and float64 forms of the
// same number as equal. JSON round-trips turn ints into float64s, so a
// stored override may carry a different numeric type than the default.
func numericEqual(a, b any) bool {
	af, aOK := toFloat(a)
	bf, bOK := toFloat(b)
	if aOK && bOK {
		return af == bf
	}
	return a == b
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case float64:
		return t, true
	case float32:
		return float64(t), true
	default:
		return 0, false
	}
}
