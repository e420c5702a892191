package pipeline

// Typed readers over the resolved settings document. The resolver
// guarantees every leaf exists after merging over defaults, so missing
// keys only happen for genuinely unknown paths and fall back to the
// zero-ish defaults below.

func section(doc map[string]any, name string) map[string]any {
	if s, ok := doc[name].(map[string]any); ok {
		return s
	}
	return map[string]any{}
}

func boolSetting(doc map[string]any, sec, key string, fallback bool) bool {
	if v, ok := section(doc, sec)[key].(bool); ok {
		return v
	}
	return fallback
}

func stringSetting(doc map[string]any, sec, key, fallback string) string {
	if v, ok := section(doc, sec)[key].(string); ok {
		return v
	}
	return fallback
}

// intSetting accepts int or float64: JSON round-trips turn numbers
// into float64.
func intSetting(doc map[string]any, sec, key string, fallback int) int {
	switch v := section(doc, sec)[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return fallback
}

func stringsSetting(doc map[string]any, sec, key string) []string {
	raw, ok := section(doc, sec)[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// purgeSafelist returns the safelist entries for a purge tier
// ("standard" or "greedy") from css.purgeSafelist.
func purgeSafelist(doc map[string]any, tier string) []string {
	safelists, ok := section(doc, "css")["purgeSafelist"].(map[string]any)
	if !ok {
		return nil
	}
	raw, ok := safelists[tier].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
