package repository

import (
	"sort"
	"time"

	"storefront/internal/domain"
	"storefront/internal/timeutil"
)

// Helpers for decoding raw document maps. Records are written by an external
// management tool, so every field access tolerates absence and wrong types
// rather than failing the read.

func docString(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func docStringPtr(m map[string]interface{}, key string) *string {
	if v, ok := m[key].(string); ok && v != "" {
		return &v
	}
	return nil
}

func docStringSlice(m map[string]interface{}, key string) []string {
	raw, ok := m[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func docInt(m map[string]interface{}, key string) int {
	switch v := m[key].(type) {
	case int64:
		return int(v)
	case int:
		return v
	case float64:
		return int(v)
	default:
		return 0
	}
}

func docFloat(m map[string]interface{}, key string) float64 {
	switch v := m[key].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case int:
		return float64(v)
	default:
		return 0
	}
}

func docFloatPtr(m map[string]interface{}, key string) *float64 {
	switch v := m[key].(type) {
	case float64:
		return &v
	case int64:
		f := float64(v)
		return &f
	default:
		return nil
	}
}

func docBool(m map[string]interface{}, key string, def bool) bool {
	if v, ok := m[key].(bool); ok {
		return v
	}
	return def
}

func docTime(m map[string]interface{}, key string) time.Time {
	return timeutil.Normalize(m[key])
}

func docMapSlice(m map[string]interface{}, key string) []map[string]interface{} {
	raw, ok := m[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]map[string]interface{}, 0, len(raw))
	for _, v := range raw {
		if mm, ok := v.(map[string]interface{}); ok {
			out = append(out, mm)
		}
	}
	return out
}

// docSpecEntries accepts the current array-of-entries form and keeps its
// order. Legacy records store specifications as a plain map; those fall back
// to label order, since the store does not preserve map key order.
func docSpecEntries(m map[string]interface{}, key string) []domain.SpecEntry {
	if entries := docMapSlice(m, key); len(entries) > 0 {
		out := make([]domain.SpecEntry, 0, len(entries))
		for _, e := range entries {
			label := docString(e, "label")
			if label == "" {
				label = docString(e, "name")
			}
			if label == "" {
				continue
			}
			out = append(out, domain.SpecEntry{Label: label, Value: docString(e, "value")})
		}
		return out
	}

	legacy, ok := m[key].(map[string]interface{})
	if !ok || len(legacy) == 0 {
		return nil
	}
	labels := make([]string, 0, len(legacy))
	for k := range legacy {
		labels = append(labels, k)
	}
	sort.Strings(labels)

	out := make([]domain.SpecEntry, 0, len(labels))
	for _, label := range labels {
		if v, ok := legacy[label].(string); ok {
			out = append(out, domain.SpecEntry{Label: label, Value: v})
		}
	}
	return out
}
