package types

import "encoding/json"

// Source payloads arrive with inconsistent key casing depending on which
// scraper produced them, so optional fields are looked up under both their
// snake_case and camelCase names. First present key wins.

func firstString(raw map[string]json.RawMessage, keys ...string) string {
	for _, key := range keys {
		if msg, ok := raw[key]; ok {
			var s string
			if err := json.Unmarshal(msg, &s); err == nil {
				return s
			}
		}
	}
	return ""
}

func firstFloatPtr(raw map[string]json.RawMessage, keys ...string) *float64 {
	for _, key := range keys {
		if msg, ok := raw[key]; ok {
			var f float64
			if err := json.Unmarshal(msg, &f); err == nil {
				return &f
			}
		}
	}
	return nil
}

func firstIntPtr(raw map[string]json.RawMessage, keys ...string) *int {
	for _, key := range keys {
		if msg, ok := raw[key]; ok {
			var n int
			if err := json.Unmarshal(msg, &n); err == nil {
				return &n
			}
		}
	}
	return nil
}

func firstBoolPtr(raw map[string]json.RawMessage, keys ...string) *bool {
	for _, key := range keys {
		if msg, ok := raw[key]; ok {
			var b bool
			if err := json.Unmarshal(msg, &b); err == nil {
				return &b
			}
		}
	}
	return nil
}

func firstStrings(raw map[string]json.RawMessage, keys ...string) []string {
	for _, key := range keys {
		if msg, ok := raw[key]; ok {
			var list []string
			if err := json.Unmarshal(msg, &list); err == nil {
				return list
			}
		}
	}
	return nil
}
