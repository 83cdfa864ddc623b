// Package fieldutil normalizes request fields that may arrive in more
// than one shape. Portfolio list fields come in as native JSON arrays,
// as JSON-encoded strings from multipart forms, or as bare strings, and
// every caller wants a plain ordered []string out the other side.
package fieldutil

import (
	"encoding/json"
	"strings"
)

// Normalize converts value into an ordered list of strings.
//
// A native list is returned as-is. A string is first tried as a JSON
// document: an encoded array decodes to its elements, any other valid
// JSON degrades to the fallback. A string that is not JSON at all is
// wrapped as a single-element list when non-empty. Anything else, or an
// empty input, yields the fallback. Normalize never fails; update
// handlers rely on passing the stored value as fallback so a malformed
// field leaves the record unchanged.
func Normalize(value interface{}, fallback []string) []string {
	switch v := value.(type) {
	case nil:
		return fallback
	case []string:
		return v
	case []interface{}:
		items := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				items = append(items, s)
			}
		}
		return items
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return fallback
		}

		var decoded interface{}
		if err := json.Unmarshal([]byte(trimmed), &decoded); err != nil {
			return []string{trimmed}
		}

		list, ok := decoded.([]interface{})
		if !ok {
			return fallback
		}

		items := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok {
				items = append(items, s)
			}
		}
		return items
	default:
		return fallback
	}
}

// Links converts a social-link field into a string map. A native map
// keeps its string-valued entries, an encoded string is decoded, and
// anything malformed degrades to an empty map.
func Links(value interface{}) map[string]string {
	switch v := value.(type) {
	case map[string]string:
		return v
	case map[string]interface{}:
		return stringValues(v)
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return map[string]string{}
		}
		var decoded map[string]interface{}
		if err := json.Unmarshal([]byte(trimmed), &decoded); err != nil {
			return map[string]string{}
		}
		return stringValues(decoded)
	default:
		return map[string]string{}
	}
}

func stringValues(raw map[string]interface{}) map[string]string {
	links := make(map[string]string, len(raw))
	for key, value := range raw {
		if s, ok := value.(string); ok {
			links[key] = s
		}
	}
	return links
}
