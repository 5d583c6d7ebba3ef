package resource

import (
	"github.com/tictail/tictail-go/internal/constants"
	"github.com/tictail/tictail-go/pkg/tictail"
)

// IsTimeField reports whether values stored under key are timestamps.
func IsTimeField(key string) bool {
	return key == constants.FieldCreatedAt || key == constants.FieldModifiedAt
}

// TransformValue converts a decoded JSON value stored under key. Strings
// under created_at or modified_at become time.Time; objects and lists are
// walked so the rule applies at any depth. A string that does not parse is
// kept as is.
func TransformValue(key string, value interface{}) interface{} {
	switch v := value.(type) {
	case map[string]interface{}:
		return TransformMap(v)
	case []interface{}:
		transformed := make([]interface{}, len(v))
		for i, item := range v {
			transformed[i] = TransformValue(key, item)
		}

		return transformed
	case string:
		if IsTimeField(key) {
			if parsed, ok := tictail.ParseTime(v); ok {
				return parsed
			}
		}

		return v
	default:
		return value
	}
}

// TransformMap returns a transformed copy of data.
func TransformMap(data map[string]interface{}) map[string]interface{} {
	transformed := make(map[string]interface{}, len(data))
	for key, value := range data {
		transformed[key] = TransformValue(key, value)
	}

	return transformed
}
