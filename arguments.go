package trello

import (
	"fmt"
	"strings"
)

// Arguments is a flat map of query parameters passed along with an API call.
type Arguments map[string]string

// Defaults returns an empty argument set.
func Defaults() Arguments {
	return Arguments{}
}

// merge returns a copy of a with the entries of overrides applied on top.
func (a Arguments) merge(overrides Arguments) Arguments {
	merged := make(Arguments, len(a)+len(overrides))
	for k, v := range a {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}

// argString renders an attribute value as a query parameter value.
func argString(v interface{}) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case []string:
		return strings.Join(value, ",")
	case []interface{}:
		parts := make([]string, 0, len(value))
		for _, item := range value {
			parts = append(parts, argString(item))
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprintf("%v", value)
	}
}
