package providers

import (
	"strconv"
	"strings"
)

// ToInt coerces the loosely-typed numeric values upstreams emit ("40",
// "40.0", 40, 40.0) into an int. Returns false for nil, empty, or
// non-numeric input rather than guessing.
func ToInt(v any) (int, bool) {
	switch val := v.(type) {
	case nil:
		return 0, false
	case int:
		return val, true
	case int64:
		return int(val), true
	case float64:
		return int(val), true
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return int(f), true
	default:
		return 0, false
	}
}

// ToIntPtr is ToInt for optional fields: nil means absent.
func ToIntPtr(v any) *int {
	if n, ok := ToInt(v); ok {
		return &n
	}
	return nil
}
