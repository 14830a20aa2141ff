package validators

import (
	"net/http"
	"strconv"
	"strings"
)

// CoerceQueryInt parses an integer query parameter, falling back to the
// default when the value is missing or malformed. Listing inputs are coerced
// rather than rejected.
func CoerceQueryInt(r *http.Request, key string, defaultVal int) int {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return defaultVal
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return defaultVal
	}
	return value
}

// ClampQueryInt coerces and then clamps the value into [min, max].
func ClampQueryInt(r *http.Request, key string, defaultVal, min, max int) int {
	value := CoerceQueryInt(r, key, defaultVal)
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// CoerceQueryInt64 parses an int64 query parameter. The second return reports
// whether a usable value was present.
func CoerceQueryInt64(r *http.Request, key string) (int64, bool) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return 0, false
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
