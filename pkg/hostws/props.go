package hostws

import (
	"fmt"
	"strconv"
	"strings"
)

// isEventKey reports whether key is an event binding ("onClick" and
// friends). Case-insensitive on the prefix so a miscased handler key never
// leaks a func value onto the wire.
func isEventKey(key string) bool {
	return len(key) > 2 && strings.EqualFold(key[:2], "on")
}

// propString converts a prop value to its wire representation.
func propString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		if val {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}
