package configinfra

import (
	"strconv"
	"strings"
)

// ParseScalar coerces a raw string into a typed value: boolean first
// (true/1/yes/on and false/0/no/off, case-insensitive), then integer,
// otherwise the string itself. Callers keep the original string as the
// value's RawValue.
func ParseScalar(raw string) interface{} {
	if b, ok := parseBool(raw); ok {
		return b
	}
	if i, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
		return i
	}
	return raw
}

func parseBool(raw string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "yes", "on":
		return true, true
	case "false", "0", "no", "off":
		return false, true
	}
	return false, false
}
