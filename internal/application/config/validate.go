package appconfig

import (
	"strings"

	configdomain "snowctl.dev/cli/internal/core/domain/config"
)

var validLogLevels = map[string]struct{}{
	"trace": {}, "debug": {}, "info": {}, "warn": {}, "error": {},
}

// ValidateResolvedParams checks resolved values for validity problems the
// resolver itself does not care about: an unknown log level, an out-of-range
// port. It does not validate business semantics (whether an account actually
// exists is the server's problem). The first offending key is returned as an
// InvalidValueError.
func ValidateResolvedParams(params map[string]interface{}) error {
	if v, ok := params["log_level"]; ok {
		level, isString := v.(string)
		if !isString {
			return configdomain.NewInvalidValueError("log_level", v, "must be a string")
		}
		if _, known := validLogLevels[strings.ToLower(level)]; !known {
			return configdomain.NewInvalidValueError("log_level", v, "unknown log level")
		}
	}
	if v, ok := params["port"]; ok {
		port, isInt := toInt(v)
		if !isInt {
			return configdomain.NewInvalidValueError("port", v, "must be an integer")
		}
		if port < 1 || port > 65535 {
			return configdomain.NewInvalidValueError("port", v, "out of range")
		}
	}
	return nil
}

func toInt(v interface{}) (int, bool) {
	switch t := v.(type) {
	case int:
		return t, true
	case int64:
		return int(t), true
	case float64:
		return int(t), true
	}
	return 0, false
}
