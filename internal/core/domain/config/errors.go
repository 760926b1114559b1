package configdomain

import "fmt"

// InvalidValueError reports a configuration value that parsed but is not
// acceptable (an unknown log level, an out-of-range port). It carries the
// offending key and value so callers can surface both without re-resolving.
type InvalidValueError struct {
	Key    string
	Value  interface{}
	Reason string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value for %q: %v (%s)", e.Key, e.Value, e.Reason)
}

// NewInvalidValueError builds an InvalidValueError.
func NewInvalidValueError(key string, value interface{}, reason string) *InvalidValueError {
	return &InvalidValueError{Key: key, Value: value, Reason: reason}
}
