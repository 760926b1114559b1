package configdomain

// SourcePriority orders source categories. A lower ordinal beats a higher one;
// ties within a category are broken by source registration order.
type SourcePriority int

const (
	// PriorityCLIArgument is the highest precedence: already-parsed command
	// line flags always win when present.
	PriorityCLIArgument SourcePriority = iota

	// PriorityEnvironment covers both the current and the legacy environment
	// variable conventions.
	PriorityEnvironment

	// PriorityFile covers config files (tool config and legacy tool config).
	PriorityFile
)

// String returns the priority name used in diagnostics.
func (p SourcePriority) String() string {
	switch p {
	case PriorityCLIArgument:
		return "cli_argument"
	case PriorityEnvironment:
		return "environment"
	case PriorityFile:
		return "file"
	default:
		return "unknown"
	}
}

// ConfigValue is a single configuration value with provenance. Values are
// created fresh on every discovery call and never mutated afterwards.
type ConfigValue struct {
	// Key is the canonical configuration key, e.g. "account".
	Key string

	// Value is the parsed, typed value.
	Value interface{}

	// RawValue is the original unparsed representation (the literal string
	// read from an environment variable or file), kept for display. Nil when
	// no parsing occurred.
	RawValue interface{}

	// SourceName is the stable identifier of the producing source, e.g.
	// "cli_arguments", "snowflake_cli_env", "snowsql_env".
	SourceName string

	Priority SourcePriority
}

// Raw returns RawValue when set, otherwise the parsed value. Display helper.
func (v ConfigValue) Raw() interface{} {
	if v.RawValue != nil {
		return v.RawValue
	}
	return v.Value
}
