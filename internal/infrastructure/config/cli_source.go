package configinfra

import (
	"context"

	configdomain "snowctl.dev/cli/internal/core/domain/config"
	configports "snowctl.dev/cli/internal/core/ports/config"
)

// SourceCLIArguments identifies the command-line flag source.
const SourceCLIArguments = "cli_arguments"

// CliArgumentSource wraps an already-parsed flat map of flag name -> value.
// Absent flags are nil entries and never surface from Discover. Values pass
// through untransformed; RawValue always equals Value.
type CliArgumentSource struct {
	args map[string]interface{}
}

// NewCliArgumentSource copies the given flag map so later caller mutation
// cannot leak into discovery.
func NewCliArgumentSource(args map[string]interface{}) *CliArgumentSource {
	copied := make(map[string]interface{}, len(args))
	for k, v := range args {
		copied[k] = v
	}
	return &CliArgumentSource{args: copied}
}

func (s *CliArgumentSource) Name() string { return SourceCLIArguments }

func (s *CliArgumentSource) Priority() configdomain.SourcePriority {
	return configdomain.PriorityCLIArgument
}

func (s *CliArgumentSource) Discover(ctx context.Context, key string) (map[string]configdomain.ConfigValue, error) {
	found := make(map[string]configdomain.ConfigValue)
	if key != "" {
		if v, ok := s.args[key]; ok && v != nil {
			found[key] = s.value(key, v)
		}
		return found, nil
	}
	for k, v := range s.args {
		if v == nil {
			continue
		}
		found[k] = s.value(k, v)
	}
	return found, nil
}

// SupportsKey is true for any key the flag map was constructed with, even
// when the flag was not set on this invocation.
func (s *CliArgumentSource) SupportsKey(key string) bool {
	_, ok := s.args[key]
	return ok
}

func (s *CliArgumentSource) value(key string, v interface{}) configdomain.ConfigValue {
	return configdomain.ConfigValue{
		Key:        key,
		Value:      v,
		RawValue:   v,
		SourceName: SourceCLIArguments,
		Priority:   configdomain.PriorityCLIArgument,
	}
}

var _ configports.ValueSource = (*CliArgumentSource)(nil)
