package configinfra

import (
	"context"
	"os"
	"strings"

	configdomain "snowctl.dev/cli/internal/core/domain/config"
	configports "snowctl.dev/cli/internal/core/ports/config"
)

// Source names and prefixes for the two environment variable conventions.
const (
	SourceSnowflakeEnv = "snowflake_cli_env"
	SourceSnowsqlEnv   = "snowsql_env"

	snowflakeEnvPrefix = "SNOWFLAKE_"
	snowsqlEnvPrefix   = "SNOWSQL_"
)

// EnvSource discovers configuration from prefixed environment variables.
// The environment is re-read on every call; the source itself holds no
// mutable state and is safe for concurrent use.
type EnvSource struct {
	name    string
	prefix  string
	mapping *KeyMapping // nil means variable suffixes are canonical keys
}

// NewSnowflakeEnvSource reads the current convention: SNOWFLAKE_<UPPER_KEY>,
// where the suffix lower-cased is the canonical key.
func NewSnowflakeEnvSource() *EnvSource {
	return &EnvSource{name: SourceSnowflakeEnv, prefix: snowflakeEnvPrefix}
}

// NewSnowsqlEnvSource reads the legacy convention: SNOWSQL_<UPPER_LEGACY_KEY>,
// with suffixes translated through the snowsql key table (SNOWSQL_PWD ->
// password).
func NewSnowsqlEnvSource() *EnvSource {
	return &EnvSource{name: SourceSnowsqlEnv, prefix: snowsqlEnvPrefix, mapping: SnowsqlKeyMapping()}
}

func (s *EnvSource) Name() string { return s.name }

func (s *EnvSource) Priority() configdomain.SourcePriority {
	return configdomain.PriorityEnvironment
}

func (s *EnvSource) Discover(ctx context.Context, key string) (map[string]configdomain.ConfigValue, error) {
	if key != "" {
		return s.discoverOne(key), nil
	}
	return s.discoverAll(), nil
}

// SupportsKey: either convention can spell any key, the legacy one through
// its mapped names or the identity spelling.
func (s *EnvSource) SupportsKey(key string) bool { return true }

func (s *EnvSource) discoverOne(key string) map[string]configdomain.ConfigValue {
	found := make(map[string]configdomain.ConfigValue)
	for _, name := range s.variableNames(key) {
		if raw, ok := os.LookupEnv(name); ok && raw != "" {
			found[key] = s.value(key, raw)
			break
		}
	}
	return found
}

func (s *EnvSource) discoverAll() map[string]configdomain.ConfigValue {
	found := make(map[string]configdomain.ConfigValue)
	for _, env := range os.Environ() {
		parts := strings.SplitN(env, "=", 2)
		if len(parts) != 2 || parts[1] == "" {
			continue
		}
		name := parts[0]
		if !strings.HasPrefix(name, s.prefix) {
			continue
		}
		key := strings.ToLower(strings.TrimPrefix(name, s.prefix))
		if s.mapping != nil {
			key = s.mapping.Canonical(key)
		}
		// A variable enumerated earlier already claimed this key.
		if _, ok := found[key]; ok {
			continue
		}
		found[key] = s.value(key, parts[1])
	}
	return found
}

// variableNames lists the environment variables that could carry the key, in
// lookup order: mapped legacy spellings first (SNOWSQL_PWD for password),
// then the identity spelling (SNOWSQL_ACCOUNT for account).
func (s *EnvSource) variableNames(key string) []string {
	identity := s.prefix + strings.ToUpper(key)
	if s.mapping == nil {
		return []string{identity}
	}
	var names []string
	for _, l := range s.mapping.Legacy(key) {
		names = append(names, s.prefix+strings.ToUpper(l))
	}
	seen := false
	for _, n := range names {
		if n == identity {
			seen = true
			break
		}
	}
	if !seen {
		names = append(names, identity)
	}
	return names
}

func (s *EnvSource) value(key, raw string) configdomain.ConfigValue {
	return configdomain.ConfigValue{
		Key:        key,
		Value:      ParseScalar(raw),
		RawValue:   raw,
		SourceName: s.name,
		Priority:   configdomain.PriorityEnvironment,
	}
}

var _ configports.ValueSource = (*EnvSource)(nil)
