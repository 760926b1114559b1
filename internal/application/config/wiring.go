package appconfig

import (
	configinfra "snowctl.dev/cli/internal/infrastructure/config"
)

// NewDefaultResolver wires the standard source stack for one process
// invocation, highest precedence first:
//
//	cli_arguments > snowflake_cli_env > snowsql_env
//	             > snowflake_config (config.toml) > snowsql_config (legacy)
//
// cliArgs is the already-parsed flat flag map; absent flags must be nil or
// omitted, never empty strings. There is no shared global resolver: each
// caller (process, test, subprocess) constructs its own.
func NewDefaultResolver(cliArgs map[string]interface{}) *Resolver {
	return NewResolver(
		configinfra.NewCliArgumentSource(cliArgs),
		configinfra.NewSnowflakeEnvSource(),
		configinfra.NewSnowsqlEnvSource(),
		configinfra.NewSnowflakeFileSource(),
		configinfra.NewSnowsqlFileSource(),
	)
}
