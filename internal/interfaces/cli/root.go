package cli

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	appconfig "snowctl.dev/cli/internal/application/config"
	"snowctl.dev/cli/internal/infrastructure/telemetry"
)

var (
	Version   = "dev"     // Overridden by ldflags
	BuildTime = "unknown" // Overridden by ldflags
)

// connectionFlags are the flags that feed the CLI-argument source, by
// canonical key name.
var connectionFlags = []string{
	"account", "user", "password", "database", "schema",
	"warehouse", "role", "host", "port", "authenticator", "region",
}

// CLIContainer holds per-invocation dependencies. There is no global
// resolver: the container is built in PersistentPreRunE once flags are
// parsed and handed to every subcommand.
type CLIContainer struct {
	Resolver *appconfig.Resolver
	Emitter  *telemetry.Emitter
}

// NewRootCommand builds the base command.
func NewRootCommand(container *CLIContainer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "snowctl",
		Short: "snowctl - cloud data warehouse CLI",
		Long: `snowctl is a command line tool for a cloud data warehouse.

Connection parameters are resolved from command-line flags, environment
variables (current SNOWFLAKE_* and legacy SNOWSQL_* conventions), the tool's
config.toml, and legacy snowsql config files, in that precedence order. The
'config' command shows what was resolved and why.`,
		Version: Version,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			container.Resolver = appconfig.NewDefaultResolver(collectFlagOverrides(cmd))
			return nil
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf("{{.Name}} version {{.Version}}\nBuild time: %s\nPlatform: %s/%s\n",
		BuildTime, runtime.GOOS, runtime.GOARCH))

	flags := rootCmd.PersistentFlags()
	flags.String("account", "", "Account identifier")
	flags.String("user", "", "Username")
	flags.String("password", "", "Password")
	flags.String("database", "", "Database")
	flags.String("schema", "", "Schema")
	flags.String("warehouse", "", "Warehouse")
	flags.String("role", "", "Role")
	flags.String("host", "", "Host override")
	flags.Int("port", 0, "Port override")
	flags.String("authenticator", "", "Authenticator")
	flags.String("region", "", "Region")

	rootCmd.AddCommand(NewConfigCommand(container))

	return rootCmd
}

// collectFlagOverrides builds the flat flag map the CLI-argument source
// wraps. Only flags the user actually set appear; everything else stays
// absent so lower-priority sources can answer.
func collectFlagOverrides(cmd *cobra.Command) map[string]interface{} {
	flags := cmd.Root().PersistentFlags()
	overrides := make(map[string]interface{})
	for _, name := range connectionFlags {
		flag := flags.Lookup(name)
		if flag == nil || !flag.Changed {
			continue
		}
		if name == "port" {
			if port, err := flags.GetInt(name); err == nil {
				overrides[name] = port
			}
			continue
		}
		if v, err := flags.GetString(name); err == nil {
			overrides[name] = v
		}
	}
	return overrides
}

// Execute runs the CLI.
func Execute() {
	container := &CLIContainer{Emitter: telemetry.NewEmitter()}
	if err := NewRootCommand(container).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
