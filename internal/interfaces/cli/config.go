package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	appconfig "snowctl.dev/cli/internal/application/config"
	configinfra "snowctl.dev/cli/internal/infrastructure/config"
)

// NewConfigCommand groups the configuration diagnostics commands.
func NewConfigCommand(container *CLIContainer) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect resolved configuration",
		Long: `Inspect the effective configuration and its provenance.

Every value is resolved from CLI flags, environment variables and config
files in precedence order; these commands show which source won each key
and why the others lost.`,
	}

	configCmd.AddCommand(newConfigShowCommand(container))
	configCmd.AddCommand(newConfigGetCommand(container))
	configCmd.AddCommand(newConfigChainCommand(container))
	configCmd.AddCommand(newConfigExportCommand(container))
	configCmd.AddCommand(newConfigSourcesCommand(container))
	configCmd.AddCommand(newConfigDoctorCommand(container))

	return configCmd
}

func newConfigShowCommand(container *CLIContainer) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show every resolved configuration value",
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved := container.Resolver.ResolveAll(cmd.Context())
			container.Emitter.Emit(container.Resolver.Summary())

			if err := appconfig.ValidateResolvedParams(resolved); err != nil {
				return err
			}

			if len(resolved) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No configuration values found.")
				return nil
			}

			keys := make([]string, 0, len(resolved))
			for k := range resolved {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				h := container.Resolver.History(k)
				source := ""
				if w := h.Winner(); w != nil {
					source = w.Value.SourceName
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-24s %-20s %s\n",
					k, appconfig.DisplayValue(k, resolved[k]), source)
			}
			return nil
		},
	}
}

func newConfigGetCommand(container *CLIContainer) *cobra.Command {
	var defaultValue string

	cmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Resolve a single configuration key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			if cmd.Flags().Changed("default") {
				value := container.Resolver.ResolveWithDefault(cmd.Context(), key, defaultValue)
				fmt.Fprintln(cmd.OutOrStdout(), appconfig.DisplayValue(key, value))
				return nil
			}
			value, found := container.Resolver.Resolve(cmd.Context(), key)
			if !found {
				return fmt.Errorf("no value found for %q in any source", key)
			}
			fmt.Fprintln(cmd.OutOrStdout(), appconfig.DisplayValue(key, value))
			return nil
		},
	}

	cmd.Flags().StringVar(&defaultValue, "default", "", "Value to use when no source defines the key")
	return cmd
}

func newConfigChainCommand(container *CLIContainer) *cobra.Command {
	return &cobra.Command{
		Use:   "chain [key]",
		Short: "Show the resolution chain for one key, or for every key",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				container.Resolver.Resolve(cmd.Context(), args[0])
				container.Resolver.PrintResolutionChain(cmd.OutOrStdout(), args[0])
				return nil
			}
			container.Resolver.ResolveAll(cmd.Context())
			container.Resolver.PrintAllChains(cmd.OutOrStdout())
			return nil
		},
	}
}

func newConfigExportCommand(container *CLIContainer) *cobra.Command {
	return &cobra.Command{
		Use:   "export <path>",
		Short: "Export the full resolution history as JSON",
		Long: `Export every key's resolution history to a JSON file.

The export contains, per key, the final value, every source consulted and
which one won. Attach it to a support ticket when configuration resolves
to something unexpected.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			container.Resolver.ResolveAll(cmd.Context())
			container.Emitter.Emit(container.Resolver.Summary())
			if err := container.Resolver.ExportHistory(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Resolution history written to %s\n", args[0])
			return nil
		},
	}
}

func newConfigSourcesCommand(container *CLIContainer) *cobra.Command {
	return &cobra.Command{
		Use:   "sources",
		Short: "List configuration sources in precedence order",
		RunE: func(cmd *cobra.Command, args []string) error {
			for i, src := range container.Resolver.Sources() {
				fmt.Fprintf(cmd.OutOrStdout(), "%d. %-20s (%s)\n", i+1, src.Name(), src.Priority())
				if fs, ok := src.(*configinfra.FileSource); ok {
					for _, p := range fs.Paths() {
						fmt.Fprintf(cmd.OutOrStdout(), "     %s\n", p)
					}
				}
			}
			return nil
		},
	}
}
