package configinfra

import (
	"os"
	"path/filepath"
)

// SnowsqlConfigPaths lists the legacy tool's config files in resolution
// order: highest precedence (user-specific) first, existing files only.
//
// The legacy tool itself reads its locations system-to-user with last-file-
// wins semantics; this engine works first-file-wins, so the conventional
// search order is reversed before filtering.
func SnowsqlConfigPaths() []string {
	return ExistingPathsFirstWins(snowsqlSearchOrder())
}

// SnowflakeConfigPaths lists the tool's own config.toml candidates, highest
// precedence first, existing files only. $SNOWFLAKE_HOME overrides the
// per-user defaults.
func SnowflakeConfigPaths() []string {
	var candidates []string
	if home := os.Getenv("SNOWFLAKE_HOME"); home != "" {
		candidates = append(candidates, filepath.Join(home, "config.toml"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates,
			filepath.Join(home, ".snowflake", "config.toml"),
			filepath.Join(home, ".config", "snowflake", "config.toml"),
		)
	}
	return existingOnly(candidates)
}

// ExistingPathsFirstWins reverses a conventional last-wins search order into
// the first-wins order the file source consumes, dropping paths that do not
// exist on disk.
func ExistingPathsFirstWins(searchOrder []string) []string {
	reversed := make([]string, 0, len(searchOrder))
	for i := len(searchOrder) - 1; i >= 0; i-- {
		reversed = append(reversed, searchOrder[i])
	}
	return existingOnly(reversed)
}

// snowsqlSearchOrder is the legacy tool's conventional search order,
// system locations first, user locations last (last wins there).
func snowsqlSearchOrder() []string {
	order := []string{
		"/etc/snowsql.cnf",
		"/etc/snowflake/snowsql.cnf",
		"/usr/local/etc/snowsql.cnf",
	}
	if home, err := os.UserHomeDir(); err == nil {
		order = append(order,
			filepath.Join(home, ".snowsql.cnf"),
			filepath.Join(home, ".snowsql", "config"),
		)
	}
	return order
}

func existingOnly(paths []string) []string {
	existing := make([]string, 0, len(paths))
	for _, p := range paths {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			existing = append(existing, p)
		}
	}
	return existing
}
