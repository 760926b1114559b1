package configports

import (
	"context"

	configdomain "snowctl.dev/cli/internal/core/domain/config"
)

// ValueSource is a read-only provider of configuration values with a fixed
// precedence. Implementations may perform I/O (environment lookups, file
// reads) on every Discover call but must not mutate external state, and must
// be safe for concurrent read-only use after construction.
type ValueSource interface {
	// Name returns a stable identifier, unique per source instance.
	Name() string

	// Priority returns the source's category. Sources of equal priority are
	// consulted in registration order.
	Priority() configdomain.SourcePriority

	// Discover returns the values this source currently holds. With a
	// non-empty key it returns at most one entry; with key == "" it returns
	// every key the source has a value for. Keys whose value is semantically
	// absent (an unset environment variable, a nil flag) never appear.
	//
	// A non-nil error means this source could not answer at all; the resolver
	// treats that as an empty result and moves on to lower-priority sources.
	Discover(ctx context.Context, key string) (map[string]configdomain.ConfigValue, error)

	// SupportsKey reports whether this source could ever answer for key,
	// independent of whether a value is currently present. Capability query
	// only; Discover remains the authority on presence.
	SupportsKey(key string) bool
}
