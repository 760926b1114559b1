package appconfig

import (
	"context"
	"log"
	"sort"
	"sync"
	"time"

	configdomain "snowctl.dev/cli/internal/core/domain/config"
	configports "snowctl.dev/cli/internal/core/ports/config"
)

// Resolver owns an ordered list of value sources and answers "what is the
// effective value of this key, and why". Each resolution pass records a full
// ResolutionHistory per key for diagnostics and telemetry.
//
// Sources are read-only and shared freely; the history map is guarded by a
// mutex, and ResolveAll builds a fresh map and swaps it in so concurrent
// readers never observe a partially-updated pass.
type Resolver struct {
	sources []configports.ValueSource
	logger  *log.Logger

	mu      sync.RWMutex
	history map[string]*configdomain.ResolutionHistory
}

// NewResolver orders the given sources by priority, keeping registration
// order within equal priority (that order is the tie-break, so the current
// env convention must be registered before the legacy one).
func NewResolver(sources ...configports.ValueSource) *Resolver {
	ordered := make([]configports.ValueSource, len(sources))
	copy(ordered, sources)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority() < ordered[j].Priority()
	})
	return &Resolver{
		sources: ordered,
		logger:  log.Default(),
		history: make(map[string]*configdomain.ResolutionHistory),
	}
}

// SetLogger replaces the warning logger. Useful in tests.
func (r *Resolver) SetLogger(l *log.Logger) { r.logger = l }

// Sources returns the sources in consultation order.
func (r *Resolver) Sources() []configports.ValueSource {
	out := make([]configports.ValueSource, len(r.sources))
	copy(out, r.sources)
	return out
}

// Resolve runs a resolution pass for one key. The second return is false
// when no source produced a value; callers treating the key as required must
// check it (or use ResolveWithDefault).
func (r *Resolver) Resolve(ctx context.Context, key string) (interface{}, bool) {
	h := r.resolveKey(ctx, key)
	r.storeHistory(h)
	return h.FinalValue, len(h.Entries) > 0
}

// ResolveWithDefault resolves one key, substituting def when no source
// produced a value and recording that the default was used.
func (r *Resolver) ResolveWithDefault(ctx context.Context, key string, def interface{}) interface{} {
	h := r.resolveKey(ctx, key)
	if len(h.Entries) == 0 {
		h.FinalValue = def
		h.DefaultUsed = true
	}
	r.storeHistory(h)
	return h.FinalValue
}

// ResolveAll resolves every key any source can currently discover and
// returns the effective value per key. The pass replaces the stored history
// wholesale.
func (r *Resolver) ResolveAll(ctx context.Context) map[string]interface{} {
	keys := r.discoverableKeys(ctx)

	fresh := make(map[string]*configdomain.ResolutionHistory, len(keys))
	resolved := make(map[string]interface{}, len(keys))
	for _, key := range keys {
		h := r.resolveKey(ctx, key)
		fresh[key] = h
		if len(h.Entries) > 0 {
			resolved[key] = h.FinalValue
		}
	}

	r.mu.Lock()
	r.history = fresh
	r.mu.Unlock()
	return resolved
}

// History returns the frozen resolution history for a key from the most
// recent pass, or nil when the key has never been resolved. The returned
// value is read-only.
func (r *Resolver) History(key string) *configdomain.ResolutionHistory {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.history[key]
}

// Histories returns every stored history keyed by config key.
func (r *Resolver) Histories() map[string]*configdomain.ResolutionHistory {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]*configdomain.ResolutionHistory, len(r.history))
	for k, h := range r.history {
		out[k] = h
	}
	return out
}

// resolveKey is the resolution algorithm: consult every source in priority
// order, record one entry per non-empty answer, first entry wins.
func (r *Resolver) resolveKey(ctx context.Context, key string) *configdomain.ResolutionHistory {
	h := &configdomain.ResolutionHistory{Key: key}
	for _, src := range r.sources {
		values, err := src.Discover(ctx, key)
		if err != nil {
			// Source-local failure: skip it, lower-priority sources may
			// still hold the key.
			r.logger.Printf("config: source %s failed discovering %q: %v", src.Name(), key, err)
			continue
		}
		v, ok := values[key]
		if !ok {
			continue
		}
		h.Entries = append(h.Entries, configdomain.ResolutionEntry{
			Value:     v,
			Timestamp: time.Now(),
		})
	}
	if len(h.Entries) > 0 {
		h.Entries[0].WasUsed = true
		h.FinalValue = h.Entries[0].Value.Value
		winner := h.Entries[0].Value.SourceName
		for i := 1; i < len(h.Entries); i++ {
			h.Entries[i].OverriddenBy = winner
		}
	}
	return h
}

func (r *Resolver) storeHistory(h *configdomain.ResolutionHistory) {
	r.mu.Lock()
	r.history[h.Key] = h
	r.mu.Unlock()
}

// discoverableKeys unions every source's full discovery, sorted for a
// deterministic pass order.
func (r *Resolver) discoverableKeys(ctx context.Context) []string {
	seen := make(map[string]struct{})
	for _, src := range r.sources {
		values, err := src.Discover(ctx, "")
		if err != nil {
			r.logger.Printf("config: source %s failed discovery: %v", src.Name(), err)
			continue
		}
		for k := range values {
			seen[k] = struct{}{}
		}
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
