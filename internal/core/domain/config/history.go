package configdomain

import "time"

// ResolutionEntry records one source's answer for a key during a resolution
// pass. Entries are immutable once the pass completes.
type ResolutionEntry struct {
	Value     ConfigValue
	Timestamp time.Time

	// WasUsed is true iff this entry's value became the key's final value.
	WasUsed bool

	// OverriddenBy names the source whose entry beat this one. Empty when the
	// entry was used, or when it lost for another reason.
	OverriddenBy string
}

// ResolutionHistory is the full provenance chain for a single key: every
// source that produced a value, in priority order (highest first), plus the
// outcome. Built once per resolution pass and frozen afterwards; re-resolving
// replaces the history rather than mutating it.
type ResolutionHistory struct {
	Key     string
	Entries []ResolutionEntry

	FinalValue interface{}

	// DefaultUsed is true when no source produced a value and a
	// caller-supplied default was substituted.
	DefaultUsed bool
}

// Winner returns the entry that produced the final value, or nil when no
// source answered for the key.
func (h *ResolutionHistory) Winner() *ResolutionEntry {
	for i := range h.Entries {
		if h.Entries[i].WasUsed {
			return &h.Entries[i]
		}
	}
	return nil
}

// SourcesConsulted lists the source names that produced an entry, highest
// priority first.
func (h *ResolutionHistory) SourcesConsulted() []string {
	names := make([]string, 0, len(h.Entries))
	for _, e := range h.Entries {
		names = append(names, e.Value.SourceName)
	}
	return names
}

// HasOverrides reports whether any entry lost to a higher-priority source.
func (h *ResolutionHistory) HasOverrides() bool {
	for _, e := range h.Entries {
		if e.OverriddenBy != "" {
			return true
		}
	}
	return false
}
