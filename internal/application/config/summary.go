package appconfig

// Summary is the shape-stable payload consumed by the telemetry emitter.
// SourceUsage counts keys where a source produced any entry; SourceWins
// counts keys where its entry was the winner. Every registered source is
// present in both maps, at zero if it never contributed.
type Summary struct {
	TotalKeysResolved int            `json:"total_keys_resolved"`
	KeysWithOverrides int            `json:"keys_with_overrides"`
	KeysUsingDefaults int            `json:"keys_using_defaults"`
	SourceUsage       map[string]int `json:"source_usage"`
	SourceWins        map[string]int `json:"source_wins"`
}

// Summary reports usage and win counters over the most recent resolution
// pass.
func (r *Resolver) Summary() Summary {
	s := Summary{
		SourceUsage: make(map[string]int, len(r.sources)),
		SourceWins:  make(map[string]int, len(r.sources)),
	}
	for _, src := range r.sources {
		s.SourceUsage[src.Name()] = 0
		s.SourceWins[src.Name()] = 0
	}

	for _, h := range r.Histories() {
		s.TotalKeysResolved++
		if h.HasOverrides() {
			s.KeysWithOverrides++
		}
		if h.DefaultUsed {
			s.KeysUsingDefaults++
		}
		for _, e := range h.Entries {
			s.SourceUsage[e.Value.SourceName]++
			if e.WasUsed {
				s.SourceWins[e.Value.SourceName]++
			}
		}
	}
	return s
}
