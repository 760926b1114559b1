package appconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// exportedEntry and exportedHistory mirror the support-ticket export format:
// nested maps and sequences of primitives only, timestamps as ISO-8601.
type exportedEntry struct {
	Source       string      `json:"source"`
	Value        interface{} `json:"value"`
	RawValue     interface{} `json:"raw_value"`
	WasUsed      bool        `json:"was_used"`
	OverriddenBy *string     `json:"overridden_by"`
	Timestamp    string      `json:"timestamp"`
}

type exportedHistory struct {
	FinalValue       interface{}     `json:"final_value"`
	DefaultUsed      bool            `json:"default_used"`
	SourcesConsulted []string        `json:"sources_consulted"`
	Entries          []exportedEntry `json:"entries"`
}

// ExportHistory writes every stored resolution history to path as one JSON
// document, suitable for attaching to a support ticket. Keys with no history
// simply do not appear; the export itself never fails on missing data.
func (r *Resolver) ExportHistory(path string) error {
	doc := make(map[string]exportedHistory)
	for key, h := range r.Histories() {
		out := exportedHistory{
			FinalValue:       h.FinalValue,
			DefaultUsed:      h.DefaultUsed,
			SourcesConsulted: h.SourcesConsulted(),
			Entries:          make([]exportedEntry, 0, len(h.Entries)),
		}
		for _, e := range h.Entries {
			entry := exportedEntry{
				Source:    e.Value.SourceName,
				Value:     e.Value.Value,
				RawValue:  e.Value.RawValue,
				WasUsed:   e.WasUsed,
				Timestamp: e.Timestamp.UTC().Format(time.RFC3339Nano),
			}
			if e.OverriddenBy != "" {
				overridden := e.OverriddenBy
				entry.OverriddenBy = &overridden
			}
			out.Entries = append(out.Entries, entry)
		}
		doc[key] = out
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode resolution history: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write resolution history: %w", err)
	}
	return nil
}
