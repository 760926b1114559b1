package configinfra

import "sort"

// KeyMapping translates the legacy tool's key vocabulary to the canonical
// one. The same table serves the legacy environment source (SNOWSQL_PWD ->
// password) and the legacy config file handler (accountname -> account), in
// both directions: forward for enumeration, reverse for targeted discovery.
type KeyMapping struct {
	toCanonical map[string]string
	fromCanon   map[string][]string
}

// NewKeyMapping builds a mapping from legacy-name -> canonical-name pairs.
// Several legacy names may map to one canonical key; reverse lookups preserve
// the registration order of the legacy names.
func NewKeyMapping(pairs map[string]string) *KeyMapping {
	m := &KeyMapping{
		toCanonical: make(map[string]string, len(pairs)),
		fromCanon:   make(map[string][]string),
	}
	for legacy, canonical := range pairs {
		m.toCanonical[legacy] = canonical
	}
	// Deterministic reverse table regardless of map iteration order.
	for _, legacy := range sortedKeys(pairs) {
		canonical := pairs[legacy]
		m.fromCanon[canonical] = append(m.fromCanon[canonical], legacy)
	}
	return m
}

// Canonical returns the canonical key for a legacy name. Unmapped names pass
// through unchanged so unknown-but-harmless legacy keys still resolve.
func (m *KeyMapping) Canonical(legacy string) string {
	if c, ok := m.toCanonical[legacy]; ok {
		return c
	}
	return legacy
}

// Legacy returns every legacy name for a canonical key, in registration
// order. A key with no mapping maps to itself.
func (m *KeyMapping) Legacy(canonical string) []string {
	if names, ok := m.fromCanon[canonical]; ok {
		return names
	}
	return []string{canonical}
}

// Knows reports whether the canonical key has an explicit legacy spelling.
func (m *KeyMapping) Knows(canonical string) bool {
	_, ok := m.fromCanon[canonical]
	return ok
}

// SnowsqlKeyMapping is the legacy-to-canonical table for the superseded
// snowsql tool. Environment variables use the upper-case spellings of the
// left column; config files use the lower-case ones.
func SnowsqlKeyMapping() *KeyMapping {
	return NewKeyMapping(map[string]string{
		"accountname":   "account",
		"username":      "user",
		"password":      "password",
		"pwd":           "password",
		"dbname":        "database",
		"databasename":  "database",
		"schemaname":    "schema",
		"warehousename": "warehouse",
		"rolename":      "role",
		"host":          "host",
		"port":          "port",
		"region":        "region",
		"authenticator": "authenticator",
		"proxy_host":    "proxy_host",
		"proxy_port":    "proxy_port",
	})
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
