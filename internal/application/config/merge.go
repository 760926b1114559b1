package appconfig

// Section names and internal keys that are never root-level connection
// parameters. Dotted variants cover sections some formats flatten.
var (
	documentSections = map[string]struct{}{
		"connections": {},
		"variables":   {},
		"cli":         {},
		"cli.logs":    {},
	}
	internalKeys = map[string]struct{}{
		"enable_diag":             {},
		"temporary_connection":    {},
		"default_connection_name": {},
	}
)

// ExtractRootLevelConnectionParams splits a parsed configuration document
// into root-level connection parameters and everything else. Every top-level
// key of doc lands in exactly one of the two results; the input is never
// mutated and nested structures pass through unmodified.
func ExtractRootLevelConnectionParams(doc map[string]interface{}) (params, rest map[string]interface{}) {
	params = make(map[string]interface{})
	rest = make(map[string]interface{})
	for k, v := range doc {
		if isSectionOrInternal(k) {
			rest[k] = v
			continue
		}
		params[k] = v
	}
	return params, rest
}

func isSectionOrInternal(key string) bool {
	if _, ok := documentSections[key]; ok {
		return true
	}
	_, ok := internalKeys[key]
	return ok
}

// MergeParamsIntoConnections overlays params onto every named connection
// profile and returns the result as a new map; neither input is mutated.
// Params win on key collision. Merging is shallow per top-level key, except
// that two map-valued entries union one level deep with the override winning
// at the leaf.
func MergeParamsIntoConnections(connections map[string]map[string]interface{}, params map[string]interface{}) map[string]map[string]interface{} {
	merged := make(map[string]map[string]interface{}, len(connections))
	for name, profile := range connections {
		out := make(map[string]interface{}, len(profile)+len(params))
		for k, v := range profile {
			out[k] = v
		}
		for k, v := range params {
			existing, hadExisting := out[k]
			if hadExisting {
				if base, ok := existing.(map[string]interface{}); ok {
					if override, ok := v.(map[string]interface{}); ok {
						out[k] = unionMaps(base, override)
						continue
					}
				}
			}
			out[k] = v
		}
		merged[name] = out
	}
	return merged
}

// CreateDefaultConnectionFromParams wraps a flat parameter map into a single
// synthetic "default" profile. Empty input yields an empty mapping. The
// result never aliases the input: mutating the returned profile leaves the
// caller's map untouched.
func CreateDefaultConnectionFromParams(params map[string]interface{}) map[string]map[string]interface{} {
	if len(params) == 0 {
		return map[string]map[string]interface{}{}
	}
	return map[string]map[string]interface{}{
		"default": copyParams(params),
	}
}

// unionMaps merges two one-level maps, override winning on collision.
func unionMaps(base, override map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(base)+len(override))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}

// copyParams copies a parameter map, recursing into map values so the copy
// shares no structure with the original.
func copyParams(params map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(params))
	for k, v := range params {
		if nested, ok := v.(map[string]interface{}); ok {
			out[k] = copyParams(nested)
			continue
		}
		out[k] = v
	}
	return out
}
