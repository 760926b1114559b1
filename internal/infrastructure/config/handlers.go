package configinfra

import (
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/ini.v1"
)

// ParseFunc turns raw file contents into a document: canonical connection
// parameters at the root, sections (connections, variables, ...) as nested
// maps. Handlers are pure functions; a parse failure means the file
// contributes nothing.
type ParseFunc func(data []byte) (map[string]interface{}, error)

// FormatHandler pairs a format name with its parse function. A file source
// tries its handlers in order and uses the first one that accepts the file.
type FormatHandler struct {
	Format string
	Parse  ParseFunc
}

// SnowsqlHandler parses the legacy tool's section-based key=value syntax.
// Keys in the [connections] section are translated through the snowsql key
// table onto the canonical vocabulary (accountname -> account); named
// [connections.<name>] sections become entries of a nested "connections"
// map; every other section passes through nested under its own name.
func SnowsqlHandler() FormatHandler {
	mapping := SnowsqlKeyMapping()
	return FormatHandler{
		Format: "snowsql",
		Parse: func(data []byte) (map[string]interface{}, error) {
			file, err := ini.Load(data)
			if err != nil {
				return nil, err
			}
			doc := make(map[string]interface{})
			for _, section := range file.Sections() {
				name := section.Name()
				keys := section.KeysHash()
				if len(keys) == 0 {
					continue
				}
				switch {
				case name == ini.DefaultSection || name == "connections":
					for k, raw := range keys {
						canonical := mapping.Canonical(strings.ToLower(k))
						doc[canonical] = ParseScalar(raw)
					}
				case strings.HasPrefix(name, "connections."):
					profile := strings.TrimPrefix(name, "connections.")
					params := make(map[string]interface{}, len(keys))
					for k, raw := range keys {
						params[mapping.Canonical(strings.ToLower(k))] = ParseScalar(raw)
					}
					nestedInto(doc, "connections", profile, params)
				default:
					nested := make(map[string]interface{}, len(keys))
					for k, raw := range keys {
						nested[strings.ToLower(k)] = ParseScalar(raw)
					}
					doc[name] = nested
				}
			}
			return doc, nil
		},
	}
}

// TomlHandler parses the tool's own config.toml format. Keys are already
// canonical; tables stay nested as the parser produced them.
func TomlHandler() FormatHandler {
	return FormatHandler{
		Format: "toml",
		Parse: func(data []byte) (map[string]interface{}, error) {
			doc := make(map[string]interface{})
			if err := toml.Unmarshal(data, &doc); err != nil {
				return nil, err
			}
			return doc, nil
		},
	}
}

func nestedInto(doc map[string]interface{}, section, name string, params map[string]interface{}) {
	existing, ok := doc[section].(map[string]interface{})
	if !ok {
		existing = make(map[string]interface{})
		doc[section] = existing
	}
	existing[name] = params
}
