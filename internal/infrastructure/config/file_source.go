package configinfra

import (
	"context"
	"os"

	configdomain "snowctl.dev/cli/internal/core/domain/config"
	configports "snowctl.dev/cli/internal/core/ports/config"
)

// Source names for the two file-backed sources.
const (
	SourceSnowflakeConfig = "snowflake_config"
	SourceSnowsqlConfig   = "snowsql_config"
)

// FileSource discovers configuration from an ordered list of candidate files,
// highest precedence first. For a given key the first file that defines it
// wins; files are never merged key-by-key beyond that. Files are re-read on
// every Discover call, so edits take effect on the next resolution pass.
//
// A file that cannot be read or parsed contributes nothing; one bad file
// never blocks a key available in a later file or a lower-priority source.
type FileSource struct {
	name     string
	paths    []string
	handlers []FormatHandler
}

// NewFileSource builds a file source over the given candidate paths
// (highest precedence first) and format handlers (tried in order per file).
func NewFileSource(name string, paths []string, handlers ...FormatHandler) *FileSource {
	copied := make([]string, len(paths))
	copy(copied, paths)
	return &FileSource{name: name, paths: copied, handlers: handlers}
}

// NewSnowsqlFileSource reads the legacy tool's config locations with the
// legacy section-based handler.
func NewSnowsqlFileSource() *FileSource {
	return NewFileSource(SourceSnowsqlConfig, SnowsqlConfigPaths(), SnowsqlHandler())
}

// NewSnowflakeFileSource reads the tool's own config.toml locations.
func NewSnowflakeFileSource() *FileSource {
	return NewFileSource(SourceSnowflakeConfig, SnowflakeConfigPaths(), TomlHandler())
}

func (s *FileSource) Name() string { return s.name }

func (s *FileSource) Priority() configdomain.SourcePriority {
	return configdomain.PriorityFile
}

// Paths returns the candidate paths in precedence order.
func (s *FileSource) Paths() []string {
	out := make([]string, len(s.paths))
	copy(out, s.paths)
	return out
}

func (s *FileSource) Discover(ctx context.Context, key string) (map[string]configdomain.ConfigValue, error) {
	found := make(map[string]configdomain.ConfigValue)
	for _, path := range s.paths {
		doc := s.readDocument(path)
		if doc == nil {
			continue
		}
		if key != "" {
			if v, ok := doc[key]; ok {
				found[key] = s.value(key, v)
				return found, nil
			}
			continue
		}
		for k, v := range doc {
			// An earlier (higher precedence) file already defined this key.
			if _, ok := found[k]; ok {
				continue
			}
			found[k] = s.value(k, v)
		}
	}
	return found, nil
}

// SupportsKey: any key could appear in a config file.
func (s *FileSource) SupportsKey(key string) bool { return true }

func (s *FileSource) readDocument(path string) map[string]interface{} {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	for _, h := range s.handlers {
		if doc, err := h.Parse(data); err == nil {
			return doc
		}
	}
	return nil
}

func (s *FileSource) value(key string, v interface{}) configdomain.ConfigValue {
	return configdomain.ConfigValue{
		Key:        key,
		Value:      v,
		SourceName: s.name,
		Priority:   configdomain.PriorityFile,
	}
}

var _ configports.ValueSource = (*FileSource)(nil)
