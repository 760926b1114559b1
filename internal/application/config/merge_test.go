package appconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestExtractRootLevelConnectionParams_SplitsSectionsAndInternals(t *testing.T) {
	doc := map[string]interface{}{
		"account":                 "acct1",
		"user":                    "jdoe",
		"connections":             map[string]interface{}{"dev": map[string]interface{}{"account": "acct-dev"}},
		"variables":               map[string]interface{}{"stage": "raw"},
		"cli":                     map[string]interface{}{"color": true},
		"cli.logs":                map[string]interface{}{"level": "info"},
		"enable_diag":             true,
		"temporary_connection":    false,
		"default_connection_name": "dev",
	}

	params, rest := ExtractRootLevelConnectionParams(doc)

	assert.Equal(t, map[string]interface{}{"account": "acct1", "user": "jdoe"}, params)
	for _, k := range []string{"connections", "variables", "cli", "cli.logs", "enable_diag", "temporary_connection", "default_connection_name"} {
		assert.Contains(t, rest, k)
	}
	assert.Len(t, rest, 7)
}

func TestExtractRootLevelConnectionParams_DoesNotMutateInput(t *testing.T) {
	doc := map[string]interface{}{"account": "acct1", "connections": map[string]interface{}{}}
	params, rest := ExtractRootLevelConnectionParams(doc)

	params["injected"] = true
	rest["injected"] = true

	assert.Len(t, doc, 2)
	assert.NotContains(t, doc, "injected")
}

func TestExtractRootLevelConnectionParams_PartitionProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		keys := rapid.SliceOfDistinct(
			rapid.OneOf(
				rapid.StringMatching(`[a-z_]{1,10}`),
				rapid.SampledFrom([]string{"connections", "variables", "cli", "enable_diag", "default_connection_name"}),
			),
			func(s string) string { return s },
		).Draw(t, "keys")

		doc := make(map[string]interface{}, len(keys))
		for i, k := range keys {
			doc[k] = i
		}

		params, rest := ExtractRootLevelConnectionParams(doc)

		// Disjoint, and every top-level key lands in exactly one half.
		assert.Len(t, params, len(doc)-len(rest))
		for k := range params {
			assert.NotContains(t, rest, k)
		}

		// Re-merging reconstructs the document.
		merged := make(map[string]interface{}, len(doc))
		for k, v := range params {
			merged[k] = v
		}
		for k, v := range rest {
			merged[k] = v
		}
		assert.Equal(t, doc, merged)
	})
}

func TestMergeParamsIntoConnections_ParamsWin(t *testing.T) {
	connections := map[string]map[string]interface{}{
		"dev":  {"account": "acct-dev", "warehouse": "dev_wh"},
		"prod": {"account": "acct-prod"},
	}
	params := map[string]interface{}{"account": "override", "role": "engineer"}

	merged := MergeParamsIntoConnections(connections, params)

	assert.Equal(t, "override", merged["dev"]["account"])
	assert.Equal(t, "dev_wh", merged["dev"]["warehouse"])
	assert.Equal(t, "engineer", merged["dev"]["role"])
	assert.Equal(t, "override", merged["prod"]["account"])

	// Inputs untouched.
	assert.Equal(t, "acct-dev", connections["dev"]["account"])
	assert.NotContains(t, connections["dev"], "role")
}

func TestMergeParamsIntoConnections_MapValuesUnionOneLevel(t *testing.T) {
	connections := map[string]map[string]interface{}{
		"dev": {"session_parameters": map[string]interface{}{"timezone": "UTC", "query_tag": "etl"}},
	}
	params := map[string]interface{}{
		"session_parameters": map[string]interface{}{"query_tag": "adhoc"},
	}

	merged := MergeParamsIntoConnections(connections, params)

	got, ok := merged["dev"]["session_parameters"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "UTC", got["timezone"], "base keys survive the union")
	assert.Equal(t, "adhoc", got["query_tag"], "override wins at the leaf")
}

func TestMergeParamsIntoConnections_ScalarReplacesMap(t *testing.T) {
	connections := map[string]map[string]interface{}{
		"dev": {"warehouse": map[string]interface{}{"name": "dev_wh"}},
	}
	params := map[string]interface{}{"warehouse": "override_wh"}

	merged := MergeParamsIntoConnections(connections, params)
	assert.Equal(t, "override_wh", merged["dev"]["warehouse"])
}

func TestMergeParamsIntoConnections_IdempotenceProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		profileKeys := rapid.SliceOfNDistinct(rapid.StringMatching(`[a-z]{1,6}`), 0, 4,
			func(s string) string { return s }).Draw(t, "profiles")
		paramKeys := rapid.SliceOfNDistinct(rapid.StringMatching(`[a-z]{1,6}`), 0, 4,
			func(s string) string { return s }).Draw(t, "params")

		connections := make(map[string]map[string]interface{})
		for i, name := range profileKeys {
			connections[name] = map[string]interface{}{"account": i}
		}
		params := make(map[string]interface{})
		for i, k := range paramKeys {
			params[k] = i * 10
		}

		once := MergeParamsIntoConnections(connections, params)
		twice := MergeParamsIntoConnections(once, map[string]interface{}{})

		assert.Equal(t, once, twice)
	})
}

func TestCreateDefaultConnectionFromParams(t *testing.T) {
	assert.Empty(t, CreateDefaultConnectionFromParams(map[string]interface{}{}))
	assert.Empty(t, CreateDefaultConnectionFromParams(nil))

	result := CreateDefaultConnectionFromParams(map[string]interface{}{"account": "a"})
	assert.Equal(t, map[string]map[string]interface{}{
		"default": {"account": "a"},
	}, result)
}

func TestCreateDefaultConnectionFromParams_NeverAliasesInput(t *testing.T) {
	params := map[string]interface{}{
		"account":            "a",
		"session_parameters": map[string]interface{}{"timezone": "UTC"},
	}

	result := CreateDefaultConnectionFromParams(params)
	result["default"]["account"] = "mutated"
	result["default"]["session_parameters"].(map[string]interface{})["timezone"] = "mutated"

	assert.Equal(t, "a", params["account"])
	assert.Equal(t, "UTC", params["session_parameters"].(map[string]interface{})["timezone"])
}
