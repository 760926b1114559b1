package telemetry

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appconfig "snowctl.dev/cli/internal/application/config"
)

func sampleSummary() appconfig.Summary {
	return appconfig.Summary{
		TotalKeysResolved: 3,
		KeysWithOverrides: 1,
		KeysUsingDefaults: 1,
		SourceUsage: map[string]int{
			"cli_arguments":     0,
			"snowflake_cli_env": 2,
			"snowsql_env":       1,
		},
		SourceWins: map[string]int{
			"cli_arguments":     0,
			"snowflake_cli_env": 2,
			"snowsql_env":       0,
		},
	}
}

func TestEmitter_EmitAppliesSummary(t *testing.T) {
	e := NewEmitter()
	e.Emit(sampleSummary())

	assert.Equal(t, 2.0, testutil.ToFloat64(e.sourceUsed.WithLabelValues("snowflake_cli_env")))
	assert.Equal(t, 1.0, testutil.ToFloat64(e.sourceUsed.WithLabelValues("snowsql_env")))
	assert.Equal(t, 2.0, testutil.ToFloat64(e.sourceWins.WithLabelValues("snowflake_cli_env")))
	assert.Equal(t, 3.0, testutil.ToFloat64(e.keysResolved))
	assert.Equal(t, 1.0, testutil.ToFloat64(e.defaultsUsed))
	assert.Equal(t, 1.0, testutil.ToFloat64(e.overridden))
}

func TestEmitter_ZeroValuedSourcesGetSeries(t *testing.T) {
	e := NewEmitter()
	e.Emit(sampleSummary())

	// Every source named in the summary must be scrapable, even at zero.
	assert.Equal(t, 0.0, testutil.ToFloat64(e.sourceUsed.WithLabelValues("cli_arguments")))
	assert.Equal(t, 0.0, testutil.ToFloat64(e.sourceWins.WithLabelValues("cli_arguments")))
}

func TestEmitter_CountersAccumulateAcrossPasses(t *testing.T) {
	e := NewEmitter()
	e.Emit(sampleSummary())
	e.Emit(sampleSummary())

	assert.Equal(t, 4.0, testutil.ToFloat64(e.sourceUsed.WithLabelValues("snowflake_cli_env")))
	assert.Equal(t, 3.0, testutil.ToFloat64(e.keysResolved), "gauges track the latest pass")
}

func TestEmitter_HandlerServesMetrics(t *testing.T) {
	e := NewEmitter()
	e.Emit(sampleSummary())

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	e.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "snowctl_config_source_used_total")
	assert.Contains(t, body, "snowctl_config_source_wins_total")
	assert.Contains(t, body, "snowctl_config_keys_resolved")
}
