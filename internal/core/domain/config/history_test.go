package configdomain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(source string, used bool, overriddenBy string) ResolutionEntry {
	return ResolutionEntry{
		Value: ConfigValue{
			Key:        "account",
			Value:      "acct",
			SourceName: source,
			Priority:   PriorityEnvironment,
		},
		Timestamp:    time.Now(),
		WasUsed:      used,
		OverriddenBy: overriddenBy,
	}
}

func TestResolutionHistory_Winner(t *testing.T) {
	h := &ResolutionHistory{
		Key: "account",
		Entries: []ResolutionEntry{
			entry("snowflake_cli_env", true, ""),
			entry("snowsql_env", false, "snowflake_cli_env"),
		},
		FinalValue: "acct",
	}

	winner := h.Winner()
	require.NotNil(t, winner)
	assert.Equal(t, "snowflake_cli_env", winner.Value.SourceName)
	assert.True(t, h.HasOverrides())
	assert.Equal(t, []string{"snowflake_cli_env", "snowsql_env"}, h.SourcesConsulted())
}

func TestResolutionHistory_EmptyHasNoWinner(t *testing.T) {
	h := &ResolutionHistory{Key: "account"}

	assert.Nil(t, h.Winner())
	assert.False(t, h.HasOverrides())
	assert.Empty(t, h.SourcesConsulted())
}

func TestSourcePriority_Ordering(t *testing.T) {
	assert.Less(t, int(PriorityCLIArgument), int(PriorityEnvironment))
	assert.Less(t, int(PriorityEnvironment), int(PriorityFile))
	assert.Equal(t, "cli_argument", PriorityCLIArgument.String())
	assert.Equal(t, "environment", PriorityEnvironment.String())
	assert.Equal(t, "file", PriorityFile.String())
}

func TestConfigValue_RawFallsBackToValue(t *testing.T) {
	withRaw := ConfigValue{Value: 443, RawValue: "443"}
	assert.Equal(t, "443", withRaw.Raw())

	withoutRaw := ConfigValue{Value: "acct"}
	assert.Equal(t, "acct", withoutRaw.Raw())
}

func TestInvalidValueError_CarriesKeyAndValue(t *testing.T) {
	err := NewInvalidValueError("log_level", "verbose-ish", "unknown level")

	assert.Equal(t, "log_level", err.Key)
	assert.Equal(t, "verbose-ish", err.Value)
	assert.Contains(t, err.Error(), "log_level")
	assert.Contains(t, err.Error(), "unknown level")
}
