package configinfra

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyMapping_CanonicalAndReverse(t *testing.T) {
	m := SnowsqlKeyMapping()

	assert.Equal(t, "account", m.Canonical("accountname"))
	assert.Equal(t, "user", m.Canonical("username"))
	assert.Equal(t, "database", m.Canonical("dbname"))
	assert.Equal(t, "database", m.Canonical("databasename"))
	assert.Equal(t, "password", m.Canonical("pwd"))

	// Unmapped names pass through.
	assert.Equal(t, "log_level", m.Canonical("log_level"))
}

func TestKeyMapping_ReverseLookupUsesSameTable(t *testing.T) {
	m := SnowsqlKeyMapping()

	assert.Equal(t, []string{"password", "pwd"}, m.Legacy("password"))
	assert.Equal(t, []string{"accountname"}, m.Legacy("account"))
	assert.Equal(t, []string{"log_level"}, m.Legacy("log_level"), "unmapped key maps to itself")

	assert.True(t, m.Knows("password"))
	assert.False(t, m.Knows("log_level"))
}

func TestKeyMapping_ReverseOrderIsDeterministic(t *testing.T) {
	for i := 0; i < 50; i++ {
		m := SnowsqlKeyMapping()
		assert.Equal(t, []string{"databasename", "dbname"}, m.Legacy("database"))
	}
}
