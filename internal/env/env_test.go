package env

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("ECOMONITOR_TEST_STR", "value")

	assert.Equal(t, "value", GetEnv("ECOMONITOR_TEST_STR", "default"))
	assert.Equal(t, "default", GetEnv("ECOMONITOR_TEST_MISSING", "default"))
}

func TestGetInt(t *testing.T) {
	t.Setenv("ECOMONITOR_TEST_INT", "42")
	t.Setenv("ECOMONITOR_TEST_BAD_INT", "forty")

	v, err := GetInt("ECOMONITOR_TEST_INT", 1)
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	v, err = GetInt("ECOMONITOR_TEST_MISSING", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	_, err = GetInt("ECOMONITOR_TEST_BAD_INT", 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ECOMONITOR_TEST_BAD_INT")
}

func TestGetDuration(t *testing.T) {
	t.Setenv("ECOMONITOR_TEST_DUR", "300ms")
	t.Setenv("ECOMONITOR_TEST_BAD_DUR", "300")

	v, err := GetDuration("ECOMONITOR_TEST_DUR", time.Second)
	require.NoError(t, err)
	assert.Equal(t, 300*time.Millisecond, v)

	v, err = GetDuration("ECOMONITOR_TEST_MISSING", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, v)

	_, err = GetDuration("ECOMONITOR_TEST_BAD_DUR", time.Second)
	assert.Error(t, err)
}
