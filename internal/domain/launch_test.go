package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLaunchConfigValidate(t *testing.T) {
	cfg := &LaunchConfig{WorkDir: "/proj"}
	require.NoError(t, cfg.Validate())

	cfg = &LaunchConfig{}
	require.Error(t, cfg.Validate())

	cfg = &LaunchConfig{WorkDir: "/proj", Port: 70000}
	require.Error(t, cfg.Validate())

	cfg = &LaunchConfig{WorkDir: "/proj", Port: 12345}
	require.NoError(t, cfg.Validate())
}

func TestEventConstructors(t *testing.T) {
	e := NewSpawned(42, "/bin/browser", []string{"--remote-debugging-port=12345"})
	assert.Equal(t, EventSpawned, e.Type)
	assert.Equal(t, SchemaVersion, e.SchemaVersion)
	assert.Equal(t, 42, e.PID)
	assert.NotEmpty(t, e.Timestamp)

	term := NewTerminated("debuggee exited")
	assert.Equal(t, EventTerminated, term.Type)
	assert.Equal(t, "debuggee exited", term.Reason)
}

func TestEventJSONOmitsEmptyFields(t *testing.T) {
	b, err := json.Marshal(NewResumed())
	require.NoError(t, err)

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Equal(t, "resumed", m["type"])
	assert.NotContains(t, m, "pid")
	assert.NotContains(t, m, "reason")
	assert.NotContains(t, m, "args")
}
