package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tpavlinic/cdplaunch/internal/config"
)

// testGlobals creates a Globals struct with captured stdout/stderr
func testGlobals(format string) (*Globals, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &Globals{
		Format:  format,
		Level:   "info",
		Quiet:   false,
		Verbose: false,
		Stdout:  stdout,
		Stderr:  stderr,
		Config:  config.Default(),
	}, stdout, stderr
}

// --- Overrides Command Tests ---

func TestOverridesCmd_Run(t *testing.T) {
	t.Run("resolves defaults with web root in ndjson format", func(t *testing.T) {
		globals, stdout, _ := testGlobals("ndjson")
		cmd := &OverridesCmd{WebRoot: "/srv/app"}

		require.NoError(t, cmd.Run(globals))

		var result map[string]interface{}
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &result))

		assert.Equal(t, "path_overrides", result["type"])
		assert.Equal(t, "/srv/app", result["web_root"])
		overrides, ok := result["overrides"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "/srv/app/*", overrides["webpack:///./*"])
		assert.Equal(t, "*", overrides["webpack:///*"])
	})

	t.Run("user entry with misplaced placeholder warns and is kept", func(t *testing.T) {
		globals, stdout, _ := testGlobals("ndjson")
		cmd := &OverridesCmd{
			WebRoot:  "/srv/app",
			Override: map[string]string{"a": "x/${webRoot}"},
		}

		require.NoError(t, cmd.Run(globals))

		var result map[string]interface{}
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &result))

		overrides := result["overrides"].(map[string]interface{})
		assert.Equal(t, "x/${webRoot}", overrides["a"])
		warnings, ok := result["warnings"].([]interface{})
		require.True(t, ok)
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "only valid at the beginning")
	})

	t.Run("text format lists sorted entries", func(t *testing.T) {
		globals, stdout, _ := testGlobals("text")
		cmd := &OverridesCmd{WebRoot: "/r"}

		require.NoError(t, cmd.Run(globals))

		out := stdout.String()
		assert.Contains(t, out, "Path overrides:")
		assert.Contains(t, out, "webpack:///./* -> /r/*")
	})
}

// --- Error Output Tests ---

func TestOutputErrorCommon(t *testing.T) {
	t.Run("ndjson emits machine-readable record", func(t *testing.T) {
		globals, stdout, stderr := testGlobals("ndjson")

		err := outputErrorCommon(globals, "SPAWN_FAILED", "no such file", "check the path")
		require.Error(t, err)
		assert.Equal(t, "no such file", err.Error())

		var m map[string]interface{}
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &m))
		assert.Equal(t, "error", m["type"])
		assert.Equal(t, "SPAWN_FAILED", m["code"])
		assert.Equal(t, "check the path", m["hint"])
		assert.Empty(t, stderr.String())
	})

	t.Run("text goes to stderr with hint", func(t *testing.T) {
		globals, stdout, stderr := testGlobals("text")

		err := outputErrorCommon(globals, "BROWSER_NOT_FOUND", "no browser", "install one")
		require.Error(t, err)
		assert.Empty(t, stdout.String())
		assert.Contains(t, stderr.String(), "Error [BROWSER_NOT_FOUND]: no browser")
		assert.Contains(t, stderr.String(), "hint: install one")
	})
}

// --- Version Command Tests ---

func TestVersionCmd_Run(t *testing.T) {
	t.Run("ndjson", func(t *testing.T) {
		globals, stdout, _ := testGlobals("ndjson")
		require.NoError(t, (&VersionCmd{}).Run(globals))

		var m map[string]string
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &m))
		assert.Equal(t, "version", m["type"])
		assert.NotEmpty(t, m["version"])
	})

	t.Run("text", func(t *testing.T) {
		globals, stdout, _ := testGlobals("text")
		require.NoError(t, (&VersionCmd{}).Run(globals))
		assert.Contains(t, stdout.String(), "cdplaunch")
	})
}

// --- Launch Config Resolution Tests ---

func TestLaunchCmd_launchConfig(t *testing.T) {
	t.Run("explicit executable marks config explicit", func(t *testing.T) {
		globals, _, _ := testGlobals("text")
		cmd := &LaunchCmd{WorkDir: "/proj", Executable: "/opt/chrome", URL: "http://x"}

		cfg, err := cmd.launchConfig(globals)
		require.NoError(t, err)
		assert.Equal(t, "/opt/chrome", cfg.Executable)
		assert.True(t, cfg.ExplicitExecutable)
		assert.Equal(t, "/proj", cfg.WorkDir)
		assert.Equal(t, "http://x", cfg.URL)
	})

	t.Run("config default executable counts as explicit", func(t *testing.T) {
		globals, _, _ := testGlobals("text")
		globals.Config.Defaults.Executable = "/opt/chromium"
		cmd := &LaunchCmd{WorkDir: "/proj"}

		cfg, err := cmd.launchConfig(globals)
		require.NoError(t, err)
		assert.Equal(t, "/opt/chromium", cfg.Executable)
		assert.True(t, cfg.ExplicitExecutable)
	})

	t.Run("web root resolves user overrides", func(t *testing.T) {
		globals, _, _ := testGlobals("text")
		cmd := &LaunchCmd{
			WorkDir:    "/proj",
			Executable: "/opt/chrome",
			WebRoot:    "/r",
			Override:   map[string]string{"a": "${webRoot}/x"},
		}

		cfg, err := cmd.launchConfig(globals)
		require.NoError(t, err)
		assert.Equal(t, "/r/x", cfg.PathOverrides["a"])
		assert.Equal(t, "/r/*", cfg.PathOverrides["webpack:///./*"])
	})

	t.Run("invalid port rejected", func(t *testing.T) {
		globals, _, _ := testGlobals("text")
		cmd := &LaunchCmd{WorkDir: "/proj", Executable: "/opt/chrome", Port: 99999}

		_, err := cmd.launchConfig(globals)
		require.Error(t, err)
	})
}
