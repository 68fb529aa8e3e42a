package browser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeBundle(t *testing.T, plistBody string) string {
	t.Helper()
	appDir := filepath.Join(t.TempDir(), "Fake Browser.app")
	require.NoError(t, os.MkdirAll(filepath.Join(appDir, "Contents"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(appDir, "Contents", "Info.plist"),
		[]byte(plistBody), 0o644))
	return appDir
}

func TestBundleExecutable(t *testing.T) {
	appDir := writeBundle(t, `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>CFBundleExecutable</key>
	<string>Fake Browser</string>
	<key>CFBundleName</key>
	<string>Fake Browser</string>
</dict>
</plist>`)

	exe, err := bundleExecutable(appDir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(appDir, "Contents", "MacOS", "Fake Browser"), exe)
}

func TestBundleExecutableMissingKey(t *testing.T) {
	appDir := writeBundle(t, `<?xml version="1.0" encoding="UTF-8"?>
<plist version="1.0"><dict><key>CFBundleName</key><string>X</string></dict></plist>`)

	_, err := bundleExecutable(appDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CFBundleExecutable")
}

func TestBundleExecutableMissingPlist(t *testing.T) {
	_, err := bundleExecutable(t.TempDir())
	require.Error(t, err)
}
