package browser

import (
	"fmt"
	"os"
	"path/filepath"

	"howett.net/plist"
)

type bundleInfo struct {
	CFBundleExecutable string `plist:"CFBundleExecutable"`
	CFBundleName       string `plist:"CFBundleName"`
}

// bundleExecutable resolves a macOS .app bundle to its executable by reading
// Contents/Info.plist.
func bundleExecutable(appDir string) (string, error) {
	f, err := os.Open(filepath.Join(appDir, "Contents", "Info.plist"))
	if err != nil {
		return "", err
	}
	defer f.Close()

	var info bundleInfo
	if err := plist.NewDecoder(f).Decode(&info); err != nil {
		return "", fmt.Errorf("parse %s Info.plist: %w", appDir, err)
	}
	if info.CFBundleExecutable == "" {
		return "", fmt.Errorf("bundle %s has no CFBundleExecutable", appDir)
	}
	return filepath.Join(appDir, "Contents", "MacOS", info.CFBundleExecutable), nil
}
