//go:build windows

package browser

import (
	"os"
	"path/filepath"
)

func candidates() []Install {
	roots := []string{
		os.Getenv("ProgramFiles"),
		os.Getenv("ProgramFiles(x86)"),
		os.Getenv("LocalAppData"),
	}

	rel := []struct {
		name string
		path string
	}{
		{"Google Chrome", `Google\Chrome\Application\chrome.exe`},
		{"Microsoft Edge", `Microsoft\Edge\Application\msedge.exe`},
		{"Chromium", `Chromium\Application\chrome.exe`},
		{"Brave Browser", `BraveSoftware\Brave-Browser\Application\brave.exe`},
	}

	var out []Install
	for _, r := range rel {
		for _, root := range roots {
			if root == "" {
				continue
			}
			out = append(out, Install{Name: r.name, Path: filepath.Join(root, r.path)})
		}
	}
	return out
}
