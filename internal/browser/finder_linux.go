//go:build linux

package browser

import "os/exec"

var names = []struct {
	name string
	bin  string
}{
	{"Google Chrome", "google-chrome"},
	{"Google Chrome (stable)", "google-chrome-stable"},
	{"Chromium", "chromium"},
	{"Chromium (browser)", "chromium-browser"},
	{"Microsoft Edge", "microsoft-edge"},
	{"Brave Browser", "brave-browser"},
}

func candidates() []Install {
	var out []Install
	for _, n := range names {
		path, err := exec.LookPath(n.bin)
		if err != nil {
			continue
		}
		out = append(out, Install{Name: n.name, Path: path})
	}
	return out
}
