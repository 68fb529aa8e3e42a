//go:build darwin

package browser

var bundles = []struct {
	name string
	app  string
}{
	{"Google Chrome", "/Applications/Google Chrome.app"},
	{"Chromium", "/Applications/Chromium.app"},
	{"Microsoft Edge", "/Applications/Microsoft Edge.app"},
	{"Brave Browser", "/Applications/Brave Browser.app"},
}

func candidates() []Install {
	var out []Install
	for _, b := range bundles {
		exe, err := bundleExecutable(b.app)
		if err != nil {
			continue
		}
		out = append(out, Install{Name: b.name, Path: exe})
	}
	return out
}
