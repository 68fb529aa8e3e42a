// Package browser locates installed Chrome-family debuggee executables.
package browser

import (
	"errors"
	"os"

	"github.com/samber/lo"
)

// Install is one discovered browser installation.
type Install struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// ErrNoBrowser is returned when no installation could be found.
var ErrNoBrowser = errors.New("no supported browser installation found")

// Discover returns the browser installations present on this machine, in
// preference order.
func Discover() []Install {
	return lo.Filter(candidates(), func(c Install, _ int) bool {
		info, err := os.Stat(c.Path)
		return err == nil && !info.IsDir()
	})
}

// Default returns the executable path of the preferred installation.
func Default() (string, error) {
	installs := Discover()
	if len(installs) == 0 {
		return "", ErrNoBrowser
	}
	return installs[0].Path, nil
}
