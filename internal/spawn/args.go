// Package spawn launches the debuggee process and owns the OS-specific parts
// of its lifecycle: argument assembly, launch strategy selection and kill.
package spawn

import (
	"fmt"
	"math/rand/v2"
	"path/filepath"

	"github.com/tpavlinic/cdplaunch/internal/domain"
)

// PickPort returns the explicit port when one was requested, otherwise a
// pseudo-random port in [domain.PortRangeMin, domain.PortRangeMax).
func PickPort(explicit int) int {
	if explicit > 0 {
		return explicit
	}
	return domain.PortRangeMin + rand.IntN(domain.PortRangeMax-domain.PortRangeMin)
}

// BuildArgs assembles the debuggee argument vector: the remote-debugging flag,
// any extra flags, the resolved file target (if any), then at most one launch
// URL — file-derived or explicit.
func BuildArgs(cfg domain.LaunchConfig, port int) []string {
	args := []string{fmt.Sprintf("--remote-debugging-port=%d", port)}
	args = append(args, cfg.ExtraArgs...)

	if cfg.File != "" {
		args = append(args, resolveFile(cfg))
	}
	if url := LaunchURL(cfg); url != "" {
		args = append(args, url)
	}
	return args
}

// LaunchURL computes the URL the debuggee opens on start:
// file://<workdir>/<file>/index.html for a file target, the explicit URL
// otherwise, empty when neither is given.
func LaunchURL(cfg domain.LaunchConfig) string {
	switch {
	case cfg.File != "":
		return "file://" + filepath.ToSlash(resolveFile(cfg)) + "/index.html"
	case cfg.URL != "":
		return cfg.URL
	default:
		return ""
	}
}

func resolveFile(cfg domain.LaunchConfig) string {
	if filepath.IsAbs(cfg.File) {
		return cfg.File
	}
	return filepath.Join(cfg.WorkDir, cfg.File)
}
