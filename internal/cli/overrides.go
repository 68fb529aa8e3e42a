package cli

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/tpavlinic/cdplaunch/internal/pathmap"
)

// OverridesCmd resolves and prints the source-map path override table for a
// given web root. Useful for checking what a launch would hand the debugger.
type OverridesCmd struct {
	WebRoot  string            `help:"Root directory substituted for ${webRoot}" default:"${config_web_root}"`
	Override map[string]string `help:"Extra path override entries (pattern=replacement)"`
}

// Run executes the overrides command
func (c *OverridesCmd) Run(globals *Globals) error {
	var warnings []string
	diag := func(format string, args ...interface{}) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}

	resolved := pathmap.Resolve(c.WebRoot, pathmap.DefaultOverrides(), false, diag)
	for pattern, replacement := range pathmap.Resolve(c.WebRoot, c.Override, true, diag) {
		resolved[pattern] = replacement
	}

	if globals.Format == "ndjson" {
		return json.NewEncoder(globals.Stdout).Encode(map[string]interface{}{
			"type":      "path_overrides",
			"web_root":  c.WebRoot,
			"overrides": resolved,
			"warnings":  warnings,
		})
	}

	fmt.Fprintln(globals.Stdout, styleHeading.Render("Path overrides:"))
	patterns := make([]string, 0, len(resolved))
	for pattern := range resolved {
		patterns = append(patterns, pattern)
	}
	sort.Strings(patterns)
	for _, pattern := range patterns {
		fmt.Fprintf(globals.Stdout, "  %s\n", pathmap.Describe(pattern, resolved[pattern]))
	}
	for _, w := range warnings {
		fmt.Fprintf(globals.Stderr, "%s\n", styleWarn.Render("Warning: "+w))
	}
	return nil
}
