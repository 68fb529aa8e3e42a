// Package pathmap resolves source-map path override tables, substituting the
// web-root placeholder into user or built-in rewrite rules.
package pathmap

import (
	"fmt"
	"strings"
)

// WebRootPlaceholder may appear in an override replacement, and only at the
// start of it.
const WebRootPlaceholder = "${webRoot}"

// DiagFunc receives advisory diagnostics about skipped or malformed entries.
type DiagFunc func(format string, args ...interface{})

// Resolve substitutes the web-root placeholder in every replacement of table
// and returns a new table; the input is never modified.
//
// Entries whose replacement carries the placeholder at index 0 get rootDir
// substituted. When rootDir is empty the entry is kept verbatim and, if
// warnOnMissing is set, a diagnostic is emitted. A placeholder anywhere past
// index 0 is invalid: the entry is kept verbatim and a diagnostic is always
// emitted. Built-in defaults resolve with warnOnMissing=false, user-supplied
// tables with true.
func Resolve(rootDir string, table map[string]string, warnOnMissing bool, diag DiagFunc) map[string]string {
	if diag == nil {
		diag = func(string, ...interface{}) {}
	}

	resolved := make(map[string]string, len(table))
	for pattern, replacement := range table {
		resolved[pattern] = resolveEntry(rootDir, pattern, replacement, warnOnMissing, diag)
	}
	return resolved
}

func resolveEntry(rootDir, pattern, replacement string, warnOnMissing bool, diag DiagFunc) string {
	idx := strings.Index(replacement, WebRootPlaceholder)
	switch {
	case idx < 0:
		return replacement
	case idx > 0:
		diag("ignoring pathMapping entry %q: %s is only valid at the beginning of the path", pattern, WebRootPlaceholder)
		return replacement
	case rootDir == "":
		if warnOnMissing {
			diag("pathMapping entry %q uses %s but no web root is configured", pattern, WebRootPlaceholder)
		}
		return replacement
	default:
		return rootDir + replacement[len(WebRootPlaceholder):]
	}
}

// DefaultOverrides is the built-in rewrite table for common bundler schemes.
func DefaultOverrides() map[string]string {
	return map[string]string{
		"webpack:///./~/*":  WebRootPlaceholder + "/node_modules/*",
		"webpack:///./*":    WebRootPlaceholder + "/*",
		"webpack:///*":      "*",
		"meteor://\U0001F4BBapp/*": WebRootPlaceholder + "/*",
	}
}

// Describe renders an override entry for diagnostics.
func Describe(pattern, replacement string) string {
	return fmt.Sprintf("%s -> %s", pattern, replacement)
}
