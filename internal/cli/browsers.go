package cli

import (
	"encoding/json"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"

	"github.com/tpavlinic/cdplaunch/internal/browser"
)

// BrowsersCmd lists the browser installations launch would consider, in
// preference order.
type BrowsersCmd struct{}

// Run executes the browsers command
func (c *BrowsersCmd) Run(globals *Globals) error {
	installs := browser.Discover()

	if globals.Format == "ndjson" {
		enc := json.NewEncoder(globals.Stdout)
		return enc.Encode(map[string]interface{}{
			"type":     "browsers",
			"count":    len(installs),
			"browsers": installs,
		})
	}

	if len(installs) == 0 {
		return outputErrorCommon(globals, "BROWSER_NOT_FOUND",
			"no supported browser installation found",
			"install Chrome, Chromium, Edge or Brave, or pass --executable to launch")
	}

	fmt.Fprintln(globals.Stdout, styleHeading.Render("Installed browsers:"))
	table := tablewriter.NewWriter(globals.Stdout)
	table.Header("Name", "Path", "Default")
	for i, in := range installs {
		table.Append([]string{in.Name, in.Path, lo.Ternary(i == 0, "*", "")})
	}
	table.Render()
	return nil
}
