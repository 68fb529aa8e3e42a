package session

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// VersionInfo is the DevTools discovery endpoint's /json/version payload.
type VersionInfo struct {
	Browser              string `json:"Browser"`
	ProtocolVersion      string `json:"Protocol-Version"`
	UserAgent            string `json:"User-Agent"`
	WebSocketDebuggerURL string `json:"webSocketDebuggerUrl"`
}

const defaultProbeTimeout = 10 * time.Second

// ProbeVersion reads the debuggee's version record from the DevTools
// discovery endpoint. It is used for the best-effort post-attach diagnostic
// and for endpoint-reachability checks; failures never fail a launch.
func ProbeVersion(ctx context.Context, address string, port int, timeout time.Duration) (*VersionInfo, error) {
	if address == "" {
		address = "127.0.0.1"
	}
	if timeout <= 0 {
		timeout = defaultProbeTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	url := fmt.Sprintf("http://%s:%d/json/version", address, port)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("devtools endpoint %s returned %s", url, resp.Status)
	}

	var info VersionInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("decode devtools version: %w", err)
	}
	return &info, nil
}
