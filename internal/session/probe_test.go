package session

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbeVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/json/version", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"Browser": "Chrome/120.0.0.0",
			"Protocol-Version": "1.3",
			"User-Agent": "Mozilla/5.0 FakeBrowser",
			"webSocketDebuggerUrl": "ws://127.0.0.1:9222/devtools/browser/abc"
		}`))
	}))
	defer srv.Close()

	host, portStr, err := net.SplitHostPort(srv.Listener.Addr().String())
	require.NoError(t, err)
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)

	info, err := ProbeVersion(context.Background(), host, port, 2*time.Second)
	require.NoError(t, err)
	assert.Equal(t, "Chrome/120.0.0.0", info.Browser)
	assert.Equal(t, "Mozilla/5.0 FakeBrowser", info.UserAgent)
	assert.NotEmpty(t, info.WebSocketDebuggerURL)
}

func TestProbeVersionUnreachable(t *testing.T) {
	// Grab a port nothing listens on.
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())

	_, err = ProbeVersion(context.Background(), "127.0.0.1", port, 500*time.Millisecond)
	assert.Error(t, err)
}

func TestProbeVersionBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	host, portStr, _ := net.SplitHostPort(srv.Listener.Addr().String())
	port, _ := strconv.Atoi(portStr)

	_, err := ProbeVersion(context.Background(), host, port, time.Second)
	assert.Error(t, err)
}
