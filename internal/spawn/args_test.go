package spawn

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tpavlinic/cdplaunch/internal/domain"
)

func TestPickPortExplicit(t *testing.T) {
	assert.Equal(t, 12345, PickPort(12345))
	assert.Equal(t, 1, PickPort(1))
}

func TestPickPortRandomRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		p := PickPort(0)
		if p < domain.PortRangeMin || p >= domain.PortRangeMax {
			t.Fatalf("port %d outside [%d, %d)", p, domain.PortRangeMin, domain.PortRangeMax)
		}
	}
}

func TestLaunchURL(t *testing.T) {
	t.Run("file target", func(t *testing.T) {
		cfg := domain.LaunchConfig{WorkDir: "/proj", File: "app"}
		assert.Equal(t, "file:///proj/app/index.html", LaunchURL(cfg))
	})

	t.Run("url target", func(t *testing.T) {
		cfg := domain.LaunchConfig{WorkDir: "/proj", URL: "http://localhost:3000"}
		assert.Equal(t, "http://localhost:3000", LaunchURL(cfg))
	})

	t.Run("file wins over url", func(t *testing.T) {
		cfg := domain.LaunchConfig{WorkDir: "/proj", File: "app", URL: "http://x"}
		assert.Equal(t, "file:///proj/app/index.html", LaunchURL(cfg))
	})

	t.Run("neither", func(t *testing.T) {
		assert.Empty(t, LaunchURL(domain.LaunchConfig{WorkDir: "/proj"}))
	})
}

func TestBuildArgs(t *testing.T) {
	t.Run("port flag first", func(t *testing.T) {
		cfg := domain.LaunchConfig{WorkDir: "/proj"}
		args := BuildArgs(cfg, 12345)
		assert.Equal(t, []string{"--remote-debugging-port=12345"}, args)
	})

	t.Run("file target appends path then url", func(t *testing.T) {
		cfg := domain.LaunchConfig{WorkDir: "/proj", File: "app"}
		args := BuildArgs(cfg, 9222)
		assert.Equal(t, []string{
			"--remote-debugging-port=9222",
			"/proj/app",
			"file:///proj/app/index.html",
		}, args)
	})

	t.Run("url target appends at most one url", func(t *testing.T) {
		cfg := domain.LaunchConfig{WorkDir: "/proj", URL: "http://localhost:3000"}
		args := BuildArgs(cfg, 9222)
		assert.Equal(t, []string{
			"--remote-debugging-port=9222",
			"http://localhost:3000",
		}, args)
	})

	t.Run("extra args between flag and target", func(t *testing.T) {
		cfg := domain.LaunchConfig{WorkDir: "/proj", URL: "http://x", ExtraArgs: []string{"--headless"}}
		args := BuildArgs(cfg, 9222)
		assert.Equal(t, []string{"--remote-debugging-port=9222", "--headless", "http://x"}, args)
	})
}

func ExampleBuildArgs() {
	cfg := domain.LaunchConfig{WorkDir: "/proj", File: "app"}
	fmt.Println(BuildArgs(cfg, 12345))
	// Output: [--remote-debugging-port=12345 /proj/app file:///proj/app/index.html]
}
