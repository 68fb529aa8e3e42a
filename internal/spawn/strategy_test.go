package spawn

import (
	"context"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectStrategy(t *testing.T) {
	direct := Capabilities{}
	indirect := Capabilities{IndirectPID: true}

	t.Run("direct platform", func(t *testing.T) {
		s := SelectStrategy(direct, false, "helper")
		assert.Equal(t, "direct", s.Name())
	})

	t.Run("indirect platform uses helper", func(t *testing.T) {
		s := SelectStrategy(indirect, false, "helper")
		assert.Equal(t, "helper", s.Name())
	})

	t.Run("explicit executable forces direct", func(t *testing.T) {
		s := SelectStrategy(indirect, true, "helper")
		assert.Equal(t, "direct", s.Name())
	})

	t.Run("no helper available forces direct", func(t *testing.T) {
		s := SelectStrategy(indirect, false, "")
		assert.Equal(t, "direct", s.Name())
	})
}

func TestParsePIDReport(t *testing.T) {
	pid, err := ParsePIDReport("pid=1234")
	require.NoError(t, err)
	assert.Equal(t, 1234, pid)

	pid, err = ParsePIDReport("  pid=7 \n")
	require.NoError(t, err)
	assert.Equal(t, 7, pid)

	for _, line := range []string{"", "pid=", "pid=abc", "pid=-3", "1234", "PID=5"} {
		_, err := ParsePIDReport(line)
		assert.Error(t, err, "line %q", line)
	}
}

func TestDirectStrategySpawnAndTerminate(t *testing.T) {
	sleepBin, err := exec.LookPath("sleep")
	if err != nil {
		t.Skip("sleep not available")
	}

	s := &DirectStrategy{}
	handle, err := s.Launch(context.Background(), LaunchSpec{
		Executable: sleepBin,
		Args:       []string{"30"},
		WorkDir:    t.TempDir(),
	})
	require.NoError(t, err)
	require.NotNil(t, handle)
	assert.Positive(t, handle.PID())
	assert.False(t, handle.Terminated())

	require.NoError(t, handle.Terminate())
	assert.True(t, handle.Terminated())

	// Second terminate is a no-op, not an error.
	require.NoError(t, handle.Terminate())
}

func TestDirectStrategyMissingBinary(t *testing.T) {
	s := &DirectStrategy{}
	_, err := s.Launch(context.Background(), LaunchSpec{
		Executable: "/nonexistent/browser-binary",
		WorkDir:    t.TempDir(),
	})
	require.Error(t, err)

	var spawnErr *SpawnError
	require.ErrorAs(t, err, &spawnErr)
	assert.Equal(t, "/nonexistent/browser-binary", spawnErr.Path)
}

func TestHelperStrategyParsesReportedPID(t *testing.T) {
	shBin, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available")
	}

	// Stand-in helper: ignores its args and reports a fixed debuggee pid.
	helper := &HelperStrategy{HelperPath: shBin}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	handle, err := helper.Launch(ctx, LaunchSpec{
		Executable: "-c",
		Args:       []string{"echo pid=4242"},
		WorkDir:    t.TempDir(),
	})
	require.NoError(t, err)
	assert.Equal(t, 4242, handle.PID())
}
