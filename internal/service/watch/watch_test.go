package watch

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/viertel-sieben/internal/config"
)

// runOnce starts Run, waits for the first frame and the next timer, then stops it.
func runOnce(t *testing.T, opts *Options, fake *clockwork.FakeClock) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() {
		done <- Run(ctx, opts)
	}()

	waitCtx, waitCancel := context.WithTimeout(context.Background(), time.Second)
	defer waitCancel()

	require.NoError(t, fake.BlockUntilContext(waitCtx, 1))

	cancel()
	require.NoError(t, <-done)
}

// TestRun_UsesSettings draws the extended face from a settings file.
func TestRun_UsesSettings(t *testing.T) {
	t.Parallel()

	cfgPath := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, config.Save(cfgPath, &config.Config{
		Extended: true,
		LogLevel: "error",
		Location: "UTC",
		Bell:     true,
	}))

	var out bytes.Buffer

	fake := clockwork.NewFakeClockAt(time.Date(2026, 10, 14, 18, 0, 5, 0, time.UTC))
	runOnce(t, &Options{ConfigPath: cfgPath, Out: &out, Clock: fake}, fake)

	require.Contains(t, out.String(), "sechs")
	require.Contains(t, out.String(), "Vesper")
	require.Equal(t, 1, strings.Count(out.String(), "\a\a"))
}

// TestRun_FlagOverridesExtended hides the canonical hour when the flag says so.
func TestRun_FlagOverridesExtended(t *testing.T) {
	t.Parallel()

	cfgPath := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, config.Save(cfgPath, &config.Config{
		Extended: true,
		LogLevel: "error",
		Location: "UTC",
	}))

	var out bytes.Buffer

	extended := false
	fake := clockwork.NewFakeClockAt(time.Date(2026, 10, 14, 18, 0, 5, 0, time.UTC))
	runOnce(t, &Options{ConfigPath: cfgPath, Extended: &extended, Out: &out, Clock: fake}, fake)

	require.Contains(t, out.String(), "sechs")
	require.NotContains(t, out.String(), "Vesper")
	require.NotContains(t, out.String(), "\a")
}

// TestRun_MissingSettings fails before ticking.
func TestRun_MissingSettings(t *testing.T) {
	t.Parallel()

	err := Run(context.Background(), &Options{ConfigPath: filepath.Join(t.TempDir(), "missing.yaml")})
	require.Error(t, err)
}
