package watch

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jonboulle/clockwork"

	"github.com/oshokin/viertel-sieben/internal/config"
	"github.com/oshokin/viertel-sieben/internal/display/terminal"
	"github.com/oshokin/viertel-sieben/internal/logger"
	"github.com/oshokin/viertel-sieben/internal/service/face"
)

// Options controls the watch process and configuration.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// Extended overrides the extended setting from the file when not nil.
	Extended *bool
	// Out receives the terminal face, stdout when nil.
	Out io.Writer
	// Clock drives the minute timer, the real clock when nil.
	Clock clockwork.Clock
}

// Run loads the settings, builds the face and its sinks and ticks until ctx is canceled.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "watch")

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	// Command line flag beats the file.
	if opts.Extended != nil {
		cfg.Extended = *opts.Extended
	}

	if level, ok := logger.ParseLogLevel(cfg.LogLevel); ok {
		logger.SetLevel(level)
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	loop := NewLoop(
		face.NewFromConfig(cfg),
		terminal.NewDisplay(out),
		terminal.NewHaptic(out, cfg.Bell),
		opts.Clock,
		cfg.TimeLocation(),
	)

	logger.InfoKV(ctx, "Watch face running", "extended", cfg.Extended, "location", cfg.Location)

	return loop.Run(ctx)
}
