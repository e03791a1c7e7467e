package show

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap/zapcore"

	"github.com/oshokin/viertel-sieben/internal/config"
	"github.com/oshokin/viertel-sieben/internal/display/terminal"
	"github.com/oshokin/viertel-sieben/internal/domain/clock"
	"github.com/oshokin/viertel-sieben/internal/logger"
	"github.com/oshokin/viertel-sieben/internal/service/face"
)

// Options controls the one-shot commands.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// Extended overrides the extended setting from the file when not nil.
	Extended *bool
	// Out receives the output, stdout when nil.
	Out io.Writer
}

// DefaultStep is the listing interval of Day, one point in time.
const DefaultStep = 5

// errBadStep is returned when the Day step does not divide into the day.
var errBadStep = errors.New("step must be between 1 and 60 minutes")

// At draws the frame for a "HH:MM" time.
func At(ctx context.Context, opts *Options, at string) error {
	f, out, level, err := setup(opts)
	if err != nil {
		return err
	}

	ctx = quiet(ctx, "at", level)

	t, err := clock.Parse(at)
	if err != nil {
		return err
	}

	frame, err := f.Render(ctx, t)
	if err != nil {
		return err
	}

	logger.DebugKV(ctx, "Frame rendered", "time", t.String(), "segment", frame.SegmentText, "alert", frame.Alert)

	return terminal.NewDisplay(out).Show(ctx, frame)
}

// Day prints one line per step minutes with the phrase flattened onto it.
func Day(ctx context.Context, opts *Options, step int) error {
	if step <= 0 || step > clock.MinutesPerHour {
		return fmt.Errorf("%d: %w", step, errBadStep)
	}

	f, out, level, err := setup(opts)
	if err != nil {
		return err
	}

	ctx = quiet(ctx, "day", level)
	logger.DebugKV(ctx, "Listing day", "step", step, "extended", f.Extended())

	for m := 0; m <= clock.LastMinuteOfDay; m += step {
		t, err := clock.FromMinuteOfDay(m)
		if err != nil {
			return err
		}

		frame, err := f.Render(ctx, t)
		if err != nil {
			return err
		}

		if _, err = fmt.Fprintln(out, Line(frame)); err != nil {
			return fmt.Errorf("write line: %w", err)
		}
	}

	return nil
}

// Line flattens a frame to "HH:MM  words [segment] *", the star marking an alert.
func Line(frame face.Frame) string {
	words := strings.Fields(frame.Text)

	var b strings.Builder

	b.WriteString(frame.Time.String())
	b.WriteString("  ")
	b.WriteString(strings.Join(words, " "))

	if frame.Extended {
		b.WriteString(" [")
		b.WriteString(frame.SegmentText)
		b.WriteString("]")
	}

	if frame.Alert {
		b.WriteString(" *")
	}

	return b.String()
}

// oneShotLevel maps log_level to the level of the one-shot commands. The
// default "info" is raised to warn so the output is the face alone; any other
// level, "debug" included, is taken as configured.
func oneShotLevel(logLevel string) zapcore.Level {
	level, ok := logger.ParseLogLevel(logLevel)
	if !ok || level == zapcore.InfoLevel {
		return zapcore.WarnLevel
	}

	return level
}

// quiet names the context logger and limits it to level.
func quiet(ctx context.Context, name string, level zapcore.Level) context.Context {
	l := logger.FromContext(ctx).WithOptions(logger.WithLevel(level))

	return logger.ToContext(ctx, l.Named(name))
}

func setup(opts *Options) (*face.Face, io.Writer, zapcore.Level, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, nil, zapcore.WarnLevel, fmt.Errorf("load settings: %w", err)
	}

	if opts.Extended != nil {
		cfg.Extended = *opts.Extended
	}

	level := oneShotLevel(cfg.LogLevel)

	// The global level gates every core, so lower it when debug is asked for.
	if level < logger.Level() {
		logger.SetLevel(level)
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	return face.NewFromConfig(cfg), out, level, nil
}
