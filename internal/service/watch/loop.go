package watch

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/oshokin/viertel-sieben/internal/domain/clock"
	"github.com/oshokin/viertel-sieben/internal/logger"
	"github.com/oshokin/viertel-sieben/internal/service/face"
)

// Display shows one frame.
type Display interface {
	Show(ctx context.Context, frame face.Frame) error
}

// Haptic performs the alert vibration.
type Haptic interface {
	DoublePulse(ctx context.Context) error
}

// Loop renders a frame on start and on every minute boundary after that.
// Each tick is computed from the time it fires at; missed minutes are not replayed.
type Loop struct {
	// face renders frames.
	face *face.Face
	// display receives every frame.
	display Display
	// haptic receives alerts, may be nil.
	haptic Haptic
	// clock drives the minute timer.
	clock clockwork.Clock
	// location is the zone the wall clock is read in.
	location *time.Location
}

// NewLoop creates a loop. A nil clock means the real clock, a nil location means time.Local.
func NewLoop(f *face.Face, display Display, haptic Haptic, clk clockwork.Clock, location *time.Location) *Loop {
	if clk == nil {
		clk = clockwork.NewRealClock()
	}

	if location == nil {
		location = time.Local
	}

	return &Loop{
		face:     f,
		display:  display,
		haptic:   haptic,
		clock:    clk,
		location: location,
	}
}

// Run blocks until ctx is canceled. Tick failures are logged and the loop goes on.
func (l *Loop) Run(ctx context.Context) error {
	if err := l.Tick(ctx, l.clock.Now()); err != nil {
		logger.ErrorKV(ctx, "Tick failed", "error", err)
	}

	for {
		timer := l.clock.NewTimer(untilNextMinute(l.clock.Now()))

		select {
		case <-ctx.Done():
			timer.Stop()
			logger.Info(ctx, "Context canceled, exiting")

			return nil
		case now := <-timer.Chan():
			if err := l.Tick(ctx, now); err != nil {
				logger.ErrorKV(ctx, "Tick failed", "error", err)
			}
		}
	}
}

// Tick renders the frame for now and delivers it to the sinks.
func (l *Loop) Tick(ctx context.Context, now time.Time) error {
	wall := clock.FromTime(now.In(l.location))

	frame, err := l.face.Render(ctx, wall)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	logger.DebugKV(ctx, "Frame rendered", "time", wall.String(), "segment", frame.SegmentText, "alert", frame.Alert)

	if err = l.display.Show(ctx, frame); err != nil {
		return fmt.Errorf("show: %w", err)
	}

	if !frame.Alert || l.haptic == nil {
		return nil
	}

	if err = l.haptic.DoublePulse(ctx); err != nil {
		return fmt.Errorf("double pulse: %w", err)
	}

	return nil
}

// untilNextMinute returns the time left to the next full minute, never zero.
func untilNextMinute(now time.Time) time.Duration {
	return now.Truncate(time.Minute).Add(time.Minute).Sub(now)
}
