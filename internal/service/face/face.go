package face

import (
	"context"
	"errors"
	"fmt"

	"github.com/oshokin/viertel-sieben/internal/config"
	"github.com/oshokin/viertel-sieben/internal/domain/canonical"
	"github.com/oshokin/viertel-sieben/internal/domain/clock"
	"github.com/oshokin/viertel-sieben/internal/domain/phrase"
	"github.com/oshokin/viertel-sieben/internal/logger"
)

const (
	// TimeTextCapacity is the size of the phrase buffer on the watch, terminator included.
	TimeTextCapacity = 32
	// SegmentTextCapacity is the size of the canonical hour buffer, terminator included.
	SegmentTextCapacity = 16
)

// ErrTextOverflow is returned when rendered text would not fit its buffer.
var ErrTextOverflow = errors.New("rendered text exceeds buffer")

// Frame is everything the display and haptic sinks need for one minute.
type Frame struct {
	// Time is the wall-clock value the frame was computed from.
	Time clock.Time
	// Phrase is the decomposed phrase.
	Phrase phrase.Phrase
	// Text is the laid out phrase.
	Text string
	// Extended is set when the canonical hour fields are populated.
	Extended bool
	// Segment is the canonical hour, only meaningful when Extended.
	Segment canonical.Segment
	// SegmentText is the name of Segment, empty unless Extended.
	SegmentText string
	// Alert asks the haptic sink for a double pulse.
	Alert bool
}

// Face renders frames. It holds no per-tick state and is safe for concurrent use.
type Face struct {
	// classifier is nil when the extended face is disabled.
	classifier *canonical.Classifier
}

// Option configures a Face.
type Option func(*Face)

// WithClassifier enables the extended face with c.
func WithClassifier(c *canonical.Classifier) Option {
	return func(f *Face) {
		f.classifier = c
	}
}

// New creates a Face. Without options it renders the phrase only.
func New(opts ...Option) *Face {
	f := new(Face)

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// NewFromConfig creates a Face with the default classifier when cfg enables it.
func NewFromConfig(cfg *config.Config) *Face {
	if cfg == nil || !cfg.Extended {
		return New()
	}

	return New(WithClassifier(canonical.Default()))
}

// Extended reports whether the face has a classifier.
func (f *Face) Extended() bool {
	return f.classifier != nil
}

// Render computes the frame for t.
func (f *Face) Render(ctx context.Context, t clock.Time) (Frame, error) {
	p := phrase.Translate(t)

	frame := Frame{
		Time:   t,
		Phrase: p,
		Text:   p.String(),
	}

	if err := checkFits(frame.Text, TimeTextCapacity); err != nil {
		return Frame{}, fmt.Errorf("phrase at %s: %w", t, err)
	}

	if f.classifier == nil {
		return frame, nil
	}

	frame.Extended = true
	frame.Segment = f.classifier.Classify(t)
	frame.SegmentText = frame.Segment.String()
	frame.Alert = canonical.ShouldAlert(t)

	if !frame.Segment.Valid() {
		logger.WarnKV(ctx, "Canonical hour table does not cover minute", "time", t.String(), "ends", f.classifier.Ends())
	}

	if err := checkFits(frame.SegmentText, SegmentTextCapacity); err != nil {
		return Frame{}, fmt.Errorf("canonical hour at %s: %w", t, err)
	}

	return frame, nil
}

// checkFits leaves room for the terminator the watch buffers reserve.
func checkFits(s string, capacity int) error {
	if len(s) >= capacity {
		return fmt.Errorf("%d bytes, capacity %d: %w", len(s)+1, capacity, ErrTextOverflow)
	}

	return nil
}
