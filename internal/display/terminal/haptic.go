package terminal

import (
	"context"
	"fmt"
	"io"

	"github.com/oshokin/viertel-sieben/internal/logger"
)

// doublePulse is the terminal rendition of the watch's double vibration.
const doublePulse = "\a\a"

// Haptic rings the terminal bell.
type Haptic struct {
	// w receives the bell characters.
	w io.Writer
	// enabled is false when the bell is switched off in the settings.
	enabled bool
}

// NewHaptic creates a haptic sink. A disabled sink only logs.
func NewHaptic(w io.Writer, enabled bool) *Haptic {
	return &Haptic{
		w:       w,
		enabled: enabled,
	}
}

// DoublePulse rings the bell twice.
func (h *Haptic) DoublePulse(ctx context.Context) error {
	logger.InfoKV(ctx, "Angelus", "bell", h.enabled)

	if !h.enabled {
		return nil
	}

	if _, err := io.WriteString(h.w, doublePulse); err != nil {
		return fmt.Errorf("ring bell: %w", err)
	}

	return nil
}
