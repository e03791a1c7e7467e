package terminal

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/oshokin/viertel-sieben/internal/service/face"
)

// faceWidth is the inner width of the box in cells. It fits "zehn nach halb".
const faceWidth = 16

// Display draws frames to a writer.
type Display struct {
	// w receives the rendered box.
	w io.Writer
	// phrase styles the three phrase lines.
	phrase lipgloss.Style
	// segment styles the canonical hour line.
	segment lipgloss.Style
	// box draws the border around both.
	box lipgloss.Style
	// mu serializes writes of whole frames.
	mu sync.Mutex
}

// NewDisplay creates a display writing to w. Colors follow what w supports,
// so a plain buffer gets plain text.
func NewDisplay(w io.Writer) *Display {
	r := lipgloss.NewRenderer(w)

	return &Display{
		w:       w,
		phrase:  r.NewStyle().Bold(true).Width(faceWidth),
		segment: r.NewStyle().Width(faceWidth).Align(lipgloss.Right).Faint(true),
		box: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1),
	}
}

// Render returns the box for frame without writing it.
func (d *Display) Render(frame face.Frame) string {
	body := d.phrase.Render(frame.Text)

	if frame.Extended {
		body = lipgloss.JoinVertical(lipgloss.Left, body, "", d.segment.Render(frame.SegmentText))
	}

	return d.box.Render(body)
}

// Show writes the box for frame followed by a newline.
func (d *Display) Show(_ context.Context, frame face.Frame) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, err := fmt.Fprintln(d.w, d.Render(frame)); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}

	return nil
}
