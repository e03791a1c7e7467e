package canonical

import (
	"errors"
	"fmt"

	"github.com/oshokin/viertel-sieben/internal/domain/clock"
)

// Segment is one canonical hour of the day.
type Segment int

const (
	// Matins runs from midnight to 04:59.
	Matins Segment = iota
	// Lauds runs to 08:29.
	Lauds
	// Terce runs to 10:29.
	Terce
	// Sext runs to 13:29.
	Sext
	// Nones runs to 15:59.
	Nones
	// Vespers runs to 18:59.
	Vespers
	// Compline runs to 23:59.
	Compline
	// SegmentInvalid is returned when a boundary table does not cover a minute.
	SegmentInvalid

	// SegmentCount is the number of real segments, SegmentInvalid excluded.
	SegmentCount = int(SegmentInvalid)
)

//nolint:gochecknoglobals // Immutable lookup tables.
var (
	segmentNames = [SegmentCount + 1]string{
		"Matutin",
		"Laudes",
		"Terz",
		"Sext",
		"Non",
		"Vesper",
		"Komplet",
		"<Fehler>",
	}

	// DefaultBoundaries holds the inclusive end of each segment in minutes of day.
	DefaultBoundaries = [SegmentCount]int{
		4*60 + 59,
		8*60 + 29,
		10*60 + 29,
		13*60 + 29,
		15*60 + 59,
		18*60 + 59,
		23*60 + 59,
	}

	// angelusHours are the hours whose first minute rings the Angelus.
	angelusHours = [...]int{6, 12, 18}
)

var (
	// ErrBoundaryCount is returned when the table does not have one end per segment.
	ErrBoundaryCount = errors.New("boundary table must have one entry per segment")
	// ErrBoundariesUnordered is returned when ends are not strictly increasing.
	ErrBoundariesUnordered = errors.New("boundaries must be strictly increasing")
	// ErrBoundariesNotExhaustive is returned when the table does not end at 23:59.
	ErrBoundariesNotExhaustive = errors.New("boundaries must end at the last minute of the day")
)

// Classifier looks up the canonical hour of a time of day.
// It is immutable and safe for concurrent use.
type Classifier struct {
	// ends holds the inclusive end of each segment in minutes of day.
	ends [SegmentCount]int
}

// NewClassifier validates ends and builds a classifier from them.
func NewClassifier(ends []int) (*Classifier, error) {
	if len(ends) != SegmentCount {
		return nil, fmt.Errorf("got %d, want %d: %w", len(ends), SegmentCount, ErrBoundaryCount)
	}

	c := new(Classifier)

	prev := -1
	for i, end := range ends {
		if end <= prev {
			return nil, fmt.Errorf("%s ends at %d after %d: %w", Segment(i), end, prev, ErrBoundariesUnordered)
		}

		c.ends[i] = end
		prev = end
	}

	if prev != clock.LastMinuteOfDay {
		return nil, fmt.Errorf("last end is %d: %w", prev, ErrBoundariesNotExhaustive)
	}

	return c, nil
}

// Default returns a classifier over DefaultBoundaries.
func Default() *Classifier {
	c, err := NewClassifier(DefaultBoundaries[:])
	if err != nil {
		panic(err)
	}

	return c
}

// Classify returns the first segment whose inclusive end is at or after t.
// SegmentInvalid is only reachable through a table that skipped validation.
func (c *Classifier) Classify(t clock.Time) Segment {
	minuteOfDay := t.MinuteOfDay()

	for i, end := range c.ends {
		if minuteOfDay <= end {
			return Segment(i)
		}
	}

	return SegmentInvalid
}

// Ends returns a copy of the boundary table.
func (c *Classifier) Ends() []int {
	return append([]int(nil), c.ends[:]...)
}

// ShouldAlert reports whether t is the first minute of an Angelus hour.
func ShouldAlert(t clock.Time) bool {
	if t.Minute != 0 {
		return false
	}

	for _, h := range angelusHours {
		if t.Hour == h {
			return true
		}
	}

	return false
}

// String returns the German name of the segment.
func (s Segment) String() string {
	if s < 0 || int(s) > SegmentCount {
		return segmentNames[SegmentInvalid]
	}

	return segmentNames[s]
}

// Valid reports whether s is a real segment.
func (s Segment) Valid() bool {
	return s >= Matins && s < SegmentInvalid
}
