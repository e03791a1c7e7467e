package phrase

import (
	"github.com/oshokin/viertel-sieben/internal/domain/clock"
)

// PointInTime is a 5-minute mark on a 12-mark face, 0 being the full hour.
type PointInTime int

const (
	// PointFull is the full hour.
	PointFull PointInTime = 0
	// PointQuarter is "viertel", the first point that names the next hour.
	PointQuarter PointInTime = 3
	// PointsPerHour is the number of points in time on the face.
	PointsPerHour = 12
)

// Fuzziness tells whether the minute is before, at or after its point in time.
type Fuzziness int

const (
	// Before renders as "gleich".
	Before Fuzziness = iota
	// Exact renders as nothing.
	Exact
	// After renders as "gerade".
	After

	fuzzinessCount = iota
)

// HoursPerFace is the number of hour names on a 12-hour face.
const HoursPerFace = 12

// lastMinutesOfHour is where the full hour of the next hour is always "gleich".
const lastMinutesOfHour = 58

// Table lengths are pinned to the enumerations they are indexed by.
//
//nolint:gochecknoglobals // Immutable lookup tables.
var (
	hourNames = [HoursPerFace]string{
		"zwölf",
		"eins",
		"zwei",
		"drei",
		"vier",
		"fünf",
		"sechs",
		"sieben",
		"acht",
		"neun",
		"zehn",
		"elf",
	}

	pointNames = [PointsPerHour]string{
		"",
		"fünf nach",
		"zehn nach",
		"viertel",
		"zehn vor halb",
		"fünf vor halb",
		"halb",
		"fünf nach halb",
		"zehn nach halb ",
		"dreiviertel",
		"zehn vor",
		"fünf vor",
	}

	fuzzinessNames = [fuzzinessCount]string{
		"gleich",
		"",
		"gerade",
	}
)

// Phrase is the translated form of one wall-clock time.
type Phrase struct {
	// Point is the nearest 5-minute mark.
	Point PointInTime
	// Hour is the dominant hour in 12-hour form, 0 meaning "zwölf".
	Hour int
	// Fuzziness qualifies the distance from Point.
	Fuzziness Fuzziness
}

// Translate computes the phrase for t. Point and dominant hour are derived
// from the same minute, so a phrase never mixes two ticks.
func Translate(t clock.Time) Phrase {
	pit := PointInTime(((t.Minute + 2) % clock.MinutesPerHour) / 5)

	hour := t.Hour
	if pit >= PointQuarter || t.Minute >= lastMinutesOfHour {
		hour++
	}

	return Phrase{
		Point:     pit,
		Hour:      hour % HoursPerFace,
		Fuzziness: fuzzinessOf(t.Minute, pit),
	}
}

func fuzzinessOf(minute int, pit PointInTime) Fuzziness {
	if minute >= lastMinutesOfHour {
		return Before
	}

	switch delta := minute - int(pit)*5; {
	case delta < 0:
		return Before
	case delta > 0:
		return After
	default:
		return Exact
	}
}

// IsFull reports whether the phrase names a full hour.
func (p Phrase) IsFull() bool {
	return p.Point == PointFull
}

// FuzzinessText returns the qualifier word, empty for exact points.
func (p Phrase) FuzzinessText() string {
	return fuzzinessNames[p.Fuzziness]
}

// PointText returns the point-in-time words, empty for the full hour.
// "zehn nach halb " keeps the trailing space the watch face always had.
func (p Phrase) PointText() string {
	return pointNames[p.Point]
}

// HourText returns the name of the dominant hour.
func (p Phrase) HourText() string {
	return hourNames[p.Hour]
}

// String lays the phrase out on three lines. On the full hour the point
// line is dropped and an empty first line keeps the hour name at the bottom:
//
//	"\ngleich\nacht"          07:58
//	"gleich\ndreiviertel\nacht" 07:44
func (p Phrase) String() string {
	if p.IsFull() {
		return "\n" + p.FuzzinessText() + "\n" + p.HourText()
	}

	return p.FuzzinessText() + "\n" + p.PointText() + "\n" + p.HourText()
}

// String returns the qualifier word of f.
func (f Fuzziness) String() string {
	return fuzzinessNames[f]
}

// String returns the words of the point in time.
func (p PointInTime) String() string {
	return pointNames[p]
}
