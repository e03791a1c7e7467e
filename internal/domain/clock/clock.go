package clock

import (
	"errors"
	"fmt"
	"time"
)

const (
	// HoursPerDay is the number of hours on a 24-hour clock.
	HoursPerDay = 24
	// MinutesPerHour is the number of minutes in an hour.
	MinutesPerHour = 60
	// MinutesPerDay is the number of minutes in a day.
	MinutesPerDay = HoursPerDay * MinutesPerHour
	// LastMinuteOfDay is the minute of day of 23:59.
	LastMinuteOfDay = MinutesPerDay - 1

	// layout is the time.Parse layout of Parse; the hour takes one or two digits.
	layout = "15:04"
)

var (
	// ErrHourOutOfRange is returned when an hour is outside 0-23.
	ErrHourOutOfRange = errors.New("hour out of range")
	// ErrMinuteOutOfRange is returned when a minute is outside 0-59.
	ErrMinuteOutOfRange = errors.New("minute out of range")
	// errBadLayout is returned when a string is not in HH:MM form.
	errBadLayout = errors.New("expected HH:MM")
)

// Time is a wall-clock time of day with minute resolution.
type Time struct {
	// Hour is the hour of day, 0-23.
	Hour int
	// Minute is the minute of the hour, 0-59.
	Minute int
}

// New returns a Time after checking both fields against their ranges.
func New(hour, minute int) (Time, error) {
	if hour < 0 || hour >= HoursPerDay {
		return Time{}, fmt.Errorf("%d: %w", hour, ErrHourOutOfRange)
	}

	if minute < 0 || minute >= MinutesPerHour {
		return Time{}, fmt.Errorf("%d: %w", minute, ErrMinuteOutOfRange)
	}

	return Time{
		Hour:   hour,
		Minute: minute,
	}, nil
}

// FromTime takes the hour and minute of t in t's location.
func FromTime(t time.Time) Time {
	return Time{
		Hour:   t.Hour(),
		Minute: t.Minute(),
	}
}

// FromMinuteOfDay is the inverse of MinuteOfDay.
func FromMinuteOfDay(minuteOfDay int) (Time, error) {
	if minuteOfDay < 0 || minuteOfDay > LastMinuteOfDay {
		return Time{}, fmt.Errorf("minute of day %d: %w", minuteOfDay, ErrMinuteOutOfRange)
	}

	return Time{
		Hour:   minuteOfDay / MinutesPerHour,
		Minute: minuteOfDay % MinutesPerHour,
	}, nil
}

// Parse reads a "HH:MM" or "H:MM" string. Anything else, trailing text and
// signs included, is rejected.
func Parse(s string) (Time, error) {
	parsed, err := time.Parse(layout, s)
	if err != nil {
		return Time{}, fmt.Errorf("parse %q: %w: %w", s, errBadLayout, err)
	}

	return FromTime(parsed), nil
}

// MinuteOfDay returns hour*60 + minute.
func (t Time) MinuteOfDay() int {
	return t.Hour*MinutesPerHour + t.Minute
}

// String renders the time as "HH:MM".
func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}
