package phrase_test

import (
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/viertel-sieben/internal/domain/clock"
	"github.com/oshokin/viertel-sieben/internal/domain/phrase"
)

func at(t *testing.T, hour, minute int) clock.Time {
	t.Helper()

	tt, err := clock.New(hour, minute)
	require.NoError(t, err)

	return tt
}

// TestTranslate_Rendering pins the exact text of hand-traced times.
func TestTranslate_Rendering(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		hour   int
		minute int
		want   string
	}{
		{name: "dreiviertel acht", hour: 7, minute: 44, want: "gleich\ndreiviertel\nacht"},
		{name: "exact dreiviertel", hour: 7, minute: 45, want: "\ndreiviertel\nacht"},
		{name: "gerade dreiviertel", hour: 7, minute: 46, want: "gerade\ndreiviertel\nacht"},
		{name: "full hour", hour: 8, minute: 0, want: "\n\nacht"},
		{name: "gleich full hour", hour: 7, minute: 58, want: "\ngleich\nacht"},
		{name: "gerade full hour", hour: 8, minute: 2, want: "\ngerade\nacht"},
		{name: "fünf nach", hour: 8, minute: 5, want: "\nfünf nach\nacht"},
		{name: "zehn nach keeps hour", hour: 8, minute: 12, want: "gerade\nzehn nach\nacht"},
		{name: "gleich viertel names next hour", hour: 8, minute: 13, want: "gleich\nviertel\nneun"},
		{name: "halb", hour: 8, minute: 30, want: "\nhalb\nneun"},
		{name: "zehn nach halb", hour: 8, minute: 40, want: "\nzehn nach halb \nneun"},
		{name: "gerade zehn nach halb", hour: 6, minute: 42, want: "gerade\nzehn nach halb \nsieben"},
		{name: "midnight", hour: 0, minute: 0, want: "\n\nzwölf"},
		{name: "noon wraps from elf", hour: 11, minute: 59, want: "\ngleich\nzwölf"},
		{name: "evening folds to 12-hour", hour: 23, minute: 57, want: "gerade\nfünf vor\nzwölf"},
		{name: "fünf vor halb", hour: 18, minute: 25, want: "\nfünf vor halb\nsieben"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := phrase.Translate(at(t, tc.hour, tc.minute)).String()
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Translate(%02d:%02d) mismatch (-want +got):\n%s", tc.hour, tc.minute, diff)
			}
		})
	}
}

// TestTranslate_Fields checks the decomposed phrase of the regression case.
func TestTranslate_Fields(t *testing.T) {
	t.Parallel()

	want := phrase.Phrase{
		Point:     phrase.PointInTime(9),
		Hour:      8,
		Fuzziness: phrase.Before,
	}

	got := phrase.Translate(at(t, 7, 44))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Translate(07:44) mismatch (-want +got):\n%s", diff)
	}

	require.Equal(t, "gleich", got.FuzzinessText())
	require.Equal(t, "dreiviertel", got.PointText())
	require.Equal(t, "acht", got.HourText())
}

// TestTranslate_FullHour holds for every hour of the day.
func TestTranslate_FullHour(t *testing.T) {
	t.Parallel()

	for h := range clock.HoursPerDay {
		p := phrase.Translate(at(t, h, 0))

		require.Equal(t, phrase.Exact, p.Fuzziness)
		require.Equal(t, phrase.PointFull, p.Point)
		require.Empty(t, p.PointText())
		require.Equal(t, h%phrase.HoursPerFace, p.Hour)
	}
}

// TestTranslate_LastMinutes forces "gleich" and the next hour at :58 and :59.
func TestTranslate_LastMinutes(t *testing.T) {
	t.Parallel()

	for h := range clock.HoursPerDay {
		for _, m := range []int{58, 59} {
			p := phrase.Translate(at(t, h, m))

			require.Equal(t, phrase.Before, p.Fuzziness)
			require.Equal(t, phrase.PointFull, p.Point)
			require.Equal(t, (h+1)%phrase.HoursPerFace, p.Hour)
		}
	}
}

// TestTranslate_PointMonotonic checks the range of points and that they only
// drop at the wrap from :57 to :58.
func TestTranslate_PointMonotonic(t *testing.T) {
	t.Parallel()

	prev := phrase.PointInTime(-1)

	for m := range clock.MinutesPerHour {
		p := phrase.Translate(at(t, 10, m))

		require.GreaterOrEqual(t, int(p.Point), 0)
		require.Less(t, int(p.Point), phrase.PointsPerHour)
		require.GreaterOrEqual(t, p.Hour, 0)
		require.Less(t, p.Hour, phrase.HoursPerFace)

		if m != 58 {
			require.GreaterOrEqual(t, int(p.Point), int(prev), "minute %d", m)
		}

		prev = p.Point
	}
}

// TestTranslate_DominantHourWindow verifies the dominant hour is X from
// (X-1):13 through X:12, the minutes that round to (X-1):15 and X:10.
func TestTranslate_DominantHourWindow(t *testing.T) {
	t.Parallel()

	for m := range clock.MinutesPerHour {
		p := phrase.Translate(at(t, 3, m))

		want := 3
		if m >= 13 {
			want = 4
		}

		require.Equal(t, want, p.Hour, "03:%02d", m)
	}
}

// TestTranslate_Fuzziness walks one point in time from both sides.
func TestTranslate_Fuzziness(t *testing.T) {
	t.Parallel()

	want := map[int]phrase.Fuzziness{
		28: phrase.Before,
		29: phrase.Before,
		30: phrase.Exact,
		31: phrase.After,
		32: phrase.After,
	}
	for m, f := range want {
		p := phrase.Translate(at(t, 9, m))

		require.Equal(t, phrase.PointInTime(6), p.Point)
		require.Equal(t, f, p.Fuzziness, "09:%02d", m)
	}
}

// TestTranslate_Bounded asserts every rendered phrase fits a 32 byte buffer
// with its terminator.
func TestTranslate_Bounded(t *testing.T) {
	t.Parallel()

	longest := ""

	for m := 0; m <= clock.LastMinuteOfDay; m++ {
		tt, err := clock.FromMinuteOfDay(m)
		require.NoError(t, err)

		s := phrase.Translate(tt).String()
		require.True(t, utf8.ValidString(s))

		if len(s) > len(longest) {
			longest = s
		}
	}

	require.Less(t, len(longest), 32, "%q", longest)
}

// TestTranslate_Idempotent repeats the same input.
func TestTranslate_Idempotent(t *testing.T) {
	t.Parallel()

	first := phrase.Translate(at(t, 16, 17))
	for range 10 {
		require.Equal(t, first, phrase.Translate(at(t, 16, 17)))
	}
}
