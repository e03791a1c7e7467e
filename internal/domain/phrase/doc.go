// Package phrase translates a wall-clock time into the spoken form used in
// parts of Germany ("viertel acht", "dreiviertel acht", "gleich halb neun").
//
// Rules:
//   - a point in time is a 5-minute mark on the clock face,
//   - two to one minutes before a point in time is "gleich",
//   - the minute of a point in time is not expressed in a fuzzy way,
//   - one to two minutes after a point in time is "gerade",
//   - the dominant hour is X from the points in time (X-1):15 to X:10.
package phrase
