// Package watch owns the once-per-minute loop that plays the part of the
// watch platform: it reads the wall clock, asks the face for a frame and
// hands it to the display and haptic sinks.
package watch
