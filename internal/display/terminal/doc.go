// Package terminal implements the display and haptic sinks on a text
// terminal: the phrase is drawn in a rounded box with the canonical hour
// right-aligned below it, and the Angelus double pulse is two bells.
package terminal
