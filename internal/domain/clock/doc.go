// Package clock defines the wall-clock value consumed by the face.
//
// A Time holds an hour (0-23) and a minute (0-59) and nothing else: no date,
// no seconds, no location. Values built with New or Parse are validated,
// values built with FromTime are valid by construction.
package clock
