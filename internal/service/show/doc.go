// Package show renders frames on demand instead of on the minute: a single
// frame for a given time, or a listing of the whole day.
package show
