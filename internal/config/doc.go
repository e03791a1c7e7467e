// Package config defines the face settings used by the viertel-sieben
// commands and provides helpers to load, validate and save them in YAML
// format.
//
// The Config type switches the extended face (canonical hours and Angelus)
// and picks the log level, the time zone and the terminal bell.
package config
