// Package face composes the phrase translator and the optional canonical
// hour classifier into the frame shown for one minute.
//
// The classifier is present iff the extended face is enabled; a Face
// without one renders the phrase only and never raises the alert.
package face
