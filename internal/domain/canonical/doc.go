// Package canonical maps a time of day to one of the canonical hours of the
// liturgy (Matutin, Laudes, Terz, Sext, Non, Vesper, Komplet) and decides
// when the Angelus is rung.
package canonical
