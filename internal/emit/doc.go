// Package emit renders the catalog into the two artifacts that must agree:
// the ANTLR tokens file and the Go symbol module of the hand-written scanner.
//
// Both renderers walk the catalog in index order and derive every ID from the
// catalog, never from their own counters, so the artifacts cannot disagree on
// numbering as long as they are rendered from the same *catalog.Catalog.
package emit
