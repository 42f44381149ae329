// Package buffer implements the document model behind one editor tab.
//
// Coordinates are 0-based (Row, GraphemeCol) where GraphemeCol counts
// grapheme clusters. Ranges are half-open selections in document coordinates:
// [Start, End).
//
// Every effective text mutation records an undo snapshot. Consecutive
// mutations coalesce into one undo unit until Separator is called, so hosts
// decide the granularity of undo (for example, one unit per key press).
package buffer
