// Package editor provides the Bubble Tea text area used by every QuickNote
// tab, backed by the buffer package.
//
// The package is responsible for key and mouse editing, soft wrapping,
// viewport behavior, grapheme-aware rendering, clipboard integration and
// change notifications.
package editor
