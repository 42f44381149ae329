// Package tabs keeps the ordered set of open documents and tracks which one is
// active.
//
// A tab's unsaved state lives in its title: a dirty tab's title ends with
// DirtyMarker. Titles of saved or opened documents double as their file path.
package tabs

import (
	"strings"

	"github.com/iw2rmb/quicknote/editor"
)

const (
	// Untitled is the title of a tab that has never been saved.
	Untitled = "Untitled"
	// DirtyMarker is appended to the title of a tab with unsaved edits.
	DirtyMarker = "*"
)

// ID identifies a tab for the lifetime of a Strip.
type ID int

type Tab struct {
	ID     ID
	Title  string
	Editor editor.Model
}

// Dirty reports whether the title carries the dirty marker.
func (t *Tab) Dirty() bool { return strings.HasSuffix(t.Title, DirtyMarker) }

// MarkDirty appends the marker unless it is already there.
func (t *Tab) MarkDirty() {
	if !t.Dirty() {
		t.Title += DirtyMarker
	}
}

// MarkClean removes exactly one trailing marker.
func (t *Tab) MarkClean() {
	t.Title = strings.TrimSuffix(t.Title, DirtyMarker)
}

// BaseTitle returns the title without the dirty marker. For saved documents
// it is also the save path.
func (t *Tab) BaseTitle() string {
	return strings.TrimSuffix(t.Title, DirtyMarker)
}

// Untitled reports whether the tab has never been given a name.
func (t *Tab) Untitled() bool { return t.BaseTitle() == Untitled }

// Text returns the full document text.
func (t *Tab) Text() string { return t.Editor.Buffer().Text() }
