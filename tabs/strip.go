package tabs

import (
	"errors"

	"github.com/iw2rmb/quicknote/editor"
)

var (
	ErrLastTab = errors.New("cannot close the last tab")
	ErrNoTab   = errors.New("no such tab")
)

// EditorFunc builds the editor for a new tab holding text.
type EditorFunc func(id ID, text string) editor.Model

// Strip is an ordered list of tabs with exactly one active tab. It never
// becomes empty.
type Strip struct {
	tabs   []*Tab
	active int
	nextID ID

	newEditor EditorFunc
}

// NewStrip returns a strip holding one empty Untitled tab.
func NewStrip(newEditor EditorFunc) *Strip {
	if newEditor == nil {
		newEditor = func(_ ID, text string) editor.Model {
			return editor.New(editor.Config{Text: text})
		}
	}
	s := &Strip{newEditor: newEditor, nextID: 1}
	s.Create()
	return s
}

// Create appends an empty Untitled tab, activates it and returns its ID.
func (s *Strip) Create() ID {
	return s.Add(Untitled, "")
}

// Add appends a clean tab with the given title and text and activates it.
// The tab starts with no undo history.
func (s *Strip) Add(title, text string) ID {
	id := s.nextID
	s.nextID++
	s.tabs = append(s.tabs, &Tab{
		ID:     id,
		Title:  title,
		Editor: s.newEditor(id, text),
	})
	s.active = len(s.tabs) - 1
	return id
}

// CloseCheck reports whether id may be removed: ErrNoTab for unknown tabs and
// ErrLastTab when it is the only one. The caller decides what to do with a
// dirty tab before calling Remove.
func (s *Strip) CloseCheck(id ID) error {
	if s.Index(id) < 0 {
		return ErrNoTab
	}
	if len(s.tabs) == 1 {
		return ErrLastTab
	}
	return nil
}

// Remove deletes id. Removing the active tab activates its right neighbour,
// or the left one when it was last.
func (s *Strip) Remove(id ID) error {
	if err := s.CloseCheck(id); err != nil {
		return err
	}
	i := s.Index(id)
	s.tabs = append(s.tabs[:i], s.tabs[i+1:]...)
	switch {
	case i < s.active:
		s.active--
	case s.active >= len(s.tabs):
		s.active = len(s.tabs) - 1
	}
	return nil
}

func (s *Strip) Active() *Tab { return s.tabs[s.active] }

func (s *Strip) ActiveIndex() int { return s.active }

func (s *Strip) Select(id ID) error {
	i := s.Index(id)
	if i < 0 {
		return ErrNoTab
	}
	s.active = i
	return nil
}

// Next activates the tab to the right, wrapping around.
func (s *Strip) Next() {
	s.active = (s.active + 1) % len(s.tabs)
}

// Prev activates the tab to the left, wrapping around.
func (s *Strip) Prev() {
	s.active = (s.active - 1 + len(s.tabs)) % len(s.tabs)
}

// Rename sets the title of id verbatim.
func (s *Strip) Rename(id ID, title string) error {
	t := s.Get(id)
	if t == nil {
		return ErrNoTab
	}
	t.Title = title
	return nil
}

func (s *Strip) Len() int { return len(s.tabs) }

// Tabs returns the tabs in display order.
func (s *Strip) Tabs() []*Tab {
	out := make([]*Tab, len(s.tabs))
	copy(out, s.tabs)
	return out
}

func (s *Strip) Get(id ID) *Tab {
	if i := s.Index(id); i >= 0 {
		return s.tabs[i]
	}
	return nil
}

// Index returns the display position of id, or -1.
func (s *Strip) Index(id ID) int {
	for i, t := range s.tabs {
		if t.ID == id {
			return i
		}
	}
	return -1
}
