// Package clipboard connects the editor to the system clipboard.
package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"
)

// ErrEmpty is returned by Memory when nothing has been copied yet.
var ErrEmpty = errors.New("clipboard: empty")

// Memory is an in-process clipboard.
type Memory struct {
	text string
	set  bool
}

func (m *Memory) ReadText() (string, error) {
	if !m.set {
		return "", ErrEmpty
	}
	return m.text, nil
}

func (m *Memory) WriteText(s string) error {
	m.text = s
	m.set = true
	return nil
}

// System reads and writes the OS clipboard. Copied text is mirrored in
// process, and reads fall back to it whenever the OS clipboard is missing or
// fails, so copy and paste keep working between tabs in headless sessions.
type System struct {
	mem Memory

	unsupported bool
	readAll     func() (string, error)
	writeAll    func(string) error
}

func NewSystem() *System {
	return &System{
		unsupported: clipboard.Unsupported,
		readAll:     clipboard.ReadAll,
		writeAll:    clipboard.WriteAll,
	}
}

func (s *System) ReadText() (string, error) {
	if s.unsupported {
		return s.mem.ReadText()
	}
	text, err := s.readAll()
	if err != nil {
		return s.mem.ReadText()
	}
	return text, nil
}

func (s *System) WriteText(text string) error {
	_ = s.mem.WriteText(text)
	if s.unsupported {
		return nil
	}
	if err := s.writeAll(text); err != nil {
		// Pasting inside QuickNote still works from the mirror.
		s.unsupported = true
	}
	return nil
}
