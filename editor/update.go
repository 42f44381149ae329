package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/quicknote/buffer"
)

// Action is an edit command that hosts can trigger outside of key handling,
// for example from a menu.
type Action uint8

const (
	ActionUndo Action = iota
	ActionRedo
	ActionCut
	ActionCopy
	ActionPaste
	ActionSelectAll
)

func (a Action) String() string {
	switch a {
	case ActionUndo:
		return "undo"
	case ActionRedo:
		return "redo"
	case ActionCut:
		return "cut"
	case ActionCopy:
		return "copy"
	case ActionPaste:
		return "paste"
	case ActionSelectAll:
		return "select all"
	default:
		return "unknown"
	}
}

// Do runs a as one discrete user action: it closes the current undo unit
// first, exactly like a key press does.
func (m Model) Do(a Action) Model {
	if m.buf == nil {
		return m
	}
	m.buf.Separator()
	m.apply(a)
	m.syncFromBuffer()
	return m
}

func (m Model) apply(a Action) {
	switch a {
	case ActionUndo:
		_ = m.buf.Undo()
	case ActionRedo:
		_ = m.buf.Redo()
	case ActionCut:
		m.cutSelection()
	case ActionCopy:
		m.copySelection()
	case ActionPaste:
		m.pasteClipboard()
	case ActionSelectAll:
		m.buf.SelectAll()
	}
}

func (m Model) updateKey(msg tea.KeyMsg) Model {
	if !m.focused || m.buf == nil {
		return m
	}

	// Every key press is its own undo unit.
	m.buf.Separator()

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		m.buf.InsertText(normalizeNewlines(string(msg.Runes)))
		return m
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Left):
		m.buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft})
	case key.Matches(msg, km.Right):
		m.buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirRight})
	case key.Matches(msg, km.Up):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirUp})
	case key.Matches(msg, km.Down):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirDown})

	case key.Matches(msg, km.ShiftLeft):
		m.buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft, Extend: true})
	case key.Matches(msg, km.ShiftRight):
		m.buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirRight, Extend: true})
	case key.Matches(msg, km.ShiftUp):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirUp, Extend: true})
	case key.Matches(msg, km.ShiftDown):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirDown, Extend: true})

	case key.Matches(msg, km.WordLeft):
		m.buf.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirLeft})
	case key.Matches(msg, km.WordRight):
		m.buf.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirRight})

	case key.Matches(msg, km.Home):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome})
	case key.Matches(msg, km.End):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd})
	case key.Matches(msg, km.DocStart):
		m.buf.Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirHome})
	case key.Matches(msg, km.DocEnd):
		m.buf.Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirEnd})
	case key.Matches(msg, km.PageUp):
		m.movePage(buffer.DirUp)
	case key.Matches(msg, km.PageDown):
		m.movePage(buffer.DirDown)

	case key.Matches(msg, km.Backspace):
		m.buf.DeleteBackward()
	case key.Matches(msg, km.Delete):
		m.buf.DeleteForward()
	case key.Matches(msg, km.Enter):
		m.buf.InsertNewline()
	case key.Matches(msg, km.Tab):
		m.buf.InsertRune('\t')

	case key.Matches(msg, km.Undo):
		m.apply(ActionUndo)
	case key.Matches(msg, km.Redo):
		m.apply(ActionRedo)
	case key.Matches(msg, km.Copy):
		m.apply(ActionCopy)
	case key.Matches(msg, km.Cut):
		m.apply(ActionCut)
	case key.Matches(msg, km.Paste):
		m.apply(ActionPaste)
	case key.Matches(msg, km.SelectAll):
		m.apply(ActionSelectAll)

	default:
		if msg.Type == tea.KeySpace {
			m.buf.InsertRune(' ')
			return m
		}
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			m.buf.InsertText(string(msg.Runes))
		}
	}

	return m
}

func (m Model) movePage(dir buffer.MoveDir) {
	n := m.viewport.Height
	if n < 1 {
		n = 1
	}
	for i := 0; i < n; i++ {
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: dir})
	}
}

func (m Model) copySelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	s := m.buf.SelectedText()
	if s == "" {
		return
	}
	_ = m.cfg.Clipboard.WriteText(s)
}

func (m Model) cutSelection() {
	if _, ok := m.buf.Selection(); !ok {
		return
	}
	m.copySelection()
	m.buf.DeleteSelection()
}

func (m Model) pasteClipboard() {
	if m.cfg.Clipboard == nil {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil || s == "" {
		return
	}
	m.buf.InsertText(normalizeNewlines(s))
}

// normalizeNewlines converts newlines from external sources to '\n'.
func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
