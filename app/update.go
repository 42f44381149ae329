package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.dialog.kind != dialogNone {
		var cmd tea.Cmd
		m.dialog, cmd = m.dialog.update(msg)
		return m, cmd
	}
	if m.menu.open {
		return m.updateMenuKey(msg)
	}

	if c := m.commandFor(msg); c != cmdNone {
		return m.run(c)
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Menu), key.Matches(msg, km.FileMenu):
		return m.openMenu(0), nil
	case key.Matches(msg, km.EditMenu):
		return m.openMenu(1), nil
	}

	t := m.strip.Active()
	var cmd tea.Cmd
	t.Editor, cmd = t.Editor.Update(msg)
	return m, cmd
}

// commandFor maps a shortcut to its command.
func (m Model) commandFor(msg tea.KeyMsg) command {
	km := m.cfg.KeyMap
	bindings := []struct {
		b key.Binding
		c command
	}{
		{km.New, cmdNew},
		{km.Open, cmdOpen},
		{km.Save, cmdSave},
		{km.SaveAs, cmdSaveAs},
		{km.Close, cmdClose},
		{km.Exit, cmdExit},
		{km.Undo, cmdUndo},
		{km.Redo, cmdRedo},
		{km.Cut, cmdCut},
		{km.Copy, cmdCopy},
		{km.Paste, cmdPaste},
		{km.SelectAll, cmdSelectAll},
		{km.NextTab, cmdNextTab},
		{km.PrevTab, cmdPrevTab},
		{km.Rename, cmdRename},
	}
	for _, e := range bindings {
		if key.Matches(msg, e.b) {
			return e.c
		}
	}
	return cmdNone
}

func (m Model) updateMenuKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	items := m.menuItems()
	km := m.cfg.KeyMap
	switch msg.String() {
	case "esc":
		return m.closeMenu(), nil
	case "up":
		m.menu.cursor = nextItem(items, m.menu.cursor, -1)
	case "down":
		m.menu.cursor = nextItem(items, m.menu.cursor, 1)
	case "left", "right":
		if m.menu.which == contextMenu {
			return m, nil
		}
		dir := 1
		if msg.String() == "left" {
			dir = -1
		}
		return m.openMenu((m.menu.which + dir + len(m.menus)) % len(m.menus)), nil
	case "enter", " ":
		if m.menu.cursor < len(items) && !items[m.menu.cursor].separator {
			return m.run(items[m.menu.cursor].cmd)
		}
	default:
		switch {
		case key.Matches(msg, km.Menu):
			return m.closeMenu(), nil
		case key.Matches(msg, km.FileMenu):
			return m.openMenu(0), nil
		case key.Matches(msg, km.EditMenu):
			return m.openMenu(1), nil
		}
		// Shortcuts still work with a menu open.
		if c := m.commandFor(msg); c != cmdNone {
			return m.run(c)
		}
	}
	return m, nil
}
