package app

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Screen rows of the window chrome.
const (
	menuBarRow = 0
	tabBarRow  = 1
	editorTop  = 2
)

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if m.dialog.kind != dialogNone {
		return m, nil
	}

	press := msg.Action == tea.MouseActionPress
	left := press && msg.Button == tea.MouseButtonLeft
	right := press && msg.Button == tea.MouseButtonRight

	wasOpen := noMenu
	if m.menu.open && (left || right) {
		if i, ok := m.menuItemAt(msg.X, msg.Y); ok {
			if it := m.menuItems()[i]; left && !it.separator {
				return m.run(it.cmd)
			}
			return m, nil
		}
		if m.inMenuBox(msg.X, msg.Y) {
			return m, nil
		}
		wasOpen = m.menu.which
		m = m.closeMenu()
	}

	inEditor := msg.Y >= editorTop && msg.Y < editorTop+m.editorHeight()
	switch {
	case left && msg.Y == menuBarRow:
		for i, sp := range m.menuTitleSpans() {
			if msg.X >= sp[0] && msg.X < sp[1] && i != wasOpen {
				return m.openMenu(i), nil
			}
		}
		return m, nil

	case left && msg.Y == tabBarRow:
		return m.clickTabBar(msg.X)

	case right && inEditor:
		return m.openContextMenu(msg.X, msg.Y), nil

	case m.menu.open || wasOpen != noMenu:
		return m, nil

	// Drags keep reaching the editor after leaving its rows.
	case inEditor || msg.Action != tea.MouseActionPress:
		local := msg
		local.Y -= editorTop
		t := m.strip.Active()
		var cmd tea.Cmd
		t.Editor, cmd = t.Editor.Update(local)
		return m, cmd
	}
	return m, nil
}

func (m Model) clickTabBar(x int) (Model, tea.Cmd) {
	segs, plus := m.tabBarLayout()
	if x >= plus[0] && x < plus[1] {
		return m.run(cmdNew)
	}
	for _, s := range segs {
		if x < s.x0 || x >= s.x1 {
			continue
		}
		if x == s.closeX {
			return m.closeTab(s.id)
		}
		_ = m.strip.Select(s.id)
		now := m.now()
		if m.lastClick.id == s.id && now.Sub(m.lastClick.at) <= doubleClickInterval {
			m.lastClick = tabClick{}
			return m.run(cmdRename)
		}
		m.lastClick = tabClick{id: s.id, at: now}
		return m, nil
	}
	return m, nil
}
