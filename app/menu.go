package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

type menuItem struct {
	label     string
	shortcut  string
	cmd       command
	separator bool
}

type menu struct {
	title string
	items []menuItem
}

const (
	contextMenu = -1
	noMenu      = -2
)

// menuState tracks the open dropdown. which indexes Model.menus, or is
// contextMenu for the text area's right-click menu.
type menuState struct {
	open   bool
	which  int
	cursor int
	// Context menu anchor in screen cells.
	x, y int
}

func shortcut(b key.Binding) string { return b.Help().Key }

func buildMenus(km KeyMap) []menu {
	return []menu{
		{title: "File", items: []menuItem{
			{label: "New", shortcut: shortcut(km.New), cmd: cmdNew},
			{label: "Open", shortcut: shortcut(km.Open), cmd: cmdOpen},
			{label: "Save", shortcut: shortcut(km.Save), cmd: cmdSave},
			{label: "Save As", shortcut: shortcut(km.SaveAs), cmd: cmdSaveAs},
			{separator: true},
			{label: "Exit", shortcut: shortcut(km.Exit), cmd: cmdExit},
		}},
		{title: "Edit", items: editItems(km)},
	}
}

func editItems(km KeyMap) []menuItem {
	return []menuItem{
		{label: "Undo", shortcut: shortcut(km.Undo), cmd: cmdUndo},
		{label: "Redo", shortcut: shortcut(km.Redo), cmd: cmdRedo},
		{separator: true},
		{label: "Cut", shortcut: shortcut(km.Cut), cmd: cmdCut},
		{label: "Copy", shortcut: shortcut(km.Copy), cmd: cmdCopy},
		{label: "Paste", shortcut: shortcut(km.Paste), cmd: cmdPaste},
		{label: "Select All", shortcut: shortcut(km.SelectAll), cmd: cmdSelectAll},
	}
}

func (m Model) menuItems() []menuItem {
	if !m.menu.open {
		return nil
	}
	if m.menu.which == contextMenu {
		return m.contextItems
	}
	return m.menus[m.menu.which].items
}

func (m Model) openMenu(which int) Model {
	m.menu = menuState{open: true, which: which}
	m.menu.cursor = nextItem(m.menuItems(), -1, 1)
	return m
}

func (m Model) openContextMenu(x, y int) Model {
	m.menu = menuState{open: true, which: contextMenu, x: x, y: y}
	m.menu.cursor = nextItem(m.contextItems, -1, 1)
	return m
}

func (m Model) closeMenu() Model {
	m.menu = menuState{}
	return m
}

// nextItem returns the next selectable index after i in direction dir,
// wrapping around and skipping separators.
func nextItem(items []menuItem, i, dir int) int {
	n := len(items)
	if n == 0 {
		return 0
	}
	for step := 0; step < n; step++ {
		i = (i + dir + n) % n
		if !items[i].separator {
			return i
		}
	}
	return 0
}

// menuTitleSpans returns the [x0, x1) cells of each menu title in the bar.
func (m Model) menuTitleSpans() [][2]int {
	spans := make([][2]int, len(m.menus))
	x := 0
	for i, mn := range m.menus {
		w := runewidth.StringWidth(mn.title) + 2
		spans[i] = [2]int{x, x + w}
		x += w
	}
	return spans
}

// menuBox returns the screen origin of the open dropdown and its rendered
// form.
func (m Model) menuBox() (x, y int, box string) {
	items := m.menuItems()
	if len(items) == 0 {
		return 0, 0, ""
	}

	labelW, keyW := 0, 0
	for _, it := range items {
		labelW = max(labelW, runewidth.StringWidth(it.label))
		keyW = max(keyW, runewidth.StringWidth(it.shortcut))
	}
	inner := labelW + 2 + keyW + 2

	st := m.cfg.Style
	rows := make([]string, len(items))
	for i, it := range items {
		if it.separator {
			rows[i] = st.MenuDim.Render(strings.Repeat("─", inner))
			continue
		}
		line := " " + runewidth.FillRight(it.label, labelW) + "  " + runewidth.FillLeft(it.shortcut, keyW) + " "
		if i == m.menu.cursor {
			rows[i] = st.MenuCursor.Render(line)
		} else {
			rows[i] = st.MenuItem.Render(line)
		}
	}
	box = st.MenuBox.Render(strings.Join(rows, "\n"))

	if m.menu.which == contextMenu {
		x, y = m.menu.x, m.menu.y
		x = min(x, m.width-lipgloss.Width(box))
		y = min(y, m.height-lipgloss.Height(box))
		return max(x, 0), max(y, 0), box
	}
	return m.menuTitleSpans()[m.menu.which][0], 1, box
}

// menuItemAt maps a screen cell to an item index of the open dropdown.
func (m Model) menuItemAt(sx, sy int) (int, bool) {
	x, y, box := m.menuBox()
	if box == "" {
		return 0, false
	}
	st := m.cfg.Style.MenuBox
	top := y + st.GetBorderTopSize() + st.GetPaddingTop()
	left := x + st.GetBorderLeftSize() + st.GetPaddingLeft()
	right := x + lipgloss.Width(box) - st.GetBorderRightSize() - st.GetPaddingRight()
	i := sy - top
	if sx < left || sx >= right || i < 0 || i >= len(m.menuItems()) {
		return 0, false
	}
	return i, true
}

// inMenuBox reports whether a screen cell lies on the open dropdown.
func (m Model) inMenuBox(sx, sy int) bool {
	x, y, box := m.menuBox()
	if box == "" {
		return false
	}
	return sx >= x && sx < x+lipgloss.Width(box) && sy >= y && sy < y+lipgloss.Height(box)
}
