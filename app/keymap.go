package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the window-level shortcuts. They are checked before the
// active editor sees a key.
type KeyMap struct {
	New, Open, Save, SaveAs, Close, Exit key.Binding

	Undo, Redo       key.Binding
	Cut, Copy, Paste key.Binding
	SelectAll        key.Binding

	NextTab, PrevTab, Rename key.Binding

	Menu, FileMenu, EditMenu key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		New:  key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "new")),
		Open: key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "open")),
		Save: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		// Most terminals cannot report ctrl+shift+s.
		SaveAs: key.NewBinding(key.WithKeys("ctrl+shift+s", "alt+s"), key.WithHelp("alt+s", "save as")),
		Close:  key.NewBinding(key.WithKeys("ctrl+w"), key.WithHelp("ctrl+w", "close tab")),
		Exit:   key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "exit")),

		Undo:      key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Redo:      key.NewBinding(key.WithKeys("ctrl+y", "ctrl+shift+z"), key.WithHelp("ctrl+y", "redo")),
		Cut:       key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "cut")),
		Copy:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "copy")),
		Paste:     key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
		SelectAll: key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "select all")),

		NextTab: key.NewBinding(key.WithKeys("ctrl+pgdown", "alt+right"), key.WithHelp("alt+→", "next tab")),
		PrevTab: key.NewBinding(key.WithKeys("ctrl+pgup", "alt+left"), key.WithHelp("alt+←", "prev tab")),
		Rename:  key.NewBinding(key.WithKeys("f2"), key.WithHelp("f2", "rename")),

		Menu:     key.NewBinding(key.WithKeys("f10"), key.WithHelp("f10", "menu")),
		FileMenu: key.NewBinding(key.WithKeys("alt+f"), key.WithHelp("alt+f", "file menu")),
		EditMenu: key.NewBinding(key.WithKeys("alt+e"), key.WithHelp("alt+e", "edit menu")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.New, k.Open, k.Save, k.SaveAs, k.Close, k.NextTab, k.Menu, k.Exit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.New, k.Open, k.Save, k.SaveAs, k.Close, k.Exit},
		{k.Undo, k.Redo, k.Cut, k.Copy, k.Paste, k.SelectAll},
		{k.NextTab, k.PrevTab, k.Rename, k.Menu},
	}
}
