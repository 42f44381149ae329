package app

import (
	"log/slog"

	"github.com/iw2rmb/quicknote/editor"
)

// Config configures the window.
type Config struct {
	Logger    *slog.Logger
	Clipboard editor.Clipboard

	// WorkDir pre-fills the Open and Save As dialogs. Default: process
	// working directory.
	WorkDir string

	// Editor settings applied to every tab.
	HistoryLimit int
	TabWidth     int
	WrapMode     editor.WrapMode
	ShowLineNums bool
	EditorStyle  editor.Style

	Style  Style
	KeyMap KeyMap
}

// DefaultConfig returns the settings QuickNote runs with: word wrap, default
// styles and key bindings. Logger and Clipboard are left to the caller.
func DefaultConfig() Config {
	return Config{
		WrapMode:    editor.WrapWord,
		EditorStyle: editor.DefaultStyle(),
		Style:       DefaultStyle(),
		KeyMap:      DefaultKeyMap(),
	}
}
