package app

// command is a window operation. Menus, the context menu and shortcuts all
// resolve to a command and run it through Model.run.
type command int

const (
	cmdNone command = iota
	cmdNew
	cmdOpen
	cmdSave
	cmdSaveAs
	cmdClose
	cmdExit
	cmdUndo
	cmdRedo
	cmdCut
	cmdCopy
	cmdPaste
	cmdSelectAll
	cmdNextTab
	cmdPrevTab
	cmdRename
)

var commandNames = map[command]string{
	cmdNew:       "new",
	cmdOpen:      "open",
	cmdSave:      "save",
	cmdSaveAs:    "save as",
	cmdClose:     "close",
	cmdExit:      "exit",
	cmdUndo:      "undo",
	cmdRedo:      "redo",
	cmdCut:       "cut",
	cmdCopy:      "copy",
	cmdPaste:     "paste",
	cmdSelectAll: "select all",
	cmdNextTab:   "next tab",
	cmdPrevTab:   "previous tab",
	cmdRename:    "rename",
}

func (c command) String() string {
	if s, ok := commandNames[c]; ok {
		return s
	}
	return "none"
}
