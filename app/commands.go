package app

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/quicknote/document"
	"github.com/iw2rmb/quicknote/editor"
	"github.com/iw2rmb/quicknote/tabs"
)

var editActions = map[command]editor.Action{
	cmdUndo:      editor.ActionUndo,
	cmdRedo:      editor.ActionRedo,
	cmdCut:       editor.ActionCut,
	cmdCopy:      editor.ActionCopy,
	cmdPaste:     editor.ActionPaste,
	cmdSelectAll: editor.ActionSelectAll,
}

// run executes c against the tab that is active right now.
func (m Model) run(c command) (Model, tea.Cmd) {
	m = m.closeMenu()
	active := m.strip.Active()

	if a, ok := editActions[c]; ok {
		active.Editor = active.Editor.Do(a)
		return m, nil
	}

	switch c {
	case cmdNew:
		id := m.strip.Create()
		m.log.Debug("tab created", "id", id)
	case cmdOpen:
		var cmd tea.Cmd
		m.dialog, cmd = m.newOpenDialog()
		return m, cmd
	case cmdSave:
		return m.save(active)
	case cmdSaveAs:
		var cmd tea.Cmd
		m.dialog, cmd = m.newSaveAsDialog(active.ID, false)
		return m, cmd
	case cmdClose:
		return m.closeTab(active.ID)
	case cmdExit:
		m.log.Info("exit")
		return m, tea.Quit
	case cmdNextTab:
		m.strip.Next()
	case cmdPrevTab:
		m.strip.Prev()
	case cmdRename:
		var cmd tea.Cmd
		m.dialog, cmd = m.newPathDialog(dialogRename, "Rename tab", active.Title, active.ID)
		return m, cmd
	}
	return m, nil
}

// openFile loads path into a new, clean tab.
func (m Model) openFile(path string) Model {
	text, err := document.Read(path)
	if err != nil {
		m.log.Error("open failed", "path", path, "error", err)
		m.dialog = newErrorDialog("Could not open file: " + err.Error())
		return m
	}
	id := m.strip.Add(document.TitleFromPath(path), text)
	m.log.Info("file opened", "path", path, "id", id)
	return m
}

// save writes t to its title. Untitled tabs go through Save As.
func (m Model) save(t *tabs.Tab) (Model, tea.Cmd) {
	if t.Untitled() {
		var cmd tea.Cmd
		m.dialog, cmd = m.newSaveAsDialog(t.ID, false)
		return m, cmd
	}
	if err := m.write(t, t.BaseTitle()); err != nil {
		return m, nil
	}
	t.MarkClean()
	return m, nil
}

func (m Model) saveFileAs(msg saveFileMsg) Model {
	t := m.strip.Get(msg.target)
	if t == nil {
		return m
	}
	if err := m.write(t, msg.path); err != nil {
		return m
	}
	t.Title = document.TitleFromPath(msg.path)
	if msg.closeAfter {
		m.removeTab(t.ID)
	}
	return m
}

// write stores t's text at path and opens the error dialog on failure.
func (m *Model) write(t *tabs.Tab, path string) error {
	if err := document.Write(path, t.Text()); err != nil {
		m.log.Error("save failed", "path", path, "id", t.ID, "error", err)
		m.dialog = newErrorDialog("Could not save file: " + err.Error())
		return err
	}
	m.log.Info("file saved", "path", path, "id", t.ID)
	return nil
}

// closeTab removes id, asking first when it has unsaved edits.
func (m Model) closeTab(id tabs.ID) (Model, tea.Cmd) {
	err := m.strip.CloseCheck(id)
	switch {
	case errors.Is(err, tabs.ErrLastTab):
		m.dialog = newNoticeDialog("Cannot close the last tab")
		return m, nil
	case err != nil:
		return m, nil
	}

	t := m.strip.Get(id)
	if t.Dirty() {
		m.dialog = newConfirmDialog(id, t.BaseTitle())
		return m, nil
	}
	m.removeTab(id)
	return m, nil
}

func (m Model) resolveClose(msg confirmMsg) (Model, tea.Cmd) {
	t := m.strip.Get(msg.target)
	if t == nil {
		return m, nil
	}
	switch msg.choice {
	case choiceSave:
		if t.Untitled() {
			var cmd tea.Cmd
			m.dialog, cmd = m.newSaveAsDialog(t.ID, true)
			return m, cmd
		}
		if err := m.write(t, t.BaseTitle()); err != nil {
			return m, nil
		}
		t.MarkClean()
		m.removeTab(t.ID)
	case choiceDiscard:
		m.removeTab(t.ID)
	}
	return m, nil
}

func (m Model) removeTab(id tabs.ID) {
	if err := m.strip.Remove(id); err != nil {
		m.log.Debug("tab not closed", "id", id, "error", err)
		return
	}
	m.log.Debug("tab closed", "id", id)
}
