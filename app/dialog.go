package app

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/quicknote/document"
	"github.com/iw2rmb/quicknote/tabs"
)

type dialogKind int

const (
	dialogNone dialogKind = iota
	dialogOpen
	dialogSaveAs
	dialogRename
	dialogConfirm
	dialogNotice
	dialogError
)

// Choices of the close confirmation, in button order.
const (
	choiceSave = iota
	choiceDiscard
	choiceCancel
)

var confirmButtons = []string{"Save", "Discard", "Cancel"}

// dialog is the modal currently capturing input. Only the fields of its kind
// are meaningful.
type dialog struct {
	kind    dialogKind
	title   string
	message string

	picker  filepicker.Model
	showAll bool

	input textinput.Model

	// target is the tab a Save As, Rename or close confirmation acts on.
	target tabs.ID
	// closeAfter removes target once a Save As triggered by the close
	// confirmation succeeds.
	closeAfter bool

	choice int
}

// Dialog results travel as messages so they can also be fed directly.
type (
	openFileMsg struct{ path string }

	saveFileMsg struct {
		target     tabs.ID
		path       string
		closeAfter bool
	}

	renameMsg struct {
		target tabs.ID
		title  string
	}

	confirmMsg struct {
		target tabs.ID
		choice int
	}
)

func msgCmd(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

var (
	escKey    = key.NewBinding(key.WithKeys("esc"))
	enterKey  = key.NewBinding(key.WithKeys("enter"))
	toggleKey = key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "all files"))
	leftKey   = key.NewBinding(key.WithKeys("left", "shift+tab", "h"))
	rightKey  = key.NewBinding(key.WithKeys("right", "tab", "l"))
)

func (m Model) dialogHeight() int {
	return max(m.height-10, 3)
}

func (m Model) newOpenDialog() (dialog, tea.Cmd) {
	fp := filepicker.New()
	fp.CurrentDirectory = m.cfg.WorkDir
	fp.AllowedTypes = []string{document.Ext}
	fp.AutoHeight = false
	fp.Height = m.dialogHeight()
	fp.ShowPermissions = false
	// esc closes the dialog instead of going up a directory.
	fp.KeyMap.Back = key.NewBinding(key.WithKeys("h", "backspace", "left"), key.WithHelp("h", "back"))

	d := dialog{kind: dialogOpen, title: "Open", picker: fp}
	return d, fp.Init()
}

func (m Model) newPathDialog(kind dialogKind, title, value string, target tabs.ID) (dialog, tea.Cmd) {
	in := textinput.New()
	in.Prompt = "> "
	in.CharLimit = 4096
	in.Width = max(min(m.width-12, 60), 10)
	in.SetValue(value)
	in.CursorEnd()
	cmd := in.Focus()
	return dialog{kind: kind, title: title, input: in, target: target}, cmd
}

func (m Model) newSaveAsDialog(target tabs.ID, closeAfter bool) (dialog, tea.Cmd) {
	dir := m.cfg.WorkDir
	if !strings.HasSuffix(dir, string(filepath.Separator)) {
		dir += string(filepath.Separator)
	}
	d, cmd := m.newPathDialog(dialogSaveAs, "Save As", dir, target)
	d.closeAfter = closeAfter
	return d, cmd
}

// saveTarget turns Save As input into the path to write, adding the default
// extension. Directories, and names that leave no title once the extension is
// stripped, are refused.
func saveTarget(value string) (string, bool) {
	if strings.HasSuffix(value, "/") || strings.HasSuffix(value, string(filepath.Separator)) {
		return "", false
	}
	if fi, err := os.Stat(value); err == nil && fi.IsDir() {
		return "", false
	}
	path := document.WithDefaultExt(value)
	if document.TitleFromPath(path) == "" {
		return "", false
	}
	return path, true
}

func newConfirmDialog(target tabs.ID, title string) dialog {
	return dialog{
		kind:    dialogConfirm,
		title:   "QuickNote",
		message: "Do you want to save changes to " + title + "?",
		target:  target,
		choice:  choiceSave,
	}
}

func newNoticeDialog(message string) dialog {
	return dialog{kind: dialogNotice, title: "QuickNote", message: message}
}

func newErrorDialog(message string) dialog {
	return dialog{kind: dialogError, title: "Error", message: message}
}

// update routes msg to the open dialog. The returned dialog replaces
// the current one; a zero dialog closes it.
func (d dialog) update(msg tea.Msg) (dialog, tea.Cmd) {
	km, isKey := msg.(tea.KeyMsg)

	switch d.kind {
	case dialogOpen:
		if isKey {
			switch {
			case key.Matches(km, escKey):
				return dialog{}, nil
			case key.Matches(km, toggleKey):
				d.showAll = !d.showAll
				if d.showAll {
					d.picker.AllowedTypes = nil
				} else {
					d.picker.AllowedTypes = []string{document.Ext}
				}
				return d, nil
			}
		}
		var cmd tea.Cmd
		d.picker, cmd = d.picker.Update(msg)
		if ok, path := d.picker.DidSelectFile(msg); ok {
			return dialog{}, msgCmd(openFileMsg{path: path})
		}
		return d, cmd

	case dialogSaveAs, dialogRename:
		if isKey {
			switch {
			case key.Matches(km, escKey):
				return dialog{}, nil
			case key.Matches(km, enterKey):
				value := strings.TrimSpace(d.input.Value())
				if value == "" {
					return d, nil
				}
				if d.kind == dialogRename {
					return dialog{}, msgCmd(renameMsg{target: d.target, title: value})
				}
				path, ok := saveTarget(value)
				if !ok {
					d.message = "Enter a file name, not a directory"
					return d, nil
				}
				return dialog{}, msgCmd(saveFileMsg{
					target:     d.target,
					path:       path,
					closeAfter: d.closeAfter,
				})
			}
		}
		var cmd tea.Cmd
		d.input, cmd = d.input.Update(msg)
		if isKey {
			d.message = ""
		}
		return d, cmd

	case dialogConfirm:
		if !isKey {
			return d, nil
		}
		choice := -1
		switch {
		case key.Matches(km, escKey):
			choice = choiceCancel
		case key.Matches(km, enterKey):
			choice = d.choice
		case key.Matches(km, leftKey):
			d.choice = (d.choice + len(confirmButtons) - 1) % len(confirmButtons)
		case key.Matches(km, rightKey):
			d.choice = (d.choice + 1) % len(confirmButtons)
		default:
			switch strings.ToLower(km.String()) {
			case "s", "y":
				choice = choiceSave
			case "d", "n":
				choice = choiceDiscard
			case "c":
				choice = choiceCancel
			}
		}
		if choice < 0 {
			return d, nil
		}
		return dialog{}, msgCmd(confirmMsg{target: d.target, choice: choice})

	case dialogNotice, dialogError:
		if isKey && (key.Matches(km, escKey) || key.Matches(km, enterKey) || km.Type == tea.KeySpace) {
			return dialog{}, nil
		}
		return d, nil
	}
	return d, nil
}

func (d dialog) view(st Style, width int) string {
	var body string
	switch d.kind {
	case dialogOpen:
		filter := "*" + document.Ext + " files"
		if d.showAll {
			filter = "all files"
		}
		body = lipgloss.JoinVertical(lipgloss.Left,
			st.DialogTitle.Render(d.title)+"  "+st.Status.Render(d.picker.CurrentDirectory),
			"",
			d.picker.View(),
			"",
			st.Status.Render("showing "+filter+" · tab toggle · enter open · esc cancel"),
		)
	case dialogSaveAs, dialogRename:
		hint := st.Status.Render("enter confirm · esc cancel")
		if d.message != "" {
			hint = st.DialogError.Render(d.message)
		}
		body = lipgloss.JoinVertical(lipgloss.Left,
			st.DialogTitle.Render(d.title),
			"",
			d.input.View(),
			"",
			hint,
		)
	case dialogConfirm:
		buttons := make([]string, len(confirmButtons))
		for i, b := range confirmButtons {
			if i == d.choice {
				buttons[i] = st.ButtonActive.Render(b)
			} else {
				buttons[i] = st.Button.Render(b)
			}
		}
		body = lipgloss.JoinVertical(lipgloss.Left,
			st.DialogTitle.Render(d.title),
			"",
			wrapText(d.message, width),
			"",
			lipgloss.JoinHorizontal(lipgloss.Top, buttons...),
		)
	case dialogNotice, dialogError:
		msg := wrapText(d.message, width)
		if d.kind == dialogError {
			msg = st.DialogError.Render(msg)
		}
		body = lipgloss.JoinVertical(lipgloss.Left,
			st.DialogTitle.Render(d.title),
			"",
			msg,
			"",
			st.Button.Render("OK"),
		)
	default:
		return ""
	}
	return st.Dialog.MaxWidth(max(width-2, 10)).Render(body)
}

// wrapText soft-wraps s to fit a dialog on a screen width cells wide.
func wrapText(s string, width int) string {
	w := min(lipgloss.Width(s), max(width-8, 10))
	return lipgloss.NewStyle().Width(w).Render(s)
}
