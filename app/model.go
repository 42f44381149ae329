// Package app is the QuickNote window: a root Bubble Tea model that owns the
// tab strip and routes menus, shortcuts, mouse input and dialogs to it.
//
// Every command resolves the active tab when it runs. File I/O happens
// synchronously inside Update.
package app

import (
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/quicknote/clipboard"
	"github.com/iw2rmb/quicknote/editor"
	"github.com/iw2rmb/quicknote/internal/logs"
	"github.com/iw2rmb/quicknote/tabs"
)

// Rows used by the menu bar, the tab bar and the help footer.
const chromeRows = 3

const doubleClickInterval = 400 * time.Millisecond

type tabClick struct {
	id tabs.ID
	at time.Time
}

// Model is the root Bubble Tea model.
type Model struct {
	cfg Config
	log *slog.Logger

	strip *tabs.Strip

	width, height int

	menus        []menu
	contextItems []menuItem
	menu         menuState

	dialog dialog
	help   help.Model

	lastClick tabClick
	now       func() time.Time
}

func New(cfg Config) Model {
	if cfg.Logger == nil {
		cfg.Logger = logs.Discard()
	}
	if cfg.Clipboard == nil {
		cfg.Clipboard = &clipboard.Memory{}
	}
	if len(cfg.KeyMap.New.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.WorkDir == "" {
		if wd, err := os.Getwd(); err == nil {
			cfg.WorkDir = wd
		}
	}

	m := Model{
		cfg:          cfg,
		log:          cfg.Logger,
		menus:        buildMenus(cfg.KeyMap),
		contextItems: editItems(cfg.KeyMap),
		help:         help.New(),
		now:          time.Now,
	}

	var strip *tabs.Strip
	strip = tabs.NewStrip(func(id tabs.ID, text string) editor.Model {
		return editor.New(editor.Config{
			Text:         text,
			ShowLineNums: cfg.ShowLineNums,
			WrapMode:     cfg.WrapMode,
			TabWidth:     cfg.TabWidth,
			Style:        cfg.EditorStyle,
			Clipboard:    cfg.Clipboard,
			HistoryLimit: cfg.HistoryLimit,
			OnChange: func(ev editor.ChangeEvent) {
				if !ev.TextChanged {
					return
				}
				if t := strip.Get(id); t != nil && !t.Dirty() {
					t.MarkDirty()
					cfg.Logger.Debug("tab modified", "id", id, "version", ev.Version)
				}
			},
		})
	})
	m.strip = strip
	m.log.Debug("tab created", "id", strip.Active().ID)
	return m
}

// Tabs exposes the tab strip.
func (m Model) Tabs() *tabs.Strip { return m.strip }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		if m.dialog.kind == dialogOpen {
			m.dialog.picker.Height = m.dialogHeight()
		}
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)

	case openFileMsg:
		m = m.openFile(msg.path)
	case saveFileMsg:
		m = m.saveFileAs(msg)
	case renameMsg:
		if err := m.strip.Rename(msg.target, msg.title); err == nil {
			m.log.Debug("tab renamed", "id", msg.target, "title", msg.title)
		}
	case confirmMsg:
		m, cmd = m.resolveClose(msg)

	default:
		if m.dialog.kind != dialogNone {
			m.dialog, cmd = m.dialog.update(msg)
		}
	}
	m.syncEditors()
	return m, cmd
}

// modal reports whether a dialog or menu is capturing input.
func (m Model) modal() bool {
	return m.dialog.kind != dialogNone || m.menu.open
}

func (m Model) editorHeight() int {
	return max(m.height-chromeRows, 0)
}

// syncEditors sizes every tab's editor to the text area and focuses the
// active one while no modal is open.
func (m Model) syncEditors() {
	h := m.editorHeight()
	active := m.strip.Active().ID
	for _, t := range m.strip.Tabs() {
		if t.Editor.Width() != m.width || t.Editor.Height() != h {
			t.Editor = t.Editor.SetSize(m.width, h)
		}
		if t.ID == active && !m.modal() {
			t.Editor = t.Editor.Focus()
		} else {
			t.Editor = t.Editor.Blur()
		}
	}
}
