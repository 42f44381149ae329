package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/quicknote/buffer"
)

// Model is a Bubble Tea component that renders and interacts with a buffer.
type Model struct {
	cfg Config
	buf *buffer.Buffer

	focused bool

	viewport viewport.Model
	xOffset  int
	layout   *layout

	lastBufVersion  uint64
	lastTextVersion uint64

	mouseDragging bool
	mouseAnchor   buffer.Pos
}

func New(cfg Config) Model {
	if len(cfg.KeyMap.Left.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}
	m := Model{
		cfg:      cfg,
		buf:      buffer.New(cfg.Text, buffer.Options{HistoryLimit: cfg.HistoryLimit}),
		focused:  true,
		viewport: viewport.New(0, 0),
		layout:   &layout{},
	}
	m.lastBufVersion = m.buf.Version()
	m.lastTextVersion = m.buf.TextVersion()
	m.rebuild(false)
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height

	m.rebuild(true)
	return m
}

func (m Model) Width() int { return m.viewport.Width }

func (m Model) Height() int { return m.viewport.Height }

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuild(true)
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuild(false)
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		m = m.updateKey(msg)
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
	}
	// Also picks up mutations the host applied to the buffer directly.
	m.syncFromBuffer()
	return m, cmd
}

func (m Model) View() string { return m.viewport.View() }

// syncFromBuffer re-renders after an effective buffer change and notifies
// OnChange. It reports whether anything changed.
func (m *Model) syncFromBuffer() bool {
	if m.buf == nil {
		return false
	}
	ver := m.buf.Version()
	if ver == m.lastBufVersion {
		return false
	}
	ev := buildChangeEvent(m.buf)
	ev.TextChanged = m.buf.TextVersion() != m.lastTextVersion
	m.lastBufVersion = ver
	m.lastTextVersion = m.buf.TextVersion()

	m.rebuild(true)
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(ev)
	}
	return true
}

func (m *Model) rebuild(follow bool) {
	l := m.ensureLayout()
	if follow {
		m.followCursorX(l)
	}
	m.viewport.SetContent(m.renderContent(l))
	if follow {
		m.followCursorY(l)
	}
}

func (m *Model) ensureLayout() layout {
	key := layoutKey{
		width:    m.contentWidth(),
		wrapMode: m.cfg.WrapMode,
		tabWidth: m.cfg.tabWidth(),
	}
	if m.buf != nil {
		key.textVersion = m.buf.TextVersion()
	}
	if m.layout.valid && m.layout.key == key {
		return *m.layout
	}
	*m.layout = buildLayout(m.buf, key)
	return *m.layout
}

func (m Model) gutterWidth() int {
	if !m.cfg.ShowLineNums || m.buf == nil {
		return 0
	}
	return gutterDigits(m.buf.LineCount()) + 1
}

func (m Model) contentWidth() int {
	w := m.viewport.Width - m.gutterWidth()
	if w < 0 {
		return 0
	}
	return w
}

func (m *Model) followCursorY(l layout) {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}
	row := l.visualRowOf(m.buf.Cursor())
	y := m.viewport.YOffset
	if row < y {
		m.viewport.SetYOffset(row)
		return
	}
	if row >= y+h {
		m.viewport.SetYOffset(row - h + 1)
	}
}

func (m *Model) followCursorX(l layout) {
	if m.cfg.WrapMode != WrapNone {
		m.xOffset = 0
		return
	}
	w := m.contentWidth()
	if w <= 0 || len(l.rows) == 0 {
		return
	}
	cur := m.buf.Cursor()
	r := l.rows[l.visualRowOf(cur)]
	x := l.cellOf(r, cur.GraphemeCol, m.cfg.tabWidth())
	if x < m.xOffset {
		m.xOffset = x
	}
	if x >= m.xOffset+w {
		m.xOffset = x - w + 1
	}
}

func gutterDigits(lineCount int) int {
	d := 1
	for n := lineCount; n >= 10; n /= 10 {
		d++
	}
	return d
}
