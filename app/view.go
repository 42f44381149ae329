package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/quicknote"
	"github.com/iw2rmb/quicknote/tabs"
)

const maxTabTitle = 24

type tabSeg struct {
	id     tabs.ID
	label  string
	x0, x1 int
	closeX int
}

// tabBarLayout places the visible tabs and the "+" button. When the tabs do
// not fit, leading tabs are scrolled away until the active one is visible.
func (m Model) tabBarLayout() (segs []tabSeg, plus [2]int) {
	all := m.strip.Tabs()
	labels := make([]string, len(all))
	widths := make([]int, len(all))
	for i, t := range all {
		labels[i] = runewidth.Truncate(t.Title, maxTabTitle, "…")
		// " title × "
		widths[i] = runewidth.StringWidth(labels[i]) + 4
	}

	const plusW = 3
	avail := m.width - plusW
	first := 0
	active := m.strip.ActiveIndex()
	for first < active {
		total := 0
		for i := first; i <= active; i++ {
			total += widths[i]
		}
		if total <= avail {
			break
		}
		first++
	}

	x := 0
	for i := first; i < len(all); i++ {
		if x+widths[i] > avail && i > active {
			break
		}
		segs = append(segs, tabSeg{
			id:     all[i].ID,
			label:  labels[i],
			x0:     x,
			x1:     x + widths[i],
			closeX: x + widths[i] - 2,
		})
		x += widths[i]
	}
	return segs, [2]int{x, x + plusW}
}

func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	lines := make([]string, 0, m.height)
	lines = append(lines, m.viewMenuBar(), m.viewTabBar())
	body := strings.Split(m.strip.Active().Editor.View(), "\n")
	for i := 0; i < m.editorHeight(); i++ {
		if i < len(body) {
			lines = append(lines, body[i])
		} else {
			lines = append(lines, "")
		}
	}
	lines = append(lines, m.viewFooter())
	if len(lines) > m.height {
		lines = lines[:m.height]
	}

	if m.menu.open {
		x, y, box := m.menuBox()
		overlayAt(lines, strings.Split(box, "\n"), m.width, x, y)
	}
	if m.dialog.kind != dialogNone {
		overlayCenter(lines, m.dialog.view(m.cfg.Style, m.width), m.width)
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewMenuBar() string {
	st := m.cfg.Style
	var sb strings.Builder
	for i, mn := range m.menus {
		if m.menu.open && m.menu.which == i {
			sb.WriteString(st.MenuActive.Render(" " + mn.title + " "))
		} else {
			sb.WriteString(st.MenuTitle.Render(" " + mn.title + " "))
		}
	}
	left := sb.String()
	right := st.Version.Render("QuickNote " + quicknote.VersionTag() + " ")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		return st.MenuBar.Width(m.width).MaxWidth(m.width).Render(left)
	}
	return left + st.MenuBar.Render(strings.Repeat(" ", gap)) + right
}

func (m Model) viewTabBar() string {
	st := m.cfg.Style
	segs, _ := m.tabBarLayout()
	active := m.strip.Active().ID

	var sb strings.Builder
	for _, s := range segs {
		title := st.Tab
		if s.id == active {
			title = st.TabActive
		}
		sb.WriteString(" ")
		sb.WriteString(title.Render(s.label))
		sb.WriteString(" ")
		sb.WriteString(st.TabClose.Render("×"))
		sb.WriteString(" ")
	}
	sb.WriteString(" ")
	sb.WriteString(st.TabAdd.Render("+"))
	sb.WriteString(" ")
	return st.TabBar.MaxWidth(m.width).Render(sb.String())
}

func (m Model) viewFooter() string {
	cur := m.strip.Active().Editor.Buffer().Cursor()
	status := m.cfg.Style.Status.Render(fmt.Sprintf(" Ln %d, Col %d ", cur.Row+1, cur.GraphemeCol+1))
	h := m.help
	h.Width = max(m.width-lipgloss.Width(status), 0)
	helpView := h.ShortHelpView(m.cfg.KeyMap.ShortHelp())
	gap := max(m.width-lipgloss.Width(helpView)-lipgloss.Width(status), 0)
	return helpView + strings.Repeat(" ", gap) + status
}

// overlayCenter draws fg in the middle of the screen lines.
func overlayCenter(lines []string, fg string, w int) {
	fgLines := strings.Split(fg, "\n")
	fgW := 0
	for _, ln := range fgLines {
		fgW = max(fgW, xansi.StringWidth(ln))
	}
	x := max((w-fgW)/2, 0)
	y := max((len(lines)-len(fgLines))/2, 0)
	overlayAt(lines, fgLines, w, x, y)
}

// overlayAt replaces the cells under fgLines, keeping the rest of each line.
func overlayAt(lines []string, fgLines []string, w, x, y int) {
	fgW := 0
	for _, ln := range fgLines {
		fgW = max(fgW, xansi.StringWidth(ln))
	}
	fgW = min(fgW, w-x)
	if fgW <= 0 || y < 0 {
		return
	}
	for i := 0; i < len(fgLines) && y+i < len(lines); i++ {
		bg := lines[y+i]
		if n := xansi.StringWidth(bg); n < x {
			bg += strings.Repeat(" ", x-n)
		}
		left := xansi.Cut(bg, 0, x)
		right := xansi.Cut(bg, x+fgW, w)

		fg := fgLines[i]
		if n := xansi.StringWidth(fg); n < fgW {
			fg += strings.Repeat(" ", fgW-n)
		} else if n > fgW {
			fg = xansi.Cut(fg, 0, fgW)
		}
		lines[y+i] = left + fg + right
	}
}
