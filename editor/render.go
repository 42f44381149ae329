package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/quicknote/buffer"
	"github.com/iw2rmb/quicknote/internal/grapheme"
)

// Style holds one lipgloss style per kind of cell the editor draws.
type Style struct {
	LineNumber        lipgloss.Style
	CurrentLineNumber lipgloss.Style

	Text      lipgloss.Style
	Selection lipgloss.Style
	Cursor    lipgloss.Style
}

func DefaultStyle() Style {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		LineNumber:        dim,
		CurrentLineNumber: dim.Foreground(lipgloss.Color("250")).Bold(true),
		Text:              lipgloss.NewStyle(),
		Selection:         lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:            lipgloss.NewStyle().Reverse(true),
	}
}

type cellKind uint8

const (
	cellText cellKind = iota
	cellSelection
	cellCursor
)

func (m *Model) renderContent(l layout) string {
	if m.buf == nil {
		return ""
	}

	cursor := m.buf.Cursor()
	sel, selOK := m.buf.Selection()
	digits := 0
	if m.cfg.ShowLineNums {
		digits = gutterDigits(len(l.lines))
	}

	out := make([]string, 0, len(l.rows))
	for i, r := range l.rows {
		var sb strings.Builder
		if m.cfg.ShowLineNums {
			num := fmt.Sprintf("%*s", digits, "")
			if i == l.firstRow[r.row] {
				num = fmt.Sprintf("%*d", digits, r.row+1)
			}
			numStyle := m.cfg.Style.LineNumber
			if m.focused && r.row == cursor.Row {
				numStyle = m.cfg.Style.CurrentLineNumber
			}
			sb.WriteString(numStyle.Render(num))
			sb.WriteByte(' ')
		}
		sb.WriteString(m.renderRow(l, r, cursor, sel, selOK))
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

func (m *Model) renderRow(l layout, r layoutRow, cursor buffer.Pos, sel buffer.Range, selOK bool) string {
	line := l.lines[r.row]
	tabWidth := m.cfg.tabWidth()

	left, right := 0, int(^uint(0)>>1)
	if m.cfg.WrapMode == WrapNone && m.contentWidth() > 0 {
		left = m.xOffset
		right = left + m.contentWidth()
	}

	var sb strings.Builder
	var run strings.Builder
	runKind := cellText
	flush := func() {
		if run.Len() == 0 {
			return
		}
		sb.WriteString(m.styleFor(runKind).Render(run.String()))
		run.Reset()
	}
	x := 0
	emit := func(text string, w int, kind cellKind) {
		if x >= left && x+w <= right {
			if kind != runKind {
				flush()
				runKind = kind
			}
			run.WriteString(text)
		}
		x += w
	}

	for c := r.seg.startCol; c < r.seg.endCol; c++ {
		g := line[c]
		w := grapheme.Width(g, x, tabWidth)
		text := g
		if g == "\t" {
			text = strings.Repeat(" ", w)
		}
		pos := buffer.Pos{Row: r.row, GraphemeCol: c}
		emit(text, w, m.kindAt(pos, cursor, sel, selOK))
	}

	if r.last {
		eol := buffer.Pos{Row: r.row, GraphemeCol: len(line)}
		switch {
		case m.focused && cursor == eol:
			emit(" ", 1, cellCursor)
		case selOK && r.row >= sel.Start.Row && r.row < sel.End.Row:
			// The selection spans this line break.
			emit(" ", 1, cellSelection)
		}
	}
	flush()
	return sb.String()
}

func (m *Model) kindAt(pos, cursor buffer.Pos, sel buffer.Range, selOK bool) cellKind {
	if m.focused && pos == cursor {
		return cellCursor
	}
	if selOK && buffer.ComparePos(sel.Start, pos) <= 0 && buffer.ComparePos(pos, sel.End) < 0 {
		return cellSelection
	}
	return cellText
}

func (m *Model) styleFor(kind cellKind) lipgloss.Style {
	switch kind {
	case cellCursor:
		return m.cfg.Style.Cursor
	case cellSelection:
		return m.cfg.Style.Selection
	default:
		return m.cfg.Style.Text
	}
}
