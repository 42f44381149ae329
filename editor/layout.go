package editor

import (
	"github.com/iw2rmb/quicknote/buffer"
	"github.com/iw2rmb/quicknote/internal/grapheme"
)

// segment is one visual row of a logical line: graphemes [startCol, endCol).
type segment struct {
	startCol int
	endCol   int
}

type layoutRow struct {
	row int
	seg segment
	// last is set on the final segment of a logical line.
	last bool
}

type layoutKey struct {
	textVersion uint64
	width       int
	wrapMode    WrapMode
	tabWidth    int
}

type layout struct {
	key   layoutKey
	valid bool

	lines [][]string
	rows  []layoutRow
	// firstRow[row] is the index in rows of the first segment of row.
	firstRow []int
}

func buildLayout(b *buffer.Buffer, key layoutKey) layout {
	l := layout{key: key, valid: true}
	n := b.LineCount()
	l.lines = make([][]string, n)
	l.firstRow = make([]int, n)
	for row := 0; row < n; row++ {
		l.lines[row] = grapheme.Split(b.Line(row))
		l.firstRow[row] = len(l.rows)
		segs := wrapLine(l.lines[row], key.wrapMode, key.width, key.tabWidth)
		for i, s := range segs {
			l.rows = append(l.rows, layoutRow{row: row, seg: s, last: i == len(segs)-1})
		}
	}
	return l
}

// wrapLine splits one logical line into segments no wider than width cells.
// One cell is kept free at the end of each row for the cursor.
func wrapLine(line []string, mode WrapMode, width, tabWidth int) []segment {
	if mode == WrapNone || width <= 1 || len(line) == 0 {
		return []segment{{startCol: 0, endCol: len(line)}}
	}
	limit := width - 1

	var out []segment
	start := 0
	for start < len(line) {
		used := 0
		end := start
		for end < len(line) {
			w := grapheme.Width(line[end], used, tabWidth)
			if used > 0 && used+w > limit {
				break
			}
			used += w
			end++
		}
		if end < len(line) && mode == WrapWord {
			if br := lastSpaceBreak(line, start, end); br > start {
				end = br
			}
		}
		out = append(out, segment{startCol: start, endCol: end})
		start = end
	}
	return out
}

// lastSpaceBreak returns the column just after the last whitespace run in
// [start, end), or start when there is none.
func lastSpaceBreak(line []string, start, end int) int {
	for i := end - 1; i > start; i-- {
		if grapheme.IsSpace(line[i]) {
			return i + 1
		}
	}
	return start
}

// visualRowOf returns the layout row holding document position p.
func (l layout) visualRowOf(p buffer.Pos) int {
	if len(l.rows) == 0 || p.Row < 0 || p.Row >= len(l.firstRow) {
		return 0
	}
	i := l.firstRow[p.Row]
	for i < len(l.rows) && l.rows[i].row == p.Row {
		r := l.rows[i]
		if r.last || p.GraphemeCol < r.seg.endCol {
			return i
		}
		i++
	}
	return i - 1
}

// cellOf returns the visual cell offset of col inside its segment.
func (l layout) cellOf(r layoutRow, col, tabWidth int) int {
	line := l.lines[r.row]
	x := 0
	for c := r.seg.startCol; c < col && c < r.seg.endCol; c++ {
		x += grapheme.Width(line[c], x, tabWidth)
	}
	return x
}

// colAt maps a visual cell offset inside a layout row back to a grapheme
// column. Cells past the end land on the segment end (or just before it when
// the segment wraps).
func (l layout) colAt(r layoutRow, x, tabWidth int) int {
	line := l.lines[r.row]
	cell := 0
	for c := r.seg.startCol; c < r.seg.endCol; c++ {
		w := grapheme.Width(line[c], cell, tabWidth)
		if x < cell+w {
			return c
		}
		cell += w
	}
	if !r.last && r.seg.endCol > r.seg.startCol {
		return r.seg.endCol - 1
	}
	return r.seg.endCol
}
