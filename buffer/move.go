package buffer

import "github.com/iw2rmb/quicknote/internal/grapheme"

// MoveUnit is the distance a cursor motion covers.
type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start, or document start with MoveDoc
	DirEnd  // line end, or document end with MoveDoc
)

// Move is a cursor motion. Extend grows the selection from its anchor
// instead of clearing it.
type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool
}

func (b *Buffer) Move(m Move) {
	to := b.clampPos(b.target(b.cursor, m))

	var sel selectionState
	if m.Extend {
		anchor := b.cursor
		if b.sel.active && b.sel.anchor != b.sel.end {
			anchor = b.sel.anchor
		}
		if anchor != to {
			sel = selectionState{active: true, anchor: anchor, end: to}
		}
	}

	if to == b.cursor && selectionStateEqual(b.sel, sel) {
		return
	}
	b.cursor = to
	b.sel = sel
	b.version++
}

func selectionStateEqual(a, b selectionState) bool {
	if !a.active || !b.active {
		return a.active == b.active
	}
	return a.anchor == b.anchor && a.end == b.end
}

// target resolves where m takes the cursor from p. Motions that make no
// sense for a unit leave p unchanged.
func (b *Buffer) target(p Pos, m Move) Pos {
	if m.Unit == MoveDoc {
		switch m.Dir {
		case DirHome, DirUp:
			return Pos{}
		case DirEnd, DirDown:
			return b.docEnd()
		}
		return p
	}

	switch m.Dir {
	case DirHome:
		return Pos{Row: p.Row}
	case DirEnd:
		return Pos{Row: p.Row, GraphemeCol: b.lineLen(p.Row)}
	case DirUp:
		if m.Unit == MoveWord {
			return p
		}
		return b.vertical(p, -1)
	case DirDown:
		if m.Unit == MoveWord {
			return p
		}
		return b.vertical(p, 1)
	case DirLeft, DirRight:
		step := 1
		if m.Dir == DirLeft {
			step = -1
		}
		switch m.Unit {
		case MoveGrapheme:
			return b.horizontal(p, step)
		case MoveWord:
			return b.word(p, step)
		}
	}
	return p
}

// horizontal moves one grapheme, stepping over the line break at either
// end of a line.
func (b *Buffer) horizontal(p Pos, step int) Pos {
	col := p.GraphemeCol + step
	switch {
	case col >= 0 && col <= b.lineLen(p.Row):
		return Pos{Row: p.Row, GraphemeCol: col}
	case col < 0 && p.Row > 0:
		return Pos{Row: p.Row - 1, GraphemeCol: b.lineLen(p.Row - 1)}
	case col > 0 && p.Row < len(b.lines)-1:
		return Pos{Row: p.Row + 1}
	}
	return p
}

// vertical moves delta rows keeping the column where the target line is
// long enough.
func (b *Buffer) vertical(p Pos, delta int) Pos {
	row := p.Row + delta
	if row < 0 || row >= len(b.lines) {
		return p
	}
	return Pos{Row: row, GraphemeCol: min(p.GraphemeCol, b.lineLen(row))}
}

// word skips whitespace then a run of non-whitespace in the direction of
// step. At a line edge it crosses the line break instead.
func (b *Buffer) word(p Pos, step int) Pos {
	line := b.lines[p.Row]
	col := max(0, min(p.GraphemeCol, len(line)))

	if step < 0 {
		if col == 0 {
			return b.horizontal(Pos{Row: p.Row}, -1)
		}
		for col > 0 && grapheme.IsSpace(line[col-1]) {
			col--
		}
		for col > 0 && !grapheme.IsSpace(line[col-1]) {
			col--
		}
		return Pos{Row: p.Row, GraphemeCol: col}
	}

	if col == len(line) {
		return b.horizontal(Pos{Row: p.Row, GraphemeCol: col}, 1)
	}
	for col < len(line) && grapheme.IsSpace(line[col]) {
		col++
	}
	for col < len(line) && !grapheme.IsSpace(line[col]) {
		col++
	}
	return Pos{Row: p.Row, GraphemeCol: col}
}
