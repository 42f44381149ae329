package buffer

import (
	"strings"

	"github.com/iw2rmb/quicknote/internal/grapheme"
)

// InsertText inserts text at the cursor, or replaces the active selection.
func (b *Buffer) InsertText(s string) {
	if s == "" {
		if _, ok := b.Selection(); ok {
			b.DeleteSelection()
		}
		return
	}

	r, ok := b.Selection()
	if !ok {
		r = Range{Start: b.cursor, End: b.cursor}
	}
	b.replace(r, s)
}

// InsertGrapheme inserts a single grapheme cluster at the cursor, or replaces
// the active selection.
func (b *Buffer) InsertGrapheme(g string) {
	if g == "" {
		return
	}
	b.InsertText(g)
}

// InsertRune inserts r at the cursor, or replaces the active selection.
func (b *Buffer) InsertRune(r rune) {
	b.InsertText(string(r))
}

// InsertNewline inserts a line break at the cursor, or replaces the active
// selection.
func (b *Buffer) InsertNewline() {
	b.InsertText("\n")
}

// DeleteBackward applies backspace semantics.
func (b *Buffer) DeleteBackward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}

	row, col := b.cursor.Row, b.cursor.GraphemeCol
	if row == 0 && col == 0 {
		return
	}

	if col > 0 {
		b.replace(Range{
			Start: Pos{Row: row, GraphemeCol: col - 1},
			End:   Pos{Row: row, GraphemeCol: col},
		}, "")
		return
	}

	// Join with previous line (delete the newline).
	prevRow := row - 1
	b.replace(Range{
		Start: Pos{Row: prevRow, GraphemeCol: len(b.lines[prevRow])},
		End:   Pos{Row: row, GraphemeCol: 0},
	}, "")
}

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}

	row, col := b.cursor.Row, b.cursor.GraphemeCol
	lastRow := len(b.lines) - 1
	if row == lastRow && col == len(b.lines[lastRow]) {
		return
	}

	if col < len(b.lines[row]) {
		b.replace(Range{
			Start: Pos{Row: row, GraphemeCol: col},
			End:   Pos{Row: row, GraphemeCol: col + 1},
		}, "")
		return
	}

	// Join with next line (delete the newline).
	b.replace(Range{
		Start: Pos{Row: row, GraphemeCol: col},
		End:   Pos{Row: row + 1, GraphemeCol: 0},
	}, "")
}

// DeleteSelection deletes the active selection, if any.
func (b *Buffer) DeleteSelection() {
	r, ok := b.Selection()
	if !ok {
		return
	}
	b.replace(r, "")
}

// replace swaps r for text. It is a no-op when the text would not change.
// Consecutive replaces share one undo unit until Separator is called.
func (b *Buffer) replace(r Range, text string) {
	r = NormalizeRange(ClampRange(r, len(b.lines), b.lineLen))
	if textForLinesRange(b.lines, r) == text {
		return
	}

	prev := b.snapshot()
	b.lines, b.cursor = spliceLines(b.lines, r, text)
	b.sel = selectionState{}
	b.version++
	b.textVersion++
	b.recordUndo(prev)
}

// spliceLines returns lines with r replaced by text, and the position just
// after the inserted text.
func spliceLines(lines [][]string, r Range, text string) ([][]string, Pos) {
	head := lines[r.Start.Row][:r.Start.GraphemeCol]
	tail := lines[r.End.Row][r.End.GraphemeCol:]

	ins := splitLines(text)
	last := len(ins) - 1
	end := Pos{Row: r.Start.Row + last, GraphemeCol: len(ins[last])}
	if last == 0 {
		end.GraphemeCol += len(head)
	}

	ins[0] = append(append([]string(nil), head...), ins[0]...)
	ins[last] = append(ins[last], tail...)

	out := make([][]string, 0, len(lines)-(r.End.Row-r.Start.Row)+last)
	out = append(out, lines[:r.Start.Row]...)
	out = append(out, ins...)
	out = append(out, lines[r.End.Row+1:]...)
	return out, end
}

func textForLinesRange(lines [][]string, r Range) string {
	r = NormalizeRange(r)
	if r.IsEmpty() {
		return ""
	}

	startRow := r.Start.Row
	endRow := r.End.Row
	startCol := r.Start.GraphemeCol
	endCol := r.End.GraphemeCol

	if startRow == endRow {
		return grapheme.Join(lines[startRow][startCol:endCol])
	}

	var sb strings.Builder
	for row := startRow; row <= endRow; row++ {
		if row > startRow {
			sb.WriteByte('\n')
		}
		partStart := 0
		partEnd := len(lines[row])
		if row == startRow {
			partStart = startCol
		}
		if row == endRow {
			partEnd = endCol
		}
		sb.WriteString(grapheme.Join(lines[row][partStart:partEnd]))
	}
	return sb.String()
}
