package buffer

type bufferSnapshot struct {
	text   string
	cursor Pos
	sel    selectionState
}

type historyState struct {
	undo []bufferSnapshot
	redo []bufferSnapshot

	// open is set while mutations coalesce into the newest undo unit.
	open bool
}

func (b *Buffer) snapshot() bufferSnapshot {
	return bufferSnapshot{
		text:   b.Text(),
		cursor: b.cursor,
		sel:    b.sel,
	}
}

func (b *Buffer) restore(s bufferSnapshot) {
	b.lines = splitLines(s.text)
	b.cursor = ClampPos(s.cursor, len(b.lines), b.lineLen)

	if !s.sel.active {
		b.sel = selectionState{}
		return
	}

	anchor := ClampPos(s.sel.anchor, len(b.lines), b.lineLen)
	end := ClampPos(s.sel.end, len(b.lines), b.lineLen)
	if anchor == end {
		b.sel = selectionState{}
		return
	}
	b.sel = selectionState{active: true, anchor: anchor, end: end}
}

// Separator closes the current undo unit. The next mutation starts a new one.
func (b *Buffer) Separator() {
	b.hist.open = false
}

func (b *Buffer) recordUndo(prev bufferSnapshot) {
	limit := b.opt.HistoryLimit
	if limit <= 0 {
		return
	}

	b.hist.redo = nil
	if b.hist.open && len(b.hist.undo) > 0 {
		return
	}
	b.pushUndo(prev)
	b.hist.open = true
}

func (b *Buffer) pushUndo(s bufferSnapshot) {
	limit := b.opt.HistoryLimit
	if limit <= 0 {
		return
	}
	b.hist.undo = append(b.hist.undo, s)
	if len(b.hist.undo) > limit {
		b.hist.undo = b.hist.undo[len(b.hist.undo)-limit:]
	}
}

// ResetHistory drops both undo and redo stacks.
func (b *Buffer) ResetHistory() {
	b.hist = historyState{}
}

func (b *Buffer) CanUndo() bool { return len(b.hist.undo) > 0 }

func (b *Buffer) CanRedo() bool { return len(b.hist.redo) > 0 }

// Undo reverts the newest undo unit. It reports false and leaves the buffer
// untouched when there is nothing to undo.
func (b *Buffer) Undo() bool {
	if len(b.hist.undo) == 0 {
		return false
	}

	cur := b.snapshot()

	i := len(b.hist.undo) - 1
	prev := b.hist.undo[i]
	b.hist.undo = b.hist.undo[:i]
	b.hist.redo = append(b.hist.redo, cur)
	b.hist.open = false

	b.restore(prev)
	b.bumpAfterRestore(cur.text, prev.text)
	return true
}

// Redo reapplies the newest undone unit. It reports false and leaves the
// buffer untouched when there is nothing to redo.
func (b *Buffer) Redo() bool {
	if len(b.hist.redo) == 0 {
		return false
	}

	cur := b.snapshot()

	i := len(b.hist.redo) - 1
	next := b.hist.redo[i]
	b.hist.redo = b.hist.redo[:i]
	b.pushUndo(cur)
	b.hist.open = false

	b.restore(next)
	b.bumpAfterRestore(cur.text, next.text)
	return true
}

func (b *Buffer) bumpAfterRestore(before, after string) {
	b.version++
	if before != after {
		b.textVersion++
	}
}
