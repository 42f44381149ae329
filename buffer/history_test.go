package buffer

import "testing"

func TestBuffer_UndoRedo_BasicTyping(t *testing.T) {
	b := New("", Options{})
	if b.CanUndo() {
		t.Fatalf("expected CanUndo=false")
	}
	if b.CanRedo() {
		t.Fatalf("expected CanRedo=false")
	}

	b.InsertGrapheme("a")
	if !b.CanUndo() {
		t.Fatalf("expected CanUndo=true")
	}
	if b.CanRedo() {
		t.Fatalf("expected CanRedo=false")
	}

	v := b.Version()
	if ok := b.Undo(); !ok {
		t.Fatalf("expected Undo=true")
	}
	if got, want := b.Text(), ""; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 0, GraphemeCol: 0}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	if got := b.Version(); got != v+1 {
		t.Fatalf("version=%d, want %d", got, v+1)
	}
	if !b.CanRedo() {
		t.Fatalf("expected CanRedo=true")
	}

	if ok := b.Redo(); !ok {
		t.Fatalf("expected Redo=true")
	}
	if got, want := b.Text(), "a"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 0, GraphemeCol: 1}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestBuffer_UndoRedo_EmptyStacks_NoMutation(t *testing.T) {
	b := New("hi", Options{})
	b.SetCursor(Pos{Row: 0, GraphemeCol: 1})

	text := b.Text()
	cursor := b.Cursor()
	v := b.Version()

	if ok := b.Undo(); ok {
		t.Fatalf("expected Undo=false")
	}
	if ok := b.Redo(); ok {
		t.Fatalf("expected Redo=false")
	}

	if got := b.Text(); got != text {
		t.Fatalf("text=%q, want %q", got, text)
	}
	if got := b.Cursor(); got != cursor {
		t.Fatalf("cursor=%v, want %v", got, cursor)
	}
	if got := b.Version(); got != v {
		t.Fatalf("version=%d, want %d", got, v)
	}
}

func TestBuffer_Undo_CoalescesUntilSeparator(t *testing.T) {
	b := New("", Options{})
	b.InsertText("h")
	b.InsertText("e")
	b.InsertText("y")

	if ok := b.Undo(); !ok {
		t.Fatalf("expected Undo=true")
	}
	if got, want := b.Text(), ""; got != want {
		t.Fatalf("text=%q, want %q (edits without separator are one unit)", got, want)
	}
	if b.CanUndo() {
		t.Fatalf("expected CanUndo=false")
	}
}

func TestBuffer_Undo_OneUnitPerSeparator(t *testing.T) {
	b := New("", Options{})
	for _, s := range []string{"h", "e", "l", "l", "o"} {
		b.Separator()
		b.InsertText(s)
	}

	want := []string{"hell", "hel", "he", "h", ""}
	for i, w := range want {
		if ok := b.Undo(); !ok {
			t.Fatalf("undo %d: expected Undo=true", i)
		}
		if got := b.Text(); got != w {
			t.Fatalf("undo %d: text=%q, want %q", i, got, w)
		}
	}

	v := b.Version()
	if ok := b.Undo(); ok {
		t.Fatalf("expected Undo=false beyond the earliest state")
	}
	if got := b.Version(); got != v {
		t.Fatalf("version=%d, want unchanged %d", got, v)
	}
}

func TestBuffer_UndoThenRedo_RestoresPreUndoText(t *testing.T) {
	b := New("seed", Options{})
	b.SetCursor(Pos{Row: 0, GraphemeCol: 4})
	b.Separator()
	b.InsertText("!")
	b.Separator()
	b.InsertNewline()
	b.Separator()
	b.InsertText("x")

	before := b.Text()
	b.Undo()
	b.Redo()
	if got := b.Text(); got != before {
		t.Fatalf("text=%q, want %q", got, before)
	}
}

func TestBuffer_Undo_AfterUndoStartsNewUnit(t *testing.T) {
	b := New("", Options{})
	b.InsertText("a")
	b.Undo()

	// No separator: the edit after an undo must not merge into a stale unit.
	b.InsertText("b")
	b.InsertText("c")
	if b.CanRedo() {
		t.Fatalf("expected redo stack cleared by new edit")
	}
	b.Undo()
	if got, want := b.Text(), ""; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestBuffer_Undo_RestoresCursorAndSelection(t *testing.T) {
	b := New("hello", Options{})
	b.SetCursor(Pos{Row: 0, GraphemeCol: 4})
	b.SetSelection(Range{Start: Pos{Row: 0, GraphemeCol: 1}, End: Pos{Row: 0, GraphemeCol: 4}}) // "ell"

	b.InsertText("i")
	if got, want := b.Text(), "hio"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}

	if ok := b.Undo(); !ok {
		t.Fatalf("expected Undo=true")
	}
	if got, want := b.Text(), "hello"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 0, GraphemeCol: 4}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	r, ok := b.Selection()
	if !ok {
		t.Fatalf("expected selection restored")
	}
	if got, want := r, (Range{Start: Pos{Row: 0, GraphemeCol: 1}, End: Pos{Row: 0, GraphemeCol: 4}}); got != want {
		t.Fatalf("selection=%v, want %v", got, want)
	}
}

func TestBuffer_History_LimitDropsOldestUnits(t *testing.T) {
	b := New("", Options{HistoryLimit: 2})
	for _, s := range []string{"a", "b", "c"} {
		b.Separator()
		b.InsertText(s)
	}

	b.Undo()
	b.Undo()
	if b.CanUndo() {
		t.Fatalf("expected history bounded to 2 units")
	}
	if got, want := b.Text(), "a"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestBuffer_History_NegativeLimitDisables(t *testing.T) {
	b := New("", Options{HistoryLimit: -1})
	b.InsertText("a")
	if b.CanUndo() {
		t.Fatalf("expected CanUndo=false with history disabled")
	}
}

func TestBuffer_ResetHistory(t *testing.T) {
	b := New("", Options{})
	b.InsertText("a")
	b.Undo()
	b.ResetHistory()
	if b.CanUndo() || b.CanRedo() {
		t.Fatalf("expected both stacks empty")
	}
}
