package editor

import "github.com/iw2rmb/quicknote/buffer"

// ChangeEvent describes buffer state after an effective change.
type ChangeEvent struct {
	Version   uint64
	Cursor    buffer.Pos
	Selection struct {
		Range  buffer.Range
		Active bool
	}

	// TextChanged is set when the document text changed, as opposed to a
	// cursor or selection update.
	TextChanged bool
}

func buildChangeEvent(b *buffer.Buffer) ChangeEvent {
	ev := ChangeEvent{
		Version: b.Version(),
		Cursor:  b.Cursor(),
	}
	if r, ok := b.Selection(); ok {
		ev.Selection.Active = true
		ev.Selection.Range = r
	}
	return ev
}
