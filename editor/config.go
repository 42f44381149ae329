package editor

// WrapMode selects how a logical line longer than the view is shown.
type WrapMode int

const (
	// WrapNone keeps one visual row per line and scrolls horizontally.
	WrapNone WrapMode = iota
	// WrapWord breaks rows at whitespace, falling back to graphemes for
	// words wider than the view.
	WrapWord
	// WrapGrapheme breaks rows at any grapheme.
	WrapGrapheme
)

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	// Rendering options.
	ShowLineNums bool
	WrapMode     WrapMode
	TabWidth     int // default: 4
	Style        Style

	KeyMap    KeyMap
	Clipboard Clipboard

	// Forwarded to buffer.Options.
	HistoryLimit int

	// OnChange is called synchronously after every effective buffer change
	// (text, cursor or selection) observed by the Model.
	OnChange func(ChangeEvent)
}

func (c Config) tabWidth() int {
	if c.TabWidth <= 0 {
		return 4
	}
	return c.TabWidth
}
