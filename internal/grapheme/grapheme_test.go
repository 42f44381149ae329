package grapheme

import "testing"

func TestSplitAndCount_MultiRuneGraphemes(t *testing.T) {
	family := "\U0001F468\u200D\U0001F469\u200D\U0001F467\u200D\U0001F466"
	text := "a" + "e\u0301" + family + "b"
	got := Split(text)
	if len(got) != 4 {
		t.Fatalf("split len=%d, want %d", len(got), 4)
	}
	if got[1] != "e\u0301" {
		t.Fatalf("split[1]=%q, want %q", got[1], "e\u0301")
	}
	if got[2] != family {
		t.Fatalf("split[2]=%q, want family emoji", got[2])
	}
	if c := Count(text); c != 4 {
		t.Fatalf("count=%d, want %d", c, 4)
	}
}

func TestClassifiers(t *testing.T) {
	if !IsSpace("\t") {
		t.Fatalf("tab should be space")
	}
	if IsSpace("a") {
		t.Fatalf("letter should not be space")
	}
}

func TestWidth(t *testing.T) {
	if got := Width("a", 0, 4); got != 1 {
		t.Fatalf("width(a)=%d, want 1", got)
	}
	if got := Width("テ", 0, 4); got != 2 {
		t.Fatalf("width(テ)=%d, want 2", got)
	}
	if got := Width("\t", 0, 4); got != 4 {
		t.Fatalf("width(tab@0)=%d, want 4", got)
	}
	if got := Width("\t", 6, 4); got != 2 {
		t.Fatalf("width(tab@6)=%d, want 2", got)
	}
	if got := Width("\t", 3, 0); got != 1 {
		t.Fatalf("width(tab@3, default stop)=%d, want 1", got)
	}
}
