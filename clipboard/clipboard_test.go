package clipboard

import (
	"errors"
	"testing"
)

func TestMemory_ReadBeforeWrite(t *testing.T) {
	var m Memory
	if _, err := m.ReadText(); !errors.Is(err, ErrEmpty) {
		t.Fatalf("err: got %v, want %v", err, ErrEmpty)
	}
	_ = m.WriteText("")
	if got, err := m.ReadText(); err != nil || got != "" {
		t.Fatalf("read after empty write: got %q, %v", got, err)
	}
}

func TestSystem_UsesOSClipboard(t *testing.T) {
	var sys string
	s := &System{
		readAll:  func() (string, error) { return sys, nil },
		writeAll: func(v string) error { sys = v; return nil },
	}

	if err := s.WriteText("hello"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if sys != "hello" {
		t.Fatalf("os clipboard: got %q, want %q", sys, "hello")
	}

	sys = "from elsewhere"
	if got, _ := s.ReadText(); got != "from elsewhere" {
		t.Fatalf("read: got %q, want %q", got, "from elsewhere")
	}
}

func TestSystem_FallsBackToMemory(t *testing.T) {
	fail := errors.New("no clipboard utility")
	writes := 0
	s := &System{
		readAll:  func() (string, error) { return "", fail },
		writeAll: func(string) error { writes++; return fail },
	}

	if err := s.WriteText("a"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got, err := s.ReadText(); err != nil || got != "a" {
		t.Fatalf("read: got %q, %v; want %q", got, err, "a")
	}

	_ = s.WriteText("b")
	if writes != 1 {
		t.Fatalf("os writes after failure: got %d, want %d", writes, 1)
	}
	if got, _ := s.ReadText(); got != "b" {
		t.Fatalf("read: got %q, want %q", got, "b")
	}
}

func TestSystem_Unsupported(t *testing.T) {
	s := &System{unsupported: true}
	_ = s.WriteText("x")
	if got, err := s.ReadText(); err != nil || got != "x" {
		t.Fatalf("read: got %q, %v; want %q", got, err, "x")
	}
}
