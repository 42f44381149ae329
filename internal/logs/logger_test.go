package logs

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestNew_WritesTextRecords(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, Options{Level: slog.LevelDebug})
	logger.Debug("tab created", "id", 3)

	got := buf.String()
	for _, want := range []string{"level=DEBUG", `msg="tab created"`, "id=3"} {
		if !strings.Contains(got, want) {
			t.Fatalf("log output %q does not contain %q", got, want)
		}
	}
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, Options{})
	logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected debug record to be dropped at info level, got %q", buf.String())
	}
	logger.Info("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("expected info record, got %q", buf.String())
	}
}

func TestToJournalKey(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "tab.id", want: "TAB_ID"},
		{in: "path", want: "PATH"},
		{in: "x-y", want: "X_Y"},
	}
	for _, tc := range cases {
		if got := toJournalKey(tc.in); got != tc.want {
			t.Fatalf("toJournalKey(%q): got %q, want %q", tc.in, got, tc.want)
		}
	}
}
