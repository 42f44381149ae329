package main

import (
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/iw2rmb/quicknote"
	"github.com/iw2rmb/quicknote/app"
	"github.com/iw2rmb/quicknote/clipboard"
	"github.com/iw2rmb/quicknote/internal/logs"
)

func main() {
	os.Exit(run())
}

func run() int {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		_, _ = os.Stderr.WriteString("quicknote: needs an interactive terminal\n")
		return 1
	}

	var logOut io.Writer = io.Discard
	if f, err := logs.OpenFile(); err == nil {
		defer f.Close()
		logOut = f
	}
	logger := logs.New(logOut, logs.Options{Level: slog.LevelInfo, Journal: true})
	logger.Info("start", "version", quicknote.Version())

	cfg := app.DefaultConfig()
	cfg.Logger = logger
	cfg.Clipboard = clipboard.NewSystem()

	p := tea.NewProgram(app.New(cfg), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		logger.Error("exit", "error", err)
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		return 1
	}
	return 0
}
