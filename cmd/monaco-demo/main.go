package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/atweb-solid/solid-monaco/engine"
	"github.com/atweb-solid/solid-monaco/monaco"
	"github.com/atweb-solid/solid-monaco/textengine"
)

const fallback = "Welcome to solid-monaco.\n\nType to edit. Ctrl+Z undoes, Ctrl+Y redoes.\nCtrl+Q to quit.\n"

type model struct {
	editor monaco.Model
}

func newModel(path, value string, logger *zap.Logger) model {
	cfg := monaco.Config{
		Path:   path,
		Value:  value,
		Theme:  "auto",
		Loader: textengine.Load,
		// Delay engine startup so the loading placeholder is visible.
		LoaderConfig: engine.LoaderConfig{"simulateLatency": 400 * time.Millisecond},
		Styles:       monaco.DefaultStyles(),
		Logger:       logger,
	}
	return model{editor: monaco.New(cfg)}
}

func (m model) Init() tea.Cmd { return m.editor.Init() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.editor = m.editor.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+q" {
			m.editor = m.editor.Unmount()
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string { return m.editor.View() }

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	path, value := "demo.txt", fallback
	if len(os.Args) > 1 {
		data, err := os.ReadFile(os.Args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		path, value = os.Args[1], string(data)
	}

	if _, err := tea.NewProgram(newModel(path, value, logger), tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
