package ui

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// RunWatch runs the live progress UI for one request and reports whether the
// lookup succeeded.
func RunWatch(model WatchModel) (bool, error) {
	p := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(WatchModel)
	if !ok {
		return false, nil
	}
	return !m.Failed(), nil
}
