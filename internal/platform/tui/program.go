package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// screen is a model that can finish without ending the program, so the
// same model works as a step of a larger flow and as its own program.
type screen interface {
	tea.Model
	Done() bool
}

// standalone runs a single screen, quitting once it is done.
type standalone struct {
	inner screen
}

func (s standalone) Init() tea.Cmd {
	return s.inner.Init()
}

func (s standalone) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := s.inner.Update(msg)
	if sc, ok := next.(screen); ok {
		s.inner = sc
	}
	if s.inner.Done() {
		return s, tea.Batch(cmd, tea.Quit)
	}
	return s, cmd
}

func (s standalone) View() string {
	if s.inner.Done() {
		return ""
	}
	return s.inner.View()
}

// runStandalone runs m in the alternate screen and returns its final state.
func runStandalone(m screen, opts ...tea.ProgramOption) (screen, error) {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	final, err := tea.NewProgram(standalone{inner: m}, opts...).Run()
	if err != nil {
		return m, err
	}
	if s, ok := final.(standalone); ok {
		return s.inner, nil
	}
	return m, nil
}
