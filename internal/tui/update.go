package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all incoming messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case ConfigLoadedMsg:
		m.config = msg.Config
		return m, runAnalysisCmd(msg.Config)

	case AnalysisCompleteMsg:
		m.result = msg.Result
		m.loading = false
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		m.loading = false
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Home):
		m.currentScene = SceneHome
	case key.Matches(msg, m.keys.Compliance):
		m.currentScene = SceneCompliance
	case key.Matches(msg, m.keys.Portfolio):
		m.currentScene = ScenePortfolio
	case key.Matches(msg, m.keys.Payments):
		m.currentScene = ScenePayments
	case key.Matches(msg, m.keys.Help):
		m.currentScene = SceneHelp
	}
	return m, nil
}
