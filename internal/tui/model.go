package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marisk/marisk/internal/calculation"
	"github.com/marisk/marisk/internal/config"
	"github.com/marisk/marisk/internal/domain"
)

// Scene identifies the active screen
type Scene int

const (
	SceneHome Scene = iota
	SceneCompliance
	ScenePortfolio
	ScenePayments
	SceneHelp
)

// String returns a human-readable name for a scene
func (s Scene) String() string {
	switch s {
	case SceneHome:
		return "Home"
	case SceneCompliance:
		return "Compliance"
	case ScenePortfolio:
		return "Portfolio"
	case ScenePayments:
		return "Payments"
	case SceneHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// KeyMap holds the application key bindings
type KeyMap struct {
	Home       key.Binding
	Compliance key.Binding
	Portfolio  key.Binding
	Payments   key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Home:       key.NewBinding(key.WithKeys("h", "1"), key.WithHelp("h", "home")),
		Compliance: key.NewBinding(key.WithKeys("c", "2"), key.WithHelp("c", "compliance")),
		Portfolio:  key.NewBinding(key.WithKeys("p", "3"), key.WithHelp("p", "portfolio")),
		Payments:   key.NewBinding(key.WithKeys("y", "4"), key.WithHelp("y", "payments")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Model represents the entire application state
type Model struct {
	currentScene Scene
	keys         KeyMap

	width  int
	height int

	configPath string
	config     *domain.Configuration
	result     *calculation.AnalysisResult

	err     error
	loading bool
}

// NewModel creates a new application model
func NewModel(configPath string) Model {
	return Model{
		currentScene: SceneHome,
		keys:         DefaultKeyMap(),
		configPath:   configPath,
		loading:      true,
		width:        80,
		height:       24,
	}
}

// Init loads the input file (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	return loadConfigCmd(m.configPath)
}

// loadConfigCmd returns a command that loads and validates the input file
func loadConfigCmd(path string) tea.Cmd {
	return func() tea.Msg {
		parser := config.NewInputParser()
		cfg, err := parser.LoadFromFile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return ConfigLoadedMsg{Config: cfg}
	}
}

// runAnalysisCmd returns a command that executes every engine over the input
func runAnalysisCmd(cfg *domain.Configuration) tea.Cmd {
	return func() tea.Msg {
		engine := calculation.NewCalculationEngine()
		result, err := engine.RunAnalysis(cfg)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return AnalysisCompleteMsg{Result: result}
	}
}
