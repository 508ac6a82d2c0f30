package tui

import (
	"github.com/marisk/marisk/internal/calculation"
	"github.com/marisk/marisk/internal/domain"
)

// ConfigLoadedMsg is sent when the input file has been parsed
type ConfigLoadedMsg struct {
	Config *domain.Configuration
}

// AnalysisCompleteMsg is sent when every engine has run
type AnalysisCompleteMsg struct {
	Result *calculation.AnalysisResult
}

// ErrorMsg wraps any error surfaced to the user
type ErrorMsg struct {
	Err error
}
