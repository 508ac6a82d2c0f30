package calculation

import (
	"github.com/marisk/marisk/internal/domain"
)

// CalculationEngine bundles the four risk engines behind one regulatory data
// set. Every method is a pure function over its inputs and the immutable
// tables held here: no I/O, no clock reads, no shared mutable state, so a
// single engine value is safe for any number of concurrent callers.
type CalculationEngine struct {
	Regulatory *domain.RegulatoryConfig
	Logger     Logger
}

// NewCalculationEngine creates an engine on the built-in regulatory tables.
func NewCalculationEngine() *CalculationEngine {
	return NewCalculationEngineWithConfig(domain.DefaultRegulatory())
}

// NewCalculationEngineWithConfig creates an engine on a caller-supplied
// regulatory data set, e.g. one loaded from a regulatory YAML override.
func NewCalculationEngineWithConfig(reg *domain.RegulatoryConfig) *CalculationEngine {
	return &CalculationEngine{
		Regulatory: reg,
		Logger:     NopLogger{},
	}
}
