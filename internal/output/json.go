package output

import (
	"encoding/json"

	"github.com/marisk/marisk/internal/calculation"
)

// GenerateJSONReport writes the full analysis result as indented JSON
func (rg *ReportGenerator) GenerateJSONReport(result *calculation.AnalysisResult) error {
	encoder := json.NewEncoder(rg.Writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}
