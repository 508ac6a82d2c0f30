package output

import (
	"encoding/csv"
	"strconv"

	"github.com/marisk/marisk/internal/calculation"
)

// GenerateCSVReport writes one row per voyage with the headline compliance
// figures, followed by one row per FFA position when a book is present.
func (rg *ReportGenerator) GenerateCSVReport(result *calculation.AnalysisResult) error {
	w := csv.NewWriter(rg.Writer)

	if len(result.Voyages) > 0 {
		header := []string{"Voyage", "FuelMt", "Co2Mt", "AttainedCII", "RequiredCII", "Rating", "EtsAllowances", "EtsCostEur", "FuelEUIntensity", "FuelEUPenaltyEur"}
		if err := w.Write(header); err != nil {
			return err
		}
		for _, voyage := range result.Voyages {
			allowances, etsCost := "", ""
			if voyage.EuEts != nil {
				allowances = strconv.FormatInt(voyage.EuEts.AllowancesNeeded, 10)
				etsCost = voyage.EuEts.TotalCostEur.StringFixed(2)
			}
			row := []string{
				voyage.Reference,
				voyage.TotalFuelMt.StringFixed(2),
				voyage.TotalCo2Mt.StringFixed(2),
				voyage.CII.AttainedCII.StringFixed(4),
				voyage.CII.RequiredCII.StringFixed(4),
				voyage.CII.Rating,
				allowances,
				etsCost,
				voyage.FuelEU.GhgIntensity.StringFixed(4),
				voyage.FuelEU.PenaltyEur.StringFixed(2),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}

	if len(result.Positions) > 0 {
		header := []string{"Route", "MarkToMarket", "EntryNotional", "ReturnPercent"}
		if err := w.Write(header); err != nil {
			return err
		}
		for _, position := range result.Positions {
			row := []string{
				position.Route,
				position.MarkToMarket.StringFixed(2),
				position.EntryNotional.StringFixed(2),
				position.ReturnPercent.StringFixed(2),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}

	w.Flush()
	return w.Error()
}
