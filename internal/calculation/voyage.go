package calculation

import (
	"time"

	"github.com/marisk/marisk/internal/domain"
	"github.com/shopspring/decimal"
)

// VoyageEmissionsResult composes the three compliance calculations for one
// voyage. EuEts is nil when the voyage never touches an EU port.
type VoyageEmissionsResult struct {
	Reference   string          `json:"reference"`
	TotalFuelMt decimal.Decimal `json:"totalFuelMt"`
	TotalCo2Mt  decimal.Decimal `json:"totalCo2Mt"`
	Year        int             `json:"year"`
	CII         CIIResult       `json:"cii"`
	EuEts       *EuEtsResult    `json:"euEts,omitempty"`
	FuelEU      FuelEuResult    `json:"fuelEu"`
}

// CalculateVoyageEmissions runs the CII, EU ETS and FuelEU calculations for
// one voyage. The compliance year is derived from the caller-supplied
// reference time; the engine never reads the wall clock itself.
func (ce *CalculationEngine) CalculateVoyageEmissions(voyage domain.Voyage, referenceTime time.Time) VoyageEmissionsResult {
	year := referenceTime.Year()
	fuel := ce.Regulatory.Fuels.Lookup(voyage.FuelType)

	totalFuel := voyage.TotalFuelMt()
	totalCo2 := totalFuel.Mul(fuel.CO2Factor).Round(4)

	result := VoyageEmissionsResult{
		Reference:   voyage.Reference,
		TotalFuelMt: totalFuel.Round(4),
		TotalCo2Mt:  totalCo2,
		Year:        year,
		CII:         ce.CalculateCII(voyage.VesselType, voyage.Dwt, voyage.DistanceNm, totalFuel, voyage.FuelType, year),
		FuelEU:      ce.CheckFuelEuCompliance(voyage.FuelType, totalFuel, year),
	}

	if voyage.VoyageType != domain.VoyageNonEU {
		ets := ce.CalculateEuEts(totalCo2, voyage.VoyageType, year)
		result.EuEts = &ets
	}
	return result
}
