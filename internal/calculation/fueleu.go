package calculation

import (
	"github.com/shopspring/decimal"
)

// FuelEuResult is the FuelEU Maritime compliance outcome for one fuel at one
// consumption level. Intensities are gCO2eq/MJ; ComplianceBalance is
// target minus attained, so positive means surplus.
type FuelEuResult struct {
	GhgIntensity      decimal.Decimal `json:"ghgIntensity"`
	TargetIntensity   decimal.Decimal `json:"targetIntensity"`
	Compliant         bool            `json:"compliant"`
	ComplianceBalance decimal.Decimal `json:"complianceBalance"`
	PenaltyEur        decimal.Decimal `json:"penaltyEur"`
	// SurplusBankable is the part of a positive balance that may be carried
	// into the next compliance period, capped by the banking rule.
	SurplusBankable decimal.Decimal `json:"surplusBankable"`
}

// CheckFuelEuCompliance evaluates a fuel against the FuelEU Maritime GHG
// intensity ceiling for the given year. The attained intensity is a property
// of the fuel alone; the consumed quantity only scales the penalty.
func (ce *CalculationEngine) CheckFuelEuCompliance(fuelType string, fuelConsumedMt decimal.Decimal, year int) FuelEuResult {
	fuel := ce.Regulatory.Fuels.Lookup(fuelType)

	ghg := decimal.Zero
	if fuel.EnergyContentMJ.IsPositive() {
		ghg = fuel.CO2Factor.Mul(decimal.NewFromInt(1_000_000)).Div(fuel.EnergyContentMJ).Round(4)
	}
	target := ce.Regulatory.FuelEU.TargetIntensity(year)
	balance := target.Sub(ghg).Round(4)
	compliant := !balance.IsNegative()

	result := FuelEuResult{
		GhgIntensity:      ghg,
		TargetIntensity:   target,
		Compliant:         compliant,
		ComplianceBalance: balance,
		PenaltyEur:        decimal.Zero,
		SurplusBankable:   decimal.Zero,
	}

	if !compliant {
		// Deficit intensity times total energy gives grams of CO2eq over the
		// ceiling; the penalty rate is per tonne.
		totalEnergyMJ := fuelConsumedMt.Mul(fuel.EnergyContentMJ)
		deficitTonnes := balance.Abs().Mul(totalEnergyMJ).Div(decimal.NewFromInt(1_000_000))
		result.PenaltyEur = deficitTonnes.Mul(ce.Regulatory.FuelEU.PenaltyRateEur).Round(2)
		return result
	}

	if balance.IsPositive() {
		result.SurplusBankable = balance.Mul(ce.Regulatory.FuelEU.BankingCap).Round(4)
	}
	return result
}
