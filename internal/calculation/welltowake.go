package calculation

import (
	"sort"
	"strings"

	"github.com/marisk/marisk/internal/domain"
	"github.com/shopspring/decimal"
)

// Flat allocation of well-to-tank emissions when no explicit transport leg
// is modelled: 40% extraction, 50% refining, 10% transport.
var (
	wttExtractionShare = decimal.NewFromFloat(0.40)
	wttRefiningShare   = decimal.NewFromFloat(0.50)
	wttTransportShare  = decimal.NewFromFloat(0.10)
)

// WTTBreakdown splits the upstream emissions of a fuel batch. All masses are
// tonnes CO2eq; Intensity is gCO2eq/MJ.
type WTTBreakdown struct {
	ExtractionMt decimal.Decimal `json:"extractionMt"`
	RefiningMt   decimal.Decimal `json:"refiningMt"`
	TransportMt  decimal.Decimal `json:"transportMt"`
	TotalMt      decimal.Decimal `json:"totalMt"`
	Intensity    decimal.Decimal `json:"intensity"`
}

// WellToWakeResult is the full lifecycle emission picture for one fuel at
// one consumption level.
type WellToWakeResult struct {
	FuelType       string          `json:"fuelType"`
	Region         string          `json:"region"`
	FuelConsumedMt decimal.Decimal `json:"fuelConsumedMt"`
	TotalEnergyMJ  decimal.Decimal `json:"totalEnergyMj"`
	WTT            WTTBreakdown    `json:"wtt"`
	TTWEmissionsMt decimal.Decimal `json:"ttwEmissionsMt"`
	TTWIntensity   decimal.Decimal `json:"ttwIntensity"`
	WTWEmissionsMt decimal.Decimal `json:"wtwEmissionsMt"`
	WTWIntensity   decimal.Decimal `json:"wtwIntensity"`
	// Percentage deltas of well-to-wake emissions against the two reference
	// fuels at the same consumption. Negative means cleaner.
	VsHfoPercent   decimal.Decimal `json:"vsHfoPercent"`
	VsVlsfoPercent decimal.Decimal `json:"vsVlsfoPercent"`
}

// CalculateWellToWake computes upstream (well-to-tank), combustion
// (tank-to-wake) and total lifecycle emissions for a fuel batch. With
// includeTransport set, the transport slice of the upstream emissions is
// recomputed from the fuel's default transport mode and distance instead of
// the flat 10% allocation.
func (ce *CalculationEngine) CalculateWellToWake(fuelType string, fuelConsumedMt decimal.Decimal, includeTransport bool, region string) WellToWakeResult {
	result := ce.wellToWakeCore(fuelType, fuelConsumedMt, includeTransport, region)

	// Reference deltas reuse the core calculation; a reference fuel compared
	// against itself short-circuits to zero rather than recursing.
	result.VsHfoPercent = ce.deltaVsReference(result, domain.FuelHFO, fuelConsumedMt, includeTransport, region)
	result.VsVlsfoPercent = ce.deltaVsReference(result, domain.FuelVLSFO, fuelConsumedMt, includeTransport, region)
	return result
}

func (ce *CalculationEngine) wellToWakeCore(fuelType string, fuelConsumedMt decimal.Decimal, includeTransport bool, region string) WellToWakeResult {
	fuel := ce.Regulatory.Fuels.Lookup(fuelType)
	if region == "" {
		region = "global"
	}

	totalEnergyMJ := fuelConsumedMt.Mul(fuel.EnergyContentMJ)
	million := decimal.NewFromInt(1_000_000)

	wttTotal := fuel.WTTIntensity.Mul(totalEnergyMJ).Div(million)
	wtt := WTTBreakdown{
		ExtractionMt: wttTotal.Mul(wttExtractionShare).Round(4),
		RefiningMt:   wttTotal.Mul(wttRefiningShare).Round(4),
		TransportMt:  wttTotal.Mul(wttTransportShare).Round(4),
	}
	if includeTransport {
		factor := ce.Regulatory.TransportFactors[fuel.TransportMode]
		// grams per tonne-km times km times tonnes carried, scaled to tonnes.
		wtt.TransportMt = factor.Mul(fuel.TransportDistanceKm).Mul(fuelConsumedMt).Div(million).Round(4)
	}
	wtt.TotalMt = wtt.ExtractionMt.Add(wtt.RefiningMt).Add(wtt.TransportMt).Round(4)

	ttw := fuelConsumedMt.Mul(fuel.CO2Factor).Round(4)
	wtw := wtt.TotalMt.Add(ttw).Round(4)

	if totalEnergyMJ.IsPositive() {
		wtt.Intensity = wtt.TotalMt.Mul(million).Div(totalEnergyMJ).Round(4)
	}

	result := WellToWakeResult{
		FuelType:       strings.ToLower(strings.TrimSpace(fuelType)),
		Region:         region,
		FuelConsumedMt: fuelConsumedMt.Round(4),
		TotalEnergyMJ:  totalEnergyMJ.Round(4),
		WTT:            wtt,
		TTWEmissionsMt: ttw,
		WTWEmissionsMt: wtw,
	}
	if totalEnergyMJ.IsPositive() {
		result.TTWIntensity = ttw.Mul(million).Div(totalEnergyMJ).Round(4)
		result.WTWIntensity = wtw.Mul(million).Div(totalEnergyMJ).Round(4)
	}
	return result
}

func (ce *CalculationEngine) deltaVsReference(result WellToWakeResult, reference string, fuelConsumedMt decimal.Decimal, includeTransport bool, region string) decimal.Decimal {
	if result.FuelType == reference {
		return decimal.Zero
	}
	ref := ce.wellToWakeCore(reference, fuelConsumedMt, includeTransport, region)
	if !ref.WTWEmissionsMt.IsPositive() {
		return decimal.Zero
	}
	return result.WTWEmissionsMt.Sub(ref.WTWEmissionsMt).Div(ref.WTWEmissionsMt).Mul(decimal.NewFromInt(100)).Round(2)
}

// FuelComparison ranks fuels by lifecycle emissions at a common consumption.
type FuelComparison struct {
	Results []WellToWakeResult `json:"results"`
	Best    string             `json:"best"`
	Worst   string             `json:"worst"`
	// Switching the full consumption from the worst to the best fuel saves
	// this much, in tonnes CO2eq and as a share of the worst fuel's total.
	SavingsMt      decimal.Decimal `json:"savingsMt"`
	SavingsPercent decimal.Decimal `json:"savingsPercent"`
}

// CompareFuels evaluates each candidate fuel at the same consumption and
// ranks them ascending by well-to-wake emissions.
func (ce *CalculationEngine) CompareFuels(fuelTypes []string, fuelConsumedMt decimal.Decimal, includeTransport bool) FuelComparison {
	comparison := FuelComparison{Results: make([]WellToWakeResult, 0, len(fuelTypes))}
	for _, ft := range fuelTypes {
		comparison.Results = append(comparison.Results, ce.CalculateWellToWake(ft, fuelConsumedMt, includeTransport, ""))
	}
	if len(comparison.Results) == 0 {
		return comparison
	}

	sort.SliceStable(comparison.Results, func(i, j int) bool {
		return comparison.Results[i].WTWEmissionsMt.LessThan(comparison.Results[j].WTWEmissionsMt)
	})

	best := comparison.Results[0]
	worst := comparison.Results[len(comparison.Results)-1]
	comparison.Best = best.FuelType
	comparison.Worst = worst.FuelType
	comparison.SavingsMt = worst.WTWEmissionsMt.Sub(best.WTWEmissionsMt).Round(4)
	if worst.WTWEmissionsMt.IsPositive() {
		comparison.SavingsPercent = comparison.SavingsMt.Div(worst.WTWEmissionsMt).Mul(decimal.NewFromInt(100)).Round(2)
	}
	return comparison
}
