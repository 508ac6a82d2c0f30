package calculation

import (
	"github.com/marisk/marisk/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	// YearsToDThreshold is the attained/required ratio at which a vessel is
	// considered to have slipped to a D rating in the forward search.
	YearsToDThreshold = 1.15
	// YearsToDHorizon bounds the forward search.
	YearsToDHorizon = 30
)

// CIIResult is the outcome of a carbon-intensity evaluation for one
// vessel-year. AttainedCII and RequiredCII are gCO2 per dwt-nm, rounded to
// four decimals.
type CIIResult struct {
	AttainedCII            decimal.Decimal `json:"attainedCii"`
	RequiredCII            decimal.Decimal `json:"requiredCii"`
	Rating                 string          `json:"rating"`
	ReductionFactorPercent decimal.Decimal `json:"reductionFactorPercent"`
	CorrectionFactor       decimal.Decimal `json:"correctionFactor"`
	// YearsToD is the number of years until the tightening required CII
	// pushes the vessel to a D rating. Zero with YearsToDFound set means the
	// vessel is already at D or worse; YearsToDFound unset means the search
	// exhausted its horizon without an answer.
	YearsToD      int  `json:"yearsToD"`
	YearsToDFound bool `json:"yearsToDFound"`
	// ImprovementNeeded is the percentage reduction in attained CII required
	// to reach the C boundary; zero when already C or better.
	ImprovementNeeded decimal.Decimal `json:"improvementNeeded"`
}

// CalculateCII computes attained vs required carbon intensity and the IMO
// rating for a vessel-year. Unknown vessel types use the bulk carrier
// reference line; unknown fuel types use the HFO emission factor.
func (ce *CalculationEngine) CalculateCII(vesselType string, dwt, distanceNm, fuelConsumedMt decimal.Decimal, fuelType string, year int) CIIResult {
	fuel := ce.Regulatory.Fuels.Lookup(fuelType)

	// Attained CII: grams of CO2 per unit of transport work.
	transportWork := dwt.Mul(distanceNm)
	attained := decimal.Zero
	if transportWork.IsPositive() {
		co2Grams := fuelConsumedMt.Mul(fuel.CO2Factor).Mul(decimal.NewFromInt(1_000_000))
		attained = co2Grams.Div(transportWork).Round(4)
	}

	reference := ce.Regulatory.CIIReference.ReferenceIntensity(vesselType, dwt)
	reduction := ce.Regulatory.ReductionSchedule.ReductionPercent(year)
	required := reference.Mul(decimal.NewFromInt(1).Sub(reduction.Div(decimal.NewFromInt(100)))).Round(4)

	result := CIIResult{
		AttainedCII:            attained,
		RequiredCII:            required,
		Rating:                 domain.WorstRating,
		ReductionFactorPercent: reduction,
		CorrectionFactor:       decimal.NewFromInt(1),
	}

	if !required.IsPositive() {
		return result
	}

	ratio := attained.Div(required)
	result.Rating = domain.RatingFor(ce.Regulatory.RatingBands, ratio)
	result.ImprovementNeeded = ce.improvementToC(attained, required)
	result.YearsToD, result.YearsToDFound = ce.yearsToD(result.Rating, attained, reference, year)
	return result
}

// yearsToD walks forward year by year looking for the first year whose
// tightened required CII drives the ratio over the D threshold. The search
// aborts once extrapolated reductions push the required value to or below
// zero; in that case, as when the horizon runs out, there is no answer.
func (ce *CalculationEngine) yearsToD(rating string, attained, reference decimal.Decimal, year int) (int, bool) {
	if rating == "D" || rating == domain.WorstRating {
		return 0, true
	}
	threshold := decimal.NewFromFloat(YearsToDThreshold)
	one := decimal.NewFromInt(1)
	hundred := decimal.NewFromInt(100)

	for future := year + 1; future <= year+YearsToDHorizon; future++ {
		reduction := ce.Regulatory.ReductionSchedule.ReductionPercent(future)
		required := reference.Mul(one.Sub(reduction.Div(hundred))).Round(4)
		if !required.IsPositive() {
			break
		}
		if attained.Div(required).GreaterThanOrEqual(threshold) {
			return future - year, true
		}
	}
	return 0, false
}

// improvementToC reports the percentage cut in attained CII needed to reach
// the upper C boundary.
func (ce *CalculationEngine) improvementToC(attained, required decimal.Decimal) decimal.Decimal {
	cBound := decimal.Zero
	for _, band := range ce.Regulatory.RatingBands {
		if band.Rating == "C" {
			cBound = band.UpperBound
			break
		}
	}
	if cBound.IsZero() || !attained.IsPositive() {
		return decimal.Zero
	}
	cCeiling := required.Mul(cBound)
	if attained.LessThanOrEqual(cCeiling) {
		return decimal.Zero
	}
	return attained.Sub(cCeiling).Div(attained).Mul(decimal.NewFromInt(100)).Round(2)
}
