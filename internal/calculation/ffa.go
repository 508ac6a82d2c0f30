package calculation

import (
	"math"

	"github.com/marisk/marisk/internal/domain"
	"github.com/shopspring/decimal"
)

const tradingDaysPerYear = 252

// MTMResult is the mark-to-market valuation of a single forward freight
// agreement position.
type MTMResult struct {
	Route         string          `json:"route"`
	MarkToMarket  decimal.Decimal `json:"markToMarket"`
	EntryNotional decimal.Decimal `json:"entryNotional"`
	ReturnPercent decimal.Decimal `json:"returnPercent"`
}

// CalculateMTM values a position against its current price. A position with
// no entry price has not been filled and carries no P&L.
func (ce *CalculationEngine) CalculateMTM(position domain.FFAPosition) MTMResult {
	result := MTMResult{Route: position.Route}
	if position.EntryPrice.IsZero() {
		return result
	}

	contracts := position.Quantity.Mul(position.LotSize)
	result.EntryNotional = position.EntryPrice.Mul(contracts).Round(2)
	result.MarkToMarket = position.CurrentPrice.Sub(position.EntryPrice).
		Mul(contracts).
		Mul(position.Direction.Sign()).
		Round(2)
	if result.EntryNotional.IsPositive() {
		result.ReturnPercent = result.MarkToMarket.Div(result.EntryNotional).Mul(decimal.NewFromInt(100)).Round(2)
	}
	return result
}

// GreeksResult holds linear-contract sensitivities. FFAs are futures-style,
// so delta is exactly one and gamma is always zero.
type GreeksResult struct {
	Route string          `json:"route"`
	Delta decimal.Decimal `json:"delta"`
	Gamma decimal.Decimal `json:"gamma"`
	Theta decimal.Decimal `json:"theta"`
	Vega  decimal.Decimal `json:"vega"`
}

// CalculateGreeks derives sensitivities for a position at the given
// annualized volatility. Theta is the one-day expected move of the notional;
// vega is the notional change per volatility point over the remaining life.
func (ce *CalculationEngine) CalculateGreeks(position domain.FFAPosition, annualVolatility decimal.Decimal) GreeksResult {
	notional := position.Notional()
	days := position.DaysToExpiry
	if days < 0 {
		days = 0
	}

	theta := notional.Mul(annualVolatility).
		Div(decimal.NewFromFloat(math.Sqrt(tradingDaysPerYear))).
		Round(2)
	yearFraction := math.Sqrt(float64(days) / tradingDaysPerYear)
	vega := notional.Mul(decimal.NewFromFloat(yearFraction)).
		Div(decimal.NewFromInt(100)).
		Round(2)

	return GreeksResult{
		Route: position.Route,
		Delta: decimal.NewFromInt(1),
		Gamma: decimal.Zero,
		Theta: theta,
		Vega:  vega,
	}
}

// Hedge coverage assessments, keyed off the paper-to-physical ratio.
const (
	HedgeNoExposure      = "no_physical_exposure"
	HedgeUnderHedged     = "under_hedged"
	HedgePartiallyHedged = "partially_hedged"
	HedgeWellHedged      = "well_hedged"
	HedgeOverHedged      = "over_hedged"
)

// HedgeRatioResult relates paper cover to a physical freight exposure.
type HedgeRatioResult struct {
	HedgeRatio decimal.Decimal `json:"hedgeRatio"`
	BasisRisk  decimal.Decimal `json:"basisRisk"`
	Assessment string          `json:"assessment"`
}

// SuggestHedgeRatio computes the coverage ratio of paper notional against
// physical exposure, capped at 2.0, and classifies the hedge. With no
// physical exposure there is nothing to hedge and any paper is pure basis
// risk.
func (ce *CalculationEngine) SuggestHedgeRatio(paperNotional, physicalExposure decimal.Decimal) HedgeRatioResult {
	if !physicalExposure.IsPositive() {
		assessment := HedgeNoExposure
		if paperNotional.IsPositive() {
			assessment = HedgeOverHedged
		}
		return HedgeRatioResult{
			HedgeRatio: decimal.Zero,
			BasisRisk:  paperNotional.Abs().Round(2),
			Assessment: assessment,
		}
	}

	ratio := paperNotional.Div(physicalExposure)
	if ratio.IsNegative() {
		ratio = decimal.Zero
	}
	two := decimal.NewFromInt(2)
	if ratio.GreaterThan(two) {
		ratio = two
	}
	ratio = ratio.Round(4)

	basisRisk := decimal.NewFromInt(1).Sub(ratio).Abs().Mul(physicalExposure).Round(2)

	var assessment string
	switch {
	case ratio.LessThan(decimal.NewFromFloat(0.5)):
		assessment = HedgeUnderHedged
	case ratio.LessThan(decimal.NewFromFloat(0.8)):
		assessment = HedgePartiallyHedged
	case ratio.LessThanOrEqual(decimal.NewFromFloat(1.2)):
		assessment = HedgeWellHedged
	default:
		assessment = HedgeOverHedged
	}

	return HedgeRatioResult{HedgeRatio: ratio, BasisRisk: basisRisk, Assessment: assessment}
}
