package calculation

import (
	"fmt"
	"math"
	"sort"

	"github.com/shopspring/decimal"
)

// VaRMethod selects the estimator used for value-at-risk.
type VaRMethod string

const (
	VaRHistorical VaRMethod = "historical"
	VaRParametric VaRMethod = "parametric"
)

// VaRResult is a value-at-risk estimate over a return series. VaR and CVaR
// are expressed in the same units as the input returns; losses are negative.
type VaRResult struct {
	Method     VaRMethod       `json:"method"`
	Confidence decimal.Decimal `json:"confidence"`
	VaR        decimal.Decimal `json:"var"`
	CVaR       decimal.Decimal `json:"cvar"`
	SampleSize int             `json:"sampleSize"`
	Mean       decimal.Decimal `json:"mean"`
	StdDev     decimal.Decimal `json:"stdDev"`
}

// CalculateVaR estimates value-at-risk and conditional value-at-risk for a
// return series at the given confidence level. The historical method reads
// the empirical tail; the parametric method assumes normal returns. An empty
// series yields zeros.
func (ce *CalculationEngine) CalculateVaR(returns []decimal.Decimal, confidence decimal.Decimal, method VaRMethod) (VaRResult, error) {
	one := decimal.NewFromInt(1)
	if !confidence.IsPositive() || !confidence.LessThan(one) {
		return VaRResult{}, fmt.Errorf("confidence level must be between 0 and 1 exclusive, got %s", confidence)
	}

	result := VaRResult{Method: method, Confidence: confidence, SampleSize: len(returns)}
	if len(returns) == 0 {
		return result, nil
	}

	sample := make([]float64, len(returns))
	for i, r := range returns {
		sample[i] = r.InexactFloat64()
	}
	mu := mean(sample)
	sigma := stdDev(sample)
	result.Mean = decimal.NewFromFloat(mu).Round(6)
	result.StdDev = decimal.NewFromFloat(sigma).Round(6)

	switch method {
	case VaRHistorical:
		vaR, cvaR := historicalTail(sample, confidence.InexactFloat64())
		result.VaR = decimal.NewFromFloat(vaR).Round(6)
		result.CVaR = decimal.NewFromFloat(cvaR).Round(6)
	case VaRParametric:
		if sigma == 0 {
			// Degenerate distribution, every quantile collapses to the mean.
			result.VaR = result.Mean
			result.CVaR = result.Mean
			return result, nil
		}
		c := confidence.InexactFloat64()
		z := zScore(c)
		result.VaR = decimal.NewFromFloat(mu - z*sigma).Round(6)
		result.CVaR = decimal.NewFromFloat(mu - sigma*normPDF(z)/(1-c)).Round(6)
	default:
		return VaRResult{}, fmt.Errorf("unknown VaR method %q", method)
	}
	return result, nil
}

// historicalTail picks the empirical quantile at (1-confidence) and averages
// every return at or below it. A tail of one observation collapses the
// expected shortfall to the quantile itself.
func historicalTail(sample []float64, confidence float64) (vaR, cvaR float64) {
	sorted := make([]float64, len(sample))
	copy(sorted, sample)
	sort.Float64s(sorted)

	// The epsilon guards against binary float artifacts: 10*(1-0.9) lands
	// just under 1 and would otherwise truncate to the wrong rank.
	idx := int(math.Floor(float64(len(sorted))*(1-confidence) + 1e-9))
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	vaR = sorted[idx]

	end := idx + 1
	for end < len(sorted) && sorted[end] <= vaR {
		end++
	}
	return vaR, mean(sorted[:end])
}
