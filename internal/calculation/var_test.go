package calculation

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

func returnsFrom(values ...float64) []decimal.Decimal {
	out := make([]decimal.Decimal, len(values))
	for i, v := range values {
		out[i] = decimal.NewFromFloat(v)
	}
	return out
}

func TestCalculateVaRHistorical(t *testing.T) {
	engine := NewCalculationEngine()

	tests := []struct {
		name         string
		returns      []decimal.Decimal
		expectedVaR  string
		expectedCVaR string
	}{
		{
			name:         "mixed ten-sample book",
			returns:      returnsFrom(-0.05, -0.03, -0.01, 0, 0.02, 0.04, 0.01, -0.02, 0.03, 0.015),
			expectedVaR:  "-0.03",
			expectedCVaR: "-0.04",
		},
		{
			name:         "heavier left tail",
			returns:      returnsFrom(0.01, -0.02, 0.015, -0.03, 0.005, -0.01, 0.02, -0.04, 0.01, 0.025),
			expectedVaR:  "-0.03",
			expectedCVaR: "-0.035",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := engine.CalculateVaR(tt.returns, decimal.NewFromFloat(0.90), VaRHistorical)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			// sorted ascending, rank floor(10 * 0.10) = 1
			if !result.VaR.Equal(decimal.RequireFromString(tt.expectedVaR)) {
				t.Errorf("VaR = %v, expected %s", result.VaR, tt.expectedVaR)
			}
			// mean of every return at or below the quantile
			if !result.CVaR.Equal(decimal.RequireFromString(tt.expectedCVaR)) {
				t.Errorf("CVaR = %v, expected %s", result.CVaR, tt.expectedCVaR)
			}
			if result.SampleSize != 10 {
				t.Errorf("SampleSize = %d, expected 10", result.SampleSize)
			}
		})
	}
}

func TestCalculateVaRHistoricalSingleSample(t *testing.T) {
	engine := NewCalculationEngine()

	result, err := engine.CalculateVaR(returnsFrom(-0.02), decimal.NewFromFloat(0.95), VaRHistorical)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.VaR.Equal(decimal.NewFromFloat(-0.02)) || !result.CVaR.Equal(decimal.NewFromFloat(-0.02)) {
		t.Errorf("VaR/CVaR = %v/%v, expected the single observation for both", result.VaR, result.CVaR)
	}
}

func TestCalculateVaRParametric(t *testing.T) {
	engine := NewCalculationEngine()

	returns := returnsFrom(0.01, -0.02, 0.015, -0.03, 0.005, -0.01, 0.02, -0.04, 0.01, 0.025)

	result, err := engine.CalculateVaR(returns, decimal.NewFromFloat(0.95), VaRParametric)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.VaR.LessThan(result.Mean) {
		t.Errorf("VaR %v should sit below the mean %v", result.VaR, result.Mean)
	}
	if !result.CVaR.LessThan(result.VaR) {
		t.Errorf("CVaR %v should sit below VaR %v", result.CVaR, result.VaR)
	}
}

func TestCalculateVaRParametricZeroVariance(t *testing.T) {
	engine := NewCalculationEngine()

	result, err := engine.CalculateVaR(returnsFrom(0.01, 0.01, 0.01), decimal.NewFromFloat(0.99), VaRParametric)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.VaR.Equal(result.Mean) || !result.CVaR.Equal(result.Mean) {
		t.Errorf("VaR/CVaR = %v/%v, expected both to collapse to the mean %v", result.VaR, result.CVaR, result.Mean)
	}
}

func TestCalculateVaREmptySeries(t *testing.T) {
	engine := NewCalculationEngine()

	result, err := engine.CalculateVaR(nil, decimal.NewFromFloat(0.95), VaRHistorical)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.VaR.IsZero() || !result.CVaR.IsZero() || result.SampleSize != 0 {
		t.Errorf("expected zeros for an empty series, got %+v", result)
	}
}

func TestCalculateVaRInvalidConfidence(t *testing.T) {
	engine := NewCalculationEngine()

	for _, confidence := range []float64{0, 1, 1.5, -0.1} {
		if _, err := engine.CalculateVaR(returnsFrom(0.01), decimal.NewFromFloat(confidence), VaRHistorical); err == nil {
			t.Errorf("confidence %v: expected an error", confidence)
		}
	}
}

func TestCalculateVaRUnknownMethod(t *testing.T) {
	engine := NewCalculationEngine()

	if _, err := engine.CalculateVaR(returnsFrom(0.01), decimal.NewFromFloat(0.95), VaRMethod("bootstrap")); err == nil {
		t.Error("expected an error for an unknown method")
	}
}

func TestZScore(t *testing.T) {
	tests := []struct {
		confidence float64
		expected   float64
	}{
		{0.90, 1.2816},
		{0.95, 1.6449},
		{0.975, 1.9600},
		{0.99, 2.3263},
	}
	for _, tt := range tests {
		if got := zScore(tt.confidence); got != tt.expected {
			t.Errorf("zScore(%v) = %v, expected the published value %v", tt.confidence, got, tt.expected)
		}
	}

	// off-table levels go through the Acklam approximation
	if got := zScore(0.9995); math.Abs(got-3.2905) > 0.001 {
		t.Errorf("zScore(0.9995) = %v, expected about 3.2905", got)
	}
	if got := inverseNormalCDF(0.5); math.Abs(got) > 1e-9 {
		t.Errorf("inverseNormalCDF(0.5) = %v, expected 0", got)
	}
}
