package calculation

import (
	"testing"

	"github.com/marisk/marisk/internal/domain"
	"github.com/shopspring/decimal"
)

func TestCalculateEuEts(t *testing.T) {
	engine := NewCalculationEngine()

	tests := []struct {
		name               string
		co2Mt              float64
		voyageType         domain.VoyageType
		year               int
		expectedApplicable decimal.Decimal
		expectedAllowances int64
		expectedCost       decimal.Decimal
		expectedPhase      string
	}{
		{
			name:               "Intra-EU voyage at 70% phase-in",
			co2Mt:              1000,
			voyageType:         domain.VoyageIntraEU,
			year:               2025,
			expectedApplicable: decimal.NewFromInt(700),
			expectedAllowances: 700,
			expectedCost:       decimal.NewFromInt(56000),
			expectedPhase:      "2025: 70%",
		},
		{
			name:               "EU-related voyage counts half",
			co2Mt:              1000,
			voyageType:         domain.VoyageEURelated,
			year:               2025,
			expectedApplicable: decimal.NewFromInt(350),
			expectedAllowances: 350,
			expectedCost:       decimal.NewFromInt(28000),
			expectedPhase:      "2025: 70%",
		},
		{
			name:               "Before the scheme starts there is no liability",
			co2Mt:              1000,
			voyageType:         domain.VoyageIntraEU,
			year:               2023,
			expectedApplicable: decimal.Zero,
			expectedAllowances: 0,
			expectedCost:       decimal.Zero,
			expectedPhase:      "2023: not yet in force",
		},
		{
			name:               "Years past the table are fully phased in",
			co2Mt:              1000,
			voyageType:         domain.VoyageIntraEU,
			year:               2030,
			expectedApplicable: decimal.NewFromInt(1000),
			expectedAllowances: 1000,
			expectedCost:       decimal.NewFromInt(80000),
			expectedPhase:      "2030: 100%",
		},
		{
			name:               "Partial tonnes round up to a whole allowance",
			co2Mt:              100.5,
			voyageType:         domain.VoyageIntraEU,
			year:               2026,
			expectedApplicable: decimal.NewFromFloat(100.5),
			expectedAllowances: 101,
			expectedCost:       decimal.NewFromInt(8080),
			expectedPhase:      "2026: 100%",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := engine.CalculateEuEts(decimal.NewFromFloat(tt.co2Mt), tt.voyageType, tt.year)

			if !result.ApplicableCo2Mt.Equal(tt.expectedApplicable) {
				t.Errorf("ApplicableCo2Mt = %v, expected %v", result.ApplicableCo2Mt, tt.expectedApplicable)
			}
			if result.AllowancesNeeded != tt.expectedAllowances {
				t.Errorf("AllowancesNeeded = %d, expected %d", result.AllowancesNeeded, tt.expectedAllowances)
			}
			if !result.TotalCostEur.Equal(tt.expectedCost) {
				t.Errorf("TotalCostEur = %v, expected %v", result.TotalCostEur, tt.expectedCost)
			}
			if result.Phase != tt.expectedPhase {
				t.Errorf("Phase = %q, expected %q", result.Phase, tt.expectedPhase)
			}
		})
	}
}

func TestCalculateEtsLiability(t *testing.T) {
	engine := NewCalculationEngine()

	voyages := []domain.EtsVoyage{
		{Reference: "V001", Co2Mt: decimal.NewFromInt(1000), VoyageType: domain.VoyageIntraEU},
		{Reference: "V002", Co2Mt: decimal.NewFromInt(500), VoyageType: domain.VoyageNonEU},
		{Reference: "V003", Co2Mt: decimal.NewFromInt(300), VoyageType: domain.VoyageEURelated},
	}

	result := engine.CalculateEtsLiability(voyages, 2025)

	if len(result.Voyages) != 2 {
		t.Fatalf("Voyages = %d, expected non-EU voyage excluded", len(result.Voyages))
	}
	if !result.TotalCo2Mt.Equal(decimal.NewFromInt(1800)) {
		t.Errorf("TotalCo2Mt = %v, expected 1800 including the non-EU voyage", result.TotalCo2Mt)
	}
	// 700 from the intra-EU voyage plus 300*0.5*0.7 = 105
	if !result.TotalEtsCo2Mt.Equal(decimal.NewFromInt(805)) {
		t.Errorf("TotalEtsCo2Mt = %v, expected 805", result.TotalEtsCo2Mt)
	}
	if result.TotalAllowances != 805 {
		t.Errorf("TotalAllowances = %d, expected 805", result.TotalAllowances)
	}
	if !result.TotalEtsCostEur.Equal(decimal.NewFromInt(64400)) {
		t.Errorf("TotalEtsCostEur = %v, expected 64400", result.TotalEtsCostEur)
	}
}
