package calculation

import (
	"github.com/marisk/marisk/internal/domain"
	"github.com/shopspring/decimal"
)

// EuEtsResult is the allowance liability for a quantity of voyage CO2.
type EuEtsResult struct {
	ApplicableCo2Mt   decimal.Decimal `json:"applicableCo2Mt"`
	AllowancesNeeded  int64           `json:"allowancesNeeded"`
	PricePerAllowance decimal.Decimal `json:"pricePerAllowance"`
	TotalCostEur      decimal.Decimal `json:"totalCostEur"`
	Phase             string          `json:"phase"`
}

// CalculateEuEts computes the EU ETS allowance cost for voyage emissions.
// Intra-EU voyages are fully in scope; every other voyage counts half. The
// phase-in fraction comes from the regulatory table: years past it are fully
// phased in, years before it are not yet in force. One allowance covers one
// tonne of CO2 and partial tonnes always round up.
func (ce *CalculationEngine) CalculateEuEts(co2EmissionsMt decimal.Decimal, voyageType domain.VoyageType, year int) EuEtsResult {
	scope := decimal.NewFromFloat(0.5)
	if voyageType == domain.VoyageIntraEU {
		scope = decimal.NewFromInt(1)
	}

	fraction := ce.Regulatory.EtsPhaseIn.Fraction(year)
	applicable := co2EmissionsMt.Mul(scope).Mul(fraction).Round(4)

	allowances := applicable.Ceil().IntPart()
	if allowances < 0 {
		allowances = 0
	}
	price := ce.Regulatory.EtsPriceEur

	return EuEtsResult{
		ApplicableCo2Mt:   applicable,
		AllowancesNeeded:  allowances,
		PricePerAllowance: price,
		TotalCostEur:      price.Mul(decimal.NewFromInt(allowances)).Round(2),
		Phase:             ce.Regulatory.EtsPhaseIn.PhaseLabel(year),
	}
}

// EtsVoyageResult is one voyage's slice of a fleet ETS liability.
type EtsVoyageResult struct {
	Reference string          `json:"reference"`
	Co2Mt     decimal.Decimal `json:"co2Mt"`
	Result    EuEtsResult     `json:"result"`
}

// EtsLiabilityResult aggregates allowance liability across a voyage list.
type EtsLiabilityResult struct {
	Voyages         []EtsVoyageResult `json:"voyages"`
	TotalCo2Mt      decimal.Decimal   `json:"totalCo2Mt"`
	TotalEtsCo2Mt   decimal.Decimal   `json:"totalEtsCo2Mt"`
	TotalAllowances int64             `json:"totalAllowances"`
	TotalEtsCostEur decimal.Decimal   `json:"totalEtsCostEur"`
}

// CalculateEtsLiability evaluates each voyage independently and sums the
// fleet totals. Non-EU voyages contribute their CO2 to the fleet total but
// carry no allowance liability.
func (ce *CalculationEngine) CalculateEtsLiability(voyages []domain.EtsVoyage, year int) EtsLiabilityResult {
	out := EtsLiabilityResult{Voyages: make([]EtsVoyageResult, 0, len(voyages))}

	for _, v := range voyages {
		out.TotalCo2Mt = out.TotalCo2Mt.Add(v.Co2Mt)
		if v.VoyageType == domain.VoyageNonEU {
			continue
		}
		res := ce.CalculateEuEts(v.Co2Mt, v.VoyageType, year)
		out.Voyages = append(out.Voyages, EtsVoyageResult{
			Reference: v.Reference,
			Co2Mt:     v.Co2Mt.Round(4),
			Result:    res,
		})
		out.TotalEtsCo2Mt = out.TotalEtsCo2Mt.Add(res.ApplicableCo2Mt)
		out.TotalAllowances += res.AllowancesNeeded
		out.TotalEtsCostEur = out.TotalEtsCostEur.Add(res.TotalCostEur)
	}

	out.TotalCo2Mt = out.TotalCo2Mt.Round(4)
	out.TotalEtsCo2Mt = out.TotalEtsCo2Mt.Round(4)
	out.TotalEtsCostEur = out.TotalEtsCostEur.Round(2)
	return out
}
