package calculation

import (
	"time"

	"github.com/marisk/marisk/internal/domain"
	"github.com/shopspring/decimal"
)

// Defaults applied when the input file leaves analysis knobs unset.
var (
	defaultVaRConfidence = decimal.NewFromFloat(0.95)
)

const (
	defaultCashFlowPeriods = 6
	defaultPeriodDays      = 90
)

// AnalysisResult bundles the output of every engine that had input data.
// Sections without input stay nil so formatters can skip them.
type AnalysisResult struct {
	Name        string                  `json:"name"`
	AsOf        time.Time               `json:"asOf"`
	Year        int                     `json:"year"`
	Voyages     []VoyageEmissionsResult `json:"voyages,omitempty"`
	Ets         *EtsLiabilityResult     `json:"ets,omitempty"`
	FuelRanking *FuelComparison         `json:"fuelRanking,omitempty"`
	Trajectory  *TrajectoryResult       `json:"trajectory,omitempty"`
	Positions   []MTMResult             `json:"positions,omitempty"`
	Greeks      []GreeksResult          `json:"greeks,omitempty"`
	Portfolio   *PortfolioRiskResult    `json:"portfolio,omitempty"`
	VaR         *VaRResult              `json:"var,omitempty"`
	Hedge       *HedgeRatioResult       `json:"hedge,omitempty"`
	Aging       *AgingReport            `json:"aging,omitempty"`
	CashFlow    []CashFlowPeriod        `json:"cashFlow,omitempty"`
	DSO         decimal.Decimal         `json:"dso"`
	Overdue     []OverdueEntry          `json:"overdue,omitempty"`
}

// RunAnalysis executes every engine the configuration carries data for. The
// reference date in the input anchors all date arithmetic.
func (ce *CalculationEngine) RunAnalysis(config *domain.Configuration) (*AnalysisResult, error) {
	settings := config.Analysis
	year := settings.Year
	if year == 0 {
		year = settings.ReferenceDate.Year()
	}
	// A per-input price override runs on a copy so the engine's shared
	// tables stay untouched for concurrent callers.
	if settings.EtsPriceEur != nil {
		regulatory := *ce.Regulatory
		regulatory.EtsPriceEur = *settings.EtsPriceEur
		ce = &CalculationEngine{Regulatory: &regulatory, Logger: ce.Logger}
	}

	result := &AnalysisResult{
		Name: config.Metadata.Name,
		AsOf: settings.ReferenceDate,
		Year: year,
	}

	if len(config.Voyages) > 0 {
		ce.Logger.Infof("analyzing %d voyages for year %d", len(config.Voyages), year)
		etsVoyages := make([]domain.EtsVoyage, 0, len(config.Voyages))
		for _, voyage := range config.Voyages {
			ver := ce.CalculateVoyageEmissions(voyage, settings.ReferenceDate)
			result.Voyages = append(result.Voyages, ver)
			etsVoyages = append(etsVoyages, domain.EtsVoyage{
				Reference:  voyage.Reference,
				Co2Mt:      ver.TotalCo2Mt,
				VoyageType: voyage.VoyageType,
			})
		}
		liability := ce.CalculateEtsLiability(etsVoyages, year)
		result.Ets = &liability
	}

	if len(settings.CompareFuels) > 0 {
		consumption := decimal.NewFromInt(1000)
		if len(config.Voyages) > 0 {
			consumption = config.Voyages[0].TotalFuelMt()
		}
		ranking := ce.CompareFuels(settings.CompareFuels, consumption, settings.IncludeTransport)
		result.FuelRanking = &ranking
	}

	if len(config.EmissionHistory) > 0 {
		trajectory := ce.ProjectTrajectory(config.EmissionHistory)
		result.Trajectory = &trajectory
	}

	if len(config.FFAPositions) > 0 {
		for _, position := range config.FFAPositions {
			result.Positions = append(result.Positions, ce.CalculateMTM(position))
			if settings.AnnualVolatility.IsPositive() {
				result.Greeks = append(result.Greeks, ce.CalculateGreeks(position, settings.AnnualVolatility))
			}
		}
		portfolio := ce.CalculatePortfolioRisk(config.FFAPositions)
		result.Portfolio = &portfolio

		if !config.PhysicalExposure.IsZero() {
			hedge := ce.SuggestHedgeRatio(portfolio.GrossNotional, config.PhysicalExposure)
			result.Hedge = &hedge
		}
	}

	if len(config.FFAReturns) > 0 {
		confidence := settings.VaRConfidence
		if confidence.IsZero() {
			confidence = defaultVaRConfidence
		}
		method := VaRMethod(settings.VaRMethod)
		if method == "" {
			method = VaRHistorical
		}
		vaR, err := ce.CalculateVaR(config.FFAReturns, confidence, method)
		if err != nil {
			return nil, err
		}
		result.VaR = &vaR
	}

	if len(config.Payments) > 0 {
		aging := ce.BuildAgingReport(config.Payments, settings.ReferenceDate)
		result.Aging = &aging
		result.Overdue = ce.ListOverduePayments(config.Payments, settings.ReferenceDate)

		frequency := settings.CashFlowFreq
		if frequency == "" {
			frequency = domain.FrequencyMonthly
		}
		periods := settings.CashFlowPeriods
		if periods == 0 {
			periods = defaultCashFlowPeriods
		}
		cashFlow, err := ce.ProjectCashFlow(config.Payments, frequency, periods, settings.ReferenceDate)
		if err != nil {
			return nil, err
		}
		result.CashFlow = cashFlow

		if settings.PeriodRevenue.IsPositive() {
			periodDays := settings.PeriodDays
			if periodDays == 0 {
				periodDays = defaultPeriodDays
			}
			result.DSO = ce.CalculateDSO(aging.TotalAmount, settings.PeriodRevenue, periodDays)
		}
	}

	return result, nil
}
