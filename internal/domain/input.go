package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Metadata describes an analysis input file.
type Metadata struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	Owner       string `yaml:"owner" json:"owner"`
}

// AnalysisSettings carries the knobs shared across the calculation engines.
// ReferenceDate anchors every date-relative calculation; engines never read
// the wall clock.
type AnalysisSettings struct {
	Year             int                 `yaml:"year" json:"year"`
	ReferenceDate    time.Time           `yaml:"reference_date" json:"reference_date"`
	EtsPriceEur      *decimal.Decimal    `yaml:"ets_price_eur,omitempty" json:"ets_price_eur,omitempty"`
	VaRConfidence    decimal.Decimal     `yaml:"var_confidence" json:"var_confidence"`
	VaRMethod        string              `yaml:"var_method" json:"var_method"`
	AnnualVolatility decimal.Decimal     `yaml:"annual_volatility" json:"annual_volatility"`
	CashFlowFreq     ProjectionFrequency `yaml:"cash_flow_frequency" json:"cash_flow_frequency"`
	CashFlowPeriods  int                 `yaml:"cash_flow_periods" json:"cash_flow_periods"`
	PeriodRevenue    decimal.Decimal     `yaml:"period_revenue" json:"period_revenue"`
	PeriodDays       int                 `yaml:"period_days" json:"period_days"`
	IncludeTransport bool                `yaml:"include_transport" json:"include_transport"`
	CompareFuels     []string            `yaml:"compare_fuels,omitempty" json:"compare_fuels,omitempty"`
}

// Configuration is the root document of an analysis input file. Any of the
// data sections may be empty; engines only run over what is present.
type Configuration struct {
	Metadata         Metadata          `yaml:"metadata" json:"metadata"`
	Analysis         AnalysisSettings  `yaml:"analysis" json:"analysis"`
	Voyages          []Voyage          `yaml:"voyages,omitempty" json:"voyages,omitempty"`
	FFAPositions     []FFAPosition     `yaml:"ffa_positions,omitempty" json:"ffa_positions,omitempty"`
	FFAReturns       []decimal.Decimal `yaml:"ffa_returns,omitempty" json:"ffa_returns,omitempty"`
	PhysicalExposure decimal.Decimal   `yaml:"physical_exposure" json:"physical_exposure"`
	Payments         []PaymentRecord   `yaml:"payments,omitempty" json:"payments,omitempty"`
	EmissionHistory  []EmissionPoint   `yaml:"emission_history,omitempty" json:"emission_history,omitempty"`
}
