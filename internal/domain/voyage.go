package domain

import "github.com/shopspring/decimal"

// VoyageType classifies a voyage's EU ETS geographic scope.
type VoyageType string

const (
	// VoyageIntraEU covers voyages between two EU/EEA ports: fully in scope.
	VoyageIntraEU VoyageType = "intra_eu"
	// VoyageEURelated covers voyages touching exactly one EU/EEA port: half
	// the emissions are in scope.
	VoyageEURelated VoyageType = "eu_related"
	// VoyageNonEU covers voyages touching no EU/EEA port: the ETS
	// calculation is skipped entirely.
	VoyageNonEU VoyageType = "non_eu"
)

// Voyage describes one vessel voyage for compliance evaluation. It is a
// plain value object; the caller resolves vessel metadata before building it.
type Voyage struct {
	Reference          string          `yaml:"reference" json:"reference"`
	VesselType         string          `yaml:"vessel_type" json:"vessel_type"`
	Dwt                decimal.Decimal `yaml:"dwt" json:"dwt"`
	DistanceNm         decimal.Decimal `yaml:"distance_nm" json:"distance_nm"`
	FuelType           string          `yaml:"fuel_type" json:"fuel_type"`
	DailyConsumptionMt decimal.Decimal `yaml:"daily_consumption_mt" json:"daily_consumption_mt"`
	VoyageDays         decimal.Decimal `yaml:"voyage_days" json:"voyage_days"`
	VoyageType         VoyageType      `yaml:"voyage_type" json:"voyage_type"`
}

// TotalFuelMt is the voyage's total fuel consumption.
func (v Voyage) TotalFuelMt() decimal.Decimal {
	return v.DailyConsumptionMt.Mul(v.VoyageDays)
}

// EtsVoyage is the minimal per-voyage input for fleet-level ETS aggregation.
type EtsVoyage struct {
	Reference  string          `yaml:"reference" json:"reference"`
	Co2Mt      decimal.Decimal `yaml:"co2_mt" json:"co2_mt"`
	VoyageType VoyageType      `yaml:"voyage_type" json:"voyage_type"`
}

// EmissionPoint is one year of historical fleet emission data used by the
// trajectory projection.
type EmissionPoint struct {
	Year       int             `yaml:"year" json:"year"`
	Co2Mt      decimal.Decimal `yaml:"co2_mt" json:"co2_mt"`
	DistanceNm decimal.Decimal `yaml:"distance_nm" json:"distance_nm"`
	Dwt        decimal.Decimal `yaml:"dwt" json:"dwt"`
}
