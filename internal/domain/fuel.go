package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Canonical fuel type keys. Lookups are case-insensitive; anything
// unrecognised resolves to FuelHFO.
const (
	FuelHFO      = "hfo"
	FuelVLSFO    = "vlsfo"
	FuelMDO      = "mdo"
	FuelMGO      = "mgo"
	FuelLNG      = "lng"
	FuelMethanol = "methanol"
	FuelAmmonia  = "ammonia"
)

// TransportMode identifies how a fuel travels from refinery to bunker port.
type TransportMode string

const (
	TransportPipeline TransportMode = "pipeline"
	TransportTanker   TransportMode = "tanker"
	TransportTruck    TransportMode = "truck"
	TransportRail     TransportMode = "rail"
)

// FuelProperties holds the static reference data for a single fuel type.
// CO2Factor is tonnes CO2 per tonne of fuel burned (IMO Fourth GHG Study);
// EnergyContentMJ is lower calorific value in MJ per tonne; WTTIntensity is
// the upstream well-to-tank intensity in gCO2eq/MJ.
type FuelProperties struct {
	CO2Factor           decimal.Decimal `yaml:"co2_factor" json:"co2_factor"`
	EnergyContentMJ     decimal.Decimal `yaml:"energy_content_mj" json:"energy_content_mj"`
	WTTIntensity        decimal.Decimal `yaml:"wtt_intensity" json:"wtt_intensity"`
	TransportMode       TransportMode   `yaml:"transport_mode" json:"transport_mode"`
	TransportDistanceKm decimal.Decimal `yaml:"transport_distance_km" json:"transport_distance_km"`
}

// FuelTable maps fuel type keys to their reference properties.
type FuelTable map[string]FuelProperties

// Lookup resolves properties for a fuel type key. Unknown keys fall back to
// HFO so that a malformed input never fails a calculation.
func (ft FuelTable) Lookup(fuelType string) FuelProperties {
	key := strings.ToLower(strings.TrimSpace(fuelType))
	if props, ok := ft[key]; ok {
		return props
	}
	return ft[FuelHFO]
}

// Known reports whether the fuel type key resolves without falling back.
func (ft FuelTable) Known(fuelType string) bool {
	_, ok := ft[strings.ToLower(strings.TrimSpace(fuelType))]
	return ok
}

// DefaultFuelTable returns the built-in fuel property reference data.
func DefaultFuelTable() FuelTable {
	return FuelTable{
		FuelHFO: {
			CO2Factor:           decimal.NewFromFloat(3.114),
			EnergyContentMJ:     decimal.NewFromInt(40200),
			WTTIntensity:        decimal.NewFromFloat(13.5),
			TransportMode:       TransportTanker,
			TransportDistanceKm: decimal.NewFromInt(5000),
		},
		FuelVLSFO: {
			CO2Factor:           decimal.NewFromFloat(3.151),
			EnergyContentMJ:     decimal.NewFromInt(40500),
			WTTIntensity:        decimal.NewFromFloat(13.4),
			TransportMode:       TransportTanker,
			TransportDistanceKm: decimal.NewFromInt(5000),
		},
		FuelMDO: {
			CO2Factor:           decimal.NewFromFloat(3.206),
			EnergyContentMJ:     decimal.NewFromInt(42700),
			WTTIntensity:        decimal.NewFromFloat(14.4),
			TransportMode:       TransportPipeline,
			TransportDistanceKm: decimal.NewFromInt(1200),
		},
		FuelMGO: {
			CO2Factor:           decimal.NewFromFloat(3.206),
			EnergyContentMJ:     decimal.NewFromInt(42700),
			WTTIntensity:        decimal.NewFromFloat(14.4),
			TransportMode:       TransportPipeline,
			TransportDistanceKm: decimal.NewFromInt(1200),
		},
		FuelLNG: {
			CO2Factor:           decimal.NewFromFloat(2.750),
			EnergyContentMJ:     decimal.NewFromInt(48000),
			WTTIntensity:        decimal.NewFromFloat(18.5),
			TransportMode:       TransportTanker,
			TransportDistanceKm: decimal.NewFromInt(8000),
		},
		FuelMethanol: {
			CO2Factor:           decimal.NewFromFloat(1.375),
			EnergyContentMJ:     decimal.NewFromInt(19900),
			WTTIntensity:        decimal.NewFromFloat(31.3),
			TransportMode:       TransportTanker,
			TransportDistanceKm: decimal.NewFromInt(6000),
		},
		FuelAmmonia: {
			CO2Factor:           decimal.Zero,
			EnergyContentMJ:     decimal.NewFromInt(18600),
			WTTIntensity:        decimal.NewFromFloat(12.1),
			TransportMode:       TransportTanker,
			TransportDistanceKm: decimal.NewFromInt(6000),
		},
	}
}

// TransportEmissionFactors maps a transport mode to its emission factor in
// grams CO2 per tonne-km.
type TransportEmissionFactors map[TransportMode]decimal.Decimal

// DefaultTransportEmissionFactors returns the built-in per-mode factors.
func DefaultTransportEmissionFactors() TransportEmissionFactors {
	return TransportEmissionFactors{
		TransportPipeline: decimal.NewFromInt(5),
		TransportTanker:   decimal.NewFromInt(3),
		TransportTruck:    decimal.NewFromInt(62),
		TransportRail:     decimal.NewFromInt(22),
	}
}
