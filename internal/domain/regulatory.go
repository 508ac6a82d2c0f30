package domain

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// RegulatoryConfig bundles every static reference table the calculation
// engines consult. It ships with built-in defaults (DefaultRegulatory) and
// can be overridden from a regulatory YAML file, mirroring how annual
// regulatory updates are published.
type RegulatoryConfig struct {
	Metadata          RegulatoryMetadata       `yaml:"metadata" json:"metadata"`
	Fuels             FuelTable                `yaml:"fuels" json:"fuels"`
	TransportFactors  TransportEmissionFactors `yaml:"transport_factors" json:"transport_factors"`
	CIIReference      CIIReferenceTable        `yaml:"cii_reference" json:"cii_reference"`
	RatingBands       []CIIRatingBand          `yaml:"cii_rating_bands" json:"cii_rating_bands"`
	ReductionSchedule ReductionSchedule        `yaml:"cii_reduction_schedule" json:"cii_reduction_schedule"`
	EtsPhaseIn        EtsPhaseInTable          `yaml:"ets_phase_in" json:"ets_phase_in"`
	EtsPriceEur       decimal.Decimal          `yaml:"ets_price_eur" json:"ets_price_eur"`
	FuelEU            FuelEURules              `yaml:"fueleu" json:"fueleu"`
}

// RegulatoryMetadata describes the provenance of a regulatory data set.
type RegulatoryMetadata struct {
	DataYear    int    `yaml:"data_year" json:"data_year"`
	LastUpdated string `yaml:"last_updated" json:"last_updated"`
	Description string `yaml:"description" json:"description"`
}

// CIIReferenceBand is one DWT band of a vessel type's reference line. Bands
// are consulted in ascending MaxDwt order; the first band whose MaxDwt is at
// least the vessel's DWT wins. The last band of each vessel type is the
// catch-all for unbounded DWT.
type CIIReferenceBand struct {
	MaxDwt             decimal.Decimal `yaml:"max_dwt" json:"max_dwt"`
	ReferenceIntensity decimal.Decimal `yaml:"reference_intensity" json:"reference_intensity"`
}

// CIIReferenceTable maps vessel type keys to their ordered reference bands.
type CIIReferenceTable map[string][]CIIReferenceBand

// DefaultVesselType is the fallback for unknown vessel type keys.
const DefaultVesselType = "bulk_carrier"

// ReferenceIntensity resolves the reference CII for a vessel type and DWT.
// Unknown vessel types fall back to the bulk carrier reference line.
func (t CIIReferenceTable) ReferenceIntensity(vesselType string, dwt decimal.Decimal) decimal.Decimal {
	key := strings.ToLower(strings.TrimSpace(vesselType))
	bands, ok := t[key]
	if !ok {
		bands = t[DefaultVesselType]
	}
	for _, band := range bands {
		if band.MaxDwt.GreaterThanOrEqual(dwt) {
			return band.ReferenceIntensity
		}
	}
	if len(bands) == 0 {
		return decimal.Zero
	}
	return bands[len(bands)-1].ReferenceIntensity
}

// CIIRatingBand maps a rating letter to its exclusive upper bound on the
// attained/required ratio. Bands are evaluated in the given order; the first
// band whose bound is strictly greater than the ratio wins. A ratio at or
// above the last explicit bound takes the worst rating.
type CIIRatingBand struct {
	Rating     string          `yaml:"rating" json:"rating"`
	UpperBound decimal.Decimal `yaml:"upper_bound" json:"upper_bound"`
}

// WorstRating is assigned when the ratio clears every explicit band.
const WorstRating = "E"

// RatingFor evaluates the ordered bands against a ratio.
func RatingFor(bands []CIIRatingBand, ratio decimal.Decimal) string {
	for _, band := range bands {
		if ratio.LessThan(band.UpperBound) {
			return band.Rating
		}
	}
	return WorstRating
}

// ReductionSchedule maps years to the percentage reduction applied to the
// 2019-equivalent reference CII. Years past the table continue linearly at
// StepPercent per year; years before the table carry no reduction.
type ReductionSchedule struct {
	Known       map[int]decimal.Decimal `yaml:"known" json:"known"`
	StepPercent decimal.Decimal         `yaml:"step_percent" json:"step_percent"`
}

// ReductionPercent returns the reduction percentage for a year, applying the
// extrapolation rule beyond the table. Kept as a named method because the
// extrapolation is the most bug-prone part of the engine.
func (rs ReductionSchedule) ReductionPercent(year int) decimal.Decimal {
	if pct, ok := rs.Known[year]; ok {
		return pct
	}
	first, last := rs.bounds()
	if len(rs.Known) == 0 || year < first {
		return decimal.Zero
	}
	yearsPast := decimal.NewFromInt(int64(year - last))
	return rs.Known[last].Add(rs.StepPercent.Mul(yearsPast))
}

func (rs ReductionSchedule) bounds() (first, last int) {
	years := make([]int, 0, len(rs.Known))
	for y := range rs.Known {
		years = append(years, y)
	}
	sort.Ints(years)
	if len(years) == 0 {
		return 0, 0
	}
	return years[0], years[len(years)-1]
}

// EtsPhaseInTable maps years to the fraction of in-scope CO2 that requires
// allowance surrender. Years past the table are fully in scope; years before
// the table are not yet in force.
type EtsPhaseInTable struct {
	Known map[int]decimal.Decimal `yaml:"known" json:"known"`
}

// Fraction returns the phase-in fraction for a year.
func (t EtsPhaseInTable) Fraction(year int) decimal.Decimal {
	if frac, ok := t.Known[year]; ok {
		return frac
	}
	first, last := t.bounds()
	if len(t.Known) == 0 || year < first {
		return decimal.Zero
	}
	if year > last {
		return decimal.NewFromInt(1)
	}
	return decimal.Zero
}

// InForce reports whether the scheme applies at all in the given year.
func (t EtsPhaseInTable) InForce(year int) bool {
	first, _ := t.bounds()
	return len(t.Known) > 0 && year >= first
}

// PhaseLabel describes the phase applied in a given year, e.g. "2025: 70%".
func (t EtsPhaseInTable) PhaseLabel(year int) string {
	if !t.InForce(year) {
		return fmt.Sprintf("%d: not yet in force", year)
	}
	pct := t.Fraction(year).Mul(decimal.NewFromInt(100))
	return fmt.Sprintf("%d: %s%%", year, pct.StringFixed(0))
}

func (t EtsPhaseInTable) bounds() (first, last int) {
	years := make([]int, 0, len(t.Known))
	for y := range t.Known {
		years = append(years, y)
	}
	sort.Ints(years)
	if len(years) == 0 {
		return 0, 0
	}
	return years[0], years[len(years)-1]
}

// FuelEUTargetBracket is one year bracket of the FuelEU Maritime GHG
// intensity ceiling. Brackets are ordered by FromYear ascending.
type FuelEUTargetBracket struct {
	FromYear  int             `yaml:"from_year" json:"from_year"`
	Intensity decimal.Decimal `yaml:"intensity" json:"intensity"`
}

// FuelEURules holds the FuelEU Maritime target schedule and penalty terms.
type FuelEURules struct {
	Targets        []FuelEUTargetBracket `yaml:"targets" json:"targets"`
	PenaltyRateEur decimal.Decimal       `yaml:"penalty_rate_eur" json:"penalty_rate_eur"`
	BankingCap     decimal.Decimal       `yaml:"banking_cap" json:"banking_cap"`
}

// TargetIntensity returns the ceiling for a year: the bracket with the
// latest FromYear not exceeding the year. Years before the first bracket use
// the most lenient (first) bracket.
func (r FuelEURules) TargetIntensity(year int) decimal.Decimal {
	if len(r.Targets) == 0 {
		return decimal.Zero
	}
	target := r.Targets[0].Intensity
	for _, bracket := range r.Targets {
		if bracket.FromYear <= year {
			target = bracket.Intensity
		}
	}
	return target
}

// DefaultRegulatory returns the built-in regulatory reference data set.
func DefaultRegulatory() *RegulatoryConfig {
	return &RegulatoryConfig{
		Metadata: RegulatoryMetadata{
			DataYear:    2024,
			LastUpdated: "2024-11-30",
			Description: "IMO MEPC.354(78) CII bands, EU ETS maritime phase-in, FuelEU Maritime targets",
		},
		Fuels:            DefaultFuelTable(),
		TransportFactors: DefaultTransportEmissionFactors(),
		CIIReference: CIIReferenceTable{
			"bulk_carrier": {
				{MaxDwt: decimal.NewFromInt(10000), ReferenceIntensity: decimal.NewFromFloat(9.83)},
				{MaxDwt: decimal.NewFromInt(35000), ReferenceIntensity: decimal.NewFromFloat(7.16)},
				{MaxDwt: decimal.NewFromInt(60000), ReferenceIntensity: decimal.NewFromFloat(5.78)},
				{MaxDwt: decimal.NewFromInt(100000), ReferenceIntensity: decimal.NewFromFloat(4.65)},
				{MaxDwt: decimal.NewFromInt(999999999), ReferenceIntensity: decimal.NewFromFloat(3.83)},
			},
			"tanker": {
				{MaxDwt: decimal.NewFromInt(10000), ReferenceIntensity: decimal.NewFromFloat(11.40)},
				{MaxDwt: decimal.NewFromInt(40000), ReferenceIntensity: decimal.NewFromFloat(8.12)},
				{MaxDwt: decimal.NewFromInt(80000), ReferenceIntensity: decimal.NewFromFloat(6.10)},
				{MaxDwt: decimal.NewFromInt(160000), ReferenceIntensity: decimal.NewFromFloat(4.93)},
				{MaxDwt: decimal.NewFromInt(999999999), ReferenceIntensity: decimal.NewFromFloat(4.08)},
			},
			"container": {
				{MaxDwt: decimal.NewFromInt(15000), ReferenceIntensity: decimal.NewFromFloat(14.20)},
				{MaxDwt: decimal.NewFromInt(55000), ReferenceIntensity: decimal.NewFromFloat(9.65)},
				{MaxDwt: decimal.NewFromInt(120000), ReferenceIntensity: decimal.NewFromFloat(6.87)},
				{MaxDwt: decimal.NewFromInt(999999999), ReferenceIntensity: decimal.NewFromFloat(5.24)},
			},
			"general_cargo": {
				{MaxDwt: decimal.NewFromInt(8000), ReferenceIntensity: decimal.NewFromFloat(13.10)},
				{MaxDwt: decimal.NewFromInt(20000), ReferenceIntensity: decimal.NewFromFloat(9.78)},
				{MaxDwt: decimal.NewFromInt(999999999), ReferenceIntensity: decimal.NewFromFloat(7.42)},
			},
			"lng_carrier": {
				{MaxDwt: decimal.NewFromInt(65000), ReferenceIntensity: decimal.NewFromFloat(8.95)},
				{MaxDwt: decimal.NewFromInt(100000), ReferenceIntensity: decimal.NewFromFloat(7.30)},
				{MaxDwt: decimal.NewFromInt(999999999), ReferenceIntensity: decimal.NewFromFloat(6.15)},
			},
		},
		RatingBands: []CIIRatingBand{
			{Rating: "A", UpperBound: decimal.NewFromFloat(0.86)},
			{Rating: "B", UpperBound: decimal.NewFromFloat(0.94)},
			{Rating: "C", UpperBound: decimal.NewFromFloat(1.06)},
			{Rating: "D", UpperBound: decimal.NewFromFloat(1.18)},
		},
		ReductionSchedule: ReductionSchedule{
			Known: map[int]decimal.Decimal{
				2023: decimal.NewFromInt(5),
				2024: decimal.NewFromInt(7),
				2025: decimal.NewFromInt(9),
				2026: decimal.NewFromInt(11),
			},
			StepPercent: decimal.NewFromInt(2),
		},
		EtsPhaseIn: EtsPhaseInTable{
			Known: map[int]decimal.Decimal{
				2024: decimal.NewFromFloat(0.4),
				2025: decimal.NewFromFloat(0.7),
				2026: decimal.NewFromInt(1),
			},
		},
		EtsPriceEur: decimal.NewFromInt(80),
		FuelEU: FuelEURules{
			Targets: []FuelEUTargetBracket{
				{FromYear: 2025, Intensity: decimal.NewFromFloat(89.34)},
				{FromYear: 2030, Intensity: decimal.NewFromFloat(85.69)},
				{FromYear: 2035, Intensity: decimal.NewFromFloat(77.94)},
				{FromYear: 2040, Intensity: decimal.NewFromFloat(62.90)},
				{FromYear: 2045, Intensity: decimal.NewFromFloat(34.64)},
				{FromYear: 2050, Intensity: decimal.NewFromFloat(18.23)},
			},
			PenaltyRateEur: decimal.NewFromInt(2400),
			BankingCap:     decimal.NewFromFloat(0.25),
		},
	}
}
