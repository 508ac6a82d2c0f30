package calculation

import (
	"github.com/marisk/marisk/internal/domain"
	"github.com/shopspring/decimal"
)

// IMO 2008 reference carbon intensity and the headline fleet-wide reduction
// milestones measured against it.
var (
	imoBaselineIntensity = decimal.NewFromInt(15)
	imoReduction2030     = decimal.NewFromFloat(0.40)
	imoReduction2050     = decimal.NewFromFloat(0.70)
)

// trajectoryHorizon is the last year the projection extends to.
const trajectoryHorizon = 2050

// imoTargetIntensity returns the IMO target line for a year: linear
// interpolation from the 2008 baseline to the 2030 milestone, then from 2030
// to 2050, held flat beyond.
func imoTargetIntensity(year int) decimal.Decimal {
	one := decimal.NewFromInt(1)
	intensity2030 := imoBaselineIntensity.Mul(one.Sub(imoReduction2030))
	intensity2050 := imoBaselineIntensity.Mul(one.Sub(imoReduction2050))

	switch {
	case year <= 2008:
		return imoBaselineIntensity.Round(4)
	case year <= 2030:
		progress := decimal.NewFromInt(int64(year - 2008)).Div(decimal.NewFromInt(2030 - 2008))
		return imoBaselineIntensity.Mul(one.Sub(progress.Mul(imoReduction2030))).Round(4)
	case year <= trajectoryHorizon:
		progress := decimal.NewFromInt(int64(year - 2030)).Div(decimal.NewFromInt(2050 - 2030))
		return intensity2030.Add(intensity2050.Sub(intensity2030).Mul(progress)).Round(4)
	default:
		return intensity2050.Round(4)
	}
}

// TrajectoryPoint is one observed or projected carbon intensity value.
// Projected points also carry the IMO target line for their year and the gap
// to it (positive means above target).
type TrajectoryPoint struct {
	Year      int             `json:"year"`
	Intensity decimal.Decimal `json:"intensity"`
	Target    decimal.Decimal `json:"target,omitempty"`
	Gap       decimal.Decimal `json:"gap,omitempty"`
	Projected bool            `json:"projected"`
}

// TrajectoryResult holds a fitted intensity trend, its year-by-year
// projection against the IMO target line, and its standing against the 2030
// and 2050 milestones.
type TrajectoryResult struct {
	Historical []TrajectoryPoint `json:"historical"`
	Projected  []TrajectoryPoint `json:"projected"`
	// Annual intensity change from the fitted trend, gCO2/dwt-nm per year.
	AnnualChange decimal.Decimal `json:"annualChange"`
	Target2030   decimal.Decimal `json:"target2030"`
	Target2050   decimal.Decimal `json:"target2050"`
	OnTrack2030  bool            `json:"onTrack2030"`
	OnTrack2050  bool            `json:"onTrack2050"`
	// FirstCompliantYear is the first year whose projected intensity meets
	// the target line, or the last historical year when the fleet is already
	// under it. FirstCompliantFound unset means the projection never crosses.
	FirstCompliantYear  int  `json:"firstCompliantYear"`
	FirstCompliantFound bool `json:"firstCompliantFound"`
}

// ProjectTrajectory fits a linear trend through historical emission points
// and extends it year by year to 2050 against the interpolated IMO target
// line. Points without transport work are skipped; an empty history yields
// an empty, off-track result.
func (ce *CalculationEngine) ProjectTrajectory(points []domain.EmissionPoint) TrajectoryResult {
	result := TrajectoryResult{
		Target2030: imoTargetIntensity(2030),
		Target2050: imoTargetIntensity(2050),
	}

	million := decimal.NewFromInt(1_000_000)
	var xs, ys []float64
	for _, p := range points {
		work := p.Dwt.Mul(p.DistanceNm)
		if !work.IsPositive() {
			ce.Logger.Warnf("trajectory: skipping year %d, no transport work", p.Year)
			continue
		}
		intensity := p.Co2Mt.Mul(million).Div(work).Round(4)
		result.Historical = append(result.Historical, TrajectoryPoint{Year: p.Year, Intensity: intensity})
		xs = append(xs, float64(p.Year))
		ys = append(ys, intensity.InexactFloat64())
	}
	if len(result.Historical) == 0 {
		return result
	}

	slope, intercept := linearRegression(xs, ys)
	result.AnnualChange = decimal.NewFromFloat(slope).Round(4)

	lastYear := result.Historical[len(result.Historical)-1].Year
	for year := lastYear + 1; year <= trajectoryHorizon; year++ {
		projected := decimal.NewFromFloat(slope*float64(year) + intercept).Round(4)
		if projected.IsNegative() {
			projected = decimal.Zero
		}
		target := imoTargetIntensity(year)
		result.Projected = append(result.Projected, TrajectoryPoint{
			Year:      year,
			Intensity: projected,
			Target:    target,
			Gap:       projected.Sub(target).Round(4),
			Projected: true,
		})
		if !result.FirstCompliantFound && projected.LessThanOrEqual(target) {
			result.FirstCompliantYear = year
			result.FirstCompliantFound = true
		}
	}

	// A fleet already under the target line is compliant as of its last
	// observation, whatever the projection says.
	lastIntensity := result.Historical[len(result.Historical)-1].Intensity
	if lastIntensity.LessThanOrEqual(imoTargetIntensity(lastYear)) {
		result.FirstCompliantYear = lastYear
		result.FirstCompliantFound = true
	}

	result.OnTrack2030 = !ce.intensityAt(result, 2030).GreaterThan(result.Target2030)
	result.OnTrack2050 = !ce.intensityAt(result, 2050).GreaterThan(result.Target2050)
	return result
}

// intensityAt returns the projected intensity for a milestone year, falling
// back to the last historical observation when the fleet history already
// covers it.
func (ce *CalculationEngine) intensityAt(result TrajectoryResult, year int) decimal.Decimal {
	for _, p := range result.Projected {
		if p.Year == year {
			return p.Intensity
		}
	}
	return result.Historical[len(result.Historical)-1].Intensity
}
