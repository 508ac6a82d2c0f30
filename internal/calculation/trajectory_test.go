package calculation

import (
	"testing"

	"github.com/marisk/marisk/internal/domain"
	"github.com/shopspring/decimal"
)

func fleetHistory() []domain.EmissionPoint {
	dwt := decimal.NewFromInt(50000)
	distance := decimal.NewFromInt(100000)
	// intensity falls from 11.0 to 9.0 g/dwt-nm, 0.5 per year
	co2ByYear := map[int]int64{2020: 55000, 2021: 52500, 2022: 50000, 2023: 47500, 2024: 45000}

	points := make([]domain.EmissionPoint, 0, len(co2ByYear))
	for _, year := range []int{2020, 2021, 2022, 2023, 2024} {
		points = append(points, domain.EmissionPoint{
			Year:       year,
			Co2Mt:      decimal.NewFromInt(co2ByYear[year]),
			DistanceNm: distance,
			Dwt:        dwt,
		})
	}
	return points
}

func TestProjectTrajectory(t *testing.T) {
	engine := NewCalculationEngine()

	result := engine.ProjectTrajectory(fleetHistory())

	if len(result.Historical) != 5 {
		t.Fatalf("Historical = %d points, expected 5", len(result.Historical))
	}
	if !result.Historical[0].Intensity.Equal(decimal.NewFromInt(11)) {
		t.Errorf("2020 intensity = %v, expected 11", result.Historical[0].Intensity)
	}
	if !result.AnnualChange.Equal(decimal.NewFromFloat(-0.5)) {
		t.Errorf("AnnualChange = %v, expected -0.5", result.AnnualChange)
	}

	// one point per year from 2025 through 2050
	if len(result.Projected) != 26 {
		t.Fatalf("Projected = %d points, expected 26", len(result.Projected))
	}
	if result.Projected[0].Year != 2025 || result.Projected[25].Year != 2050 {
		t.Fatalf("projection spans %d..%d, expected 2025..2050",
			result.Projected[0].Year, result.Projected[25].Year)
	}
	// 9.0 in 2024 falling 0.5 per year
	p2030 := projectedYear(t, result, 2030)
	if !p2030.Intensity.Equal(decimal.NewFromInt(6)) {
		t.Errorf("2030 projection = %v, expected 6", p2030.Intensity)
	}
	if !p2030.Target.Equal(decimal.NewFromInt(9)) {
		t.Errorf("2030 target = %v, expected 9", p2030.Target)
	}
	if !p2030.Gap.Equal(decimal.NewFromInt(-3)) {
		t.Errorf("2030 gap = %v, expected -3", p2030.Gap)
	}
	// interpolated target line between the 2008 baseline and 2030
	p2025 := projectedYear(t, result, 2025)
	if !p2025.Target.Equal(decimal.NewFromFloat(10.3636)) {
		t.Errorf("2025 target = %v, expected 10.3636", p2025.Target)
	}
	// the raw extrapolation goes negative and clamps to zero
	if p2050 := projectedYear(t, result, 2050); !p2050.Intensity.IsZero() {
		t.Errorf("2050 projection = %v, expected clamped to zero", p2050.Intensity)
	}

	// IMO milestones against the 15 g/dwt-nm 2008 baseline
	if !result.Target2030.Equal(decimal.NewFromInt(9)) {
		t.Errorf("Target2030 = %v, expected 9", result.Target2030)
	}
	if !result.Target2050.Equal(decimal.NewFromFloat(4.5)) {
		t.Errorf("Target2050 = %v, expected 4.5", result.Target2050)
	}
	if !result.OnTrack2030 || !result.OnTrack2050 {
		t.Errorf("OnTrack = (%v, %v), expected both milestones met", result.OnTrack2030, result.OnTrack2050)
	}

	// 9.0 in 2024 is already under the 10.6364 target line for that year
	if !result.FirstCompliantFound || result.FirstCompliantYear != 2024 {
		t.Errorf("FirstCompliantYear = (%d, %v), expected (2024, true)",
			result.FirstCompliantYear, result.FirstCompliantFound)
	}
}

func projectedYear(t *testing.T, result TrajectoryResult, year int) TrajectoryPoint {
	t.Helper()
	for _, p := range result.Projected {
		if p.Year == year {
			return p
		}
	}
	t.Fatalf("no projection for year %d", year)
	return TrajectoryPoint{}
}

func TestProjectTrajectoryOffTrack(t *testing.T) {
	engine := NewCalculationEngine()

	// flat at 12.0 g/dwt-nm, never reaching either milestone
	dwt := decimal.NewFromInt(50000)
	distance := decimal.NewFromInt(100000)
	var points []domain.EmissionPoint
	for year := 2020; year <= 2024; year++ {
		points = append(points, domain.EmissionPoint{
			Year: year, Co2Mt: decimal.NewFromInt(60000), DistanceNm: distance, Dwt: dwt,
		})
	}

	result := engine.ProjectTrajectory(points)

	if result.OnTrack2030 || result.OnTrack2050 {
		t.Errorf("OnTrack = (%v, %v), expected both milestones missed", result.OnTrack2030, result.OnTrack2050)
	}
	if !result.AnnualChange.IsZero() {
		t.Errorf("AnnualChange = %v, expected zero for a flat fleet", result.AnnualChange)
	}
	// a flat 12.0 never crosses the falling target line
	if result.FirstCompliantFound {
		t.Errorf("FirstCompliantYear = %d, expected none found", result.FirstCompliantYear)
	}
}

func TestProjectTrajectorySkipsZeroWork(t *testing.T) {
	engine := NewCalculationEngine()

	points := append(fleetHistory(), domain.EmissionPoint{
		Year: 2025, Co2Mt: decimal.NewFromInt(40000), DistanceNm: decimal.Zero, Dwt: decimal.NewFromInt(50000),
	})

	result := engine.ProjectTrajectory(points)
	if len(result.Historical) != 5 {
		t.Errorf("Historical = %d points, expected the zero-work year skipped", len(result.Historical))
	}
}

func TestProjectTrajectoryEmpty(t *testing.T) {
	engine := NewCalculationEngine()

	result := engine.ProjectTrajectory(nil)
	if len(result.Historical) != 0 || len(result.Projected) != 0 {
		t.Error("expected no points for empty history")
	}
	if result.OnTrack2030 || result.OnTrack2050 {
		t.Error("an empty fleet history cannot be on track")
	}
}
