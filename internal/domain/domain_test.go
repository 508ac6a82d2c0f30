package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestFuelTableLookup(t *testing.T) {
	fuels := DefaultFuelTable()

	tests := []struct {
		name          string
		fuelType      string
		wantCO2Factor string
	}{
		{"exact key", "lng", "2.75"},
		{"mixed case", "VLSFO", "3.151"},
		{"surrounding whitespace", "  mgo ", "3.206"},
		{"unknown falls back to hfo", "biodiesel", "3.114"},
		{"empty falls back to hfo", "", "3.114"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			props := fuels.Lookup(tt.fuelType)
			if props.CO2Factor.String() != tt.wantCO2Factor {
				t.Errorf("Lookup(%q).CO2Factor = %s, want %s", tt.fuelType, props.CO2Factor, tt.wantCO2Factor)
			}
		})
	}

	if !fuels.Known("Methanol") {
		t.Error("Known(Methanol) = false, want true")
	}
	if fuels.Known("biodiesel") {
		t.Error("Known(biodiesel) = true, want false")
	}
}

func TestTransportEmissionFactors(t *testing.T) {
	factors := DefaultTransportEmissionFactors()
	if got := factors[TransportTruck]; !got.Equal(decimal.NewFromInt(62)) {
		t.Errorf("truck factor = %s, want 62", got)
	}
	if got := factors[TransportTanker]; !got.Equal(decimal.NewFromInt(3)) {
		t.Errorf("tanker factor = %s, want 3", got)
	}
}

func TestReferenceIntensity(t *testing.T) {
	table := DefaultRegulatory().CIIReference

	tests := []struct {
		name       string
		vesselType string
		dwt        int64
		want       string
	}{
		{"bulk carrier small band", "bulk_carrier", 8000, "9.83"},
		{"bulk carrier band boundary inclusive", "bulk_carrier", 35000, "7.16"},
		{"bulk carrier handymax", "bulk_carrier", 50000, "5.78"},
		{"bulk carrier capesize catch-all", "bulk_carrier", 180000, "3.83"},
		{"tanker aframax", "tanker", 110000, "4.93"},
		{"container feeder", "container", 14000, "14.2"},
		{"unknown type falls back to bulk carrier", "hovercraft", 50000, "5.78"},
		{"case insensitive", "  TANKER ", 110000, "4.93"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := table.ReferenceIntensity(tt.vesselType, decimal.NewFromInt(tt.dwt))
			if got.String() != tt.want {
				t.Errorf("ReferenceIntensity(%q, %d) = %s, want %s", tt.vesselType, tt.dwt, got, tt.want)
			}
		})
	}
}

func TestRatingFor(t *testing.T) {
	bands := DefaultRegulatory().RatingBands

	tests := []struct {
		ratio string
		want  string
	}{
		{"0.5", "A"},
		{"0.86", "B"},
		{"0.94", "C"},
		{"1.0", "C"},
		{"1.06", "D"},
		{"1.18", "E"},
		{"2.5", "E"},
	}

	for _, tt := range tests {
		ratio := decimal.RequireFromString(tt.ratio)
		if got := RatingFor(bands, ratio); got != tt.want {
			t.Errorf("RatingFor(%s) = %s, want %s", tt.ratio, got, tt.want)
		}
	}
}

func TestReductionPercent(t *testing.T) {
	schedule := DefaultRegulatory().ReductionSchedule

	tests := []struct {
		year int
		want string
	}{
		{2023, "5"},
		{2025, "9"},
		{2026, "11"},
		{2027, "13"}, // extrapolated one step past the table
		{2030, "19"},
		{2020, "0"}, // before the scheme
	}

	for _, tt := range tests {
		if got := schedule.ReductionPercent(tt.year); got.String() != tt.want {
			t.Errorf("ReductionPercent(%d) = %s, want %s", tt.year, got, tt.want)
		}
	}

	empty := ReductionSchedule{}
	if got := empty.ReductionPercent(2025); !got.IsZero() {
		t.Errorf("empty schedule ReductionPercent = %s, want 0", got)
	}
}

func TestEtsPhaseIn(t *testing.T) {
	phaseIn := DefaultRegulatory().EtsPhaseIn

	tests := []struct {
		year      int
		fraction  string
		inForce   bool
		wantLabel string
	}{
		{2023, "0", false, "2023: not yet in force"},
		{2024, "0.4", true, "2024: 40%"},
		{2025, "0.7", true, "2025: 70%"},
		{2026, "1", true, "2026: 100%"},
		{2030, "1", true, "2030: 100%"},
	}

	for _, tt := range tests {
		if got := phaseIn.Fraction(tt.year); got.String() != tt.fraction {
			t.Errorf("Fraction(%d) = %s, want %s", tt.year, got, tt.fraction)
		}
		if got := phaseIn.InForce(tt.year); got != tt.inForce {
			t.Errorf("InForce(%d) = %v, want %v", tt.year, got, tt.inForce)
		}
		if got := phaseIn.PhaseLabel(tt.year); got != tt.wantLabel {
			t.Errorf("PhaseLabel(%d) = %q, want %q", tt.year, got, tt.wantLabel)
		}
	}
}

func TestFuelEUTargetIntensity(t *testing.T) {
	rules := DefaultRegulatory().FuelEU

	tests := []struct {
		year int
		want string
	}{
		{2024, "89.34"}, // before the first bracket
		{2025, "89.34"},
		{2029, "89.34"},
		{2030, "85.69"},
		{2044, "62.9"},
		{2050, "18.23"},
		{2080, "18.23"},
	}

	for _, tt := range tests {
		if got := rules.TargetIntensity(tt.year); got.String() != tt.want {
			t.Errorf("TargetIntensity(%d) = %s, want %s", tt.year, got, tt.want)
		}
	}

	if got := (FuelEURules{}).TargetIntensity(2030); !got.IsZero() {
		t.Errorf("empty rules TargetIntensity = %s, want 0", got)
	}
}

func TestPaymentStatusUnpaid(t *testing.T) {
	unpaid := []PaymentStatus{StatusPending, StatusOverdue, StatusDisputed}
	for _, s := range unpaid {
		if !s.Unpaid() {
			t.Errorf("%s.Unpaid() = false, want true", s)
		}
	}
	settled := []PaymentStatus{StatusPaid, StatusCancelled, StatusWrittenOff, PaymentStatus("bogus")}
	for _, s := range settled {
		if s.Unpaid() {
			t.Errorf("%s.Unpaid() = true, want false", s)
		}
	}
}

func TestOverdueDays(t *testing.T) {
	reference := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		due  time.Time
		want int
	}{
		{"past due", time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC), 15},
		{"due today", reference, 0},
		{"not yet due", time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), -17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := PaymentRecord{DueDate: tt.due}
			if got := record.OverdueDays(reference); got != tt.want {
				t.Errorf("OverdueDays = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestVoyageTotalFuel(t *testing.T) {
	voyage := Voyage{
		DailyConsumptionMt: decimal.NewFromFloat(27.5),
		VoyageDays:         decimal.NewFromInt(14),
	}
	if got := voyage.TotalFuelMt(); got.String() != "385" {
		t.Errorf("TotalFuelMt = %s, want 385", got)
	}
}

func TestDirectionSign(t *testing.T) {
	if got := DirectionLong.Sign(); !got.Equal(decimal.NewFromInt(1)) {
		t.Errorf("long sign = %s, want 1", got)
	}
	if got := DirectionShort.Sign(); !got.Equal(decimal.NewFromInt(-1)) {
		t.Errorf("short sign = %s, want -1", got)
	}
}

func TestPositionNotional(t *testing.T) {
	position := FFAPosition{
		CurrentPrice: decimal.NewFromInt(23),
		Quantity:     decimal.NewFromInt(10),
		LotSize:      decimal.NewFromInt(1000),
		Direction:    DirectionShort,
	}
	if got := position.Notional(); got.String() != "230000" {
		t.Errorf("Notional = %s, want 230000", got)
	}
	if got := position.SignedNotional(); got.String() != "-230000" {
		t.Errorf("SignedNotional = %s, want -230000", got)
	}
}
