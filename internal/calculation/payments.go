package calculation

import (
	"fmt"
	"sort"
	"time"

	"github.com/marisk/marisk/internal/domain"
	"github.com/shopspring/decimal"
)

// AgingBucket counts unpaid invoices of a common age band.
type AgingBucket struct {
	Label  string          `json:"label"`
	Count  int             `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

// AgingReport groups unpaid receivables by how far past due they are at the
// reference date.
type AgingReport struct {
	AsOf        time.Time       `json:"asOf"`
	Buckets     []AgingBucket   `json:"buckets"`
	TotalCount  int             `json:"totalCount"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

var agingBands = []struct {
	label   string
	maxDays int
}{
	{"current", 0},
	{"1-30", 30},
	{"31-60", 60},
	{"61-90", 90},
	{"90+", 1<<31 - 1},
}

// BuildAgingReport buckets unpaid receivables by days overdue. Invoices not
// yet due land in the current bucket.
func (ce *CalculationEngine) BuildAgingReport(records []domain.PaymentRecord, referenceTime time.Time) AgingReport {
	report := AgingReport{AsOf: referenceTime, Buckets: make([]AgingBucket, len(agingBands))}
	for i, band := range agingBands {
		report.Buckets[i] = AgingBucket{Label: band.label}
	}

	for _, rec := range records {
		if rec.Kind != domain.KindReceivable || !rec.Status.Unpaid() {
			continue
		}
		days := rec.OverdueDays(referenceTime)
		for i, band := range agingBands {
			if days <= band.maxDays {
				report.Buckets[i].Count++
				report.Buckets[i].Amount = report.Buckets[i].Amount.Add(rec.Amount)
				break
			}
		}
		report.TotalCount++
		report.TotalAmount = report.TotalAmount.Add(rec.Amount)
	}

	for i := range report.Buckets {
		report.Buckets[i].Amount = report.Buckets[i].Amount.Round(2)
	}
	report.TotalAmount = report.TotalAmount.Round(2)
	return report
}

// CashFlowPeriod is the expected movement of cash in one projection window.
type CashFlowPeriod struct {
	Period     string          `json:"period"`
	Inflow     decimal.Decimal `json:"inflow"`
	Outflow    decimal.Decimal `json:"outflow"`
	Net        decimal.Decimal `json:"net"`
	Cumulative decimal.Decimal `json:"cumulative"`
}

// ProjectCashFlow schedules unpaid receivables and payables into weekly or
// monthly windows starting at the reference date. Amounts already past due
// fall into the first window.
func (ce *CalculationEngine) ProjectCashFlow(records []domain.PaymentRecord, frequency domain.ProjectionFrequency, periods int, referenceTime time.Time) ([]CashFlowPeriod, error) {
	if periods <= 0 {
		return nil, fmt.Errorf("projection periods must be positive, got %d", periods)
	}

	starts := make([]time.Time, periods)
	flows := make([]CashFlowPeriod, periods)
	for i := 0; i < periods; i++ {
		var start time.Time
		switch frequency {
		case domain.FrequencyWeekly:
			start = referenceTime.AddDate(0, 0, 7*i)
		case domain.FrequencyMonthly:
			start = referenceTime.AddDate(0, i, 0)
		default:
			return nil, fmt.Errorf("unknown projection frequency %q", frequency)
		}
		starts[i] = start
		flows[i] = CashFlowPeriod{Period: periodKey(start, frequency)}
	}

	for _, rec := range records {
		if !rec.Status.Unpaid() {
			continue
		}
		idx := 0
		for i := periods - 1; i > 0; i-- {
			if !rec.DueDate.Before(starts[i]) {
				idx = i
				break
			}
		}
		// Due beyond the projection horizon, out of scope.
		if frequency == domain.FrequencyWeekly && !rec.DueDate.Before(starts[periods-1].AddDate(0, 0, 7)) {
			continue
		}
		if frequency == domain.FrequencyMonthly && !rec.DueDate.Before(starts[periods-1].AddDate(0, 1, 0)) {
			continue
		}
		if rec.Kind == domain.KindPayable {
			flows[idx].Outflow = flows[idx].Outflow.Add(rec.Amount)
		} else {
			flows[idx].Inflow = flows[idx].Inflow.Add(rec.Amount)
		}
	}

	cumulative := decimal.Zero
	for i := range flows {
		flows[i].Inflow = flows[i].Inflow.Round(2)
		flows[i].Outflow = flows[i].Outflow.Round(2)
		flows[i].Net = flows[i].Inflow.Sub(flows[i].Outflow).Round(2)
		cumulative = cumulative.Add(flows[i].Net)
		flows[i].Cumulative = cumulative.Round(2)
	}
	return flows, nil
}

func periodKey(start time.Time, frequency domain.ProjectionFrequency) string {
	if frequency == domain.FrequencyWeekly {
		year, week := start.ISOWeek()
		return fmt.Sprintf("%d-W%02d", year, week)
	}
	return start.Format("2006-01")
}

// CalculateDSO returns days sales outstanding: how many days of revenue are
// tied up in receivables. Zero when there is no revenue to measure against.
func (ce *CalculationEngine) CalculateDSO(outstandingReceivables, periodRevenue decimal.Decimal, periodDays int) decimal.Decimal {
	if !periodRevenue.IsPositive() || periodDays <= 0 {
		return decimal.Zero
	}
	return outstandingReceivables.Div(periodRevenue).Mul(decimal.NewFromInt(int64(periodDays))).Round(2)
}

// OverdueEntry is one unpaid record past its due date.
type OverdueEntry struct {
	Record      domain.PaymentRecord `json:"record"`
	DaysOverdue int                  `json:"daysOverdue"`
}

// ListOverduePayments returns unpaid records past due at the reference date,
// most overdue first.
func (ce *CalculationEngine) ListOverduePayments(records []domain.PaymentRecord, referenceTime time.Time) []OverdueEntry {
	var overdue []OverdueEntry
	for _, rec := range records {
		if !rec.Status.Unpaid() {
			continue
		}
		days := rec.OverdueDays(referenceTime)
		if days <= 0 {
			continue
		}
		overdue = append(overdue, OverdueEntry{Record: rec, DaysOverdue: days})
	}
	sort.Slice(overdue, func(i, j int) bool {
		if overdue[i].DaysOverdue != overdue[j].DaysOverdue {
			return overdue[i].DaysOverdue > overdue[j].DaysOverdue
		}
		return overdue[i].Record.Reference < overdue[j].Record.Reference
	})
	return overdue
}
