package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/marisk/marisk/internal/calculation"
	"github.com/shopspring/decimal"
)

// ReportGenerator handles report generation in various formats
type ReportGenerator struct {
	Writer io.Writer
}

// NewReportGenerator creates a new report generator writing to w
func NewReportGenerator(w io.Writer) *ReportGenerator {
	return &ReportGenerator{Writer: w}
}

// GenerateReport writes a report for the analysis in the specified format
func GenerateReport(w io.Writer, result *calculation.AnalysisResult, format string) error {
	generator := NewReportGenerator(w)

	switch format {
	case "console":
		return generator.GenerateConsoleReport(result)
	case "json":
		return generator.GenerateJSONReport(result)
	case "csv":
		return generator.GenerateCSVReport(result)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// GenerateConsoleReport writes a sectioned plain-text report
func (rg *ReportGenerator) GenerateConsoleReport(result *calculation.AnalysisResult) error {
	w := rg.Writer
	fmt.Fprintln(w, strings.Repeat("=", 78))
	fmt.Fprintf(w, "MARITIME RISK ANALYSIS: %s\n", result.Name)
	fmt.Fprintf(w, "As of %s, compliance year %d\n", result.AsOf.Format("2006-01-02"), result.Year)
	fmt.Fprintln(w, strings.Repeat("=", 78))
	fmt.Fprintln(w)

	if len(result.Voyages) > 0 {
		fmt.Fprintln(w, "VOYAGE COMPLIANCE")
		fmt.Fprintln(w, strings.Repeat("-", 50))
		for _, voyage := range result.Voyages {
			fmt.Fprintf(w, "Voyage %s\n", voyage.Reference)
			fmt.Fprintf(w, "  Fuel Consumed:   %s mt\n", voyage.TotalFuelMt.StringFixed(2))
			fmt.Fprintf(w, "  CO2 Emitted:     %s mt\n", voyage.TotalCo2Mt.StringFixed(2))
			fmt.Fprintf(w, "  CII Attained:    %s gCO2/dwt-nm (required %s)\n",
				voyage.CII.AttainedCII.StringFixed(4), voyage.CII.RequiredCII.StringFixed(4))
			fmt.Fprintf(w, "  CII Rating:      %s\n", voyage.CII.Rating)
			if voyage.CII.YearsToDFound {
				fmt.Fprintf(w, "  Years to D band: %d\n", voyage.CII.YearsToD)
			}
			if voyage.EuEts != nil {
				fmt.Fprintf(w, "  EU ETS:          %d allowances, %s EUR (%s)\n",
					voyage.EuEts.AllowancesNeeded, FormatCurrency(voyage.EuEts.TotalCostEur), voyage.EuEts.Phase)
			}
			compliant := "compliant"
			if !voyage.FuelEU.Compliant {
				compliant = fmt.Sprintf("penalty %s EUR", FormatCurrency(voyage.FuelEU.PenaltyEur))
			}
			fmt.Fprintf(w, "  FuelEU:          %s vs target %s gCO2eq/MJ, %s\n",
				voyage.FuelEU.GhgIntensity.StringFixed(2), voyage.FuelEU.TargetIntensity.StringFixed(2), compliant)
			fmt.Fprintln(w)
		}
	}

	if result.Ets != nil {
		fmt.Fprintln(w, "EU ETS FLEET LIABILITY")
		fmt.Fprintln(w, strings.Repeat("-", 50))
		fmt.Fprintf(w, "  Total CO2:        %s mt\n", result.Ets.TotalCo2Mt.StringFixed(2))
		fmt.Fprintf(w, "  In-scope CO2:     %s mt\n", result.Ets.TotalEtsCo2Mt.StringFixed(2))
		fmt.Fprintf(w, "  Allowances:       %d\n", result.Ets.TotalAllowances)
		fmt.Fprintf(w, "  Cost:             %s EUR\n", FormatCurrency(result.Ets.TotalEtsCostEur))
		fmt.Fprintln(w)
	}

	if result.FuelRanking != nil {
		fmt.Fprintln(w, "FUEL LIFECYCLE RANKING (well-to-wake)")
		fmt.Fprintln(w, strings.Repeat("-", 50))
		for i, fuel := range result.FuelRanking.Results {
			fmt.Fprintf(w, "  %d. %-10s %s mt CO2eq (%s gCO2eq/MJ)\n",
				i+1, fuel.FuelType, fuel.WTWEmissionsMt.StringFixed(2), fuel.WTWIntensity.StringFixed(2))
		}
		fmt.Fprintf(w, "  Switching %s -> %s saves %s mt (%s%%)\n",
			result.FuelRanking.Worst, result.FuelRanking.Best,
			result.FuelRanking.SavingsMt.StringFixed(2), result.FuelRanking.SavingsPercent.StringFixed(2))
		fmt.Fprintln(w)
	}

	if result.Trajectory != nil {
		fmt.Fprintln(w, "CARBON INTENSITY TRAJECTORY")
		fmt.Fprintln(w, strings.Repeat("-", 50))
		fmt.Fprintf(w, "  Annual change:    %s gCO2/dwt-nm per year\n", result.Trajectory.AnnualChange.StringFixed(4))
		for _, point := range result.Trajectory.Projected {
			if point.Year != 2030 && point.Year != 2050 {
				continue
			}
			fmt.Fprintf(w, "  Projected %d:   %s gCO2/dwt-nm (target %s)\n",
				point.Year, point.Intensity.StringFixed(4), point.Target.StringFixed(2))
		}
		fmt.Fprintf(w, "  2030 target %s: %s\n", result.Trajectory.Target2030.StringFixed(2), onTrack(result.Trajectory.OnTrack2030))
		fmt.Fprintf(w, "  2050 target %s: %s\n", result.Trajectory.Target2050.StringFixed(2), onTrack(result.Trajectory.OnTrack2050))
		if result.Trajectory.FirstCompliantFound {
			fmt.Fprintf(w, "  First compliant:  %d\n", result.Trajectory.FirstCompliantYear)
		}
		fmt.Fprintln(w)
	}

	if result.Portfolio != nil {
		fmt.Fprintln(w, "FFA PORTFOLIO")
		fmt.Fprintln(w, strings.Repeat("-", 50))
		for _, position := range result.Positions {
			fmt.Fprintf(w, "  %-8s MTM %14s  (%s%%)\n",
				position.Route, FormatCurrency(position.MarkToMarket), position.ReturnPercent.StringFixed(2))
		}
		fmt.Fprintf(w, "  Long  notional:   %s\n", FormatCurrency(result.Portfolio.LongNotional))
		fmt.Fprintf(w, "  Short notional:   %s\n", FormatCurrency(result.Portfolio.ShortNotional))
		fmt.Fprintf(w, "  Net   notional:   %s\n", FormatCurrency(result.Portfolio.NetNotional))
		fmt.Fprintf(w, "  Gross notional:   %s\n", FormatCurrency(result.Portfolio.GrossNotional))
		fmt.Fprintf(w, "  Total MTM:        %s\n", FormatCurrency(result.Portfolio.TotalMTM))
		for _, exposure := range result.Portfolio.Concentration {
			fmt.Fprintf(w, "    %-8s %14s  %s%% of gross\n",
				exposure.Route, FormatCurrency(exposure.NetNotional), exposure.ShareOfGrossPct.StringFixed(2))
		}
		fmt.Fprintln(w)
	}

	if result.VaR != nil {
		fmt.Fprintln(w, "VALUE AT RISK")
		fmt.Fprintln(w, strings.Repeat("-", 50))
		fmt.Fprintf(w, "  Method:           %s\n", result.VaR.Method)
		fmt.Fprintf(w, "  Confidence:       %s\n", result.VaR.Confidence.String())
		fmt.Fprintf(w, "  VaR:              %s\n", result.VaR.VaR.String())
		fmt.Fprintf(w, "  CVaR:             %s\n", result.VaR.CVaR.String())
		fmt.Fprintln(w)
	}

	if result.Hedge != nil {
		fmt.Fprintln(w, "HEDGE COVERAGE")
		fmt.Fprintln(w, strings.Repeat("-", 50))
		fmt.Fprintf(w, "  Hedge ratio:      %s\n", result.Hedge.HedgeRatio.String())
		fmt.Fprintf(w, "  Basis risk:       %s\n", FormatCurrency(result.Hedge.BasisRisk))
		fmt.Fprintf(w, "  Assessment:       %s\n", result.Hedge.Assessment)
		fmt.Fprintln(w)
	}

	if result.Aging != nil {
		fmt.Fprintln(w, "RECEIVABLES AGING")
		fmt.Fprintln(w, strings.Repeat("-", 50))
		for _, bucket := range result.Aging.Buckets {
			fmt.Fprintf(w, "  %-8s %3d invoices  %s\n", bucket.Label, bucket.Count, FormatCurrency(bucket.Amount))
		}
		fmt.Fprintf(w, "  Total:   %3d invoices  %s\n", result.Aging.TotalCount, FormatCurrency(result.Aging.TotalAmount))
		if !result.DSO.IsZero() {
			fmt.Fprintf(w, "  DSO:     %s days\n", result.DSO.StringFixed(2))
		}
		fmt.Fprintln(w)
	}

	if len(result.CashFlow) > 0 {
		fmt.Fprintln(w, "CASH FLOW PROJECTION")
		fmt.Fprintln(w, strings.Repeat("-", 50))
		for _, period := range result.CashFlow {
			fmt.Fprintf(w, "  %-9s in %14s  out %14s  net %14s  cum %14s\n",
				period.Period, FormatCurrency(period.Inflow), FormatCurrency(period.Outflow),
				FormatCurrency(period.Net), FormatCurrency(period.Cumulative))
		}
		fmt.Fprintln(w)
	}

	if len(result.Overdue) > 0 {
		fmt.Fprintln(w, "OVERDUE PAYMENTS")
		fmt.Fprintln(w, strings.Repeat("-", 50))
		for _, entry := range result.Overdue {
			fmt.Fprintf(w, "  %-12s %-20s %14s  %4d days\n",
				entry.Record.Reference, entry.Record.Counterparty, FormatCurrency(entry.Record.Amount), entry.DaysOverdue)
		}
		fmt.Fprintln(w)
	}

	return nil
}

func onTrack(ok bool) string {
	if ok {
		return "on track"
	}
	return "off track"
}

// FormatCurrency formats a decimal as a thousands-grouped money string
func FormatCurrency(amount decimal.Decimal) string {
	s := amount.StringFixed(2)
	negative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	parts := strings.SplitN(s, ".", 2)
	whole := parts[0]
	var grouped strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(r)
	}

	out := grouped.String() + "." + parts[1]
	if negative {
		out = "-" + out
	}
	return out
}

// FormatPercentage formats a decimal as a percentage string
func FormatPercentage(amount decimal.Decimal) string {
	return amount.StringFixed(2) + "%"
}
