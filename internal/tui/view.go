package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/marisk/marisk/internal/output"
)

// View renders the current state of the application
func (m Model) View() string {
	if m.err != nil {
		return ErrorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}
	if m.loading {
		return SubtitleStyle.Render("Loading analysis...")
	}

	var content string
	switch m.currentScene {
	case SceneHome:
		content = m.renderHome()
	case SceneCompliance:
		content = m.renderCompliance()
	case ScenePortfolio:
		content = m.renderPortfolio()
	case ScenePayments:
		content = m.renderPayments()
	case SceneHelp:
		content = m.renderHelp()
	default:
		content = "Unknown scene"
	}

	title := TitleStyle.Render("marisk") + SubtitleStyle.Render(
		fmt.Sprintf("%s | %s | year %d", m.result.Name, m.currentScene, m.result.Year))

	return lipgloss.JoinVertical(lipgloss.Left, title, content, m.renderStatusBar())
}

func (m Model) renderStatusBar() string {
	keys := []struct{ key, desc string }{
		{"h", "home"}, {"c", "compliance"}, {"p", "portfolio"},
		{"y", "payments"}, {"?", "help"}, {"q", "quit"},
	}
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, StatusKeyStyle.Render(k.key)+" "+k.desc)
	}
	return StatusBarStyle.Width(m.width).Render(strings.Join(parts, "  "))
}

func (m Model) renderHome() string {
	var b strings.Builder
	b.WriteString(SectionStyle.Render("OVERVIEW") + "\n")
	b.WriteString(fmt.Sprintf("  %s %s\n", LabelStyle.Render("As of:"), m.result.AsOf.Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("  %s %d\n", LabelStyle.Render("Voyages:"), len(m.result.Voyages)))
	if m.result.Ets != nil {
		b.WriteString(fmt.Sprintf("  %s %s EUR\n", LabelStyle.Render("ETS liability:"),
			ValueStyle.Render(output.FormatCurrency(m.result.Ets.TotalEtsCostEur))))
	}
	if m.result.Portfolio != nil {
		mtm := output.FormatCurrency(m.result.Portfolio.TotalMTM)
		style := PositiveStyle
		if m.result.Portfolio.TotalMTM.IsNegative() {
			style = NegativeStyle
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", LabelStyle.Render("Portfolio MTM:"), style.Render(mtm)))
	}
	if m.result.Aging != nil {
		b.WriteString(fmt.Sprintf("  %s %s (%d invoices)\n", LabelStyle.Render("Receivables:"),
			ValueStyle.Render(output.FormatCurrency(m.result.Aging.TotalAmount)), m.result.Aging.TotalCount))
	}
	return b.String()
}

func (m Model) renderCompliance() string {
	if len(m.result.Voyages) == 0 {
		return SubtitleStyle.Render("No voyages in this input file.")
	}
	var b strings.Builder
	b.WriteString(SectionStyle.Render("VOYAGE COMPLIANCE") + "\n")
	for _, voyage := range m.result.Voyages {
		b.WriteString(fmt.Sprintf("  %s  CII %s (%s req %s)",
			ValueStyle.Render(voyage.Reference),
			RatingStyle(voyage.CII.Rating).Render(voyage.CII.Rating),
			voyage.CII.AttainedCII.StringFixed(4),
			voyage.CII.RequiredCII.StringFixed(4)))
		if voyage.EuEts != nil {
			b.WriteString(fmt.Sprintf("  ETS %s EUR", output.FormatCurrency(voyage.EuEts.TotalCostEur)))
		}
		if !voyage.FuelEU.Compliant {
			b.WriteString("  " + NegativeStyle.Render(
				fmt.Sprintf("FuelEU penalty %s EUR", output.FormatCurrency(voyage.FuelEU.PenaltyEur))))
		}
		b.WriteString("\n")
	}
	if m.result.Trajectory != nil {
		b.WriteString(SectionStyle.Render("TRAJECTORY") + "\n")
		b.WriteString(fmt.Sprintf("  2030: %s   2050: %s\n",
			trackLabel(m.result.Trajectory.OnTrack2030), trackLabel(m.result.Trajectory.OnTrack2050)))
		if m.result.Trajectory.FirstCompliantFound {
			b.WriteString(fmt.Sprintf("  %s %d\n",
				LabelStyle.Render("First compliant:"), m.result.Trajectory.FirstCompliantYear))
		}
	}
	return b.String()
}

func trackLabel(ok bool) string {
	if ok {
		return PositiveStyle.Render("on track")
	}
	return NegativeStyle.Render("off track")
}

func (m Model) renderPortfolio() string {
	if m.result.Portfolio == nil {
		return SubtitleStyle.Render("No FFA positions in this input file.")
	}
	var b strings.Builder
	b.WriteString(SectionStyle.Render("POSITIONS") + "\n")
	for _, position := range m.result.Positions {
		style := PositiveStyle
		if position.MarkToMarket.IsNegative() {
			style = NegativeStyle
		}
		b.WriteString(fmt.Sprintf("  %-10s %s (%s%%)\n",
			position.Route,
			style.Render(output.FormatCurrency(position.MarkToMarket)),
			position.ReturnPercent.StringFixed(2)))
	}
	b.WriteString(SectionStyle.Render("EXPOSURE") + "\n")
	b.WriteString(fmt.Sprintf("  %s %s   %s %s\n",
		LabelStyle.Render("Net:"), output.FormatCurrency(m.result.Portfolio.NetNotional),
		LabelStyle.Render("Gross:"), output.FormatCurrency(m.result.Portfolio.GrossNotional)))
	if m.result.VaR != nil {
		b.WriteString(fmt.Sprintf("  %s %s (%s, %s)\n",
			LabelStyle.Render("VaR:"), m.result.VaR.VaR.String(),
			m.result.VaR.Method, m.result.VaR.Confidence.String()))
	}
	if m.result.Hedge != nil {
		b.WriteString(fmt.Sprintf("  %s %s (%s)\n",
			LabelStyle.Render("Hedge ratio:"), m.result.Hedge.HedgeRatio.String(), m.result.Hedge.Assessment))
	}
	return b.String()
}

func (m Model) renderPayments() string {
	if m.result.Aging == nil {
		return SubtitleStyle.Render("No payments in this input file.")
	}
	var b strings.Builder
	b.WriteString(SectionStyle.Render("RECEIVABLES AGING") + "\n")
	for _, bucket := range m.result.Aging.Buckets {
		b.WriteString(fmt.Sprintf("  %-8s %3d  %s\n",
			bucket.Label, bucket.Count, output.FormatCurrency(bucket.Amount)))
	}
	if !m.result.DSO.IsZero() {
		b.WriteString(fmt.Sprintf("  %s %s days\n", LabelStyle.Render("DSO:"), m.result.DSO.StringFixed(2)))
	}
	if len(m.result.Overdue) > 0 {
		b.WriteString(SectionStyle.Render("MOST OVERDUE") + "\n")
		limit := len(m.result.Overdue)
		if limit > 5 {
			limit = 5
		}
		for _, entry := range m.result.Overdue[:limit] {
			b.WriteString(fmt.Sprintf("  %-12s %s  %s\n",
				entry.Record.Reference,
				output.FormatCurrency(entry.Record.Amount),
				NegativeStyle.Render(fmt.Sprintf("%d days", entry.DaysOverdue))))
		}
	}
	return b.String()
}

func (m Model) renderHelp() string {
	var b strings.Builder
	b.WriteString(SectionStyle.Render("KEY BINDINGS") + "\n")
	for _, line := range []string{
		"h / 1   home overview",
		"c / 2   voyage compliance",
		"p / 3   FFA portfolio",
		"y / 4   payment analytics",
		"?       this help",
		"q       quit",
	} {
		b.WriteString("  " + line + "\n")
	}
	return b.String()
}
