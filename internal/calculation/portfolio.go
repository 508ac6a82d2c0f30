package calculation

import (
	"sort"

	"github.com/marisk/marisk/internal/domain"
	"github.com/shopspring/decimal"
)

// RouteExposure is the signed notional a portfolio carries on one route and
// its share of the gross book.
type RouteExposure struct {
	Route           string          `json:"route"`
	NetNotional     decimal.Decimal `json:"netNotional"`
	ShareOfGrossPct decimal.Decimal `json:"shareOfGrossPct"`
}

// PortfolioRiskResult aggregates exposure across a book of FFA positions.
type PortfolioRiskResult struct {
	Positions     int             `json:"positions"`
	LongNotional  decimal.Decimal `json:"longNotional"`
	ShortNotional decimal.Decimal `json:"shortNotional"`
	NetNotional   decimal.Decimal `json:"netNotional"`
	GrossNotional decimal.Decimal `json:"grossNotional"`
	TotalMTM      decimal.Decimal `json:"totalMtm"`
	// Concentration lists routes by absolute net exposure, largest first.
	Concentration []RouteExposure `json:"concentration"`
}

// CalculatePortfolioRisk nets exposure per route and totals long, short,
// net and gross notional across the book.
func (ce *CalculationEngine) CalculatePortfolioRisk(positions []domain.FFAPosition) PortfolioRiskResult {
	result := PortfolioRiskResult{Positions: len(positions)}
	byRoute := make(map[string]decimal.Decimal)

	for _, p := range positions {
		notional := p.Notional()
		if p.Direction == domain.DirectionShort {
			result.ShortNotional = result.ShortNotional.Add(notional)
		} else {
			result.LongNotional = result.LongNotional.Add(notional)
		}
		byRoute[p.Route] = byRoute[p.Route].Add(p.SignedNotional())
		result.TotalMTM = result.TotalMTM.Add(ce.CalculateMTM(p).MarkToMarket)
	}

	result.LongNotional = result.LongNotional.Round(2)
	result.ShortNotional = result.ShortNotional.Round(2)
	result.NetNotional = result.LongNotional.Sub(result.ShortNotional).Round(2)
	result.GrossNotional = result.LongNotional.Add(result.ShortNotional).Round(2)
	result.TotalMTM = result.TotalMTM.Round(2)

	for route, net := range byRoute {
		exposure := RouteExposure{Route: route, NetNotional: net.Round(2)}
		if result.GrossNotional.IsPositive() {
			exposure.ShareOfGrossPct = net.Abs().Div(result.GrossNotional).Mul(decimal.NewFromInt(100)).Round(2)
		}
		result.Concentration = append(result.Concentration, exposure)
	}
	sort.Slice(result.Concentration, func(i, j int) bool {
		a, b := result.Concentration[i], result.Concentration[j]
		if !a.NetNotional.Abs().Equal(b.NetNotional.Abs()) {
			return a.NetNotional.Abs().GreaterThan(b.NetNotional.Abs())
		}
		return a.Route < b.Route
	})
	return result
}
