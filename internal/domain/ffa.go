package domain

import "github.com/shopspring/decimal"

// Direction is the side of a forward freight agreement position.
type Direction string

const (
	DirectionLong  Direction = "long"
	DirectionShort Direction = "short"
)

// Sign returns +1 for long and -1 for short.
func (d Direction) Sign() decimal.Decimal {
	if d == DirectionShort {
		return decimal.NewFromInt(-1)
	}
	return decimal.NewFromInt(1)
}

// FFAPosition is an open forward freight agreement position. Prices are in
// USD per day (or per tonne for voyage routes); LotSize converts one price
// point into settlement currency.
type FFAPosition struct {
	Route        string          `yaml:"route" json:"route"`
	EntryPrice   decimal.Decimal `yaml:"entry_price" json:"entry_price"`
	CurrentPrice decimal.Decimal `yaml:"current_price" json:"current_price"`
	Quantity     decimal.Decimal `yaml:"quantity" json:"quantity"`
	LotSize      decimal.Decimal `yaml:"lot_size" json:"lot_size"`
	Direction    Direction       `yaml:"direction" json:"direction"`
	DaysToExpiry int             `yaml:"days_to_expiry" json:"days_to_expiry"`
}

// Notional is the position's current market value: quantity x lot size x
// current price, always positive regardless of direction.
func (p FFAPosition) Notional() decimal.Decimal {
	return p.Quantity.Mul(p.LotSize).Mul(p.CurrentPrice)
}

// SignedNotional is the notional with the direction's sign applied.
func (p FFAPosition) SignedNotional() decimal.Decimal {
	return p.Notional().Mul(p.Direction.Sign())
}
