package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the settlement state of a payment record. The unpaid set
// is closed: only records in it participate in aging and overdue analysis.
type PaymentStatus string

const (
	StatusPending    PaymentStatus = "pending"
	StatusOverdue    PaymentStatus = "overdue"
	StatusDisputed   PaymentStatus = "disputed"
	StatusPaid       PaymentStatus = "paid"
	StatusCancelled  PaymentStatus = "cancelled"
	StatusWrittenOff PaymentStatus = "written_off"
)

// Unpaid reports whether the status belongs to the unpaid set.
func (s PaymentStatus) Unpaid() bool {
	switch s {
	case StatusPending, StatusOverdue, StatusDisputed:
		return true
	}
	return false
}

// PaymentKind distinguishes money owed to us from money we owe.
type PaymentKind string

const (
	KindReceivable PaymentKind = "receivable"
	KindPayable    PaymentKind = "payable"
)

// PaymentRecord is a single invoice-level payment obligation.
type PaymentRecord struct {
	Reference    string          `yaml:"reference" json:"reference"`
	Counterparty string          `yaml:"counterparty" json:"counterparty"`
	Amount       decimal.Decimal `yaml:"amount" json:"amount"`
	Currency     string          `yaml:"currency" json:"currency"`
	DueDate      time.Time       `yaml:"due_date" json:"due_date"`
	Status       PaymentStatus   `yaml:"status" json:"status"`
	Kind         PaymentKind     `yaml:"kind" json:"kind"`
}

// OverdueDays is the number of whole days the record is past due at the
// reference date. Zero or negative means not yet due.
func (r PaymentRecord) OverdueDays(reference time.Time) int {
	return int(reference.Sub(r.DueDate).Hours() / 24)
}

// ProjectionFrequency selects the calendar bucket used by the cash-flow
// projection.
type ProjectionFrequency string

const (
	FrequencyWeekly  ProjectionFrequency = "weekly"
	FrequencyMonthly ProjectionFrequency = "monthly"
)
