package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrInvalidBillDate indicates that the last bill date is not in the past.
var ErrInvalidBillDate = errors.New("last bill date must be in the past")

// Statement holds the monthly bill figures derived from the current card state.
type Statement struct {
	TotalDue   decimal.Decimal `json:"total_due"`
	MinPayment decimal.Decimal `json:"min_payment"`
	DueDate    time.Time       `json:"due_date"`
}
