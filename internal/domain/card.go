// Package domain provides defenitions of all entities.
package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrCardNotFound indicates that the card account is not found.
	ErrCardNotFound = errors.New("card not found")
	// ErrInvalidCardNumber indicates that the card number is not 16 characters long.
	ErrInvalidCardNumber = errors.New("card number must be 16 characters long")
	// ErrInvalidSecurityCode indicates that the security code is not 3 characters long.
	ErrInvalidSecurityCode = errors.New("security code must be 3 characters long")
	// ErrInvalidExpiry indicates that the expiry is not in the future.
	ErrInvalidExpiry = errors.New("expiry must be in the future")
	// ErrInvalidCustomer indicates that the card has no owning customer.
	ErrInvalidCustomer = errors.New("card must have a customer")
	// ErrInvalidBalance indicates an attempt to set a negative owed balance.
	ErrInvalidBalance = errors.New("owed balance must not be negative")
)

// Status represents the lifecycle state of a card account.
type Status string

// Constants for all card account statuses.
const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
	StatusBlocked  Status = "BLOCKED"
	StatusDeleted  Status = "DELETED"
)

// Statuses holds all card account statuses.
var Statuses = []Status{
	StatusActive,
	StatusInactive,
	StatusBlocked,
	StatusDeleted,
}

// IsSupportedStatus returns true if the status is known.
func IsSupportedStatus(status string) bool {
	for _, s := range Statuses {
		if string(s) == status {
			return true
		}
	}

	return false
}

// Default card policy. Fixed per card at construction time.
var (
	DefaultMaxCreditLimit      = decimal.NewFromInt(100000)
	DefaultCashWithdrawPercent = decimal.NewFromInt(10)
)

var oneHundred = decimal.NewFromInt(100)

// CardAccount is the credit card entity.
//
// Identity and policy are immutable after construction. The owed balance and
// the status mutate over the card lifetime through the transaction processor.
// The customer reference is shared, not owned; the card never mutates it.
type CardAccount struct {
	number       string
	securityCode string
	expiresAt    time.Time
	customer     *Customer

	maxCreditLimit      decimal.Decimal
	cashWithdrawPercent decimal.Decimal

	owedBalance decimal.Decimal
	status      Status
}

// NewCardAccount validates the identity fields against the given instant and
// returns an active card with a zero owed balance.
func NewCardAccount(customer *Customer, expiresAt time.Time, number, securityCode string, now time.Time) (*CardAccount, error) {
	if customer == nil {
		return nil, ErrInvalidCustomer
	}

	if len(number) != 16 {
		return nil, ErrInvalidCardNumber
	}

	if len(securityCode) != 3 {
		return nil, ErrInvalidSecurityCode
	}

	if !expiresAt.After(now) {
		return nil, ErrInvalidExpiry
	}

	return &CardAccount{
		number:              number,
		securityCode:        securityCode,
		expiresAt:           expiresAt,
		customer:            customer,
		maxCreditLimit:      DefaultMaxCreditLimit,
		cashWithdrawPercent: DefaultCashWithdrawPercent,
		owedBalance:         decimal.Zero,
		status:              StatusActive,
	}, nil
}

// Number returns the card number.
func (c *CardAccount) Number() string { return c.number }

// SecurityCode returns the card security code.
func (c *CardAccount) SecurityCode() string { return c.securityCode }

// ExpiresAt returns the card expiry instant.
func (c *CardAccount) ExpiresAt() time.Time { return c.expiresAt }

// Customer returns the owning customer record.
func (c *CardAccount) Customer() *Customer { return c.customer }

// Status returns the current card status.
func (c *CardAccount) Status() Status { return c.status }

// OwedBalance returns the amount currently charged to the card.
func (c *CardAccount) OwedBalance() decimal.Decimal { return c.owedBalance }

// MaxCreditLimit returns the card credit limit.
func (c *CardAccount) MaxCreditLimit() decimal.Decimal { return c.maxCreditLimit }

// AvailableCredit returns the credit left for balance increasing operations.
func (c *CardAccount) AvailableCredit() decimal.Decimal {
	return c.maxCreditLimit.Sub(c.owedBalance)
}

// CashWithdrawLimit returns the cash withdrawal sub-limit, a fixed
// percentage of the available credit.
func (c *CardAccount) CashWithdrawLimit() decimal.Decimal {
	return c.AvailableCredit().Mul(c.cashWithdrawPercent).Div(oneHundred)
}

// IsActiveAndValid returns true if the card is active and not expired at the
// given instant.
func (c *CardAccount) IsActiveAndValid(now time.Time) bool {
	return c.status == StatusActive && now.Before(c.expiresAt)
}

// SetOwedBalance replaces the owed balance.
//
// Negative balances are rejected so owedBalance >= 0 holds at all times.
// The upper bound is not checked here: the administrative interest path may
// legitimately push the balance past the credit limit, so <= maxCreditLimit
// is enforced by the processor validation only.
func (c *CardAccount) SetOwedBalance(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrInvalidBalance
	}

	c.owedBalance = amount

	return nil
}

// SetStatus replaces the card status. Any status is reachable from any
// status; no transition table is enforced.
func (c *CardAccount) SetStatus(status Status) {
	c.status = status
}

// Snapshot returns a read-only copy of the externally visible card state.
func (c *CardAccount) Snapshot() CardSnapshot {
	return CardSnapshot{
		MaskedNumber:      maskNumber(c.number),
		Status:            c.status,
		OwedBalance:       c.owedBalance,
		MaxCreditLimit:    c.maxCreditLimit,
		AvailableCredit:   c.AvailableCredit(),
		CashWithdrawLimit: c.CashWithdrawLimit(),
		ExpiresAt:         c.expiresAt,
		CustomerName:      c.customer.Name(),
	}
}

// CardSnapshot holds the externally visible card state with a masked number.
type CardSnapshot struct {
	MaskedNumber      string          `json:"card_number"`
	Status            Status          `json:"status"`
	OwedBalance       decimal.Decimal `json:"owed_balance"`
	MaxCreditLimit    decimal.Decimal `json:"max_credit_limit"`
	AvailableCredit   decimal.Decimal `json:"available_credit"`
	CashWithdrawLimit decimal.Decimal `json:"cash_withdraw_limit"`
	ExpiresAt         time.Time       `json:"expires_at"`
	CustomerName      string          `json:"customer_name"`
}

func maskNumber(number string) string {
	if len(number) <= 4 {
		return number
	}

	return strings.Repeat("*", len(number)-4) + number[len(number)-4:]
}

// CreateCardParams holds the fields required to open a card account.
type CreateCardParams struct {
	CustomerName    string
	CustomerEmail   string
	CustomerContact string
	ExpiresAt       time.Time
	Number          string
	SecurityCode    string
}
