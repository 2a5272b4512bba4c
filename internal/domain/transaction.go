package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidAmount indicates that the amount is not a valid decimal number.
	ErrInvalidAmount = errors.New("amount is not a valid number")
	// ErrNonPositiveAmount indicates that the amount is zero or negative.
	ErrNonPositiveAmount = errors.New("amount must be positive")
	// ErrCardInactiveOrExpired indicates that the card is not active or past expiry.
	ErrCardInactiveOrExpired = errors.New("card is inactive or expired")
	// ErrInsufficientCredit indicates that the amount exceeds the available credit.
	ErrInsufficientCredit = errors.New("amount exceeds available credit")
	// ErrPaymentExceedsLimit indicates that the payment exceeds the credit limit.
	ErrPaymentExceedsLimit = errors.New("payment exceeds the credit limit")
	// ErrPaymentExceedsBalance indicates that the payment exceeds the owed balance.
	ErrPaymentExceedsBalance = errors.New("payment exceeds the owed balance")
	// ErrCashWithdrawLimitExceeded indicates that the amount exceeds the cash withdrawal sub-limit.
	ErrCashWithdrawLimitExceeded = errors.New("amount exceeds the cash withdrawal limit")
	// ErrUnsupportedTransactionType indicates that the type has no balance update rule.
	ErrUnsupportedTransactionType = errors.New("transaction type is not supported")
)

// TransactionType determines the balance delta sign and the validation rule
// applied by the processor.
type TransactionType string

// Constants for all transaction types.
const (
	TypeWithdraw TransactionType = "WITHDRAW"
	TypePurchase TransactionType = "PURCHASE"
	TypePayment  TransactionType = "PAYMENT"
	TypeTransfer TransactionType = "TRANSFER"
	TypeInterest TransactionType = "INTEREST"
	TypeDeposit  TransactionType = "DEPOSIT"
)

// TransactionTypes holds all transaction types.
var TransactionTypes = []TransactionType{
	TypeWithdraw,
	TypePurchase,
	TypePayment,
	TypeTransfer,
	TypeInterest,
	TypeDeposit,
}

// IsSupportedTransactionType returns true if the type is known.
func IsSupportedTransactionType(transactionType string) bool {
	for _, t := range TransactionTypes {
		if string(t) == transactionType {
			return true
		}
	}

	return false
}

// Transaction holds one applied balance change. Immutable once created.
type Transaction struct {
	Amount      decimal.Decimal `json:"amount"`
	Type        TransactionType `json:"type"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
}
