// Package billingservice manages business logic layer of the monthly
// billing cycle.
package billingservice

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-card/card-bank/internal/domain"
	"github.com/go-card/card-bank/pkg/clockpkg"
)

// Billing parameters.
var (
	minPaymentRate   = decimal.NewFromFloat(0.05)
	lateInterestRate = decimal.NewFromFloat(0.015)
)

const (
	dueIn = 15 * 24 * time.Hour

	interestDescription    = "Monthly interest charge"
	billPaymentDescription = "Bill payment"
)

// CardService provides the card service layer interface needed by the
// billing service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package billingservice
type CardService interface {
	OwedBalance(ctx context.Context, cardID string) (decimal.Decimal, error)
	AddInterest(ctx context.Context, cardID string, amount decimal.Decimal, description string) error
	Pay(ctx context.Context, cardID, amount string, transactionType domain.TransactionType, description string) error
}

// Service facilitates billing cycle logic. Each call is a pure function of
// the current card state plus the clock instant; the billing cycle itself
// keeps no state.
type Service struct {
	cards CardService
	clock clockpkg.Clock
}

// New returns a billing service over the given card service.
func New(cards CardService, clock clockpkg.Clock) *Service {
	return &Service{cards: cards, clock: clock}
}

// GenerateMonthlyBill derives the statement figures from the current card
// state. lastBillDate must lie in the past; it is otherwise retained for
// future billing period logic and does not enter the computation.
func (s *Service) GenerateMonthlyBill(ctx context.Context, cardID string, lastBillDate time.Time) (domain.Statement, error) {
	l := zerolog.Ctx(ctx)

	now := s.clock.Now()

	if !lastBillDate.Before(now) {
		l.Info().Err(domain.ErrInvalidBillDate).Time("last_bill_date", lastBillDate).Send()
		return domain.Statement{}, domain.ErrInvalidBillDate
	}

	totalDue, err := s.cards.OwedBalance(ctx, cardID)
	if err != nil {
		return domain.Statement{}, err
	}

	minPayment := totalDue.Mul(minPaymentRate)
	if minPayment.IsNegative() {
		minPayment = decimal.Zero
	}

	return domain.Statement{
		TotalDue:   totalDue,
		MinPayment: minPayment,
		DueDate:    now.Add(dueIn),
	}, nil
}

// ApplyInterestIfLate accrues late interest on the owed balance when the due
// date has passed. It is a no-op when the bill is not overdue or nothing is
// owed. Repeated application at the same instant accrues again; idempotent
// scheduling is the caller's responsibility.
func (s *Service) ApplyInterestIfLate(ctx context.Context, cardID string, dueDate time.Time) error {
	now := s.clock.Now()

	if !now.After(dueDate) {
		return nil
	}

	owed, err := s.cards.OwedBalance(ctx, cardID)
	if err != nil {
		return err
	}

	if !owed.IsPositive() {
		return nil
	}

	interest := owed.Mul(lateInterestRate)

	return s.cards.AddInterest(ctx, cardID, interest, interestDescription)
}

// PayBill forwards the amount as a bill payment, inheriting all of the
// processor validation and failure modes.
func (s *Service) PayBill(ctx context.Context, cardID, amount string) error {
	return s.cards.Pay(ctx, cardID, amount, domain.TypePayment, billPaymentDescription)
}
