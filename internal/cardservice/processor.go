package cardservice

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-card/card-bank/internal/domain"
	"github.com/go-card/card-bank/pkg/clockpkg"
)

// Ledger provides the append-only transaction log interface needed by the
// processor.
//
//go:generate mockgen -source processor.go -destination processor_mock.go -package cardservice
type Ledger interface {
	Append(tx domain.Transaction)
	All() []domain.Transaction
	ByType(transactionType domain.TransactionType) []domain.Transaction
	Since(since time.Time) []domain.Transaction
	SumByType(transactionType domain.TransactionType) decimal.Decimal
}

// Processor validates and applies balance changing operations against one
// card account, appending to its ledger.
//
// The processor exclusively owns the card and the ledger. Every operation
// runs under one mutex so validation and mutation form a single critical
// section and reads observe a consistent snapshot. The current instant is
// captured once per call.
type Processor struct {
	mu     sync.Mutex
	card   *domain.CardAccount
	ledger Ledger
	clock  clockpkg.Clock
}

// NewProcessor returns a processor owning the given card and ledger.
func NewProcessor(card *domain.CardAccount, ledger Ledger, clock clockpkg.Clock) *Processor {
	return &Processor{
		card:   card,
		ledger: ledger,
		clock:  clock,
	}
}

// Pay validates the operation against the current card state and, only if
// every check passes, applies the balance delta and appends the record.
// A failed call leaves the card and the ledger completely unchanged.
func (p *Processor) Pay(ctx context.Context, amount decimal.Decimal, transactionType domain.TransactionType, description string) error {
	l := zerolog.Ctx(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.clock.Now()

	if !amount.IsPositive() {
		l.Info().Err(domain.ErrNonPositiveAmount).Str("amount", amount.String()).Send()
		return domain.ErrNonPositiveAmount
	}

	switch transactionType {
	case domain.TypeWithdraw, domain.TypePurchase, domain.TypeTransfer:
		if amount.GreaterThan(p.card.AvailableCredit()) {
			l.Info().Err(domain.ErrInsufficientCredit).Str("amount", amount.String()).Send()
			return domain.ErrInsufficientCredit
		}
	case domain.TypePayment:
		if amount.GreaterThan(p.card.MaxCreditLimit()) {
			l.Info().Err(domain.ErrPaymentExceedsLimit).Str("amount", amount.String()).Send()
			return domain.ErrPaymentExceedsLimit
		}
	}

	if !p.card.IsActiveAndValid(now) {
		l.Info().Err(domain.ErrCardInactiveOrExpired).Str("status", string(p.card.Status())).Send()
		return domain.ErrCardInactiveOrExpired
	}

	var newBalance decimal.Decimal

	switch transactionType {
	case domain.TypeWithdraw:
		if amount.GreaterThan(p.card.CashWithdrawLimit()) {
			l.Info().Err(domain.ErrCashWithdrawLimitExceeded).Str("amount", amount.String()).Send()
			return domain.ErrCashWithdrawLimitExceeded
		}

		newBalance = p.card.OwedBalance().Add(amount)
	case domain.TypePurchase, domain.TypeTransfer:
		newBalance = p.card.OwedBalance().Add(amount)
	case domain.TypePayment:
		// Overpayment is rejected rather than driving the balance negative.
		if amount.GreaterThan(p.card.OwedBalance()) {
			l.Info().Err(domain.ErrPaymentExceedsBalance).Str("amount", amount.String()).Send()
			return domain.ErrPaymentExceedsBalance
		}

		newBalance = p.card.OwedBalance().Sub(amount)
	default:
		l.Info().Err(domain.ErrUnsupportedTransactionType).Str("type", string(transactionType)).Send()
		return domain.ErrUnsupportedTransactionType
	}

	if err := p.card.SetOwedBalance(newBalance); err != nil {
		l.Error().Err(err).Send()
		return err
	}

	p.ledger.Append(domain.Transaction{
		Amount:      amount,
		Type:        transactionType,
		Description: description,
		CreatedAt:   now,
	})

	return nil
}

// AddInterest is the administrative path: it validates only that the amount
// is positive and then unconditionally increases the owed balance, bypassing
// the status and limit gating of Pay. It may push the balance past the
// credit limit.
func (p *Processor) AddInterest(ctx context.Context, amount decimal.Decimal, description string) error {
	l := zerolog.Ctx(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.clock.Now()

	if !amount.IsPositive() {
		l.Info().Err(domain.ErrNonPositiveAmount).Str("amount", amount.String()).Send()
		return domain.ErrNonPositiveAmount
	}

	if err := p.card.SetOwedBalance(p.card.OwedBalance().Add(amount)); err != nil {
		l.Error().Err(err).Send()
		return err
	}

	p.ledger.Append(domain.Transaction{
		Amount:      amount,
		Type:        domain.TypeInterest,
		Description: description,
		CreatedAt:   now,
	})

	return nil
}

// SetStatus replaces the card status.
func (p *Processor) SetStatus(status domain.Status) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.card.SetStatus(status)
}

// OwedBalance returns the amount currently charged to the card.
func (p *Processor) OwedBalance() decimal.Decimal {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.card.OwedBalance()
}

// Snapshot returns the externally visible card state.
func (p *Processor) Snapshot() domain.CardSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.card.Snapshot()
}

// Transactions returns every applied transaction in order of application.
func (p *Processor) Transactions() []domain.Transaction {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.ledger.All()
}

// TransactionsByType returns the applied transactions of the given type.
func (p *Processor) TransactionsByType(transactionType domain.TransactionType) []domain.Transaction {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.ledger.ByType(transactionType)
}

// TransactionsSince returns the transactions applied strictly after the
// given instant.
func (p *Processor) TransactionsSince(since time.Time) []domain.Transaction {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.ledger.Since(since)
}

// TotalAmountByType returns the total amount of the transactions of the
// given type, zero if none match.
func (p *Processor) TotalAmountByType(transactionType domain.TransactionType) decimal.Decimal {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.ledger.SumByType(transactionType)
}
