// Package cardservice manages business logic layer of card accounts.
package cardservice

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-card/card-bank/internal/domain"
	"github.com/go-card/card-bank/pkg/clockpkg"
)

// Service is the card account registry. It creates card accounts and
// dispatches operations to the processor owning each card+ledger pair.
type Service struct {
	mu    sync.RWMutex
	cards map[string]*Processor

	clock     clockpkg.Clock
	newLedger func() Ledger
}

// New returns a card service. newLedger builds the ledger for each created
// card account.
func New(clock clockpkg.Clock, newLedger func() Ledger) *Service {
	return &Service{
		cards:     make(map[string]*Processor),
		clock:     clock,
		newLedger: newLedger,
	}
}

// Create validates the given fields, opens an active card account with a
// zero owed balance and returns its ID with a snapshot.
func (s *Service) Create(ctx context.Context, arg domain.CreateCardParams) (string, domain.CardSnapshot, error) {
	l := zerolog.Ctx(ctx)

	customer, err := domain.NewCustomer(arg.CustomerName, arg.CustomerEmail, arg.CustomerContact)
	if err != nil {
		l.Info().Err(err).Send()
		return "", domain.CardSnapshot{}, err
	}

	card, err := domain.NewCardAccount(customer, arg.ExpiresAt, arg.Number, arg.SecurityCode, s.clock.Now())
	if err != nil {
		l.Info().Err(err).Send()
		return "", domain.CardSnapshot{}, err
	}

	id := uuid.NewString()

	s.mu.Lock()
	s.cards[id] = NewProcessor(card, s.newLedger(), s.clock)
	s.mu.Unlock()

	return id, card.Snapshot(), nil
}

// Processor returns the processor owning the card with the given ID.
func (s *Service) Processor(cardID string) (*Processor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.cards[cardID]
	if !ok {
		return nil, domain.ErrCardNotFound
	}

	return p, nil
}

// Get returns a snapshot of the card with the given ID.
func (s *Service) Get(ctx context.Context, cardID string) (domain.CardSnapshot, error) {
	p, err := s.Processor(cardID)
	if err != nil {
		return domain.CardSnapshot{}, err
	}

	return p.Snapshot(), nil
}

// Pay parses the amount and applies the operation to the given card.
func (s *Service) Pay(ctx context.Context, cardID, amount string, transactionType domain.TransactionType, description string) error {
	l := zerolog.Ctx(ctx)

	p, err := s.Processor(cardID)
	if err != nil {
		return err
	}

	amountDecimal, err := decimal.NewFromString(amount)
	if err != nil {
		l.Info().Err(err).Str("amount", amount).Send()
		return domain.ErrInvalidAmount
	}

	return p.Pay(ctx, amountDecimal, transactionType, description)
}

// AddInterest applies the administrative interest path to the given card.
func (s *Service) AddInterest(ctx context.Context, cardID string, amount decimal.Decimal, description string) error {
	p, err := s.Processor(cardID)
	if err != nil {
		return err
	}

	return p.AddInterest(ctx, amount, description)
}

// SetStatus replaces the status of the given card.
func (s *Service) SetStatus(ctx context.Context, cardID string, status domain.Status) error {
	p, err := s.Processor(cardID)
	if err != nil {
		return err
	}

	p.SetStatus(status)

	return nil
}

// OwedBalance returns the owed balance of the given card.
func (s *Service) OwedBalance(ctx context.Context, cardID string) (decimal.Decimal, error) {
	p, err := s.Processor(cardID)
	if err != nil {
		return decimal.Decimal{}, err
	}

	return p.OwedBalance(), nil
}

// Transactions returns every transaction of the given card.
func (s *Service) Transactions(ctx context.Context, cardID string) ([]domain.Transaction, error) {
	p, err := s.Processor(cardID)
	if err != nil {
		return nil, err
	}

	return p.Transactions(), nil
}

// TransactionsByType returns the transactions of the given card and type.
func (s *Service) TransactionsByType(ctx context.Context, cardID string, transactionType domain.TransactionType) ([]domain.Transaction, error) {
	p, err := s.Processor(cardID)
	if err != nil {
		return nil, err
	}

	return p.TransactionsByType(transactionType), nil
}

// TransactionsSince returns the transactions of the given card applied
// strictly after the given instant.
func (s *Service) TransactionsSince(ctx context.Context, cardID string, since time.Time) ([]domain.Transaction, error) {
	p, err := s.Processor(cardID)
	if err != nil {
		return nil, err
	}

	return p.TransactionsSince(since), nil
}

// TotalAmountByType returns the total transaction amount of the given card
// and type.
func (s *Service) TotalAmountByType(ctx context.Context, cardID string, transactionType domain.TransactionType) (decimal.Decimal, error) {
	p, err := s.Processor(cardID)
	if err != nil {
		return decimal.Decimal{}, err
	}

	return p.TotalAmountByType(transactionType), nil
}
