// Package ledgerrepo manages repository layer of the transaction ledger.
package ledgerrepo

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/go-card/card-bank/internal/domain"
)

// RepoMem is an in-memory append-only transaction log for one card account.
//
// Records are kept in insertion order, which equals the chronological order
// of application. Queries return copies so callers cannot edit or remove
// applied records.
type RepoMem struct {
	mu           sync.RWMutex
	transactions []domain.Transaction
}

// NewRepoMem returns an empty ledger.
func NewRepoMem() *RepoMem {
	return &RepoMem{transactions: []domain.Transaction{}}
}

// Append adds the record to the end of the ledger.
func (r *RepoMem) Append(tx domain.Transaction) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.transactions = append(r.transactions, tx)
}

// All returns every record in insertion order.
func (r *RepoMem) All() []domain.Transaction {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]domain.Transaction, len(r.transactions))
	copy(items, r.transactions)

	return items
}

// ByType returns the records of the given type in insertion order.
func (r *RepoMem) ByType(transactionType domain.TransactionType) []domain.Transaction {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := []domain.Transaction{}

	for _, tx := range r.transactions {
		if tx.Type == transactionType {
			items = append(items, tx)
		}
	}

	return items
}

// Since returns the records created strictly after the given instant.
func (r *RepoMem) Since(since time.Time) []domain.Transaction {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := []domain.Transaction{}

	for _, tx := range r.transactions {
		if tx.CreatedAt.After(since) {
			items = append(items, tx)
		}
	}

	return items
}

// SumByType returns the total amount of the records of the given type,
// zero if none match.
func (r *RepoMem) SumByType(transactionType domain.TransactionType) decimal.Decimal {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := decimal.Zero

	for _, tx := range r.transactions {
		if tx.Type == transactionType {
			total = total.Add(tx.Amount)
		}
	}

	return total
}
