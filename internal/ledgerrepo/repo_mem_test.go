package ledgerrepo

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/go-card/card-bank/internal/domain"
)

func seedLedger(base time.Time) *RepoMem {
	repo := NewRepoMem()

	repo.Append(domain.Transaction{
		Amount:      decimal.NewFromInt(100),
		Type:        domain.TypePurchase,
		Description: "groceries",
		CreatedAt:   base,
	})
	repo.Append(domain.Transaction{
		Amount:      decimal.NewFromInt(50),
		Type:        domain.TypeWithdraw,
		Description: "atm",
		CreatedAt:   base.Add(time.Minute),
	})
	repo.Append(domain.Transaction{
		Amount:      decimal.NewFromInt(30),
		Type:        domain.TypePurchase,
		Description: "coffee",
		CreatedAt:   base.Add(2 * time.Minute),
	})

	return repo
}

func TestAllKeepsInsertionOrder(t *testing.T) {
	base := time.Date(2023, time.March, 1, 12, 0, 0, 0, time.UTC)
	repo := seedLedger(base)

	all := repo.All()
	require.Len(t, all, 3)
	require.Equal(t, "groceries", all[0].Description)
	require.Equal(t, "atm", all[1].Description)
	require.Equal(t, "coffee", all[2].Description)
}

func TestAllReturnsCopies(t *testing.T) {
	base := time.Date(2023, time.March, 1, 12, 0, 0, 0, time.UTC)
	repo := seedLedger(base)

	all := repo.All()
	all[0].Description = "edited"

	reread := repo.All()
	require.Equal(t, "groceries", reread[0].Description)
}

func TestReadsAreIdempotent(t *testing.T) {
	base := time.Date(2023, time.March, 1, 12, 0, 0, 0, time.UTC)
	repo := seedLedger(base)

	first := repo.All()
	second := repo.All()

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repo.All() mismatch between consecutive reads (-first +second):\n%s", diff)
	}
}

func TestByType(t *testing.T) {
	base := time.Date(2023, time.March, 1, 12, 0, 0, 0, time.UTC)
	repo := seedLedger(base)

	purchases := repo.ByType(domain.TypePurchase)
	require.Len(t, purchases, 2)
	require.Equal(t, "groceries", purchases[0].Description)
	require.Equal(t, "coffee", purchases[1].Description)

	require.Empty(t, repo.ByType(domain.TypeInterest))
}

func TestSinceIsStrict(t *testing.T) {
	base := time.Date(2023, time.March, 1, 12, 0, 0, 0, time.UTC)
	repo := seedLedger(base)

	// Records at exactly the given instant are excluded.
	since := repo.Since(base)
	require.Len(t, since, 2)
	require.Equal(t, "atm", since[0].Description)

	require.Empty(t, repo.Since(base.Add(2*time.Minute)))
}

func TestSumByType(t *testing.T) {
	base := time.Date(2023, time.March, 1, 12, 0, 0, 0, time.UTC)
	repo := seedLedger(base)

	require.True(t, repo.SumByType(domain.TypePurchase).Equal(decimal.NewFromInt(130)))
	require.True(t, repo.SumByType(domain.TypeWithdraw).Equal(decimal.NewFromInt(50)))
	require.True(t, repo.SumByType(domain.TypeInterest).IsZero())
}

func TestSumMatchesByType(t *testing.T) {
	base := time.Date(2023, time.March, 1, 12, 0, 0, 0, time.UTC)
	repo := seedLedger(base)

	for _, transactionType := range domain.TransactionTypes {
		sum := decimal.Zero
		for _, tx := range repo.ByType(transactionType) {
			sum = sum.Add(tx.Amount)
		}

		require.True(t, repo.SumByType(transactionType).Equal(sum), "type %s", transactionType)
	}
}
