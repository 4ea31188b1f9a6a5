package memory_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexpay/nexpay-backend/internal/models"
	"github.com/nexpay/nexpay-backend/internal/repository"
	"github.com/nexpay/nexpay-backend/internal/repository/memory"
)

const (
	aliceID      = "2"
	bobID        = "3"
	coffeeShopID = "4"
)

func totalBalance(dir repository.Directory) int64 {
	var sum int64
	for _, u := range dir.List() {
		sum += u.Balance
	}
	return sum
}

func TestTransferSuccess(t *testing.T) {
	store := demoStore()
	led := store.Ledger()
	dir := store.Directory()

	tx, err := led.Transfer(aliceID, coffeeShopID, 150)
	require.NoError(t, err)

	assert.Equal(t, "t6", tx.ID)
	assert.Equal(t, int64(150), tx.Amount)
	assert.Equal(t, models.TxnCompleted, tx.Status)
	assert.Equal(t, models.SettlementInstant, tx.SettlementMode)
	assert.Equal(t, "Alice", tx.FromUserName)
	assert.Equal(t, "Coffee Shop", tx.ToUserName)
	assert.False(t, tx.CreatedAt.IsZero())

	alice, _ := dir.GetByID(aliceID)
	shop, _ := dir.GetByID(coffeeShopID)
	assert.Equal(t, int64(4850), alice.Balance)
	assert.Equal(t, int64(15150), shop.Balance)
}

func TestTransferConservesTotalBalance(t *testing.T) {
	store := demoStore()
	before := totalBalance(store.Directory())

	_, err := store.Ledger().Transfer(bobID, coffeeShopID, 2500)
	require.NoError(t, err)

	assert.Equal(t, before, totalBalance(store.Directory()))
}

func TestTransferInsufficientFunds(t *testing.T) {
	store := demoStore()
	led := store.Ledger()
	dir := store.Directory()

	_, err := led.Transfer(bobID, coffeeShopID, 2501)
	assert.ErrorIs(t, err, models.ErrInsufficientFunds)

	bob, _ := dir.GetByID(bobID)
	shop, _ := dir.GetByID(coffeeShopID)
	assert.Equal(t, int64(2500), bob.Balance)
	assert.Equal(t, int64(15000), shop.Balance)
	assert.Len(t, led.ListAll(), 5)
}

func TestTransferInvalidAmount(t *testing.T) {
	store := demoStore()
	led := store.Ledger()

	for _, amount := range []int64{0, -5} {
		_, err := led.Transfer(aliceID, coffeeShopID, amount)
		assert.ErrorIs(t, err, models.ErrInvalidAmount)
	}

	alice, _ := store.Directory().GetByID(aliceID)
	assert.Equal(t, int64(5000), alice.Balance)
	assert.Len(t, led.ListAll(), 5)
}

func TestTransferUnknownParty(t *testing.T) {
	led := demoStore().Ledger()

	_, err := led.Transfer("999", coffeeShopID, 10)
	assert.ErrorIs(t, err, models.ErrUnknownParty)

	_, err = led.Transfer(aliceID, "999", 10)
	assert.ErrorIs(t, err, models.ErrUnknownParty)
}

func TestTransferToSelfRejected(t *testing.T) {
	store := demoStore()

	_, err := store.Ledger().Transfer(aliceID, aliceID, 10)
	assert.ErrorIs(t, err, models.ErrSelfTransfer)

	alice, _ := store.Directory().GetByID(aliceID)
	assert.Equal(t, int64(5000), alice.Balance)
}

func TestListAllNewestFirst(t *testing.T) {
	store := demoStore()
	led := store.Ledger()

	tx, err := led.Transfer(aliceID, coffeeShopID, 1)
	require.NoError(t, err)

	all := led.ListAll()
	require.Len(t, all, 6)
	assert.Equal(t, tx.ID, all[0].ID)
	for i := 1; i < len(all); i++ {
		assert.False(t, all[i].CreatedAt.After(all[i-1].CreatedAt),
			"history must be sorted newest first")
	}
}

func TestTransferStampsClockTime(t *testing.T) {
	users, txs := memory.DemoSeed("not-a-real-hash")
	fixed := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	store := memory.New(users, txs, memory.WithClock(func() time.Time { return fixed }))

	tx, err := store.Ledger().Transfer(aliceID, coffeeShopID, 10)
	require.NoError(t, err)
	assert.Equal(t, fixed, tx.CreatedAt)
}

func TestListAllIsIdempotent(t *testing.T) {
	led := demoStore().Ledger()

	first := led.ListAll()
	second := led.ListAll()
	assert.Equal(t, first, second)
}

func TestListByUserFiltersParticipants(t *testing.T) {
	led := demoStore().Ledger()

	alice := led.ListByUser(aliceID)
	require.Len(t, alice, 3)
	for _, tx := range alice {
		assert.True(t, tx.FromUserID == aliceID || tx.ToUserID == aliceID)
	}
	for i := 1; i < len(alice); i++ {
		assert.False(t, alice[i].CreatedAt.After(alice[i-1].CreatedAt))
	}

	assert.Empty(t, led.ListByUser("999"))
}

func TestBalancesNeverGoNegative(t *testing.T) {
	store := demoStore()
	led := store.Ledger()

	// Drain Bob, then keep trying.
	_, err := led.Transfer(bobID, coffeeShopID, 2500)
	require.NoError(t, err)
	_, err = led.Transfer(bobID, coffeeShopID, 1)
	assert.ErrorIs(t, err, models.ErrInsufficientFunds)

	for _, u := range store.Directory().List() {
		assert.GreaterOrEqual(t, u.Balance, int64(0))
	}
}

func TestConcurrentTransfers(t *testing.T) {
	store := demoStore()
	led := store.Ledger()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := led.Transfer(aliceID, bobID, 10)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	dir := store.Directory()
	alice, _ := dir.GetByID(aliceID)
	bob, _ := dir.GetByID(bobID)
	assert.Equal(t, int64(4000), alice.Balance)
	assert.Equal(t, int64(3500), bob.Balance)
	assert.Len(t, led.ListAll(), 105)
}
