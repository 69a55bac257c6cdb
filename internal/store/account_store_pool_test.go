package store

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-ledger-sync/internal/logger"
	"github.com/MKhiriev/go-ledger-sync/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPool(t *testing.T, idleTTL time.Duration) (*AccountStorePool, int64) {
	t.Helper()

	db := openSQLiteLedger(t)
	dir := NewAccountDirectory(db, logger.Nop())
	id, err := dir.InsertAccount(context.Background(), models.Account{Name: "Cash"})
	require.NoError(t, err)

	return NewAccountStorePool(db, dir, idleTTL, logger.Nop()), id
}

func TestAccountStorePool_UnknownAccount(t *testing.T) {
	pool, _ := newTestPool(t, time.Minute)

	_, _, err := pool.Acquire(context.Background(), 777)
	assert.ErrorIs(t, err, ErrAcquiringAccountStore)
	assert.ErrorIs(t, err, ErrAccountNotFound)
	assert.Zero(t, pool.Len())
}

func TestAccountStorePool_ExclusiveAccess(t *testing.T) {
	pool, id := newTestPool(t, time.Minute)
	ctx := context.Background()

	s, release, err := pool.Acquire(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, s.AccountID())

	waitCtx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer cancel()
	_, _, err = pool.Acquire(waitCtx, id)
	assert.ErrorIs(t, err, ErrAcquiringAccountStore)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	release()
	release()

	s2, release2, err := pool.Acquire(ctx, id)
	require.NoError(t, err)
	defer release2()
	assert.Same(t, s, s2)
	assert.Equal(t, 1, pool.Len())
}

func TestAccountStorePool_ConcurrentWritersAreSerialized(t *testing.T) {
	pool, id := newTestPool(t, time.Minute)
	ctx := context.Background()

	var (
		wg      sync.WaitGroup
		holders atomic.Int32
		overlap atomic.Bool
	)

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			s, release, err := pool.Acquire(ctx, id)
			if !assert.NoError(t, err) {
				return
			}
			defer release()

			if holders.Add(1) > 1 {
				overlap.Store(true)
			}
			_, err = s.InsertTransaction(ctx, models.Transaction{
				Date:   models.NewDate(2024, 1, i+1),
				Amount: decimal.NewFromInt(int64(i)),
			})
			assert.NoError(t, err)
			holders.Add(-1)
		}(i)
	}
	wg.Wait()

	assert.False(t, overlap.Load())

	s, release, err := pool.Acquire(ctx, id)
	require.NoError(t, err)
	defer release()
	txs, err := s.GetAllTransactions(ctx)
	require.NoError(t, err)
	assert.Len(t, txs, 8)
}

func TestAccountStorePool_IdleHandlesExpire(t *testing.T) {
	pool, id := newTestPool(t, 20*time.Millisecond)

	_, release, err := pool.Acquire(context.Background(), id)
	require.NoError(t, err)

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, 1, pool.Len(), "held handles never expire")

	release()
	assert.Eventually(t, func() bool { return pool.Len() == 0 }, time.Second, 10*time.Millisecond)
}

func TestAccountStorePool_LockLedgerWaitsForHandles(t *testing.T) {
	pool, id := newTestPool(t, time.Minute)
	ctx := context.Background()

	_, release, err := pool.Acquire(ctx, id)
	require.NoError(t, err)

	waitCtx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer cancel()
	_, err = pool.LockLedger(waitCtx)
	assert.ErrorIs(t, err, ErrAcquiringAccountStore)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	release()

	unlock, err := pool.LockLedger(ctx)
	require.NoError(t, err)
	unlock()
	unlock()
}

func TestAccountStorePool_AcquireWaitsForLedgerLock(t *testing.T) {
	pool, id := newTestPool(t, time.Minute)
	ctx := context.Background()

	unlock, err := pool.LockLedger(ctx)
	require.NoError(t, err)

	waitCtx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer cancel()
	_, _, err = pool.Acquire(waitCtx, id)
	assert.ErrorIs(t, err, ErrAcquiringAccountStore)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	acquired := make(chan struct{})
	go func() {
		defer close(acquired)
		_, release, err := pool.Acquire(ctx, id)
		if assert.NoError(t, err) {
			release()
		}
	}()

	select {
	case <-acquired:
		t.Fatal("handle handed out while the ledger is locked")
	case <-time.After(30 * time.Millisecond):
	}

	unlock()
	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("handle not handed out after unlock")
	}
}
