package store

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/MKhiriev/go-ledger-sync/internal/logger"
	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/semaphore"
)

// ledgerWeight caps how many handles can be out at once. LockLedger takes
// all of it.
const ledgerWeight = 1 << 20

// AccountStorePool hands out one [AccountStore] per account and serializes
// access to it. Handles nobody holds expire after the idle TTL.
//
// Every handle also holds one unit of a ledger-wide semaphore, so a whole
// ledger replacement (LockLedger) waits for all handles to be released and
// holds back new ones until it is done.
type AccountStorePool struct {
	db        *DB
	directory AccountDirectory
	handles   *cache.Cache
	ledger    *semaphore.Weighted
	mu        sync.Mutex
	logger    *logger.Logger
}

type pooledHandle struct {
	store *accountStore
	lock  *semaphore.Weighted
	refs  int
}

// NewAccountStorePool creates a pool over db. idleTTL <= 0 keeps handles
// forever.
func NewAccountStorePool(db *DB, directory AccountDirectory, idleTTL time.Duration, logger *logger.Logger) *AccountStorePool {
	expiration, cleanup := idleTTL, idleTTL
	if idleTTL <= 0 {
		expiration, cleanup = cache.NoExpiration, 0
	}

	return &AccountStorePool{
		db:        db,
		directory: directory,
		handles:   cache.New(expiration, cleanup),
		ledger:    semaphore.NewWeighted(ledgerWeight),
		logger:    logger,
	}
}

// Acquire returns the store of accountID once no other caller holds it.
// The account must exist in the directory. Blocks until the handle is free
// or ctx is done.
func (p *AccountStorePool) Acquire(ctx context.Context, accountID int64) (AccountStore, func(), error) {
	log := logger.FromContextOr(ctx, p.logger)

	if err := p.ledger.Acquire(ctx, 1); err != nil {
		log.Err(err).Str("func", "AccountStorePool.Acquire").Int64("account_id", accountID).Msg("gave up waiting for ledger lock")
		return nil, nil, fmt.Errorf("%w: %w", ErrAcquiringAccountStore, err)
	}

	if _, err := p.directory.GetAccountByID(ctx, accountID); err != nil {
		p.ledger.Release(1)
		return nil, nil, fmt.Errorf("%w: %w", ErrAcquiringAccountStore, err)
	}

	h := p.checkout(accountID)
	if err := h.lock.Acquire(ctx, 1); err != nil {
		p.checkin(accountID, h)
		p.ledger.Release(1)
		log.Err(err).Str("func", "AccountStorePool.Acquire").Int64("account_id", accountID).Msg("gave up waiting for account store")
		return nil, nil, fmt.Errorf("%w: %w", ErrAcquiringAccountStore, err)
	}

	var once sync.Once
	release := func() {
		once.Do(func() {
			h.lock.Release(1)
			p.checkin(accountID, h)
			p.ledger.Release(1)
		})
	}

	return h.store, release, nil
}

// LockLedger blocks until no account handle is held and keeps new Acquire
// calls waiting until the returned unlock func is called. A handle holder
// must not call it.
func (p *AccountStorePool) LockLedger(ctx context.Context) (func(), error) {
	if err := p.ledger.Acquire(ctx, ledgerWeight); err != nil {
		logger.FromContextOr(ctx, p.logger).Err(err).Str("func", "AccountStorePool.LockLedger").Msg("gave up waiting for ledger lock")
		return nil, fmt.Errorf("%w: %w", ErrAcquiringAccountStore, err)
	}

	var once sync.Once
	return func() {
		once.Do(func() { p.ledger.Release(ledgerWeight) })
	}, nil
}

// Len reports how many handles the pool currently caches.
func (p *AccountStorePool) Len() int {
	return p.handles.ItemCount()
}

func (p *AccountStorePool) checkout(accountID int64) *pooledHandle {
	p.mu.Lock()
	defer p.mu.Unlock()

	key := strconv.FormatInt(accountID, 10)

	var h *pooledHandle
	if v, ok := p.handles.Get(key); ok {
		h = v.(*pooledHandle)
	} else {
		h = &pooledHandle{
			store: newAccountStore(p.db, accountID),
			lock:  semaphore.NewWeighted(1),
		}
	}

	h.refs++
	p.handles.Set(key, h, cache.NoExpiration)
	return h
}

// checkin starts the idle timer once the last holder is gone.
func (p *AccountStorePool) checkin(accountID int64, h *pooledHandle) {
	p.mu.Lock()
	defer p.mu.Unlock()

	h.refs--
	if h.refs == 0 {
		p.handles.Set(strconv.FormatInt(accountID, 10), h, cache.DefaultExpiration)
	}
}
