// Package workers holds background jobs of the mobile server.
package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-ledger-sync/internal/logger"
)

// Pruner removes old backup snapshots. service.BackupService satisfies it.
type Pruner interface {
	Prune(ctx context.Context, keep int) (int, error)
}

// BackupPruner keeps the backup directory at most keep snapshots long,
// checking every interval. It is idle until Start is called.
type BackupPruner struct {
	pruner   Pruner
	keep     int
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewBackupPruner(pruner Pruner, keep int, interval time.Duration, logger *logger.Logger) *BackupPruner {
	return &BackupPruner{
		pruner:   pruner,
		keep:     keep,
		interval: interval,
		logger:   logger,
	}
}

// Start launches the pruning loop. It prunes once immediately. With keep or
// interval not positive, retention is unlimited and Start does nothing.
func (p *BackupPruner) Start() {
	if p.keep <= 0 || p.interval <= 0 {
		p.logger.Info().Str("func", "BackupPruner.Start").Msg("backup retention disabled")
		return
	}

	p.Stop()

	p.mu.Lock()
	ctx, cancel := context.WithCancel(p.logger.WithContext(context.Background()))
	p.cancel = cancel
	p.wg.Add(1)
	p.mu.Unlock()

	go func() {
		defer p.wg.Done()
		t := time.NewTicker(p.interval)
		defer t.Stop()

		p.prune(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				p.prune(ctx)
			}
		}
	}()
}

// Stop cancels the loop and waits for it to exit. Safe to call when not
// running.
func (p *BackupPruner) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	p.wg.Wait()
}

func (p *BackupPruner) prune(ctx context.Context) {
	removed, err := p.pruner.Prune(ctx, p.keep)
	if err != nil {
		p.logger.Err(err).Str("func", "BackupPruner.prune").Msg("pruning backups failed")
		return
	}
	if removed > 0 {
		p.logger.Info().Str("func", "BackupPruner.prune").Int("removed", removed).Int("kept", p.keep).Msg("old backups pruned")
	}
}
