package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-ledger-sync/internal/logger"
	"github.com/stretchr/testify/assert"
)

type countingPruner struct {
	calls atomic.Int32
	keep  atomic.Int32
	err   error
}

func (c *countingPruner) Prune(_ context.Context, keep int) (int, error) {
	c.calls.Add(1)
	c.keep.Store(int32(keep))
	return 1, c.err
}

func TestBackupPruner_PrunesImmediatelyAndOnTick(t *testing.T) {
	pruner := &countingPruner{}
	p := NewBackupPruner(pruner, 5, 10*time.Millisecond, logger.Nop())

	p.Start()
	assert.Eventually(t, func() bool { return pruner.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
	p.Stop()

	assert.Equal(t, int32(5), pruner.keep.Load())

	stopped := pruner.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, stopped, pruner.calls.Load(), "no prune after Stop")
}

func TestBackupPruner_Disabled(t *testing.T) {
	tests := []struct {
		name     string
		keep     int
		interval time.Duration
	}{
		{name: "keep zero", keep: 0, interval: time.Millisecond},
		{name: "interval zero", keep: 3, interval: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pruner := &countingPruner{}
			p := NewBackupPruner(pruner, tt.keep, tt.interval, logger.Nop())

			p.Start()
			time.Sleep(10 * time.Millisecond)
			p.Stop()

			assert.Zero(t, pruner.calls.Load())
		})
	}
}

func TestBackupPruner_ErrorsKeepLoopAlive(t *testing.T) {
	pruner := &countingPruner{err: errors.New("permission denied")}
	p := NewBackupPruner(pruner, 1, 5*time.Millisecond, logger.Nop())

	p.Start()
	defer p.Stop()

	assert.Eventually(t, func() bool { return pruner.calls.Load() >= 2 }, time.Second, time.Millisecond)
}

func TestBackupPruner_RestartAndDoubleStop(t *testing.T) {
	pruner := &countingPruner{}
	p := NewBackupPruner(pruner, 2, time.Hour, logger.Nop())

	p.Start()
	p.Start()
	assert.Eventually(t, func() bool { return pruner.calls.Load() == 2 }, time.Second, time.Millisecond)

	p.Stop()
	p.Stop()
}
