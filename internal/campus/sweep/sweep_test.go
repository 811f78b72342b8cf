package sweep

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/colonyops/campus/internal/core/kv"
)

type countingKV struct {
	kv.KV
	sweeps atomic.Int32
}

func (c *countingKV) SweepExpired(context.Context) error {
	c.sweeps.Add(1)
	return nil
}

func TestStart_SweepsUntilCancelled(t *testing.T) {
	store := &countingKV{}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		Start(ctx, store, time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return store.sweeps.Load() >= 2 }, time.Second, time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweep did not stop after cancel")
	}
}

type plainKV struct{ kv.KV }

func TestStart_NonSweeperReturns(t *testing.T) {
	done := make(chan struct{})
	go func() {
		Start(context.Background(), plainKV{}, time.Millisecond)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Start should return for backends without SweepExpired")
	}
}
