package cron

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingCleaner struct {
	calls atomic.Int32
	days  atomic.Int32
}

func (c *countingCleaner) CleanupOldLogs(days int) (int64, error) {
	c.calls.Add(1)
	c.days.Store(int32(days))
	return 0, nil
}

func TestStartCleanupTask_RunsImmediatelyAndOnTick(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := &countingCleaner{}
	StartCleanupTask(ctx, c, 30, 10*time.Millisecond)

	assert.Eventually(t, func() bool { return c.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
	assert.EqualValues(t, 30, c.days.Load())
}

func TestStartCleanupTask_Disabled(t *testing.T) {
	c := &countingCleaner{}
	StartCleanupTask(context.Background(), c, 0, time.Millisecond)

	time.Sleep(20 * time.Millisecond)
	assert.Zero(t, c.calls.Load())
}

func TestStartCleanupTask_StopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	c := &countingCleaner{}
	StartCleanupTask(ctx, c, 7, 5*time.Millisecond)

	assert.Eventually(t, func() bool { return c.calls.Load() >= 1 }, time.Second, time.Millisecond)
	cancel()
	time.Sleep(20 * time.Millisecond)
	stopped := c.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, stopped, c.calls.Load())
}
