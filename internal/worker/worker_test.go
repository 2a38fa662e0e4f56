package worker

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// submitEventually 佇列滿時重試，直到工作被接受
func submitEventually(t *testing.T, p Pool, task Task) {
	t.Helper()
	require.Eventually(t, func() bool { return p.Submit(task) }, time.Second, time.Millisecond)
}

func TestPoolRunsAllTasks(t *testing.T) {
	p := NewPool(3, nil)
	var count atomic.Int32
	for i := 0; i < 20; i++ {
		submitEventually(t, p, func() { count.Add(1) })
	}
	submitEventually(t, p, nil)
	p.Stop()
	require.Equal(t, int32(20), count.Load())
}

func TestPoolRecoversPanic(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	p := NewPool(0, zap.New(core))
	var ran atomic.Bool
	submitEventually(t, p, func() { panic("boom") })
	submitEventually(t, p, func() { ran.Store(true) })
	p.Stop()
	p.Stop()

	require.True(t, ran.Load())
	require.Equal(t, 1, logs.FilterMessage("worker task panicked").Len())
}

func TestPoolSubmitDoesNotBlockWhenFull(t *testing.T) {
	p := NewPool(1, nil)
	started := make(chan struct{})
	release := make(chan struct{})
	require.True(t, p.Submit(func() { close(started); <-release }))
	<-started

	// worker 忙碌中，佇列容量 1
	require.True(t, p.Submit(func() {}))
	require.False(t, p.Submit(func() {}))

	close(release)
	p.Stop()
}

func TestPoolSubmitAfterStop(t *testing.T) {
	p := NewPool(2, nil)
	p.Stop()
	require.NotPanics(t, func() {
		require.False(t, p.Submit(func() {}))
	})
}
