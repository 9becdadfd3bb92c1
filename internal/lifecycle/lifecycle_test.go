package lifecycle

import (
	"context"
	"errors"
	"os"
	"sync"
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type mockService struct {
	started atomic.Bool
	stopped atomic.Bool
	startFn func() error
}

func (m *mockService) Start() error {
	m.started.Store(true)
	if m.startFn != nil {
		return m.startFn()
	}
	// Block until stopped
	for !m.stopped.Load() {
		time.Sleep(10 * time.Millisecond)
	}
	return nil
}

func (m *mockService) Stop() {
	m.stopped.Store(true)
}

// funcService adapts a start/stop function pair into a Service.
type funcService struct {
	startFn func() error
	stopFn  func()
}

func (f *funcService) Start() error { return f.startFn() }

func (f *funcService) Stop() { f.stopFn() }

func runAsync(lc *Lifecycle, ctx context.Context) <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- lc.Run(ctx)
	}()
	return done
}

func waitDone(t *testing.T, done <-chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("lifecycle did not shut down in time")
		return nil
	}
}

func TestLifecycleStartsAndStopsServices(t *testing.T) {
	lc := New(zaptest.NewLogger(t))

	svc1 := &mockService{}
	svc2 := &mockService{}
	lc.Add("svc1", svc1)
	lc.Add("svc2", svc2)

	ctx, cancel := context.WithCancel(context.Background())
	done := runAsync(lc, ctx)

	assert.Eventually(t, func() bool {
		return svc1.started.Load() && svc2.started.Load()
	}, 2*time.Second, 10*time.Millisecond)

	cancel()

	assert.NoError(t, waitDone(t, done))
	assert.True(t, svc1.stopped.Load())
	assert.True(t, svc2.stopped.Load())
}

func TestLifecycleStopsWhenServiceFinishes(t *testing.T) {
	lc := New(zaptest.NewLogger(t))

	other := &mockService{}
	finished := &mockService{startFn: func() error { return nil }}
	lc.Add("other", other)
	lc.Add("finished", finished)

	assert.NoError(t, waitDone(t, runAsync(lc, context.Background())))
	assert.True(t, other.stopped.Load())
	assert.True(t, finished.stopped.Load())
}

func TestLifecycleReturnsServiceError(t *testing.T) {
	lc := New(zaptest.NewLogger(t))

	boom := errors.New("boom")
	lc.Add("failing", &mockService{startFn: func() error { return boom }})

	err := waitDone(t, runAsync(lc, context.Background()))
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "service failing")
}

func TestLifecycleStopsInReverseOrder(t *testing.T) {
	lc := New(zaptest.NewLogger(t))

	var mu sync.Mutex
	var order []string
	record := func(name string) func() {
		return func() {
			mu.Lock()
			defer mu.Unlock()
			order = append(order, name)
		}
	}
	block := make(chan struct{})
	lc.Add("first", &funcService{startFn: func() error { <-block; return nil }, stopFn: record("first")})
	lc.Add("second", &funcService{startFn: func() error { return nil }, stopFn: record("second")})

	require.NoError(t, waitDone(t, runAsync(lc, context.Background())))
	close(block)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"second", "first"}, order)
}

func TestLifecycleStopsOnSignal(t *testing.T) {
	lc := New(zaptest.NewLogger(t))
	lc.signals = []os.Signal{syscall.SIGUSR1}

	svc := &mockService{}
	lc.Add("svc", svc)
	done := runAsync(lc, context.Background())

	assert.Eventually(t, svc.started.Load, 2*time.Second, 10*time.Millisecond)
	require.NoError(t, syscall.Kill(syscall.Getpid(), syscall.SIGUSR1))

	assert.NoError(t, waitDone(t, done))
	assert.True(t, svc.stopped.Load())
}

func TestLifecycleWithoutServices(t *testing.T) {
	lc := New(zaptest.NewLogger(t))
	assert.NoError(t, lc.Run(context.Background()))
}
