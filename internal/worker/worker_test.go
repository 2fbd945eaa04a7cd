package worker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CrashSite_Go/internal/domain"
	"github.com/osse101/CrashSite_Go/internal/job"
	"github.com/osse101/CrashSite_Go/internal/testing/leaktest"
)

type testJob struct {
	executed *int32
}

func (j *testJob) Process(ctx context.Context) error {
	atomic.AddInt32(j.executed, 1)
	return nil
}

func TestPool(t *testing.T) {
	var executed int32
	pool := NewPool(2, 10)
	pool.Start()

	job := &testJob{executed: &executed}
	pool.Enqueue(job)
	pool.Enqueue(job)
	pool.Enqueue(JobFunc(func(ctx context.Context) error {
		atomic.AddInt32(&executed, 1)
		return errors.New("logged, not fatal")
	}))

	pool.Stop()
	assert.Equal(t, int32(3), atomic.LoadInt32(&executed), "queued jobs are drained on stop")
}

func TestPool_TryEnqueueFull(t *testing.T) {
	pool := NewPool(1, 1)
	assert.True(t, pool.TryEnqueue(JobFunc(func(ctx context.Context) error { return nil })))
	assert.False(t, pool.TryEnqueue(JobFunc(func(ctx context.Context) error { return nil })), "no workers started, queue of one is full")
	pool.Start()
	pool.Stop()
}

// MockJobService is a testify mock of job.Service
type MockJobService struct {
	mock.Mock
}

func (m *MockJobService) List(ctx context.Context) []job.View {
	return m.Called(ctx).Get(0).([]job.View)
}

func (m *MockJobService) Assign(ctx context.Context, id domain.JobID, n int) error {
	return m.Called(ctx, id, n).Error(0)
}

func (m *MockJobService) Unassign(ctx context.Context, id domain.JobID, n int) error {
	return m.Called(ctx, id, n).Error(0)
}

func (m *MockJobService) Construct(ctx context.Context, id domain.BuildingID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockJobService) Produce(ctx context.Context, elapsed time.Duration) ([]job.Output, error) {
	args := m.Called(ctx, elapsed)
	return nil, args.Error(1)
}

type countingSaver struct {
	mu    sync.Mutex
	saves int
	err   error
}

func (c *countingSaver) Load(ctx context.Context) bool { return false }

func (c *countingSaver) Save(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.saves++
	return c.err
}

func (c *countingSaver) Shutdown(ctx context.Context) error { return nil }

func (c *countingSaver) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.saves
}

func TestProductionWorker(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)

	jobs := new(MockJobService)
	var calls int32
	jobs.On("Produce", mock.Anything, mock.AnythingOfType("time.Duration")).
		Run(func(args mock.Arguments) { atomic.AddInt32(&calls, 1) }).
		Return(nil, nil)

	w := NewProductionWorker(jobs, 10*time.Millisecond)
	w.Start(context.Background())
	w.Start(context.Background())

	require.Eventually(t, func() bool { return atomic.LoadInt32(&calls) >= 3 }, time.Second, 5*time.Millisecond)
	require.NoError(t, w.Shutdown(context.Background()))
	require.NoError(t, w.Shutdown(context.Background()), "shutdown is idempotent")

	checker.Check(0)
}

func TestAutosaveWorker(t *testing.T) {
	saver := &countingSaver{err: errors.New("disk full")}
	w := NewAutosaveWorker(saver, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	w.Start(ctx)
	require.Eventually(t, func() bool { return saver.count() >= 2 }, time.Second, 5*time.Millisecond, "failed saves are retried on the next tick")

	cancel()
	require.NoError(t, w.Shutdown(context.Background()))
	after := saver.count()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, saver.count())
}

func TestShutdown_Timeout(t *testing.T) {
	block := make(chan struct{})
	jobs := new(MockJobService)
	jobs.On("Produce", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { <-block }).
		Return(nil, nil)

	w := NewProductionWorker(jobs, 5*time.Millisecond)
	w.Start(context.Background())
	time.Sleep(20 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, w.Shutdown(ctx), context.DeadlineExceeded)
	close(block)
}
