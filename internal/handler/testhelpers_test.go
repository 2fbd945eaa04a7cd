package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CrashSite_Go/internal/catalog"
	"github.com/osse101/CrashSite_Go/internal/domain"
	"github.com/osse101/CrashSite_Go/internal/game"
	"github.com/osse101/CrashSite_Go/internal/job"
	"github.com/osse101/CrashSite_Go/internal/runner"
)

// MockRunner mocks runner.Service
type MockRunner struct {
	mock.Mock
}

func (m *MockRunner) Start(ctx context.Context, id domain.ActionID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRunner) Tick(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockRunner) RequestCancel(ctx context.Context) (runner.CancelResult, error) {
	args := m.Called(ctx)
	return args.Get(0).(runner.CancelResult), args.Error(1)
}

func (m *MockRunner) Active() *domain.ActiveRun {
	args := m.Called()
	run, _ := args.Get(0).(*domain.ActiveRun)
	return run
}

func (m *MockRunner) Run(ctx context.Context) {
	m.Called(ctx)
}

// MockSaver mocks save.Service
type MockSaver struct {
	mock.Mock
}

func (m *MockSaver) Load(ctx context.Context) bool {
	return m.Called(ctx).Bool(0)
}

func (m *MockSaver) Save(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockSaver) Shutdown(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// MockJobService mocks job.Service
type MockJobService struct {
	mock.Mock
}

func (m *MockJobService) List(ctx context.Context) []job.View {
	views, _ := m.Called(ctx).Get(0).([]job.View)
	return views
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
	out, _ := args.Get(0).([]job.Output)
	return out, args.Error(1)
}

func newTestManager(t *testing.T) (*game.Manager, *game.State) {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)
	state := game.NewState(cat, game.NewSimulatedClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)))
	return game.NewManager(state, nil), state
}

// newRequest builds a request with chi URL params set, as the router would
func newRequest(method, target string, body interface{}, params map[string]string) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			_ = json.NewEncoder(&buf).Encode(body)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for k, v := range params {
			rctx.URLParams.Add(k, v)
		}
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}
	return req
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
