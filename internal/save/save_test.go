package save

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CrashSite_Go/internal/catalog"
	"github.com/osse101/CrashSite_Go/internal/domain"
	"github.com/osse101/CrashSite_Go/internal/event"
	"github.com/osse101/CrashSite_Go/internal/game"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestState(t *testing.T) *game.State {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)
	return game.NewState(cat, game.NewSimulatedClock(epoch))
}

// progressedState returns a state with some of everything changed
func progressedState(t *testing.T) *game.State {
	t.Helper()
	s := newTestState(t)
	survey, _ := s.Action(domain.ActionSurveyWreckage)
	survey.Stage, survey.Completions = 2, 2
	forage, _ := s.Action(domain.ActionForageFood)
	forage.Unlocked, forage.Completions = true, 5
	forager, _ := s.Job(domain.JobForager)
	forager.Unlocked, forager.Assigned = true, 1
	leanTo, _ := s.Building(domain.BuildingLeanTo)
	leanTo.Unlocked, leanTo.Count = true, 1
	require.NoError(t, s.Ledger.Set(domain.ResourceFoodRations, 123))
	s.Flags.Set(domain.FlagShelter)
	s.AddLog(domain.LogLevelInfo, "checkpoint")
	return s
}

func assertProgressRestored(t *testing.T, s *game.State) {
	t.Helper()
	survey, _ := s.Action(domain.ActionSurveyWreckage)
	assert.Equal(t, 2, survey.Stage)
	forage, _ := s.Action(domain.ActionForageFood)
	assert.True(t, forage.Unlocked)
	assert.Equal(t, 5, forage.Completions)
	forager, _ := s.Job(domain.JobForager)
	assert.Equal(t, 1, forager.Assigned)
	leanTo, _ := s.Building(domain.BuildingLeanTo)
	assert.Equal(t, 1, leanTo.Count)
	assert.Equal(t, 123.0, s.Ledger.Amount(domain.ResourceFoodRations))
	assert.True(t, s.Flags.IsSet(domain.FlagShelter))
	require.NotEmpty(t, s.Log)
	assert.Equal(t, "checkpoint", s.Log[len(s.Log)-1].Message)
}

func TestStores_RoundTrip(t *testing.T) {
	ctx := context.Background()
	stores := map[string]Store{
		"memory": NewMemoryStore(),
		"file":   NewFileStore(filepath.Join(t.TempDir(), "nested", "save.json")),
	}

	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			_, err := store.Load(ctx, "slot1")
			assert.ErrorIs(t, err, domain.ErrNoSavedState)

			require.NoError(t, store.Save(ctx, "slot1", progressedState(t).Snapshot()))
			require.NoError(t, store.Save(ctx, "slot2", newTestState(t).Snapshot()))

			snap, err := store.Load(ctx, "slot1")
			require.NoError(t, err)

			fresh := newTestState(t)
			fresh.Restore(snap)
			assertProgressRestored(t, fresh)

			other, err := store.Load(ctx, "slot2")
			require.NoError(t, err)
			assert.Equal(t, 0, other.Actions[domain.ActionSurveyWreckage].Stage, "slots are independent")

			_, err = store.Load(ctx, "")
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.NoError(t, store.Close())
		})
	}
}

func TestFileStore_CorruptFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "save.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	store := NewFileStore(path)

	_, err := store.Load(ctx, "default")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNoSavedState)

	require.NoError(t, store.Save(ctx, "default", newTestState(t).Snapshot()), "a corrupt file is replaced")
	_, err = store.Load(ctx, "default")
	assert.NoError(t, err)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

// MockStore is a testify mock of Store
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Load(ctx context.Context, slot string) (*game.Snapshot, error) {
	args := m.Called(ctx, slot)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*game.Snapshot), args.Error(1)
}

func (m *MockStore) Save(ctx context.Context, slot string, snap *game.Snapshot) error {
	return m.Called(ctx, slot, snap).Error(0)
}

func (m *MockStore) Close() error {
	return m.Called().Error(0)
}

func TestService_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("restores saved progress", func(t *testing.T) {
		store := NewMemoryStore()
		require.NoError(t, store.Save(ctx, "default", progressedState(t).Snapshot()))

		s := newTestState(t)
		svc := NewService(store, game.NewManager(s, nil), "default")
		assert.True(t, svc.Load(ctx))
		assertProgressRestored(t, s)
	})

	t.Run("missing save starts fresh", func(t *testing.T) {
		svc := NewService(NewMemoryStore(), game.NewManager(newTestState(t), nil), "default")
		assert.False(t, svc.Load(ctx))
	})

	t.Run("storage failure is treated as no saved state", func(t *testing.T) {
		store := new(MockStore)
		store.On("Load", mock.Anything, "default").Return(nil, errors.New("disk on fire"))

		s := newTestState(t)
		svc := NewService(store, game.NewManager(s, nil), "default")
		assert.False(t, svc.Load(ctx))
		survey, _ := s.Action(domain.ActionSurveyWreckage)
		assert.True(t, survey.Unlocked, "state untouched")
		store.AssertExpectations(t)
	})
}

func TestService_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes game saved", func(t *testing.T) {
		bus := event.NewMemoryBus()
		var saved []event.Event
		bus.Subscribe(event.GameSaved, func(ctx context.Context, e event.Event) error {
			saved = append(saved, e)
			return nil
		})

		store := NewMemoryStore()
		svc := NewService(store, game.NewManager(progressedState(t), bus), "default")
		require.NoError(t, svc.Save(ctx))
		require.Len(t, saved, 1)
		assert.Equal(t, "default", saved[0].Payload.(event.GameSavedPayloadV1).Slot)

		snap, err := store.Load(ctx, "default")
		require.NoError(t, err)
		assert.Equal(t, epoch, snap.SavedAt.UTC())
	})

	t.Run("failure is returned and nothing is published", func(t *testing.T) {
		bus := event.NewMemoryBus()
		published := 0
		event.SubscribeAll(bus, func(ctx context.Context, e event.Event) error {
			published++
			return nil
		})
		store := new(MockStore)
		store.On("Save", mock.Anything, "default", mock.Anything).Return(errors.New("read-only"))

		svc := NewService(store, game.NewManager(newTestState(t), bus), "default")
		assert.Error(t, svc.Save(ctx))
		assert.Zero(t, published)
	})

	t.Run("shutdown saves then closes", func(t *testing.T) {
		store := new(MockStore)
		store.On("Save", mock.Anything, "default", mock.Anything).Return(nil)
		store.On("Close").Return(nil)

		svc := NewService(store, game.NewManager(newTestState(t), nil), "default")
		require.NoError(t, svc.Shutdown(ctx))
		store.AssertExpectations(t)
	})
}
