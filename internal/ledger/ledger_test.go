package ledger

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CrashSite_Go/internal/domain"
)

func newTestLedger() *Ledger {
	return New([]domain.Resource{
		{Key: domain.ResourceEnergy, Name: "Energy", Amount: 50, Capacity: 100},
		{Key: domain.ResourceFoodRations, Name: "Food Rations", Amount: 0, Capacity: 200},
		{Key: domain.ResourceScrapMetal, Name: "Scrap Metal", Amount: 3},
	})
}

func amounts(pairs ...interface{}) []domain.ResourceAmount {
	out := make([]domain.ResourceAmount, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, domain.ResourceAmount{
			Resource: pairs[i].(string),
			Amount:   domain.Fixed(float64(pairs[i+1].(int))),
		})
	}
	return out
}

func TestNew(t *testing.T) {
	l := newTestLedger()

	energy, ok := l.Get(domain.ResourceEnergy)
	require.True(t, ok)
	assert.True(t, energy.Discovered, "resources starting above zero are discovered")

	food, ok := l.Get(domain.ResourceFoodRations)
	require.True(t, ok)
	assert.False(t, food.Discovered)

	assert.Len(t, l.All(), 3)
	assert.Equal(t, domain.ResourceEnergy, l.All()[0].Key, "catalog order is preserved")
}

func TestAdd(t *testing.T) {
	t.Run("clamps to capacity", func(t *testing.T) {
		l := newTestLedger()
		added := l.Add(domain.ResourceEnergy, 80)
		assert.Equal(t, 50.0, added)
		assert.Equal(t, 100.0, l.Amount(domain.ResourceEnergy))
	})

	t.Run("unbounded resources grow freely", func(t *testing.T) {
		l := newTestLedger()
		l.Add(domain.ResourceScrapMetal, 1000)
		assert.Equal(t, 1003.0, l.Amount(domain.ResourceScrapMetal))
	})

	t.Run("marks resource discovered", func(t *testing.T) {
		l := newTestLedger()
		l.Add(domain.ResourceFoodRations, 1)
		food, _ := l.Get(domain.ResourceFoodRations)
		assert.True(t, food.Discovered)
	})

	t.Run("ignores unknown resources", func(t *testing.T) {
		l := newTestLedger()
		assert.Equal(t, 0.0, l.Add("unobtainium", 5))
	})
}

func TestDeduct(t *testing.T) {
	t.Run("debits available amount", func(t *testing.T) {
		l := newTestLedger()
		require.NoError(t, l.Deduct(domain.ResourceEnergy, 20))
		assert.Equal(t, 30.0, l.Amount(domain.ResourceEnergy))
	})

	t.Run("rejects overdraft without mutation", func(t *testing.T) {
		l := newTestLedger()
		err := l.Deduct(domain.ResourceScrapMetal, 5)
		assert.ErrorIs(t, err, domain.ErrInsufficientResources)
		assert.Contains(t, err.Error(), "Scrap Metal")
		assert.Equal(t, 3.0, l.Amount(domain.ResourceScrapMetal))
	})

	t.Run("absorbs floating point residue", func(t *testing.T) {
		l := newTestLedger()
		require.NoError(t, l.Set(domain.ResourceEnergy, 5))
		for i := 0; i < 10; i++ {
			require.NoError(t, l.Deduct(domain.ResourceEnergy, 0.1))
		}
		require.NoError(t, l.Deduct(domain.ResourceEnergy, 4))
		assert.Equal(t, 0.0, l.Amount(domain.ResourceEnergy))
	})

	t.Run("unknown resource", func(t *testing.T) {
		l := newTestLedger()
		assert.ErrorIs(t, l.Deduct("unobtainium", 1), domain.ErrUnknownResource)
	})
}

func TestCanAfford(t *testing.T) {
	l := newTestLedger()

	assert.NoError(t, l.CanAfford(amounts(domain.ResourceEnergy, 50)))
	assert.NoError(t, l.CanAfford(amounts(domain.ResourceEnergy, 20), amounts(domain.ResourceEnergy, 30)))

	err := l.CanAfford(amounts(domain.ResourceEnergy, 30), amounts(domain.ResourceEnergy, 30))
	assert.ErrorIs(t, err, domain.ErrInsufficientResources, "cost and drain on the same resource are summed")

	short := l.Shortfalls(amounts(domain.ResourceScrapMetal, 4, domain.ResourceEnergy, 1))
	require.Len(t, short, 1)
	assert.Equal(t, Shortfall{Resource: domain.ResourceScrapMetal, Required: 4, Available: 3}, short[0])
}

func TestDeductAll(t *testing.T) {
	l := newTestLedger()

	err := l.DeductAll(amounts(domain.ResourceEnergy, 10, domain.ResourceScrapMetal, 10))
	assert.ErrorIs(t, err, domain.ErrInsufficientResources)
	assert.Equal(t, 50.0, l.Amount(domain.ResourceEnergy), "nothing is debited when any requirement fails")

	require.NoError(t, l.DeductAll(amounts(domain.ResourceEnergy, 10, domain.ResourceScrapMetal, 3)))
	assert.Equal(t, 40.0, l.Amount(domain.ResourceEnergy))
	assert.Equal(t, 0.0, l.Amount(domain.ResourceScrapMetal))
}

func TestAddCapacity(t *testing.T) {
	l := newTestLedger()
	require.NoError(t, l.AddCapacity(domain.ResourceEnergy, 50))
	l.Add(domain.ResourceEnergy, 500)
	assert.Equal(t, 150.0, l.Amount(domain.ResourceEnergy))

	require.NoError(t, l.AddCapacity(domain.ResourceEnergy, -100))
	assert.Equal(t, 50.0, l.Amount(domain.ResourceEnergy), "lowering capacity clamps the amount")
}

func TestRestore(t *testing.T) {
	l := newTestLedger()
	l.Restore([]domain.Resource{
		{Key: domain.ResourceEnergy, Amount: 500, Capacity: 120},
		{Key: domain.ResourceFoodRations, Amount: 0, Discovered: true},
		{Key: "removed_resource", Amount: 7},
	}, nil)

	energy, _ := l.Get(domain.ResourceEnergy)
	assert.Equal(t, 120.0, energy.Amount)
	assert.Equal(t, 120.0, energy.Capacity)

	food, _ := l.Get(domain.ResourceFoodRations)
	assert.True(t, food.Discovered)
	assert.Len(t, l.All(), 3)
}

func TestReserveRelease(t *testing.T) {
	t.Run("reserved amounts count against capacity", func(t *testing.T) {
		l := newTestLedger()
		require.NoError(t, l.Reserve(domain.ResourceEnergy, 30))
		assert.Equal(t, 20.0, l.Amount(domain.ResourceEnergy))
		assert.Equal(t, 30.0, l.Reserved(domain.ResourceEnergy))
		assert.Equal(t, 50.0, l.Headroom(domain.ResourceEnergy))

		assert.Equal(t, 50.0, l.Add(domain.ResourceEnergy, 500))
		assert.Equal(t, 70.0, l.Amount(domain.ResourceEnergy))
		assert.Equal(t, 0.0, l.Headroom(domain.ResourceEnergy))
	})

	t.Run("release returns everything even at capacity", func(t *testing.T) {
		l := newTestLedger()
		require.NoError(t, l.Reserve(domain.ResourceEnergy, 30))
		l.Add(domain.ResourceEnergy, 500)

		require.NoError(t, l.Release(domain.ResourceEnergy, 30))
		assert.Equal(t, 100.0, l.Amount(domain.ResourceEnergy))
		assert.Equal(t, 0.0, l.Reserved(domain.ResourceEnergy))
	})

	t.Run("reserve fails without mutation", func(t *testing.T) {
		l := newTestLedger()
		err := l.Reserve(domain.ResourceScrapMetal, 4)
		assert.ErrorIs(t, err, domain.ErrInsufficientResources)
		assert.Equal(t, 3.0, l.Amount(domain.ResourceScrapMetal))
		assert.Equal(t, 0.0, l.Reserved(domain.ResourceScrapMetal))
	})

	t.Run("cannot release more than reserved", func(t *testing.T) {
		l := newTestLedger()
		require.NoError(t, l.Reserve(domain.ResourceEnergy, 10))
		assert.ErrorIs(t, l.Release(domain.ResourceEnergy, 11), domain.ErrInsufficientResources)
		assert.Equal(t, 10.0, l.Reserved(domain.ResourceEnergy))
		assert.ErrorIs(t, l.Release("unobtainium", 1), domain.ErrUnknownResource)
	})

	t.Run("restore applies reservations before clamping", func(t *testing.T) {
		l := newTestLedger()
		l.Restore([]domain.Resource{
			{Key: domain.ResourceEnergy, Amount: 90, Capacity: 100},
		}, map[string]float64{domain.ResourceEnergy: 40, "unobtainium": 3})

		assert.Equal(t, 60.0, l.Amount(domain.ResourceEnergy))
		assert.Equal(t, 40.0, l.Reserved(domain.ResourceEnergy))
		assert.Equal(t, 0.0, l.Reserved("unobtainium"))
		assert.True(t, math.IsInf(l.Headroom(domain.ResourceScrapMetal), 1))
	})
}
