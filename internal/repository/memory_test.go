package repository_test

import (
	"context"
	"testing"

	errorvalues "github.com/rpillai/daytrack/internal/error_values"
	"github.com/rpillai/daytrack/internal/repository"
	"github.com/rpillai/daytrack/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGoal(date, title string) *entity.Goal {
	return &entity.Goal{
		Dated: entity.Dated{Date: date},
		Title: title,
	}
}

func TestMemoryCreateAndGet(t *testing.T) {
	store := repository.NewMemoryStore[*entity.Goal]()
	ctx := context.Background()

	created, err := store.Create(ctx, newGoal("2024-06-01", "Run 5k"))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	got, err := store.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestMemoryGetUnexist(t *testing.T) {
	store := repository.NewMemoryStore[*entity.Goal]()
	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, errorvalues.ErrRecordNotFound)
}

func TestMemoryListKeepsInsertionOrder(t *testing.T) {
	store := repository.NewMemoryStore[*entity.Goal]()
	ctx := context.Background()

	first, err := store.Create(ctx, newGoal("2024-06-01", "first"))
	require.NoError(t, err)
	second, err := store.Create(ctx, newGoal("2024-06-01", "second"))
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	goals, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, goals, 2)
	assert.Equal(t, "first", goals[0].Title)
	assert.Equal(t, "second", goals[1].Title)
}

func TestMemoryListEmpty(t *testing.T) {
	store := repository.NewMemoryStore[*entity.Goal]()
	goals, err := store.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, goals)
	assert.Empty(t, goals)
}

func TestMemoryListBy(t *testing.T) {
	store := repository.NewMemoryStore[*entity.EnergyLog]()
	ctx := context.Background()

	_, err := store.Create(ctx, &entity.EnergyLog{
		Dated:    entity.Dated{Date: "2024-06-01"},
		Activity: "walk",
		Impact:   entity.ImpactPositive,
	})
	require.NoError(t, err)
	_, err = store.Create(ctx, &entity.EnergyLog{
		Dated:    entity.Dated{Date: "2024-06-01"},
		Activity: "doomscrolling",
		Impact:   entity.ImpactNegative,
	})
	require.NoError(t, err)

	positive, err := store.ListBy(ctx, func(l *entity.EnergyLog) bool {
		return l.Impact == entity.ImpactPositive
	})
	require.NoError(t, err)
	require.Len(t, positive, 1)
	assert.Equal(t, "walk", positive[0].Activity)
}

func TestMemoryUpdate(t *testing.T) {
	store := repository.NewMemoryStore[*entity.Goal]()
	ctx := context.Background()

	created, err := store.Create(ctx, newGoal("2024-06-01", "Run 5k"))
	require.NoError(t, err)

	t.Run("applies mutation", func(t *testing.T) {
		updated, err := store.Update(ctx, created.ID, func(g *entity.Goal) {
			g.Toggle()
		})
		require.NoError(t, err)
		assert.True(t, updated.Completed)

		got, err := store.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.True(t, got.Completed)
	})
	t.Run("unexist record", func(t *testing.T) {
		_, err := store.Update(ctx, "missing", func(g *entity.Goal) {})
		assert.ErrorIs(t, err, errorvalues.ErrRecordNotFound)
	})
}

func TestMemoryDeleteIsIdempotent(t *testing.T) {
	store := repository.NewMemoryStore[*entity.Goal]()
	ctx := context.Background()

	created, err := store.Create(ctx, newGoal("2024-06-01", "Run 5k"))
	require.NoError(t, err)

	assert.NoError(t, store.Delete(ctx, created.ID))
	assert.NoError(t, store.Delete(ctx, created.ID))

	_, err = store.Get(ctx, created.ID)
	assert.ErrorIs(t, err, errorvalues.ErrRecordNotFound)
}
