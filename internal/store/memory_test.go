package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auralabs/aura-backend/internal/models"
)

func record(email string) *models.UserRecord {
	return &models.UserRecord{
		Profile: models.UserProfile{Email: email, Name: "Test", Age: 28, Gender: models.GenderMale, Goal: models.GoalStamina},
		Habits:  []models.Habit{{ID: 16, Text: "run", XP: 30, Category: models.GoalStamina}},
		Stats:   models.GamificationStats{Level: 1, Badges: []string{}},
	}
}

func TestMemoryLoadNotFound(t *testing.T) {
	repo := NewMemoryRepository()

	_, err := repo.Load(context.Background(), "missing@gmail.com")
	assert.ErrorIs(t, err, ErrNotFound)

	ok, err := repo.Exists(context.Background(), "missing@gmail.com")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemorySaveLoadRoundTrip(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, record("a@gmail.com")))

	got, err := repo.Load(ctx, "a@gmail.com")
	require.NoError(t, err)
	assert.Equal(t, "a@gmail.com", got.Profile.Email)

	ok, err := repo.Exists(ctx, "a@gmail.com")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryLoadedRecordDoesNotAliasStore(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, record("a@gmail.com")))

	got, err := repo.Load(ctx, "a@gmail.com")
	require.NoError(t, err)
	got.Habits[0].Completed = true
	got.Stats.Badges = append(got.Stats.Badges, "whatever")

	fresh, err := repo.Load(ctx, "a@gmail.com")
	require.NoError(t, err)
	assert.False(t, fresh.Habits[0].Completed)
	assert.Empty(t, fresh.Stats.Badges)
}

func TestMemorySavedRecordDoesNotAliasCaller(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	rec := record("a@gmail.com")
	require.NoError(t, repo.Save(ctx, rec))
	rec.Stats.XP = 999

	fresh, err := repo.Load(ctx, "a@gmail.com")
	require.NoError(t, err)
	assert.Equal(t, 0, fresh.Stats.XP)
}
