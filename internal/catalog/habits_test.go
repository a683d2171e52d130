package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auralabs/aura-backend/internal/models"
)

func TestCatalogShape(t *testing.T) {
	all := All()
	assert.Len(t, all, 40)

	seen := map[int]bool{}
	for _, h := range all {
		assert.False(t, seen[h.ID], "duplicate habit id %d", h.ID)
		seen[h.ID] = true
		assert.Positive(t, h.XP)
		assert.NotEmpty(t, h.Text)
		assert.True(t, h.Category.Valid())
	}
}

func TestSeedHabitsFiltersByGoal(t *testing.T) {
	for _, goal := range models.Goals {
		habits := SeedHabits(goal)
		require.Len(t, habits, 5, "goal %q", goal)
		for _, h := range habits {
			assert.Equal(t, goal, h.Category)
			assert.False(t, h.Completed)
		}
	}
}

func TestSeedHabitsReturnsFreshCopies(t *testing.T) {
	a := SeedHabits(models.GoalStamina)
	a[0].Completed = true

	b := SeedHabits(models.GoalStamina)
	assert.False(t, b[0].Completed)
}
