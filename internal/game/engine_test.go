package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auralabs/aura-backend/internal/catalog"
	"github.com/auralabs/aura-backend/internal/models"
)

func testRecord(habits ...models.Habit) *models.UserRecord {
	if len(habits) == 0 {
		habits = catalog.SeedHabits(models.GoalWeightLoss)
	}
	return &models.UserRecord{
		Profile: models.UserProfile{
			Email:  "test@gmail.com",
			Name:   "Test",
			Age:    30,
			Gender: models.GenderFemale,
			Goal:   models.GoalWeightLoss,
		},
		Habits:      habits,
		Stats:       models.GamificationStats{XP: 0, Level: 1, Streak: 0, Badges: []string{}},
		LastDate:    "2024-03-10",
		ChatHistory: []models.ChatMessage{},
	}
}

func habit(id, xp int, completed bool) models.Habit {
	return models.Habit{ID: id, Text: "h", XP: xp, Completed: completed, Category: models.GoalWeightLoss}
}

func TestMigrateIsIdempotent(t *testing.T) {
	rec := testRecord()
	rec.ChatHistory = nil
	rec.Stats.Badges = nil

	require.True(t, Migrate(rec))
	once := rec.Clone()

	require.False(t, Migrate(rec))
	assert.Equal(t, once, rec)
	assert.NotNil(t, rec.ChatHistory)
	assert.NotNil(t, rec.Stats.Badges)
}

func TestMigrateKeepsExistingFields(t *testing.T) {
	rec := testRecord()
	rec.ChatHistory = []models.ChatMessage{{Role: models.RoleUser, Content: "hi"}}
	rec.DailyVibe = &models.DailyVibe{Sleep: models.SleepGood, Energy: models.EnergyHigh, Mood: models.MoodHappy}

	Migrate(rec)

	assert.Len(t, rec.ChatHistory, 1)
	assert.NotNil(t, rec.DailyVibe)
}

func TestReconcileDaySameDayIsNoop(t *testing.T) {
	rec := testRecord(habit(1, 10, true), habit(2, 10, true))
	rec.WaterCount = 4
	rec.Stats.Streak = 2
	before := rec.Clone()

	changed := ReconcileDay(rec, "2024-03-10")

	assert.False(t, changed)
	assert.Equal(t, before, rec)
}

func TestReconcileDayConsecutiveAllCompleted(t *testing.T) {
	// All habits done yesterday, consecutive day rollover.
	rec := testRecord(habit(1, 10, true), habit(2, 15, true))
	rec.WaterCount = 6
	rec.Stats.Streak = 4
	rec.LastDate = "2024-03-10"
	rec.DailyVibe = &models.DailyVibe{Sleep: models.SleepGood, Energy: models.EnergyHigh, Mood: models.MoodHappy}

	changed := ReconcileDay(rec, "2024-03-11")

	require.True(t, changed)
	assert.Equal(t, 4, rec.Stats.Streak, "streak unchanged on a fully completed consecutive day")
	for _, h := range rec.Habits {
		assert.False(t, h.Completed)
	}
	assert.Equal(t, 0, rec.WaterCount)
	assert.Nil(t, rec.DailyVibe)
	assert.Equal(t, "2024-03-11", rec.LastDate)
}

func TestReconcileDayConsecutiveIncomplete(t *testing.T) {
	rec := testRecord(habit(1, 10, true), habit(2, 15, false))
	rec.Stats.Streak = 4
	rec.LastDate = "2024-03-10"

	ReconcileDay(rec, "2024-03-11")

	assert.Equal(t, 0, rec.Stats.Streak)
}

func TestReconcileDayStreakResetOnAbsence(t *testing.T) {
	// Stale completed flags must not save the streak across skipped days.
	rec := testRecord(habit(1, 10, true), habit(2, 15, true))
	rec.Stats.Streak = 9
	rec.LastDate = "2024-01-01"

	ReconcileDay(rec, "2024-01-05")

	assert.Equal(t, 0, rec.Stats.Streak)
	assert.Equal(t, "2024-01-05", rec.LastDate)
}

func TestReconcileDayNeverSetDate(t *testing.T) {
	rec := testRecord(habit(1, 10, true))
	rec.LastDate = ""
	rec.Stats.Streak = 3

	changed := ReconcileDay(rec, "2024-03-11")

	require.True(t, changed)
	assert.Equal(t, 0, rec.Stats.Streak)
	assert.Equal(t, "2024-03-11", rec.LastDate)
}

func TestReconcileDayIsIdempotentPerDate(t *testing.T) {
	rec := testRecord(habit(1, 10, true), habit(2, 15, true))
	rec.Stats.Streak = 2

	require.True(t, ReconcileDay(rec, "2024-03-11"))
	after := rec.Clone()
	require.False(t, ReconcileDay(rec, "2024-03-11"))
	assert.Equal(t, after, rec)
}

func TestToggleHabitAwardsXPAndLevel(t *testing.T) {
	rec := testRecord(habit(1, 95, false), habit(2, 10, false))

	require.NoError(t, ToggleHabit(rec, 1, true))
	assert.Equal(t, 95, rec.Stats.XP)
	assert.Equal(t, 1, rec.Stats.Level)

	require.NoError(t, ToggleHabit(rec, 2, true))
	assert.Equal(t, 105, rec.Stats.XP)
	assert.Equal(t, 2, rec.Stats.Level)
}

func TestToggleHabitXPFloor(t *testing.T) {
	rec := testRecord(habit(1, 50, true), habit(2, 10, false))
	rec.Stats.XP = 20

	require.NoError(t, ToggleHabit(rec, 1, false))
	assert.Equal(t, 0, rec.Stats.XP)
	assert.Equal(t, 1, rec.Stats.Level)
}

func TestToggleHabitUnknownIDLeavesRecordUntouched(t *testing.T) {
	rec := testRecord(habit(1, 10, false))
	before := rec.Clone()

	err := ToggleHabit(rec, 99, true)

	assert.ErrorIs(t, err, ErrHabitNotFound)
	assert.Equal(t, before, rec)
}

func TestToggleHabitStreakIncrementAndBadge(t *testing.T) {
	// 4 habits, 3 done, streak at 2: completing the last one crosses the
	// 3-day threshold and must award the streak badge.
	rec := testRecord(habit(1, 10, true), habit(2, 10, true), habit(3, 10, true), habit(4, 10, false))
	rec.Stats.Streak = 2

	require.NoError(t, ToggleHabit(rec, 4, true))

	assert.Equal(t, 3, rec.Stats.Streak)
	assert.Contains(t, rec.Stats.Badges, BadgeStreak3)
	assert.Contains(t, rec.Stats.Badges, BadgePerfectionist)
}

func TestToggleHabitUntoggleDecrementsStreak(t *testing.T) {
	rec := testRecord(habit(1, 10, true), habit(2, 10, true))
	rec.Stats.Streak = 5

	require.NoError(t, ToggleHabit(rec, 1, false))
	assert.Equal(t, 4, rec.Stats.Streak)
}

func TestToggleHabitStreakNeverNegative(t *testing.T) {
	rec := testRecord(habit(1, 10, true))
	rec.Stats.Streak = 0

	require.NoError(t, ToggleHabit(rec, 1, false))
	assert.Equal(t, 0, rec.Stats.Streak)
}

func TestToggleHabitSameValueIsNoop(t *testing.T) {
	rec := testRecord(habit(1, 10, true), habit(2, 10, false))
	rec.Stats.XP = 10
	before := rec.Clone()

	require.NoError(t, ToggleHabit(rec, 1, true))
	assert.Equal(t, before, rec)
}

func TestAwardBadgesMonotoneAndThresholds(t *testing.T) {
	habits := []models.Habit{habit(1, 10, true)}

	stats := models.GamificationStats{XP: 950, Level: 10, Streak: 7, Badges: []string{BadgeStreak3}}
	out := AwardBadges(stats, habits)

	assert.ElementsMatch(t, []string{BadgeStreak3, BadgeStreak7, BadgeLevel5, BadgeLevel10, BadgePerfectionist}, out.Badges)

	// Re-running with lower thresholds never removes anything.
	out.Streak = 0
	out.Level = 1
	again := AwardBadges(out, []models.Habit{habit(1, 10, false)})
	assert.ElementsMatch(t, out.Badges, again.Badges)
}

// Random toggle sequences: XP never negative, level always derived from XP,
// badge set only grows.
func TestInvariantsUnderRandomToggles(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	rec := testRecord()

	prevBadges := map[string]bool{}
	for i := 0; i < 500; i++ {
		id := rec.Habits[rng.Intn(len(rec.Habits))].ID
		_ = ToggleHabit(rec, id, rng.Intn(2) == 0)

		require.GreaterOrEqual(t, rec.Stats.XP, 0)
		require.Equal(t, rec.Stats.XP/XPPerLevel+1, rec.Stats.Level)
		require.GreaterOrEqual(t, rec.Stats.Streak, 0)

		for b := range prevBadges {
			require.Contains(t, rec.Stats.Badges, b)
		}
		for _, b := range rec.Stats.Badges {
			prevBadges[b] = true
		}
	}
}
