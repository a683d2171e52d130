// Package game is the gamification and daily-state reconciliation engine:
// schema migration, day rollover, habit toggling with XP/level/streak
// accounting, and badge awards. Every function here is deterministic over
// its inputs; callers persist the whole record after mutating it.
package game

import (
	"errors"
	"time"

	"github.com/auralabs/aura-backend/internal/models"
)

// XPPerLevel is the fixed divisor between experience points and level.
const XPPerLevel = 100

// Badge names, fixed. Badges are awarded once and never revoked.
const (
	BadgeStreak3       = "3-Day Streak 🔥"
	BadgeStreak7       = "7-Day Streak 🔥🔥"
	BadgeLevel5        = "Level 5 ⭐"
	BadgeLevel10       = "Level 10 ⭐⭐"
	BadgePerfectionist = "Perfectionist ✅"
)

// ErrHabitNotFound is returned when a toggle references a habit id the
// record does not contain. The record is left untouched.
var ErrHabitNotFound = errors.New("habit not found")

// Today formats t as the calendar-day key used throughout the engine.
func Today(t time.Time) string {
	return t.Format(time.DateOnly)
}

// Migrate backfills fields that predate the current record schema and
// reports whether anything changed. Applying it twice is the same as once.
func Migrate(rec *models.UserRecord) bool {
	changed := false
	if rec.ChatHistory == nil {
		rec.ChatHistory = []models.ChatMessage{}
		changed = true
	}
	if rec.Stats.Badges == nil {
		rec.Stats.Badges = []string{}
		changed = true
	}
	return changed
}

// ReconcileDay applies the day rollover when the record's last active date
// differs from today: the streak survives only if yesterday's habits were
// all completed and no day was skipped, then all per-day fields reset.
// Rollover never increments the streak; the increment happens at toggle
// time when the last habit of a day is completed. Reports whether the
// record changed; re-running with lastDate already equal to today is a
// no-op.
func ReconcileDay(rec *models.UserRecord, today string) bool {
	if rec.LastDate == today {
		return false
	}

	allCompletedYesterday := allCompleted(rec.Habits)
	yest := yesterday(today)

	if rec.LastDate != yest {
		// One or more days skipped entirely; stale completion flags
		// don't count.
		rec.Stats.Streak = 0
	} else if !allCompletedYesterday {
		rec.Stats.Streak = 0
	}

	for i := range rec.Habits {
		rec.Habits[i].Completed = false
	}
	rec.WaterCount = 0
	rec.DailyVibe = nil
	rec.LastDate = today
	return true
}

// ToggleHabit applies a single completion change, recomputes XP, level and
// streak, and re-evaluates badges. XP is clamped at zero. The streak moves
// only when the "all habits completed" state flips: +1 when this toggle
// completes the last open habit, -1 (floored at zero) when it reopens a
// fully completed day.
func ToggleHabit(rec *models.UserRecord, habitID int, completed bool) error {
	idx := -1
	for i := range rec.Habits {
		if rec.Habits[i].ID == habitID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrHabitNotFound
	}

	habit := &rec.Habits[idx]
	if habit.Completed == completed {
		return nil
	}

	allBefore := allCompleted(rec.Habits)

	xpChange := habit.XP
	if !completed {
		xpChange = -habit.XP
	}
	habit.Completed = completed

	allAfter := allCompleted(rec.Habits)

	newXP := rec.Stats.XP + xpChange
	if newXP < 0 {
		newXP = 0
	}
	rec.Stats.XP = newXP
	rec.Stats.Level = newXP/XPPerLevel + 1

	if allAfter && !allBefore {
		rec.Stats.Streak++
	} else if !allAfter && allBefore {
		if rec.Stats.Streak > 0 {
			rec.Stats.Streak--
		}
	}

	rec.Stats = AwardBadges(rec.Stats, rec.Habits)
	return nil
}

// AwardBadges returns stats with every newly crossed badge threshold added.
// Existing badges are kept; the set only grows.
func AwardBadges(stats models.GamificationStats, habits []models.Habit) models.GamificationStats {
	has := make(map[string]bool, len(stats.Badges))
	for _, b := range stats.Badges {
		has[b] = true
	}

	award := func(name string, earned bool) {
		if earned && !has[name] {
			stats.Badges = append(stats.Badges, name)
			has[name] = true
		}
	}

	award(BadgeStreak3, stats.Streak >= 3)
	award(BadgeStreak7, stats.Streak >= 7)
	award(BadgeLevel5, stats.Level >= 5)
	award(BadgeLevel10, stats.Level >= 10)
	award(BadgePerfectionist, allCompleted(habits))

	return stats
}

func allCompleted(habits []models.Habit) bool {
	for _, h := range habits {
		if !h.Completed {
			return false
		}
	}
	return true
}

// yesterday returns the day key immediately before today, or "" when today
// is not a valid day key (which can only mean a skipped-day reset anyway).
func yesterday(today string) string {
	t, err := time.Parse(time.DateOnly, today)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, -1).Format(time.DateOnly)
}
