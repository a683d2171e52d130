package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auralabs/aura-backend/internal/models"
	"github.com/auralabs/aura-backend/internal/store"
)

func f64(v float64) *float64 { return &v }

func fixedAuth(repo store.UserRepository) *Auth {
	a := NewAuth(repo, NewMemorySessions())
	a.Now = func() time.Time { return time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC) }
	return a
}

func validRequest() SignUpRequest {
	return SignUpRequest{
		Name:          "Asha",
		Email:         "asha@gmail.com",
		Password:      "secret1!",
		Age:           29,
		Gender:        models.GenderFemale,
		Goal:          models.GoalWeightLoss,
		CurrentWeight: f64(80),
		TargetWeight:  f64(70),
	}
}

func TestSignUpCreatesSeededRecord(t *testing.T) {
	repo := store.NewMemoryRepository()
	auth := fixedAuth(repo)

	rec, token, err := auth.SignUp(context.Background(), validRequest())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.Len(t, rec.Habits, 5)
	for _, h := range rec.Habits {
		assert.Equal(t, models.GoalWeightLoss, h.Category)
		assert.False(t, h.Completed)
	}
	assert.Equal(t, models.GamificationStats{XP: 0, Level: 1, Streak: 0, Badges: []string{}}, rec.Stats)
	assert.Equal(t, "2024-03-10", rec.LastDate)
	assert.NotEqual(t, "secret1!", rec.PasswordHash, "password must be stored hashed")

	stored, err := repo.Load(context.Background(), "asha@gmail.com")
	require.NoError(t, err)
	assert.Equal(t, rec.Profile, stored.Profile)
}

func TestSignUpValidationSteps(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*SignUpRequest)
		want   string
	}{
		{"missing credentials", func(r *SignUpRequest) { r.Name = "" }, "fill in all fields"},
		{"non gmail address", func(r *SignUpRequest) { r.Email = "asha@example.com" }, "@gmail.com"},
		{"weak password", func(r *SignUpRequest) { r.Password = "short" }, "at least 6 characters"},
		{"password without special", func(r *SignUpRequest) { r.Password = "abc12345" }, "special symbol"},
		{"missing age", func(r *SignUpRequest) { r.Age = 0 }, "age and gender"},
		{"bad gender", func(r *SignUpRequest) { r.Gender = "Other" }, "age and gender"},
		{"bad goal", func(r *SignUpRequest) { r.Goal = "Run Marathon" }, "primary goal"},
		{"weight goal without weights", func(r *SignUpRequest) { r.CurrentWeight = nil }, "current and target weights"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			auth := fixedAuth(store.NewMemoryRepository())
			req := validRequest()
			tc.mutate(&req)

			_, _, err := auth.SignUp(context.Background(), req)
			require.ErrorIs(t, err, ErrValidation)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestSignUpWeightOptionalForNonWeightGoals(t *testing.T) {
	auth := fixedAuth(store.NewMemoryRepository())
	req := validRequest()
	req.Goal = models.GoalEatHealthier
	req.CurrentWeight = nil
	req.TargetWeight = nil

	rec, _, err := auth.SignUp(context.Background(), req)
	require.NoError(t, err)
	assert.Nil(t, rec.Profile.CurrentWeight)
}

func TestSignUpConflict(t *testing.T) {
	auth := fixedAuth(store.NewMemoryRepository())

	_, _, err := auth.SignUp(context.Background(), validRequest())
	require.NoError(t, err)

	_, _, err = auth.SignUp(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrConflict)
}

func TestSignInGenericErrorMessage(t *testing.T) {
	auth := fixedAuth(store.NewMemoryRepository())
	_, _, err := auth.SignUp(context.Background(), validRequest())
	require.NoError(t, err)

	_, _, err = auth.SignIn(context.Background(), "nobody@gmail.com", "secret1!")
	assert.ErrorIs(t, err, ErrAuth)

	_, _, wrongPw := auth.SignIn(context.Background(), "asha@gmail.com", "wrong1!")
	assert.ErrorIs(t, wrongPw, ErrAuth)
	assert.Equal(t, err.Error(), wrongPw.Error(), "unknown email and bad password must be indistinguishable")
}

func TestSignInRunsDayRollover(t *testing.T) {
	repo := store.NewMemoryRepository()
	auth := fixedAuth(repo)

	_, _, err := auth.SignUp(context.Background(), validRequest())
	require.NoError(t, err)

	// Complete everything today, then sign in again two days later.
	rec, err := repo.Load(context.Background(), "asha@gmail.com")
	require.NoError(t, err)
	for i := range rec.Habits {
		rec.Habits[i].Completed = true
	}
	rec.Stats.Streak = 4
	rec.WaterCount = 3
	require.NoError(t, repo.Save(context.Background(), rec))

	auth.Now = func() time.Time { return time.Date(2024, 3, 12, 8, 0, 0, 0, time.UTC) }
	signedIn, token, err := auth.SignIn(context.Background(), "asha@gmail.com", "secret1!")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.Equal(t, 0, signedIn.Stats.Streak, "skipped day resets the streak")
	assert.Equal(t, 0, signedIn.WaterCount)
	assert.Equal(t, "2024-03-12", signedIn.LastDate)

	stored, err := repo.Load(context.Background(), "asha@gmail.com")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-12", stored.LastDate, "rollover must be persisted")
}

func TestSignOutInvalidatesSession(t *testing.T) {
	sessions := NewMemorySessions()
	auth := NewAuth(store.NewMemoryRepository(), sessions)
	auth.Now = func() time.Time { return time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC) }

	_, token, err := auth.SignUp(context.Background(), validRequest())
	require.NoError(t, err)

	email, ok, err := sessions.Resolve(context.Background(), token)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "asha@gmail.com", email)

	require.NoError(t, auth.SignOut(context.Background(), token))
	_, ok, _ = sessions.Resolve(context.Background(), token)
	assert.False(t, ok)
}
