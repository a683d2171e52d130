package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/auralabs/aura-backend/internal/catalog"
	"github.com/auralabs/aura-backend/internal/game"
	"github.com/auralabs/aura-backend/internal/models"
	"github.com/auralabs/aura-backend/internal/store"
	"github.com/auralabs/aura-backend/pkg/utils"
)

// SignUpRequest carries every field of the sign-up wizard in one payload.
// Validation still happens step by step so the client can surface the
// failing step's message inline.
type SignUpRequest struct {
	Name          string        `json:"name"`
	Email         string        `json:"email"`
	Password      string        `json:"password"`
	Age           int           `json:"age"`
	Gender        models.Gender `json:"gender"`
	Goal          models.Goal   `json:"goal"`
	CurrentWeight *float64      `json:"current_weight,omitempty"`
	TargetWeight  *float64      `json:"target_weight,omitempty"`
}

// Auth performs sign-up, sign-in and sign-out against the record store and
// the session store.
type Auth struct {
	Repo     store.UserRepository
	Sessions SessionStore
	Now      func() time.Time
}

func NewAuth(repo store.UserRepository, sessions SessionStore) *Auth {
	return &Auth{Repo: repo, Sessions: sessions, Now: time.Now}
}

// SignUp validates the wizard fields, creates the record with goal-seeded
// habits and zeroed stats, and opens a session. Returns the new record and
// the session token.
func (a *Auth) SignUp(ctx context.Context, req SignUpRequest) (*models.UserRecord, string, error) {
	if err := validateSignUp(req); err != nil {
		return nil, "", err
	}

	exists, err := a.Repo.Exists(ctx, req.Email)
	if err != nil {
		return nil, "", fmt.Errorf("checking existing account: %w", err)
	}
	if exists {
		return nil, "", ErrConflict
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, "", fmt.Errorf("hashing password: %w", err)
	}

	rec := &models.UserRecord{
		Profile: models.UserProfile{
			Email:         req.Email,
			Name:          req.Name,
			Age:           req.Age,
			Gender:        req.Gender,
			Goal:          req.Goal,
			CurrentWeight: req.CurrentWeight,
			TargetWeight:  req.TargetWeight,
		},
		PasswordHash: hash,
		Habits:       catalog.SeedHabits(req.Goal),
		Stats:        models.GamificationStats{XP: 0, Level: 1, Streak: 0, Badges: []string{}},
		WaterCount:   0,
		LastDate:     game.Today(a.Now()),
		ChatHistory:  []models.ChatMessage{},
	}

	if err := a.Repo.Save(ctx, rec); err != nil {
		return nil, "", fmt.Errorf("saving record: %w", err)
	}

	token, err := a.Sessions.Create(ctx, req.Email)
	if err != nil {
		return nil, "", fmt.Errorf("creating session: %w", err)
	}
	return rec, token, nil
}

// SignIn verifies credentials, runs migration and day rollover on the
// loaded record, and opens a session. The error message never says which
// of email or password was wrong.
func (a *Auth) SignIn(ctx context.Context, email, password string) (*models.UserRecord, string, error) {
	if email == "" || password == "" {
		return nil, "", fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	rec, err := a.Repo.Load(ctx, email)
	if err != nil {
		if err == store.ErrNotFound {
			return nil, "", ErrAuth
		}
		return nil, "", fmt.Errorf("loading record: %w", err)
	}

	valid, err := utils.VerifyPassword(password, rec.PasswordHash)
	if err != nil || !valid {
		return nil, "", ErrAuth
	}

	migrated := game.Migrate(rec)
	rolled := game.ReconcileDay(rec, game.Today(a.Now()))
	if migrated || rolled {
		if err := a.Repo.Save(ctx, rec); err != nil {
			return nil, "", fmt.Errorf("saving record: %w", err)
		}
	}

	token, err := a.Sessions.Create(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("creating session: %w", err)
	}
	return rec, token, nil
}

// SignOut invalidates the session token. The record itself is retained.
func (a *Auth) SignOut(ctx context.Context, token string) error {
	return a.Sessions.Invalidate(ctx, token)
}

// validateSignUp mirrors the wizard: credentials, demographics, goal, then
// weight details for weight-related goals.
func validateSignUp(req SignUpRequest) error {
	// Step 1: credentials
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return fmt.Errorf("%w: please fill in all fields", ErrValidation)
	}
	if !strings.HasSuffix(req.Email, "@gmail.com") {
		return fmt.Errorf("%w: please use a valid @gmail.com address", ErrValidation)
	}
	if !validPassword(req.Password) {
		return fmt.Errorf("%w: password must be at least 6 characters and include letters, numbers, and a special symbol (e.g., @, $, !)", ErrValidation)
	}

	// Step 2: demographics
	if req.Age <= 0 || !req.Gender.Valid() {
		return fmt.Errorf("%w: please provide your age and gender", ErrValidation)
	}

	// Step 3: goal
	if !req.Goal.Valid() {
		return fmt.Errorf("%w: please select a primary goal", ErrValidation)
	}

	// Step 4: weight details, only for weight-related goals
	if req.Goal.WeightRelated() {
		if req.CurrentWeight == nil || req.TargetWeight == nil || *req.CurrentWeight <= 0 || *req.TargetWeight <= 0 {
			return fmt.Errorf("%w: please enter your current and target weights", ErrValidation)
		}
	}

	return nil
}

// validPassword enforces: length >= 6, only letters/digits/@$!%*?&, at
// least one letter, one digit and one special character.
func validPassword(pw string) bool {
	if len(pw) < 6 {
		return false
	}
	var letter, digit, special bool
	for _, c := range pw {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
			letter = true
		case c >= '0' && c <= '9':
			digit = true
		case strings.ContainsRune("@$!%*?&", c):
			special = true
		default:
			return false
		}
	}
	return letter && digit && special
}
