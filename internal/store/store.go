// Package store persists user records. Records are written whole: a Save
// replaces the entire document keyed by the profile email, so readers never
// observe a partial update.
package store

import (
	"context"
	"errors"

	"github.com/auralabs/aura-backend/internal/models"
)

// ErrNotFound is returned by Load when no record exists for the email.
var ErrNotFound = errors.New("user record not found")

// UserRepository is the durable mapping from email to UserRecord.
type UserRepository interface {
	Load(ctx context.Context, email string) (*models.UserRecord, error)
	Save(ctx context.Context, rec *models.UserRecord) error
	Exists(ctx context.Context, email string) (bool, error)
}
