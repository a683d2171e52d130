package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/auralabs/aura-backend/internal/models"
)

// PostgresRepository stores each record as a jsonb blob in user_records,
// one row per email. Saves upsert the whole blob so a reader never sees a
// half-applied mutation.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Load(ctx context.Context, email string) (*models.UserRecord, error) {
	var raw []byte
	err := r.db.QueryRowContext(ctx, `
		SELECT record FROM user_records WHERE email = $1
	`, email).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var rec models.UserRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *PostgresRepository) Save(ctx context.Context, rec *models.UserRecord) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO user_records (email, record)
		VALUES ($1, $2)
		ON CONFLICT (email) DO UPDATE SET record = EXCLUDED.record, updated_at = NOW()
	`, rec.Profile.Email, raw)
	return err
}

func (r *PostgresRepository) Exists(ctx context.Context, email string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, `
		SELECT 1 FROM user_records WHERE email = $1
	`, email).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
