package store

import (
	"context"
	"sync"

	"github.com/auralabs/aura-backend/internal/models"
)

// MemoryRepository is an in-process UserRepository. It backs tests and the
// memory STORE_BACKEND; records are deep-copied on the way in and out so
// callers never alias stored state.
type MemoryRepository struct {
	mu      sync.RWMutex
	records map[string]*models.UserRecord
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{records: make(map[string]*models.UserRecord)}
}

func (m *MemoryRepository) Load(ctx context.Context, email string) (*models.UserRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.records[email]
	if !ok {
		return nil, ErrNotFound
	}
	return rec.Clone(), nil
}

func (m *MemoryRepository) Save(ctx context.Context, rec *models.UserRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records[rec.Profile.Email] = rec.Clone()
	return nil
}

func (m *MemoryRepository) Exists(ctx context.Context, email string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.records[email]
	return ok, nil
}
