package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"nusakarya/contexts/provenance/license-service/domain/entities"
)

// Store is the in-memory repository used by tests and local wiring.
type Store struct {
	mu           sync.RWMutex
	licensesByID map[string]entities.License
}

func NewStore() *Store {
	return &Store{
		licensesByID: make(map[string]entities.License),
	}
}

func (s *Store) Create(_ context.Context, license entities.License) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.licensesByID[license.ID] = license
	return nil
}

func (s *Store) ListByUser(_ context.Context, userID string) ([]entities.License, error) {
	return s.list(func(item entities.License) bool {
		return item.UserID == strings.TrimSpace(userID)
	}), nil
}

func (s *Store) ListByKarya(_ context.Context, karyaID string) ([]entities.License, error) {
	return s.list(func(item entities.License) bool {
		return item.KaryaID == strings.TrimSpace(karyaID)
	}), nil
}

func (s *Store) list(keep func(entities.License) bool) []entities.License {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.License, 0)
	for _, item := range s.licensesByID {
		if keep(item) {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		}
		return items[i].ID > items[j].ID
	})
	return items
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
