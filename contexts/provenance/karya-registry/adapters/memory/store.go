package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"nusakarya/contexts/provenance/karya-registry/domain/entities"
	domainerrors "nusakarya/contexts/provenance/karya-registry/domain/errors"
)

// Store is the in-memory repository used by tests and local wiring. The
// mutex makes Create check-and-insert atomic, mirroring the unique index
// the postgres adapter relies on.
type Store struct {
	mu          sync.RWMutex
	karyaByID   map[string]entities.Karya
	karyaByHash map[string]string
}

func NewStore() *Store {
	return &Store{
		karyaByID:   make(map[string]entities.Karya),
		karyaByHash: make(map[string]string),
	}
}

func (s *Store) Create(_ context.Context, karya entities.Karya) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	hash := strings.TrimSpace(karya.FileHash)
	if _, exists := s.karyaByHash[hash]; exists {
		return domainerrors.ErrFileHashExists
	}
	s.karyaByID[karya.ID] = karya
	s.karyaByHash[hash] = karya.ID
	return nil
}

func (s *Store) GetByID(_ context.Context, id string) (entities.Karya, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	karya, ok := s.karyaByID[strings.TrimSpace(id)]
	if !ok {
		return entities.Karya{}, domainerrors.ErrKaryaNotFound
	}
	return karya, nil
}

func (s *Store) GetByHash(_ context.Context, hash string) (entities.Karya, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.karyaByHash[strings.TrimSpace(hash)]
	if !ok {
		return entities.Karya{}, domainerrors.ErrKaryaNotFound
	}
	return s.karyaByID[id], nil
}

func (s *Store) ListByOwner(_ context.Context, userID string) ([]entities.Karya, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Karya, 0)
	for _, karya := range s.karyaByID {
		if karya.UserID == strings.TrimSpace(userID) {
			items = append(items, karya)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		}
		return items[i].ID > items[j].ID
	})
	return items, nil
}

func (s *Store) HashExists(_ context.Context, hash string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.karyaByHash[strings.TrimSpace(hash)]
	return ok, nil
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
