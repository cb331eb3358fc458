package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"nusakarya/contexts/identity-access/identity-service/domain/entities"
	domainerrors "nusakarya/contexts/identity-access/identity-service/domain/errors"
	"nusakarya/contexts/identity-access/identity-service/ports"
)

// Store is the in-memory repository used by tests and local wiring. The
// mutex gives the same all-or-nothing upsert semantics the postgres adapter
// gets from its unique index.
type Store struct {
	mu             sync.RWMutex
	usersByPrivyID map[string]entities.User
}

func NewStore() *Store {
	return &Store{
		usersByPrivyID: make(map[string]entities.User),
	}
}

func (s *Store) Upsert(
	_ context.Context,
	privyID string,
	profile ports.Profile,
	newID string,
	now time.Time,
) (entities.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.TrimSpace(privyID)
	now = now.UTC()

	if existing, ok := s.usersByPrivyID[key]; ok {
		existing.WalletAddress = copyOptional(profile.WalletAddress)
		existing.Email = copyOptional(profile.Email)
		existing.UpdatedAt = now
		s.usersByPrivyID[key] = existing
		return existing, nil
	}

	user := entities.User{
		ID:            strings.TrimSpace(newID),
		PrivyID:       key,
		WalletAddress: copyOptional(profile.WalletAddress),
		Email:         copyOptional(profile.Email),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	s.usersByPrivyID[key] = user
	return user, nil
}

func (s *Store) GetByPrivyID(_ context.Context, privyID string) (entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.usersByPrivyID[strings.TrimSpace(privyID)]
	if !ok {
		return entities.User{}, domainerrors.ErrUserNotFound
	}
	return user, nil
}

func (s *Store) GetByID(_ context.Context, id string) (entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.usersByPrivyID {
		if user.ID == strings.TrimSpace(id) {
			return user, nil
		}
	}
	return entities.User{}, domainerrors.ErrUserNotFound
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

func copyOptional(value *string) *string {
	if value == nil {
		return nil
	}
	copied := *value
	return &copied
}
