package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"nusakarya/contexts/identity-access/identity-service/domain/entities"
	domainerrors "nusakarya/contexts/identity-access/identity-service/domain/errors"
	"nusakarya/contexts/identity-access/identity-service/ports"
)

const bearerPrefix = "Bearer "

type Service struct {
	Verifier ports.TokenVerifier
	Users    ports.UserRepository
	Clock    ports.Clock
	IDGen    ports.IDGenerator
	Logger   *slog.Logger
}

// Authenticate resolves the Authorization header into verified claims.
// A missing or malformed header fails before any network call; every
// provider-side rejection is normalized to the same invalid-token error so
// callers never observe provider detail.
func (s Service) Authenticate(ctx context.Context, authorizationHeader string) (ports.Claims, error) {
	if authorizationHeader == "" || !strings.HasPrefix(authorizationHeader, bearerPrefix) {
		return ports.Claims{}, domainerrors.ErrMissingAuthHeader
	}
	token := authorizationHeader[len(bearerPrefix):]
	if strings.TrimSpace(token) == "" {
		return ports.Claims{}, domainerrors.ErrMissingAuthHeader
	}

	claims, err := s.Verifier.VerifyToken(ctx, token)
	if err != nil {
		resolveLogger(s.Logger).Warn("token verification rejected",
			"event", "identity_token_rejected",
			"module", "identity-access/identity-service",
			"layer", "application",
		)
		return ports.Claims{}, domainerrors.ErrInvalidToken
	}
	if strings.TrimSpace(claims.PrivyID) == "" {
		return ports.Claims{}, domainerrors.ErrInvalidToken
	}
	return claims, nil
}

// SyncUser reconciles the verified identity into the local store. The upsert
// is keyed by privy id and last-write-wins on wallet/email, so repeated syncs
// converge to one row with a stable internal id.
func (s Service) SyncUser(ctx context.Context, claims ports.Claims) (entities.User, error) {
	privyID := strings.TrimSpace(claims.PrivyID)
	if privyID == "" {
		return entities.User{}, domainerrors.ErrInvalidRequest
	}

	profile, err := s.Verifier.FetchProfile(ctx, privyID)
	if err != nil {
		return entities.User{}, domainerrors.ErrInvalidToken
	}

	newID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return entities.User{}, err
	}

	user, err := s.Users.Upsert(ctx, privyID, profile, newID, s.now())
	if err != nil {
		return entities.User{}, err
	}

	resolveLogger(s.Logger).Info("user synced",
		"event", "identity_user_synced",
		"module", "identity-access/identity-service",
		"layer", "application",
		"user_id", user.ID,
	)
	return user, nil
}

// CurrentUser is the read-only lookup used by routes that must not sync.
func (s Service) CurrentUser(ctx context.Context, claims ports.Claims) (entities.User, error) {
	privyID := strings.TrimSpace(claims.PrivyID)
	if privyID == "" {
		return entities.User{}, domainerrors.ErrInvalidRequest
	}
	return s.Users.GetByPrivyID(ctx, privyID)
}

// UserByID resolves a local user by internal id; used by the karya registry
// to embed the owner in public verification responses.
func (s Service) UserByID(ctx context.Context, id string) (entities.User, error) {
	if strings.TrimSpace(id) == "" {
		return entities.User{}, domainerrors.ErrInvalidRequest
	}
	return s.Users.GetByID(ctx, strings.TrimSpace(id))
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}
