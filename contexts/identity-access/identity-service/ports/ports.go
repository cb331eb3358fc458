package ports

import (
	"context"
	"time"

	"nusakarya/contexts/identity-access/identity-service/domain/entities"
)

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// Claims is the verified identity assertion returned by the provider.
type Claims struct {
	PrivyID string
}

// Profile carries the optional account details the provider holds for a user.
type Profile struct {
	WalletAddress *string
	Email         *string
}

// TokenVerifier talks to the external identity provider. Each call is one
// network round trip; results are never cached locally.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (Claims, error)
	FetchProfile(ctx context.Context, privyID string) (Profile, error)
}

// UserRepository persists local identities. Upsert must be a single atomic
// conditional write keyed by privy_id so concurrent syncs for the same
// identity cannot create duplicate rows.
type UserRepository interface {
	Upsert(ctx context.Context, privyID string, profile Profile, newID string, now time.Time) (entities.User, error)
	GetByPrivyID(ctx context.Context, privyID string) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
}
