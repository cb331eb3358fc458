package ports

import (
	"context"
	"time"

	"nusakarya/contexts/provenance/karya-registry/domain/entities"
)

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

type CreateKaryaInput struct {
	Title       string
	Description string
	Type        string
	Category    *string
	Tags        []string
	FileURL     string
	FileHash    string
	NftID       *string
	TxHash      *string
}

// Owner is the registry's view of the identity that registered a work.
type Owner struct {
	ID            string
	PrivyID       string
	WalletAddress *string
	Email         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// LicenseRef is the registry's view of a license issued against a work.
type LicenseRef struct {
	ID          string
	KaryaID     string
	UserID      string
	Type        string
	Price       float64
	Duration    int
	Description string
	Tnc         string
	TxHash      *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// KaryaDetail is the public verification view: the work plus its owner and
// every license issued against it.
type KaryaDetail struct {
	Karya    entities.Karya
	Owner    Owner
	Licenses []LicenseRef
}

// KaryaRepository persists works. Create must surface the storage layer's
// unique-constraint violation on file_hash as the conflict error; the
// application-level existence check is advisory only.
type KaryaRepository interface {
	Create(ctx context.Context, karya entities.Karya) error
	GetByID(ctx context.Context, id string) (entities.Karya, error)
	GetByHash(ctx context.Context, hash string) (entities.Karya, error)
	ListByOwner(ctx context.Context, userID string) ([]entities.Karya, error)
	HashExists(ctx context.Context, hash string) (bool, error)
}

// OwnerDirectory resolves a work's owner; implemented by the identity
// service and wired at the composition root.
type OwnerDirectory interface {
	GetOwner(ctx context.Context, userID string) (Owner, error)
}

// LicenseDirectory lists licenses issued against a work; implemented by the
// license service and wired at the composition root.
type LicenseDirectory interface {
	ListByKarya(ctx context.Context, karyaID string) ([]LicenseRef, error)
}
