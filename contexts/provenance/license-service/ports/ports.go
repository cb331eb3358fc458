package ports

import (
	"context"
	"time"

	"nusakarya/contexts/provenance/license-service/domain/entities"
)

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

type CreateLicenseInput struct {
	KaryaID     string
	Type        string
	Price       float64
	Duration    int
	Description string
	Tnc         string
	TxHash      *string
}

type LicenseRepository interface {
	Create(ctx context.Context, license entities.License) error
	ListByUser(ctx context.Context, userID string) ([]entities.License, error)
	ListByKarya(ctx context.Context, karyaID string) ([]entities.License, error)
}

// KaryaDirectory answers the referential check at issuance time; implemented
// by the karya registry and wired at the composition root.
type KaryaDirectory interface {
	Exists(ctx context.Context, karyaID string) (bool, error)
}
