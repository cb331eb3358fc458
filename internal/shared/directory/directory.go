// Package directory bridges context services to each other's collaborator
// ports. Each context declares what it needs; the composition root wires
// these adapters so no context imports another context's packages.
package directory

import (
	"context"

	identityapplication "nusakarya/contexts/identity-access/identity-service/application"
	karyaapplication "nusakarya/contexts/provenance/karya-registry/application"
	karyaports "nusakarya/contexts/provenance/karya-registry/ports"
	licenseports "nusakarya/contexts/provenance/license-service/ports"
)

// OwnerDirectory implements the karya registry's owner lookup on top of the
// identity service.
type OwnerDirectory struct {
	Identity identityapplication.Service
}

func (d OwnerDirectory) GetOwner(ctx context.Context, userID string) (karyaports.Owner, error) {
	user, err := d.Identity.UserByID(ctx, userID)
	if err != nil {
		return karyaports.Owner{}, err
	}
	return karyaports.Owner{
		ID:            user.ID,
		PrivyID:       user.PrivyID,
		WalletAddress: user.WalletAddress,
		Email:         user.Email,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}, nil
}

// LicenseDirectory implements the karya registry's license listing on top of
// the license repository. Wrapping the repository rather than the license
// service keeps the wiring acyclic: the license service itself depends on
// the karya registry for its referential check.
type LicenseDirectory struct {
	Licenses licenseports.LicenseRepository
}

func (d LicenseDirectory) ListByKarya(ctx context.Context, karyaID string) ([]karyaports.LicenseRef, error) {
	items, err := d.Licenses.ListByKarya(ctx, karyaID)
	if err != nil {
		return nil, err
	}
	refs := make([]karyaports.LicenseRef, 0, len(items))
	for _, item := range items {
		refs = append(refs, karyaports.LicenseRef{
			ID:          item.ID,
			KaryaID:     item.KaryaID,
			UserID:      item.UserID,
			Type:        item.Type,
			Price:       item.Price,
			Duration:    item.Duration,
			Description: item.Description,
			Tnc:         item.Tnc,
			TxHash:      item.TxHash,
			CreatedAt:   item.CreatedAt,
			UpdatedAt:   item.UpdatedAt,
		})
	}
	return refs, nil
}

// KaryaDirectory implements the license service's referential check on top
// of the karya registry.
type KaryaDirectory struct {
	Registry karyaapplication.Service
}

func (d KaryaDirectory) Exists(ctx context.Context, karyaID string) (bool, error) {
	return d.Registry.Exists(ctx, karyaID)
}
