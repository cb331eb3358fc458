package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"nusakarya/contexts/provenance/license-service/domain/entities"
	domainerrors "nusakarya/contexts/provenance/license-service/domain/errors"
	"nusakarya/contexts/provenance/license-service/ports"
)

type Service struct {
	Licenses ports.LicenseRepository
	Karya    ports.KaryaDirectory
	Clock    ports.Clock
	IDGen    ports.IDGenerator
	Logger   *slog.Logger
}

// CreateLicense issues a license against an existing karya. Any
// authenticated identity may license any registered work; no ownership
// check is made against the karya's owner.
func (s Service) CreateLicense(
	ctx context.Context,
	issuerUserID string,
	input ports.CreateLicenseInput,
) (entities.License, error) {
	if strings.TrimSpace(issuerUserID) == "" ||
		strings.TrimSpace(input.KaryaID) == "" ||
		strings.TrimSpace(input.Type) == "" ||
		strings.TrimSpace(input.Description) == "" ||
		strings.TrimSpace(input.Tnc) == "" {
		return entities.License{}, domainerrors.ErrInvalidLicenseInput
	}
	if input.Price < 0 || input.Duration < 1 {
		return entities.License{}, domainerrors.ErrInvalidLicenseInput
	}

	exists, err := s.Karya.Exists(ctx, strings.TrimSpace(input.KaryaID))
	if err != nil {
		return entities.License{}, err
	}
	if !exists {
		return entities.License{}, domainerrors.ErrKaryaNotFound
	}

	id, err := s.IDGen.NewID(ctx)
	if err != nil {
		return entities.License{}, err
	}

	now := s.now()
	license := entities.License{
		ID:          id,
		KaryaID:     strings.TrimSpace(input.KaryaID),
		UserID:      strings.TrimSpace(issuerUserID),
		Type:        strings.TrimSpace(input.Type),
		Price:       input.Price,
		Duration:    input.Duration,
		Description: strings.TrimSpace(input.Description),
		Tnc:         input.Tnc,
		TxHash:      input.TxHash,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.Licenses.Create(ctx, license); err != nil {
		return entities.License{}, err
	}

	resolveLogger(s.Logger).Info("license issued",
		"event", "license_issued",
		"module", "provenance/license-service",
		"layer", "application",
		"license_id", license.ID,
		"karya_id", license.KaryaID,
	)
	return license, nil
}

// ListByUser returns the user's issued licenses newest first; a user with
// none gets an empty slice, not an error.
func (s Service) ListByUser(ctx context.Context, userID string) ([]entities.License, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, domainerrors.ErrInvalidLicenseInput
	}
	return s.Licenses.ListByUser(ctx, strings.TrimSpace(userID))
}

// ListByKarya serves the karya registry's public verification view.
func (s Service) ListByKarya(ctx context.Context, karyaID string) ([]entities.License, error) {
	return s.Licenses.ListByKarya(ctx, strings.TrimSpace(karyaID))
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}
