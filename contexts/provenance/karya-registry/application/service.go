package application

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"nusakarya/contexts/provenance/karya-registry/domain/entities"
	domainerrors "nusakarya/contexts/provenance/karya-registry/domain/errors"
	"nusakarya/contexts/provenance/karya-registry/ports"
)

type Service struct {
	Karya    ports.KaryaRepository
	Owners   ports.OwnerDirectory
	Licenses ports.LicenseDirectory
	Clock    ports.Clock
	IDGen    ports.IDGenerator
	Logger   *slog.Logger
}

// CreateKarya registers a new work for ownerID. The HashExists pre-check
// is advisory; a concurrent duplicate that races past it is rejected by the
// repository's unique constraint and surfaced as the same conflict error.
func (s Service) CreateKarya(
	ctx context.Context,
	ownerID string,
	input ports.CreateKaryaInput,
) (entities.Karya, error) {
	if strings.TrimSpace(ownerID) == "" ||
		strings.TrimSpace(input.Title) == "" ||
		strings.TrimSpace(input.Description) == "" ||
		strings.TrimSpace(input.Type) == "" ||
		strings.TrimSpace(input.FileURL) == "" ||
		strings.TrimSpace(input.FileHash) == "" {
		return entities.Karya{}, domainerrors.ErrInvalidKaryaInput
	}

	hash := strings.TrimSpace(input.FileHash)
	exists, err := s.Karya.HashExists(ctx, hash)
	if err != nil {
		return entities.Karya{}, err
	}
	if exists {
		return entities.Karya{}, domainerrors.ErrFileHashExists
	}

	id, err := s.IDGen.NewID(ctx)
	if err != nil {
		return entities.Karya{}, err
	}

	now := s.now()
	karya := entities.Karya{
		ID:          id,
		UserID:      strings.TrimSpace(ownerID),
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Type:        strings.TrimSpace(input.Type),
		Category:    input.Category,
		Tags:        copyOrEmpty(input.Tags),
		FileURL:     strings.TrimSpace(input.FileURL),
		FileHash:    hash,
		NftID:       input.NftID,
		TxHash:      input.TxHash,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.Karya.Create(ctx, karya); err != nil {
		if errors.Is(err, domainerrors.ErrFileHashExists) {
			return entities.Karya{}, domainerrors.ErrFileHashExists
		}
		return entities.Karya{}, err
	}

	resolveLogger(s.Logger).Info("karya registered",
		"event", "karya_registered",
		"module", "provenance/karya-registry",
		"layer", "application",
		"karya_id", karya.ID,
		"file_hash", karya.FileHash,
	)
	return karya, nil
}

// ListByOwner returns the owner's works newest first; an owner with no
// works gets an empty slice, not an error.
func (s Service) ListByOwner(ctx context.Context, ownerID string) ([]entities.Karya, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, domainerrors.ErrInvalidKaryaInput
	}
	return s.Karya.ListByOwner(ctx, strings.TrimSpace(ownerID))
}

// VerifyByHash is the public provenance lookup: no authentication, returns
// the work with its owner and issued licenses embedded.
func (s Service) VerifyByHash(ctx context.Context, hash string) (ports.KaryaDetail, error) {
	hash = strings.TrimSpace(hash)
	if hash == "" {
		return ports.KaryaDetail{}, domainerrors.ErrHashRequired
	}

	karya, err := s.Karya.GetByHash(ctx, hash)
	if err != nil {
		return ports.KaryaDetail{}, err
	}

	owner, err := s.Owners.GetOwner(ctx, karya.UserID)
	if err != nil {
		return ports.KaryaDetail{}, domainerrors.ErrOwnerNotFound
	}

	licenses, err := s.Licenses.ListByKarya(ctx, karya.ID)
	if err != nil {
		return ports.KaryaDetail{}, err
	}
	if licenses == nil {
		licenses = []ports.LicenseRef{}
	}

	return ports.KaryaDetail{
		Karya:    karya,
		Owner:    owner,
		Licenses: licenses,
	}, nil
}

// Exists reports whether a work is registered; consumed by the license
// service through its KaryaDirectory port.
func (s Service) Exists(ctx context.Context, karyaID string) (bool, error) {
	_, err := s.Karya.GetByID(ctx, strings.TrimSpace(karyaID))
	if err != nil {
		if errors.Is(err, domainerrors.ErrKaryaNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}

func copyOrEmpty(items []string) []string {
	if len(items) == 0 {
		return []string{}
	}
	return append([]string(nil), items...)
}
