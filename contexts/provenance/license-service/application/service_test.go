package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"nusakarya/contexts/provenance/license-service/adapters/memory"
	"nusakarya/contexts/provenance/license-service/domain/entities"
	domainerrors "nusakarya/contexts/provenance/license-service/domain/errors"
	"nusakarya/contexts/provenance/license-service/ports"
)

type stubKarya struct {
	known map[string]bool
}

func (d stubKarya) Exists(_ context.Context, karyaID string) (bool, error) {
	return d.known[karyaID], nil
}

func newService(karya stubKarya) (Service, *memory.Store) {
	store := memory.NewStore()
	return Service{
		Licenses: store,
		Karya:    karya,
		Clock:    store,
		IDGen:    store,
	}, store
}

func validInput(karyaID string) ports.CreateLicenseInput {
	return ports.CreateLicenseInput{
		KaryaID:     karyaID,
		Type:        "commercial",
		Price:       100,
		Duration:    12,
		Description: "Commercial usage",
		Tnc:         "Terms and conditions apply",
	}
}

func TestCreateLicenseRequiresRegisteredKarya(t *testing.T) {
	service, store := newService(stubKarya{known: map[string]bool{}})

	_, err := service.CreateLicense(context.Background(), "user-1", validInput("karya-missing"))
	if !errors.Is(err, domainerrors.ErrKaryaNotFound) {
		t.Fatalf("expected karya not found, got %v", err)
	}

	items, err := store.ListByUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("a failed issuance must not persist, found %d records", len(items))
	}
}

func TestCreateLicenseValidation(t *testing.T) {
	service, _ := newService(stubKarya{known: map[string]bool{"karya-1": true}})

	cases := map[string]ports.CreateLicenseInput{
		"missing type": func() ports.CreateLicenseInput {
			input := validInput("karya-1")
			input.Type = ""
			return input
		}(),
		"negative price": func() ports.CreateLicenseInput {
			input := validInput("karya-1")
			input.Price = -1
			return input
		}(),
		"zero duration": func() ports.CreateLicenseInput {
			input := validInput("karya-1")
			input.Duration = 0
			return input
		}(),
		"missing tnc": func() ports.CreateLicenseInput {
			input := validInput("karya-1")
			input.Tnc = ""
			return input
		}(),
	}
	for name, input := range cases {
		if _, err := service.CreateLicense(context.Background(), "user-1", input); !errors.Is(err, domainerrors.ErrInvalidLicenseInput) {
			t.Fatalf("%s: expected invalid input, got %v", name, err)
		}
	}
}

func TestCreateLicenseAllowsZeroPrice(t *testing.T) {
	service, _ := newService(stubKarya{known: map[string]bool{"karya-1": true}})

	input := validInput("karya-1")
	input.Price = 0
	license, err := service.CreateLicense(context.Background(), "user-1", input)
	if err != nil {
		t.Fatalf("zero price must be accepted, got %v", err)
	}
	if license.Price != 0 {
		t.Fatalf("unexpected price %v", license.Price)
	}
}

func TestCreateLicenseDoesNotCheckOwnership(t *testing.T) {
	service, _ := newService(stubKarya{known: map[string]bool{"karya-1": true}})

	license, err := service.CreateLicense(context.Background(), "user-other", validInput("karya-1"))
	if err != nil {
		t.Fatalf("issuance by a non-owner must succeed, got %v", err)
	}
	if license.UserID != "user-other" {
		t.Fatalf("expected issuer user-other, got %q", license.UserID)
	}
	if license.KaryaID != "karya-1" {
		t.Fatalf("expected karya-1, got %q", license.KaryaID)
	}
	if license.ID == "" {
		t.Fatalf("expected generated id")
	}
}

func TestListByUserOrdersNewestFirst(t *testing.T) {
	service, store := newService(stubKarya{})

	base := time.Now().UTC()
	for i, id := range []string{"lic-a", "lic-b", "lic-c"} {
		at := base.Add(time.Duration(i) * time.Second)
		err := store.Create(context.Background(), entities.License{
			ID:          id,
			KaryaID:     "karya-1",
			UserID:      "user-1",
			Type:        "commercial",
			Price:       100,
			Duration:    12,
			Description: "Commercial usage",
			Tnc:         "Terms and conditions apply",
			CreatedAt:   at,
			UpdatedAt:   at,
		})
		if err != nil {
			t.Fatalf("seed create failed: %v", err)
		}
	}

	items, err := service.ListByUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 licenses, got %d", len(items))
	}
	if items[0].ID != "lic-c" || items[2].ID != "lic-a" {
		t.Fatalf("expected newest first, got %q .. %q", items[0].ID, items[2].ID)
	}

	empty, err := service.ListByUser(context.Background(), "user-unknown")
	if err != nil {
		t.Fatalf("list for unknown user failed: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected empty list for unknown user, got %d", len(empty))
	}
}

func TestListByKaryaFiltersByWork(t *testing.T) {
	service, store := newService(stubKarya{})

	for _, seed := range []struct{ id, karyaID string }{
		{"lic-1", "karya-1"},
		{"lic-2", "karya-2"},
		{"lic-3", "karya-1"},
	} {
		err := store.Create(context.Background(), entities.License{
			ID:      seed.id,
			KaryaID: seed.karyaID,
			UserID:  "user-1",
		})
		if err != nil {
			t.Fatalf("seed create failed: %v", err)
		}
	}

	items, err := service.ListByKarya(context.Background(), "karya-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 licenses for karya-1, got %d", len(items))
	}
	for _, item := range items {
		if item.KaryaID != "karya-1" {
			t.Fatalf("unexpected karya id %q", item.KaryaID)
		}
	}
}
