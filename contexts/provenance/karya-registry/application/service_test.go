package application

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"nusakarya/contexts/provenance/karya-registry/adapters/memory"
	"nusakarya/contexts/provenance/karya-registry/domain/entities"
	domainerrors "nusakarya/contexts/provenance/karya-registry/domain/errors"
	"nusakarya/contexts/provenance/karya-registry/ports"
)

type stubOwners struct {
	owners map[string]ports.Owner
}

func (d stubOwners) GetOwner(_ context.Context, userID string) (ports.Owner, error) {
	owner, ok := d.owners[userID]
	if !ok {
		return ports.Owner{}, errors.New("owner missing")
	}
	return owner, nil
}

type stubLicenses struct {
	byKarya map[string][]ports.LicenseRef
}

func (d stubLicenses) ListByKarya(_ context.Context, karyaID string) ([]ports.LicenseRef, error) {
	return d.byKarya[karyaID], nil
}

func newService(owners stubOwners, licenses stubLicenses) (Service, *memory.Store) {
	store := memory.NewStore()
	return Service{
		Karya:    store,
		Owners:   owners,
		Licenses: licenses,
		Clock:    store,
		IDGen:    store,
	}, store
}

func validInput(hash string) ports.CreateKaryaInput {
	return ports.CreateKaryaInput{
		Title:       "Wayang Digital",
		Description: "Digital wayang artwork",
		Type:        "image",
		FileURL:     "https://cdn.example.com/wayang.png",
		FileHash:    hash,
	}
}

func TestCreateKaryaRejectsMissingFields(t *testing.T) {
	service, _ := newService(stubOwners{}, stubLicenses{})

	input := validInput("abc123")
	input.Title = ""
	_, err := service.CreateKarya(context.Background(), "user-1", input)
	if !errors.Is(err, domainerrors.ErrInvalidKaryaInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestCreateKaryaRejectsDuplicateHash(t *testing.T) {
	service, _ := newService(stubOwners{}, stubLicenses{})

	if _, err := service.CreateKarya(context.Background(), "user-1", validInput("abc123")); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	_, err := service.CreateKarya(context.Background(), "user-2", validInput("abc123"))
	if !errors.Is(err, domainerrors.ErrFileHashExists) {
		t.Fatalf("expected file hash conflict, got %v", err)
	}
}

func TestCreateKaryaConcurrentDuplicatesYieldOneWinner(t *testing.T) {
	service, _ := newService(stubOwners{}, stubLicenses{})

	const attempts = 32
	var wg sync.WaitGroup
	results := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.CreateKarya(context.Background(), "user-1", validInput("race-hash"))
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var created, conflicted int
	for err := range results {
		switch {
		case err == nil:
			created++
		case errors.Is(err, domainerrors.ErrFileHashExists):
			conflicted++
		default:
			t.Fatalf("unexpected error under race: %v", err)
		}
	}
	if created != 1 {
		t.Fatalf("expected exactly one successful create, got %d", created)
	}
	if conflicted != attempts-1 {
		t.Fatalf("expected %d conflicts, got %d", attempts-1, conflicted)
	}
}

func TestCreateThenVerifyRoundTrip(t *testing.T) {
	owners := stubOwners{owners: map[string]ports.Owner{
		"user-1": {ID: "user-1", PrivyID: "did:privy:abc"},
	}}
	service, _ := newService(owners, stubLicenses{})

	created, err := service.CreateKarya(context.Background(), "user-1", validInput("abc123"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	detail, err := service.VerifyByHash(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if detail.Karya.FileHash != "abc123" {
		t.Fatalf("unexpected hash %q", detail.Karya.FileHash)
	}
	if detail.Karya.Title != created.Title {
		t.Fatalf("unexpected title %q", detail.Karya.Title)
	}
	if detail.Owner.ID != "user-1" {
		t.Fatalf("unexpected owner %q", detail.Owner.ID)
	}
	if len(detail.Licenses) != 0 {
		t.Fatalf("expected empty license list, got %d", len(detail.Licenses))
	}
	if detail.Licenses == nil {
		t.Fatalf("license list must be empty, not nil")
	}
}

func TestVerifyByHashValidation(t *testing.T) {
	service, _ := newService(stubOwners{}, stubLicenses{})

	_, err := service.VerifyByHash(context.Background(), "   ")
	if !errors.Is(err, domainerrors.ErrHashRequired) {
		t.Fatalf("expected hash required, got %v", err)
	}

	_, err = service.VerifyByHash(context.Background(), "missing-hash")
	if !errors.Is(err, domainerrors.ErrKaryaNotFound) {
		t.Fatalf("expected karya not found, got %v", err)
	}
}

func TestListByOwnerOrdersNewestFirst(t *testing.T) {
	store := memory.NewStore()
	service := Service{
		Karya: store,
		Clock: store,
		IDGen: store,
	}

	base := time.Now().UTC()
	for i, hash := range []string{"hash-a", "hash-b", "hash-c"} {
		id, err := store.NewID(context.Background())
		if err != nil {
			t.Fatalf("id generation failed: %v", err)
		}
		at := base.Add(time.Duration(i) * time.Second)
		err = store.Create(context.Background(), entities.Karya{
			ID:          id,
			UserID:      "user-1",
			Title:       "Wayang Digital",
			Description: "Digital wayang artwork",
			Type:        "image",
			Tags:        []string{},
			FileURL:     "https://cdn.example.com/wayang.png",
			FileHash:    hash,
			CreatedAt:   at,
			UpdatedAt:   at,
		})
		if err != nil {
			t.Fatalf("seed create failed: %v", err)
		}
	}

	items, err := service.ListByOwner(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	if items[0].FileHash != "hash-c" || items[2].FileHash != "hash-a" {
		t.Fatalf("expected newest first, got %q .. %q", items[0].FileHash, items[2].FileHash)
	}

	empty, err := service.ListByOwner(context.Background(), "user-unknown")
	if err != nil {
		t.Fatalf("list for unknown owner failed: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected empty list for unknown owner, got %d", len(empty))
	}
}

func TestExistsReportsRegistration(t *testing.T) {
	service, _ := newService(stubOwners{}, stubLicenses{})

	created, err := service.CreateKarya(context.Background(), "user-1", validInput("abc123"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	exists, err := service.Exists(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("exists failed: %v", err)
	}
	if !exists {
		t.Fatalf("expected registered karya to exist")
	}

	exists, err = service.Exists(context.Background(), "missing-id")
	if err != nil {
		t.Fatalf("exists for missing id failed: %v", err)
	}
	if exists {
		t.Fatalf("expected missing karya to report false")
	}
}
