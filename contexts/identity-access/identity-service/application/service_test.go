package application

import (
	"context"
	"errors"
	"testing"

	"nusakarya/contexts/identity-access/identity-service/adapters/memory"
	domainerrors "nusakarya/contexts/identity-access/identity-service/domain/errors"
	"nusakarya/contexts/identity-access/identity-service/ports"
)

type stubVerifier struct {
	claims     ports.Claims
	verifyErr  error
	profile    ports.Profile
	profileErr error
}

func (v stubVerifier) VerifyToken(_ context.Context, _ string) (ports.Claims, error) {
	if v.verifyErr != nil {
		return ports.Claims{}, v.verifyErr
	}
	return v.claims, nil
}

func (v stubVerifier) FetchProfile(_ context.Context, _ string) (ports.Profile, error) {
	if v.profileErr != nil {
		return ports.Profile{}, v.profileErr
	}
	return v.profile, nil
}

func newService(verifier ports.TokenVerifier) (Service, *memory.Store) {
	store := memory.NewStore()
	return Service{
		Verifier: verifier,
		Users:    store,
		Clock:    store,
		IDGen:    store,
	}, store
}

func TestAuthenticateRejectsMissingHeader(t *testing.T) {
	service, _ := newService(stubVerifier{claims: ports.Claims{PrivyID: "did:privy:abc"}})

	for _, header := range []string{"", "Token abc", "Bearer", "Bearer "} {
		_, err := service.Authenticate(context.Background(), header)
		if !errors.Is(err, domainerrors.ErrMissingAuthHeader) {
			t.Fatalf("header %q: expected missing auth header error, got %v", header, err)
		}
	}
}

func TestAuthenticateNormalizesProviderRejection(t *testing.T) {
	service, _ := newService(stubVerifier{verifyErr: errors.New("signature expired at provider")})

	_, err := service.Authenticate(context.Background(), "Bearer some-token")
	if !errors.Is(err, domainerrors.ErrInvalidToken) {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}

func TestAuthenticateReturnsClaims(t *testing.T) {
	service, _ := newService(stubVerifier{claims: ports.Claims{PrivyID: "did:privy:abc"}})

	claims, err := service.Authenticate(context.Background(), "Bearer some-token")
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if claims.PrivyID != "did:privy:abc" {
		t.Fatalf("unexpected privy id %q", claims.PrivyID)
	}
}

func TestSyncUserIsIdempotent(t *testing.T) {
	wallet := "0xabc"
	service, _ := newService(stubVerifier{
		claims:  ports.Claims{PrivyID: "did:privy:abc"},
		profile: ports.Profile{WalletAddress: &wallet},
	})

	first, err := service.SyncUser(context.Background(), ports.Claims{PrivyID: "did:privy:abc"})
	if err != nil {
		t.Fatalf("first sync failed: %v", err)
	}
	second, err := service.SyncUser(context.Background(), ports.Claims{PrivyID: "did:privy:abc"})
	if err != nil {
		t.Fatalf("second sync failed: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("expected stable internal id, got %q then %q", first.ID, second.ID)
	}
	if second.CreatedAt != first.CreatedAt {
		t.Fatalf("sync must not rewrite createdAt")
	}
	if second.UpdatedAt.Before(second.CreatedAt) {
		t.Fatalf("updatedAt %v must not precede createdAt %v", second.UpdatedAt, second.CreatedAt)
	}
}

func TestSyncUserLastWriteWins(t *testing.T) {
	service, store := newService(stubVerifier{claims: ports.Claims{PrivyID: "did:privy:abc"}})

	user, err := service.SyncUser(context.Background(), ports.Claims{PrivyID: "did:privy:abc"})
	if err != nil {
		t.Fatalf("sync failed: %v", err)
	}
	if user.WalletAddress != nil || user.Email != nil {
		t.Fatalf("expected empty profile on first sync")
	}

	wallet := "0xdef"
	email := "artist@example.com"
	service.Verifier = stubVerifier{
		claims:  ports.Claims{PrivyID: "did:privy:abc"},
		profile: ports.Profile{WalletAddress: &wallet, Email: &email},
	}
	updated, err := service.SyncUser(context.Background(), ports.Claims{PrivyID: "did:privy:abc"})
	if err != nil {
		t.Fatalf("second sync failed: %v", err)
	}
	if updated.WalletAddress == nil || *updated.WalletAddress != wallet {
		t.Fatalf("expected wallet %q, got %v", wallet, updated.WalletAddress)
	}
	if updated.Email == nil || *updated.Email != email {
		t.Fatalf("expected email %q, got %v", email, updated.Email)
	}

	stored, err := store.GetByPrivyID(context.Background(), "did:privy:abc")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if stored.ID != user.ID {
		t.Fatalf("expected one row, ids diverged: %q vs %q", stored.ID, user.ID)
	}
}

func TestCurrentUserFailsBeforeSync(t *testing.T) {
	service, _ := newService(stubVerifier{claims: ports.Claims{PrivyID: "did:privy:abc"}})

	_, err := service.CurrentUser(context.Background(), ports.Claims{PrivyID: "did:privy:never-synced"})
	if !errors.Is(err, domainerrors.ErrUserNotFound) {
		t.Fatalf("expected user not found, got %v", err)
	}
}

func TestSyncUserFailsWhenProfileFetchFails(t *testing.T) {
	service, _ := newService(stubVerifier{
		claims:     ports.Claims{PrivyID: "did:privy:abc"},
		profileErr: errors.New("provider unavailable"),
	})

	_, err := service.SyncUser(context.Background(), ports.Claims{PrivyID: "did:privy:abc"})
	if !errors.Is(err, domainerrors.ErrInvalidToken) {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}
