package httpadapter

import (
	"context"
	"log/slog"

	"nusakarya/contexts/identity-access/identity-service/application"
	"nusakarya/contexts/identity-access/identity-service/domain/entities"
	"nusakarya/contexts/identity-access/identity-service/ports"
	httptransport "nusakarya/contexts/identity-access/identity-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// Authenticate is used by the platform server to resolve bearer credentials
// for every protected route. Claims travel as an explicit argument from here
// on, never attached to the request.
func (h Handler) Authenticate(ctx context.Context, authorizationHeader string) (ports.Claims, error) {
	return h.Service.Authenticate(ctx, authorizationHeader)
}

// VerifyHandler godoc
// @Summary Verify bearer token and sync user
// @Description Verifies the Privy token and upserts the local user record.
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} httptransport.VerifyResponse
// @Failure 401 {object} map[string]any
// @Router /auth/verify [post]
func (h Handler) VerifyHandler(ctx context.Context, authorizationHeader string) (httptransport.VerifyResponse, error) {
	claims, err := h.Service.Authenticate(ctx, authorizationHeader)
	if err != nil {
		return httptransport.VerifyResponse{}, err
	}
	user, err := h.Service.SyncUser(ctx, claims)
	if err != nil {
		return httptransport.VerifyResponse{}, err
	}
	return httptransport.VerifyResponse{User: mapUser(user)}, nil
}

// MeHandler godoc
// @Summary Get current authenticated user
// @Description Returns the locally synced user for the verified identity.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} httptransport.MeResponse
// @Failure 401 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /auth/me [get]
func (h Handler) MeHandler(ctx context.Context, claims ports.Claims) (httptransport.MeResponse, error) {
	user, err := h.Service.CurrentUser(ctx, claims)
	if err != nil {
		return httptransport.MeResponse{}, err
	}
	return httptransport.MeResponse{User: mapUser(user)}, nil
}

func mapUser(user entities.User) httptransport.UserPayload {
	return httptransport.UserPayload{
		ID:            user.ID,
		PrivyID:       user.PrivyID,
		WalletAddress: user.WalletAddress,
		Email:         user.Email,
	}
}
