package httpadapter

import (
	"context"
	"log/slog"

	"nusakarya/contexts/provenance/license-service/application"
	"nusakarya/contexts/provenance/license-service/domain/entities"
	domainerrors "nusakarya/contexts/provenance/license-service/domain/errors"
	"nusakarya/contexts/provenance/license-service/ports"
	httptransport "nusakarya/contexts/provenance/license-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// CreateLicenseHandler godoc
// @Summary Issue a license for a karya
// @Description Creates a usage license referencing an existing work.
// @Tags license
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 201 {object} httptransport.CreateLicenseResponse
// @Failure 400 {object} map[string]any
// @Failure 401 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /license [post]
func (h Handler) CreateLicenseHandler(
	ctx context.Context,
	issuerUserID string,
	req httptransport.CreateLicenseRequest,
) (httptransport.CreateLicenseResponse, error) {
	// price and duration are required; a zero price is valid, absence is not.
	if req.Price == nil || req.Duration == nil {
		return httptransport.CreateLicenseResponse{}, domainerrors.ErrInvalidLicenseInput
	}
	license, err := h.Service.CreateLicense(ctx, issuerUserID, ports.CreateLicenseInput{
		KaryaID:     req.KaryaID,
		Type:        req.Type,
		Price:       *req.Price,
		Duration:    *req.Duration,
		Description: req.Description,
		Tnc:         req.Tnc,
		TxHash:      req.TxHash,
	})
	if err != nil {
		return httptransport.CreateLicenseResponse{}, err
	}
	return httptransport.CreateLicenseResponse{License: mapLicense(license)}, nil
}

// ListLicensesHandler godoc
// @Summary List the authenticated user's licenses
// @Description Returns issued licenses ordered by creation time descending.
// @Tags license
// @Produce json
// @Security BearerAuth
// @Success 200 {object} httptransport.ListLicensesResponse
// @Failure 401 {object} map[string]any
// @Router /license [get]
func (h Handler) ListLicensesHandler(ctx context.Context, userID string) (httptransport.ListLicensesResponse, error) {
	items, err := h.Service.ListByUser(ctx, userID)
	if err != nil {
		return httptransport.ListLicensesResponse{}, err
	}
	payloads := make([]httptransport.LicensePayload, 0, len(items))
	for _, item := range items {
		payloads = append(payloads, mapLicense(item))
	}
	return httptransport.ListLicensesResponse{Licenses: payloads}, nil
}

func mapLicense(item entities.License) httptransport.LicensePayload {
	return httptransport.LicensePayload{
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
	}
}
