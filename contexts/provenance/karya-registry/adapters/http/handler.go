package httpadapter

import (
	"context"
	"log/slog"

	"nusakarya/contexts/provenance/karya-registry/application"
	"nusakarya/contexts/provenance/karya-registry/domain/entities"
	"nusakarya/contexts/provenance/karya-registry/ports"
	httptransport "nusakarya/contexts/provenance/karya-registry/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// CreateKaryaHandler godoc
// @Summary Register a creative work
// @Description Registers a content-addressed karya for the authenticated user.
// @Tags karya
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 201 {object} httptransport.CreateKaryaResponse
// @Failure 400 {object} map[string]any
// @Failure 401 {object} map[string]any
// @Failure 409 {object} map[string]any
// @Router /karya [post]
func (h Handler) CreateKaryaHandler(
	ctx context.Context,
	ownerID string,
	req httptransport.CreateKaryaRequest,
) (httptransport.CreateKaryaResponse, error) {
	karya, err := h.Service.CreateKarya(ctx, ownerID, ports.CreateKaryaInput{
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Category:    req.Category,
		Tags:        req.Tag,
		FileURL:     req.FileURL,
		FileHash:    req.FileHash,
		NftID:       req.NftID,
		TxHash:      req.TxHash,
	})
	if err != nil {
		return httptransport.CreateKaryaResponse{}, err
	}
	return httptransport.CreateKaryaResponse{Karya: mapKarya(karya)}, nil
}

// ListKaryaHandler godoc
// @Summary List the authenticated user's works
// @Description Returns the user's karya ordered by creation time descending.
// @Tags karya
// @Produce json
// @Security BearerAuth
// @Success 200 {object} httptransport.ListKaryaResponse
// @Failure 401 {object} map[string]any
// @Router /karya [get]
func (h Handler) ListKaryaHandler(ctx context.Context, ownerID string) (httptransport.ListKaryaResponse, error) {
	items, err := h.Service.ListByOwner(ctx, ownerID)
	if err != nil {
		return httptransport.ListKaryaResponse{}, err
	}
	payloads := make([]httptransport.KaryaPayload, 0, len(items))
	for _, item := range items {
		payloads = append(payloads, mapKarya(item))
	}
	return httptransport.ListKaryaResponse{Karya: payloads}, nil
}

// VerifyKaryaHandler godoc
// @Summary Verify a work by file hash
// @Description Public provenance lookup returning the work with owner and licenses.
// @Tags karya
// @Accept json
// @Produce json
// @Success 200 {object} httptransport.VerifyKaryaResponse
// @Failure 400 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /karya/verify [post]
func (h Handler) VerifyKaryaHandler(
	ctx context.Context,
	req httptransport.VerifyKaryaRequest,
) (httptransport.VerifyKaryaResponse, error) {
	detail, err := h.Service.VerifyByHash(ctx, req.Hash)
	if err != nil {
		return httptransport.VerifyKaryaResponse{}, err
	}

	licenses := make([]httptransport.LicensePayload, 0, len(detail.Licenses))
	for _, item := range detail.Licenses {
		licenses = append(licenses, httptransport.LicensePayload{
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

	karya := detail.Karya
	return httptransport.VerifyKaryaResponse{
		Karya: httptransport.VerifiedKaryaPayload{
			ID:          karya.ID,
			UserID:      karya.UserID,
			Title:       karya.Title,
			Description: karya.Description,
			Type:        karya.Type,
			Category:    karya.Category,
			Tag:         karya.Tags,
			FileURL:     karya.FileURL,
			FileHash:    karya.FileHash,
			NftID:       karya.NftID,
			TxHash:      karya.TxHash,
			CreatedAt:   karya.CreatedAt,
			UpdatedAt:   karya.UpdatedAt,
			User: httptransport.OwnerPayload{
				ID:            detail.Owner.ID,
				PrivyID:       detail.Owner.PrivyID,
				WalletAddress: detail.Owner.WalletAddress,
				Email:         detail.Owner.Email,
				CreatedAt:     detail.Owner.CreatedAt,
				UpdatedAt:     detail.Owner.UpdatedAt,
			},
			Licenses: licenses,
		},
	}, nil
}

func mapKarya(item entities.Karya) httptransport.KaryaPayload {
	return httptransport.KaryaPayload{
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		Type:        item.Type,
		Category:    item.Category,
		Tag:         item.Tags,
		FileURL:     item.FileURL,
		FileHash:    item.FileHash,
		NftID:       item.NftID,
		TxHash:      item.TxHash,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}
