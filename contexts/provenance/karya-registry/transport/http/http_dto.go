package http

import "time"

type CreateKaryaRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Type        string   `json:"type"`
	Category    *string  `json:"category,omitempty"`
	Tag         []string `json:"tag,omitempty"`
	FileURL     string   `json:"fileUrl"`
	FileHash    string   `json:"fileHash"`
	NftID       *string  `json:"nftId,omitempty"`
	TxHash      *string  `json:"txHash,omitempty"`
}

type KaryaPayload struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Category    *string   `json:"category"`
	Tag         []string  `json:"tag"`
	FileURL     string    `json:"fileUrl"`
	FileHash    string    `json:"fileHash"`
	NftID       *string   `json:"nftId"`
	TxHash      *string   `json:"txHash"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateKaryaResponse is the data payload of POST /karya.
type CreateKaryaResponse struct {
	Karya KaryaPayload `json:"karya"`
}

// ListKaryaResponse is the data payload of GET /karya.
type ListKaryaResponse struct {
	Karya []KaryaPayload `json:"karya"`
}

type VerifyKaryaRequest struct {
	Hash string `json:"hash"`
}

type OwnerPayload struct {
	ID            string    `json:"id"`
	PrivyID       string    `json:"privyId"`
	WalletAddress *string   `json:"walletAddress"`
	Email         *string   `json:"email"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type LicensePayload struct {
	ID          string    `json:"id"`
	KaryaID     string    `json:"karyaId"`
	UserID      string    `json:"userId"`
	Type        string    `json:"type"`
	Price       float64   `json:"price"`
	Duration    int       `json:"duration"`
	Description string    `json:"description"`
	Tnc         string    `json:"tnc"`
	TxHash      *string   `json:"txHash"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type VerifiedKaryaPayload struct {
	ID          string           `json:"id"`
	UserID      string           `json:"userId"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Type        string           `json:"type"`
	Category    *string          `json:"category"`
	Tag         []string         `json:"tag"`
	FileURL     string           `json:"fileUrl"`
	FileHash    string           `json:"fileHash"`
	NftID       *string          `json:"nftId"`
	TxHash      *string          `json:"txHash"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
	User        OwnerPayload     `json:"user"`
	Licenses    []LicensePayload `json:"licenses"`
}

// VerifyKaryaResponse is the data payload of POST /karya/verify.
type VerifyKaryaResponse struct {
	Karya VerifiedKaryaPayload `json:"karya"`
}
