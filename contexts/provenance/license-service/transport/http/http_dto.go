package http

import "time"

type CreateLicenseRequest struct {
	KaryaID     string   `json:"karyaId"`
	Type        string   `json:"type"`
	Price       *float64 `json:"price"`
	Duration    *int     `json:"duration"`
	Description string   `json:"description"`
	Tnc         string   `json:"tnc"`
	TxHash      *string  `json:"txHash,omitempty"`
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

// CreateLicenseResponse is the data payload of POST /license.
type CreateLicenseResponse struct {
	License LicensePayload `json:"license"`
}

// ListLicensesResponse is the data payload of GET /license.
type ListLicensesResponse struct {
	Licenses []LicensePayload `json:"licenses"`
}
