package http

// UserPayload mirrors the public user shape of the API.
type UserPayload struct {
	ID            string  `json:"id"`
	PrivyID       string  `json:"privyId"`
	WalletAddress *string `json:"walletAddress"`
	Email         *string `json:"email"`
}

// VerifyResponse is the data payload of POST /auth/verify.
type VerifyResponse struct {
	User UserPayload `json:"user"`
}

// MeResponse is the data payload of GET /auth/me.
type MeResponse struct {
	User UserPayload `json:"user"`
}
