package entities

import "time"

// User is the local record for an externally verified Privy identity.
// Rows are created and mutated only by the sync path; nothing deletes them.
type User struct {
	ID            string
	PrivyID       string
	WalletAddress *string
	Email         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
