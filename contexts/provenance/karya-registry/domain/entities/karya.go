package entities

import "time"

// Karya is a registered creative work, addressed by its file hash. Records
// are write-once: the registry exposes no update or delete path, so the hash
// and core fields can never change after registration.
type Karya struct {
	ID          string
	UserID      string
	Title       string
	Description string
	Type        string
	Category    *string
	Tags        []string
	FileURL     string
	FileHash    string
	NftID       *string
	TxHash      *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
