package entities

import "time"

// License is a usage grant issued against a registered karya. Records are
// write-once: there is no revocation or renewal path.
type License struct {
	ID          string
	KaryaID     string
	UserID      string
	Type        string
	Price       float64
	Duration    int
	Description string
	Tnc         string
	TxHash      *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
