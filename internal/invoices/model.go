package invoices

import "time"

// Invoice records one parsed invoice upload. Only the paid flag changes after
// creation.
type Invoice struct {
	ID        string
	Filename  string
	Vendor    string
	Amount    float64
	DueDate   time.Time
	IsPaid    bool
	ProjectID string
	CreatedAt time.Time
}
