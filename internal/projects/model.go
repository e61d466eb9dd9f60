package projects

import "time"

// Project is a planning engagement owned by one user. Invoices and documents
// reference it by ID.
type Project struct {
	ID        string
	Name      string
	Budget    float64
	OwnerID   string
	CreatedAt time.Time
}
