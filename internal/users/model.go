package users

import "time"

// User is a registered account that owns projects.
type User struct {
	ID             string
	Email          string
	HashedPassword string
	IsActive       bool
	CreatedAt      time.Time
}
