package domain

import "time"

// User is a staff identity: one account per store plus the manager account.
type User struct {
	ID           string
	Email        string
	PasswordHash []byte
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Viewer derives the dashboard identity for this account.
func (u User) Viewer() Viewer {
	return NewViewerFromEmail(u.Email)
}
