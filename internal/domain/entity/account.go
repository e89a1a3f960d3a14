// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Account is the identity record owned by the backend's account service.
// It is immutable from the client's point of view once created.
type Account struct {
	ID        string    // Backend-assigned (or client-proposed) account identifier.
	Email     string    // Login email.
	Name      string    // Display name given at registration.
	CreatedAt time.Time // When the account service created the record.
}

// Session is an authenticated session against the account service.
type Session struct {
	ID        string    // Session identifier, used to delete the session.
	AccountID string    // The account the session belongs to.
	Secret    string    // Opaque session secret replayed on subsequent calls. May be empty.
	ExpiresAt time.Time // Backend-reported expiry.
}

// UserProfile is the document-store record paired one-to-one with an Account.
type UserProfile struct {
	ID        string // Document identifier.
	AccountID string // Foreign key to Account.ID, unique across profiles.
	Name      string
	Username  string
	Email     string
	ImageURL  string // Avatar URL, derived from the name at registration.
	Bio       string
	CreatedAt time.Time
}
