// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents one registered account. The email is the login
// identifier and is unique across all users; PasswordHash holds the
// bcrypt digest and never the plaintext.
type User struct {
	ID           uuid.UUID // The unique identifier for the account, assigned at creation.
	FullName     string    // The display name supplied at registration.
	Email        string    // The login identifier. Unique, matched as an exact string.
	PasswordHash string    // bcrypt digest of the password. Salt and cost are embedded in the digest.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
