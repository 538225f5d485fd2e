// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the durable identity record for a registered instructor account.
// The ID is assigned by the store on creation and never changes afterwards;
// the email is the login key and is unique across the users table.
type User struct {
	ID           uuid.UUID // Store-assigned unique identifier, immutable after creation.
	Email        string    // Login key. Stored case-sensitive, unique.
	PasswordHash string    // bcrypt hash of the password. The plaintext is never persisted.
	CreatedAt    time.Time // Timestamp of when this account was created.
}
