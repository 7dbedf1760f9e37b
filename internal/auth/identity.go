package auth

import "github.com/google/uuid"

// Identity is the verified subject of an access token.
type Identity struct {
	UserID   uuid.UUID
	Email    string
	Username string
}
