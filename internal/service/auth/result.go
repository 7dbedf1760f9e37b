package auth

import (
	"time"

	"github.com/heartmarshall/dreamjournal-backend/internal/domain"
)

// AuthResult is returned by Register and Login.
// When the provider requires email confirmation Register returns a result
// with ConfirmationRequired set and no tokens.
type AuthResult struct {
	AccessToken          string
	RefreshToken         string
	ExpiresAt            time.Time
	User                 *domain.User
	ConfirmationRequired bool
}
