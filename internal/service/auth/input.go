package auth

import (
	"strings"

	"github.com/heartmarshall/dreamjournal-backend/internal/validate"
)

// RegisterInput holds parameters for creating an account.
type RegisterInput struct {
	Email    string `json:"email"    validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=6,maxbytes=72"`
	Username string `json:"username" validate:"omitempty,max=50"`
}

// Validate trims the free-text fields and checks all fields.
func (i *RegisterInput) Validate() error {
	i.Email = strings.TrimSpace(i.Email)
	i.Username = strings.TrimSpace(i.Username)
	return validate.Struct(i)
}

// LoginInput holds parameters for a password sign-in.
type LoginInput struct {
	Email    string `json:"email"    validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,maxbytes=72"`
}

// Validate trims the email and checks all fields.
func (i *LoginInput) Validate() error {
	i.Email = strings.TrimSpace(i.Email)
	return validate.Struct(i)
}
