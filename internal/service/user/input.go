package user

import (
	"strings"

	"github.com/heartmarshall/dreamjournal-backend/internal/validate"
)

// UpdateProfileInput is the editable part of a profile.
type UpdateProfileInput struct {
	Username string `json:"username" validate:"required,max=50"`
}

// Validate normalizes the username, collapsing every whitespace run into a
// single space, then checks it.
func (i *UpdateProfileInput) Validate() error {
	i.Username = strings.Join(strings.Fields(i.Username), " ")
	return validate.Struct(i)
}
