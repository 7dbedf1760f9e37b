// Package supabase is the hosted identity provider backed by Supabase Auth.
// Usernames live in the auth user's user_metadata.
package supabase

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	supa "github.com/supabase-community/supabase-go"
	"github.com/supabase-community/gotrue-go/types"

	"github.com/heartmarshall/dreamjournal-backend/internal/config"
	"github.com/heartmarshall/dreamjournal-backend/internal/domain"
)

const usernameKey = "username"

// authAPI is the anonymous part of the GoTrue client.
type authAPI interface {
	Signup(req types.SignupRequest) (*types.SignupResponse, error)
	SignInWithEmailPassword(email, password string) (*types.TokenResponse, error)
}

// userAPI is the GoTrue client acting with a user's access token.
type userAPI interface {
	GetUser() (*types.UserResponse, error)
	UpdateUser(req types.UpdateUserRequest) (*types.UpdateUserResponse, error)
	Logout() error
}

// Provider implements the identity operations against Supabase Auth.
// The GoTrue client takes no context; calls are bounded by its HTTP client.
type Provider struct {
	auth   authAPI
	asUser func(accessToken string) userAPI
}

// New creates a provider for the configured Supabase project.
func New(cfg config.SupabaseConfig) (*Provider, error) {
	client, err := supa.NewClient(cfg.URL, cfg.AnonKey, nil)
	if err != nil {
		return nil, fmt.Errorf("supabase client: %w", err)
	}

	return &Provider{
		auth: client.Auth,
		asUser: func(accessToken string) userAPI {
			return client.Auth.WithToken(accessToken)
		},
	}, nil
}

// SignUp registers a user with the username stored in user_metadata.
// When the project requires email confirmation no session is returned.
func (p *Provider) SignUp(_ context.Context, email, password, username string) (*domain.User, *domain.Session, error) {
	req := types.SignupRequest{Email: email, Password: password}
	if username != "" {
		req.Data = map[string]interface{}{usernameKey: username}
	}

	resp, err := p.auth.Signup(req)
	if err != nil {
		return nil, nil, classify("sign up", err)
	}

	u := resp.User
	if u.ID == uuid.Nil {
		u = resp.Session.User
	}
	user := toDomainUser(u)

	if resp.AccessToken == "" {
		return &user, nil, nil
	}
	session := toDomainSession(resp.Session)
	session.User = user
	return &user, &session, nil
}

// SignIn exchanges email and password for a session.
func (p *Provider) SignIn(_ context.Context, email, password string) (*domain.Session, error) {
	resp, err := p.auth.SignInWithEmailPassword(email, password)
	if err != nil {
		err = classify("sign in", err)
		// GoTrue answers 400 invalid_grant for bad credentials.
		if isClientError(err) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}

	session := toDomainSession(resp.Session)
	return &session, nil
}

// SignOut revokes the session behind the access token.
func (p *Provider) SignOut(_ context.Context, accessToken string) error {
	if err := p.asUser(accessToken).Logout(); err != nil {
		return classify("sign out", err)
	}
	return nil
}

// CurrentUser fetches the user the access token belongs to.
func (p *Provider) CurrentUser(_ context.Context, _ uuid.UUID, accessToken string) (*domain.User, error) {
	resp, err := p.asUser(accessToken).GetUser()
	if err != nil {
		return nil, classify("get user", err)
	}
	user := toDomainUser(resp.User)
	return &user, nil
}

// UpdateUsername writes the username into user_metadata.
func (p *Provider) UpdateUsername(_ context.Context, _ uuid.UUID, accessToken, username string) (*domain.User, error) {
	resp, err := p.asUser(accessToken).UpdateUser(types.UpdateUserRequest{
		Data: map[string]interface{}{usernameKey: username},
	})
	if err != nil {
		return nil, classify("update user", err)
	}
	user := toDomainUser(resp.User)
	return &user, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func toDomainUser(u types.User) domain.User {
	user := domain.User{ID: u.ID, Email: u.Email, CreatedAt: u.CreatedAt}
	if name, ok := u.UserMetadata[usernameKey].(string); ok {
		user.Username = name
	}
	return user
}

func toDomainSession(s types.Session) domain.Session {
	session := domain.Session{
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		User:         toDomainUser(s.User),
	}
	switch {
	case s.ExpiresAt > 0:
		session.ExpiresAt = time.Unix(s.ExpiresAt, 0)
	case s.ExpiresIn > 0:
		session.ExpiresAt = time.Now().Add(time.Duration(s.ExpiresIn) * time.Second)
	}
	return session
}

// ---------------------------------------------------------------------------
// Error classification
// ---------------------------------------------------------------------------

// statusError carries the HTTP status GoTrue answered with.
type statusError struct {
	op     string
	status int
	err    error
}

func (e *statusError) Error() string { return fmt.Sprintf("supabase %s: %v", e.op, e.err) }
func (e *statusError) Unwrap() error { return e.err }

var statusPattern = regexp.MustCompile(`status code (\d{3})`)

// classify maps GoTrue failures ("response status code N: body") onto
// domain errors where the status says what went wrong.
func classify(op string, err error) error {
	m := statusPattern.FindStringSubmatch(err.Error())
	if m == nil {
		return fmt.Errorf("supabase %s: %w", op, err)
	}
	status, _ := strconv.Atoi(m[1])

	msg := strings.ToLower(err.Error())
	switch {
	case status == 401 || status == 403:
		return fmt.Errorf("supabase %s: %w", op, domain.ErrUnauthorized)
	case status == 422 && strings.Contains(msg, "already"):
		return fmt.Errorf("supabase %s: %w", op, domain.ErrAlreadyExists)
	case status == 422:
		return fmt.Errorf("supabase %s: %w", op, domain.NewValidationError("password", "rejected by identity provider"))
	}
	return &statusError{op: op, status: status, err: err}
}

func isClientError(err error) bool {
	var se *statusError
	if errors.As(err, &se) {
		return se.status >= 400 && se.status < 500
	}
	return errors.Is(err, domain.ErrUnauthorized) || errors.Is(err, domain.ErrValidation)
}
