// Package localauth is the self-hosted identity provider: accounts live in
// the users table, passwords are bcrypt hashes and access tokens are signed
// by this service.
package localauth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/dreamjournal-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/dreamjournal-backend/internal/domain"
)

type accountRepo interface {
	Create(ctx context.Context, email, username, passwordHash string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*user.Account, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateUsername(ctx context.Context, id uuid.UUID, username string) (*domain.User, error)
}

type tokenIssuer interface {
	GenerateAccessToken(user domain.User) (string, time.Time, error)
}

// Provider implements sign-up, sign-in and profile metadata on local accounts.
type Provider struct {
	accounts accountRepo
	tokens   tokenIssuer
	hashCost int
}

// New creates a local identity provider.
func New(accounts accountRepo, tokens tokenIssuer, hashCost int) *Provider {
	return &Provider{accounts: accounts, tokens: tokens, hashCost: hashCost}
}

// SignUp creates an account and signs it in immediately; local accounts
// need no email confirmation.
func (p *Provider) SignUp(ctx context.Context, email, password, username string) (*domain.User, *domain.Session, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), p.hashCost)
	if err != nil {
		return nil, nil, fmt.Errorf("hash password: %w", err)
	}

	u, err := p.accounts.Create(ctx, email, username, string(hash))
	if err != nil {
		return nil, nil, fmt.Errorf("create account: %w", err)
	}

	session, err := p.issue(*u)
	if err != nil {
		return nil, nil, err
	}
	return u, session, nil
}

// SignIn checks the password and issues a session.
// Unknown emails and wrong passwords both yield domain.ErrUnauthorized.
func (p *Provider) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	acc, err := p.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("get account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	return p.issue(acc.User)
}

// SignOut is a no-op: local access tokens are stateless and expire on their own.
func (p *Provider) SignOut(_ context.Context, _ string) error {
	return nil
}

// CurrentUser returns the account behind the authenticated user id.
func (p *Provider) CurrentUser(ctx context.Context, userID uuid.UUID, _ string) (*domain.User, error) {
	u, err := p.accounts.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}
	return u, nil
}

// UpdateUsername stores the display username on the account.
func (p *Provider) UpdateUsername(ctx context.Context, userID uuid.UUID, _ string, username string) (*domain.User, error) {
	u, err := p.accounts.UpdateUsername(ctx, userID, username)
	if err != nil {
		return nil, fmt.Errorf("update username: %w", err)
	}
	return u, nil
}

func (p *Provider) issue(u domain.User) (*domain.Session, error) {
	token, expiresAt, err := p.tokens.GenerateAccessToken(u)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	return &domain.Session{AccessToken: token, ExpiresAt: expiresAt, User: u}, nil
}
