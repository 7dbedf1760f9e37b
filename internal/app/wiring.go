package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/dreamjournal-backend/internal/adapter/cache"
	"github.com/heartmarshall/dreamjournal-backend/internal/adapter/localauth"
	userrepo "github.com/heartmarshall/dreamjournal-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/dreamjournal-backend/internal/adapter/provider/anthropic"
	"github.com/heartmarshall/dreamjournal-backend/internal/adapter/provider/gemini"
	"github.com/heartmarshall/dreamjournal-backend/internal/adapter/supabase"
	"github.com/heartmarshall/dreamjournal-backend/internal/auth"
	"github.com/heartmarshall/dreamjournal-backend/internal/config"
	"github.com/heartmarshall/dreamjournal-backend/internal/domain"
	"github.com/heartmarshall/dreamjournal-backend/internal/observability"
	"github.com/heartmarshall/dreamjournal-backend/internal/transport/rest"
)

// identityProvider covers both the auth and the profile services.
type identityProvider interface {
	SignUp(ctx context.Context, email, password, username string) (*domain.User, *domain.Session, error)
	SignIn(ctx context.Context, email, password string) (*domain.Session, error)
	SignOut(ctx context.Context, accessToken string) error
	CurrentUser(ctx context.Context, userID uuid.UUID, accessToken string) (*domain.User, error)
	UpdateUsername(ctx context.Context, userID uuid.UUID, accessToken, username string) (*domain.User, error)
}

type interpreter interface {
	Interpret(ctx context.Context, dreamText string) (*domain.AIInterpretation, error)
}

type imager interface {
	GenerateImage(ctx context.Context, dreamText string) (string, error)
}

type viewCache interface {
	Get(ctx context.Context, userID uuid.UUID, view string, dst any) (bool, cache.Stamp, error)
	Set(ctx context.Context, userID uuid.UUID, view string, stamp cache.Stamp, v any) error
	Invalidate(ctx context.Context, userID uuid.UUID) error
	Ping(ctx context.Context) error
	Close() error
}

func newIdentity(cfg *config.Config, pool *pgxpool.Pool, jwt *auth.JWTManager) (identityProvider, error) {
	switch cfg.Auth.Provider {
	case config.AuthProviderLocal:
		return localauth.New(userrepo.New(pool), jwt, cfg.Auth.PasswordHashCost), nil
	case config.AuthProviderSupabase:
		p, err := supabase.New(cfg.Supabase)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Auth.Provider)
	}
}

// newAIBackends returns the configured interpreter and the Gemini imager.
// Images always come from Gemini.
func newAIBackends(ctx context.Context, cfg config.AIConfig, logger *slog.Logger) (interpreter, imager, error) {
	g, err := gemini.New(ctx, cfg.GeminiAPIKey, cfg.InterpretModel, cfg.ImageModel, logger)
	if err != nil {
		return nil, nil, err
	}

	switch cfg.Interpreter {
	case config.InterpreterAnthropic:
		return anthropic.New(cfg.AnthropicAPIKey, cfg.AnthropicModel, logger), g, nil
	case config.InterpreterGemini:
		return g, g, nil
	default:
		return nil, nil, fmt.Errorf("unknown interpreter %q", cfg.Interpreter)
	}
}

func newViewCache(ctx context.Context, cfg config.CacheConfig, metrics *observability.Collector, logger *slog.Logger) (viewCache, error) {
	if !cfg.Enabled() {
		logger.Info("view cache disabled")
		return cache.Noop{}, nil
	}
	r, err := cache.NewRedis(ctx, cfg, metrics, logger)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func newHealthHandler(db *pgxpool.Pool, views viewCache, cfg config.CacheConfig) *rest.HealthHandler {
	components := map[string]rest.Pinger{"database": db}
	if cfg.Enabled() {
		components["cache"] = views
	}
	return rest.NewHealthHandler(Version, components)
}
