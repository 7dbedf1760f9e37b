package config

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	c.Auth.Provider = strings.ToLower(strings.TrimSpace(c.Auth.Provider))
	switch c.Auth.Provider {
	case AuthProviderSupabase:
		if c.Supabase.URL == "" || c.Supabase.AnonKey == "" {
			return fmt.Errorf("supabase.url and supabase.anon_key are required when auth.provider is %q", AuthProviderSupabase)
		}
	case AuthProviderLocal:
		if c.Auth.AccessTokenTTL <= 0 {
			return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
		}
		if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
			return fmt.Errorf("auth.password_hash_cost must be in [%d, %d] (got %d)", bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
		}
	default:
		return fmt.Errorf("auth.provider must be %q or %q (got %q)", AuthProviderSupabase, AuthProviderLocal, c.Auth.Provider)
	}

	if err := c.AI.validate(); err != nil {
		return fmt.Errorf("ai: %w", err)
	}

	if c.Cache.Enabled() && c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be > 0 (got %v)", c.Cache.TTL)
	}

	if c.RateLimit.AuthPerMinute <= 0 {
		return fmt.Errorf("rate_limit.auth_per_minute must be > 0 (got %d)", c.RateLimit.AuthPerMinute)
	}

	return nil
}

func (a *AIConfig) validate() error {
	a.Interpreter = strings.ToLower(strings.TrimSpace(a.Interpreter))
	switch a.Interpreter {
	case InterpreterGemini:
	case InterpreterAnthropic:
		if a.AnthropicAPIKey == "" {
			return fmt.Errorf("anthropic_api_key is required when interpreter is %q", InterpreterAnthropic)
		}
	default:
		return fmt.Errorf("interpreter must be %q or %q (got %q)", InterpreterGemini, InterpreterAnthropic, a.Interpreter)
	}

	// Image generation always goes through Gemini.
	if a.GeminiAPIKey == "" {
		return fmt.Errorf("gemini_api_key is required")
	}
	if a.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be > 0 (got %v)", a.RequestTimeout)
	}
	if a.BreakerFailureRatio <= 0 || a.BreakerFailureRatio > 1 {
		return fmt.Errorf("breaker_failure_ratio must be in (0, 1] (got %v)", a.BreakerFailureRatio)
	}

	return nil
}
