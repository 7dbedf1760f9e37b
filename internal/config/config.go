package config

import (
	"strings"
	"time"
)

// Identity provider names accepted by auth.provider.
const (
	AuthProviderSupabase = "supabase"
	AuthProviderLocal    = "local"
)

// Interpretation backends accepted by ai.interpreter.
const (
	InterpreterGemini    = "gemini"
	InterpreterAnthropic = "anthropic"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Supabase  SupabaseConfig  `yaml:"supabase"`
	AI        AIConfig        `yaml:"ai"`
	Cache     CacheConfig     `yaml:"cache"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"90s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	// StatementTimeout is set as the session statement_timeout. Zero leaves the server default.
	StatementTimeout time.Duration `yaml:"statement_timeout" env:"DATABASE_STATEMENT_TIMEOUT" env-default:"15s"`
}

// AuthConfig selects the identity provider and the access token settings.
// With the supabase provider JWTSecret is the project's JWT secret and
// tokens are issued by Supabase; with the local provider this service
// signs them itself.
type AuthConfig struct {
	Provider       string        `yaml:"provider"         env:"AUTH_PROVIDER"         env-default:"supabase"`
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"1h"`
	// PasswordHashCost is the bcrypt cost used by the local provider.
	PasswordHashCost int `yaml:"password_hash_cost" env:"AUTH_PASSWORD_HASH_COST" env-default:"10"`
}

// SupabaseConfig points at the hosted Supabase project.
type SupabaseConfig struct {
	URL     string `yaml:"url"      env:"SUPABASE_URL"`
	AnonKey string `yaml:"anon_key" env:"SUPABASE_ANON_KEY"`
}

// AIConfig configures the generative model backends and the circuit
// breaker placed in front of them.
type AIConfig struct {
	Interpreter     string        `yaml:"interpreter"       env:"AI_INTERPRETER"       env-default:"gemini"`
	GeminiAPIKey    string        `yaml:"gemini_api_key"    env:"GEMINI_API_KEY"`
	AnthropicAPIKey string        `yaml:"anthropic_api_key" env:"ANTHROPIC_API_KEY"`
	InterpretModel  string        `yaml:"interpret_model"   env:"AI_INTERPRET_MODEL"   env-default:"gemini-2.0-flash"`
	ImageModel      string        `yaml:"image_model"       env:"AI_IMAGE_MODEL"       env-default:"gemini-2.0-flash-preview-image-generation"`
	AnthropicModel  string        `yaml:"anthropic_model"   env:"AI_ANTHROPIC_MODEL"   env-default:"claude-sonnet-4-5"`
	RequestTimeout  time.Duration `yaml:"request_timeout"   env:"AI_REQUEST_TIMEOUT"   env-default:"60s"`

	BreakerMaxRequests  uint32        `yaml:"breaker_max_requests"  env:"AI_BREAKER_MAX_REQUESTS"  env-default:"1"`
	BreakerInterval     time.Duration `yaml:"breaker_interval"      env:"AI_BREAKER_INTERVAL"      env-default:"60s"`
	BreakerTimeout      time.Duration `yaml:"breaker_timeout"       env:"AI_BREAKER_TIMEOUT"       env-default:"30s"`
	BreakerFailureRatio float64       `yaml:"breaker_failure_ratio" env:"AI_BREAKER_FAILURE_RATIO" env-default:"0.6"`
	BreakerMinRequests  uint32        `yaml:"breaker_min_requests"  env:"AI_BREAKER_MIN_REQUESTS"  env-default:"5"`
}

// CacheConfig configures the Redis view cache. An empty RedisAddr disables
// caching.
type CacheConfig struct {
	RedisAddr     string        `yaml:"redis_addr"     env:"CACHE_REDIS_ADDR"`
	RedisPassword string        `yaml:"redis_password" env:"CACHE_REDIS_PASSWORD"`
	RedisDB       int           `yaml:"redis_db"       env:"CACHE_REDIS_DB"       env-default:"0"`
	TTL           time.Duration `yaml:"ttl"            env:"CACHE_TTL"            env-default:"5m"`
}

// Enabled reports whether a Redis address is configured.
func (c CacheConfig) Enabled() bool {
	return strings.TrimSpace(c.RedisAddr) != ""
}

// RateLimitConfig holds per-IP request limits for the auth endpoints.
type RateLimitConfig struct {
	AuthPerMinute   int           `yaml:"auth_per_minute"  env:"RATE_LIMIT_AUTH_PER_MINUTE" env-default:"10"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP"         env-default:"5m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// Origins splits AllowedOrigins into a trimmed list.
func (c CORSConfig) Origins() []string { return splitList(c.AllowedOrigins) }

// Methods splits AllowedMethods into a trimmed list.
func (c CORSConfig) Methods() []string { return splitList(c.AllowedMethods) }

// Headers splits AllowedHeaders into a trimmed list.
func (c CORSConfig) Headers() []string { return splitList(c.AllowedHeaders) }

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED" env-default:"true"`
	Path    string `yaml:"path"    env:"METRICS_PATH"    env-default:"/metrics"`
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
