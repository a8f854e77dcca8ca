package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUnsupportedAlgorithm = errors.New("unsupported JWT algorithm")
	ErrInvalidTokenTTL      = errors.New("ACCESS_TOKEN_EXPIRE_MINUTES must be positive")
)

type Config struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:"0.0.0.0:8080"`

	Postgres Postgres

	APIKey       string `env:"API_KEY,required,notEmpty"`
	DocsUsername string `env:"DOCS_USERNAME,required,notEmpty"`
	DocsPassword string `env:"DOCS_PASSWORD,required,notEmpty"`

	JWTSecret                string `env:"JWT_SECRET,required,notEmpty"`
	JWTAlgorithm             string `env:"JWT_ALGORITHM" envDefault:"HS256"`
	AccessTokenExpireMinutes int    `env:"ACCESS_TOKEN_EXPIRE_MINUTES" envDefault:"60"`
	BcryptCost               int    `env:"BCRYPT_COST" envDefault:"10"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"http://localhost:3000" envSeparator:","`

	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"text"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

type Postgres struct {
	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     string `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD"`
	DB       string `env:"POSTGRES_DB" envDefault:"blog"`
	SSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"disable"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	// A missing .env is fine; real deployments set the variables directly.
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.JWTAlgorithm != "HS256" {
		return fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, c.JWTAlgorithm)
	}
	if c.AccessTokenExpireMinutes <= 0 {
		return ErrInvalidTokenTTL
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	return nil
}

func (c *Config) AccessTokenTTL() time.Duration {
	return time.Duration(c.AccessTokenExpireMinutes) * time.Minute
}

// DSN is the lib/pq connection URL.
func (c *Config) DSN() string {
	return c.Postgres.DSN()
}

func (p Postgres) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(p.User, p.Password),
		Host:     p.Host + ":" + p.Port,
		Path:     "/" + p.DB,
		RawQuery: url.Values{"sslmode": {p.SSLMode}}.Encode(),
	}
	return u.String()
}
