package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWTSecret string        `env:"JWT_SECRET, default=supersecretkey"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,  default=60m"`

	// AdminEmail is the operator-configured admin address; empty disables the
	// policy. BreakGlassEmail is the hardwired fallback that keeps working
	// when configuration is missing or wrong.
	AdminEmail      string `env:"ADMIN_EMAIL"`
	BreakGlassEmail string `env:"BREAK_GLASS_EMAIL, default=hello@hamzaaslikh.com"`

	Clerk ClerkConfig
	Mongo MongoConfig
	Redis RedisConfig
}

type ClerkConfig struct {
	Domain    string `env:"CLERK_DOMAIN,  default=coherent-snapper-65.clerk.accounts.dev"`
	SecretKey string `env:"CLERK_SECRET_KEY"`
	APIURL    string `env:"CLERK_API_URL, default=https://api.clerk.com"`
}

// JWKSURL returns the provider's signing-key endpoint for the configured
// instance domain.
func (c ClerkConfig) JWKSURL() string {
	return fmt.Sprintf("https://%s/.well-known/jwks.json", c.Domain)
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=jobsearch"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
