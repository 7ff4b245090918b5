package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the application configuration.
type Config struct {
	Env         string `envconfig:"ENV" default:"development"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"debug"`
	LogEncoding string `envconfig:"LOG_ENCODING" default:"json"`
	ServerPort  string `envconfig:"SERVER_PORT" default:"8080"`

	// Server timeouts
	ReadTimeout  time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"15s"`
	WriteTimeout time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"120s"`
	IdleTimeout  time.Duration `envconfig:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// PostgreSQL
	DBHost        string        `envconfig:"DB_HOST" default:"localhost"`
	DBPort        string        `envconfig:"DB_PORT" default:"5432"`
	DBUser        string        `envconfig:"DB_USER" default:"postgres"`
	DBName        string        `envconfig:"DB_NAME" default:"teaching_db"`
	DBSSLMode     string        `envconfig:"DB_SSL_MODE" default:"disable"`
	DBMaxConns    int           `envconfig:"DB_MAX_CONNECTIONS" default:"10"`
	DBIdleTimeout time.Duration `envconfig:"DB_MAX_IDLE_MINUTES" default:"5m"`
	// Secret field WITHOUT an envconfig tag, loaded via secret file or env.
	DBPassword string

	// Generation backend. "static" runs fully offline and needs no key.
	AIClientType string        `envconfig:"AI_CLIENT_TYPE" default:"static"`
	AIBaseURL    string        `envconfig:"AI_BASE_URL" default:"https://api.openai.com/v1"`
	AIModel      string        `envconfig:"AI_MODEL" default:"gpt-4o-mini"`
	AITimeout    time.Duration `envconfig:"AI_TIMEOUT" default:"120s"`
	OllamaHost   string        `envconfig:"OLLAMA_HOST" default:"http://localhost:11434"`
	// Secret field WITHOUT an envconfig tag.
	AIAPIKey string

	// Language handling
	DefaultLanguage string `envconfig:"DEFAULT_LANGUAGE" default:"en"`

	// CORS
	CORSAllowedOrigins string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

// GetDSN returns the PostgreSQL connection string.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

// GetAllowedOrigins splits the CORSAllowedOrigins string into a slice.
func (c *Config) GetAllowedOrigins() []string {
	if c.CORSAllowedOrigins == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(c.CORSAllowedOrigins, " ", ""), ",")
}

// Load reads configuration from the optional .env file, environment variables
// and secret files.
func Load(envFilePath string) (*Config, error) {
	if _, err := os.Stat(envFilePath); err == nil {
		if err := godotenv.Load(envFilePath); err != nil {
			log.Printf("Warning: could not load %s file: %v", envFilePath, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("error processing env vars: %w", err)
	}

	// Secrets prefer mounted secret files, fall back to plain env vars.
	cfg.DBPassword = readSecret("db_password", "DB_PASSWORD", "postgres")
	cfg.AIAPIKey = readSecret("ai_api_key", "AI_API_KEY", "")

	if cfg.AIClientType != "static" && cfg.AIClientType != "ollama" && cfg.AIAPIKey == "" {
		return nil, fmt.Errorf("AI_API_KEY not set for backend %q", cfg.AIClientType)
	}

	log.Printf("Configuration loaded: env=%s, backend=%s, db=%s", cfg.Env, cfg.AIClientType, cfg.getMaskedDSN())
	return &cfg, nil
}

// readSecret reads a secret from SECRETS_DIR (default /run/secrets), then the
// named environment variable, then the default.
func readSecret(name, envKey, def string) string {
	dir := os.Getenv("SECRETS_DIR")
	if dir == "" {
		dir = "/run/secrets"
	}
	if data, err := os.ReadFile(filepath.Join(dir, name)); err == nil {
		if v := strings.TrimSpace(string(data)); v != "" {
			return v
		}
	}
	if v, ok := os.LookupEnv(envKey); ok {
		return v
	}
	return def
}

// getMaskedDSN returns the DSN with the password masked for logging.
func (c *Config) getMaskedDSN() string {
	dsn := c.GetDSN()
	parts := strings.Split(dsn, "@")
	if len(parts) != 2 {
		return "[invalid dsn format]"
	}
	userInfo := strings.Split(parts[0], ":")
	if len(userInfo) >= 2 {
		userInfo[len(userInfo)-1] = "********"
	}
	return strings.Join(userInfo, ":") + "@" + parts[1]
}
