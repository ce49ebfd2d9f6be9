package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv          string
	LogLevel        string
	HTTPAddr        string
	InternalToken   string
	CORSAllowOrigin string
	RemoteAPIURL    string
	RemoteAPISuffix string
	RemoteAPIKey    string
	RemoteTimeout   time.Duration
	DatabaseURL     string
	QuoteNumberMode string
}

// MustLoad reads configuration from the environment, after loading an
// optional .env file. Missing required keys are fatal.
func MustLoad() Config {
	loadDotEnv()
	cfg, missing := load()
	if len(missing) > 0 {
		log.Fatalf("missing env %s", strings.Join(missing, ", "))
	}
	return cfg
}

func load() (Config, []string) {
	var missing []string
	required := func(k string) string {
		v := os.Getenv(k)
		if v == "" {
			missing = append(missing, k)
		}
		return v
	}
	cfg := Config{
		AppEnv:          env("APP_ENV", "development"),
		LogLevel:        env("LOG_LEVEL", "info"),
		HTTPAddr:        env("HTTP_ADDR", ":8080"),
		InternalToken:   required("INTERNAL_TOKEN"),
		CORSAllowOrigin: env("CORS_ALLOW_ORIGIN", "*"),
		RemoteAPIURL:    required("REMOTE_API_URL"),
		RemoteAPISuffix: env("REMOTE_API_SUFFIX", ".php"),
		RemoteAPIKey:    env("REMOTE_API_KEY", ""),
		RemoteTimeout:   envDuration("REMOTE_TIMEOUT", 15*time.Second),
		DatabaseURL:     env("DATABASE_URL", ""),
		QuoteNumberMode: env("QUOTE_NUMBER_MODE", "timestamp"),
	}
	return cfg, missing
}

// LoadDatabaseURL is for commands that only need the database.
func LoadDatabaseURL() string {
	loadDotEnv()
	return mustEnv("DATABASE_URL")
}

func (c Config) IsProduction() bool { return c.AppEnv == "production" }

func loadDotEnv() {
	path := env("DOTENV_PATH", ".env")
	if _, err := os.Stat(path); err != nil {
		return
	}
	if err := godotenv.Load(path); err != nil {
		log.Fatalf("config: load %s: %v", path, err)
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envDuration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("config: invalid %s=%q, using %s", k, v, def)
		return def
	}
	return d
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing env %s", k)
	}
	return v
}
