// Package config loads the service configuration from the environment,
// reading a local .env file first when running outside a container.
package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config holds every tunable of the service. All values come from the
// environment; env-required fields make the service refuse to start rather
// than run against a half-configured store.
type Config struct {
	// Port is the HTTP listen port.
	Port int `env:"PORT" env-default:"8080"`

	// FirebaseConfig is the path to the service-account credentials file.
	FirebaseConfig string `env:"FIREBASE_CONFIG" env-required:"true"`

	// ContentBase is the store base holding the shared content
	// collections (courses, terms, teachers, papers, ...).
	ContentBase string `env:"CONTENT_BASE" env-default:"content"`

	// ReleasesBase is the store base holding desktop updater releases.
	ReleasesBase string `env:"RELEASES_BASE" env-default:"releases"`

	// AccessBase is the store base holding shuffler access codes.
	AccessBase string `env:"ACCESS_BASE" env-default:"access"`

	// QueryTimeout bounds each store query issued while serving one
	// request.
	QueryTimeout time.Duration `env:"QUERY_TIMEOUT" env-default:"10s"`

	// ContentCacheTTL is how long content-collection snapshots are
	// reused before re-querying the store.
	ContentCacheTTL time.Duration `env:"CONTENT_CACHE_TTL" env-default:"1h"`

	// RateLimit / RateWindow define the per-client fixed-window request
	// budget.
	RateLimit         int `env:"RATE_LIMIT" env-default:"120"`
	RateWindowSeconds int `env:"RATE_WINDOW_SECONDS" env-default:"60"`
}

// MustLoad reads the configuration or exits. A .env file is honored when
// the process is not running in Docker, matching local development setups.
func MustLoad() *Config {
	if _, err := os.Stat("/.dockerenv"); os.IsNotExist(err) {
		if err := godotenv.Load(); err != nil {
			log.Println("no .env file loaded, relying on process environment")
		}
	} else {
		log.Println("running in Docker container, skipping .env file loading")
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("cannot read config: %v", err)
	}

	return &cfg
}
