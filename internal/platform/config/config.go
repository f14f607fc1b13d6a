package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"registration-form/internal/platform/logger"
)

const (
	DefaultAddr      = "127.0.0.1:5000"
	DefaultStaticDir = "web"
	DefaultAppName   = "registration-form"

	// MemoryDatabaseURL en DB_URL guarda en memoria (solo dev; se pierde al reiniciar).
	MemoryDatabaseURL = "memory"
)

var (
	ErrMissingDatabaseURL = errors.New("DB_URL is not set in environment")
)

// Config se arma una sola vez al arrancar y se pasa explícito a router y repos.
type Config struct {
	DatabaseURL string
	Addr        string
	StaticDir   string

	Log logger.Options
}

func (c Config) UseMemoryStore() bool {
	return c.DatabaseURL == MemoryDatabaseURL
}

// Load lee .env (si existe) y luego las variables de entorno:
// - DB_URL (obligatoria; "memory" para dev sin Postgres)
// - ADDR (default 127.0.0.1:5000)
// - STATIC_DIR (default "web")
// - LOG_LEVEL, LOG_FORMAT, APP_NAME
func Load() (Config, error) {
	return LoadFiles(".env")
}

// LoadFiles es Load con archivos .env explícitos. Los que no existen se ignoran;
// godotenv no pisa variables ya presentes en el proceso.
func LoadFiles(files ...string) (Config, error) {
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return Config{}, err
		}
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup construye Config desde cualquier fuente clave/valor (env real o mapa en tests).
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return def
	}

	cfg := Config{
		DatabaseURL: get("DB_URL", ""),
		Addr:        get("ADDR", DefaultAddr),
		StaticDir:   get("STATIC_DIR", DefaultStaticDir),
		Log: logger.Options{
			Level:  logger.ParseLevel(get("LOG_LEVEL", "")),
			Format: logger.ParseFormat(get("LOG_FORMAT", "")),
			App:    get("APP_NAME", DefaultAppName),
		},
	}

	if cfg.DatabaseURL == "" {
		return Config{}, ErrMissingDatabaseURL
	}
	return cfg, nil
}
