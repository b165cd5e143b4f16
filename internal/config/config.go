package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StorageMemory   = "memory"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
)

// AppConfig agrupa la configuración del servicio. Todo viene de env.
type AppConfig struct {
	ListenAddr string
	Port       string

	Storage    string
	DBDSN      string
	SQLitePath string

	JWTSecret string
	TokenTTL  time.Duration
	AuthMode  string

	AdherenceStrict bool
	Location        *time.Location
}

// Load lee variables de entorno con defaults para desarrollo local.
func Load() (AppConfig, error) {
	port := env("PORT", "8080")
	listenAddr := env("LISTEN_ADDR", fmt.Sprintf(":%s", port))

	dsn := env("DB_DSN", "")
	sqlitePath := env("SQLITE_PATH", "medtrack.db")

	// sin STORAGE explícito: postgres si hay DSN, si no memoria (igual que antes)
	storage := strings.ToLower(env("STORAGE", ""))
	if storage == "" {
		storage = StorageMemory
		if dsn != "" {
			storage = StoragePostgres
		}
	}
	switch storage {
	case StorageMemory, StorageSQLite:
	case StoragePostgres:
		if dsn == "" {
			return AppConfig{}, fmt.Errorf("STORAGE=postgres requires DB_DSN")
		}
	default:
		return AppConfig{}, fmt.Errorf("invalid STORAGE %q", storage)
	}

	ttl := 24 * time.Hour
	if v := env("TOKEN_TTL", ""); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return AppConfig{}, fmt.Errorf("invalid TOKEN_TTL %q", v)
		}
		ttl = d
	}

	strict := false
	if v := env("ADHERENCE_STRICT", ""); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return AppConfig{}, fmt.Errorf("invalid ADHERENCE_STRICT %q", v)
		}
		strict = b
	}

	loc := time.Local
	if v := env("TZ_NAME", ""); v != "" {
		l, err := time.LoadLocation(v)
		if err != nil {
			return AppConfig{}, fmt.Errorf("invalid TZ_NAME %q: %w", v, err)
		}
		loc = l
	}

	return AppConfig{
		ListenAddr:      listenAddr,
		Port:            port,
		Storage:         storage,
		DBDSN:           dsn,
		SQLitePath:      sqlitePath,
		JWTSecret:       env("JWT_SECRET", "medtrack-dev-secret"),
		TokenTTL:        ttl,
		AuthMode:        strings.ToLower(env("AUTH_MODE", "mock")),
		AdherenceStrict: strict,
		Location:        loc,
	}, nil
}

func env(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}
