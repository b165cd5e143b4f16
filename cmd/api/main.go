package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"medication-tracker/internal/adapters/auth/jwtlocal"
	pg "medication-tracker/internal/adapters/storage/postgres"
	"medication-tracker/internal/adapters/storage/sqlite"
	"medication-tracker/internal/config"
	"medication-tracker/internal/domain/users"
	"medication-tracker/internal/platform/logger"
	"medication-tracker/internal/router"
)

func main() {
	log := logger.NewFromEnv(os.Stdout)

	cfg, err := config.Load()
	if err != nil {
		log.Error("invalid config", logger.Fields{"err": err})
		os.Exit(1)
	}

	jwt, err := jwtlocal.NewManager(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		log.Error("jwt setup failed", logger.Fields{"err": err})
		os.Exit(1)
	}

	opts := router.Options{
		AuthVerifier: jwt,
		TokenIssuer:  jwt,
		AuthMode:     users.ParseMode(cfg.AuthMode),
		Strict:       cfg.AdherenceStrict,
		Location:     cfg.Location,
		Logger:       log,
	}

	switch cfg.Storage {
	case config.StoragePostgres:
		db, err := pg.Open(cfg.DBDSN)
		if err != nil {
			log.Error("postgres open failed", logger.Fields{"err": err})
			os.Exit(1)
		}
		defer db.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err = pg.Migrate(ctx, db)
		cancel()
		if err != nil {
			log.Error("postgres migrate failed", logger.Fields{"err": err})
			os.Exit(1)
		}
		opts.DB = db
	case config.StorageSQLite:
		store, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			log.Error("sqlite open failed", logger.Fields{"err": err, "path": cfg.SQLitePath})
			os.Exit(1)
		}
		defer store.Close()
		opts.SQLite = store
	}

	srv := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      router.NewRouter(opts),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", logger.Fields{
		"addr":      cfg.ListenAddr,
		"storage":   cfg.Storage,
		"auth_mode": string(opts.AuthMode),
		"strict":    cfg.AdherenceStrict,
	})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", logger.Fields{"err": err})
		os.Exit(1)
	}
}
