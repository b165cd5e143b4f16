package main

import (
	"net/http"
	"time"

	"medication-tracker/internal/adapters/auth/jwtlocal"
	"medication-tracker/internal/config"
	"medication-tracker/internal/domain/users"
	"medication-tracker/internal/platform/logger"
	"medication-tracker/internal/router"
)

func runServer(a *app, cfg config.AppConfig, addr string) error {
	jwt, err := jwtlocal.NewManager(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		return err
	}

	h := router.NewRouter(router.Options{
		AuthVerifier: jwt,
		TokenIssuer:  jwt,
		SQLite:       a.store,
		AuthMode:     users.ParseMode(authMode),
		Strict:       strict,
		Location:     time.Local,
		Logger:       a.log,
	})

	srv := &http.Server{
		Addr:         addr,
		Handler:      h,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	a.log.Info("starting server", logger.Fields{"addr": addr, "db": dbPath})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
