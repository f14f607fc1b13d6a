package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"registration-form/internal/platform/config"
	"registration-form/internal/platform/logger"
	"registration-form/internal/router"
)

// @title       registration-form API
// @version     1.0
// @description Formulario de registro: valida, guarda en Postgres y confirma con el id.
// @BasePath    /
func main() {
	cfg, err := config.Load()
	if err != nil {
		// Sin config todavía no hay logger configurado; usamos el default.
		logger.New(logger.Options{App: config.DefaultAppName}).Error("config error", logger.Fields{"error": err})
		os.Exit(1)
	}

	log := logger.New(cfg.Log)

	r := router.NewRouter(router.Options{
		Config: cfg,
		Logger: log,
	})

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown error", logger.Fields{"error": err})
		}
	}()

	log.Info("starting server", logger.Fields{"addr": cfg.Addr, "static_dir": cfg.StaticDir})
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server error", logger.Fields{"error": err})
		stop()
		os.Exit(1)
	}
	log.Info("server stopped", nil)
}
