package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"zoo-management/internal/platform/config"
	"zoo-management/internal/platform/logger"
	"zoo-management/internal/router"
	"zoo-management/internal/seed"
)

// @title Zoo Management API
// @version 0.1
// @description API de administración de zoológicos: registro de animales y cuidadores, admisión, contratación, presupuesto y reserva de agua.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	lg := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	// Los services se arman acá (y no dentro del router) para poder sembrar
	// datos de demo antes de exponerlos.
	animalsSvc, sittersSvc, zoosSvc := router.NewServices()

	if cfg.SeedFile != "" {
		fixture, err := seed.Load(cfg.SeedFile)
		if err != nil {
			lg.Error("seed load failed", "file", cfg.SeedFile, "err", err)
			os.Exit(1)
		}
		if err := seed.Apply(context.Background(), fixture, seed.Services{
			Animals: animalsSvc,
			Sitters: sittersSvc,
			Zoos:    zoosSvc,
		}); err != nil {
			lg.Error("seed apply failed", "file", cfg.SeedFile, "err", err)
			os.Exit(1)
		}
		lg.Info("seed applied", "file", cfg.SeedFile)
	}

	r := router.NewRouter(router.Options{
		Logger:  lg,
		Animals: animalsSvc,
		Sitters: sittersSvc,
		Zoos:    zoosSvc,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	lg.Info("starting server", "addr", cfg.Addr())
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		lg.Error("server error", "err", err)
		os.Exit(1)
	}
}
