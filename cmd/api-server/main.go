package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"newsportal/internal/ingest"
	"newsportal/pkg/database"
	"newsportal/pkg/logging"
	"newsportal/pkg/utils"
)

func main() {
	cfg := utils.Load()
	log := logging.NewWithFormat(cfg.Log.Level, cfg.Log.Format, os.Stdout)
	for _, w := range cfg.Warnings {
		log.Warn().Msg(w)
	}
	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	dbCfg := database.DefaultConfig()
	if cfg.Database.Path != "" {
		dbCfg.Path = cfg.Database.Path
	}
	db, err := database.OpenAndMigrate(dbCfg)
	if err != nil {
		log.Fatal().Err(err).Str("path", dbCfg.Path).Msg("open database")
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := newServer(db, cfg, log)

	var sched *ingest.Scheduler
	if im := srv.importer(); im != nil {
		go func() {
			if _, err := im.Run(ctx); err != nil {
				log.Error().Err(err).Msg("initial import failed")
			}
		}()
		sched, err = ingest.NewScheduler(ctx, im, cfg.Ingest.Schedule, logging.Component(log, "ingest"))
		if err != nil {
			log.Fatal().Err(err).Msg("ingest scheduler")
		}
		if sched != nil {
			sched.Start()
		}
	}

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           srv.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.HTTP.Addr).Str("db", dbCfg.Path).Msg("HTTP API server listening")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	case err := <-errCh:
		log.Error().Err(err).Msg("server error")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	if sched != nil {
		sched.Stop()
	}
	log.Info().Msg("server stopped")
}
