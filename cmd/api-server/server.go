package main

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"newsportal/internal/articles"
	"newsportal/internal/auth"
	"newsportal/internal/category"
	"newsportal/internal/ingest"
	"newsportal/internal/live"
	"newsportal/pkg/logging"
	"newsportal/pkg/utils"
)

type server struct {
	db  *sql.DB
	cfg utils.Config
	log zerolog.Logger

	hub        *live.Hub
	articles   *articles.Repo
	categories *category.Repo
	engine     *articles.Engine
	admins     *auth.Repo
	tokens     auth.TokenService
}

func newServer(db *sql.DB, cfg utils.Config, log zerolog.Logger) *server {
	resolver := category.NewResolver(nil, category.OverridesFromConfig(cfg.SourceOverrides))
	articleRepo := articles.NewRepo(db)
	categoryRepo := category.NewRepo(db)
	opts := articles.Options{
		DefaultPageSize:  cfg.Listing.DefaultPageSize,
		MaxPageSize:      cfg.Listing.MaxPageSize,
		SupersetMultiple: cfg.Listing.SupersetMultiple,
		SupersetCap:      cfg.Listing.SupersetCap,
	}

	return &server{
		db:         db,
		cfg:        cfg,
		log:        log,
		hub:        live.NewHub(logging.Component(log, "live")),
		articles:   articleRepo,
		categories: categoryRepo,
		engine:     articles.NewEngine(articleRepo, categoryRepo, resolver, opts, logging.Component(log, "listing")),
		admins:     auth.NewRepo(db),
		tokens: auth.TokenService{
			Secret:   []byte(cfg.Auth.JWTSecret),
			Issuer:   cfg.Auth.JWTIssuer,
			Duration: cfg.Auth.JWTDuration,
		},
	}
}

// importer returns nil when no feeds are configured.
func (s *server) importer() *ingest.Importer {
	if len(s.cfg.Feeds) == 0 {
		return nil
	}
	log := logging.Component(s.log, "ingest")
	return &ingest.Importer{
		Aggregator: ingest.NewAggregator(log, ingest.SourcesFromConfig(s.cfg.Feeds)...),
		Store:      s.articles,
		Resolution: s.engine,
		Publisher:  s.hub,
		Log:        log,
	}
}

func (s *server) routes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), logging.RequestLogger(logging.Component(s.log, "http")))
	_ = router.SetTrustedProxies([]string{"127.0.0.1"})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/ready", s.ready)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/ws/articles", live.WSHandler(s.hub))

	articleHandler := articles.NewHandler(s.engine, s.articles, s.hub, logging.Component(s.log, "articles"))
	articleHandler.RegisterRoutes(router.Group("/articles"))
	articleHandler.RegisterClassifyRoutes(&router.RouterGroup)

	categoryHandler := category.NewHandler(s.categories)
	categoryHandler.RegisterRoutes(router.Group("/categories"))

	authHandler := auth.NewHandler(s.admins, s.tokens, logging.Component(s.log, "auth"))
	authHandler.RegisterRoutes(router.Group("/auth"))

	admin := router.Group("/admin", auth.AuthMiddleware(s.tokens, s.admins))
	articleHandler.RegisterAdminRoutes(admin)
	categoryHandler.RegisterAdminRoutes(admin)

	return router
}

func (s *server) ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	stats := s.hub.Stats()
	if err := s.db.PingContext(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"db_error":   err.Error(),
			"ws_clients": stats.Clients,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"db":         "ok",
		"ws_clients": stats.Clients,
	})
}
