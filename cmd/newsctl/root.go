package main

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"newsportal/internal/articles"
	"newsportal/internal/category"
	"newsportal/pkg/database"
	"newsportal/pkg/logging"
	"newsportal/pkg/utils"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type rootOptions struct {
	configPath string
	dbPath     string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "newsctl",
		Short:         "Classify, list, import and export portal articles",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", os.Getenv("NEWSPORTAL_CONFIG"), "path to config file")
	root.PersistentFlags().StringVar(&opts.dbPath, "db", "", "database path (overrides config)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "error|warn|info|debug (overrides config)")

	root.AddCommand(
		newClassifyCmd(),
		newListCmd(opts),
		newImportCmd(opts),
		newExportCmd(opts),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "newsctl %s (commit: %s, built: %s)\n", version, commit, date)
		},
	}
}

// env is what store-backed commands share.
type env struct {
	cfg    utils.Config
	log    zerolog.Logger
	db     *sql.DB
	repo   *articles.Repo
	cats   *category.Repo
	engine *articles.Engine
}

func (o *rootOptions) open(cmd *cobra.Command) (*env, error) {
	cfg := utils.LoadFrom(o.configPath)
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	log := logging.NewWithFormat(cfg.Log.Level, "console", cmd.ErrOrStderr())
	for _, w := range cfg.Warnings {
		log.Warn().Msg(w)
	}

	dbCfg := database.DefaultConfig()
	if cfg.Database.Path != "" {
		dbCfg.Path = cfg.Database.Path
	}
	if o.dbPath != "" {
		dbCfg.Path = o.dbPath
	}
	db, err := database.OpenAndMigrate(dbCfg)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	repo := articles.NewRepo(db)
	cats := category.NewRepo(db)
	resolver := category.NewResolver(nil, category.OverridesFromConfig(cfg.SourceOverrides))
	engine := articles.NewEngine(repo, cats, resolver, articles.Options{
		DefaultPageSize:  cfg.Listing.DefaultPageSize,
		MaxPageSize:      cfg.Listing.MaxPageSize,
		SupersetMultiple: cfg.Listing.SupersetMultiple,
		SupersetCap:      cfg.Listing.SupersetCap,
	}, logging.Component(log, "listing"))

	return &env{cfg: cfg, log: log, db: db, repo: repo, cats: cats, engine: engine}, nil
}

func (e *env) Close() error {
	return e.db.Close()
}
