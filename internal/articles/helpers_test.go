package articles

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"newsportal/internal/category"
	"newsportal/pkg/database"
	"newsportal/pkg/models"
)

var baseTime = time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

type fixture struct {
	db     *sql.DB
	repo   *Repo
	cats   *category.Repo
	engine *Engine
}

func newFixture(t *testing.T, opts Options) *fixture {
	t.Helper()
	db, err := database.OpenAndMigrate(database.Config{Path: filepath.Join(t.TempDir(), "news.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := NewRepo(db)
	cats := category.NewRepo(db)
	resolver := category.NewResolver(nil, category.DefaultOverrides())
	return &fixture{
		db:     db,
		repo:   repo,
		cats:   cats,
		engine: NewEngine(repo, cats, resolver, opts, zerolog.Nop()),
	}
}

func (f *fixture) addCategory(t *testing.T, key, label string) models.Category {
	t.Helper()
	c := models.Category{Key: key, Label: label}
	require.NoError(t, f.cats.Create(context.Background(), &c))
	return c
}

// addArticle inserts a with a fresh id; n orders publication times.
func (f *fixture) addArticle(t *testing.T, n int, a models.Article) models.Article {
	t.Helper()
	if a.ID == "" {
		a.ID = category.NewReference()
	}
	if a.PublishedAt.IsZero() {
		a.PublishedAt = baseTime.Add(time.Duration(n) * time.Hour)
	}
	require.NoError(t, f.repo.Insert(context.Background(), &a))
	return a
}

func ids(items []models.ArticleView) []string {
	out := make([]string, 0, len(items))
	for _, v := range items {
		out = append(out, v.ID)
	}
	return out
}
