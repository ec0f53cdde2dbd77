package category

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsportal/pkg/database"
	"newsportal/pkg/models"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.OpenAndMigrate(database.Config{Path: filepath.Join(t.TempDir(), "news.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newTestRouter(repo *Repo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(repo)
	h.RegisterRoutes(r.Group("/categories"))
	h.RegisterAdminRoutes(r.Group("/admin"))
	return r
}

func TestRepoCreateAndLookup(t *testing.T) {
	repo := NewRepo(newTestDB(t))
	ctx := context.Background()

	tech := models.Category{Key: " Technology ", Label: "Technology"}
	require.NoError(t, repo.Create(ctx, &tech))
	assert.True(t, IsOpaqueReference(tech.ID))
	assert.Equal(t, "technology", tech.Key)

	got, err := repo.GetByKey(ctx, "TECHNOLOGY")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, tech.ID, got.ID)

	missing, err := repo.GetByID(ctx, NewReference())
	require.NoError(t, err)
	assert.Nil(t, missing)

	dup := models.Category{Key: "technology", Label: "Again"}
	assert.Error(t, repo.Create(ctx, &dup))

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	c, ok := NewLookup(all).ByID(tech.ID)
	assert.True(t, ok)
	assert.Equal(t, "Technology", c.Label)
}

func TestRepoFailsOnClosedDB(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepo(db)
	require.NoError(t, db.Close())

	_, err := repo.ListAll(context.Background())
	assert.Error(t, err)
}

func TestHandlerCreateAndList(t *testing.T) {
	router := newTestRouter(NewRepo(newTestDB(t)))

	body, _ := json.Marshal(map[string]string{"key": "Sports"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/admin/categories", bytes.NewReader(body)))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created models.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "sports", created.Key)
	assert.Equal(t, "Sports", created.Label)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/admin/categories", bytes.NewReader(body)))
	assert.Equal(t, http.StatusConflict, w.Code)

	for _, bad := range []string{`{"key":"all"}`, `{"key":"65a1f0c2e4b0a1b2c3d4e5f6"}`, `{"key":"has space"}`, `{`} {
		w = httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/admin/categories", bytes.NewBufferString(bad)))
		assert.Equal(t, http.StatusBadRequest, w.Code, bad)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/categories", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items []models.Category `json:"items"`
		Total int               `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, created.ID, resp.Items[0].ID)
}
