package articles

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsportal/internal/category"
	"newsportal/internal/classify"
	"newsportal/pkg/models"
)

type recordingPublisher struct {
	got []models.ArticleView
}

func (p *recordingPublisher) Publish(v models.ArticleView) {
	p.got = append(p.got, v)
}

func newTestRouter(f *fixture, pub Publisher) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(f.engine, f.repo, pub, zerolog.Nop())
	h.RegisterRoutes(r.Group("/articles"))
	h.RegisterAdminRoutes(r.Group("/admin"))
	h.RegisterClassifyRoutes(&r.RouterGroup)
	return r
}

func doJSON(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandlerListAndGet(t *testing.T) {
	f := newFixture(t, Options{})
	a := f.addArticle(t, 1, models.Article{Title: "Government announces new election schedule", Language: "en"})
	f.addArticle(t, 2, models.Article{Title: "Weather is calm today", Language: "en"})
	router := newTestRouter(f, nil)

	w := doJSON(router, http.MethodGet, "/articles?language=en&category=politics&page=1&page_size=5", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res models.ListResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, PathSmart, res.Path)
	assert.Equal(t, 1, res.Total)
	assert.Equal(t, 5, res.PageSize)
	require.Len(t, res.Items, 1)
	assert.Equal(t, a.ID, res.Items[0].ID)
	assert.Equal(t, "politics", res.Items[0].Category)

	w = doJSON(router, http.MethodGet, "/articles/"+a.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var v models.ArticleView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	assert.Equal(t, "politics", v.Category)
	assert.Equal(t, string(category.StepContent), v.ResolvedBy)

	stored, err := f.repo.GetByID(t.Context(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.ViewCount)

	w = doJSON(router, http.MethodGet, "/articles/"+category.NewReference(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandlerStoreUnavailable(t *testing.T) {
	f := newFixture(t, Options{})
	router := newTestRouter(f, nil)
	require.NoError(t, f.db.Close())

	w := doJSON(router, http.MethodGet, "/articles", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = doJSON(router, http.MethodGet, "/articles/abc", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHandlerCreatePublishes(t *testing.T) {
	f := newFixture(t, Options{})
	tech := f.addCategory(t, "technology", "Technology")
	pub := &recordingPublisher{}
	router := newTestRouter(f, pub)

	w := doJSON(router, http.MethodPost, "/admin/articles", map[string]any{
		"title":      "Chip exports rise",
		"categories": []string{tech.ID},
		"source":     map[string]string{"name": "Daily Ledger"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var v models.ArticleView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	assert.True(t, category.IsOpaqueReference(v.ID))
	assert.Equal(t, "technology", v.Category)
	assert.Equal(t, "english", v.Language)

	require.Len(t, pub.got, 1)
	assert.Equal(t, v.ID, pub.got[0].ID)

	w = doJSON(router, http.MethodPost, "/admin/articles", map[string]any{"title": "  "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandlerClassify(t *testing.T) {
	f := newFixture(t, Options{})
	router := newTestRouter(f, nil)

	w := doJSON(router, http.MethodPost, "/classify", map[string]string{
		"title":    "క్రికెట్ మ్యాచ్‌లో విజయం",
		"language": "te",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var ex classify.Explanation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ex))
	assert.Equal(t, "sports", ex.Category)
	assert.Equal(t, 3, ex.Score)
	assert.Equal(t, classify.Telugu, ex.Language)
	assert.NotEmpty(t, ex.Matches)

	w = doJSON(router, http.MethodPost, "/classify", map[string]string{})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ex))
	assert.Equal(t, classify.GeneralCategory, ex.Category)
}
