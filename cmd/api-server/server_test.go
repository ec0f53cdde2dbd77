package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsportal/internal/live"
	"newsportal/pkg/database"
	"newsportal/pkg/models"
	"newsportal/pkg/utils"
)

func newTestServer(t *testing.T) (*server, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, err := database.OpenAndMigrate(database.Config{Path: filepath.Join(t.TempDir(), "news.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	cfg := utils.Config{
		Auth: utils.AuthConfig{JWTSecret: "test", JWTIssuer: "newsportal", JWTDuration: time.Hour},
	}
	s := newServer(db, cfg, zerolog.Nop())
	ts := httptest.NewServer(s.routes())
	t.Cleanup(ts.Close)
	return s, ts
}

func call(t *testing.T, method, url, token string, body any, out any) int {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestHealthReadyMetrics(t *testing.T) {
	_, ts := newTestServer(t)

	assert.Equal(t, http.StatusOK, call(t, http.MethodGet, ts.URL+"/health", "", nil, nil))

	var ready map[string]any
	assert.Equal(t, http.StatusOK, call(t, http.MethodGet, ts.URL+"/ready", "", nil, &ready))
	assert.Equal(t, "ready", ready["status"])

	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAdminFlowPublishesAndLists(t *testing.T) {
	_, ts := newTestServer(t)

	ws, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(ts.URL, "http")+"/ws/articles", nil)
	require.NoError(t, err)
	defer ws.Close()
	require.NoError(t, ws.SetReadDeadline(time.Now().Add(3*time.Second)))
	var hello map[string]any
	require.NoError(t, ws.ReadJSON(&hello))

	// writes need a token
	assert.Equal(t, http.StatusUnauthorized,
		call(t, http.MethodPost, ts.URL+"/admin/categories", "", map[string]string{"key": "technology", "label": "Technology"}, nil))

	var reg struct {
		Token string `json:"token"`
	}
	require.Equal(t, http.StatusCreated, call(t, http.MethodPost, ts.URL+"/auth/register", "",
		map[string]string{"username": "editor", "email": "editor@news.test", "password": "password123"}, &reg))

	var cat models.Category
	require.Equal(t, http.StatusCreated, call(t, http.MethodPost, ts.URL+"/admin/categories", reg.Token,
		map[string]string{"key": "technology", "label": "Technology"}, &cat))

	var created models.ArticleView
	require.Equal(t, http.StatusCreated, call(t, http.MethodPost, ts.URL+"/admin/articles", reg.Token,
		map[string]any{"title": "Chip exports rise", "language": "en", "category": cat.ID}, &created))
	assert.Equal(t, "technology", created.Category)

	var ev live.ArticleEvent
	require.NoError(t, ws.ReadJSON(&ev))
	assert.Equal(t, live.EventArticlePublished, ev.Type)
	assert.Equal(t, created.ID, ev.ID)
	assert.Equal(t, "technology", ev.Category)

	var byKey, byID models.ListResult
	require.Equal(t, http.StatusOK, call(t, http.MethodGet, ts.URL+"/articles?category=Technology&language=en", "", nil, &byKey))
	require.Equal(t, http.StatusOK, call(t, http.MethodGet, ts.URL+"/articles?category="+cat.ID, "", nil, &byID))
	for _, res := range []models.ListResult{byKey, byID} {
		assert.Equal(t, "database", res.Path)
		assert.Equal(t, 1, res.Total)
		require.Len(t, res.Items, 1)
		assert.Equal(t, created.ID, res.Items[0].ID)
	}

	var cats struct {
		Total int `json:"total"`
	}
	require.Equal(t, http.StatusOK, call(t, http.MethodGet, ts.URL+"/categories", "", nil, &cats))
	assert.Equal(t, 1, cats.Total)
}
