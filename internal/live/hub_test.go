package live

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsportal/pkg/models"
)

func startServer(t *testing.T, hub *Hub) string {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ws/articles", WSHandler(hub))
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/articles"
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ws.Close() })

	var w welcome
	require.NoError(t, ws.SetReadDeadline(time.Now().Add(2*time.Second)))
	require.NoError(t, ws.ReadJSON(&w))
	assert.Equal(t, "welcome", w.Type)
	return ws
}

func TestPublishReachesEveryClient(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	hub.now = func() time.Time { return fixed }
	url := startServer(t, hub)

	a := dial(t, url)
	b := dial(t, url)
	assert.Equal(t, 2, hub.Stats().Clients)

	hub.Publish(models.ArticleView{
		Article:       models.Article{ID: "65a1f0c2e4b0a1b2c3d4e5f6", Title: "Cup final tonight", Language: "en"},
		Category:      "sports",
		CategoryLabel: "Sports",
	})

	for _, ws := range []*websocket.Conn{a, b} {
		var ev ArticleEvent
		require.NoError(t, ws.SetReadDeadline(time.Now().Add(2*time.Second)))
		require.NoError(t, ws.ReadJSON(&ev))
		assert.Equal(t, ArticleEvent{
			Type:     EventArticlePublished,
			ID:       "65a1f0c2e4b0a1b2c3d4e5f6",
			Title:    "Cup final tonight",
			Language: "en",
			Category: "sports",
			Label:    "Sports",
			At:       fixed,
		}, ev)
	}
}

func TestDisconnectedClientIsRemoved(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	url := startServer(t, hub)

	ws := dial(t, url)
	require.Equal(t, 1, hub.Stats().Clients)
	require.NoError(t, ws.Close())

	assert.Eventually(t, func() bool { return hub.Stats().Clients == 0 }, 2*time.Second, 10*time.Millisecond)

	// publishing with no clients is a no-op
	hub.Publish(models.ArticleView{Article: models.Article{ID: "x"}})
}
