package articles

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"newsportal/internal/category"
	"newsportal/internal/classify"
	"newsportal/pkg/models"
)

// Publisher is told about every article created through the API.
type Publisher interface {
	Publish(v models.ArticleView)
}

type Handler struct {
	Engine    *Engine
	Repo      *Repo
	Publisher Publisher
	Log       zerolog.Logger
}

func NewHandler(engine *Engine, repo *Repo, pub Publisher, log zerolog.Logger) *Handler {
	return &Handler{Engine: engine, Repo: repo, Publisher: pub, Log: log}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.list)        // GET /articles
	rg.GET("/:id", h.getByID) // GET /articles/:id
}

// RegisterAdminRoutes expects rg to be guarded by the auth middleware.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/articles", h.create) // POST /admin/articles
}

func (h *Handler) RegisterClassifyRoutes(rg *gin.RouterGroup) {
	rg.POST("/classify", h.classify) // POST /classify
}

func (h *Handler) list(c *gin.Context) {
	pageSize := parseInt(c.Query("page_size"), 0)
	if pageSize == 0 {
		pageSize = parseInt(c.Query("limit"), 0)
	}
	req := ListRequest{
		Language: c.Query("language"),
		Category: c.Query("category"),
		Page:     parseInt(c.Query("page"), 1),
		PageSize: pageSize,
		Sort:     ParseSort(c.Query("sort")),
	}

	res, err := h.Engine.List(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err, "list failed")
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) getByID(c *gin.Context) {
	id := c.Param("id")
	v, err := h.Engine.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "get failed")
		return
	}
	if v == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	if h.Repo != nil {
		if err := h.Repo.IncrementViews(c.Request.Context(), id); err != nil {
			h.Log.Warn().Err(err).Str("id", id).Msg("view count not updated")
		}
	}
	c.JSON(http.StatusOK, v)
}

type createReq struct {
	Title       string        `json:"title"`
	Summary     string        `json:"summary"`
	Content     string        `json:"content"`
	Language    string        `json:"language"`
	Category    string        `json:"category"`
	Categories  []string      `json:"categories"`
	Source      models.Source `json:"source"`
	URL         string        `json:"url"`
	Tags        []string      `json:"tags"`
	PublishedAt *time.Time    `json:"published_at"`
}

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title required"})
		return
	}
	lang := strings.TrimSpace(req.Language)
	if lang == "" {
		lang = string(classify.DefaultLanguage)
	}

	a := models.Article{
		ID:         category.NewReference(),
		Title:      req.Title,
		Summary:    req.Summary,
		Content:    req.Content,
		Language:   lang,
		Category:   strings.TrimSpace(req.Category),
		Categories: req.Categories,
		Source:     req.Source,
		URL:        req.URL,
		Tags:       req.Tags,
	}
	if req.PublishedAt != nil {
		a.PublishedAt = *req.PublishedAt
	}

	if err := h.Repo.Insert(c.Request.Context(), &a); err != nil {
		h.fail(c, storeErr("insert", err), "create article failed")
		return
	}

	lookup, err := h.Engine.Lookup(c.Request.Context())
	if err != nil {
		h.fail(c, err, "create article failed")
		return
	}
	v := View(h.Engine.Resolver(), a, lookup, "")
	if h.Publisher != nil {
		h.Publisher.Publish(v)
	}
	c.JSON(http.StatusCreated, v)
}

type classifyReq struct {
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	Content  string `json:"content"`
	Language string `json:"language"`
}

func (h *Handler) classify(c *gin.Context) {
	var req classifyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	ex := h.Engine.Resolver().Scorer().Explain(req.Title, req.Summary, req.Content, req.Language)
	if ex.Matches == nil {
		ex.Matches = []classify.Match{}
	}
	c.JSON(http.StatusOK, ex)
}

func (h *Handler) fail(c *gin.Context, err error, msg string) {
	if errors.Is(err, ErrStoreUnavailable) {
		h.Log.Error().Err(err).Str("path", c.FullPath()).Msg("store unavailable")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "store unavailable"})
		return
	}
	h.Log.Error().Err(err).Str("path", c.FullPath()).Msg(msg)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}

func parseInt(s string, def int) int {
	if strings.TrimSpace(s) == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
