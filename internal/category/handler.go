package category

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"

	"newsportal/pkg/models"
)

var keyPattern = regexp.MustCompile(`^[\p{L}\p{M}\p{N}][\p{L}\p{M}\p{N}_-]{0,63}$`)

type Handler struct {
	Repo *Repo
}

func NewHandler(repo *Repo) *Handler {
	return &Handler{Repo: repo}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.list) // GET /categories
}

// RegisterAdminRoutes expects rg to be guarded by the auth middleware.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/categories", h.create) // POST /admin/categories
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.Repo.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "categories unavailable"})
		return
	}
	if items == nil {
		items = []models.Category{}
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "total": len(items)})
}

type createReq struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	key := strings.ToLower(strings.TrimSpace(req.Key))
	if !keyPattern.MatchString(key) || IsOpaqueReference(key) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "key must be a short slug"})
		return
	}
	if key == "all" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "key is reserved"})
		return
	}
	label := strings.TrimSpace(req.Label)
	if label == "" {
		label = titleCase(key)
	}

	if existing, _ := h.Repo.GetByKey(c.Request.Context(), key); existing != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "category already exists"})
		return
	}

	cat := models.Category{Key: key, Label: label}
	if err := h.Repo.Create(c.Request.Context(), &cat); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create category failed"})
		return
	}
	c.JSON(http.StatusCreated, cat)
}
