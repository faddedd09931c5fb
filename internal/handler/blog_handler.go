package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/irku/blog-backend/internal/domain"
	"github.com/irku/blog-backend/internal/model"
)

// BlogHandler handles HTTP requests for blog posts.
type BlogHandler struct {
	Service domain.BlogService
}

// NewBlogHandler creates a new BlogHandler.
func NewBlogHandler(service domain.BlogService) *BlogHandler {
	return &BlogHandler{Service: service}
}

// Register mounts the blog routes on the given router. Static segments are
// registered alongside the :id parameter; gin resolves them by priority.
func (h *BlogHandler) Register(r gin.IRouter) {
	r.GET("/blogs", h.ListPublished)
	r.GET("/blogs/all", h.ListAll)
	r.GET("/blogs/stats", h.Stats)
	r.GET("/blogs/page", h.ListPublishedPaged)
	r.GET("/blogs/featured", h.ListFeatured)
	r.GET("/blogs/search", h.Search)
	r.GET("/blogs/recent", h.ListRecent)
	r.GET("/blogs/popular", h.ListPopular)
	r.GET("/blogs/slug/:slug", h.GetBySlug)
	r.GET("/blogs/:id", h.GetByID)
	r.POST("/blogs", h.Create)
	r.PUT("/blogs/:id", h.Update)
	r.DELETE("/blogs/:id", h.Delete)
}

// ListPublished handles GET /blogs.
func (h *BlogHandler) ListPublished(c *gin.Context) {
	blogs, err := h.Service.ListPublished()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, model.Summaries(blogs))
}

// ListAll handles GET /blogs/all. Returns every blog regardless of status.
func (h *BlogHandler) ListAll(c *gin.Context) {
	blogs, err := h.Service.ListAll()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, model.Summaries(blogs))
}

// Stats handles GET /blogs/stats.
func (h *BlogHandler) Stats(c *gin.Context) {
	stats, err := h.Service.Stats()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ListPublishedPaged handles GET /blogs/page?page&size.
func (h *BlogHandler) ListPublishedPaged(c *gin.Context) {
	page := intQuery(c, "page", 0)
	size := intQuery(c, "size", 10)
	result, err := h.Service.ListPublishedPaged(page, size)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, model.SummaryPage(result))
}

// GetByID handles GET /blogs/:id.
func (h *BlogHandler) GetByID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	blog, err := h.Service.GetByID(id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, blog)
}

// GetBySlug handles GET /blogs/slug/:slug. Fetching a published blog by
// slug counts as a view, so the counter is bumped as a side effect.
func (h *BlogHandler) GetBySlug(c *gin.Context) {
	slug := c.Param("slug")
	blog, err := h.Service.GetPublishedBySlug(slug)
	if err != nil {
		h.fail(c, err)
		return
	}
	if err := h.Service.IncrementView(slug); err != nil {
		log.Error().Err(err).Str("slug", slug).Msg("failed to increment view count")
	}
	c.JSON(http.StatusOK, blog)
}

// ListFeatured handles GET /blogs/featured.
func (h *BlogHandler) ListFeatured(c *gin.Context) {
	blogs, err := h.Service.ListFeatured()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, model.Summaries(blogs))
}

// Search handles GET /blogs/search?q&page&size.
func (h *BlogHandler) Search(c *gin.Context) {
	term := c.Query("q")
	page := intQuery(c, "page", 0)
	size := intQuery(c, "size", 10)
	result, err := h.Service.Search(term, page, size)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, model.SummaryPage(result))
}

// ListRecent handles GET /blogs/recent?limit=5.
func (h *BlogHandler) ListRecent(c *gin.Context) {
	blogs, err := h.Service.ListRecent(intQuery(c, "limit", 5))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, model.Summaries(blogs))
}

// ListPopular handles GET /blogs/popular?limit=5.
func (h *BlogHandler) ListPopular(c *gin.Context) {
	blogs, err := h.Service.ListPopular(intQuery(c, "limit", 5))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, model.Summaries(blogs))
}

// Create handles POST /blogs.
func (h *BlogHandler) Create(c *gin.Context) {
	var req model.BlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	blog, err := h.Service.Create(req.ToInput())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, blog)
}

// Update handles PUT /blogs/:id.
func (h *BlogHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req model.BlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	blog, err := h.Service.Update(id, req.ToInput())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, blog)
}

// Delete handles DELETE /blogs/:id.
func (h *BlogHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	deleted, err := h.Service.Delete(id)
	if err != nil {
		h.fail(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "blog not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// fail translates service errors into HTTP responses.
func (h *BlogHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "blog not found"})
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

func intQuery(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
