package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/irku/blog-backend/internal/domain"
)

// stubService is a canned-response BlogService recording increment calls.
type stubService struct {
	blog       *domain.Blog
	blogs      []*domain.Blog
	page       *domain.Page[*domain.Blog]
	stats      *domain.BlogStats
	err        error
	deleted    bool
	increments []string
}

func (s *stubService) Create(domain.BlogInput) (*domain.Blog, error)         { return s.blog, s.err }
func (s *stubService) Update(uint, domain.BlogInput) (*domain.Blog, error)   { return s.blog, s.err }
func (s *stubService) Delete(uint) (bool, error)                             { return s.deleted, s.err }
func (s *stubService) ListAll() ([]*domain.Blog, error)                      { return s.blogs, s.err }
func (s *stubService) ListPublished() ([]*domain.Blog, error)                { return s.blogs, s.err }
func (s *stubService) GetByID(uint) (*domain.Blog, error)                    { return s.blog, s.err }
func (s *stubService) GetPublishedBySlug(string) (*domain.Blog, error)       { return s.blog, s.err }
func (s *stubService) GetBySlug(string) (*domain.Blog, error)                { return s.blog, s.err }
func (s *stubService) ListFeatured() ([]*domain.Blog, error)                 { return s.blogs, s.err }
func (s *stubService) ListRecent(int) ([]*domain.Blog, error)                { return s.blogs, s.err }
func (s *stubService) ListPopular(int) ([]*domain.Blog, error)               { return s.blogs, s.err }
func (s *stubService) Stats() (*domain.BlogStats, error)                     { return s.stats, s.err }
func (s *stubService) ListPublishedPaged(int, int) (*domain.Page[*domain.Blog], error) {
	return s.page, s.err
}
func (s *stubService) Search(string, int, int) (*domain.Page[*domain.Blog], error) {
	return s.page, s.err
}
func (s *stubService) IncrementView(slug string) error {
	s.increments = append(s.increments, slug)
	return nil
}

func newRouter(svc domain.BlogService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewBlogHandler(svc).Register(r)
	return r
}

func perform(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sampleBlog() *domain.Blog {
	now := time.Now()
	return &domain.Blog{
		ID:          1,
		Title:       "Test Post",
		Content:     "body",
		Author:      "Mukesh Joshi",
		Slug:        "test-post",
		Status:      domain.StatusPublished,
		CreatedAt:   now,
		UpdatedAt:   now,
		PublishedAt: &now,
	}
}

func TestGetBySlug_IncrementsView(t *testing.T) {
	svc := &stubService{blog: sampleBlog()}
	r := newRouter(svc)

	w := perform(r, http.MethodGet, "/blogs/slug/test-post", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if len(svc.increments) != 1 || svc.increments[0] != "test-post" {
		t.Errorf("increments = %v, want one call for test-post", svc.increments)
	}
}

func TestGetBySlug_NotFoundSkipsIncrement(t *testing.T) {
	svc := &stubService{err: domain.ErrNotFound}
	r := newRouter(svc)

	w := perform(r, http.MethodGet, "/blogs/slug/missing", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if len(svc.increments) != 0 {
		t.Errorf("increments = %v, want none for missing slug", svc.increments)
	}
}

func TestGetByID(t *testing.T) {
	tests := []struct {
		name string
		path string
		svc  *stubService
		want int
	}{
		{"found", "/blogs/1", &stubService{blog: sampleBlog()}, http.StatusOK},
		{"not found", "/blogs/99", &stubService{err: fmt.Errorf("blog 99: %w", domain.ErrNotFound)}, http.StatusNotFound},
		{"invalid id", "/blogs/abc", &stubService{}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := perform(newRouter(tt.svc), http.MethodGet, tt.path, "")
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestStaticRoutesWinOverIDParam(t *testing.T) {
	svc := &stubService{
		blogs: []*domain.Blog{sampleBlog()},
		stats: &domain.BlogStats{TotalPosts: 1, TotalViews: 5},
	}
	r := newRouter(svc)

	for _, path := range []string{"/blogs/all", "/blogs/stats", "/blogs/featured", "/blogs/recent", "/blogs/popular"} {
		w := perform(r, http.MethodGet, path, "")
		if w.Code != http.StatusOK {
			t.Errorf("GET %s status = %d, want 200", path, w.Code)
		}
	}
}

func TestCreate(t *testing.T) {
	valid := `{"title":"Test Post","content":"body","status":"PUBLISHED"}`
	tests := []struct {
		name string
		body string
		svc  *stubService
		want int
	}{
		{"created", valid, &stubService{blog: sampleBlog()}, http.StatusCreated},
		{"missing title", `{"content":"body"}`, &stubService{}, http.StatusBadRequest},
		{"bad status value", `{"title":"T","content":"b","status":"ARCHIVED"}`, &stubService{}, http.StatusBadRequest},
		{"validation error from service", valid, &stubService{err: fmt.Errorf("title: %w", domain.ErrValidation)}, http.StatusBadRequest},
		{"conflict", valid, &stubService{err: fmt.Errorf("slug: %w", domain.ErrConflict)}, http.StatusConflict},
		{"storage failure", valid, &stubService{err: errors.New("db down")}, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := perform(newRouter(tt.svc), http.MethodPost, "/blogs", tt.body)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestCreate_ResponseCarriesSlugAndPublishedAt(t *testing.T) {
	svc := &stubService{blog: sampleBlog()}
	w := perform(newRouter(svc), http.MethodPost, "/blogs", `{"title":"Test Post","content":"body","status":"PUBLISHED"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", w.Code)
	}
	var resp struct {
		Slug        string     `json:"slug"`
		PublishedAt *time.Time `json:"publishedAt"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Slug != "test-post" {
		t.Errorf("slug = %q, want %q", resp.Slug, "test-post")
	}
	if resp.PublishedAt == nil {
		t.Error("publishedAt missing in response")
	}
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name string
		svc  *stubService
		want int
	}{
		{"deleted", &stubService{deleted: true}, http.StatusNoContent},
		{"already gone", &stubService{deleted: false}, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := perform(newRouter(tt.svc), http.MethodDelete, "/blogs/1", "")
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestListPublished_SummariesOmitContent(t *testing.T) {
	svc := &stubService{blogs: []*domain.Blog{sampleBlog()}}
	w := perform(newRouter(svc), http.MethodGet, "/blogs", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var items []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("len = %d, want 1", len(items))
	}
	if _, ok := items[0]["content"]; ok {
		t.Error("summary carries content field")
	}
	if _, ok := items[0]["createdAt"]; ok {
		t.Error("summary carries createdAt field")
	}
	if items[0]["slug"] != "test-post" {
		t.Errorf("slug = %v, want test-post", items[0]["slug"])
	}
}

func TestSearch_PageMetadata(t *testing.T) {
	svc := &stubService{page: &domain.Page[*domain.Blog]{
		Items: []*domain.Blog{sampleBlog()}, PageIndex: 0, PageSize: 10, TotalCount: 1,
	}}
	w := perform(newRouter(svc), http.MethodGet, "/blogs/search?q=test", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp struct {
		Items      []map[string]any `json:"items"`
		PageIndex  int              `json:"pageIndex"`
		PageSize   int              `json:"pageSize"`
		TotalCount int64            `json:"totalCount"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.TotalCount != 1 || resp.PageSize != 10 {
		t.Errorf("metadata = %+v, want totalCount 1, pageSize 10", resp)
	}
}
