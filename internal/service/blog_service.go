package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog/log"

	"github.com/irku/blog-backend/internal/domain"
	"github.com/irku/blog-backend/internal/slug"
)

const (
	defaultAuthor = "Mukesh Joshi"

	// Posts need at least this many views to count as popular.
	popularMinViews int64 = 10

	// Posts published within this window count as recent.
	recentWindowMonths = 3
)

type blogService struct {
	repo      domain.BlogRepository
	sanitizer *bluemonday.Policy
	now       func() time.Time
}

// NewBlogService creates a new BlogService backed by the given repository.
func NewBlogService(repo domain.BlogRepository) domain.BlogService {
	return &blogService{
		repo:      repo,
		sanitizer: bluemonday.UGCPolicy(),
		now:       time.Now,
	}
}

// Create validates the input, applies defaults, resolves a unique slug, and
// persists the new blog. A status of PUBLISHED stamps publishedAt.
func (s *blogService) Create(input domain.BlogInput) (*domain.Blog, error) {
	status, err := s.validate(input)
	if err != nil {
		return nil, err
	}

	base := slug.Generate(input.Title)
	if base == "" {
		return nil, fmt.Errorf("title %q yields an empty slug: %w", input.Title, domain.ErrValidation)
	}
	unique, err := slug.EnsureUnique(base, func(candidate string) (bool, error) {
		return s.repo.ExistsBySlug(candidate, 0)
	})
	if err != nil {
		return nil, err
	}

	author := strings.TrimSpace(input.Author)
	if author == "" {
		author = defaultAuthor
	}
	featured := false
	if input.IsFeatured != nil {
		featured = *input.IsFeatured
	}

	now := s.now()
	blog := &domain.Blog{
		Title:            input.Title,
		Content:          s.sanitizer.Sanitize(input.Content),
		Excerpt:          input.Excerpt,
		Author:           author,
		FeaturedImageURL: input.FeaturedImageURL,
		Slug:             unique,
		Status:           status,
		IsFeatured:       featured,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if status == domain.StatusPublished {
		blog.PublishedAt = &now
	}

	if err := s.repo.Create(blog); err != nil {
		return nil, err
	}
	log.Info().Uint("id", blog.ID).Str("slug", blog.Slug).Str("status", string(blog.Status)).Msg("blog created")
	return blog, nil
}

// Update overwrites all mutable fields of an existing blog. The slug is
// recomputed from the incoming title and re-uniquified (excluding the blog
// itself) when it changed. publishedAt is stamped only on the first
// transition into PUBLISHED; re-publishing does not move it.
func (s *blogService) Update(id uint, input domain.BlogInput) (*domain.Blog, error) {
	blog, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	status, err := s.validate(input)
	if err != nil {
		return nil, err
	}
	// An absent status on update keeps the stored one instead of falling
	// back to the create-time DRAFT default.
	if input.Status == nil {
		status = blog.Status
	}

	newSlug := slug.Generate(input.Title)
	if newSlug == "" {
		return nil, fmt.Errorf("title %q yields an empty slug: %w", input.Title, domain.ErrValidation)
	}
	if newSlug != blog.Slug {
		unique, err := slug.EnsureUnique(newSlug, func(candidate string) (bool, error) {
			return s.repo.ExistsBySlug(candidate, id)
		})
		if err != nil {
			return nil, err
		}
		blog.Slug = unique
	}

	now := s.now()
	blog.Title = input.Title
	blog.Content = s.sanitizer.Sanitize(input.Content)
	blog.Excerpt = input.Excerpt
	blog.Author = input.Author
	blog.FeaturedImageURL = input.FeaturedImageURL
	if input.IsFeatured != nil {
		blog.IsFeatured = *input.IsFeatured
	}
	blog.Status = status
	blog.UpdatedAt = now
	if status == domain.StatusPublished && blog.PublishedAt == nil {
		blog.PublishedAt = &now
	}

	if err := s.repo.Save(blog); err != nil {
		return nil, err
	}
	log.Info().Uint("id", blog.ID).Str("slug", blog.Slug).Msg("blog updated")
	return blog, nil
}

// Delete removes a blog by ID. Returns false when nothing existed, so
// repeated deletes report a negative result instead of failing.
func (s *blogService) Delete(id uint) (bool, error) {
	deleted, err := s.repo.Delete(id)
	if err != nil {
		return false, err
	}
	if deleted {
		log.Info().Uint("id", id).Msg("blog deleted")
	}
	return deleted, nil
}

// IncrementView bumps the view counter of a published blog. Unknown slugs
// and drafts are silent no-ops.
func (s *blogService) IncrementView(slugValue string) error {
	return s.repo.IncrementViewCount(slugValue, domain.StatusPublished)
}

// ListAll returns every blog regardless of status, in storage order.
func (s *blogService) ListAll() ([]*domain.Blog, error) {
	return s.repo.List(domain.BlogFilter{})
}

// ListPublished returns published blogs ordered by publish date descending.
func (s *blogService) ListPublished() ([]*domain.Blog, error) {
	return s.repo.List(publishedFilter())
}

// ListPublishedPaged returns one zero-based page of published blogs with
// total-count metadata.
func (s *blogService) ListPublishedPaged(page, size int) (*domain.Page[*domain.Blog], error) {
	return s.page(publishedFilter(), page, size)
}

// GetByID returns a blog by ID, any status.
func (s *blogService) GetByID(id uint) (*domain.Blog, error) {
	return s.repo.GetByID(id)
}

// GetPublishedBySlug returns a published blog by slug. Callers pair it with
// IncrementView on the public read path.
func (s *blogService) GetPublishedBySlug(slugValue string) (*domain.Blog, error) {
	return s.repo.GetBySlugAndStatus(slugValue, domain.StatusPublished)
}

// GetBySlug returns a blog by slug regardless of status.
func (s *blogService) GetBySlug(slugValue string) (*domain.Blog, error) {
	return s.repo.GetBySlug(slugValue)
}

// ListFeatured returns published blogs flagged as featured, newest first.
func (s *blogService) ListFeatured() ([]*domain.Blog, error) {
	featured := true
	filter := publishedFilter()
	filter.Featured = &featured
	return s.repo.List(filter)
}

// Search returns published blogs whose title, content, or excerpt contains
// the term, case-insensitively. An empty term matches every published blog.
func (s *blogService) Search(term string, page, size int) (*domain.Page[*domain.Blog], error) {
	filter := publishedFilter()
	filter.Search = &term
	return s.page(filter, page, size)
}

// ListRecent returns published blogs from the last three months, newest
// first, truncated to limit.
func (s *blogService) ListRecent(limit int) ([]*domain.Blog, error) {
	since := s.now().AddDate(0, -recentWindowMonths, 0)
	filter := publishedFilter()
	filter.Since = &since
	filter.Limit = limit
	return s.repo.List(filter)
}

// ListPopular returns published blogs with at least popularMinViews views,
// most viewed first, truncated to limit.
func (s *blogService) ListPopular(limit int) ([]*domain.Blog, error) {
	minViews := popularMinViews
	filter := publishedFilter()
	filter.MinViews = &minViews
	filter.Sort = domain.SortByViewCountDesc
	filter.Limit = limit
	return s.repo.List(filter)
}

// Stats returns the published-post count and their total views.
func (s *blogService) Stats() (*domain.BlogStats, error) {
	filter := publishedFilter()
	total, err := s.repo.Count(filter)
	if err != nil {
		return nil, err
	}
	views, err := s.repo.SumViews(filter)
	if err != nil {
		return nil, err
	}
	return &domain.BlogStats{TotalPosts: total, TotalViews: views}, nil
}

// validate checks the blank-field constraints and resolves the effective
// status. Length limits are enforced by the request binding layer.
func (s *blogService) validate(input domain.BlogInput) (domain.Status, error) {
	if strings.TrimSpace(input.Title) == "" {
		return "", fmt.Errorf("title is required: %w", domain.ErrValidation)
	}
	if strings.TrimSpace(input.Content) == "" {
		return "", fmt.Errorf("content is required: %w", domain.ErrValidation)
	}
	status := domain.StatusDraft
	if input.Status != nil {
		status = *input.Status
		if !status.Valid() {
			return "", fmt.Errorf("unknown status %q: %w", status, domain.ErrValidation)
		}
	}
	return status, nil
}

func (s *blogService) page(filter domain.BlogFilter, page, size int) (*domain.Page[*domain.Blog], error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = 10
	}
	total, err := s.repo.Count(filter)
	if err != nil {
		return nil, err
	}
	filter.Limit = size
	filter.Offset = page * size
	items, err := s.repo.List(filter)
	if err != nil {
		return nil, err
	}
	return &domain.Page[*domain.Blog]{
		Items:      items,
		PageIndex:  page,
		PageSize:   size,
		TotalCount: total,
	}, nil
}

func publishedFilter() domain.BlogFilter {
	published := domain.StatusPublished
	return domain.BlogFilter{Status: &published, Sort: domain.SortByPublishedAtDesc}
}
