package domain

import (
	"errors"
	"time"
)

// Status is the publication state of a blog post.
type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusPublished Status = "PUBLISHED"
)

// Valid reports whether s is a known status value.
func (s Status) Valid() bool {
	return s == StatusDraft || s == StatusPublished
}

// Sentinel errors for the service and repository layers. Callers match them
// with errors.Is and translate them to HTTP status codes at the boundary.
var (
	ErrNotFound   = errors.New("blog not found")
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("uniqueness conflict")
)

// Blog is the central entity, persisted in the "blogs" table.
type Blog struct {
	ID               uint       `json:"id" gorm:"primaryKey"`
	Title            string     `json:"title" gorm:"size:200;not null;uniqueIndex"`
	Content          string     `json:"content" gorm:"type:text;not null"`
	Excerpt          *string    `json:"excerpt,omitempty" gorm:"size:500;uniqueIndex"`
	Author           string     `json:"author" gorm:"size:100"`
	FeaturedImageURL *string    `json:"featuredImageUrl,omitempty" gorm:"column:featured_image_url"`
	Slug             string     `json:"slug" gorm:"not null;uniqueIndex"`
	Status           Status     `json:"status" gorm:"size:20;not null"`
	ViewCount        int64      `json:"viewCount" gorm:"not null;default:0"`
	IsFeatured       bool       `json:"isFeatured" gorm:"not null;default:false"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
	PublishedAt      *time.Time `json:"publishedAt,omitempty"`
}

// TableName overrides GORM's pluralization to match the original schema.
func (Blog) TableName() string {
	return "blogs"
}

// BlogInput carries the mutable fields accepted by create and update.
// Defaults (author, status, featured flag) are applied by the service,
// not by field initializers.
type BlogInput struct {
	Title            string
	Content          string
	Excerpt          *string
	Author           string
	FeaturedImageURL *string
	Status           *Status
	IsFeatured       *bool
}

// SortKey selects the ordering applied by the repository.
type SortKey int

const (
	SortNone SortKey = iota
	SortByPublishedAtDesc
	SortByViewCountDesc
)

// BlogFilter is the explicit query shape passed to the repository.
// Nil pointer fields mean "no constraint".
type BlogFilter struct {
	Status   *Status
	Featured *bool
	Search   *string
	Since    *time.Time
	MinViews *int64
	Sort     SortKey
	Limit    int
	Offset   int
}

// Page is a single page of results with total-count metadata for
// client-side pagination controls. PageIndex is zero-based.
type Page[T any] struct {
	Items      []T   `json:"items"`
	PageIndex  int   `json:"pageIndex"`
	PageSize   int   `json:"pageSize"`
	TotalCount int64 `json:"totalCount"`
}

// BlogStats aggregates counters over published posts.
type BlogStats struct {
	TotalPosts int64 `json:"totalPosts"`
	TotalViews int64 `json:"totalViews"`
}

type BlogRepository interface {
	Create(blog *Blog) error
	Save(blog *Blog) error
	Delete(id uint) (bool, error)
	GetByID(id uint) (*Blog, error)
	GetBySlug(slug string) (*Blog, error)
	GetBySlugAndStatus(slug string, status Status) (*Blog, error)
	List(filter BlogFilter) ([]*Blog, error)
	Count(filter BlogFilter) (int64, error)
	SumViews(filter BlogFilter) (int64, error)
	// ExistsBySlug reports whether any blog other than excludeID carries
	// the slug. Pass excludeID 0 to check the whole collection.
	ExistsBySlug(slug string, excludeID uint) (bool, error)
	// IncrementViewCount atomically bumps view_count for the blog with the
	// given slug and status. Matching no rows is not an error.
	IncrementViewCount(slug string, status Status) error
}

type BlogService interface {
	Create(input BlogInput) (*Blog, error)
	Update(id uint, input BlogInput) (*Blog, error)
	Delete(id uint) (bool, error)
	IncrementView(slug string) error

	ListAll() ([]*Blog, error)
	ListPublished() ([]*Blog, error)
	ListPublishedPaged(page, size int) (*Page[*Blog], error)
	GetByID(id uint) (*Blog, error)
	GetPublishedBySlug(slug string) (*Blog, error)
	GetBySlug(slug string) (*Blog, error)
	ListFeatured() ([]*Blog, error)
	Search(term string, page, size int) (*Page[*Blog], error)
	ListRecent(limit int) ([]*Blog, error)
	ListPopular(limit int) ([]*Blog, error)
	Stats() (*BlogStats, error)
}
