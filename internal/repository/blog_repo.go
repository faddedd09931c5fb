package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/irku/blog-backend/internal/domain"
)

type blogRepository struct {
	db *gorm.DB
}

// NewBlogRepository creates a new BlogRepository with the given GORM DB instance.
func NewBlogRepository(db *gorm.DB) domain.BlogRepository {
	return &blogRepository{db: db}
}

// Create inserts a new blog into the database. Unique-index violations on
// title, excerpt, or slug surface as domain.ErrConflict.
func (r *blogRepository) Create(blog *domain.Blog) error {
	if err := r.db.Create(blog).Error; err != nil {
		return translateError("failed to create blog", err)
	}
	return nil
}

// Save writes all fields of an existing blog back to the database.
func (r *blogRepository) Save(blog *domain.Blog) error {
	if err := r.db.Save(blog).Error; err != nil {
		return translateError("failed to save blog", err)
	}
	return nil
}

// Delete removes a blog by ID. Returns false when no row existed.
func (r *blogRepository) Delete(id uint) (bool, error) {
	result := r.db.Delete(&domain.Blog{}, id)
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete blog: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// GetByID retrieves a blog by its ID.
func (r *blogRepository) GetByID(id uint) (*domain.Blog, error) {
	var blog domain.Blog
	if err := r.db.First(&blog, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("blog %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get blog: %w", err)
	}
	return &blog, nil
}

// GetBySlug retrieves a blog by slug regardless of status.
func (r *blogRepository) GetBySlug(slug string) (*domain.Blog, error) {
	var blog domain.Blog
	if err := r.db.Where("slug = ?", slug).First(&blog).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("blog %q: %w", slug, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get blog by slug: %w", err)
	}
	return &blog, nil
}

// GetBySlugAndStatus retrieves a blog by slug filtered to the given status.
func (r *blogRepository) GetBySlugAndStatus(slug string, status domain.Status) (*domain.Blog, error) {
	var blog domain.Blog
	if err := r.db.Where("slug = ? AND status = ?", slug, status).First(&blog).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("blog %q: %w", slug, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get blog by slug: %w", err)
	}
	return &blog, nil
}

// List returns all blogs matching the given filter.
func (r *blogRepository) List(filter domain.BlogFilter) ([]*domain.Blog, error) {
	var blogs []*domain.Blog
	query := applyFilter(r.db.Model(&domain.Blog{}), filter)
	switch filter.Sort {
	case domain.SortByPublishedAtDesc:
		query = query.Order("published_at DESC")
	case domain.SortByViewCountDesc:
		query = query.Order("view_count DESC")
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	if err := query.Find(&blogs).Error; err != nil {
		return nil, fmt.Errorf("failed to list blogs: %w", err)
	}
	return blogs, nil
}

// Count returns the number of blogs matching the filter, ignoring
// pagination bounds.
func (r *blogRepository) Count(filter domain.BlogFilter) (int64, error) {
	var count int64
	query := applyFilter(r.db.Model(&domain.Blog{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count blogs: %w", err)
	}
	return count, nil
}

// SumViews returns the total view count over blogs matching the filter.
// NULL counters contribute zero.
func (r *blogRepository) SumViews(filter domain.BlogFilter) (int64, error) {
	var total int64
	query := applyFilter(r.db.Model(&domain.Blog{}), filter)
	if err := query.Select("COALESCE(SUM(view_count), 0)").Scan(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to sum view counts: %w", err)
	}
	return total, nil
}

// ExistsBySlug reports whether a blog other than excludeID carries the slug.
func (r *blogRepository) ExistsBySlug(slug string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.Model(&domain.Blog{}).Where("slug = ?", slug)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check slug existence: %w", err)
	}
	return count > 0, nil
}

// IncrementViewCount atomically bumps the counter for a blog in the given
// status, treating NULL as zero. Matching no rows is a silent no-op.
func (r *blogRepository) IncrementViewCount(slug string, status domain.Status) error {
	err := r.db.Model(&domain.Blog{}).
		Where("slug = ? AND status = ?", slug, status).
		Update("view_count", gorm.Expr("COALESCE(view_count, 0) + 1")).Error
	if err != nil {
		return fmt.Errorf("failed to increment view count: %w", err)
	}
	return nil
}

// applyFilter translates the explicit filter value into WHERE clauses.
func applyFilter(query *gorm.DB, filter domain.BlogFilter) *gorm.DB {
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Featured != nil {
		query = query.Where("is_featured = ?", *filter.Featured)
	}
	if filter.Search != nil {
		like := "%" + *filter.Search + "%"
		query = query.Where("title ILIKE ? OR content ILIKE ? OR excerpt ILIKE ?", like, like, like)
	}
	if filter.Since != nil {
		query = query.Where("published_at >= ?", *filter.Since)
	}
	if filter.MinViews != nil {
		query = query.Where("view_count >= ?", *filter.MinViews)
	}
	return query
}

// translateError maps GORM's duplicated-key error to domain.ErrConflict so
// the boundary can answer 409 instead of collapsing everything to one code.
func translateError(msg string, err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%s: %w", msg, domain.ErrConflict)
	}
	return fmt.Errorf("%s: %w", msg, err)
}
