package model

import (
	"time"

	"github.com/irku/blog-backend/internal/domain"
)

// BlogRequest is the request payload for creating or updating a blog post.
// Create and update accept the same shape; defaults for omitted status,
// author, and featured flag are applied by the service.
type BlogRequest struct {
	Title            string         `json:"title" binding:"required,max=200"`
	Content          string         `json:"content" binding:"required"`
	Excerpt          *string        `json:"excerpt,omitempty" binding:"omitempty,max=500"`
	Author           string         `json:"author,omitempty" binding:"omitempty,max=100"`
	FeaturedImageURL *string        `json:"featuredImageUrl,omitempty"`
	Status           *domain.Status `json:"status,omitempty" binding:"omitempty,oneof=DRAFT PUBLISHED"`
	IsFeatured       *bool          `json:"isFeatured,omitempty"`
}

// ToInput converts the request into the service-level input value.
func (r *BlogRequest) ToInput() domain.BlogInput {
	return domain.BlogInput{
		Title:            r.Title,
		Content:          r.Content,
		Excerpt:          r.Excerpt,
		Author:           r.Author,
		FeaturedImageURL: r.FeaturedImageURL,
		Status:           r.Status,
		IsFeatured:       r.IsFeatured,
	}
}

// ContactRequest is the request payload for the contact form.
type ContactRequest struct {
	FirstName  string `json:"firstName" binding:"required,max=100"`
	LastName   string `json:"lastName" binding:"required,max=100"`
	Email      string `json:"email" binding:"required,email,max=255"`
	Subject    string `json:"subject" binding:"required,max=100"`
	Message    string `json:"message" binding:"required,max=5000"`
	Newsletter bool   `json:"newsletter"`
}

// ToMessage converts the request into the domain value handed to the
// mail dispatcher.
func (r *ContactRequest) ToMessage() *domain.ContactMessage {
	return &domain.ContactMessage{
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Email:      r.Email,
		Subject:    r.Subject,
		Message:    r.Message,
		Newsletter: r.Newsletter,
	}
}

// BlogSummary is the reduced projection used in list responses. It omits
// the content body and creation timestamp.
type BlogSummary struct {
	ID               uint          `json:"id"`
	Title            string        `json:"title"`
	Excerpt          *string       `json:"excerpt,omitempty"`
	Author           string        `json:"author"`
	FeaturedImageURL *string       `json:"featuredImageUrl,omitempty"`
	Slug             string        `json:"slug"`
	Status           domain.Status `json:"status"`
	ViewCount        int64         `json:"viewCount"`
	IsFeatured       bool          `json:"isFeatured"`
	PublishedAt      *time.Time    `json:"publishedAt,omitempty"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}

// NewBlogSummary projects a blog into its summary form.
func NewBlogSummary(blog *domain.Blog) BlogSummary {
	return BlogSummary{
		ID:               blog.ID,
		Title:            blog.Title,
		Excerpt:          blog.Excerpt,
		Author:           blog.Author,
		FeaturedImageURL: blog.FeaturedImageURL,
		Slug:             blog.Slug,
		Status:           blog.Status,
		ViewCount:        blog.ViewCount,
		IsFeatured:       blog.IsFeatured,
		PublishedAt:      blog.PublishedAt,
		UpdatedAt:        blog.UpdatedAt,
	}
}

// Summaries projects a list of blogs. It always returns a non-nil slice so
// empty results serialize as [] rather than null.
func Summaries(blogs []*domain.Blog) []BlogSummary {
	out := make([]BlogSummary, 0, len(blogs))
	for _, b := range blogs {
		out = append(out, NewBlogSummary(b))
	}
	return out
}

// SummaryPage projects a page of blogs into a page of summaries, keeping
// the pagination metadata.
func SummaryPage(p *domain.Page[*domain.Blog]) *domain.Page[BlogSummary] {
	return &domain.Page[BlogSummary]{
		Items:      Summaries(p.Items),
		PageIndex:  p.PageIndex,
		PageSize:   p.PageSize,
		TotalCount: p.TotalCount,
	}
}
