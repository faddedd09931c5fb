// Package seed fills an empty database with sample posts so a fresh
// instance has something to serve.
package seed

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/irku/blog-backend/internal/domain"
)

// Run inserts the sample posts when the blogs table is empty. An already
// populated database is left untouched.
func Run(repo domain.BlogRepository) error {
	count, err := repo.Count(domain.BlogFilter{})
	if err != nil {
		return fmt.Errorf("failed to count blogs before seeding: %w", err)
	}
	if count > 0 {
		return nil
	}
	for _, blog := range sampleBlogs() {
		if err := repo.Create(blog); err != nil {
			return fmt.Errorf("failed to seed blog %q: %w", blog.Title, err)
		}
	}
	log.Info().Msg("seeded sample blogs")
	return nil
}

func sampleBlogs() []*domain.Blog {
	now := time.Now()
	published := func(daysAgo int) *time.Time {
		t := now.AddDate(0, 0, -daysAgo)
		return &t
	}
	str := func(s string) *string { return &s }

	return []*domain.Blog{
		{
			Title: "Enterprise Architecture Best Practices for Digital Transformation",
			Content: "Digital transformation is reshaping how organizations operate, compete, " +
				"and deliver value to customers.\n\n" +
				"## Key Principles\n\n" +
				"Architecture must always align with business objectives, scale horizontally, " +
				"embed security into every layer, and treat APIs as the backbone of integration.\n\n" +
				"## Implementation Strategies\n\n" +
				"Microservices allow independent deployment and better fault isolation, while " +
				"event-driven patterns enable loose coupling and real-time processing.",
			Excerpt: str("Essential principles and strategies for building robust enterprise " +
				"architectures that drive successful digital transformation initiatives."),
			Author:      "Mukesh Joshi",
			Slug:        "enterprise-architecture-best-practices-for-digital-transformation",
			Status:      domain.StatusPublished,
			IsFeatured:  true,
			ViewCount:   1250,
			CreatedAt:   now.AddDate(0, 0, -5),
			UpdatedAt:   now.AddDate(0, 0, -5),
			PublishedAt: published(5),
		},
		{
			Title: "Advanced Java Development Patterns for Enterprise Applications",
			Content: "Java remains the cornerstone of enterprise application development, and " +
				"mastering advanced patterns is crucial for maintainable, scalable systems.\n\n" +
				"## Design Patterns in Practice\n\n" +
				"Singletons back connection pools and configuration managers, factories hide " +
				"object creation complexity, and observers power event handling and notifications.\n\n" +
				"## Spring Framework Integration\n\n" +
				"Dependency injection promotes loose coupling and keeps business logic testable.",
			Excerpt: str("A tour of the design patterns that keep large Java codebases " +
				"maintainable, from singletons to dependency injection."),
			Author:      "Mukesh Joshi",
			Slug:        "advanced-java-development-patterns-for-enterprise-applications",
			Status:      domain.StatusPublished,
			ViewCount:   840,
			CreatedAt:   now.AddDate(0, 0, -12),
			UpdatedAt:   now.AddDate(0, 0, -12),
			PublishedAt: published(12),
		},
		{
			Title: "Cloud Migration Strategies: Lessons from the Field",
			Content: "Moving enterprise workloads to the cloud is rarely a lift-and-shift " +
				"exercise. This post collects lessons from several large migrations: start with " +
				"stateless services, invest early in observability, and treat cost as a " +
				"first-class architectural constraint.",
			Excerpt: str("Practical lessons from real enterprise cloud migrations, from " +
				"workload selection to cost control."),
			Author:    "Mukesh Joshi",
			Slug:      "cloud-migration-strategies-lessons-from-the-field",
			Status:    domain.StatusDraft,
			CreatedAt: now.AddDate(0, 0, -2),
			UpdatedAt: now.AddDate(0, 0, -2),
		},
	}
}
