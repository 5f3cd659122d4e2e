package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/example/coursemart/internal/client/api"
	"github.com/example/coursemart/internal/client/catalog"
	"github.com/example/coursemart/internal/client/models"
	"github.com/example/coursemart/internal/client/store"
	"github.com/example/coursemart/internal/logging"
)

// catalogWindow is how many courses one refresh pulls from the backend.
// Filtering, sorting and pagination all happen client-side over this window.
const catalogWindow = 100

// CatalogService keeps the course and category cells of the store in sync
// with the backend and serves single-course lookups.
type CatalogService interface {
	// Refresh fetches courses and categories and replaces the store cells
	// wholesale. Concurrent calls collapse: when a refresh is already in
	// flight the call is a no-op.
	Refresh(ctx context.Context) error

	// EnsureFresh refreshes only when the last successful fetch is older
	// than the configured interval.
	EnsureFresh(ctx context.Context) error

	// StartAutoRefresh periodically calls EnsureFresh until ctx is done.
	// Run it in its own goroutine.
	StartAutoRefresh(ctx context.Context, interval time.Duration)

	GetCourse(ctx context.Context, id string) (models.Course, error)
	RelatedCourses(course models.Course, limit int) []models.Course
	TopInstructors(ctx context.Context, count int) ([]models.Instructor, error)
	Enrollments(ctx context.Context) ([]models.Enrollment, error)
}

type catalogService struct {
	client      api.Client
	norm        *catalog.Normalizer
	store       *store.Store
	log         logging.Logger
	minInterval time.Duration

	mu        sync.Mutex
	inFlight  bool
	lastFetch time.Time
}

func NewCatalogService(client api.Client, norm *catalog.Normalizer, st *store.Store, minInterval time.Duration, log logging.Logger) CatalogService {
	return &catalogService{client: client, norm: norm, store: st, minInterval: minInterval, log: log}
}

func (s *catalogService) Refresh(ctx context.Context) error {
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return nil
	}
	s.inFlight = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()
	}()

	resp, err := s.client.ListCourses(ctx, api.ListCoursesParams{Page: 1, PageSize: catalogWindow})
	if err != nil {
		return fmt.Errorf("loading courses: %w", err)
	}
	rawCategories, err := s.client.ListCategories(ctx)
	if err != nil {
		return fmt.Errorf("loading categories: %w", err)
	}

	courses := s.norm.Courses(resp.Courses)
	s.store.Courses.Set(courses)
	s.store.Categories.Set(s.norm.Categories(rawCategories, courses))

	s.mu.Lock()
	s.lastFetch = time.Now()
	s.mu.Unlock()

	s.log.Info(ctx, "catalog refreshed", "courses", len(courses), "categories", len(rawCategories))
	return nil
}

func (s *catalogService) EnsureFresh(ctx context.Context) error {
	s.mu.Lock()
	fresh := !s.lastFetch.IsZero() && time.Since(s.lastFetch) < s.minInterval
	s.mu.Unlock()
	if fresh {
		return nil
	}
	return s.Refresh(ctx)
}

func (s *catalogService) StartAutoRefresh(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := s.EnsureFresh(ctx); err != nil {
				// Background refreshes never surface to the user; the
				// current list stays visible and a manual refresh remains
				// available.
				s.log.Warn(ctx, "background catalog refresh failed", "error", err)
			}
		case <-ctx.Done():
			return
		}
	}
}

func (s *catalogService) GetCourse(ctx context.Context, id string) (models.Course, error) {
	rec, err := s.client.GetCourse(ctx, id)
	if err != nil {
		return models.Course{}, fmt.Errorf("loading course %s: %w", id, err)
	}
	course := s.norm.Course(*rec)
	s.store.SelectedCourse.Set(&course)
	return course, nil
}

// RelatedCourses returns other courses from the same category, preserving
// catalog order, up to limit.
func (s *catalogService) RelatedCourses(course models.Course, limit int) []models.Course {
	related := make([]models.Course, 0, limit)
	for _, c := range s.store.Courses.Get() {
		if c.ID == course.ID || c.CategoryID != course.CategoryID {
			continue
		}
		related = append(related, c)
		if len(related) == limit {
			break
		}
	}
	return related
}

func (s *catalogService) TopInstructors(ctx context.Context, count int) ([]models.Instructor, error) {
	recs, err := s.client.TopInstructors(ctx, count)
	if err != nil {
		return nil, fmt.Errorf("loading instructors: %w", err)
	}
	return s.norm.Instructors(recs), nil
}

func (s *catalogService) Enrollments(ctx context.Context) ([]models.Enrollment, error) {
	recs, err := s.client.ListEnrollments(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading enrollments: %w", err)
	}
	return s.norm.Enrollments(recs), nil
}
