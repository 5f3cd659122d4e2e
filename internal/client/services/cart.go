package services

import (
	"context"
	"time"

	"github.com/example/coursemart/internal/client/models"
	"github.com/example/coursemart/internal/client/store"
	"github.com/example/coursemart/internal/logging"
)

// CartService manages the pending-purchase list. Every mutation writes the
// updated cart through the persisted cell immediately.
type CartService interface {
	// Add inserts a snapshot of course unless an item for it already
	// exists. Returns false on the duplicate no-op.
	Add(ctx context.Context, course models.Course) bool

	// Remove deletes the item for courseID if present. Returns false on
	// the absent no-op.
	Remove(ctx context.Context, courseID string) bool

	Items() []models.CartItem
	Count() int
	Total() float64
	Clear(ctx context.Context)
}

type cartService struct {
	store *store.Store
	log   logging.Logger
	now   func() time.Time
}

func NewCartService(st *store.Store, log logging.Logger) CartService {
	return &cartService{store: st, log: log, now: time.Now}
}

func (s *cartService) Add(ctx context.Context, course models.Course) bool {
	items := s.store.Cart.Get()
	for _, item := range items {
		if item.CourseID == course.ID {
			return false
		}
	}

	next := make([]models.CartItem, 0, len(items)+1)
	next = append(next, items...)
	next = append(next, models.CartItem{CourseID: course.ID, Course: course, AddedAt: s.now()})
	s.store.Cart.Set(ctx, next)

	s.log.Debug(ctx, "course added to cart", "course", course.ID)
	return true
}

func (s *cartService) Remove(ctx context.Context, courseID string) bool {
	items := s.store.Cart.Get()
	next := make([]models.CartItem, 0, len(items))
	for _, item := range items {
		if item.CourseID != courseID {
			next = append(next, item)
		}
	}
	if len(next) == len(items) {
		return false
	}
	s.store.Cart.Set(ctx, next)

	s.log.Debug(ctx, "course removed from cart", "course", courseID)
	return true
}

func (s *cartService) Items() []models.CartItem {
	return s.store.Cart.Get()
}

func (s *cartService) Count() int {
	return s.store.CartCount.Get()
}

func (s *cartService) Total() float64 {
	return s.store.CartTotal.Get()
}

func (s *cartService) Clear(ctx context.Context) {
	s.store.Cart.Set(ctx, []models.CartItem{})
}
