package store

import (
	"context"

	"github.com/example/coursemart/internal/client/catalog"
	"github.com/example/coursemart/internal/client/models"
	"github.com/example/coursemart/internal/client/repositories/state"
	"github.com/example/coursemart/internal/logging"
)

// Persistence keys in the state repository.
const (
	KeyAuth = "auth"
	KeyCart = "cart"
)

// Store owns all primitive storefront state and exposes the derived values
// computed from it. It is created once at session start and injected into
// services and views; there are no package-level singletons.
type Store struct {
	c   *core
	log logging.Logger

	// Catalog data, replaced wholesale on refresh.
	Courses        *Cell[[]models.Course]
	Categories     *Cell[[]models.Category]
	SelectedCourse *Cell[*models.Course]

	// Filter criteria. Use the Set* helpers below so that page resets
	// happen atomically with the triggering change.
	SearchQuery      *Cell[string]
	SelectedCategory *Cell[string]
	SelectedLevel    *Cell[models.Level]
	SortBy           *Cell[catalog.SortKey]
	CurrentPage      *Cell[int]

	// Durable cells; survive a restart through the state repository.
	Auth *Persisted[models.AuthSession]
	Cart *Persisted[[]models.CartItem]

	// Derived cells. Never mutated, only replaced on recomputation.
	FilteredCourses  *Derived[[]models.Course]
	PaginatedCourses *Derived[catalog.Page]
	CartCount        *Derived[int]
	CartTotal        *Derived[float64]
}

// New builds the store, loading the persisted auth session and cart from the
// repository.
func New(ctx context.Context, repo state.Repository, log logging.Logger) *Store {
	c := newCore()
	fs := catalog.DefaultFilterState()

	s := &Store{
		c:   c,
		log: log,

		Courses:        newCell(c, []models.Course(nil)),
		Categories:     newCell(c, []models.Category(nil)),
		SelectedCourse: newCell[*models.Course](c, nil),

		SearchQuery:      newCell(c, fs.SearchQuery),
		SelectedCategory: newCell(c, fs.CategoryID),
		SelectedLevel:    newCell(c, fs.Level),
		SortBy:           newCell(c, fs.Sort),
		CurrentPage:      newCell(c, fs.Page),

		Auth: newPersisted(ctx, c, KeyAuth, models.Anonymous(), repo, log),
		Cart: newPersisted(ctx, c, KeyCart, []models.CartItem{}, repo, log),
	}

	s.FilteredCourses = newDerived(c, func() []models.Course {
		return catalog.Sort(catalog.Filter(s.Courses.peek(), s.filterStateLocked()), s.SortBy.peek())
	})
	s.PaginatedCourses = newDerived(c, func() catalog.Page {
		return catalog.Paginate(s.FilteredCourses.valueLocked(), s.CurrentPage.peek())
	})
	s.CartCount = newDerived(c, func() int {
		return len(s.Cart.peek())
	})
	s.CartTotal = newDerived(c, func() float64 {
		var total float64
		for _, item := range s.Cart.peek() {
			total += item.Course.Price
		}
		return total
	})

	return s
}

// FilterState returns a consistent snapshot of all filter criteria.
func (s *Store) FilterState() catalog.FilterState {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()
	return s.filterStateLocked()
}

func (s *Store) filterStateLocked() catalog.FilterState {
	return catalog.FilterState{
		SearchQuery: s.SearchQuery.peek(),
		CategoryID:  s.SelectedCategory.peek(),
		Level:       s.SelectedLevel.peek(),
		Sort:        s.SortBy.peek(),
		Page:        s.CurrentPage.peek(),
	}
}

// Changing any filter criterion except the page itself resets the page to 1,
// in the same revision as the triggering write.

func (s *Store) SetSearchQuery(q string) {
	s.setFilter(func() { s.SearchQuery.set(q) })
}

func (s *Store) SetSelectedCategory(id string) {
	s.setFilter(func() { s.SelectedCategory.set(id) })
}

func (s *Store) SetSelectedLevel(l models.Level) {
	s.setFilter(func() { s.SelectedLevel.set(l) })
}

func (s *Store) SetSortBy(k catalog.SortKey) {
	s.setFilter(func() { s.SortBy.set(k) })
}

func (s *Store) SetCurrentPage(page int) {
	s.CurrentPage.Set(page)
}

// ResetFilters restores the default filter state.
func (s *Store) ResetFilters() {
	fs := catalog.DefaultFilterState()
	s.c.mu.Lock()
	defer s.c.mu.Unlock()
	s.SearchQuery.set(fs.SearchQuery)
	s.SelectedCategory.set(fs.CategoryID)
	s.SelectedLevel.set(fs.Level)
	s.SortBy.set(fs.Sort)
	s.CurrentPage.set(fs.Page)
	s.c.rev++
}

func (s *Store) setFilter(apply func()) {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()
	apply()
	s.CurrentPage.set(1)
	s.c.rev++
}
