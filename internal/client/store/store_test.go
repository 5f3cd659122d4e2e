package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/coursemart/internal/client/catalog"
	"github.com/example/coursemart/internal/client/models"
	"github.com/example/coursemart/internal/logging"
)

// fakeRepo is an in-memory state.Repository.
type fakeRepo struct {
	data map[string][]byte
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{data: make(map[string][]byte)}
}

func (r *fakeRepo) Get(_ context.Context, key string) ([]byte, error) {
	return r.data[key], nil
}

func (r *fakeRepo) Set(_ context.Context, key string, value []byte) error {
	r.data[key] = value
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, key string) error {
	delete(r.data, key)
	return nil
}

func (r *fakeRepo) Clear(_ context.Context) error {
	r.data = make(map[string][]byte)
	return nil
}

func testStore(t *testing.T) (*Store, *fakeRepo) {
	t.Helper()
	repo := newFakeRepo()
	return New(context.Background(), repo, logging.NewDefault("error")), repo
}

func course(id string, price float64, level models.Level) models.Course {
	return models.Course{
		ID:        id,
		Title:     "Course " + id,
		Price:     price,
		Level:     level,
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestStore_DerivedFollowsPrimitiveWrites(t *testing.T) {
	s, _ := testStore(t)

	s.Courses.Set([]models.Course{
		course("1", 10, models.LevelBeginner),
		course("2", 20, models.LevelAdvanced),
	})

	page := s.PaginatedCourses.Get()
	assert.Equal(t, 2, page.TotalCourses)

	s.SetSelectedLevel(models.LevelAdvanced)

	page = s.PaginatedCourses.Get()
	require.Len(t, page.Courses, 1)
	assert.Equal(t, "2", page.Courses[0].ID)
}

func TestStore_FilterChangeResetsPage(t *testing.T) {
	s, _ := testStore(t)

	s.SetCurrentPage(4)
	assert.Equal(t, 4, s.CurrentPage.Get())

	s.SetSearchQuery("go")
	assert.Equal(t, 1, s.CurrentPage.Get())

	s.SetCurrentPage(3)
	s.SetSelectedCategory("7")
	assert.Equal(t, 1, s.CurrentPage.Get())

	s.SetCurrentPage(2)
	s.SetSortBy(catalog.SortRating)
	assert.Equal(t, 1, s.CurrentPage.Get())

	// Changing the page itself must not reset anything.
	s.SetCurrentPage(5)
	assert.Equal(t, 5, s.CurrentPage.Get())
	assert.Equal(t, "go", s.SearchQuery.Get())
}

func TestStore_ResetFilters(t *testing.T) {
	s, _ := testStore(t)

	s.SetSearchQuery("rust")
	s.SetSelectedLevel(models.LevelAdvanced)
	s.SetCurrentPage(3)

	s.ResetFilters()

	fs := s.FilterState()
	assert.Equal(t, catalog.DefaultFilterState(), fs)
}

func TestStore_CartTotalsAreDerived(t *testing.T) {
	s, _ := testStore(t)
	ctx := context.Background()

	assert.Equal(t, 0, s.CartCount.Get())

	s.Cart.Set(ctx, []models.CartItem{
		{CourseID: "1", Course: course("1", 49.99, models.LevelBeginner)},
		{CourseID: "2", Course: course("2", 100, models.LevelAdvanced)},
	})

	assert.Equal(t, 2, s.CartCount.Get())
	assert.InDelta(t, 149.99, s.CartTotal.Get(), 1e-9)
}

func TestStore_PersistedCellsRoundTrip(t *testing.T) {
	repo := newFakeRepo()
	log := logging.NewDefault("error")
	ctx := context.Background()

	s1 := New(ctx, repo, log)
	s1.Cart.Set(ctx, []models.CartItem{
		{CourseID: "1", Course: course("1", 10, models.LevelBeginner), AddedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)},
	})
	s1.Auth.Set(ctx, models.AuthSession{
		User:            &models.User{ID: "9", Email: "a@b.c"},
		Token:           "tok",
		IsAuthenticated: true,
	})

	// A second store over the same repository simulates a restart.
	s2 := New(ctx, repo, log)

	cart := s2.Cart.Get()
	require.Len(t, cart, 1)
	assert.Equal(t, s1.Cart.Get(), cart)

	auth := s2.Auth.Get()
	assert.True(t, auth.IsAuthenticated)
	assert.Equal(t, "tok", auth.Token)
	require.NotNil(t, auth.User)
	assert.Equal(t, "a@b.c", auth.User.Email)
}

func TestStore_SessionOnlyCellsResetOnRestart(t *testing.T) {
	repo := newFakeRepo()
	log := logging.NewDefault("error")
	ctx := context.Background()

	s1 := New(ctx, repo, log)
	s1.SetSearchQuery("go")
	s1.Courses.Set([]models.Course{course("1", 10, models.LevelBeginner)})

	s2 := New(ctx, repo, log)
	assert.Empty(t, s2.SearchQuery.Get())
	assert.Empty(t, s2.Courses.Get())
}

func TestStore_CorruptPersistedStateKeepsDefaults(t *testing.T) {
	repo := newFakeRepo()
	repo.data[KeyCart] = []byte("{not json")

	s := New(context.Background(), repo, logging.NewDefault("error"))
	assert.Empty(t, s.Cart.Get())
}
