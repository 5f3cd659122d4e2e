package catalog

import (
	"cmp"
	"slices"
	"strings"

	"github.com/example/coursemart/internal/client/models"
)

// PageSize is the fixed number of courses per storefront page.
const PageSize = 9

// CategoryAll is the category filter sentinel matching every category.
const CategoryAll = "all"

// SortKey selects the catalog ordering.
type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortOldest    SortKey = "oldest"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
	SortPopular   SortKey = "popular"
)

// ParseSortKey validates a user-supplied sort key.
func ParseSortKey(s string) (SortKey, bool) {
	switch k := SortKey(s); k {
	case SortNewest, SortOldest, SortPriceLow, SortPriceHigh, SortRating, SortPopular:
		return k, true
	}
	return "", false
}

// FilterState is the full set of user-controlled criteria driving the visible
// course list. The zero value is not meaningful; use DefaultFilterState.
type FilterState struct {
	SearchQuery string
	CategoryID  string
	Level       models.Level
	Sort        SortKey
	Page        int
}

// DefaultFilterState returns the state the storefront opens with: no search,
// all categories, all levels, newest first, first page.
func DefaultFilterState() FilterState {
	return FilterState{
		CategoryID: CategoryAll,
		Level:      models.LevelAll,
		Sort:       SortNewest,
		Page:       1,
	}
}

// Page is the paginated pipeline output.
type Page struct {
	Courses      []models.Course
	TotalCourses int
	TotalPages   int
	CurrentPage  int
}

// Filter returns the courses matching every active predicate of fs, in their
// original relative order. The input slice is not modified.
func Filter(courses []models.Course, fs FilterState) []models.Course {
	query := strings.ToLower(strings.TrimSpace(fs.SearchQuery))

	out := make([]models.Course, 0, len(courses))
	for _, c := range courses {
		if query != "" && !matchesQuery(c, query) {
			continue
		}
		if fs.CategoryID != CategoryAll && c.CategoryID != fs.CategoryID {
			continue
		}
		if fs.Level != models.LevelAll && !strings.EqualFold(string(c.Level), string(fs.Level)) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func matchesQuery(c models.Course, query string) bool {
	return strings.Contains(strings.ToLower(c.Title), query) ||
		strings.Contains(strings.ToLower(c.Description), query) ||
		strings.Contains(strings.ToLower(c.Instructor.Name), query)
}

// Sort returns a sorted copy of courses. The sort is stable: courses equal
// under the key keep their original relative order.
func Sort(courses []models.Course, key SortKey) []models.Course {
	out := slices.Clone(courses)

	var less func(a, b models.Course) int
	switch key {
	case SortOldest:
		less = func(a, b models.Course) int { return a.CreatedAt.Compare(b.CreatedAt) }
	case SortPriceLow:
		less = func(a, b models.Course) int { return cmp.Compare(a.Price, b.Price) }
	case SortPriceHigh:
		less = func(a, b models.Course) int { return cmp.Compare(b.Price, a.Price) }
	case SortRating:
		less = func(a, b models.Course) int { return cmp.Compare(b.Rating, a.Rating) }
	case SortPopular:
		less = func(a, b models.Course) int { return cmp.Compare(b.EnrollmentCount, a.EnrollmentCount) }
	default: // SortNewest
		less = func(a, b models.Course) int { return b.CreatedAt.Compare(a.CreatedAt) }
	}

	slices.SortStableFunc(out, less)
	return out
}

// Paginate slices the ordered list into the requested page. A page beyond the
// end yields an empty slice; the pipeline never clamps, the caller decides
// how to present an out-of-range page.
func Paginate(ordered []models.Course, page int) Page {
	total := len(ordered)
	totalPages := (total + PageSize - 1) / PageSize

	start := (page - 1) * PageSize
	end := start + PageSize
	if start < 0 || start >= total {
		return Page{Courses: []models.Course{}, TotalCourses: total, TotalPages: totalPages, CurrentPage: page}
	}
	if end > total {
		end = total
	}
	return Page{Courses: ordered[start:end], TotalCourses: total, TotalPages: totalPages, CurrentPage: page}
}

// Apply runs the whole pipeline: filter, stable sort, paginate. It is a pure
// function of its inputs; courses is never mutated.
func Apply(courses []models.Course, fs FilterState) Page {
	return Paginate(Sort(Filter(courses, fs), fs.Sort), fs.Page)
}
