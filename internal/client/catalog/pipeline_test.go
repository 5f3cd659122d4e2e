package catalog

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/coursemart/internal/client/models"
)

var testEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func makeCourse(id string, opts ...func(*models.Course)) models.Course {
	c := models.Course{
		ID:         id,
		Title:      "Course " + id,
		Level:      models.LevelBeginner,
		CategoryID: "1",
		Instructor: models.InstructorRef{ID: "10", Name: "Jane Doe"},
		CreatedAt:  testEpoch,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func withPrice(p float64) func(*models.Course)    { return func(c *models.Course) { c.Price = p } }
func withLevel(l models.Level) func(*models.Course) {
	return func(c *models.Course) { c.Level = l }
}
func withRating(r float64) func(*models.Course)   { return func(c *models.Course) { c.Rating = r } }
func withStudents(n int) func(*models.Course)     { return func(c *models.Course) { c.EnrollmentCount = n } }
func withCategory(id string) func(*models.Course) { return func(c *models.Course) { c.CategoryID = id } }
func withCreatedAt(d time.Duration) func(*models.Course) {
	return func(c *models.Course) { c.CreatedAt = testEpoch.Add(d) }
}
func withTitle(title string) func(*models.Course) { return func(c *models.Course) { c.Title = title } }
func withInstructorName(n string) func(*models.Course) {
	return func(c *models.Course) { c.Instructor.Name = n }
}

func TestParseSortKey(t *testing.T) {
	for _, valid := range []string{"newest", "oldest", "price-low", "price-high", "rating", "popular"} {
		k, ok := ParseSortKey(valid)
		assert.True(t, ok)
		assert.Equal(t, SortKey(valid), k)
	}
	_, ok := ParseSortKey("cheapest")
	assert.False(t, ok)
}

func TestFilter_EmptyQueryPassesEverything(t *testing.T) {
	courses := []models.Course{makeCourse("1"), makeCourse("2"), makeCourse("3")}
	got := Filter(courses, DefaultFilterState())
	assert.Len(t, got, 3)
}

func TestFilter_SearchMatchesTitleDescriptionAndInstructor(t *testing.T) {
	courses := []models.Course{
		makeCourse("1", withTitle("Go Fundamentals")),
		makeCourse("2", func(c *models.Course) { c.Description = "covers go routines" }),
		makeCourse("3", withInstructorName("Margo Smith")),
		makeCourse("4", withTitle("Rust Basics"), withInstructorName("Bob")),
	}

	fs := DefaultFilterState()
	fs.SearchQuery = "GO"

	got := Filter(courses, fs)
	require.Len(t, got, 3)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "2", got[1].ID)
	assert.Equal(t, "3", got[2].ID)
}

func TestFilter_CategoryAndLevel(t *testing.T) {
	courses := []models.Course{
		makeCourse("1", withCategory("5"), withLevel(models.LevelAdvanced)),
		makeCourse("2", withCategory("5"), withLevel(models.LevelBeginner)),
		makeCourse("3", withCategory("6"), withLevel(models.LevelAdvanced)),
	}

	fs := DefaultFilterState()
	fs.CategoryID = "5"
	got := Filter(courses, fs)
	require.Len(t, got, 2)

	fs.Level = models.LevelAdvanced
	got = Filter(courses, fs)
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}

func TestFilter_LevelIsCaseInsensitive(t *testing.T) {
	courses := []models.Course{makeCourse("1", withLevel("Advanced"))}

	fs := DefaultFilterState()
	fs.Level = models.LevelAdvanced

	got := Filter(courses, fs)
	assert.Len(t, got, 1)
}

func TestFilter_OutputSatisfiesAllActivePredicates(t *testing.T) {
	var courses []models.Course
	levels := []models.Level{models.LevelBeginner, models.LevelIntermediate, models.LevelAdvanced}
	for i := 0; i < 30; i++ {
		courses = append(courses, makeCourse(fmt.Sprint(i),
			withCategory(fmt.Sprint(i%3)),
			withLevel(levels[i%len(levels)]),
			withTitle(fmt.Sprintf("Course %d go", i%2)),
		))
	}

	fs := DefaultFilterState()
	fs.SearchQuery = "go"
	fs.CategoryID = "1"
	fs.Level = models.LevelIntermediate

	got := Filter(courses, fs)
	assert.LessOrEqual(t, len(got), len(courses))
	for _, c := range got {
		assert.Contains(t, strings.ToLower(c.Title), "go")
		assert.Equal(t, "1", c.CategoryID)
		assert.Equal(t, models.LevelIntermediate, c.Level)
	}
}

func TestSort_PriceOrdering(t *testing.T) {
	courses := []models.Course{
		makeCourse("1", withPrice(50)),
		makeCourse("2", withPrice(10)),
		makeCourse("3", withPrice(99)),
		makeCourse("4", withPrice(10)),
	}

	low := Sort(courses, SortPriceLow)
	for i := 1; i < len(low); i++ {
		assert.LessOrEqual(t, low[i-1].Price, low[i].Price)
	}
	// Stability: equal prices keep their original relative order.
	assert.Equal(t, "2", low[0].ID)
	assert.Equal(t, "4", low[1].ID)

	high := Sort(courses, SortPriceHigh)
	for i := 1; i < len(high); i++ {
		assert.GreaterOrEqual(t, high[i-1].Price, high[i].Price)
	}
}

func TestSort_NewestAndOldest(t *testing.T) {
	courses := []models.Course{
		makeCourse("1", withCreatedAt(1*time.Hour)),
		makeCourse("2", withCreatedAt(3*time.Hour)),
		makeCourse("3", withCreatedAt(2*time.Hour)),
	}

	newest := Sort(courses, SortNewest)
	assert.Equal(t, []string{"2", "3", "1"}, ids(newest))

	oldest := Sort(courses, SortOldest)
	assert.Equal(t, []string{"1", "3", "2"}, ids(oldest))
}

func TestSort_RatingAndPopular(t *testing.T) {
	courses := []models.Course{
		makeCourse("1", withRating(3.5), withStudents(10)),
		makeCourse("2", withRating(4.8), withStudents(500)),
		makeCourse("3", withRating(4.8), withStudents(100)),
	}

	byRating := Sort(courses, SortRating)
	assert.Equal(t, []string{"2", "3", "1"}, ids(byRating))

	byPopularity := Sort(courses, SortPopular)
	assert.Equal(t, []string{"2", "3", "1"}, ids(byPopularity))
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	courses := []models.Course{
		makeCourse("1", withPrice(50)),
		makeCourse("2", withPrice(10)),
	}

	_ = Sort(courses, SortPriceLow)
	assert.Equal(t, []string{"1", "2"}, ids(courses))
}

func TestPaginate_SlicesAndMetadata(t *testing.T) {
	var courses []models.Course
	for i := 1; i <= 20; i++ {
		courses = append(courses, makeCourse(fmt.Sprint(i)))
	}

	p1 := Paginate(courses, 1)
	assert.Len(t, p1.Courses, PageSize)
	assert.Equal(t, 20, p1.TotalCourses)
	assert.Equal(t, 3, p1.TotalPages)
	assert.Equal(t, 1, p1.CurrentPage)

	p3 := Paginate(courses, 3)
	assert.Len(t, p3.Courses, 2)
}

func TestPaginate_ConcatenatingPagesReconstructsTheList(t *testing.T) {
	var courses []models.Course
	for i := 1; i <= 25; i++ {
		courses = append(courses, makeCourse(fmt.Sprint(i)))
	}

	totalPages := Paginate(courses, 1).TotalPages
	var rebuilt []models.Course
	for page := 1; page <= totalPages; page++ {
		rebuilt = append(rebuilt, Paginate(courses, page).Courses...)
	}

	require.Len(t, rebuilt, len(courses))
	assert.Equal(t, ids(courses), ids(rebuilt))
}

func TestPaginate_PageBeyondEndIsEmptyNotClamped(t *testing.T) {
	courses := []models.Course{makeCourse("1")}

	p := Paginate(courses, 5)
	assert.Empty(t, p.Courses)
	assert.Equal(t, 5, p.CurrentPage)
	assert.Equal(t, 1, p.TotalPages)
}

func TestPaginate_EmptyList(t *testing.T) {
	p := Paginate(nil, 1)
	assert.Empty(t, p.Courses)
	assert.Equal(t, 0, p.TotalPages)
	assert.Equal(t, 0, p.TotalCourses)
}

func TestApply_AdvancedByPriceHighScenario(t *testing.T) {
	// 10 courses, 4 of them advanced and priced >= 100.
	courses := []models.Course{
		makeCourse("1", withLevel(models.LevelAdvanced), withPrice(150)),
		makeCourse("2", withLevel(models.LevelBeginner), withPrice(200)),
		makeCourse("3", withLevel(models.LevelAdvanced), withPrice(100)),
		makeCourse("4", withLevel(models.LevelIntermediate), withPrice(50)),
		makeCourse("5", withLevel(models.LevelAdvanced), withPrice(300)),
		makeCourse("6", withLevel(models.LevelBeginner), withPrice(10)),
		makeCourse("7", withLevel(models.LevelAdvanced), withPrice(120)),
		makeCourse("8", withLevel(models.LevelBeginner), withPrice(80)),
		makeCourse("9", withLevel(models.LevelIntermediate), withPrice(90)),
		makeCourse("10", withLevel(models.LevelBeginner), withPrice(60)),
	}

	fs := DefaultFilterState()
	fs.Level = models.LevelAdvanced
	fs.Sort = SortPriceHigh

	page := Apply(courses, fs)
	require.Len(t, page.Courses, 4)
	assert.Equal(t, []string{"5", "1", "7", "3"}, ids(page.Courses))
}

func TestApply_EmptyCatalog(t *testing.T) {
	page := Apply(nil, DefaultFilterState())
	assert.Empty(t, page.Courses)
	assert.Equal(t, 0, page.TotalPages)
}

func TestApply_OutputNeverExceedsInput(t *testing.T) {
	var courses []models.Course
	for i := 0; i < 40; i++ {
		courses = append(courses, makeCourse(fmt.Sprint(i), withCategory(fmt.Sprint(i%4))))
	}

	states := []FilterState{
		DefaultFilterState(),
		{SearchQuery: "course", CategoryID: "2", Level: models.LevelAll, Sort: SortRating, Page: 1},
		{SearchQuery: "zzz", CategoryID: CategoryAll, Level: models.LevelAll, Sort: SortPopular, Page: 1},
		{CategoryID: "1", Level: models.LevelBeginner, Sort: SortOldest, Page: 2},
	}

	for _, fs := range states {
		page := Apply(courses, fs)
		assert.LessOrEqual(t, len(page.Courses), len(courses))
		assert.LessOrEqual(t, len(page.Courses), PageSize)
	}
}

func ids(courses []models.Course) []string {
	out := make([]string, len(courses))
	for i, c := range courses {
		out[i] = c.ID
	}
	return out
}
