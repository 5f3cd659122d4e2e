package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/example/coursemart/internal/client/api"
	"github.com/example/coursemart/internal/client/catalog"
	"github.com/example/coursemart/internal/client/models"
)

// ListCourses renders the current page of the filtered catalog.
func (a *App) ListCourses(ctx context.Context) error {
	page := a.store.PaginatedCourses.Get()

	if page.TotalCourses == 0 {
		fmt.Println("No courses match the current filters.")
		return nil
	}
	if len(page.Courses) == 0 {
		fmt.Printf("No courses on page %d (the list has %d page(s)).\n", page.CurrentPage, page.TotalPages)
		return nil
	}

	for _, c := range page.Courses {
		fmt.Printf("[%s] %s — $%.2f | %s | %.1f★ | %d students | %s\n",
			c.ID, c.Title, c.Price, c.Level, c.Rating, c.EnrollmentCount, c.Instructor.Name)
	}
	fmt.Printf("Page %d of %d (%d courses)\n", page.CurrentPage, page.TotalPages, page.TotalCourses)
	return nil
}

// Search sets the search query ("-" clears it) and re-renders the list.
func (a *App) Search(ctx context.Context, query string) error {
	if query == "-" {
		query = ""
	}
	a.store.SetSearchQuery(query)
	return a.ListCourses(ctx)
}

func (a *App) FilterCategory(ctx context.Context, id string) error {
	a.store.SetSelectedCategory(id)
	return a.ListCourses(ctx)
}

func (a *App) FilterLevel(ctx context.Context, level string) error {
	switch models.Level(level) {
	case models.LevelAll, models.LevelBeginner, models.LevelIntermediate, models.LevelAdvanced:
		a.store.SetSelectedLevel(models.Level(level))
		return a.ListCourses(ctx)
	default:
		fmt.Println("Unknown level. Use beginner, intermediate, advanced or all.")
		return nil
	}
}

func (a *App) SortBy(ctx context.Context, key string) error {
	k, ok := catalog.ParseSortKey(key)
	if !ok {
		fmt.Println("Unknown sort key. Use newest, oldest, price-low, price-high, rating or popular.")
		return nil
	}
	a.store.SetSortBy(k)
	return a.ListCourses(ctx)
}

func (a *App) GoToPage(ctx context.Context, page string) error {
	n, err := strconv.Atoi(page)
	if err != nil || n < 1 {
		fmt.Println("Page must be a positive number.")
		return nil
	}
	a.store.SetCurrentPage(n)
	return a.ListCourses(ctx)
}

func (a *App) NextPage(ctx context.Context) error {
	page := a.store.PaginatedCourses.Get()
	if page.CurrentPage < page.TotalPages {
		a.store.SetCurrentPage(page.CurrentPage + 1)
	}
	return a.ListCourses(ctx)
}

func (a *App) PrevPage(ctx context.Context) error {
	if current := a.store.CurrentPage.Get(); current > 1 {
		a.store.SetCurrentPage(current - 1)
	}
	return a.ListCourses(ctx)
}

func (a *App) ClearFilters(ctx context.Context) error {
	a.store.ResetFilters()
	return a.ListCourses(ctx)
}

// ShowCourse fetches and renders the course detail view, with related
// courses from the same category.
func (a *App) ShowCourse(ctx context.Context, id string) error {
	course, err := a.catalogService.GetCourse(ctx, id)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			fmt.Println("Course not found.")
		} else {
			fmt.Println("Failed to load the course. Please try again.")
		}
		return err
	}

	fmt.Printf("%s\n", course.Title)
	fmt.Printf("  %s\n", course.ShortDescription)
	fmt.Printf("  Price: $%.2f | Level: %s | %.1f hours | %d lectures\n",
		course.Price, course.Level, course.DurationHours, course.LectureCount)
	fmt.Printf("  Category: %s | Instructor: %s\n", course.CategoryName, course.Instructor.Name)
	fmt.Printf("  Rating: %.1f★ | %d students enrolled\n", course.Rating, course.EnrollmentCount)

	if related := a.catalogService.RelatedCourses(course, 3); len(related) > 0 {
		fmt.Println("  Related courses:")
		for _, r := range related {
			fmt.Printf("    [%s] %s — $%.2f\n", r.ID, r.Title, r.Price)
		}
	}
	return nil
}

func (a *App) ListCategories(ctx context.Context) error {
	categories := a.store.Categories.Get()
	if len(categories) == 0 {
		fmt.Println("No categories loaded.")
		return nil
	}
	for _, c := range categories {
		fmt.Printf("[%s] %s (%d courses)\n", c.ID, c.Name, c.CourseCount)
	}
	return nil
}

func (a *App) ListInstructors(ctx context.Context) error {
	instructors, err := a.catalogService.TopInstructors(ctx, a.config.TopInstructorCount)
	if err != nil {
		fmt.Println("Failed to load instructors. Please try again.")
		return err
	}
	for _, i := range instructors {
		fmt.Printf("%s — %s | %.1f★ | %d students | %d courses\n",
			i.Name, i.Title, i.Rating, i.StudentCount, i.CourseCount)
	}
	return nil
}

func (a *App) RefreshCatalog(ctx context.Context) error {
	if err := a.catalogService.Refresh(ctx); err != nil {
		fmt.Println("Failed to load courses. Please try again.")
		return err
	}
	return a.ListCourses(ctx)
}
