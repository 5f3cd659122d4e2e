// Package catalog contains the storefront's course-list logic: normalization
// of raw backend records into canonical models and the pure
// filter/sort/paginate pipeline driving the visible list.
package catalog

import (
	"strings"

	"github.com/example/coursemart/internal/client/api"
	"github.com/example/coursemart/internal/client/models"
)

// PlaceholderImage is used for courses without a cover image.
const PlaceholderImage = "https://images.unsplash.com/photo-1581291518857-4e27b48ff24e?w=400&h=250&fit=crop"

const shortDescriptionLimit = 100

// Normalizer maps heterogeneous backend records into canonical models.
// It never fails: unknown or partial shapes degrade to zero values and
// defaults rather than errors.
type Normalizer struct {
	assetBaseURL string
}

// NewNormalizer builds a Normalizer. assetBaseURL is prefixed onto relative
// image paths; absolute image URLs pass through untouched.
func NewNormalizer(assetBaseURL string) *Normalizer {
	return &Normalizer{assetBaseURL: strings.TrimRight(assetBaseURL, "/")}
}

// Course produces the canonical course record. Identifiers are already
// string-coerced by the wire layer (models.FlexID); defaults applied here:
// missing image becomes PlaceholderImage, level is lowercased, the short
// description is derived from the description.
func (n *Normalizer) Course(rec api.CourseRecord) models.Course {
	return models.Course{
		ID:               rec.ID.String(),
		Title:            rec.Title,
		Description:      rec.Description,
		ShortDescription: shorten(rec.Description),
		Price:            rec.Price,
		Image:            n.imageURL(rec.ImageURL),
		Video:            rec.VideoURL,
		Level:            models.Level(strings.ToLower(rec.Level)),
		DurationHours:    rec.DurationHours,
		LectureCount:     rec.TotalLectures,
		CategoryID:       rec.CategoryID.String(),
		CategoryName:     rec.CategoryName,
		Instructor: models.InstructorRef{
			ID:   rec.InstructorID.String(),
			Name: rec.InstructorName,
		},
		Rating:          rec.Rating,
		EnrollmentCount: rec.EnrollmentCount,
		CreatedAt:       rec.CreatedAt,
		UpdatedAt:       rec.UpdatedAt,
	}
}

// Courses normalizes a whole listing.
func (n *Normalizer) Courses(recs []api.CourseRecord) []models.Course {
	out := make([]models.Course, len(recs))
	for i, rec := range recs {
		out[i] = n.Course(rec)
	}
	return out
}

// Categories normalizes category records and counts the courses in each
// category from the already-normalized course list.
func (n *Normalizer) Categories(recs []api.CategoryRecord, courses []models.Course) []models.Category {
	counts := make(map[string]int, len(recs))
	for _, c := range courses {
		counts[c.CategoryID]++
	}

	out := make([]models.Category, len(recs))
	for i, rec := range recs {
		id := rec.ID.String()
		out[i] = models.Category{ID: id, Name: rec.Name, CourseCount: counts[id]}
	}
	return out
}

// Instructors normalizes the top-instructors dashboard records.
func (n *Normalizer) Instructors(recs []api.InstructorRecord) []models.Instructor {
	out := make([]models.Instructor, len(recs))
	for i, rec := range recs {
		out[i] = models.Instructor{
			ID:           rec.ID.String(),
			Name:         rec.Name,
			Title:        rec.Title,
			Rating:       rec.Rating,
			StudentCount: rec.StudentsCount,
			CourseCount:  rec.CoursesCount,
		}
	}
	return out
}

// Enrollments normalizes the user's enrollment history.
func (n *Normalizer) Enrollments(recs []api.EnrollmentRecord) []models.Enrollment {
	out := make([]models.Enrollment, len(recs))
	for i, rec := range recs {
		out[i] = models.Enrollment{
			ID:          rec.ID.String(),
			CourseID:    rec.CourseID.String(),
			CourseTitle: rec.CourseTitle,
			EnrolledAt:  rec.EnrolledAt,
		}
	}
	return out
}

func (n *Normalizer) imageURL(raw string) string {
	switch {
	case raw == "":
		return PlaceholderImage
	case strings.HasPrefix(raw, "/"):
		return n.assetBaseURL + raw
	default:
		return raw
	}
}

func shorten(s string) string {
	runes := []rune(s)
	if len(runes) <= shortDescriptionLimit {
		return s
	}
	return string(runes[:shortDescriptionLimit]) + "..."
}
