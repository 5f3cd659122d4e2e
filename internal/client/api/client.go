// Package api implements the remote data gateway: a thin JSON/HTTP client for
// the marketplace backend. It returns raw wire records; normalization into
// canonical models happens in the catalog package.
package api

import (
	"context"
	"time"

	"github.com/example/coursemart/internal/client/models"
)

// CourseRecord is the backend course shape. Identifier fields use
// models.FlexID because the backend serializes ids inconsistently.
type CourseRecord struct {
	ID              models.FlexID `json:"id"`
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	Price           float64       `json:"price"`
	ImageURL        string        `json:"imageUrl"`
	VideoURL        string        `json:"videoUrl"`
	Level           string        `json:"level"`
	DurationHours   float64       `json:"durationHours"`
	TotalLectures   int           `json:"totalLectures"`
	CategoryID      models.FlexID `json:"categoryId"`
	CategoryName    string        `json:"categoryName"`
	InstructorID    models.FlexID `json:"instructorId"`
	InstructorName  string        `json:"instructorName"`
	Rating          float64       `json:"rating"`
	EnrollmentCount int           `json:"enrollmentCount"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

type CategoryRecord struct {
	ID   models.FlexID `json:"id"`
	Name string        `json:"name"`
}

type InstructorRecord struct {
	ID            models.FlexID `json:"id"`
	Name          string        `json:"name"`
	Title         string        `json:"title"`
	Rating        float64       `json:"rating"`
	StudentsCount int           `json:"studentsCount"`
	CoursesCount  int           `json:"coursesCount"`
}

type EnrollmentRecord struct {
	ID          models.FlexID `json:"id"`
	CourseID    models.FlexID `json:"courseId"`
	CourseTitle string        `json:"courseTitle"`
	EnrolledAt  time.Time     `json:"enrolledAt"`
}

// CourseListResponse is the paged course listing envelope.
type CourseListResponse struct {
	Courses    []CourseRecord `json:"courses"`
	TotalCount int            `json:"totalCount"`
}

// ListCoursesParams maps to the catalog listing query string. Zero-valued
// fields are omitted from the request.
type ListCoursesParams struct {
	Page          int
	PageSize      int
	SearchTerm    string
	Level         string
	SortBy        string
	SortDirection string
}

// Client defines the backend operations the storefront needs.
//
// All methods honor context cancellation. None of them retry: a failed call
// surfaces an error and the caller decides whether to ask again.
type Client interface {
	Close() error

	// Login exchanges credentials for a bearer token. A 401 maps to
	// ErrInvalidCredentials. The token is NOT retained by the client;
	// call SetToken to arm it for subsequent requests.
	Login(ctx context.Context, email string, password []byte) (string, error)

	// Register creates an account. The backend does not log the user in;
	// a separate Login call is required.
	Register(ctx context.Context, email string, password []byte) error

	ListCourses(ctx context.Context, p ListCoursesParams) (*CourseListResponse, error)
	GetCourse(ctx context.Context, id string) (*CourseRecord, error)
	ListCategories(ctx context.Context) ([]CategoryRecord, error)
	TopInstructors(ctx context.Context, count int) ([]InstructorRecord, error)
	ListEnrollments(ctx context.Context) ([]EnrollmentRecord, error)

	// Checkout enrolls the authenticated user in the given courses. The
	// backend expects numeric course ids.
	Checkout(ctx context.Context, courseIDs []int64) error

	// SetToken arms (or, with an empty string, clears) the bearer token
	// attached to authenticated requests.
	SetToken(token string)
}
