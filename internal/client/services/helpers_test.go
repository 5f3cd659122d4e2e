package services

import (
	"context"
	"testing"
	"time"

	"github.com/example/coursemart/internal/client/api"
	"github.com/example/coursemart/internal/client/models"
	"github.com/example/coursemart/internal/client/store"
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

// fakeClient is a stub api.Client with presettable results and call counters.
type fakeClient struct {
	api.Client

	LoginToken string
	LoginErr   error

	RegisterErr error

	Courses       []api.CourseRecord
	CoursesErr    error
	CoursesCalls  int
	Categories    []api.CategoryRecord
	CategoriesErr error

	Course    *api.CourseRecord
	CourseErr error

	Instructors    []api.InstructorRecord
	InstructorsErr error

	Enrollments    []api.EnrollmentRecord
	EnrollmentsErr error

	CheckoutErr   error
	CheckoutIDs   []int64
	CheckoutCalls int

	Token string
}

func (f *fakeClient) Close() error { return nil }

func (f *fakeClient) Login(_ context.Context, _ string, _ []byte) (string, error) {
	return f.LoginToken, f.LoginErr
}

func (f *fakeClient) Register(_ context.Context, _ string, _ []byte) error {
	return f.RegisterErr
}

func (f *fakeClient) ListCourses(_ context.Context, _ api.ListCoursesParams) (*api.CourseListResponse, error) {
	f.CoursesCalls++
	if f.CoursesErr != nil {
		return nil, f.CoursesErr
	}
	return &api.CourseListResponse{Courses: f.Courses, TotalCount: len(f.Courses)}, nil
}

func (f *fakeClient) GetCourse(_ context.Context, _ string) (*api.CourseRecord, error) {
	return f.Course, f.CourseErr
}

func (f *fakeClient) ListCategories(_ context.Context) ([]api.CategoryRecord, error) {
	return f.Categories, f.CategoriesErr
}

func (f *fakeClient) TopInstructors(_ context.Context, _ int) ([]api.InstructorRecord, error) {
	return f.Instructors, f.InstructorsErr
}

func (f *fakeClient) ListEnrollments(_ context.Context) ([]api.EnrollmentRecord, error) {
	return f.Enrollments, f.EnrollmentsErr
}

func (f *fakeClient) Checkout(_ context.Context, courseIDs []int64) error {
	f.CheckoutCalls++
	if f.CheckoutErr != nil {
		return f.CheckoutErr
	}
	f.CheckoutIDs = courseIDs
	return nil
}

func (f *fakeClient) SetToken(token string) { f.Token = token }

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(context.Background(), newFakeRepo(), testLogger())
}

func testLogger() logging.Logger {
	return logging.NewDefault("error")
}

func testCourse(id string, price float64) models.Course {
	return models.Course{
		ID:        id,
		Title:     "Course " + id,
		Price:     price,
		Level:     models.LevelBeginner,
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}
