// Package models defines the canonical records the storefront operates on.
// Raw backend shapes live in the api package; everything past the
// normalization layer uses the types defined here.
package models

import "time"

// Level classifies course difficulty.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"

	// LevelAll is the filter sentinel matching every level.
	LevelAll Level = "all"
)

// InstructorRef is the denormalized instructor summary carried by a course.
type InstructorRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Course is the canonical course record. Instances are immutable within a
// session: a catalog refresh replaces the whole list, it never patches
// individual records.
type Course struct {
	ID               string        `json:"id"`
	Title            string        `json:"title"`
	Description      string        `json:"description"`
	ShortDescription string        `json:"shortDescription"`
	Price            float64       `json:"price"`
	Image            string        `json:"image"`
	Video            string        `json:"video"`
	Level            Level         `json:"level"`
	DurationHours    float64       `json:"durationHours"`
	LectureCount     int           `json:"lectureCount"`
	CategoryID       string        `json:"categoryId"`
	CategoryName     string        `json:"categoryName"`
	Instructor       InstructorRef `json:"instructor"`
	Rating           float64       `json:"rating"`
	EnrollmentCount  int           `json:"enrollmentCount"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}

// Category groups courses; CourseCount is computed locally from the
// normalized course list, not taken from the backend.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	CourseCount int    `json:"courseCount"`
}

// Instructor is the standalone instructor record returned by the
// top-instructors dashboard endpoint.
type Instructor struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Title        string  `json:"title"`
	Rating       float64 `json:"rating"`
	StudentCount int     `json:"studentCount"`
	CourseCount  int     `json:"courseCount"`
}
