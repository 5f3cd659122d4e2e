package models

import "time"

// Enrollment is a completed purchase of a course by the current user.
type Enrollment struct {
	ID          string    `json:"id"`
	CourseID    string    `json:"courseId"`
	CourseTitle string    `json:"courseTitle"`
	EnrolledAt  time.Time `json:"enrolledAt"`
}
