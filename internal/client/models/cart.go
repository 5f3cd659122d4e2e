package models

import "time"

// CartItem links a course to a pending purchase. Course is a snapshot taken
// at add-time so the cart renders consistently even if the catalog list is
// refreshed underneath it. At most one item exists per CourseID.
type CartItem struct {
	CourseID string    `json:"courseId"`
	Course   Course    `json:"course"`
	AddedAt  time.Time `json:"addedAt"`
}
