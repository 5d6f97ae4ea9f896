package models

import "github.com/google/uuid"

// CourseUser records a user's subscription in a course. The composite
// unique index is what rejects a duplicate subscription when two
// requests race past the application-level check.
type CourseUser struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	CourseID uuid.UUID `json:"courseId" gorm:"type:uuid;uniqueIndex:idx_course_user;not null"`
	UserID   uuid.UUID `json:"userId" gorm:"type:uuid;uniqueIndex:idx_course_user;not null"`
}
