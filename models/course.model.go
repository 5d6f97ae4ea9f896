package models

import (
	"time"

	"github.com/google/uuid"
)

// Course statuses
const (
	CourseStatusInProgress = "INPROGRESS"
	CourseStatusApproved   = "APPROVED"
)

// Course levels
const (
	CourseLevelBeginner     = "BEGINNER"
	CourseLevelIntermediary = "INTERMEDIARY"
	CourseLevelAdvanced     = "ADVANCED"
)

// Course is the root of the content hierarchy. UserInstructor points at
// a user in the local projection; it is validated at write time, not by
// a foreign key.
type Course struct {
	CourseID       uuid.UUID `json:"courseId" gorm:"type:uuid;primaryKey"`
	Name           string    `json:"name" gorm:"not null"`
	Description    string    `json:"description" gorm:"not null"`
	ImageUrl       string    `json:"imageUrl"`
	CourseStatus   string    `json:"courseStatus" gorm:"not null"`
	CourseLevel    string    `json:"courseLevel" gorm:"not null"`
	UserInstructor uuid.UUID `json:"userInstructor" gorm:"type:uuid;not null"`
	CreationDate   time.Time `json:"creationDate" gorm:"not null"`
	LastUpdateDate time.Time `json:"lastUpdateDate" gorm:"not null"`
}
