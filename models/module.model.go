package models

import (
	"time"

	"github.com/google/uuid"
)

// Module is a section within a course. A module never exists without
// its parent course.
type Module struct {
	ModuleID     uuid.UUID `json:"moduleId" gorm:"type:uuid;primaryKey"`
	Title        string    `json:"title" gorm:"not null"`
	Description  string    `json:"description" gorm:"not null"`
	CreationDate time.Time `json:"creationDate" gorm:"not null"`
	CourseID     uuid.UUID `json:"courseId" gorm:"type:uuid;index;not null"`
	Course       *Course   `json:"course,omitempty" gorm:"foreignKey:CourseID;references:CourseID"`
}
