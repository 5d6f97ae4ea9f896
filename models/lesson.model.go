package models

import (
	"time"

	"github.com/google/uuid"
)

// Lesson is the leaf of the content hierarchy
type Lesson struct {
	LessonID     uuid.UUID `json:"lessonId" gorm:"type:uuid;primaryKey"`
	Title        string    `json:"title" gorm:"not null"`
	Description  string    `json:"description" gorm:"not null"`
	VideoUrl     string    `json:"videoUrl" gorm:"not null"`
	CreationDate time.Time `json:"creationDate" gorm:"not null"`
	ModuleID     uuid.UUID `json:"moduleId" gorm:"type:uuid;index;not null"`
}
