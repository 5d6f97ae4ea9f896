package models

import "github.com/google/uuid"

// User types
const (
	UserTypeStudent    = "STUDENT"
	UserTypeInstructor = "INSTRUCTOR"
	UserTypeAdmin      = "ADMIN"
)

// User statuses
const (
	UserStatusActive  = "ACTIVE"
	UserStatusBlocked = "BLOCKED"
)

// User is a local, non-authoritative projection of the authuser
// service's users. The UserID always comes from the upstream event;
// rows are only written by the user event consumer and never deleted.
type User struct {
	UserID     uuid.UUID `json:"userId" gorm:"type:uuid;primaryKey"`
	FullName   string    `json:"fullName" gorm:"not null"`
	UserType   string    `json:"userType" gorm:"not null"`
	UserStatus string    `json:"userStatus" gorm:"not null"`
}
