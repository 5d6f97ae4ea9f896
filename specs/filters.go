package specs

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Filter is one predicate fragment. Fragments are combined by
// conjunction; the parent scope of a listing is applied by the
// controller outside the caller-supplied set, so filters can narrow a
// listing but never widen it past its parent.
type Filter func(*gorm.DB) *gorm.DB

// Apply conjoins all filters onto the query
func Apply(db *gorm.DB, filters []Filter) *gorm.DB {
	for _, f := range filters {
		db = f(db)
	}
	return db
}

// Contains matches a column containing value, case-insensitive
func Contains(column, value string) Filter {
	pattern := "%" + strings.ToLower(value) + "%"
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("LOWER("+column+") LIKE ?", pattern)
	}
}

// Equals matches a column exactly
func Equals(column string, value interface{}) Filter {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" = ?", value)
	}
}

// CreatedNotBefore / CreatedNotAfter bound the creation_date column
func CreatedNotBefore(t time.Time) Filter {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("creation_date >= ?", t)
	}
}

func CreatedNotAfter(t time.Time) Filter {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("creation_date <= ?", t)
	}
}

// SubscribedUser narrows a course listing to courses the given user is
// subscribed in
func SubscribedUser(userID uuid.UUID) Filter {
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Joins("JOIN course_users ON course_users.course_id = courses.course_id").
			Where("course_users.user_id = ?", userID)
	}
}

// CourseFilters builds the filter set for a course listing from the
// query string. Unknown parameters and unparseable values are ignored.
func CourseFilters(c *fiber.Ctx) []Filter {
	var filters []Filter

	if v := c.Query("name"); v != "" {
		filters = append(filters, Contains("name", v))
	}
	if v := c.Query("courseStatus"); v != "" {
		filters = append(filters, Equals("course_status", v))
	}
	if v := c.Query("courseLevel"); v != "" {
		filters = append(filters, Equals("course_level", v))
	}
	if v := c.Query("userInstructor"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			filters = append(filters, Equals("user_instructor", id))
		}
	}
	if v := c.Query("userId"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			filters = append(filters, SubscribedUser(id))
		}
	}
	if v := c.Query("creationDateFrom"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			filters = append(filters, CreatedNotBefore(t))
		}
	}
	if v := c.Query("creationDateTo"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			filters = append(filters, CreatedNotAfter(t))
		}
	}
	return filters
}

// ModuleFilters builds the filter set for a module listing
func ModuleFilters(c *fiber.Ctx) []Filter {
	var filters []Filter
	if v := c.Query("title"); v != "" {
		filters = append(filters, Contains("title", v))
	}
	return filters
}

// LessonFilters builds the filter set for a lesson listing
func LessonFilters(c *fiber.Ctx) []Filter {
	var filters []Filter
	if v := c.Query("title"); v != "" {
		filters = append(filters, Contains("title", v))
	}
	return filters
}
