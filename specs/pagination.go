package specs

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const (
	DefaultPage = 0
	DefaultSize = 10
	MaxSize     = 100
)

// Pagination carries the page window and ordering for a listing. Sort
// always holds a whitelisted column name, never raw caller input.
type Pagination struct {
	Page      int
	Size      int
	Sort      string
	Direction string
}

// Sortable parameter -> column maps per entity
var (
	CourseSortable = map[string]string{
		"courseId":     "course_id",
		"name":         "name",
		"courseStatus": "course_status",
		"courseLevel":  "course_level",
		"creationDate": "creation_date",
	}
	ModuleSortable = map[string]string{
		"moduleId":     "module_id",
		"title":        "title",
		"creationDate": "creation_date",
	}
	LessonSortable = map[string]string{
		"lessonId":     "lesson_id",
		"title":        "title",
		"creationDate": "creation_date",
	}
	// UserSortable keeps the authuser service's field names since the
	// page window is forwarded remotely, not applied to a local query
	UserSortable = map[string]string{
		"userId":   "userId",
		"fullName": "fullName",
		"email":    "email",
	}
)

// ParsePagination reads page, size and sort from the query string.
// Defaults: page 0, size 10, defaultSort ascending. The sort parameter
// follows the "field,direction" form; fields outside the sortable map
// fall back to the default sort.
func ParsePagination(c *fiber.Ctx, defaultSort string, sortable map[string]string) Pagination {
	p := Pagination{Page: DefaultPage, Size: DefaultSize, Sort: defaultSort, Direction: "asc"}

	if v, err := strconv.Atoi(c.Query("page")); err == nil && v >= 0 {
		p.Page = v
	}
	if v, err := strconv.Atoi(c.Query("size")); err == nil && v > 0 && v <= MaxSize {
		p.Size = v
	}
	if raw := c.Query("sort"); raw != "" {
		parts := strings.SplitN(raw, ",", 2)
		if column, ok := sortable[parts[0]]; ok {
			p.Sort = column
			if len(parts) == 2 && strings.EqualFold(parts[1], "desc") {
				p.Direction = "desc"
			}
		}
	}
	return p
}

func (p Pagination) Offset() int {
	return p.Page * p.Size
}

// Apply adds ordering and the page window to a query
func (p Pagination) Apply(db *gorm.DB) *gorm.DB {
	return db.Order(p.Sort + " " + p.Direction).Offset(p.Offset()).Limit(p.Size)
}

// Page is the listing response shape
type Page struct {
	Content       interface{} `json:"content"`
	TotalElements int64       `json:"totalElements"`
	TotalPages    int         `json:"totalPages"`
	Page          int         `json:"page"`
	Size          int         `json:"size"`
}

func NewPage(content interface{}, totalElements int64, p Pagination) Page {
	totalPages := int(totalElements) / p.Size
	if int(totalElements)%p.Size != 0 {
		totalPages++
	}
	return Page{
		Content:       content,
		TotalElements: totalElements,
		TotalPages:    totalPages,
		Page:          p.Page,
		Size:          p.Size,
	}
}
