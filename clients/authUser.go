package clients

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"eadcourse/specs"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// UserDTO is a user as the authuser service returns it
type UserDTO struct {
	UserID     uuid.UUID `json:"userId"`
	FullName   string    `json:"fullName"`
	Email      string    `json:"email"`
	UserType   string    `json:"userType"`
	UserStatus string    `json:"userStatus"`
}

// UserPage is a page of users from the authuser service
type UserPage struct {
	Content       []UserDTO `json:"content"`
	TotalElements int64     `json:"totalElements"`
	TotalPages    int       `json:"totalPages"`
	Page          int       `json:"page"`
	Size          int       `json:"size"`
}

// AuthUserClient talks to the authuser service. It only serves reads
// that the authuser service owns (the subscribed-users listing); user
// validation on write paths goes through the local projection instead.
type AuthUserClient struct {
	http *resty.Client
}

// AuthUser is the process-wide client, set up in main
var AuthUser *AuthUserClient

func NewAuthUserClient(baseURL string) *AuthUserClient {
	return &AuthUserClient{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(10 * time.Second),
	}
}

// GetAllUsersByCourse fetches the users subscribed in a course,
// forwarding the page window
func (c *AuthUserClient) GetAllUsersByCourse(courseID uuid.UUID, page specs.Pagination) (*UserPage, error) {
	result := new(UserPage)

	resp, err := c.http.R().
		SetQueryParams(map[string]string{
			"courseId": courseID.String(),
			"page":     strconv.Itoa(page.Page),
			"size":     strconv.Itoa(page.Size),
			"sort":     page.Sort + "," + strings.ToUpper(page.Direction),
		}).
		SetResult(result).
		Get("/api/v1/users")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("authuser service returned %s", resp.Status())
	}
	return result, nil
}
