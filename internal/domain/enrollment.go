package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrGrantExists   = errors.New("student already has access to this course")
	ErrGrantNotFound = errors.New("student access not found")
)

// StudentCourse grants a student access to a course, keyed by
// (studentEmail, courseId). The certificate URL is an opaque link.
type StudentCourse struct {
	StudentEmail   string    `gorm:"primaryKey;size:100" json:"studentEmail"`
	CourseID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"courseId"`
	CertificateURL string    `json:"certificateUrl"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// GrantPatch is a partial update of a grant. A nil field is left
// unchanged; a pointer to the empty string clears the value.
type GrantPatch struct {
	NewEmail       *string `json:"newEmail"`
	CertificateURL *string `json:"certificateUrl"`
}

// SearchGrants filters grants whose student email contains query,
// case-insensitively. An empty query returns the input unchanged.
func SearchGrants(grants []StudentCourse, query string) []StudentCourse {
	if query == "" {
		return grants
	}
	q := strings.ToLower(query)
	matched := make([]StudentCourse, 0, len(grants))
	for _, g := range grants {
		if strings.Contains(strings.ToLower(g.StudentEmail), q) {
			matched = append(matched, g)
		}
	}
	return matched
}
