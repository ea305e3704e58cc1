package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrCourseNotFound = errors.New("course not found")

type Course struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Title       string    `gorm:"index;not null" json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`

	// Sections are owned by the course: replacing a course's content
	// deletes and recreates them, videos cascade along.
	Sections []Section       `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE;" json:"sections"`
	Students []StudentCourse `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE;" json:"students,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Section struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CourseID uuid.UUID `gorm:"type:uuid;index" json:"courseId"`
	Title    string    `gorm:"not null" json:"title"`
	Position int       `gorm:"not null" json:"-"`

	Videos []Video `gorm:"foreignKey:SectionID;constraint:OnDelete:CASCADE;" json:"videos"`

	CreatedAt time.Time `json:"createdAt"`
}

type Video struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	SectionID uuid.UUID `gorm:"type:uuid;index" json:"sectionId"`
	Title     string    `gorm:"not null" json:"title"`
	VideoURL  string    `gorm:"not null" json:"videoUrl"`
	Position  int       `gorm:"not null" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
}
